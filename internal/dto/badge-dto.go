package dto

import "github.com/aarondl/null/v8"

type AwardBadgeDTO struct {
	BadgeType string      `json:"badgeType" validate:"required"`
	ProjectID null.Int64  `json:"projectId"`
	Reason    null.String `json:"reason"`
}
