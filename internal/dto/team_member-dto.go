package dto

import "github.com/aarondl/null/v8"

type CreateTeamMemberDTO struct {
	Name  string      `json:"name" validate:"required"`
	Role  string      `json:"role" validate:"required"`
	Email string      `json:"email" validate:"required,email"`
	Phone null.String `json:"phone"`
}
