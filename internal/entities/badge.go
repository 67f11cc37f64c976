package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// BadgeType is the closed set of recognition awards.
type BadgeType string

const (
	BadgeSpeedDemon        BadgeType = "speed_demon"
	BadgeTechWizard        BadgeType = "tech_wizard"
	BadgeCustomerWhisperer BadgeType = "customer_whisperer"
	BadgeTeamPlayer        BadgeType = "team_player"
	BadgeFirstMile         BadgeType = "first_mile"
	BadgeFifthMile         BadgeType = "fifth_mile"
	BadgeTenthMile         BadgeType = "tenth_mile"
	BadgePerfectScore      BadgeType = "perfect_score"
	BadgeOnTime            BadgeType = "on_time"
	BadgeEfficiencyExpert  BadgeType = "efficiency_expert"
)

type BadgeInfo struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

var badgeTable = map[BadgeType]BadgeInfo{
	BadgeSpeedDemon:        {Label: "Speed Demon", Description: "Completed projects ahead of schedule"},
	BadgeTechWizard:        {Label: "Tech Wizard", Description: "Resolved complex technical issues"},
	BadgeCustomerWhisperer: {Label: "Customer Whisperer", Description: "Excellent customer satisfaction"},
	BadgeTeamPlayer:        {Label: "Team Player", Description: "Helped team members succeed"},
	BadgeFirstMile:         {Label: "First Mile", Description: "First project completion milestone"},
	BadgeFifthMile:         {Label: "Fifth Mile", Description: "Five projects completed milestone"},
	BadgeTenthMile:         {Label: "Tenth Mile", Description: "Ten projects completed milestone"},
	BadgePerfectScore:      {Label: "Perfect Score", Description: "Completed a project with no issues"},
	BadgeOnTime:            {Label: "On Time", Description: "Consistently completed projects on time"},
	BadgeEfficiencyExpert:  {Label: "Efficiency Expert", Description: "Completed projects with minimal resources"},
}

// BadgeTypes returns every badge kind in display order.
func BadgeTypes() []BadgeType {
	return []BadgeType{
		BadgeSpeedDemon, BadgeTechWizard, BadgeCustomerWhisperer, BadgeTeamPlayer,
		BadgeFirstMile, BadgeFifthMile, BadgeTenthMile, BadgePerfectScore,
		BadgeOnTime, BadgeEfficiencyExpert,
	}
}

func (t BadgeType) Valid() bool {
	_, ok := badgeTable[t]
	return ok
}

func (t BadgeType) Info() BadgeInfo {
	if info, ok := badgeTable[t]; ok {
		return info
	}
	return BadgeInfo{Label: "Unknown Badge", Description: "Badge details not found"}
}

// TeamMemberBadge is a recognition award. Created only by an explicit award
// action; never mutated or removed.
type TeamMemberBadge struct {
	ID           int64      `json:"id"`
	TeamMemberID int64      `json:"teamMemberId"`
	BadgeType    BadgeType  `json:"badgeType"`
	ProjectID    null.Int64 `json:"projectId"`
	Reason       null.String `json:"reason"`
	AwardedAt    time.Time  `json:"awardedAt"`
}
