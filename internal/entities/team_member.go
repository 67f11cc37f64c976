package entities

import "github.com/aarondl/null/v8"

// Staff roles. Stored as display strings, matching the UI.
const (
	RoleProjectManager      = "Project Manager"
	RoleNetworkEngineer     = "Network Engineer"
	RoleFieldTechnician     = "Field Technician"
	RoleSalesRepresentative = "Sales Representative"
	RoleNOCEngineer         = "NOC Engineer"
)

var TeamMemberRoles = []string{
	RoleProjectManager,
	RoleNetworkEngineer,
	RoleFieldTechnician,
	RoleSalesRepresentative,
	RoleNOCEngineer,
}

// NotificationRoles are the roles that receive project notifications.
var NotificationRoles = []string{RoleProjectManager, RoleNetworkEngineer}

func ValidTeamMemberRole(role string) bool {
	for _, r := range TeamMemberRoles {
		if r == role {
			return true
		}
	}
	return false
}

// TeamMember is an internal staff identity, distinct from an authentication
// User.
type TeamMember struct {
	ID    int64       `json:"id"`
	Name  string      `json:"name"`
	Role  string      `json:"role"`
	Email string      `json:"email"`
	Phone null.String `json:"phone"`
}
