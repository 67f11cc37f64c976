// Package seeders populates the default reference data on first start.
package seeders

import (
	"context"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"fibertrack/internal/dto"
	"fibertrack/internal/entities"
	"fibertrack/internal/repositories"
)

var defaultTeamMembers = []dto.CreateTeamMemberDTO{
	{Name: "John Smith", Role: entities.RoleProjectManager, Email: "john.smith@isp.example", Phone: null.StringFrom("+1-555-0101")},
	{Name: "Sarah Johnson", Role: entities.RoleNetworkEngineer, Email: "sarah.johnson@isp.example", Phone: null.StringFrom("+1-555-0102")},
	{Name: "Mike Chen", Role: entities.RoleFieldTechnician, Email: "mike.chen@isp.example", Phone: null.StringFrom("+1-555-0103")},
	{Name: "Emily Davis", Role: entities.RoleSalesRepresentative, Email: "emily.davis@isp.example", Phone: null.StringFrom("+1-555-0104")},
	{Name: "Alex Rodriguez", Role: entities.RoleNOCEngineer, Email: "alex.rodriguez@isp.example", Phone: null.StringFrom("+1-555-0105")},
}

// SeedTeamMembers inserts the default staff roster when the table is empty.
// Safe to call on every start.
func SeedTeamMembers(ctx context.Context, teamRepo repositories.TeamMemberRepositoryInterface, logger *zap.Logger) error {
	existing, err := teamRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, m := range defaultTeamMembers {
		if _, err := teamRepo.Create(ctx, m); err != nil {
			return err
		}
	}
	logger.Info("seeded default team members", zap.Int("count", len(defaultTeamMembers)))
	return nil
}
