package services

import (
	"context"
	"fmt"

	"fibertrack/internal/dto"
	"fibertrack/internal/entities"
	"fibertrack/internal/repositories"
	apperrors "fibertrack/pkg/errors"
)

type BadgeServiceInterface interface {
	GetTeamMemberBadges(ctx context.Context, teamMemberID int64) ([]entities.TeamMemberBadge, error)
	AwardBadge(ctx context.Context, teamMemberID int64, data dto.AwardBadgeDTO) (*entities.TeamMemberBadge, error)
}

type BadgeService struct {
	badgeRepo   repositories.BadgeRepositoryInterface
	teamRepo    repositories.TeamMemberRepositoryInterface
	projectRepo repositories.ProjectRepositoryInterface
}

func NewBadgeService(
	badgeRepo repositories.BadgeRepositoryInterface,
	teamRepo repositories.TeamMemberRepositoryInterface,
	projectRepo repositories.ProjectRepositoryInterface,
) BadgeServiceInterface {
	return &BadgeService{badgeRepo: badgeRepo, teamRepo: teamRepo, projectRepo: projectRepo}
}

func (s *BadgeService) GetTeamMemberBadges(ctx context.Context, teamMemberID int64) ([]entities.TeamMemberBadge, error) {
	if _, err := s.teamRepo.FindByID(ctx, teamMemberID); err != nil {
		return nil, err
	}
	return s.badgeRepo.ListByTeamMember(ctx, teamMemberID)
}

func (s *BadgeService) AwardBadge(ctx context.Context, teamMemberID int64, data dto.AwardBadgeDTO) (*entities.TeamMemberBadge, error) {
	if !entities.BadgeType(data.BadgeType).Valid() {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown badge type %q", data.BadgeType))
	}
	if _, err := s.teamRepo.FindByID(ctx, teamMemberID); err != nil {
		return nil, err
	}
	if data.ProjectID.Valid {
		if _, err := s.projectRepo.FindByID(ctx, data.ProjectID.Int64); err != nil {
			return nil, err
		}
	}
	return s.badgeRepo.Award(ctx, teamMemberID, data)
}
