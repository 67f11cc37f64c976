package services

import (
	"context"
	"fmt"

	"fibertrack/internal/dto"
	"fibertrack/internal/entities"
	"fibertrack/internal/repositories"
	apperrors "fibertrack/pkg/errors"
)

type TeamMemberServiceInterface interface {
	GetTeamMembers(ctx context.Context) ([]entities.TeamMember, error)
	GetTeamMemberByID(ctx context.Context, id int64) (*entities.TeamMember, error)
	CreateTeamMember(ctx context.Context, data dto.CreateTeamMemberDTO) (*entities.TeamMember, error)
}

type TeamMemberService struct {
	teamRepo repositories.TeamMemberRepositoryInterface
}

func NewTeamMemberService(teamRepo repositories.TeamMemberRepositoryInterface) TeamMemberServiceInterface {
	return &TeamMemberService{teamRepo: teamRepo}
}

func (s *TeamMemberService) GetTeamMembers(ctx context.Context) ([]entities.TeamMember, error) {
	return s.teamRepo.GetAll(ctx)
}

func (s *TeamMemberService) GetTeamMemberByID(ctx context.Context, id int64) (*entities.TeamMember, error) {
	return s.teamRepo.FindByID(ctx, id)
}

func (s *TeamMemberService) CreateTeamMember(ctx context.Context, data dto.CreateTeamMemberDTO) (*entities.TeamMember, error) {
	if !entities.ValidTeamMemberRole(data.Role) {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown role %q", data.Role))
	}
	return s.teamRepo.Create(ctx, data)
}
