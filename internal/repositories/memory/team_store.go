package memory

import (
	"context"
	"sort"

	"fibertrack/internal/dto"
	"fibertrack/internal/entities"
	apperrors "fibertrack/pkg/errors"
)

type TeamMemberStore struct {
	s *Store
}

func (t *TeamMemberStore) collect(match func(entities.TeamMember) bool) []entities.TeamMember {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	members := make([]entities.TeamMember, 0)
	for _, m := range t.s.teamMembers {
		if match(m) {
			members = append(members, m)
		}
	}
	sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })
	return members
}

func (t *TeamMemberStore) GetAll(ctx context.Context) ([]entities.TeamMember, error) {
	return t.collect(func(entities.TeamMember) bool { return true }), nil
}

func (t *TeamMemberStore) FindByID(ctx context.Context, id int64) (*entities.TeamMember, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	m, ok := t.s.teamMembers[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &m, nil
}

func (t *TeamMemberStore) FindByRoles(ctx context.Context, roles []string) ([]entities.TeamMember, error) {
	return t.collect(func(m entities.TeamMember) bool {
		for _, r := range roles {
			if m.Role == r {
				return true
			}
		}
		return false
	}), nil
}

func (t *TeamMemberStore) Create(ctx context.Context, data dto.CreateTeamMemberDTO) (*entities.TeamMember, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	t.s.nextMemberID++
	m := entities.TeamMember{
		ID:    t.s.nextMemberID,
		Name:  data.Name,
		Role:  data.Role,
		Email: data.Email,
		Phone: data.Phone,
	}
	t.s.teamMembers[m.ID] = m
	return &m, nil
}
