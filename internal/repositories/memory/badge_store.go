package memory

import (
	"context"
	"sort"
	"time"

	"fibertrack/internal/dto"
	"fibertrack/internal/entities"
)

type BadgeStore struct {
	s *Store
}

func (b *BadgeStore) ListByTeamMember(ctx context.Context, teamMemberID int64) ([]entities.TeamMemberBadge, error) {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()

	badges := make([]entities.TeamMemberBadge, 0)
	for _, badge := range b.s.badges {
		if badge.TeamMemberID == teamMemberID {
			badges = append(badges, badge)
		}
	}
	sort.Slice(badges, func(i, j int) bool {
		if !badges[i].AwardedAt.Equal(badges[j].AwardedAt) {
			return badges[i].AwardedAt.After(badges[j].AwardedAt)
		}
		return badges[i].ID > badges[j].ID
	})
	return badges, nil
}

func (b *BadgeStore) Award(ctx context.Context, teamMemberID int64, data dto.AwardBadgeDTO) (*entities.TeamMemberBadge, error) {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()

	b.s.nextBadgeID++
	badge := entities.TeamMemberBadge{
		ID:           b.s.nextBadgeID,
		TeamMemberID: teamMemberID,
		BadgeType:    entities.BadgeType(data.BadgeType),
		ProjectID:    data.ProjectID,
		Reason:       data.Reason,
		AwardedAt:    time.Now(),
	}
	b.s.badges[badge.ID] = badge
	return &badge, nil
}
