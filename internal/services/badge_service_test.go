package services

import (
	"context"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fibertrack/internal/dto"
	"fibertrack/internal/entities"
	"fibertrack/internal/repositories/memory"
	"fibertrack/pkg/eventbus"
	apperrors "fibertrack/pkg/errors"
)

func newBadgeService(t *testing.T) (BadgeServiceInterface, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return NewBadgeService(store.Badges(), store.TeamMembers(), store.Projects()), store
}

func TestAwardBadge(t *testing.T) {
	svc, store := newBadgeService(t)
	ctx := context.Background()
	member := seedMember(t, store)

	badge, err := svc.AwardBadge(ctx, member.ID, dto.AwardBadgeDTO{
		BadgeType: string(entities.BadgeSpeedDemon),
		Reason:    null.StringFrom("finished two weeks early"),
	})
	require.NoError(t, err)
	assert.Equal(t, entities.BadgeSpeedDemon, badge.BadgeType)
	assert.Equal(t, member.ID, badge.TeamMemberID)

	badges, err := svc.GetTeamMemberBadges(ctx, member.ID)
	require.NoError(t, err)
	require.Len(t, badges, 1)
	assert.Equal(t, "Speed Demon", badges[0].BadgeType.Info().Label)
}

func TestAwardBadgeUnknownType(t *testing.T) {
	svc, store := newBadgeService(t)
	member := seedMember(t, store)

	_, err := svc.AwardBadge(context.Background(), member.ID, dto.AwardBadgeDTO{BadgeType: "golden_router"})
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
}

func TestAwardBadgeUnknownMember(t *testing.T) {
	svc, _ := newBadgeService(t)

	_, err := svc.AwardBadge(context.Background(), 42, dto.AwardBadgeDTO{
		BadgeType: string(entities.BadgeTeamPlayer),
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAwardBadgeUnknownProjectReference(t *testing.T) {
	svc, store := newBadgeService(t)
	member := seedMember(t, store)

	_, err := svc.AwardBadge(context.Background(), member.ID, dto.AwardBadgeDTO{
		BadgeType: string(entities.BadgeOnTime),
		ProjectID: null.Int64From(77),
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAwardBadgeWithProjectReference(t *testing.T) {
	svc, store := newBadgeService(t)
	ctx := context.Background()
	member := seedMember(t, store)

	bus := eventbus.New(zap.NewNop())
	projects := NewProjectService(store.Projects(), store.StageHistory(), memory.NewTxManager(), bus, zap.NewNop())
	project, err := projects.CreateProject(ctx, sampleProjectInput())
	require.NoError(t, err)
	bus.Wait()

	badge, err := svc.AwardBadge(ctx, member.ID, dto.AwardBadgeDTO{
		BadgeType: string(entities.BadgeOnTime),
		ProjectID: null.Int64From(project.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, project.ID, badge.ProjectID.Int64)
}
