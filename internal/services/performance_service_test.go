package services

import (
	"context"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fibertrack/internal/dto"
	"fibertrack/internal/entities"
	"fibertrack/internal/repositories/memory"
	apperrors "fibertrack/pkg/errors"
)

func newPerformanceService(t *testing.T) (PerformanceServiceInterface, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return NewPerformanceService(store.Performance(), store.TeamMembers()), store
}

func seedMember(t *testing.T, store *memory.Store) *entities.TeamMember {
	t.Helper()
	m, err := store.TeamMembers().Create(context.Background(), dto.CreateTeamMemberDTO{
		Name:  "Sarah Johnson",
		Role:  entities.RoleNetworkEngineer,
		Email: "sarah@isp.example",
		Phone: null.StringFrom("+1-555-0102"),
	})
	require.NoError(t, err)
	return m
}

func TestUpsertMetricCreatesAndReplaces(t *testing.T) {
	svc, store := newPerformanceService(t)
	ctx := context.Background()
	member := seedMember(t, store)

	metric, err := svc.UpsertMetric(ctx, member.ID, dto.UpsertPerformanceMetricDTO{
		ProjectsCompleted:    3,
		AvgCompletionDays:    12.5,
		CustomerSatisfaction: 8.7,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, metric.ProjectsCompleted)

	metric, err = svc.UpsertMetric(ctx, member.ID, dto.UpsertPerformanceMetricDTO{
		ProjectsCompleted:    4,
		AvgCompletionDays:    11.0,
		CustomerSatisfaction: 9.1,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, metric.ProjectsCompleted)

	read, err := svc.GetMetric(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, read.ProjectsCompleted)
	assert.Equal(t, 11.0, read.AvgCompletionDays)
}

func TestGetMetricUnknownMember(t *testing.T) {
	svc, _ := newPerformanceService(t)

	_, err := svc.GetMetric(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetMetricMissingRow(t *testing.T) {
	svc, store := newPerformanceService(t)
	member := seedMember(t, store)

	_, err := svc.GetMetric(context.Background(), member.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMonthlyUpsertIsIdempotent(t *testing.T) {
	svc, _ := newPerformanceService(t)
	ctx := context.Background()

	payload := dto.UpsertMonthlyPerformanceDTO{
		ProjectsCompleted: 12,
		AvgCompletionDays: 14.2,
		AvgSatisfaction:   8.9,
	}

	first, err := svc.UpsertMonthly(ctx, 3, 2026, payload)
	require.NoError(t, err)
	second, err := svc.UpsertMonthly(ctx, 3, 2026, payload)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	year, err := svc.GetYearlyOverview(ctx, 2026)
	require.NoError(t, err)
	require.Len(t, year, 1)
	assert.Equal(t, 12, year[0].ProjectsCompleted)
}

func TestMonthlyRejectsInvalidMonth(t *testing.T) {
	svc, _ := newPerformanceService(t)
	ctx := context.Background()

	_, err := svc.UpsertMonthly(ctx, 13, 2026, dto.UpsertMonthlyPerformanceDTO{})
	assert.Error(t, err)

	_, err = svc.GetMonthly(ctx, 0, 2026)
	assert.Error(t, err)
}

func TestYearlyOverviewSortedByMonth(t *testing.T) {
	svc, _ := newPerformanceService(t)
	ctx := context.Background()

	for _, month := range []int{11, 2, 7} {
		_, err := svc.UpsertMonthly(ctx, month, 2026, dto.UpsertMonthlyPerformanceDTO{ProjectsCompleted: month})
		require.NoError(t, err)
	}

	year, err := svc.GetYearlyOverview(ctx, 2026)
	require.NoError(t, err)
	require.Len(t, year, 3)
	assert.Equal(t, []int{2, 7, 11}, []int{year[0].Month, year[1].Month, year[2].Month})
}
