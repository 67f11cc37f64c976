package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fibertrack/internal/dto"
	"fibertrack/internal/repositories/memory"
	"fibertrack/pkg/eventbus"
)

func TestDashboardStatsEmpty(t *testing.T) {
	store := memory.NewStore()
	svc := NewDashboardService(store.Dashboard())

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	// All five stages present even with no data.
	require.Len(t, stats.StageStats, 5)
	for stage := 1; stage <= 5; stage++ {
		assert.Equal(t, 0, stats.StageStats[stage])
	}
	assert.Equal(t, 0, stats.ActiveCount)
	assert.Equal(t, 0, stats.CompletedCount)
	assert.Equal(t, 0, stats.TotalCount)
}

func TestDashboardStatsCountsProjects(t *testing.T) {
	store := memory.NewStore()
	bus := eventbus.New(zap.NewNop())
	projects := NewProjectService(store.Projects(), store.StageHistory(), memory.NewTxManager(), bus, zap.NewNop())
	svc := NewDashboardService(store.Dashboard())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := projects.CreateProject(ctx, sampleProjectInput())
		require.NoError(t, err)
	}
	done, err := projects.CreateProject(ctx, sampleProjectInput())
	require.NoError(t, err)
	_, err = projects.ChangeStage(ctx, done.ID, dto.ChangeStageDTO{Stage: 5, ChangedBy: 1})
	require.NoError(t, err)
	bus.Wait()

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.StageStats[1])
	assert.Equal(t, 1, stats.StageStats[5])
	assert.Equal(t, 0, stats.StageStats[2])
	assert.Equal(t, 3, stats.ActiveCount)
	assert.Equal(t, 1, stats.CompletedCount)
	assert.Equal(t, 4, stats.TotalCount)

	// Reading stats does not change them.
	again, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, stats, again)
}
