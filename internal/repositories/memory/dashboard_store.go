package memory

import (
	"context"

	"fibertrack/internal/workflow"
)

type DashboardStore struct {
	s *Store
}

func (d *DashboardStore) CountByStage(ctx context.Context) (map[int]int, error) {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()

	counts := make(map[int]int, len(workflow.Stages()))
	for _, s := range workflow.Stages() {
		counts[int(s)] = 0
	}
	for _, p := range d.s.projects {
		counts[int(p.CurrentStage)]++
	}
	return counts, nil
}

func (d *DashboardStore) CountByStatus(ctx context.Context) (int, int, error) {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()

	var active, completed int
	for _, p := range d.s.projects {
		if p.IsCompleted {
			completed++
		} else {
			active++
		}
	}
	return active, completed, nil
}
