package memory

import (
	"context"
	"sort"
	"time"

	"fibertrack/internal/entities"
	"fibertrack/internal/workflow"
)

type StageHistoryStore struct {
	s *Store
}

func (h *StageHistoryStore) ListByProject(ctx context.Context, projectID int64) ([]entities.StageHistory, error) {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()

	entries := make([]entities.StageHistory, 0)
	for _, e := range h.s.history {
		if e.ProjectID == projectID {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Timestamp.Equal(entries[j].Timestamp) {
			return entries[i].Timestamp.After(entries[j].Timestamp)
		}
		return entries[i].ID > entries[j].ID
	})
	return entries, nil
}

func (h *StageHistoryStore) Create(ctx context.Context, projectID int64, stage workflow.Stage, notes string, changedBy int64) (*entities.StageHistory, error) {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()

	h.s.nextHistoryID++
	entry := entities.StageHistory{
		ID:        h.s.nextHistoryID,
		ProjectID: projectID,
		Stage:     stage,
		Notes:     notes,
		ChangedBy: changedBy,
		Timestamp: time.Now(),
	}
	h.s.history[entry.ID] = entry
	return &entry, nil
}
