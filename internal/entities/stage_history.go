package entities

import (
	"time"

	"fibertrack/internal/workflow"
)

// StageHistory is an append-only audit record of one stage change. The first
// entry for any project is always Requirements; entries are never updated or
// deleted.
type StageHistory struct {
	ID        int64          `json:"id"`
	ProjectID int64          `json:"projectId"`
	Stage     workflow.Stage `json:"stage"`
	Notes     string         `json:"notes"`
	ChangedBy int64          `json:"changedBy"`
	Timestamp time.Time      `json:"timestamp"`
}
