package entities

import (
	"time"

	"github.com/aarondl/null/v8"

	"fibertrack/internal/workflow"
)

// Task is a unit of sub-work within a project stage.
type Task struct {
	ID          int64          `json:"id"`
	ProjectID   int64          `json:"projectId"`
	Title       string         `json:"title"`
	Description null.String    `json:"description"`
	AssignedTo  int64          `json:"assignedTo"`
	Stage       workflow.Stage `json:"stage"`
	IsCompleted bool           `json:"isCompleted"`
	DueDate     null.Time      `json:"dueDate"`
	CreatedAt   time.Time      `json:"createdAt"`
}
