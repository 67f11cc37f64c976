package dto

import "github.com/aarondl/null/v8"

type CreateTaskDTO struct {
	Title       string      `json:"title" validate:"required"`
	Description null.String `json:"description"`
	AssignedTo  int64       `json:"assignedTo" validate:"required,gt=0"`
	Stage       int         `json:"stage" validate:"required,min=1,max=5"`
	DueDate     null.Time   `json:"dueDate"`
}

// UpdateTaskDTO enumerates the mutable task fields.
type UpdateTaskDTO struct {
	Title       *string     `json:"title"`
	Description null.String `json:"description"`
	AssignedTo  *int64      `json:"assignedTo" validate:"omitempty,gt=0"`
	Stage       *int        `json:"stage" validate:"omitempty,min=1,max=5"`
	IsCompleted *bool       `json:"isCompleted"`
	DueDate     null.Time   `json:"dueDate"`
}

func (d UpdateTaskDTO) Empty() bool {
	return d.Title == nil && !d.Description.Valid && d.AssignedTo == nil &&
		d.Stage == nil && d.IsCompleted == nil && !d.DueDate.Valid
}
