package dto

import (
	"github.com/aarondl/null/v8"
)

type CreateProjectDTO struct {
	CustomerName       string      `json:"customerName" validate:"required"`
	ContactPerson      string      `json:"contactPerson" validate:"required"`
	Email              string      `json:"email" validate:"required,email"`
	Phone              string      `json:"phone" validate:"required"`
	Address            string      `json:"address" validate:"required"`
	ServiceType        string      `json:"serviceType" validate:"required,oneof=fiber wireless"`
	Bandwidth          int         `json:"bandwidth" validate:"required,gt=0"`
	Requirements       null.String `json:"requirements"`
	AssignedTo         int64       `json:"assignedTo" validate:"required,gt=0"`
	ExpectedCompletion string      `json:"expectedCompletion" validate:"required"`
}

// UpdateProjectDTO enumerates exactly the mutable project fields. Stage,
// completion flag, project code and timestamps are system-managed and cannot
// be patched here.
type UpdateProjectDTO struct {
	CustomerName       *string     `json:"customerName"`
	ContactPerson      *string     `json:"contactPerson"`
	Email              *string     `json:"email" validate:"omitempty,email"`
	Phone              *string     `json:"phone"`
	Address            *string     `json:"address"`
	ServiceType        *string     `json:"serviceType" validate:"omitempty,oneof=fiber wireless"`
	Bandwidth          *int        `json:"bandwidth" validate:"omitempty,gt=0"`
	Requirements       null.String `json:"requirements"`
	AssignedTo         *int64      `json:"assignedTo" validate:"omitempty,gt=0"`
	ExpectedCompletion *string     `json:"expectedCompletion"`
}

func (d UpdateProjectDTO) Empty() bool {
	return d.CustomerName == nil && d.ContactPerson == nil && d.Email == nil &&
		d.Phone == nil && d.Address == nil && d.ServiceType == nil &&
		d.Bandwidth == nil && !d.Requirements.Valid && d.AssignedTo == nil &&
		d.ExpectedCompletion == nil
}

// ChangeStageDTO carries a stage transition request. ChangedBy defaults to
// the project's assignee when omitted.
type ChangeStageDTO struct {
	Stage     int    `json:"stage" validate:"required"`
	Notes     string `json:"notes"`
	ChangedBy int64  `json:"changedBy" validate:"omitempty,gt=0"`
}
