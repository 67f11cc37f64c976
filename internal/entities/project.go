package entities

import (
	"time"

	"github.com/aarondl/null/v8"

	"fibertrack/internal/workflow"
)

// ServiceType is the kind of connectivity being installed.
type ServiceType string

const (
	ServiceFiber    ServiceType = "fiber"
	ServiceWireless ServiceType = "wireless"
)

func (t ServiceType) Valid() bool {
	return t == ServiceFiber || t == ServiceWireless
}

// Project tracks the installation of one customer service. ProjectCode is the
// system-generated human-readable id (P-<year>-<sequence>), immutable after
// creation. IsCompleted is derived from CurrentStage on every write path.
type Project struct {
	ID                 int64          `json:"id"`
	ProjectCode        string         `json:"projectId"`
	CustomerName       string         `json:"customerName"`
	ContactPerson      string         `json:"contactPerson"`
	Email              string         `json:"email"`
	Phone              string         `json:"phone"`
	Address            string         `json:"address"`
	ServiceType        ServiceType    `json:"serviceType"`
	Bandwidth          int            `json:"bandwidth"`
	Requirements       null.String    `json:"requirements"`
	AssignedTo         int64          `json:"assignedTo"`
	ExpectedCompletion string         `json:"expectedCompletion"`
	CurrentStage       workflow.Stage `json:"currentStage"`
	IsCompleted        bool           `json:"isCompleted"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}
