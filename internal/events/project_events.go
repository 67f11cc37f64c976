package events

import (
	"fibertrack/internal/entities"
)

const (
	ProjectCreatedName          = "project.created"
	ProjectUpdatedName          = "project.updated"
	ProjectStageChangedName     = "project.stage_changed"
	ProjectDocumentUploadedName = "project.document_uploaded"
)

// ProjectCreated fires after a project row is committed.
type ProjectCreated struct {
	Project entities.Project
}

func (ProjectCreated) Name() string { return ProjectCreatedName }

// ProjectUpdated fires after a details patch is committed.
type ProjectUpdated struct {
	Project entities.Project
}

func (ProjectUpdated) Name() string { return ProjectUpdatedName }

// ProjectStageChanged fires after a stage transition and its history entry
// are committed together.
type ProjectStageChanged struct {
	Project entities.Project
	Entry   entities.StageHistory
}

func (ProjectStageChanged) Name() string { return ProjectStageChangedName }

// ProjectDocumentUploaded fires after a document row is committed.
type ProjectDocumentUploaded struct {
	Project  entities.Project
	Document entities.ProjectDocument
}

func (ProjectDocumentUploaded) Name() string { return ProjectDocumentUploadedName }
