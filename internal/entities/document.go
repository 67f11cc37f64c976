package entities

import "time"

// ProjectDocument is metadata for an uploaded file attached to a project. The
// binary payload lives in file storage; only the URL pointer is kept here.
type ProjectDocument struct {
	ID         int64     `json:"id"`
	ProjectID  int64     `json:"projectId"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
}
