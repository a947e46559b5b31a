package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type PersistenceOutcome string

const (
	OutcomeSaved   PersistenceOutcome = "saved"
	OutcomeFailed  PersistenceOutcome = "failed"
	OutcomeSkipped PersistenceOutcome = "skipped"
)

// Artifact is the rendered contract of one signing attempt.
type Artifact struct {
	Content    []byte
	FileName   string
	RemotePath string
	CreatedAt  time.Time
}

type UploadStatus string

const (
	UploadStored UploadStatus = "stored"
	UploadFailed UploadStatus = "failed"
)

// Upload is one journaled write to the remote store.
type Upload struct {
	ID        uuid.UUID    `json:"id"`
	Path      string       `json:"path"`
	Size      int64        `json:"size"`
	SHA       string       `json:"sha"`
	Created   bool         `json:"created"`
	Status    UploadStatus `json:"status"`
	Error     string       `json:"error,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

// RemoteFile describes a file in the remote store.
type RemoteFile struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	SHA         string `json:"sha"`
	Size        int64  `json:"size"`
	HTMLURL     string `json:"htmlUrl"`
	DownloadURL string `json:"downloadUrl"`
}

type OrderBy string

func (o OrderBy) String() string {
	return string(o)
}

func (o OrderBy) IsValid() bool {
	switch o {
	case ASC, DESC:
		return true
	default:
		return false
	}
}

const (
	ASC  OrderBy = "asc"
	DESC OrderBy = "desc"
)

type UploadsFilter struct {
	Status  UploadStatus
	Page    uint64
	Limit   uint64
	OrderBy OrderBy
}
