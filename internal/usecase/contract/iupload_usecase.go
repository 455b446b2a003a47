package contract

import (
	"context"
	"io"

	"github.com/yonatanberih/pulse/internal/domain/entity"
)

// UploadMeta is the metadata committed alongside a finished binary transfer.
type UploadMeta struct {
	Kind    entity.ContentKind
	Title   string
	Caption string
	Body    string
}

// UploadStatus is a point-in-time view of one upload attempt.
type UploadStatus struct {
	State     string `json:"state"`
	Progress  int    `json:"progress"`
	MediaURL  string `json:"media_url,omitempty"`
	ContentID string `json:"content_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// IUploadUseCase drives the upload state machine:
// Idle -> Selecting -> Uploading -> Committing -> Done, with Cancelled and
// Failed reachable from the transfer and commit steps.
type IUploadUseCase interface {
	// Begin opens a new attempt for the viewer and returns its id.
	Begin(viewer entity.Viewer) (string, error)
	// Select validates the chosen file by MIME-type prefix.
	Select(uploadID, filename, contentType string, size int64) error
	// Run transfers the binary and commits the metadata record. It blocks
	// until the attempt reaches a terminal state.
	Run(ctx context.Context, uploadID string, r io.Reader, meta UploadMeta) (*entity.Content, error)
	// Cancel aborts an in-flight transfer. Cancellation is user-initiated
	// and is not reported as a failure.
	Cancel(uploadID string) error
	Status(uploadID string) (UploadStatus, bool)
}
