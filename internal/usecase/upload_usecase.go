package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/yonatanberih/pulse/internal/domain/contract"
	"github.com/yonatanberih/pulse/internal/domain/entity"
	"github.com/yonatanberih/pulse/internal/infrastructure/metrics"
	usecasecontract "github.com/yonatanberih/pulse/internal/usecase/contract"
)

// Upload pipeline states.
const (
	UploadStateIdle       = "idle"
	UploadStateSelecting  = "selecting"
	UploadStateUploading  = "uploading"
	UploadStateCommitting = "committing"
	UploadStateDone       = "done"
	UploadStateCancelled  = "cancelled"
	UploadStateFailed     = "failed"
)

var (
	// ErrInvalidFileType rejects a selected file whose MIME type does not
	// match the accepted prefixes. The attempt stays in Selecting.
	ErrInvalidFileType = errors.New("invalid file type")
	// ErrUploadCancelled marks a user-initiated abort of the transfer.
	// Cancellation is not a failure and carries no user-facing error.
	ErrUploadCancelled = errors.New("upload cancelled")
	// ErrCommitFailed marks the partial-commit failure mode: the binary
	// was stored but no metadata record exists. The orphaned object is
	// reported, not cleaned up.
	ErrCommitFailed = errors.New("metadata commit failed")
	// ErrUploadNotFound is returned for an unknown upload id.
	ErrUploadNotFound = errors.New("upload not found")
	// ErrUploadState rejects an operation invalid in the attempt's
	// current state.
	ErrUploadState = errors.New("invalid upload state")
)

type uploadAttempt struct {
	mu          sync.Mutex
	id          string
	viewer      entity.Viewer
	state       string
	progress    int
	filename    string
	contentType string
	size        int64
	mediaURL    string
	contentID   string
	err         string
	cancel      context.CancelFunc
}

// UploadUsecase drives the video publishing pipeline: a resumable binary
// transfer to object storage with progress and cooperative cancellation,
// followed by a metadata-record commit with counters at zero and membership
// sets empty.
type UploadUsecase struct {
	storage     contract.IObjectStorage
	contentRepo contract.IContentRepository
	uuidGen     contract.IUUIDGenerator
	logger      usecasecontract.IAppLogger

	mu       sync.Mutex
	attempts map[string]*uploadAttempt
}

// NewUploadUsecase creates and returns a new UploadUsecase instance.
func NewUploadUsecase(
	storage contract.IObjectStorage,
	contentRepo contract.IContentRepository,
	uuidGen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *UploadUsecase {
	return &UploadUsecase{
		storage:     storage,
		contentRepo: contentRepo,
		uuidGen:     uuidGen,
		logger:      logger,
		attempts:    make(map[string]*uploadAttempt),
	}
}

var _ usecasecontract.IUploadUseCase = (*UploadUsecase)(nil)

// Begin opens a new attempt for the viewer and returns its id.
func (u *UploadUsecase) Begin(viewer entity.Viewer) (string, error) {
	if !viewer.IsSignedIn() {
		return "", ErrNotSignedIn
	}
	a := &uploadAttempt{
		id:     u.uuidGen.NewUUID(),
		viewer: viewer,
		state:  UploadStateIdle,
	}
	u.mu.Lock()
	u.attempts[a.id] = a
	u.mu.Unlock()
	return a.id, nil
}

// Select validates the chosen file by MIME-type prefix. An invalid file
// leaves the attempt in Selecting with the rejection surfaced. A Failed
// attempt may re-select and retry.
func (u *UploadUsecase) Select(uploadID, filename, contentType string, size int64) error {
	a, ok := u.attempt(uploadID)
	if !ok {
		return ErrUploadNotFound
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	switch a.state {
	case UploadStateIdle, UploadStateSelecting, UploadStateFailed:
	default:
		return fmt.Errorf("%w: cannot select in state %s", ErrUploadState, a.state)
	}
	a.state = UploadStateSelecting
	if !strings.HasPrefix(contentType, "video/") {
		a.err = fmt.Sprintf("rejected %q: not a video", contentType)
		return fmt.Errorf("%w: %s", ErrInvalidFileType, contentType)
	}
	a.filename = filename
	a.contentType = contentType
	a.size = size
	a.err = ""
	return nil
}

// Run transfers the binary and commits the metadata record, blocking until
// the attempt reaches a terminal state. A cancelled transfer returns
// ErrUploadCancelled, which callers treat as a non-error outcome; a commit
// failure leaves an orphaned stored object (reported, not reconciled).
func (u *UploadUsecase) Run(ctx context.Context, uploadID string, r io.Reader, meta usecasecontract.UploadMeta) (*entity.Content, error) {
	a, ok := u.attempt(uploadID)
	if !ok {
		return nil, ErrUploadNotFound
	}

	a.mu.Lock()
	if a.state != UploadStateSelecting || a.filename == "" {
		a.mu.Unlock()
		return nil, fmt.Errorf("%w: no file selected", ErrUploadState)
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.cancel = cancel
	a.state = UploadStateUploading
	a.progress = 0
	a.mu.Unlock()

	key := fmt.Sprintf("videos/%d_%s", time.Now().UnixMilli(), a.filename)
	url, err := u.storage.Upload(ctx, key, r, a.size, a.contentType, func(percent int) {
		a.mu.Lock()
		a.progress = percent
		a.mu.Unlock()
	})
	if err != nil {
		a.mu.Lock()
		a.cancel = nil
		if errors.Is(err, context.Canceled) {
			a.state = UploadStateCancelled
			a.mu.Unlock()
			metrics.UploadsTotal.WithLabelValues(UploadStateCancelled).Inc()
			return nil, ErrUploadCancelled
		}
		a.state = UploadStateFailed
		a.err = err.Error()
		a.mu.Unlock()
		metrics.UploadsTotal.WithLabelValues(UploadStateFailed).Inc()
		return nil, fmt.Errorf("transfer failed: %w", err)
	}

	a.mu.Lock()
	a.cancel = nil
	a.state = UploadStateCommitting
	a.progress = 100
	a.mediaURL = url
	a.mu.Unlock()

	content := &entity.Content{
		ID:           u.uuidGen.NewUUID(),
		Kind:         meta.Kind,
		AuthorID:     a.viewer.ID,
		AuthorName:   a.viewer.DisplayName(),
		AuthorPhoto:  a.viewer.PhotoURL,
		Title:        meta.Title,
		Caption:      meta.Caption,
		Body:         meta.Body,
		MediaURL:     url,
		LikeCount:    0,
		CommentCount: 0,
		ShareCount:   0,
		LikedBy:      []string{},
		SavedBy:      []string{},
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := u.contentRepo.Create(ctx, content); err != nil {
		a.mu.Lock()
		a.state = UploadStateFailed
		a.err = err.Error()
		a.mu.Unlock()
		metrics.UploadsTotal.WithLabelValues(UploadStateFailed).Inc()
		u.logger.Errorf("orphaned object at %s: stored but metadata commit failed: %v", key, err)
		return nil, fmt.Errorf("%w: %v", ErrCommitFailed, err)
	}

	a.mu.Lock()
	a.state = UploadStateDone
	a.contentID = content.ID
	a.mu.Unlock()
	metrics.UploadsTotal.WithLabelValues(UploadStateDone).Inc()
	return content, nil
}

// Cancel aborts an in-flight transfer.
func (u *UploadUsecase) Cancel(uploadID string) error {
	a, ok := u.attempt(uploadID)
	if !ok {
		return ErrUploadNotFound
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != UploadStateUploading || a.cancel == nil {
		return fmt.Errorf("%w: nothing to cancel in state %s", ErrUploadState, a.state)
	}
	a.cancel()
	return nil
}

// Status returns a point-in-time view of the attempt.
func (u *UploadUsecase) Status(uploadID string) (usecasecontract.UploadStatus, bool) {
	a, ok := u.attempt(uploadID)
	if !ok {
		return usecasecontract.UploadStatus{}, false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return usecasecontract.UploadStatus{
		State:     a.state,
		Progress:  a.progress,
		MediaURL:  a.mediaURL,
		ContentID: a.contentID,
		Error:     a.err,
	}, true
}

func (u *UploadUsecase) attempt(id string) (*uploadAttempt, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	a, ok := u.attempts[id]
	return a, ok
}
