package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yonatanberih/pulse/internal/domain/entity"
	usecasecontract "github.com/yonatanberih/pulse/internal/usecase/contract"
)

func uploaderViewer() entity.Viewer {
	return entity.Viewer{ID: "viewer-1", Name: "Ada"}
}

func beginSelected(t *testing.T, uc *UploadUsecase) string {
	t.Helper()
	id, err := uc.Begin(uploaderViewer())
	assert.NoError(t, err)
	assert.NoError(t, uc.Select(id, "clip.mp4", "video/mp4", 1024))
	return id
}

func TestUploadBeginRequiresSignIn(t *testing.T) {
	uc := NewUploadUsecase(newFakeStorage(), newFakeContentRepo(), &fakeUUIDGen{}, nopLogger{})

	_, err := uc.Begin(entity.Viewer{Device: "device-9"})
	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestUploadSelectRejectsNonVideo(t *testing.T) {
	uc := NewUploadUsecase(newFakeStorage(), newFakeContentRepo(), &fakeUUIDGen{}, nopLogger{})
	id, err := uc.Begin(uploaderViewer())
	assert.NoError(t, err)

	err = uc.Select(id, "photo.png", "image/png", 512)
	assert.ErrorIs(t, err, ErrInvalidFileType)

	// The attempt stays selectable; a valid pick recovers it.
	status, ok := uc.Status(id)
	assert.True(t, ok)
	assert.Equal(t, UploadStateSelecting, status.State)
	assert.NotEmpty(t, status.Error)

	assert.NoError(t, uc.Select(id, "clip.mp4", "video/mp4", 1024))
	status, _ = uc.Status(id)
	assert.Empty(t, status.Error)
}

func TestUploadRunWithoutSelection(t *testing.T) {
	uc := NewUploadUsecase(newFakeStorage(), newFakeContentRepo(), &fakeUUIDGen{}, nopLogger{})
	id, _ := uc.Begin(uploaderViewer())

	_, err := uc.Run(context.Background(), id, strings.NewReader("data"), usecasecontract.UploadMeta{Kind: entity.ContentKindVideo})
	assert.ErrorIs(t, err, ErrUploadState)
}

func TestUploadRunReachesDone(t *testing.T) {
	storage := newFakeStorage()
	storage.ProgressSteps = []int{25, 50, 75}
	contentRepo := newFakeContentRepo()
	uc := NewUploadUsecase(storage, contentRepo, &fakeUUIDGen{}, nopLogger{})
	id := beginSelected(t, uc)

	content, err := uc.Run(context.Background(), id, strings.NewReader("video-bytes"), usecasecontract.UploadMeta{
		Kind:    entity.ContentKindVideo,
		Caption: "first clip",
	})
	assert.NoError(t, err)
	assert.Equal(t, "viewer-1", content.AuthorID)
	assert.Equal(t, "first clip", content.Caption)

	// The committed record starts with zero counters and empty sets.
	assert.Equal(t, 0, content.LikeCount)
	assert.Equal(t, 0, content.CommentCount)
	assert.NotNil(t, content.LikedBy)
	assert.Empty(t, content.LikedBy)
	assert.Len(t, contentRepo.Created, 1)

	status, _ := uc.Status(id)
	assert.Equal(t, UploadStateDone, status.State)
	assert.Equal(t, 100, status.Progress)
	assert.Equal(t, content.ID, status.ContentID)
	assert.Contains(t, status.MediaURL, "videos/")
}

func TestUploadCancelMidTransfer(t *testing.T) {
	storage := newFakeStorage()
	storage.Block = true
	storage.ProgressSteps = []int{47}
	contentRepo := newFakeContentRepo()
	uc := NewUploadUsecase(storage, contentRepo, &fakeUUIDGen{}, nopLogger{})
	id := beginSelected(t, uc)

	done := make(chan error, 1)
	go func() {
		_, err := uc.Run(context.Background(), id, strings.NewReader("video-bytes"), usecasecontract.UploadMeta{Kind: entity.ContentKindVideo})
		done <- err
	}()

	<-storage.started
	assert.Eventually(t, func() bool {
		status, _ := uc.Status(id)
		return status.State == UploadStateUploading && status.Progress == 47
	}, time.Second, 5*time.Millisecond)

	assert.NoError(t, uc.Cancel(id))

	err := <-done
	assert.ErrorIs(t, err, ErrUploadCancelled)

	// Cancellation is terminal but not a failure: no record, no error
	// message, state Cancelled.
	status, _ := uc.Status(id)
	assert.Equal(t, UploadStateCancelled, status.State)
	assert.Empty(t, status.Error)
	assert.Empty(t, contentRepo.Created)
}

func TestUploadCancelOutsideTransfer(t *testing.T) {
	uc := NewUploadUsecase(newFakeStorage(), newFakeContentRepo(), &fakeUUIDGen{}, nopLogger{})
	id, _ := uc.Begin(uploaderViewer())

	assert.ErrorIs(t, uc.Cancel(id), ErrUploadState)
	assert.ErrorIs(t, uc.Cancel("missing"), ErrUploadNotFound)
}

func TestUploadTransferFailure(t *testing.T) {
	storage := newFakeStorage()
	storage.ShouldFailUpload = true
	uc := NewUploadUsecase(storage, newFakeContentRepo(), &fakeUUIDGen{}, nopLogger{})
	id := beginSelected(t, uc)

	_, err := uc.Run(context.Background(), id, strings.NewReader("x"), usecasecontract.UploadMeta{Kind: entity.ContentKindVideo})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUploadCancelled)

	status, _ := uc.Status(id)
	assert.Equal(t, UploadStateFailed, status.State)
	assert.NotEmpty(t, status.Error)
}

func TestUploadCommitFailureLeavesOrphan(t *testing.T) {
	storage := newFakeStorage()
	contentRepo := newFakeContentRepo()
	contentRepo.ShouldFailCreate = true
	uc := NewUploadUsecase(storage, contentRepo, &fakeUUIDGen{}, nopLogger{})
	id := beginSelected(t, uc)

	_, err := uc.Run(context.Background(), id, strings.NewReader("x"), usecasecontract.UploadMeta{Kind: entity.ContentKindVideo})
	assert.ErrorIs(t, err, ErrCommitFailed)

	// The stored object is reported, not removed.
	status, _ := uc.Status(id)
	assert.Equal(t, UploadStateFailed, status.State)
	assert.Empty(t, storage.Removed)
}

func TestUploadFailedAttemptCanReselect(t *testing.T) {
	storage := newFakeStorage()
	storage.ShouldFailUpload = true
	uc := NewUploadUsecase(storage, newFakeContentRepo(), &fakeUUIDGen{}, nopLogger{})
	id := beginSelected(t, uc)

	_, err := uc.Run(context.Background(), id, strings.NewReader("x"), usecasecontract.UploadMeta{Kind: entity.ContentKindVideo})
	assert.Error(t, err)

	storage.ShouldFailUpload = false
	assert.NoError(t, uc.Select(id, "clip2.mp4", "video/mp4", 2048))

	content, err := uc.Run(context.Background(), id, strings.NewReader("y"), usecasecontract.UploadMeta{Kind: entity.ContentKindVideo})
	assert.NoError(t, err)
	assert.Contains(t, content.MediaURL, "clip2.mp4")
}
