package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/yonatanberih/pulse/internal/domain/contract"
	"github.com/yonatanberih/pulse/internal/domain/entity"
	usecasecontract "github.com/yonatanberih/pulse/internal/usecase/contract"
)

var (
	// ErrNotOwner rejects edits or deletes of content the viewer does not
	// own.
	ErrNotOwner = errors.New("not the content owner")
	// ErrInvalidMediaType rejects article media outside the accepted
	// image/video/audio types.
	ErrInvalidMediaType = errors.New("unsupported media type")
)

// ContentUsecase covers the content surface outside the optimistic mutation
// core: feeds with offset slicing, article creation through the third-party
// media endpoint, and owner deletion. Deleting an item does not cascade to
// its comments.
type ContentUsecase struct {
	contentRepo contract.IContentRepository
	media       contract.IMediaUploader
	uuidGen     contract.IUUIDGenerator
	logger      usecasecontract.IAppLogger
}

// NewContentUsecase creates and returns a new ContentUsecase instance.
func NewContentUsecase(
	contentRepo contract.IContentRepository,
	media contract.IMediaUploader,
	uuidGen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *ContentUsecase {
	return &ContentUsecase{
		contentRepo: contentRepo,
		media:       media,
		uuidGen:     uuidGen,
		logger:      logger,
	}
}

var _ usecasecontract.IContentUseCase = (*ContentUsecase)(nil)

// ListFeed returns the latest items of a kind, newest first.
func (u *ContentUsecase) ListFeed(ctx context.Context, kind entity.ContentKind, offset, limit int) ([]*entity.Content, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := u.contentRepo.List(ctx, kind, contract.Pagination{Offset: offset, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s feed: %w", kind, err)
	}
	return list, nil
}

// ListSaved returns the blogs the viewer has bookmarked.
func (u *ContentUsecase) ListSaved(ctx context.Context, viewer entity.Viewer, offset, limit int) ([]*entity.Content, error) {
	if !viewer.IsSignedIn() {
		return nil, ErrNotSignedIn
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	list, err := u.contentRepo.ListSavedBy(ctx, viewer.ID, contract.Pagination{Offset: offset, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list saved blogs: %w", err)
	}
	return list, nil
}

// GetByID returns one content item.
func (u *ContentUsecase) GetByID(ctx context.Context, kind entity.ContentKind, id string) (*entity.Content, error) {
	return u.contentRepo.GetByID(ctx, kind, id)
}

// CreateBlog publishes an article with counters zeroed and membership sets
// empty. Media, when present, is pushed through the third-party endpoint;
// articles accept image, video, and audio files.
func (u *ContentUsecase) CreateBlog(ctx context.Context, viewer entity.Viewer, title, body string, categories []string, mediaName string, media io.Reader, mediaType string) (*entity.Content, error) {
	if !viewer.IsSignedIn() {
		return nil, ErrNotSignedIn
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title is required")
	}

	mediaURL := ""
	if media != nil {
		if !articleMediaAllowed(mediaType) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidMediaType, mediaType)
		}
		url, err := u.media.UploadMedia(ctx, mediaName, media, mediaType)
		if err != nil {
			return nil, fmt.Errorf("media upload failed: %w", err)
		}
		mediaURL = url
	}

	content := &entity.Content{
		ID:           u.uuidGen.NewUUID(),
		Kind:         entity.ContentKindBlog,
		AuthorID:     viewer.ID,
		AuthorName:   viewer.DisplayName(),
		AuthorPhoto:  viewer.PhotoURL,
		Title:        title,
		Body:         body,
		Categories:   categories,
		MediaURL:     mediaURL,
		LikedBy:      []string{},
		SavedBy:      []string{},
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := u.contentRepo.Create(ctx, content); err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}
	return content, nil
}

// Delete removes the viewer's own content. Comment records are left in
// place.
func (u *ContentUsecase) Delete(ctx context.Context, viewer entity.Viewer, kind entity.ContentKind, id string) error {
	if !viewer.IsSignedIn() {
		return ErrNotSignedIn
	}
	if err := u.contentRepo.Delete(ctx, kind, id, viewer.ID); err != nil {
		return fmt.Errorf("failed to delete %s: %w", kind, err)
	}
	return nil
}

func articleMediaAllowed(contentType string) bool {
	return strings.HasPrefix(contentType, "image/") ||
		strings.HasPrefix(contentType, "video/") ||
		strings.HasPrefix(contentType, "audio/")
}
