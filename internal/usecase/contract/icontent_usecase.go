package contract

import (
	"context"
	"io"

	"github.com/yonatanberih/pulse/internal/domain/entity"
)

// IContentUseCase is the content CRUD surface outside the optimistic
// mutation core: feeds, article creation, and owner deletion.
type IContentUseCase interface {
	ListFeed(ctx context.Context, kind entity.ContentKind, offset, limit int) ([]*entity.Content, error)
	ListSaved(ctx context.Context, viewer entity.Viewer, offset, limit int) ([]*entity.Content, error)
	GetByID(ctx context.Context, kind entity.ContentKind, id string) (*entity.Content, error)
	// CreateBlog publishes an article; media, when present, goes through
	// the third-party media endpoint.
	CreateBlog(ctx context.Context, viewer entity.Viewer, title, body string, categories []string, mediaName string, media io.Reader, mediaType string) (*entity.Content, error)
	// Delete removes the viewer's own content. Comments are not cascaded.
	Delete(ctx context.Context, viewer entity.Viewer, kind entity.ContentKind, id string) error
}
