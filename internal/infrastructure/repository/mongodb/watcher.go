package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yonatanberih/pulse/internal/domain/contract"
	"github.com/yonatanberih/pulse/internal/domain/entity"
	usecasecontract "github.com/yonatanberih/pulse/internal/usecase/contract"
)

// ContentWatcher implements IContentWatcher over MongoDB change streams.
// Each subscription opens one stream scoped to the caller's context; the
// returned channel closes when the context ends or the stream errors.
type ContentWatcher struct {
	db          *mongo.Database
	commentRepo contract.ICommentRepository
	logger      usecasecontract.IAppLogger
}

// NewContentWatcher creates and returns a new ContentWatcher instance.
func NewContentWatcher(db *mongo.Database, commentRepo contract.ICommentRepository, logger usecasecontract.IAppLogger) *ContentWatcher {
	return &ContentWatcher{db: db, commentRepo: commentRepo, logger: logger}
}

var _ contract.IContentWatcher = (*ContentWatcher)(nil)

func collectionName(kind entity.ContentKind) string {
	if kind == entity.ContentKindVideo {
		return "videos"
	}
	return "blogs"
}

// WatchContent streams full-document snapshots of one content item on every
// remote change. Updates arrive with the post-image of the document so the
// snapshot is always whole, never a field diff.
func (w *ContentWatcher) WatchContent(ctx context.Context, kind entity.ContentKind, id string) (<-chan entity.ContentSnapshot, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"documentKey._id": id}}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)
	stream, err := w.db.Collection(collectionName(kind)).Watch(ctx, pipeline, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to watch %s %s: %w", kind, id, err)
	}

	out := make(chan entity.ContentSnapshot)
	go func() {
		defer close(out)
		defer stream.Close(context.Background())
		for stream.Next(ctx) {
			var event struct {
				FullDocument *entity.ContentSnapshot `bson:"fullDocument"`
			}
			if err := stream.Decode(&event); err != nil {
				w.logger.Warnf("content stream decode for %s %s: %v", kind, id, err)
				continue
			}
			// Delete events carry no post-image.
			if event.FullDocument == nil {
				continue
			}
			snap := *event.FullDocument
			snap.Kind = kind
			select {
			case out <- snap:
			case <-ctx.Done():
				return
			}
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			w.logger.Errorf("content stream for %s %s ended: %v", kind, id, err)
		}
	}()
	return out, nil
}

// WatchComments streams the full comment list of one content item, newest
// first, on every change to its comment collection. The stream only signals
// that something changed; the list itself is re-read so every delivery is a
// complete replacement, matching how the store layer consumes it.
func (w *ContentWatcher) WatchComments(ctx context.Context, kind entity.ContentKind, id string) (<-chan []*entity.Comment, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"fullDocument.content_kind": kind,
			"fullDocument.content_id":   id,
		}}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)
	stream, err := w.db.Collection("comments").Watch(ctx, pipeline, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to watch comments on %s %s: %w", kind, id, err)
	}

	out := make(chan []*entity.Comment)
	go func() {
		defer close(out)
		defer stream.Close(context.Background())
		for stream.Next(ctx) {
			list, err := w.commentRepo.ListByContent(ctx, kind, id)
			if err != nil {
				w.logger.Warnf("comment refresh for %s %s: %v", kind, id, err)
				continue
			}
			select {
			case out <- list:
			case <-ctx.Done():
				return
			}
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			w.logger.Errorf("comment stream for %s %s ended: %v", kind, id, err)
		}
	}()
	return out, nil
}
