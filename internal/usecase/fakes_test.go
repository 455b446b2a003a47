package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/yonatanberih/pulse/internal/domain/contract"
	"github.com/yonatanberih/pulse/internal/domain/entity"
	usecasecontract "github.com/yonatanberih/pulse/internal/usecase/contract"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Fatalf(string, ...interface{}) {}

type fakeUUIDGen struct {
	n int
}

func (g *fakeUUIDGen) NewUUID() string {
	g.n++
	return fmt.Sprintf("uuid-%d", g.n)
}

// fakeContentRepo serves a fixed content map and records engagement calls.
type fakeContentRepo struct {
	mu       sync.Mutex
	contents map[string]*entity.Content

	ShouldFailLike      bool
	ShouldFailUnlike    bool
	ShouldFailSave      bool
	ShouldFailUnsave    bool
	ShouldFailIncrement bool
	ShouldFailCreate    bool

	LikeCalls      []string
	UnlikeCalls    []string
	SaveCalls      []string
	UnsaveCalls    []string
	IncrementCalls int
	Created        []*entity.Content
}

func newFakeContentRepo(contents ...*entity.Content) *fakeContentRepo {
	m := make(map[string]*entity.Content)
	for _, c := range contents {
		m[c.ID] = c
	}
	return &fakeContentRepo{contents: m}
}

func (r *fakeContentRepo) Create(ctx context.Context, content *entity.Content) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ShouldFailCreate {
		return errors.New("create failed")
	}
	r.Created = append(r.Created, content)
	r.contents[content.ID] = content
	return nil
}

func (r *fakeContentRepo) GetByID(ctx context.Context, kind entity.ContentKind, id string) (*entity.Content, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.contents[id]
	if !ok {
		return nil, errors.New("content not found")
	}
	return c, nil
}

func (r *fakeContentRepo) List(ctx context.Context, kind entity.ContentKind, p contract.Pagination) ([]*entity.Content, error) {
	return nil, nil
}

func (r *fakeContentRepo) ListSavedBy(ctx context.Context, userID string, p contract.Pagination) ([]*entity.Content, error) {
	return nil, nil
}

func (r *fakeContentRepo) Delete(ctx context.Context, kind entity.ContentKind, id, ownerID string) error {
	return nil
}

func (r *fakeContentRepo) Like(ctx context.Context, kind entity.ContentKind, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ShouldFailLike {
		return errors.New("like failed")
	}
	r.LikeCalls = append(r.LikeCalls, id)
	return nil
}

func (r *fakeContentRepo) Unlike(ctx context.Context, kind entity.ContentKind, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ShouldFailUnlike {
		return errors.New("unlike failed")
	}
	r.UnlikeCalls = append(r.UnlikeCalls, id)
	return nil
}

func (r *fakeContentRepo) Save(ctx context.Context, kind entity.ContentKind, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ShouldFailSave {
		return errors.New("save failed")
	}
	r.SaveCalls = append(r.SaveCalls, id)
	return nil
}

func (r *fakeContentRepo) Unsave(ctx context.Context, kind entity.ContentKind, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ShouldFailUnsave {
		return errors.New("unsave failed")
	}
	r.UnsaveCalls = append(r.UnsaveCalls, id)
	return nil
}

func (r *fakeContentRepo) IncrementComments(ctx context.Context, kind entity.ContentKind, id string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ShouldFailIncrement {
		return errors.New("increment failed")
	}
	r.IncrementCalls++
	return nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments map[string]*entity.Comment

	ShouldFailCreate bool
	Created          []*entity.Comment

	// When set, Create signals CreateStarted and parks until
	// CreateRelease is closed, so tests can hold a submit in flight.
	CreateStarted chan struct{}
	CreateRelease chan struct{}
}

func newFakeCommentRepo(comments ...*entity.Comment) *fakeCommentRepo {
	m := make(map[string]*entity.Comment)
	for _, c := range comments {
		m[c.ID] = c
	}
	return &fakeCommentRepo{comments: m}
}

func (r *fakeCommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	if r.CreateStarted != nil {
		r.CreateStarted <- struct{}{}
		<-r.CreateRelease
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ShouldFailCreate {
		return errors.New("comment create failed")
	}
	r.Created = append(r.Created, comment)
	r.comments[comment.ID] = comment
	return nil
}

func (r *fakeCommentRepo) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok {
		return nil, errors.New("comment not found")
	}
	return c, nil
}

func (r *fakeCommentRepo) ListByContent(ctx context.Context, kind entity.ContentKind, contentID string) ([]*entity.Comment, error) {
	return nil, nil
}

func (r *fakeCommentRepo) CountByContent(ctx context.Context, kind entity.ContentKind, contentID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, c := range r.comments {
		if c.ContentKind == kind && c.ContentID == contentID {
			n++
		}
	}
	return n, nil
}

type fakeUserRepo struct {
	mu        sync.Mutex
	users     map[string]*entity.User
	following map[string]bool

	ShouldFailFollow   bool
	ShouldFailUnfollow bool
	ShouldFailUpdate   bool

	FollowCalls   int
	UnfollowCalls int
	UpdatedFields []map[string]interface{}
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	m := make(map[string]*entity.User)
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserRepo{users: m, following: make(map[string]bool)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	return u, nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.New("user not found")
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, id string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ShouldFailUpdate {
		return errors.New("update failed")
	}
	r.UpdatedFields = append(r.UpdatedFields, fields)
	u, ok := r.users[id]
	if !ok {
		return errors.New("user not found")
	}
	if name, ok := fields["username"].(string); ok {
		u.Username = name
	}
	if bio, ok := fields["bio"].(string); ok {
		u.Bio = bio
	}
	if photo, ok := fields["photo_url"].(string); ok {
		u.PhotoURL = photo
	}
	return nil
}

func (r *fakeUserRepo) Follow(ctx context.Context, followerID, followeeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ShouldFailFollow {
		return errors.New("follow failed")
	}
	r.FollowCalls++
	r.following[followeeID] = true
	return nil
}

func (r *fakeUserRepo) Unfollow(ctx context.Context, followerID, followeeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ShouldFailUnfollow {
		return errors.New("unfollow failed")
	}
	r.UnfollowCalls++
	delete(r.following, followeeID)
	return nil
}

func (r *fakeUserRepo) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.following[followeeID], nil
}

func (r *fakeUserRepo) ListFollowers(ctx context.Context, userID string) ([]*entity.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) ListFollowing(ctx context.Context, userID string) ([]*entity.User, error) {
	return nil, nil
}

type fakeEngagementCache struct {
	mu    sync.Mutex
	liked map[string]map[string]bool
	saved map[string]map[string]bool
}

func newFakeEngagementCache() *fakeEngagementCache {
	return &fakeEngagementCache{
		liked: make(map[string]map[string]bool),
		saved: make(map[string]map[string]bool),
	}
}

func (c *fakeEngagementCache) add(m map[string]map[string]bool, viewerID, contentID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if m[viewerID] == nil {
		m[viewerID] = make(map[string]bool)
	}
	m[viewerID][contentID] = true
}

func (c *fakeEngagementCache) remove(m map[string]map[string]bool, viewerID, contentID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(m[viewerID], contentID)
}

func (c *fakeEngagementCache) list(m map[string]map[string]bool, viewerID string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []string
	for id := range m[viewerID] {
		out = append(out, id)
	}
	return out
}

func (c *fakeEngagementCache) AddLiked(ctx context.Context, viewerID, contentID string) error {
	c.add(c.liked, viewerID, contentID)
	return nil
}

func (c *fakeEngagementCache) RemoveLiked(ctx context.Context, viewerID, contentID string) error {
	c.remove(c.liked, viewerID, contentID)
	return nil
}

func (c *fakeEngagementCache) ListLiked(ctx context.Context, viewerID string) ([]string, error) {
	return c.list(c.liked, viewerID), nil
}

func (c *fakeEngagementCache) AddSaved(ctx context.Context, viewerID, contentID string) error {
	c.add(c.saved, viewerID, contentID)
	return nil
}

func (c *fakeEngagementCache) RemoveSaved(ctx context.Context, viewerID, contentID string) error {
	c.remove(c.saved, viewerID, contentID)
	return nil
}

func (c *fakeEngagementCache) ListSaved(ctx context.Context, viewerID string) ([]string, error) {
	return c.list(c.saved, viewerID), nil
}

// recordedNotification captures one Notify call.
type recordedNotification struct {
	RecipientID string
	ActorID     string
	Kind        entity.NotificationKind
	TargetID    string
	Content     string
}

type fakeNotifier struct {
	mu    sync.Mutex
	Calls []recordedNotification
}

func (n *fakeNotifier) Notify(ctx context.Context, recipientID string, actor entity.Viewer, kind entity.NotificationKind, target usecasecontract.NotificationTarget, content string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Calls = append(n.Calls, recordedNotification{
		RecipientID: recipientID,
		ActorID:     actor.ID,
		Kind:        kind,
		TargetID:    target.ID,
		Content:     content,
	})
}

func (n *fakeNotifier) List(ctx context.Context, recipientID string, offset, limit int) ([]*entity.Notification, error) {
	return nil, nil
}

func (n *fakeNotifier) MarkRead(ctx context.Context, recipientID, notificationID string) error {
	return nil
}

func (n *fakeNotifier) ClearAll(ctx context.Context, recipientID string) (int64, error) {
	return 0, nil
}

func (n *fakeNotifier) recorded() []recordedNotification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]recordedNotification(nil), n.Calls...)
}

// fakeWatcher hands out caller-controlled channels.
type fakeWatcher struct {
	contentCh chan entity.ContentSnapshot
	commentCh chan []*entity.Comment
}

func newFakeWatcher() *fakeWatcher {
	return &fakeWatcher{
		contentCh: make(chan entity.ContentSnapshot),
		commentCh: make(chan []*entity.Comment),
	}
}

func (w *fakeWatcher) WatchContent(ctx context.Context, kind entity.ContentKind, id string) (<-chan entity.ContentSnapshot, error) {
	return w.contentCh, nil
}

func (w *fakeWatcher) WatchComments(ctx context.Context, kind entity.ContentKind, id string) (<-chan []*entity.Comment, error) {
	return w.commentCh, nil
}

// fakeStorage simulates the binary transfer. With Block set, Upload parks
// until the context is cancelled, mimicking a long transfer.
type fakeStorage struct {
	ShouldFailUpload bool
	Block            bool
	ProgressSteps    []int

	mu      sync.Mutex
	Removed []string
	started chan struct{}
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{started: make(chan struct{}, 1)}
}

func (s *fakeStorage) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string, fn contract.ProgressFunc) (string, error) {
	select {
	case s.started <- struct{}{}:
	default:
	}
	if s.Block {
		for _, p := range s.ProgressSteps {
			fn(p)
		}
		<-ctx.Done()
		return "", ctx.Err()
	}
	if s.ShouldFailUpload {
		return "", errors.New("transfer interrupted")
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	for _, p := range s.ProgressSteps {
		fn(p)
	}
	fn(100)
	return "https://storage.test/" + key, nil
}

func (s *fakeStorage) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Removed = append(s.Removed, key)
	return nil
}
