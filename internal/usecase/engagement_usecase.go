package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/yonatanberih/pulse/internal/domain/contract"
	"github.com/yonatanberih/pulse/internal/domain/entity"
	"github.com/yonatanberih/pulse/internal/infrastructure/metrics"
	usecasecontract "github.com/yonatanberih/pulse/internal/usecase/contract"
)

var (
	// ErrNotSignedIn rejects an engagement action attempted without a
	// session, before any network call is made.
	ErrNotSignedIn = errors.New("not signed in")
	// ErrSubmitInFlight rejects a comment submit while another submit for
	// the same item is still in flight.
	ErrSubmitInFlight = errors.New("comment submission already in flight")
	// ErrEmptyComment rejects a comment whose trimmed text is empty.
	ErrEmptyComment = errors.New("comment text cannot be empty")
	// ErrReplyToReply rejects replies deeper than one level.
	ErrReplyToReply = errors.New("replies cannot be replied to")
	// ErrSelfFollow rejects a viewer following themselves.
	ErrSelfFollow = errors.New("cannot follow yourself")
	// ErrSaveUnsupported rejects saving content kinds without a saved-by set.
	ErrSaveUnsupported = errors.New("only blogs can be saved")
)

// commentExcerptLen is how much of a comment's text is carried into the
// fan-out notification.
const commentExcerptLen = 50

// session is the per-viewer synchronization state: the engagement store, the
// interaction guard, the in-flight comment submits, and the live
// subscriptions held open for hydrated items.
type session struct {
	viewer entity.Viewer
	store  *EngagementStore
	guard  *InteractionGuard

	mu       sync.Mutex
	inflight map[string]bool
	watches  map[string]func()
}

// EngagementUsecase applies optimistic local mutations, issues the
// corresponding remote mutations, and reconciles success or failure. Local
// state is visible immediately; a remote failure reverts it exactly and
// surfaces the error, never retrying automatically.
type EngagementUsecase struct {
	contentRepo contract.IContentRepository
	commentRepo contract.ICommentRepository
	userRepo    contract.IUserRepository
	cache       contract.IEngagementCache
	uuidGen     contract.IUUIDGenerator
	notifier    usecasecontract.INotificationUseCase
	sync        *RealtimeSync
	cooldown    time.Duration
	logger      usecasecontract.IAppLogger

	mu       sync.Mutex
	sessions map[string]*session
}

// NewEngagementUsecase creates and returns a new EngagementUsecase instance.
func NewEngagementUsecase(
	contentRepo contract.IContentRepository,
	commentRepo contract.ICommentRepository,
	userRepo contract.IUserRepository,
	cache contract.IEngagementCache,
	uuidGen contract.IUUIDGenerator,
	notifier usecasecontract.INotificationUseCase,
	sync *RealtimeSync,
	cooldown time.Duration,
	logger usecasecontract.IAppLogger,
) *EngagementUsecase {
	return &EngagementUsecase{
		contentRepo: contentRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		cache:       cache,
		uuidGen:     uuidGen,
		notifier:    notifier,
		sync:        sync,
		cooldown:    cooldown,
		logger:      logger,
		sessions:    make(map[string]*session),
	}
}

var _ usecasecontract.IEngagementUseCase = (*EngagementUsecase)(nil)

func (u *EngagementUsecase) sessionFor(viewer entity.Viewer) *session {
	key := viewer.SessionKey()
	u.mu.Lock()
	defer u.mu.Unlock()
	if sess, ok := u.sessions[key]; ok {
		return sess
	}
	sess := &session{
		viewer:   viewer,
		store:    NewEngagementStore(),
		guard:    NewInteractionGuard(u.cooldown),
		inflight: make(map[string]bool),
		watches:  make(map[string]func()),
	}
	u.sessions[key] = sess
	return sess
}

func (u *EngagementUsecase) lookupSession(key string) (*session, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	sess, ok := u.sessions[key]
	return sess, ok
}

// Hydrate loads an item's engagement state into the session store and opens
// its real-time subscription. For signed-in viewers membership comes from the
// server sets; unauthenticated viewers fall back to the device mirror.
func (u *EngagementUsecase) Hydrate(ctx context.Context, viewer entity.Viewer, kind entity.ContentKind, contentID string) (entity.EngagementState, error) {
	sess := u.sessionFor(viewer)

	content, err := u.contentRepo.GetByID(ctx, kind, contentID)
	if err != nil {
		return entity.EngagementState{}, fmt.Errorf("failed to load content: %w", err)
	}

	st := entity.EngagementState{
		LikeCount:    content.LikeCount,
		CommentCount: content.CommentCount,
		ShareCount:   content.ShareCount,
		OwnerID:      content.AuthorID,
	}
	// The denormalized counter on the content record can drift from the
	// comment collection when a counter bump failed after a successful
	// write. The collection is authoritative, so hydration recounts.
	if n, err := u.commentRepo.CountByContent(ctx, kind, contentID); err == nil {
		st.CommentCount = int(n)
	} else {
		u.logger.Warnf("comment recount failed for %s/%s, keeping record counter: %v", kind, contentID, err)
	}
	if viewer.IsSignedIn() {
		st.IsLiked = content.LikedByUser(viewer.ID)
		st.IsSaved = content.SavedByUser(viewer.ID)
	} else if u.cache != nil {
		liked, _ := u.cache.ListLiked(ctx, viewer.SessionKey())
		saved, _ := u.cache.ListSaved(ctx, viewer.SessionKey())
		st.IsLiked = containsID(liked, contentID)
		st.IsSaved = containsID(saved, contentID)
	}
	sess.store.Seed(contentID, st)

	if u.sync != nil {
		sess.mu.Lock()
		_, watching := sess.watches[contentID]
		sess.mu.Unlock()
		if !watching {
			stop, err := u.sync.Start(context.Background(), kind, contentID, viewer.ID, sess.store, sess.guard)
			if err != nil {
				u.logger.Warnf("realtime subscription for %s/%s failed: %v", kind, contentID, err)
			} else {
				sess.mu.Lock()
				sess.watches[contentID] = stop
				sess.mu.Unlock()
			}
		}
	}
	return st, nil
}

// Release tears down the item's real-time subscription and forgets its
// local state.
func (u *EngagementUsecase) Release(viewerKey, contentID string) {
	sess, ok := u.lookupSession(viewerKey)
	if !ok {
		return
	}
	sess.mu.Lock()
	stop := sess.watches[contentID]
	delete(sess.watches, contentID)
	sess.mu.Unlock()
	if stop != nil {
		stop()
	}
	sess.store.Drop(contentID)
}

// CloseSession releases every subscription the viewer's session holds.
func (u *EngagementUsecase) CloseSession(viewerKey string) {
	u.mu.Lock()
	sess, ok := u.sessions[viewerKey]
	delete(u.sessions, viewerKey)
	u.mu.Unlock()
	if !ok {
		return
	}
	sess.mu.Lock()
	stops := make([]func(), 0, len(sess.watches))
	for _, stop := range sess.watches {
		stops = append(stops, stop)
	}
	sess.watches = make(map[string]func())
	sess.mu.Unlock()
	for _, stop := range stops {
		stop()
	}
}

// ToggleLike flips the viewer's like on the item: the store is mutated
// synchronously, the guard is armed, and the remote mutation pairs an atomic
// set operation with an atomic counter increment on the same record. On
// remote failure the local flip is reverted exactly and the error surfaced.
func (u *EngagementUsecase) ToggleLike(ctx context.Context, viewer entity.Viewer, kind entity.ContentKind, contentID string) (bool, error) {
	if !viewer.IsSignedIn() {
		return false, ErrNotSignedIn
	}
	sess := u.sessionFor(viewer)
	if _, ok := sess.store.State(contentID); !ok {
		if _, err := u.Hydrate(ctx, viewer, kind, contentID); err != nil {
			return false, err
		}
	}

	st, _ := sess.store.State(contentID)
	target := !st.IsLiked
	delta := 1
	if !target {
		delta = -1
	}

	sess.store.SetMembership(contentID, entity.MembershipLiked, target)
	sess.store.ApplyDelta(contentID, entity.CounterLikes, delta)
	sess.guard.Arm(contentID)

	var err error
	if target {
		err = u.contentRepo.Like(ctx, kind, contentID, viewer.ID)
	} else {
		err = u.contentRepo.Unlike(ctx, kind, contentID, viewer.ID)
	}
	if err != nil {
		sess.store.SetMembership(contentID, entity.MembershipLiked, st.IsLiked)
		sess.store.ApplyDelta(contentID, entity.CounterLikes, -delta)
		metrics.MutationsTotal.WithLabelValues("like", "failure").Inc()
		metrics.RollbacksTotal.WithLabelValues("like").Inc()
		return st.IsLiked, fmt.Errorf("failed to update like: %w", err)
	}
	metrics.MutationsTotal.WithLabelValues("like", "success").Inc()

	u.mirrorLiked(ctx, viewer, contentID, target)

	if target && st.OwnerID != "" && st.OwnerID != viewer.ID {
		u.notifier.Notify(ctx, st.OwnerID, viewer, entity.NotificationKindLike,
			usecasecontract.NotificationTarget{ID: contentID, Kind: kind}, "")
	}
	return target, nil
}

// ToggleSave flips the viewer's bookmark on a blog. Saves carry no counter,
// only set membership. Videos have no saved-by set, so any other kind is
// rejected outright.
func (u *EngagementUsecase) ToggleSave(ctx context.Context, viewer entity.Viewer, kind entity.ContentKind, contentID string) (bool, error) {
	if !viewer.IsSignedIn() {
		return false, ErrNotSignedIn
	}
	if kind != entity.ContentKindBlog {
		return false, ErrSaveUnsupported
	}
	sess := u.sessionFor(viewer)
	if _, ok := sess.store.State(contentID); !ok {
		if _, err := u.Hydrate(ctx, viewer, entity.ContentKindBlog, contentID); err != nil {
			return false, err
		}
	}

	st, _ := sess.store.State(contentID)
	target := !st.IsSaved

	sess.store.SetMembership(contentID, entity.MembershipSaved, target)
	sess.guard.Arm(contentID)

	var err error
	if target {
		err = u.contentRepo.Save(ctx, entity.ContentKindBlog, contentID, viewer.ID)
	} else {
		err = u.contentRepo.Unsave(ctx, entity.ContentKindBlog, contentID, viewer.ID)
	}
	if err != nil {
		sess.store.SetMembership(contentID, entity.MembershipSaved, st.IsSaved)
		metrics.MutationsTotal.WithLabelValues("save", "failure").Inc()
		metrics.RollbacksTotal.WithLabelValues("save").Inc()
		return st.IsSaved, fmt.Errorf("failed to update save: %w", err)
	}
	metrics.MutationsTotal.WithLabelValues("save", "success").Inc()

	u.mirrorSaved(ctx, viewer, contentID, target)
	return target, nil
}

// ToggleFollow flips the viewer's follow of another user by issuing the two
// paired set mutations that keep the follow graph bidirectionally
// consistent.
func (u *EngagementUsecase) ToggleFollow(ctx context.Context, viewer entity.Viewer, targetUserID string) (bool, error) {
	if !viewer.IsSignedIn() {
		return false, ErrNotSignedIn
	}
	if targetUserID == viewer.ID {
		return false, ErrSelfFollow
	}
	sess := u.sessionFor(viewer)

	if !sess.store.HasFollow(targetUserID) {
		followed, err := u.userRepo.IsFollowing(ctx, viewer.ID, targetUserID)
		if err != nil {
			return false, fmt.Errorf("failed to load follow state: %w", err)
		}
		sess.store.SetFollowed(targetUserID, followed)
	}

	cur := sess.store.IsFollowed(targetUserID)
	target := !cur
	sess.store.SetFollowed(targetUserID, target)

	var err error
	if target {
		err = u.userRepo.Follow(ctx, viewer.ID, targetUserID)
	} else {
		err = u.userRepo.Unfollow(ctx, viewer.ID, targetUserID)
	}
	if err != nil {
		sess.store.SetFollowed(targetUserID, cur)
		metrics.MutationsTotal.WithLabelValues("follow", "failure").Inc()
		metrics.RollbacksTotal.WithLabelValues("follow").Inc()
		return cur, fmt.Errorf("failed to update follow: %w", err)
	}
	metrics.MutationsTotal.WithLabelValues("follow", "success").Inc()
	return target, nil
}

// SubmitComment writes a comment on the item, single-flight per item per
// session. Comments are not appended optimistically: the local list is only
// replaced by the real-time subscription, so a failed submit leaves nothing
// to roll back and the caller keeps the input text for retry. A failure to
// bump the parent's comment counter after the record is written is logged
// and swallowed; the comment itself stands.
func (u *EngagementUsecase) SubmitComment(ctx context.Context, viewer entity.Viewer, kind entity.ContentKind, contentID, text string, parentID, replyToUser *string) (*entity.Comment, error) {
	if !viewer.IsSignedIn() {
		return nil, ErrNotSignedIn
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyComment
	}

	sess := u.sessionFor(viewer)
	sess.mu.Lock()
	if sess.inflight[contentID] {
		sess.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	sess.inflight[contentID] = true
	sess.mu.Unlock()
	defer func() {
		sess.mu.Lock()
		delete(sess.inflight, contentID)
		sess.mu.Unlock()
	}()

	content, err := u.contentRepo.GetByID(ctx, kind, contentID)
	if err != nil {
		return nil, fmt.Errorf("content no longer exists: %w", err)
	}

	if parentID != nil && *parentID != "" {
		parent, err := u.commentRepo.GetByID(ctx, *parentID)
		if err != nil {
			return nil, fmt.Errorf("parent comment not found: %w", err)
		}
		if parent.IsReply() {
			return nil, ErrReplyToReply
		}
		if replyToUser == nil || *replyToUser == "" {
			name := parent.AuthorName
			replyToUser = &name
		}
	} else {
		parentID = nil
		replyToUser = nil
	}

	comment := &entity.Comment{
		ID:          u.uuidGen.NewUUID(),
		ContentID:   contentID,
		ContentKind: kind,
		ParentID:    parentID,
		AuthorID:    viewer.ID,
		AuthorName:  viewer.DisplayName(),
		AuthorPhoto: viewer.PhotoURL,
		Text:        text,
		ReplyToUser: replyToUser,
		CreatedAt:   time.Now(),
	}
	if err := u.commentRepo.Create(ctx, comment); err != nil {
		metrics.MutationsTotal.WithLabelValues("comment", "failure").Inc()
		return nil, fmt.Errorf("failed to post comment: %w", err)
	}
	metrics.MutationsTotal.WithLabelValues("comment", "success").Inc()

	if err := u.contentRepo.IncrementComments(ctx, kind, contentID, 1); err != nil {
		u.logger.Warnf("comment posted but counter update failed for %s/%s: %v", kind, contentID, err)
	}

	if content.AuthorID != viewer.ID {
		u.notifier.Notify(ctx, content.AuthorID, viewer, entity.NotificationKindComment,
			usecasecontract.NotificationTarget{ID: contentID, Kind: kind}, excerpt(text, commentExcerptLen))
	}
	return comment, nil
}

// State returns the current locally synchronized state for an item.
func (u *EngagementUsecase) State(viewerKey, contentID string) (entity.EngagementState, bool) {
	sess, ok := u.lookupSession(viewerKey)
	if !ok {
		return entity.EngagementState{}, false
	}
	return sess.store.State(contentID)
}

// Comments returns the item's comment list as last replaced by the
// real-time subscription, newest first.
func (u *EngagementUsecase) Comments(viewerKey, contentID string) []*entity.Comment {
	sess, ok := u.lookupSession(viewerKey)
	if !ok {
		return nil
	}
	return sess.store.Comments(contentID)
}

// mirrorLiked writes the toggle through to the viewer's device mirror.
// Mirror failures never affect the mutation outcome.
func (u *EngagementUsecase) mirrorLiked(ctx context.Context, viewer entity.Viewer, contentID string, liked bool) {
	if u.cache == nil {
		return
	}
	var err error
	if liked {
		err = u.cache.AddLiked(ctx, viewer.SessionKey(), contentID)
	} else {
		err = u.cache.RemoveLiked(ctx, viewer.SessionKey(), contentID)
	}
	if err != nil {
		u.logger.Warnf("liked mirror update failed for %s: %v", contentID, err)
	}
}

func (u *EngagementUsecase) mirrorSaved(ctx context.Context, viewer entity.Viewer, contentID string, saved bool) {
	if u.cache == nil {
		return
	}
	var err error
	if saved {
		err = u.cache.AddSaved(ctx, viewer.SessionKey(), contentID)
	} else {
		err = u.cache.RemoveSaved(ctx, viewer.SessionKey(), contentID)
	}
	if err != nil {
		u.logger.Warnf("saved mirror update failed for %s: %v", contentID, err)
	}
}

func excerpt(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
