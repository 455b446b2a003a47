package mocks

import (
	"context"
	"errors"

	"github.com/yonatanberih/pulse/internal/domain/entity"
	usecasecontract "github.com/yonatanberih/pulse/internal/usecase/contract"
)

// MockEngagementUsecase is a mock implementation of the engagement usecase
// interface
type MockEngagementUsecase struct {
	// Control mock behavior
	ShouldFailHydrate       bool
	ShouldFailToggleLike    bool
	ShouldFailToggleSave    bool
	ShouldFailToggleFollow  bool
	ShouldFailSubmitComment bool

	// Return values
	MockState   entity.EngagementState
	MockLiked   bool
	MockComment entity.Comment

	// Call recording
	ReleasedContent []string
	ClosedSessions  []string
}

var _ usecasecontract.IEngagementUseCase = (*MockEngagementUsecase)(nil)

func NewMockEngagementUsecase() *MockEngagementUsecase {
	return &MockEngagementUsecase{
		MockState: entity.EngagementState{
			LikeCount:    5,
			CommentCount: 2,
			OwnerID:      "mock-owner-id",
		},
		MockLiked: true,
		MockComment: entity.Comment{
			ID:         "mock-comment-id",
			ContentID:  "mock-content-id",
			AuthorID:   "mock-user-id",
			AuthorName: "testuser",
			Text:       "mock comment",
		},
	}
}

func (m *MockEngagementUsecase) Hydrate(ctx context.Context, viewer entity.Viewer, kind entity.ContentKind, contentID string) (entity.EngagementState, error) {
	if m.ShouldFailHydrate {
		return entity.EngagementState{}, errors.New("content not found")
	}
	return m.MockState, nil
}

func (m *MockEngagementUsecase) Release(viewerID, contentID string) {
	m.ReleasedContent = append(m.ReleasedContent, contentID)
}

func (m *MockEngagementUsecase) ToggleLike(ctx context.Context, viewer entity.Viewer, kind entity.ContentKind, contentID string) (bool, error) {
	if m.ShouldFailToggleLike {
		return false, errors.New("like failed")
	}
	return m.MockLiked, nil
}

func (m *MockEngagementUsecase) ToggleSave(ctx context.Context, viewer entity.Viewer, kind entity.ContentKind, contentID string) (bool, error) {
	if m.ShouldFailToggleSave {
		return false, errors.New("save failed")
	}
	return m.MockLiked, nil
}

func (m *MockEngagementUsecase) ToggleFollow(ctx context.Context, viewer entity.Viewer, targetUserID string) (bool, error) {
	if m.ShouldFailToggleFollow {
		return false, errors.New("follow failed")
	}
	return true, nil
}

func (m *MockEngagementUsecase) SubmitComment(ctx context.Context, viewer entity.Viewer, kind entity.ContentKind, contentID, text string, parentID, replyToUser *string) (*entity.Comment, error) {
	if m.ShouldFailSubmitComment {
		return nil, errors.New("comment failed")
	}
	c := m.MockComment
	c.Text = text
	return &c, nil
}

func (m *MockEngagementUsecase) State(viewerID, contentID string) (entity.EngagementState, bool) {
	if m.ShouldFailHydrate {
		return entity.EngagementState{}, false
	}
	return m.MockState, true
}

func (m *MockEngagementUsecase) Comments(viewerID, contentID string) []*entity.Comment {
	c := m.MockComment
	return []*entity.Comment{&c}
}

func (m *MockEngagementUsecase) CloseSession(viewerID string) {
	m.ClosedSessions = append(m.ClosedSessions, viewerID)
}
