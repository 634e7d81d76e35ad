package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"devconnect/internal/model"
)

// MockPostRepository is a mock implementation of PostRepository.
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *model.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context) ([]model.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, post *model.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) CreateLike(ctx context.Context, like *model.Like) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockPostRepository) DeleteLike(ctx context.Context, postID, userID uuid.UUID) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

func (m *MockPostRepository) ListLikes(ctx context.Context, postID uuid.UUID) ([]model.Like, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Like), args.Error(1)
}

func (m *MockPostRepository) CreateComment(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockPostRepository) DeleteComment(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockPostRepository) ListComments(ctx context.Context, postID uuid.UUID) ([]model.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func TestPostService_Create_SnapshotsAuthor(t *testing.T) {
	userID := uuid.New()
	mockPosts := new(MockPostRepository)
	mockUsers := new(MockUserRepository)

	mockUsers.On("FindByID", mock.Anything, userID).Return(&model.User{
		ID:     userID,
		Name:   "Jane Dev",
		Avatar: "https://www.gravatar.com/avatar/abc",
	}, nil)
	mockPosts.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).Return(nil)

	svc := NewPostService(mockPosts, mockUsers)
	post, err := svc.Create(context.Background(), userID, "hello")

	assert.NoError(t, err)
	assert.Equal(t, "hello", post.Text)
	assert.Equal(t, userID, post.UserID)
	assert.Equal(t, "Jane Dev", post.Name)
	assert.Equal(t, "https://www.gravatar.com/avatar/abc", post.Avatar)
	assert.NotNil(t, post.Likes)
	assert.Empty(t, post.Likes)
	assert.NotNil(t, post.Comments)
	assert.Empty(t, post.Comments)

	mockPosts.AssertExpectations(t)
	mockUsers.AssertExpectations(t)
}

func TestPostService_Get(t *testing.T) {
	postID := uuid.New()

	t.Run("malformed id reads as not found", func(t *testing.T) {
		svc := NewPostService(new(MockPostRepository), new(MockUserRepository))
		_, err := svc.Get(context.Background(), "not-a-uuid")
		assert.Equal(t, ErrPostNotFound, err)
	})

	t.Run("missing post", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		mockPosts.On("FindByID", mock.Anything, postID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewPostService(mockPosts, new(MockUserRepository))
		_, err := svc.Get(context.Background(), postID.String())
		assert.Equal(t, ErrPostNotFound, err)
	})

	t.Run("nil lists normalize to empty", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		mockPosts.On("FindByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)

		svc := NewPostService(mockPosts, new(MockUserRepository))
		post, err := svc.Get(context.Background(), postID.String())
		assert.NoError(t, err)
		assert.NotNil(t, post.Likes)
		assert.NotNil(t, post.Comments)
	})
}

func TestPostService_Delete_OwnershipCheck(t *testing.T) {
	postID := uuid.New()
	author := uuid.New()
	stranger := uuid.New()

	mockPosts := new(MockPostRepository)
	mockPosts.On("FindByID", mock.Anything, postID).Return(&model.Post{ID: postID, UserID: author}, nil)

	svc := NewPostService(mockPosts, new(MockUserRepository))
	err := svc.Delete(context.Background(), stranger, postID.String())
	assert.Equal(t, ErrNotAuthorized, err)

	mockPosts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPostService_Like(t *testing.T) {
	postID := uuid.New()
	userID := uuid.New()

	t.Run("second like is rejected", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		mockPosts.On("FindByID", mock.Anything, postID).Return(&model.Post{
			ID:    postID,
			Likes: []model.Like{{PostID: postID, UserID: userID}},
		}, nil)

		svc := NewPostService(mockPosts, new(MockUserRepository))
		_, err := svc.Like(context.Background(), userID, postID.String())
		assert.Equal(t, ErrAlreadyLiked, err)
		mockPosts.AssertNotCalled(t, "CreateLike", mock.Anything, mock.Anything)
	})

	t.Run("first like is stored and list returned", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		mockPosts.On("FindByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
		mockPosts.On("CreateLike", mock.Anything, mock.AnythingOfType("*model.Like")).Return(nil)
		mockPosts.On("ListLikes", mock.Anything, postID).Return([]model.Like{{PostID: postID, UserID: userID}}, nil)

		svc := NewPostService(mockPosts, new(MockUserRepository))
		likes, err := svc.Like(context.Background(), userID, postID.String())
		assert.NoError(t, err)
		assert.Len(t, likes, 1)
		assert.Equal(t, userID, likes[0].UserID)
	})
}

func TestPostService_Unlike_RequiresExistingLike(t *testing.T) {
	postID := uuid.New()
	userID := uuid.New()

	mockPosts := new(MockPostRepository)
	mockPosts.On("FindByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)

	svc := NewPostService(mockPosts, new(MockUserRepository))
	_, err := svc.Unlike(context.Background(), userID, postID.String())
	assert.Equal(t, ErrNotLiked, err)

	mockPosts.AssertNotCalled(t, "DeleteLike", mock.Anything, mock.Anything, mock.Anything)
}

func TestPostService_RemoveComment(t *testing.T) {
	postID := uuid.New()
	commentID := uuid.New()
	author := uuid.New()
	stranger := uuid.New()

	post := &model.Post{
		ID: postID,
		Comments: []model.Comment{
			{ID: commentID, PostID: postID, UserID: author, Text: "nice"},
		},
	}

	t.Run("unknown comment id", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		mockPosts.On("FindByID", mock.Anything, postID).Return(post, nil)

		svc := NewPostService(mockPosts, new(MockUserRepository))
		_, err := svc.RemoveComment(context.Background(), author, postID.String(), uuid.NewString())
		assert.Equal(t, ErrCommentNotFound, err)
	})

	t.Run("non-author is rejected", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		mockPosts.On("FindByID", mock.Anything, postID).Return(post, nil)

		svc := NewPostService(mockPosts, new(MockUserRepository))
		_, err := svc.RemoveComment(context.Background(), stranger, postID.String(), commentID.String())
		assert.Equal(t, ErrNotAuthorized, err)
		mockPosts.AssertNotCalled(t, "DeleteComment", mock.Anything, mock.Anything)
	})

	t.Run("author removes the comment", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		mockPosts.On("FindByID", mock.Anything, postID).Return(post, nil)
		mockPosts.On("DeleteComment", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(nil)
		mockPosts.On("ListComments", mock.Anything, postID).Return([]model.Comment{}, nil)

		svc := NewPostService(mockPosts, new(MockUserRepository))
		comments, err := svc.RemoveComment(context.Background(), author, postID.String(), commentID.String())
		assert.NoError(t, err)
		assert.Empty(t, comments)
		mockPosts.AssertExpectations(t)
	})
}
