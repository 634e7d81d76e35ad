package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devconnect/internal/model"
	"devconnect/internal/repository"
)

var (
	// ErrPostNotFound covers missing posts and malformed post ids alike.
	ErrPostNotFound = errors.New("post not found")
	// ErrAlreadyLiked is returned when a user likes a post a second time.
	ErrAlreadyLiked = errors.New("post already liked")
	// ErrNotLiked is returned when unliking a post that was never liked.
	ErrNotLiked = errors.New("post not liked yet")
	// ErrNotAuthorized is returned on an ownership mismatch.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrCommentNotFound is returned when a comment id matches no entry.
	ErrCommentNotFound = errors.New("comment not found")
)

// PostService handles the feed: posts, likes and comments.
type PostService interface {
	Create(ctx context.Context, userID uuid.UUID, text string) (*model.Post, error)
	List(ctx context.Context) ([]model.Post, error)
	Get(ctx context.Context, postID string) (*model.Post, error)
	Delete(ctx context.Context, userID uuid.UUID, postID string) error
	Like(ctx context.Context, userID uuid.UUID, postID string) ([]model.Like, error)
	Unlike(ctx context.Context, userID uuid.UUID, postID string) ([]model.Like, error)
	AddComment(ctx context.Context, userID uuid.UUID, postID, text string) ([]model.Comment, error)
	RemoveComment(ctx context.Context, userID uuid.UUID, postID, commentID string) ([]model.Comment, error)
}

type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewPostService creates a new post service.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// Create snapshots the author's name and avatar onto the new post.
func (s *postService) Create(ctx context.Context, userID uuid.UUID, text string) (*model.Post, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find author: %w", err)
	}

	post := &model.Post{
		UserID: userID,
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	post.Likes = []model.Like{}
	post.Comments = []model.Comment{}
	return post, nil
}

func (s *postService) List(ctx context.Context) ([]model.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	for i := range posts {
		normalizePost(&posts[i])
	}
	return posts, nil
}

// Get treats a malformed id the same as a missing post.
func (s *postService) Get(ctx context.Context, postID string) (*model.Post, error) {
	id, err := uuid.Parse(postID)
	if err != nil {
		return nil, ErrPostNotFound
	}
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	normalizePost(post)
	return post, nil
}

// Delete removes a post after checking the caller owns it.
func (s *postService) Delete(ctx context.Context, userID uuid.UUID, postID string) error {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return ErrNotAuthorized
	}
	if err := s.postRepo.Delete(ctx, post); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// Like enforces the at-most-once rule at write time and returns the
// updated like list, newest first.
func (s *postService) Like(ctx context.Context, userID uuid.UUID, postID string) ([]model.Like, error) {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	for _, like := range post.Likes {
		if like.UserID == userID {
			return nil, ErrAlreadyLiked
		}
	}
	if err := s.postRepo.CreateLike(ctx, &model.Like{PostID: post.ID, UserID: userID}); err != nil {
		return nil, fmt.Errorf("create like: %w", err)
	}
	return s.likes(ctx, post.ID)
}

// Unlike rejects callers that never liked the post.
func (s *postService) Unlike(ctx context.Context, userID uuid.UUID, postID string) ([]model.Like, error) {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	liked := false
	for _, like := range post.Likes {
		if like.UserID == userID {
			liked = true
			break
		}
	}
	if !liked {
		return nil, ErrNotLiked
	}
	if err := s.postRepo.DeleteLike(ctx, post.ID, userID); err != nil {
		return nil, fmt.Errorf("delete like: %w", err)
	}
	return s.likes(ctx, post.ID)
}

// AddComment prepends a denormalized comment and returns the comment list.
func (s *postService) AddComment(ctx context.Context, userID uuid.UUID, postID, text string) ([]model.Comment, error) {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find author: %w", err)
	}

	comment := &model.Comment{
		PostID: post.ID,
		UserID: userID,
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.postRepo.CreateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return s.comments(ctx, post.ID)
}

// RemoveComment deletes a comment after matching it by id and checking the
// caller wrote it.
func (s *postService) RemoveComment(ctx context.Context, userID uuid.UUID, postID, commentID string) ([]model.Comment, error) {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(commentID)
	if err != nil {
		return nil, ErrCommentNotFound
	}

	var target *model.Comment
	for i := range post.Comments {
		if post.Comments[i].ID == id {
			target = &post.Comments[i]
			break
		}
	}
	if target == nil {
		return nil, ErrCommentNotFound
	}
	if target.UserID != userID {
		return nil, ErrNotAuthorized
	}

	if err := s.postRepo.DeleteComment(ctx, target); err != nil {
		return nil, fmt.Errorf("delete comment: %w", err)
	}
	return s.comments(ctx, post.ID)
}

func (s *postService) likes(ctx context.Context, postID uuid.UUID) ([]model.Like, error) {
	likes, err := s.postRepo.ListLikes(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list likes: %w", err)
	}
	if likes == nil {
		likes = []model.Like{}
	}
	return likes, nil
}

func (s *postService) comments(ctx context.Context, postID uuid.UUID) ([]model.Comment, error) {
	comments, err := s.postRepo.ListComments(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	if comments == nil {
		comments = []model.Comment{}
	}
	return comments, nil
}

func normalizePost(p *model.Post) {
	if p.Likes == nil {
		p.Likes = []model.Like{}
	}
	if p.Comments == nil {
		p.Comments = []model.Comment{}
	}
}
