package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/pizza-hunt/internal/core/domain"
	"github.com/custodia-labs/pizza-hunt/internal/core/ports/driven"
	"github.com/custodia-labs/pizza-hunt/internal/core/ports/driving"
)

// Ensure CommentService implements the interface.
var _ driving.CommentService = (*CommentService)(nil)

// CommentService manages comments and replies embedded in pizzas.
type CommentService struct {
	store driven.PizzaStore
	newID IDFunc
	now   func() time.Time
}

// NewCommentService creates a new comment service.
func NewCommentService(store driven.PizzaStore, newID IDFunc) *CommentService {
	return &CommentService{
		store: store,
		newID: newID,
		now:   time.Now,
	}
}

// AddComment adds a comment to a pizza and returns the pizza.
func (s *CommentService) AddComment(ctx context.Context, pizzaID string, in domain.CommentInput) (*domain.Pizza, error) {
	pizza, err := s.store.Get(ctx, pizzaID)
	if err != nil {
		return nil, err
	}

	pizza.Comments = append(pizza.Comments, domain.Comment{
		ID:          s.newID(),
		WrittenBy:   strings.TrimSpace(in.WrittenBy),
		CommentBody: strings.TrimSpace(in.CommentBody),
		CreatedAt:   s.now().UTC(),
		Replies:     []domain.Reply{},
	})

	if err := s.store.Save(ctx, pizza); err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}
	return pizza, nil
}

// RemoveComment deletes a comment and returns the pizza.
func (s *CommentService) RemoveComment(ctx context.Context, pizzaID, commentID string) (*domain.Pizza, error) {
	pizza, err := s.store.Get(ctx, pizzaID)
	if err != nil {
		return nil, err
	}

	idx := pizza.FindComment(commentID)
	if idx < 0 {
		return nil, domain.ErrCommentNotFound
	}
	pizza.Comments = append(pizza.Comments[:idx], pizza.Comments[idx+1:]...)

	if err := s.store.Save(ctx, pizza); err != nil {
		return nil, fmt.Errorf("remove comment: %w", err)
	}
	return pizza, nil
}

// AddReply adds a reply to a comment and returns the comment.
func (s *CommentService) AddReply(
	ctx context.Context,
	pizzaID, commentID string,
	in domain.ReplyInput,
) (*domain.Comment, error) {
	pizza, err := s.store.Get(ctx, pizzaID)
	if err != nil {
		return nil, err
	}

	idx := pizza.FindComment(commentID)
	if idx < 0 {
		return nil, domain.ErrCommentNotFound
	}
	comment := &pizza.Comments[idx]
	comment.Replies = append(comment.Replies, domain.Reply{
		ID:        s.newID(),
		ReplyBody: strings.TrimSpace(in.ReplyBody),
		WrittenBy: strings.TrimSpace(in.WrittenBy),
		CreatedAt: s.now().UTC(),
	})

	if err := s.store.Save(ctx, pizza); err != nil {
		return nil, fmt.Errorf("add reply: %w", err)
	}
	result := *comment
	return &result, nil
}

// RemoveReply deletes a reply and returns the comment.
func (s *CommentService) RemoveReply(ctx context.Context, pizzaID, commentID, replyID string) (*domain.Comment, error) {
	pizza, err := s.store.Get(ctx, pizzaID)
	if err != nil {
		return nil, err
	}

	idx := pizza.FindComment(commentID)
	if idx < 0 {
		return nil, domain.ErrCommentNotFound
	}
	comment := &pizza.Comments[idx]

	found := false
	replies := comment.Replies[:0]
	for _, r := range comment.Replies {
		if r.ID == replyID {
			found = true
			continue
		}
		replies = append(replies, r)
	}
	if !found {
		return nil, domain.ErrReplyNotFound
	}
	comment.Replies = replies

	if err := s.store.Save(ctx, pizza); err != nil {
		return nil, fmt.Errorf("remove reply: %w", err)
	}
	result := *comment
	return &result, nil
}
