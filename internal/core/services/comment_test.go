package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pizza-hunt/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/pizza-hunt/internal/core/domain"
)

func newCommentFixture(t *testing.T) (*CommentService, *PizzaService, string) {
	t.Helper()
	store := memory.NewPizzaStore()
	ids := sequentialIDs()
	pizzas := NewPizzaService(store, ids)
	pizza, err := pizzas.Create(context.Background(), domain.PizzaInput{PizzaName: "p", CreatedBy: "ann"})
	require.NoError(t, err)
	return NewCommentService(store, ids), pizzas, pizza.ID
}

func TestCommentService_AddAndRemoveComment(t *testing.T) {
	ctx := context.Background()
	svc, pizzas, pizzaID := newCommentFixture(t)

	pizza, err := svc.AddComment(ctx, pizzaID, domain.CommentInput{WrittenBy: " bob ", CommentBody: "nice"})
	require.NoError(t, err)
	require.Len(t, pizza.Comments, 1)
	comment := pizza.Comments[0]
	assert.Equal(t, "bob", comment.WrittenBy)
	assert.Equal(t, "nice", comment.CommentBody)
	assert.NotNil(t, comment.Replies)

	stored, err := pizzas.Get(ctx, pizzaID)
	require.NoError(t, err)
	assert.Len(t, stored.Comments, 1)

	pizza, err = svc.RemoveComment(ctx, pizzaID, comment.ID)
	require.NoError(t, err)
	assert.Empty(t, pizza.Comments)
}

func TestCommentService_Replies(t *testing.T) {
	ctx := context.Background()
	svc, pizzas, pizzaID := newCommentFixture(t)

	pizza, err := svc.AddComment(ctx, pizzaID, domain.CommentInput{WrittenBy: "bob", CommentBody: "nice"})
	require.NoError(t, err)
	commentID := pizza.Comments[0].ID

	comment, err := svc.AddReply(ctx, pizzaID, commentID, domain.ReplyInput{WrittenBy: "ann", ReplyBody: "thanks"})
	require.NoError(t, err)
	require.Len(t, comment.Replies, 1)
	replyID := comment.Replies[0].ID

	_, err = svc.AddReply(ctx, pizzaID, commentID, domain.ReplyInput{WrittenBy: "cat", ReplyBody: "same"})
	require.NoError(t, err)

	comment, err = svc.RemoveReply(ctx, pizzaID, commentID, replyID)
	require.NoError(t, err)
	require.Len(t, comment.Replies, 1)
	assert.Equal(t, "same", comment.Replies[0].ReplyBody)

	stored, err := pizzas.Get(ctx, pizzaID)
	require.NoError(t, err)
	assert.Len(t, stored.Comments[0].Replies, 1)
}

func TestCommentService_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, pizzaID := newCommentFixture(t)
	pizza, err := svc.AddComment(ctx, pizzaID, domain.CommentInput{CommentBody: "x"})
	require.NoError(t, err)
	commentID := pizza.Comments[0].ID

	_, err = svc.AddComment(ctx, "missing", domain.CommentInput{CommentBody: "x"})
	assert.ErrorIs(t, err, domain.ErrPizzaNotFound)

	_, err = svc.RemoveComment(ctx, pizzaID, "missing")
	assert.ErrorIs(t, err, domain.ErrCommentNotFound)

	_, err = svc.AddReply(ctx, pizzaID, "missing", domain.ReplyInput{ReplyBody: "x"})
	assert.ErrorIs(t, err, domain.ErrCommentNotFound)

	_, err = svc.RemoveReply(ctx, pizzaID, commentID, "missing")
	assert.ErrorIs(t, err, domain.ErrReplyNotFound)
}
