package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/custodia-labs/pizza-hunt/internal/core/domain"
	"github.com/custodia-labs/pizza-hunt/internal/core/ports/driving"
)

type commentHandler struct {
	comments driving.CommentService
}

func (h *commentHandler) routes(r chi.Router) {
	r.Post("/{pizzaId}", h.addComment)
	r.Put("/{pizzaId}/{commentId}", h.addReply)
	r.Delete("/{pizzaId}/{commentId}", h.removeComment)
	r.Delete("/{pizzaId}/{commentId}/{replyId}", h.removeReply)
}

func (h *commentHandler) addComment(w http.ResponseWriter, r *http.Request) {
	var in domain.CommentInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}
	pizza, err := h.comments.AddComment(r.Context(), chi.URLParam(r, "pizzaId"), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pizza)
}

func (h *commentHandler) removeComment(w http.ResponseWriter, r *http.Request) {
	pizza, err := h.comments.RemoveComment(r.Context(), chi.URLParam(r, "pizzaId"), chi.URLParam(r, "commentId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pizza)
}

func (h *commentHandler) addReply(w http.ResponseWriter, r *http.Request) {
	var in domain.ReplyInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}
	comment, err := h.comments.AddReply(r.Context(), chi.URLParam(r, "pizzaId"), chi.URLParam(r, "commentId"), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comment)
}

func (h *commentHandler) removeReply(w http.ResponseWriter, r *http.Request) {
	comment, err := h.comments.RemoveReply(
		r.Context(),
		chi.URLParam(r, "pizzaId"),
		chi.URLParam(r, "commentId"),
		chi.URLParam(r, "replyId"),
	)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comment)
}
