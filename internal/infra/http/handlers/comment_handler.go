package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/crmkit/salespipe/internal/entity"
	"github.com/crmkit/salespipe/internal/infra/http/middleware"
	"github.com/crmkit/salespipe/internal/usecase"
)

type CommentHandler struct {
	CreateUC *usecase.CreateCommentUseCase
	ListUC   *usecase.ListCommentsUseCase
}

func NewCommentHandler(create *usecase.CreateCommentUseCase, list *usecase.ListCommentsUseCase) *CommentHandler {
	return &CommentHandler{CreateUC: create, ListUC: list}
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateCommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, r, usecase.ErrInvalidInput("invalid JSON body"))
		return
	}

	// The path names the lead; a body lead field is ignored.
	input.Lead = chi.URLParam(r, "leadId")

	comment, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		respondError(w, r, err)
		return
	}

	middleware.RecordCommentCreated()
	respondJSON(w, http.StatusCreated, comment)
}

type listCommentsResponse struct {
	Comments []entity.Comment `json:"comments"`
}

func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	comments, err := h.ListUC.Execute(r.Context(), chi.URLParam(r, "leadId"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, listCommentsResponse{Comments: comments})
}
