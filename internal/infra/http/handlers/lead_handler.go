package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/crmkit/salespipe/internal/entity"
	"github.com/crmkit/salespipe/internal/infra/http/middleware"
	"github.com/crmkit/salespipe/internal/usecase"
)

type LeadHandler struct {
	CreateUC *usecase.CreateLeadUseCase
	UpdateUC *usecase.UpdateLeadUseCase
	DeleteUC *usecase.DeleteLeadUseCase
	ListUC   *usecase.ListLeadsUseCase
	GetUC    *usecase.GetLeadUseCase
}

func NewLeadHandler(
	create *usecase.CreateLeadUseCase,
	update *usecase.UpdateLeadUseCase,
	del *usecase.DeleteLeadUseCase,
	list *usecase.ListLeadsUseCase,
	get *usecase.GetLeadUseCase,
) *LeadHandler {
	return &LeadHandler{
		CreateUC: create,
		UpdateUC: update,
		DeleteUC: del,
		ListUC:   list,
		GetUC:    get,
	}
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, r, usecase.ErrInvalidInput("invalid JSON body"))
		return
	}

	lead, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		respondError(w, r, err)
		return
	}

	middleware.RecordLeadCreated()
	if lead.Status == entity.StatusClosed {
		middleware.RecordLeadClosed()
	}
	respondJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, r, usecase.ErrInvalidInput("invalid JSON body"))
		return
	}

	lead, err := h.UpdateUC.Execute(r.Context(), chi.URLParam(r, "leadId"), input)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if input.Status != nil && entity.LeadStatus(*input.Status) == entity.StatusClosed {
		middleware.RecordLeadClosed()
	}
	respondJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	lead, err := h.DeleteUC.Execute(r.Context(), chi.URLParam(r, "leadId"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := usecase.LeadFilter{
		Status: r.URL.Query().Get("status"),
		Agent:  r.URL.Query().Get("agent"),
		Sort:   r.URL.Query().Get("sort"),
	}

	leads, err := h.ListUC.Execute(r.Context(), filter)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	lead, err := h.GetUC.Execute(r.Context(), chi.URLParam(r, "leadId"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, lead)
}
