package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/crmkit/salespipe/internal/infra/http/middleware"
	"github.com/crmkit/salespipe/internal/usecase"
)

type AgentHandler struct {
	CreateUC *usecase.CreateAgentUseCase
	ListUC   *usecase.ListAgentsUseCase
}

func NewAgentHandler(create *usecase.CreateAgentUseCase, list *usecase.ListAgentsUseCase) *AgentHandler {
	return &AgentHandler{CreateUC: create, ListUC: list}
}

func (h *AgentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateAgentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, r, usecase.ErrInvalidInput("invalid JSON body"))
		return
	}

	agent, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		respondError(w, r, err)
		return
	}

	middleware.RecordAgentCreated()
	respondJSON(w, http.StatusCreated, agent)
}

func (h *AgentHandler) List(w http.ResponseWriter, r *http.Request) {
	agents, err := h.ListUC.Execute(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, agents)
}
