package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/crmkit/salespipe/internal/entity"
	"github.com/crmkit/salespipe/internal/usecase"
)

func newAgentHandler(repo *MockAgentRepository) *AgentHandler {
	return NewAgentHandler(
		usecase.NewCreateAgentUseCase(repo),
		usecase.NewListAgentsUseCase(repo),
	)
}

func TestCreateAgentHandlerSuccess(t *testing.T) {
	repo := new(MockAgentRepository)
	repo.On("ExistsByEmail", mock.Anything, "ana@corp.com").Return(false, nil)
	repo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	handler := newAgentHandler(repo)

	body, _ := json.Marshal(usecase.CreateAgentInput{Name: "Ana", Email: "ana@corp.com"})
	req := httptest.NewRequest("POST", "/api/agents", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var agent entity.SalesAgent
	json.NewDecoder(w.Body).Decode(&agent)
	assert.NotEmpty(t, agent.ID)
	assert.Equal(t, "Ana", agent.Name)
}

func TestCreateAgentHandlerInvalidBody(t *testing.T) {
	handler := newAgentHandler(new(MockAgentRepository))

	req := httptest.NewRequest("POST", "/api/agents", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()

	handler.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAgentHandlerInvalidEmail(t *testing.T) {
	handler := newAgentHandler(new(MockAgentRepository))

	body, _ := json.Marshal(usecase.CreateAgentInput{Name: "Ana", Email: "not-an-email"})
	req := httptest.NewRequest("POST", "/api/agents", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAgentHandlerDuplicateEmail(t *testing.T) {
	repo := new(MockAgentRepository)
	repo.On("ExistsByEmail", mock.Anything, "ana@corp.com").Return(true, nil)
	handler := newAgentHandler(repo)

	body, _ := json.Marshal(usecase.CreateAgentInput{Name: "Ana", Email: "ana@corp.com"})
	req := httptest.NewRequest("POST", "/api/agents", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.Create(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateAgentHandlerRepositoryFailure(t *testing.T) {
	repo := new(MockAgentRepository)
	repo.On("ExistsByEmail", mock.Anything, "ana@corp.com").Return(false, assert.AnError)
	handler := newAgentHandler(repo)

	body, _ := json.Marshal(usecase.CreateAgentInput{Name: "Ana", Email: "ana@corp.com"})
	req := httptest.NewRequest("POST", "/api/agents", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.Create(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// The store error never reaches the client.
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestListAgentsHandler(t *testing.T) {
	repo := new(MockAgentRepository)
	repo.On("FindAll", mock.Anything).Return([]entity.SalesAgent{
		{ID: "1", Name: "Ana", Email: "ana@corp.com"},
	}, nil)
	handler := newAgentHandler(repo)

	req := httptest.NewRequest("GET", "/api/agents", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var agents []entity.SalesAgent
	json.NewDecoder(w.Body).Decode(&agents)
	assert.Len(t, agents, 1)
}
