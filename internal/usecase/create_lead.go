package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/crmkit/salespipe/internal/entity"
)

type CreateLeadUseCase struct {
	Leads  LeadRepository
	Agents AgentRepository
}

func NewCreateLeadUseCase(leads LeadRepository, agents AgentRepository) *CreateLeadUseCase {
	return &CreateLeadUseCase{Leads: leads, Agents: agents}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	agentID := strings.TrimSpace(input.SalesAgent)
	if !ValidIDFormat(agentID) {
		return nil, ErrInvalidInput("salesAgent must be a valid agent id")
	}

	agent, err := uc.Agents.FindByID(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, ErrNotFound(fmt.Sprintf("sales agent %s not found", agentID))
	}

	status := entity.LeadStatus(input.Status)
	if status == "" {
		status = entity.StatusNew
	}

	lead := &entity.Lead{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(input.Name),
		SalesAgentID: agentID,
		Status:       status,
		Priority:     entity.LeadPriority(input.Priority),
		TimeToClose:  input.TimeToClose,
		CreatedAt:    time.Now().UTC(),
	}
	if status == entity.StatusClosed {
		lead.Close(time.Now().UTC())
	}

	if errs := ValidateLead(lead); len(errs) > 0 {
		return nil, joinValidation(errs)
	}

	if err := uc.Leads.Insert(ctx, lead); err != nil {
		return nil, err
	}

	lead.SalesAgent = agent
	return lead, nil
}
