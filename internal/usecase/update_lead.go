package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/crmkit/salespipe/internal/entity"
)

type UpdateLeadUseCase struct {
	Leads  LeadRepository
	Agents AgentRepository
}

func NewUpdateLeadUseCase(leads LeadRepository, agents AgentRepository) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{Leads: leads, Agents: agents}
}

// Execute applies a partial update: absent fields keep their stored value,
// and the merged record is validated as a whole before it replaces the old
// one.
func (uc *UpdateLeadUseCase) Execute(ctx context.Context, id string, input UpdateLeadInput) (*entity.Lead, error) {
	if !ValidIDFormat(id) {
		return nil, ErrInvalidInput("leadId must be a valid lead id")
	}

	lead, err := uc.Leads.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrNotFound(fmt.Sprintf("lead %s not found", id))
	}

	if input.Name != nil {
		lead.Name = strings.TrimSpace(*input.Name)
	}
	if input.SalesAgent != nil {
		agentID := strings.TrimSpace(*input.SalesAgent)
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
		lead.SalesAgentID = agentID
	}
	if input.Priority != nil {
		lead.Priority = entity.LeadPriority(*input.Priority)
	}
	if input.TimeToClose != nil {
		lead.TimeToClose = *input.TimeToClose
	}
	if input.Status != nil {
		status := entity.LeadStatus(*input.Status)
		switch {
		case status == entity.StatusClosed && lead.Status != entity.StatusClosed:
			lead.Close(time.Now().UTC())
		case status != entity.StatusClosed:
			lead.Reopen(status)
		}
	}

	if errs := ValidateLead(lead); len(errs) > 0 {
		return nil, joinValidation(errs)
	}

	matched, err := uc.Leads.Replace(ctx, lead)
	if err != nil {
		return nil, err
	}
	if !matched {
		// Deleted between the read and the write.
		return nil, ErrNotFound(fmt.Sprintf("lead %s not found", id))
	}

	if agent, err := uc.Agents.FindByID(ctx, lead.SalesAgentID); err == nil {
		lead.SalesAgent = agent
	}
	return lead, nil
}
