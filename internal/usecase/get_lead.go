package usecase

import (
	"context"
	"fmt"

	"github.com/crmkit/salespipe/internal/entity"
)

type GetLeadUseCase struct {
	Leads  LeadRepository
	Agents AgentRepository
}

func NewGetLeadUseCase(leads LeadRepository, agents AgentRepository) *GetLeadUseCase {
	return &GetLeadUseCase{Leads: leads, Agents: agents}
}

// Execute returns the lead with its agent expanded. A missing id is an
// explicit 404, never an empty 200.
func (uc *GetLeadUseCase) Execute(ctx context.Context, id string) (*entity.Lead, error) {
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

	// Expansion degrades gracefully: a dangling reference leaves the
	// details absent rather than failing the read.
	if agent, err := uc.Agents.FindByID(ctx, lead.SalesAgentID); err == nil {
		lead.SalesAgent = agent
	}
	return lead, nil
}
