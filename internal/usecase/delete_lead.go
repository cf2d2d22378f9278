package usecase

import (
	"context"
	"fmt"

	"github.com/crmkit/salespipe/internal/entity"
)

type DeleteLeadUseCase struct {
	Leads LeadRepository
}

func NewDeleteLeadUseCase(leads LeadRepository) *DeleteLeadUseCase {
	return &DeleteLeadUseCase{Leads: leads}
}

// Execute removes the lead and returns the removed record.
func (uc *DeleteLeadUseCase) Execute(ctx context.Context, id string) (*entity.Lead, error) {
	if !ValidIDFormat(id) {
		return nil, ErrInvalidInput("leadId must be a valid lead id")
	}

	lead, err := uc.Leads.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrNotFound(fmt.Sprintf("lead %s not found", id))
	}
	return lead, nil
}
