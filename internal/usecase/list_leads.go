package usecase

import (
	"context"

	"github.com/crmkit/salespipe/internal/entity"
)

type ListLeadsUseCase struct {
	Leads LeadRepository
}

func NewListLeadsUseCase(leads LeadRepository) *ListLeadsUseCase {
	return &ListLeadsUseCase{Leads: leads}
}

// Execute lists leads narrowed by the optional status/agent filters. The
// sort modes are mutually exclusive; an unrecognized value falls back to
// store order. Every row carries the expanded agent when the reference
// resolves.
func (uc *ListLeadsUseCase) Execute(ctx context.Context, filter LeadFilter) ([]entity.Lead, error) {
	switch filter.Sort {
	case "", "asc", "desc", "timeToClose", "priority":
	default:
		filter.Sort = ""
	}
	return uc.Leads.List(ctx, filter)
}
