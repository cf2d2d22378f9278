package usecase

import (
	"context"
	"time"

	"github.com/crmkit/salespipe/internal/entity"
)

// ReportUseCase bundles the read-only aggregates. Each query is a single
// pipeline round trip and fully deterministic for a given store state.
type ReportUseCase struct {
	Leads LeadRepository
	Now   func() time.Time
}

func NewReportUseCase(leads LeadRepository) *ReportUseCase {
	return &ReportUseCase{Leads: leads, Now: time.Now}
}

// ClosedLastWeek reports leads closed inside the last seven days, both
// bounds inclusive.
func (uc *ReportUseCase) ClosedLastWeek(ctx context.Context) ([]entity.ClosedLeadRow, error) {
	now := uc.Now().UTC()
	return uc.Leads.ClosedBetween(ctx, now.AddDate(0, 0, -7), now)
}

// PipelineCount counts leads not yet in the terminal Closed status.
func (uc *ReportUseCase) PipelineCount(ctx context.Context) (int64, error) {
	return uc.Leads.CountInPipeline(ctx)
}

func (uc *ReportUseCase) CountByStatus(ctx context.Context) ([]entity.StatusCountRow, error) {
	return uc.Leads.CountByStatus(ctx)
}

func (uc *ReportUseCase) CountByAgent(ctx context.Context) ([]entity.AgentCountRow, error) {
	return uc.Leads.CountByAgent(ctx)
}
