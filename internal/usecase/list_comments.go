package usecase

import (
	"context"
	"fmt"

	"github.com/crmkit/salespipe/internal/entity"
)

type ListCommentsUseCase struct {
	Comments CommentRepository
	Leads    LeadRepository
}

func NewListCommentsUseCase(comments CommentRepository, leads LeadRepository) *ListCommentsUseCase {
	return &ListCommentsUseCase{Comments: comments, Leads: leads}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, leadID string) ([]entity.Comment, error) {
	if !ValidIDFormat(leadID) {
		return nil, ErrInvalidInput("leadId must be a valid lead id")
	}

	lead, err := uc.Leads.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrNotFound(fmt.Sprintf("lead %s not found", leadID))
	}

	return uc.Comments.FindByLead(ctx, leadID)
}
