package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/crmkit/salespipe/internal/entity"
)

type CreateCommentUseCase struct {
	Comments CommentRepository
	Leads    LeadRepository
	Agents   AgentRepository
}

func NewCreateCommentUseCase(comments CommentRepository, leads LeadRepository, agents AgentRepository) *CreateCommentUseCase {
	return &CreateCommentUseCase{Comments: comments, Leads: leads, Agents: agents}
}

// Execute validates both reference formats before touching the store, then
// checks existence with the lead taking precedence over the author.
func (uc *CreateCommentUseCase) Execute(ctx context.Context, input CreateCommentInput) (*entity.Comment, error) {
	leadID := strings.TrimSpace(input.Lead)
	if !ValidIDFormat(leadID) {
		return nil, ErrInvalidInput("lead must be a valid lead id")
	}
	authorID := strings.TrimSpace(input.Author)
	if !ValidIDFormat(authorID) {
		return nil, ErrInvalidInput("author must be a valid agent id")
	}

	lead, err := uc.Leads.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrNotFound(fmt.Sprintf("lead %s not found", leadID))
	}

	author, err := uc.Agents.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrNotFound(fmt.Sprintf("sales agent %s not found", authorID))
	}

	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrInvalidInput("validation failed: content: is required")
	}

	comment := entity.NewComment(leadID, authorID, input.Content)
	if err := uc.Comments.Insert(ctx, comment); err != nil {
		return nil, err
	}

	comment.Author = author
	return comment, nil
}
