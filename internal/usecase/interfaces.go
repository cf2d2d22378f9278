package usecase

import (
	"context"
	"time"

	"github.com/crmkit/salespipe/internal/entity"
)

// Repositories return (nil, nil) when a lookup matches nothing; deciding
// whether absence is a 404 is the use case's job, not the store's.

type AgentRepository interface {
	Insert(ctx context.Context, agent *entity.SalesAgent) error
	FindAll(ctx context.Context) ([]entity.SalesAgent, error)
	FindByID(ctx context.Context, id string) (*entity.SalesAgent, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// LeadFilter narrows and orders a lead listing. Sort is one of
// "asc", "desc", "timeToClose", "priority" or empty for store order.
type LeadFilter struct {
	Status string
	Agent  string
	Sort   string
}

type LeadRepository interface {
	Insert(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	Replace(ctx context.Context, lead *entity.Lead) (bool, error)
	Delete(ctx context.Context, id string) (*entity.Lead, error)
	List(ctx context.Context, filter LeadFilter) ([]entity.Lead, error)

	ClosedBetween(ctx context.Context, from, to time.Time) ([]entity.ClosedLeadRow, error)
	CountInPipeline(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) ([]entity.StatusCountRow, error)
	CountByAgent(ctx context.Context) ([]entity.AgentCountRow, error)
}

type CommentRepository interface {
	Insert(ctx context.Context, comment *entity.Comment) error
	FindByLead(ctx context.Context, leadID string) ([]entity.Comment, error)
}
