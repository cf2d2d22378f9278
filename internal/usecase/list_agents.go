package usecase

import (
	"context"

	"github.com/crmkit/salespipe/internal/entity"
)

type ListAgentsUseCase struct {
	Agents AgentRepository
}

func NewListAgentsUseCase(agents AgentRepository) *ListAgentsUseCase {
	return &ListAgentsUseCase{Agents: agents}
}

func (uc *ListAgentsUseCase) Execute(ctx context.Context) ([]entity.SalesAgent, error) {
	return uc.Agents.FindAll(ctx)
}
