package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/crmkit/salespipe/internal/entity"
)

type CreateAgentUseCase struct {
	Agents AgentRepository
}

func NewCreateAgentUseCase(agents AgentRepository) *CreateAgentUseCase {
	return &CreateAgentUseCase{Agents: agents}
}

func (uc *CreateAgentUseCase) Execute(ctx context.Context, input CreateAgentInput) (*entity.SalesAgent, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidInput("name is required")
	}

	email := strings.TrimSpace(input.Email)
	if !entity.ValidEmail(email) {
		return nil, ErrInvalidInput("email must be a valid email address")
	}

	// Advisory pre-check for a friendly 409; concurrent creates are caught
	// by the unique index on insert.
	taken, err := uc.Agents.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrConflict(fmt.Sprintf("sales agent with email %s already exists", email))
	}

	agent, err := entity.NewSalesAgent(input.Name, email)
	if err != nil {
		return nil, ErrInvalidInput(err.Error())
	}

	if err := uc.Agents.Insert(ctx, agent); err != nil {
		if errors.Is(err, entity.ErrDuplicateEmail) {
			return nil, ErrConflict(fmt.Sprintf("sales agent with email %s already exists", email))
		}
		return nil, err
	}

	return agent, nil
}
