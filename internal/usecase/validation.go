package usecase

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/crmkit/salespipe/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidIDFormat reports whether s parses as one of our generated IDs.
// Format failures map to 400, unlike existence failures which map to 404.
func ValidIDFormat(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// ValidateLead checks the full lead record, so partial updates re-validate
// the merged result rather than just the incoming fields.
func ValidateLead(lead *entity.Lead) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(lead.Name) == "" {
		errs = append(errs, ValidationError{"name", "is required"})
	}

	if strings.TrimSpace(lead.SalesAgentID) == "" {
		errs = append(errs, ValidationError{"salesAgent", "is required"})
	} else if !ValidIDFormat(lead.SalesAgentID) {
		errs = append(errs, ValidationError{"salesAgent", "must be a valid agent id"})
	}

	if !lead.Status.Valid() {
		errs = append(errs, ValidationError{"status", "must be one of New, Contacted, Qualified, Proposal Sent, Closed"})
	}

	if !lead.Priority.Valid() {
		errs = append(errs, ValidationError{"priority", "must be one of High, Medium, Low"})
	}

	if lead.TimeToClose < 0 {
		errs = append(errs, ValidationError{"timeToClose", "must not be negative"})
	}

	return errs
}

// joinValidation folds field errors into the single message surfaced as a
// 400 body.
func joinValidation(errs []ValidationError) error {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return ErrInvalidInput("validation failed: " + strings.Join(msgs, ", "))
}
