package entity

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ErrDuplicateEmail is returned by the repository when the unique index on
// email rejects a write. The pre-insert check is only a fast path; the
// index is the source of truth.
var ErrDuplicateEmail = errors.New("email already in use")

type SalesAgent struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// Factory
func NewSalesAgent(name, email string) (*SalesAgent, error) {
	agent := &SalesAgent{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		CreatedAt: time.Now().UTC(),
	}

	if err := agent.Validate(); err != nil {
		return nil, err
	}

	return agent, nil
}

func (a *SalesAgent) Validate() error {
	if a.Name == "" {
		return errors.New("name is required")
	}
	if !emailPattern.MatchString(a.Email) {
		return errors.New("email must be a valid email address")
	}
	return nil
}

// ValidEmail reports whether s looks like an email address. The check is
// deliberately loose: something before "@", a dot somewhere after it.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
