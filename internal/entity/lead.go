package entity

import (
	"time"
)

type LeadStatus string

const (
	StatusNew          LeadStatus = "New"
	StatusContacted    LeadStatus = "Contacted"
	StatusQualified    LeadStatus = "Qualified"
	StatusProposalSent LeadStatus = "Proposal Sent"
	StatusClosed       LeadStatus = "Closed"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusQualified, StatusProposalSent, StatusClosed:
		return true
	}
	return false
}

type LeadPriority string

const (
	PriorityHigh   LeadPriority = "High"
	PriorityMedium LeadPriority = "Medium"
	PriorityLow    LeadPriority = "Low"
)

// Valid treats the empty string as valid: priority is optional.
func (p LeadPriority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow, "":
		return true
	}
	return false
}

// Rank maps a priority to its sort position. Unknown or absent
// priorities sort last.
func (p LeadPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

type Lead struct {
	ID           string       `json:"id" bson:"_id"`
	Name         string       `json:"name" bson:"name"`
	SalesAgentID string       `json:"salesAgent" bson:"salesAgent"`
	Status       LeadStatus   `json:"status" bson:"status"`
	Priority     LeadPriority `json:"priority,omitempty" bson:"priority,omitempty"`
	TimeToClose  int          `json:"timeToClose" bson:"timeToClose"`
	CreatedAt    time.Time    `json:"createdAt" bson:"createdAt"`
	ClosedAt     *time.Time   `json:"closedAt,omitempty" bson:"closedAt,omitempty"`

	// SalesAgent carries the expanded agent on reads. It stays nil when the
	// reference is dangling and is never written back to the store.
	SalesAgent *SalesAgent `json:"salesAgentDetails,omitempty" bson:"salesAgentDetails,omitempty"`
}

// Close stamps the closing timestamp; Reopen clears it. Status transitions
// go through these so closedAt can never disagree with the status.
func (l *Lead) Close(at time.Time) {
	l.Status = StatusClosed
	l.ClosedAt = &at
}

func (l *Lead) Reopen(status LeadStatus) {
	l.Status = status
	l.ClosedAt = nil
}
