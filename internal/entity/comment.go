package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is an append-only note on a lead. There is no update or delete
// surface for comments.
type Comment struct {
	ID        string    `json:"id" bson:"_id"`
	LeadID    string    `json:"lead" bson:"lead"`
	AuthorID  string    `json:"author" bson:"author"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`

	// Author carries the expanded agent on reads, nil when unresolved.
	Author *SalesAgent `json:"authorDetails,omitempty" bson:"authorDetails,omitempty"`
}

func NewComment(leadID, authorID, content string) *Comment {
	return &Comment{
		ID:        uuid.New().String(),
		LeadID:    leadID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}
