package usecase

type CreateAgentInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CreateLeadInput struct {
	Name        string `json:"name"`
	SalesAgent  string `json:"salesAgent"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	TimeToClose int    `json:"timeToClose"`
}

// UpdateLeadInput is a partial update: nil means "leave untouched".
type UpdateLeadInput struct {
	Name        *string `json:"name"`
	SalesAgent  *string `json:"salesAgent"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	TimeToClose *int    `json:"timeToClose"`
}

type CreateCommentInput struct {
	Lead    string `json:"lead"`
	Author  string `json:"author"`
	Content string `json:"content"`
}
