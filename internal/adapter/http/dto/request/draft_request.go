package request

import (
	"pj_billing/internal/domain/budget"
	"pj_billing/internal/domain/entities"
)

// SelectProjectRequest attaches a project to the draft. Members/payments are
// optional: when present, the default billing amount is computed from them
// instead of the project baseline.
type SelectProjectRequest struct {
	ProjectID string               `json:"project_id" binding:"required"`
	Members   []TeamMemberRequest  `json:"members"`
	Payments  []PaymentLineRequest `json:"payments"`
}

func (r SelectProjectRequest) ToMembers() []entities.TeamMember {
	return FinancialsRequest{Members: r.Members}.ToMembers()
}

func (r SelectProjectRequest) ToPayments() []entities.PaymentLine {
	return FinancialsRequest{Payments: r.Payments}.ToPayments()
}

// BillingContentRequest carries edited billing content. Amount is a raw string
// normalized by the budget engine.
type BillingContentRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Amount      string   `json:"amount"`
	WorkItems   []string `json:"work_items"`
}

func (r BillingContentRequest) ToContent() entities.BillingContent {
	return entities.BillingContent{
		Title:       r.Title,
		Description: r.Description,
		Amount:      budget.ParseAmount(r.Amount),
		WorkItems:   r.WorkItems,
	}
}

// AddendumRequest changes only the free-text addendum; the email is re-rendered
// from the category template.
type AddendumRequest struct {
	Addendum string `json:"addendum"`
}

type EmailContentRequest struct {
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Recipient string `json:"recipient"`
	CC        string `json:"cc"`
	Addendum  string `json:"addendum"`
}

func (r EmailContentRequest) ToEmail() entities.EmailContent {
	return entities.EmailContent{
		Subject:   r.Subject,
		Body:      r.Body,
		Recipient: r.Recipient,
		CC:        r.CC,
		Addendum:  r.Addendum,
	}
}
