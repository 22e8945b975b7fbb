package entities

// BillingContent is the body of a billing request composed by the draft wizard.
//
// WorkItems must be non-empty and Amount must be > 0 before the draft can be
// submitted; both are enforced at submit/resubmit time, not while editing.

type BillingContent struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Amount      int64    `json:"amount"`
	WorkItems   []string `json:"work_items"`
}

// EmailContent is the notification mail composed alongside the billing content.

type EmailContent struct {
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Recipient string `json:"recipient"`
	CC        string `json:"cc,omitempty"`
	Addendum  string `json:"addendum,omitempty"`
}

// EmailTemplate is a per-category mail template.
//
// Category "general" is the fallback used when no template is marked active for a
// project category. Subject/Body may reference the placeholders
// {{client_name}}, {{billing_description}}, {{amount}} and {{addendum}}.

type EmailTemplate struct {
	Category string `json:"category"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	Active   bool   `json:"active"`
}

const TemplateCategoryGeneral = "general"
