package entities

import "time"

// ApplicationStatus is the lifecycle of a submitted billing application.
//
// Transitions:
//   - pending/resubmitted -> approved (terminal)
//   - pending/resubmitted -> rejected
//   - rejected -> resubmitted (only exit from rejected)

type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusApproved    ApplicationStatus = "approved"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusResubmitted ApplicationStatus = "resubmitted"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected, ApplicationStatusResubmitted:
		return true
	}
	return false
}

// Approvable reports whether an approver may act on the application.
// Resubmitted applications re-enter the approval queue.
func (s ApplicationStatus) Approvable() bool {
	return s == ApplicationStatusPending || s == ApplicationStatusResubmitted
}

// BillingApplication is the persisted billing request.
//
// Storage model (DynamoDB):
//   - PK: id (string)
//   - GSI1 (status-index): status
//
// Comment holds the active rejection reason, or after resubmission the
// applicant's correction note. Never both: resubmit overwrites.

type BillingApplication struct {
	ID            string            `json:"id"`
	BillingNumber string            `json:"billing_number"`
	ProjectName   string            `json:"project_name"`
	ClientName    string            `json:"client_name"`
	Amount        int64             `json:"amount"`
	Status        ApplicationStatus `json:"status"`
	AppliedAt     time.Time         `json:"applied_at"`
	AppliedBy     string            `json:"applied_by"`
	ApprovedBy    string            `json:"approved_by,omitempty"`
	ApprovedAt    *time.Time        `json:"approved_at,omitempty"`
	Comment       string            `json:"comment,omitempty"`
}
