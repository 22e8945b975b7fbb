package entities

// NotificationKind identifies the lifecycle event being announced.

type NotificationKind string

const (
	NotificationSubmitted NotificationKind = "submitted"
	NotificationApproved  NotificationKind = "approved"
	NotificationRejected  NotificationKind = "rejected"
)

// Notification is handed to the dispatcher after a committed status transition.
// Dispatch is fire-and-forget: a delivery failure never rolls the transition back.

type Notification struct {
	Kind        NotificationKind   `json:"kind"`
	Application BillingApplication `json:"application"`
	Email       *EmailContent      `json:"email,omitempty"`
}
