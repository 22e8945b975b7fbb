package notifications

import (
	"context"
	"log"

	"pj_billing/internal/domain/entities"
	"pj_billing/internal/usecase/interfaces"
)

// LogDispatcher records lifecycle notifications in the service log. Actual
// delivery (mail, chat) is owned by an external system consuming these events;
// the core only needs a dispatcher that never blocks a committed transition.

type LogDispatcher struct{}

var _ interfaces.INotificationDispatcher = (*LogDispatcher)(nil)

func NewLogDispatcher() *LogDispatcher {
	return &LogDispatcher{}
}

func (d *LogDispatcher) Notify(_ context.Context, n entities.Notification) error {
	if n.Email != nil {
		log.Printf("[notify] kind=%s application=%s billing_number=%s to=%s subject=%q",
			n.Kind, n.Application.ID, n.Application.BillingNumber, n.Email.Recipient, n.Email.Subject)
		return nil
	}
	log.Printf("[notify] kind=%s application=%s billing_number=%s status=%s",
		n.Kind, n.Application.ID, n.Application.BillingNumber, n.Application.Status)
	return nil
}
