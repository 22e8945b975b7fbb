package interfaces

import (
	"context"

	"pj_billing/internal/domain/entities"
)

// INotificationDispatcher announces committed lifecycle transitions.
//
// Calls are fire-and-forget from the core's perspective: a dispatch failure is
// logged by the caller and never rolls back the transition.

type INotificationDispatcher interface {
	Notify(ctx context.Context, n entities.Notification) error
}
