package interfaces

import (
	"context"
	"time"

	"pj_billing/internal/domain/entities"
)

// StatusChange is the mutation applied by a guarded status transition.
// Nil pointer fields are left untouched.
type StatusChange struct {
	Status     entities.ApplicationStatus
	ApprovedBy string
	ApprovedAt *time.Time
	AppliedAt  *time.Time
	Comment    *string
	Amount     *int64
}

// IBillingApplicationRepository abstracts persistence for BillingApplication.
//
// UpdateStatus applies the change only while the stored status is one of
// `from`; implementations must make the check-and-set atomic (DynamoDB uses a
// ConditionExpression) and return a zero-value application when the condition
// no longer holds, so a concurrent transition on the same id surfaces as a
// conflict instead of a silent overwrite.

type IBillingApplicationRepository interface {
	Create(ctx context.Context, app entities.BillingApplication) (entities.BillingApplication, error)
	GetByID(ctx context.Context, id string) (entities.BillingApplication, error)
	List(ctx context.Context) ([]entities.BillingApplication, error)
	ListByStatus(ctx context.Context, status entities.ApplicationStatus) ([]entities.BillingApplication, error)
	UpdateStatus(ctx context.Context, id string, from []entities.ApplicationStatus, change StatusChange) (entities.BillingApplication, error)
}
