package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"pj_billing/internal/domain/draft"
	"pj_billing/internal/domain/entities"
	"pj_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrApplicationNotFound  = errors.New("billing application not found")
	ErrInvalidApplicationID = errors.New("invalid application id")
	ErrInvalidStatus        = errors.New("invalid application status")
	ErrDraftNotSubmittable  = errors.New("draft is not ready for submission")
	ErrAlreadyProcessed     = errors.New("application already processed")
)

// IBillingApplicationUseCase is the billing request registry: it turns a
// completed draft into a pending application and owns the resubmission path.

type IBillingApplicationUseCase interface {
	Submit(ctx context.Context, flow *draft.Flow) (entities.BillingApplication, error)
	Resubmit(ctx context.Context, id string, revised entities.BillingContent, correctionComment string) (entities.BillingApplication, error)
	GetByID(ctx context.Context, id string) (entities.BillingApplication, error)
	List(ctx context.Context) ([]entities.BillingApplication, error)
	ListByStatus(ctx context.Context, status entities.ApplicationStatus) ([]entities.BillingApplication, error)
	ListApprovable(ctx context.Context) ([]entities.BillingApplication, error)
}

type BillingApplicationUseCase struct {
	repo       interfaces.IBillingApplicationRepository
	identity   interfaces.IIdentityProvider
	dispatcher interfaces.INotificationDispatcher
}

var _ IBillingApplicationUseCase = (*BillingApplicationUseCase)(nil)

func NewBillingApplicationUseCase(
	repo interfaces.IBillingApplicationRepository,
	identity interfaces.IIdentityProvider,
	dispatcher interfaces.INotificationDispatcher,
) *BillingApplicationUseCase {
	return &BillingApplicationUseCase{repo: repo, identity: identity, dispatcher: dispatcher}
}

// Submit validates the draft content, registers a pending application and
// resets the flow. The draft must have reached the applying step.
func (u *BillingApplicationUseCase) Submit(ctx context.Context, flow *draft.Flow) (entities.BillingApplication, error) {
	if flow == nil || !flow.Submittable() {
		log.Printf("[registry][usecase] submit refused: draft not submittable")
		return entities.BillingApplication{}, ErrDraftNotSubmittable
	}

	content := *flow.Content()
	if verr := validateBillingContent(content); verr != nil {
		log.Printf("[registry][usecase] submit validation failed: %v", verr)
		return entities.BillingApplication{}, verr
	}

	principal, err := u.identity.CurrentPrincipal(ctx)
	if err != nil {
		return entities.BillingApplication{}, err
	}

	project := *flow.Project()
	now := time.Now().UTC()
	app := entities.BillingApplication{
		ID:            uuid.NewString(),
		BillingNumber: newBillingNumber(now),
		ProjectName:   project.Name,
		ClientName:    project.Client,
		Amount:        content.Amount,
		Status:        entities.ApplicationStatusPending,
		AppliedAt:     now,
		AppliedBy:     principal.Name,
	}

	created, err := u.repo.Create(ctx, app)
	if err != nil {
		log.Printf("[registry][usecase] submit persist failed id=%s err=%v", app.ID, err)
		return entities.BillingApplication{}, err
	}
	log.Printf("[registry][usecase] submit success id=%s billing_number=%s", created.ID, created.BillingNumber)

	u.dispatch(ctx, entities.Notification{
		Kind:        entities.NotificationSubmitted,
		Application: created,
		Email:       flow.Email(),
	})

	flow.Reset()
	return created, nil
}

// Resubmit re-enters a rejected application into the approval queue with
// revised content. The correction comment replaces the rejection reason: the
// record keeps a single active comment, not a thread.
func (u *BillingApplicationUseCase) Resubmit(ctx context.Context, id string, revised entities.BillingContent, correctionComment string) (entities.BillingApplication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingApplication{}, ErrInvalidApplicationID
	}
	if verr := validateBillingContent(revised); verr != nil {
		log.Printf("[registry][usecase] resubmit validation failed id=%s: %v", id, verr)
		return entities.BillingApplication{}, verr
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingApplication{}, err
	}
	if existing.ID == "" {
		return entities.BillingApplication{}, ErrApplicationNotFound
	}

	now := time.Now().UTC()
	comment := strings.TrimSpace(correctionComment)
	updated, err := u.repo.UpdateStatus(ctx, id,
		[]entities.ApplicationStatus{entities.ApplicationStatusRejected},
		interfaces.StatusChange{
			Status:    entities.ApplicationStatusResubmitted,
			AppliedAt: &now,
			Comment:   &comment,
			Amount:    &revised.Amount,
		})
	if err != nil {
		log.Printf("[registry][usecase] resubmit update failed id=%s err=%v", id, err)
		return entities.BillingApplication{}, err
	}
	if updated.ID == "" {
		// The rejected precondition no longer held when the write was applied.
		log.Printf("[registry][usecase] resubmit conflict id=%s status=%s", id, existing.Status)
		return entities.BillingApplication{}, ErrAlreadyProcessed
	}
	log.Printf("[registry][usecase] resubmit success id=%s", id)
	return updated, nil
}

func (u *BillingApplicationUseCase) GetByID(ctx context.Context, id string) (entities.BillingApplication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingApplication{}, ErrInvalidApplicationID
	}
	app, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingApplication{}, err
	}
	if app.ID == "" {
		return entities.BillingApplication{}, ErrApplicationNotFound
	}
	return app, nil
}

func (u *BillingApplicationUseCase) List(ctx context.Context) ([]entities.BillingApplication, error) {
	return u.repo.List(ctx)
}

func (u *BillingApplicationUseCase) ListByStatus(ctx context.Context, status entities.ApplicationStatus) ([]entities.BillingApplication, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return u.repo.ListByStatus(ctx, status)
}

// ListApprovable returns the approval queue: pending plus resubmitted, in
// applied order. Resubmitted items stay distinguishable by status for badges.
func (u *BillingApplicationUseCase) ListApprovable(ctx context.Context) ([]entities.BillingApplication, error) {
	pending, err := u.repo.ListByStatus(ctx, entities.ApplicationStatusPending)
	if err != nil {
		return nil, err
	}
	resubmitted, err := u.repo.ListByStatus(ctx, entities.ApplicationStatusResubmitted)
	if err != nil {
		return nil, err
	}
	queue := append(pending, resubmitted...)
	sortByAppliedAt(queue)
	return queue, nil
}

func (u *BillingApplicationUseCase) dispatch(ctx context.Context, n entities.Notification) {
	if u.dispatcher == nil {
		return
	}
	if err := u.dispatcher.Notify(ctx, n); err != nil {
		// Fire-and-forget: the transition is already committed.
		log.Printf("[registry][usecase] notification dispatch failed kind=%s id=%s err=%v", n.Kind, n.Application.ID, err)
	}
}

func sortByAppliedAt(apps []entities.BillingApplication) {
	sort.Slice(apps, func(i, j int) bool {
		return apps[i].AppliedAt.Before(apps[j].AppliedAt)
	})
}

// newBillingNumber builds a unique, human-sortable billing number:
// date prefix plus a uuid fragment.
func newBillingNumber(now time.Time) string {
	return fmt.Sprintf("BN-%s-%s", now.Format("20060102"), strings.ToUpper(uuid.NewString()[:8]))
}
