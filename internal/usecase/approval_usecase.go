package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"pj_billing/internal/domain/entities"
	"pj_billing/internal/usecase/interfaces"
)

var (
	ErrPermissionDenied = errors.New("principal is not allowed to approve or reject")
	ErrCommentRequired  = errors.New("rejection reason is required")
)

// approvableStatuses are the only states an approver may act on. Approved is
// terminal; rejected re-enters the queue only through resubmission.
var approvableStatuses = []entities.ApplicationStatus{
	entities.ApplicationStatusPending,
	entities.ApplicationStatusResubmitted,
}

// BulkApprovalResult is one item of a bulk approval. Items fail independently;
// a conflict on one id never rolls back the others.
type BulkApprovalResult struct {
	ID          string
	Application entities.BillingApplication
	Err         error
}

// IApprovalUseCase guards and performs the approve/reject transitions.

type IApprovalUseCase interface {
	Approve(ctx context.Context, id string, approver entities.Principal) (entities.BillingApplication, error)
	Reject(ctx context.Context, id string, approver entities.Principal, reason string) (entities.BillingApplication, error)
	BulkApprove(ctx context.Context, ids []string, approver entities.Principal) []BulkApprovalResult
}

type ApprovalUseCase struct {
	repo       interfaces.IBillingApplicationRepository
	dispatcher interfaces.INotificationDispatcher
}

var _ IApprovalUseCase = (*ApprovalUseCase)(nil)

func NewApprovalUseCase(repo interfaces.IBillingApplicationRepository, dispatcher interfaces.INotificationDispatcher) *ApprovalUseCase {
	return &ApprovalUseCase{repo: repo, dispatcher: dispatcher}
}

// Approve moves a pending or resubmitted application to approved. The status
// precondition is checked atomically with the write, so a concurrent decision
// on the same id surfaces as ErrAlreadyProcessed.
func (u *ApprovalUseCase) Approve(ctx context.Context, id string, approver entities.Principal) (entities.BillingApplication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingApplication{}, ErrInvalidApplicationID
	}
	if !approver.CanApprove() {
		log.Printf("[approval][usecase] approve denied id=%s principal=%s", id, approver.ID)
		return entities.BillingApplication{}, ErrPermissionDenied
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingApplication{}, err
	}
	if existing.ID == "" {
		return entities.BillingApplication{}, ErrApplicationNotFound
	}

	now := time.Now().UTC()
	updated, err := u.repo.UpdateStatus(ctx, id, approvableStatuses, interfaces.StatusChange{
		Status:     entities.ApplicationStatusApproved,
		ApprovedBy: approver.Name,
		ApprovedAt: &now,
	})
	if err != nil {
		log.Printf("[approval][usecase] approve update failed id=%s err=%v", id, err)
		return entities.BillingApplication{}, err
	}
	if updated.ID == "" {
		log.Printf("[approval][usecase] approve conflict id=%s status=%s", id, existing.Status)
		return entities.BillingApplication{}, ErrAlreadyProcessed
	}
	log.Printf("[approval][usecase] approve success id=%s by=%s", id, approver.ID)

	u.dispatch(ctx, entities.Notification{Kind: entities.NotificationApproved, Application: updated})
	return updated, nil
}

// Reject moves a pending or resubmitted application to rejected. The reason is
// mandatory and becomes the record's active comment.
func (u *ApprovalUseCase) Reject(ctx context.Context, id string, approver entities.Principal, reason string) (entities.BillingApplication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingApplication{}, ErrInvalidApplicationID
	}
	if !approver.CanApprove() {
		log.Printf("[approval][usecase] reject denied id=%s principal=%s", id, approver.ID)
		return entities.BillingApplication{}, ErrPermissionDenied
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.BillingApplication{}, ErrCommentRequired
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingApplication{}, err
	}
	if existing.ID == "" {
		return entities.BillingApplication{}, ErrApplicationNotFound
	}

	now := time.Now().UTC()
	updated, err := u.repo.UpdateStatus(ctx, id, approvableStatuses, interfaces.StatusChange{
		Status:     entities.ApplicationStatusRejected,
		ApprovedBy: approver.Name,
		ApprovedAt: &now,
		Comment:    &reason,
	})
	if err != nil {
		log.Printf("[approval][usecase] reject update failed id=%s err=%v", id, err)
		return entities.BillingApplication{}, err
	}
	if updated.ID == "" {
		log.Printf("[approval][usecase] reject conflict id=%s status=%s", id, existing.Status)
		return entities.BillingApplication{}, ErrAlreadyProcessed
	}
	log.Printf("[approval][usecase] reject success id=%s by=%s", id, approver.ID)

	u.dispatch(ctx, entities.Notification{Kind: entities.NotificationRejected, Application: updated})
	return updated, nil
}

// BulkApprove decomposes into independent per-item approvals and reports a
// result per id. It never aborts wholesale: later items are attempted even
// after an earlier conflict.
func (u *ApprovalUseCase) BulkApprove(ctx context.Context, ids []string, approver entities.Principal) []BulkApprovalResult {
	results := make([]BulkApprovalResult, 0, len(ids))
	for _, id := range ids {
		app, err := u.Approve(ctx, id, approver)
		results = append(results, BulkApprovalResult{ID: id, Application: app, Err: err})
	}
	return results
}

func (u *ApprovalUseCase) dispatch(ctx context.Context, n entities.Notification) {
	if u.dispatcher == nil {
		return
	}
	if err := u.dispatcher.Notify(ctx, n); err != nil {
		log.Printf("[approval][usecase] notification dispatch failed kind=%s id=%s err=%v", n.Kind, n.Application.ID, err)
	}
}
