package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pj_billing/internal/domain/draft"
	"pj_billing/internal/domain/entities"
	"pj_billing/internal/usecase/interfaces"
	mock_interfaces "pj_billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validContent() entities.BillingContent {
	return entities.BillingContent{
		Title:       "X",
		Description: "Y",
		Amount:      50000,
		WorkItems:   []string{"a"},
	}
}

func submittableFlow(t *testing.T, content entities.BillingContent) *draft.Flow {
	t.Helper()
	f := draft.NewFlow()
	project := entities.Project{ID: "prj-1", Name: "Inventory System Rebuild", Category: entities.ProjectCategoryFixedBid, Client: "Fabrikam Foods"}
	if err := f.SelectProject(project, content, draft.GeneralTemplate); err != nil {
		t.Fatalf("select project: %v", err)
	}
	if err := f.Finalize(); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	return f
}

func TestBillingApplicationUseCase_Submit(t *testing.T) {
	t.Run("nil flow", func(t *testing.T) {
		uc := NewBillingApplicationUseCase(nil, nil, nil)
		_, err := uc.Submit(context.Background(), nil)
		if !errors.Is(err, ErrDraftNotSubmittable) {
			t.Fatalf("expected ErrDraftNotSubmittable, got %v", err)
		}
	})

	t.Run("draft still in preview", func(t *testing.T) {
		uc := NewBillingApplicationUseCase(nil, nil, nil)
		f := draft.NewFlow()
		project := entities.Project{ID: "prj-1", Name: "p", Client: "c"}
		if err := f.SelectProject(project, validContent(), draft.GeneralTemplate); err != nil {
			t.Fatalf("select project: %v", err)
		}
		_, err := uc.Submit(context.Background(), f)
		if !errors.Is(err, ErrDraftNotSubmittable) {
			t.Fatalf("expected ErrDraftNotSubmittable, got %v", err)
		}
	})

	t.Run("zero work items fails validation without persisting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingApplicationRepository(ctrl)
		uc := NewBillingApplicationUseCase(repo, nil, nil)

		content := validContent()
		content.WorkItems = nil
		f := submittableFlow(t, content)

		_, err := uc.Submit(context.Background(), f)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if _, ok := verr.Fields["work_items"]; !ok {
			t.Fatalf("expected work_items message, got %+v", verr.Fields)
		}
		if f.Step() != draft.StepApplying {
			t.Fatalf("failed submit must not reset the flow, step=%s", f.Step())
		}
	})

	t.Run("blank work items count as none", func(t *testing.T) {
		uc := NewBillingApplicationUseCase(nil, nil, nil)
		content := validContent()
		content.WorkItems = []string{"  ", ""}
		f := submittableFlow(t, content)

		_, err := uc.Submit(context.Background(), f)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("identity error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		identity := mock_interfaces.NewMockIIdentityProvider(ctrl)
		uc := NewBillingApplicationUseCase(nil, identity, nil)
		identity.EXPECT().CurrentPrincipal(gomock.Any()).Return(entities.Principal{}, errors.New("no principal"))

		_, err := uc.Submit(context.Background(), submittableFlow(t, validContent()))
		if err == nil || err.Error() != "no principal" {
			t.Fatalf("expected identity error, got %v", err)
		}
	})

	t.Run("success registers pending and resets the flow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingApplicationRepository(ctrl)
		identity := mock_interfaces.NewMockIIdentityProvider(ctrl)
		dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewBillingApplicationUseCase(repo, identity, dispatcher)

		identity.EXPECT().CurrentPrincipal(gomock.Any()).Return(entities.Principal{ID: "u-1", Name: "Tanaka"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.BillingApplication{})).DoAndReturn(
			func(_ context.Context, app entities.BillingApplication) (entities.BillingApplication, error) {
				if app.ID == "" {
					t.Fatalf("expected generated id")
				}
				if !strings.HasPrefix(app.BillingNumber, "BN-") {
					t.Fatalf("unexpected billing number: %s", app.BillingNumber)
				}
				if app.Status != entities.ApplicationStatusPending {
					t.Fatalf("expected pending, got %s", app.Status)
				}
				if app.AppliedAt.IsZero() || app.AppliedBy != "Tanaka" {
					t.Fatalf("unexpected application: %+v", app)
				}
				if app.Amount != 50000 || app.ProjectName != "Inventory System Rebuild" || app.ClientName != "Fabrikam Foods" {
					t.Fatalf("unexpected application: %+v", app)
				}
				return app, nil
			},
		)
		dispatcher.EXPECT().Notify(gomock.Any(), gomock.AssignableToTypeOf(entities.Notification{})).DoAndReturn(
			func(_ context.Context, n entities.Notification) error {
				if n.Kind != entities.NotificationSubmitted {
					t.Fatalf("expected submitted notification, got %s", n.Kind)
				}
				return nil
			},
		)

		f := submittableFlow(t, validContent())
		res, err := uc.Submit(context.Background(), f)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.ApplicationStatusPending {
			t.Fatalf("expected pending, got %s", res.Status)
		}
		if f.Step() != draft.StepSelectingProject {
			t.Fatalf("expected flow reset, step=%s", f.Step())
		}
	})

	t.Run("billing numbers are unique across submits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingApplicationRepository(ctrl)
		identity := mock_interfaces.NewMockIIdentityProvider(ctrl)
		uc := NewBillingApplicationUseCase(repo, identity, nil)

		identity.EXPECT().CurrentPrincipal(gomock.Any()).Return(entities.Principal{Name: "Tanaka"}, nil).Times(2)
		seen := map[string]bool{}
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, app entities.BillingApplication) (entities.BillingApplication, error) {
				if seen[app.BillingNumber] {
					t.Fatalf("duplicate billing number: %s", app.BillingNumber)
				}
				seen[app.BillingNumber] = true
				return app, nil
			},
		).Times(2)

		for i := 0; i < 2; i++ {
			if _, err := uc.Submit(context.Background(), submittableFlow(t, validContent())); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
	})
}

func TestBillingApplicationUseCase_Resubmit(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewBillingApplicationUseCase(nil, nil, nil)
		_, err := uc.Resubmit(context.Background(), "  ", validContent(), "c")
		if !errors.Is(err, ErrInvalidApplicationID) {
			t.Fatalf("expected ErrInvalidApplicationID, got %v", err)
		}
	})

	t.Run("invalid content", func(t *testing.T) {
		uc := NewBillingApplicationUseCase(nil, nil, nil)
		content := validContent()
		content.Amount = 0
		_, err := uc.Resubmit(context.Background(), "app-1", content, "c")
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingApplicationRepository(ctrl)
		uc := NewBillingApplicationUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(entities.BillingApplication{}, nil)

		_, err := uc.Resubmit(context.Background(), "app-1", validContent(), "c")
		if !errors.Is(err, ErrApplicationNotFound) {
			t.Fatalf("expected ErrApplicationNotFound, got %v", err)
		}
	})

	t.Run("correction comment replaces rejection reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingApplicationRepository(ctrl)
		uc := NewBillingApplicationUseCase(repo, nil, nil)

		rejected := entities.BillingApplication{ID: "app-1", Status: entities.ApplicationStatusRejected, Comment: "fix totals"}
		repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(rejected, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "app-1",
			[]entities.ApplicationStatus{entities.ApplicationStatusRejected},
			gomock.AssignableToTypeOf(interfaces.StatusChange{}),
		).DoAndReturn(
			func(_ context.Context, id string, _ []entities.ApplicationStatus, change interfaces.StatusChange) (entities.BillingApplication, error) {
				if change.Status != entities.ApplicationStatusResubmitted {
					t.Fatalf("expected resubmitted, got %s", change.Status)
				}
				if change.Comment == nil || *change.Comment != "fixed as requested" {
					t.Fatalf("expected correction comment, got %+v", change.Comment)
				}
				if change.Amount == nil || *change.Amount != 50000 {
					t.Fatalf("expected revised amount, got %+v", change.Amount)
				}
				if change.AppliedAt == nil || change.AppliedAt.IsZero() {
					t.Fatalf("expected applied timestamp")
				}
				return entities.BillingApplication{ID: id, Status: change.Status, Comment: *change.Comment}, nil
			},
		)

		res, err := uc.Resubmit(context.Background(), "app-1", validContent(), "fixed as requested")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.ApplicationStatusResubmitted || res.Comment != "fixed as requested" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("precondition lost between read and write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingApplicationRepository(ctrl)
		uc := NewBillingApplicationUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(entities.BillingApplication{ID: "app-1", Status: entities.ApplicationStatusApproved}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "app-1", gomock.Any(), gomock.Any()).Return(entities.BillingApplication{}, nil)

		_, err := uc.Resubmit(context.Background(), "app-1", validContent(), "c")
		if !errors.Is(err, ErrAlreadyProcessed) {
			t.Fatalf("expected ErrAlreadyProcessed, got %v", err)
		}
	})
}

func TestBillingApplicationUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewBillingApplicationUseCase(nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidApplicationID) {
			t.Fatalf("expected ErrInvalidApplicationID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingApplicationRepository(ctrl)
		uc := NewBillingApplicationUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(entities.BillingApplication{}, nil)

		_, err := uc.GetByID(context.Background(), "app-1")
		if !errors.Is(err, ErrApplicationNotFound) {
			t.Fatalf("expected ErrApplicationNotFound, got %v", err)
		}
	})

	t.Run("success trims the id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingApplicationRepository(ctrl)
		uc := NewBillingApplicationUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(entities.BillingApplication{ID: "app-1"}, nil)

		res, err := uc.GetByID(context.Background(), " app-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "app-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestBillingApplicationUseCase_ListByStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewBillingApplicationUseCase(nil, nil, nil)
		_, err := uc.ListByStatus(context.Background(), entities.ApplicationStatus("bogus"))
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("delegates to the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingApplicationRepository(ctrl)
		uc := NewBillingApplicationUseCase(repo, nil, nil)
		repo.EXPECT().ListByStatus(gomock.Any(), entities.ApplicationStatusApproved).Return([]entities.BillingApplication{{ID: "a"}}, nil)

		res, err := uc.ListByStatus(context.Background(), entities.ApplicationStatusApproved)
		if err != nil || len(res) != 1 {
			t.Fatalf("unexpected result: %v %v", res, err)
		}
	})
}

func TestBillingApplicationUseCase_ListApprovable(t *testing.T) {
	t.Run("merges pending and resubmitted in applied order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingApplicationRepository(ctrl)
		uc := NewBillingApplicationUseCase(repo, nil, nil)

		base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
		repo.EXPECT().ListByStatus(gomock.Any(), entities.ApplicationStatusPending).Return([]entities.BillingApplication{
			{ID: "p-2", Status: entities.ApplicationStatusPending, AppliedAt: base.Add(2 * time.Hour)},
		}, nil)
		repo.EXPECT().ListByStatus(gomock.Any(), entities.ApplicationStatusResubmitted).Return([]entities.BillingApplication{
			{ID: "r-1", Status: entities.ApplicationStatusResubmitted, AppliedAt: base.Add(time.Hour)},
		}, nil)

		queue, err := uc.ListApprovable(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(queue) != 2 || queue[0].ID != "r-1" || queue[1].ID != "p-2" {
			t.Fatalf("unexpected queue order: %+v", queue)
		}
		if queue[0].Status != entities.ApplicationStatusResubmitted {
			t.Fatalf("resubmitted must stay distinguishable: %+v", queue[0])
		}
	})

	t.Run("pending lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingApplicationRepository(ctrl)
		uc := NewBillingApplicationUseCase(repo, nil, nil)
		repo.EXPECT().ListByStatus(gomock.Any(), entities.ApplicationStatusPending).Return(nil, errors.New("db"))

		_, err := uc.ListApprovable(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
