package draft

import (
	"errors"
	"strings"
	"testing"

	"pj_billing/internal/domain/entities"
)

func testProject() entities.Project {
	return entities.Project{
		ID:       "prj-1",
		Name:     "Inventory System Rebuild",
		Category: entities.ProjectCategoryFixedBid,
		Client:   "Fabrikam Foods",
	}
}

func testContent() entities.BillingContent {
	return entities.BillingContent{
		Title:       "Invoice: Inventory System Rebuild",
		Description: "Phase 1 delivery",
		Amount:      5000000,
		WorkItems:   []string{"development"},
	}
}

func selectedFlow(t *testing.T) *Flow {
	t.Helper()
	f := NewFlow()
	if err := f.SelectProject(testProject(), testContent(), GeneralTemplate); err != nil {
		t.Fatalf("select project: %v", err)
	}
	return f
}

func TestFlow_SelectProject(t *testing.T) {
	t.Run("jumps to preview with composed email", func(t *testing.T) {
		f := selectedFlow(t)
		if f.Step() != StepPreviewing {
			t.Fatalf("expected previewing, got %s", f.Step())
		}
		if f.Project() == nil || f.Project().ID != "prj-1" {
			t.Fatalf("project not attached: %+v", f.Project())
		}
		if f.Email() == nil || f.Email().Recipient != "Fabrikam Foods" {
			t.Fatalf("email not composed: %+v", f.Email())
		}
	})

	t.Run("rejected outside the initial step", func(t *testing.T) {
		f := selectedFlow(t)
		err := f.SelectProject(testProject(), testContent(), GeneralTemplate)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestFlow_NextBack(t *testing.T) {
	t.Run("next requires a selected project", func(t *testing.T) {
		f := NewFlow()
		if err := f.Next(); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("back walks the forward path in reverse", func(t *testing.T) {
		f := selectedFlow(t)
		want := []Step{StepConfirmingEmail, StepEnteringContent, StepConfirmingContent, StepSelectingProject}
		for _, step := range want {
			if err := f.Back(); err != nil {
				t.Fatalf("back from %s: %v", f.Step(), err)
			}
			if f.Step() != step {
				t.Fatalf("expected %s, got %s", step, f.Step())
			}
		}
		if err := f.Back(); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition at initial step, got %v", err)
		}
	})

	t.Run("back keeps the draft data", func(t *testing.T) {
		f := selectedFlow(t)
		if err := f.Back(); err != nil {
			t.Fatalf("back: %v", err)
		}
		if f.Project() == nil || f.Content() == nil || f.Email() == nil {
			t.Fatalf("draft data dropped on back")
		}
	})

	t.Run("back from applying returns to email confirmation", func(t *testing.T) {
		f := selectedFlow(t)
		if err := f.Finalize(); err != nil {
			t.Fatalf("finalize: %v", err)
		}
		if err := f.Back(); err != nil {
			t.Fatalf("back: %v", err)
		}
		if f.Step() != StepConfirmingEmail {
			t.Fatalf("expected confirming_email, got %s", f.Step())
		}
	})
}

func TestFlow_Editing(t *testing.T) {
	t.Run("edit and save content", func(t *testing.T) {
		f := selectedFlow(t)
		if err := f.EditContent(); err != nil {
			t.Fatalf("edit content: %v", err)
		}
		revised := testContent()
		revised.Title = "Revised title"
		if err := f.SaveContent(revised); err != nil {
			t.Fatalf("save content: %v", err)
		}
		if f.Step() != StepPreviewing {
			t.Fatalf("expected previewing, got %s", f.Step())
		}
		if f.Content().Title != "Revised title" {
			t.Fatalf("content not merged: %+v", f.Content())
		}
	})

	t.Run("cancel edit keeps the draft untouched", func(t *testing.T) {
		f := selectedFlow(t)
		original := *f.Content()
		if err := f.EditContent(); err != nil {
			t.Fatalf("edit content: %v", err)
		}
		if err := f.CancelEdit(); err != nil {
			t.Fatalf("cancel edit: %v", err)
		}
		if f.Step() != StepPreviewing {
			t.Fatalf("expected previewing, got %s", f.Step())
		}
		if f.Content().Title != original.Title {
			t.Fatalf("content changed on cancel: %+v", f.Content())
		}
	})

	t.Run("edit email only from preview", func(t *testing.T) {
		f := selectedFlow(t)
		if err := f.Finalize(); err != nil {
			t.Fatalf("finalize: %v", err)
		}
		if err := f.EditEmail(); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("save addendum re-renders from the template", func(t *testing.T) {
		f := selectedFlow(t)
		if err := f.EditEmail(); err != nil {
			t.Fatalf("edit email: %v", err)
		}
		if err := f.SaveAddendum("Net 30 terms apply."); err != nil {
			t.Fatalf("save addendum: %v", err)
		}
		if f.Step() != StepPreviewing {
			t.Fatalf("expected previewing, got %s", f.Step())
		}
		email := f.Email()
		if email.Addendum != "Net 30 terms apply." {
			t.Fatalf("addendum not recorded: %+v", email)
		}
		if !strings.Contains(email.Body, "Net 30 terms apply.") {
			t.Fatalf("addendum missing from body: %q", email.Body)
		}
		if !strings.Contains(email.Body, "Fabrikam Foods") {
			t.Fatalf("template substitution lost on re-render: %q", email.Body)
		}
	})

	t.Run("save addendum only while editing or confirming the email", func(t *testing.T) {
		f := selectedFlow(t)
		if err := f.SaveAddendum("x"); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("save email merges and returns to preview", func(t *testing.T) {
		f := selectedFlow(t)
		if err := f.EditEmail(); err != nil {
			t.Fatalf("edit email: %v", err)
		}
		if err := f.SaveEmail(entities.EmailContent{Subject: "s", Body: "b", Recipient: "r"}); err != nil {
			t.Fatalf("save email: %v", err)
		}
		if f.Step() != StepPreviewing || f.Email().Subject != "s" {
			t.Fatalf("unexpected state: step=%s email=%+v", f.Step(), f.Email())
		}
	})
}

func TestFlow_SubmitLifecycle(t *testing.T) {
	t.Run("submittable only at applying with a full draft", func(t *testing.T) {
		f := selectedFlow(t)
		if f.Submittable() {
			t.Fatalf("previewing draft must not be submittable")
		}
		if err := f.Finalize(); err != nil {
			t.Fatalf("finalize: %v", err)
		}
		if !f.Submittable() {
			t.Fatalf("applying draft with full data must be submittable")
		}
	})

	t.Run("finalize requires preview", func(t *testing.T) {
		f := NewFlow()
		if err := f.Finalize(); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("reset discards everything", func(t *testing.T) {
		f := selectedFlow(t)
		f.Reset()
		if f.Step() != StepSelectingProject {
			t.Fatalf("expected selecting_project, got %s", f.Step())
		}
		if f.Project() != nil || f.Content() != nil || f.Email() != nil {
			t.Fatalf("draft data survived reset")
		}
	})
}
