package draft

import (
	"errors"
	"fmt"

	"pj_billing/internal/domain/entities"
)

// Step is the current position in the billing composition wizard.

type Step string

const (
	StepSelectingProject  Step = "selecting_project"
	StepConfirmingContent Step = "confirming_content"
	StepEnteringContent   Step = "entering_content"
	StepConfirmingEmail   Step = "confirming_email"
	StepPreviewing        Step = "previewing"
	StepApplying          Step = "applying"
	StepEditingContent    Step = "editing_content"
	StepEditingEmail      Step = "editing_email"
)

var ErrInvalidTransition = errors.New("invalid draft transition")

// Flow is the session-scoped draft of one billing request.
//
// Every operation checks the current step before mutating, so the transition
// table lives in one place and holds independent of any rendering layer. All
// transitions carry the selected project and composed content forward; only
// Cancel (or a successful submit) discards them.

type Flow struct {
	step     Step
	project  *entities.Project
	content  *entities.BillingContent
	email    *entities.EmailContent
	template entities.EmailTemplate
}

func NewFlow() *Flow {
	return &Flow{step: StepSelectingProject}
}

func (f *Flow) Step() Step { return f.step }

func (f *Flow) Project() *entities.Project        { return f.project }
func (f *Flow) Content() *entities.BillingContent { return f.content }
func (f *Flow) Email() *entities.EmailContent     { return f.email }

func (f *Flow) require(steps ...Step) error {
	for _, s := range steps {
		if f.step == s {
			return nil
		}
	}
	return fmt.Errorf("%w: step %s", ErrInvalidTransition, f.step)
}

// SelectProject attaches the project, derives the default billing content and
// email from the template, and jumps straight to the preview. The intermediate
// confirmation steps stay reachable through Back or the explicit edit actions.
func (f *Flow) SelectProject(p entities.Project, content entities.BillingContent, tpl entities.EmailTemplate) error {
	if err := f.require(StepSelectingProject); err != nil {
		return err
	}
	f.project = &p
	f.content = &content
	f.template = tpl
	email := ComposeEmail(tpl, p, content)
	f.email = &email
	f.step = StepPreviewing
	return nil
}

// Next advances one step along the explicit forward path.
func (f *Flow) Next() error {
	switch f.step {
	case StepSelectingProject:
		if f.project == nil {
			return fmt.Errorf("%w: no project selected", ErrInvalidTransition)
		}
		f.step = StepConfirmingContent
	case StepConfirmingContent:
		f.step = StepEnteringContent
	case StepEnteringContent:
		f.step = StepConfirmingEmail
	case StepConfirmingEmail:
		f.step = StepPreviewing
	default:
		return fmt.Errorf("%w: step %s", ErrInvalidTransition, f.step)
	}
	return nil
}

// Back retreats one step. Backing out of applying returns to the email
// confirmation, not the preview, matching the wizard's forward path.
func (f *Flow) Back() error {
	switch f.step {
	case StepConfirmingContent:
		f.step = StepSelectingProject
	case StepEnteringContent:
		f.step = StepConfirmingContent
	case StepConfirmingEmail:
		f.step = StepEnteringContent
	case StepPreviewing:
		f.step = StepConfirmingEmail
	case StepApplying:
		f.step = StepConfirmingEmail
	case StepEditingContent, StepEditingEmail:
		f.step = StepPreviewing
	default:
		return fmt.Errorf("%w: step %s", ErrInvalidTransition, f.step)
	}
	return nil
}

// EditContent opens the content editor from the preview.
func (f *Flow) EditContent() error {
	if err := f.require(StepPreviewing); err != nil {
		return err
	}
	f.step = StepEditingContent
	return nil
}

// SaveContent merges the updated content and returns to the preview.
func (f *Flow) SaveContent(c entities.BillingContent) error {
	if err := f.require(StepEditingContent, StepEnteringContent); err != nil {
		return err
	}
	f.content = &c
	if f.step == StepEditingContent {
		f.step = StepPreviewing
	}
	return nil
}

// EditEmail opens the email editor from the preview.
func (f *Flow) EditEmail() error {
	if err := f.require(StepPreviewing); err != nil {
		return err
	}
	f.step = StepEditingEmail
	return nil
}

// SaveEmail merges the updated email and returns to the preview.
func (f *Flow) SaveEmail(e entities.EmailContent) error {
	if err := f.require(StepEditingEmail, StepConfirmingEmail); err != nil {
		return err
	}
	f.email = &e
	if f.step == StepEditingEmail {
		f.step = StepPreviewing
	}
	return nil
}

// SaveAddendum re-renders the email from the retained category template with
// the new free-text addendum and returns to the preview. Manual subject/body
// edits are replaced by the re-render; SaveEmail is the path that keeps them.
func (f *Flow) SaveAddendum(addendum string) error {
	if err := f.require(StepEditingEmail, StepConfirmingEmail); err != nil {
		return err
	}
	email := RenderEmail(f.template, *f.project, *f.content, addendum)
	f.email = &email
	if f.step == StepEditingEmail {
		f.step = StepPreviewing
	}
	return nil
}

// CancelEdit abandons an open editor without touching the draft.
func (f *Flow) CancelEdit() error {
	if err := f.require(StepEditingContent, StepEditingEmail); err != nil {
		return err
	}
	f.step = StepPreviewing
	return nil
}

// Finalize moves the previewed draft into the applying step.
func (f *Flow) Finalize() error {
	if err := f.require(StepPreviewing); err != nil {
		return err
	}
	f.step = StepApplying
	return nil
}

// Submittable reports whether the flow has reached the applying step with a
// complete draft attached.
func (f *Flow) Submittable() bool {
	return f.step == StepApplying && f.project != nil && f.content != nil && f.email != nil
}

// Reset returns the flow to the initial step, discarding the whole draft.
// Called after a successful submit and by explicit cancel.
func (f *Flow) Reset() {
	f.step = StepSelectingProject
	f.project = nil
	f.content = nil
	f.email = nil
	f.template = entities.EmailTemplate{}
}
