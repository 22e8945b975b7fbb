package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"pj_billing/internal/domain/budget"
	"pj_billing/internal/domain/draft"
	"pj_billing/internal/domain/entities"
	"pj_billing/internal/usecase/interfaces"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrInvalidProjectID = errors.New("invalid project id")
)

// IDraftFlowUseCase drives the billing composition wizard against the project
// catalog and template provider. The Flow itself is session-scoped and owned
// by the transport layer; this use case supplies the composition logic.

type IDraftFlowUseCase interface {
	SelectProject(ctx context.Context, flow *draft.Flow, projectID string, members []entities.TeamMember, payments []entities.PaymentLine) error
	ListProjects(ctx context.Context) ([]entities.Project, error)
}

type DraftFlowUseCase struct {
	catalog   interfaces.IProjectCatalog
	templates interfaces.ITemplateProvider
}

var _ IDraftFlowUseCase = (*DraftFlowUseCase)(nil)

func NewDraftFlowUseCase(catalog interfaces.IProjectCatalog, templates interfaces.ITemplateProvider) *DraftFlowUseCase {
	return &DraftFlowUseCase{catalog: catalog, templates: templates}
}

// SelectProject resolves the project, derives default billing content and the
// category email, and advances the flow to the preview.
//
// When the caller supplies the current team/payment inputs, the default billing
// amount comes from the computed revenue; otherwise the project baseline is
// used. Unparsable or missing inputs never fail composition.
func (u *DraftFlowUseCase) SelectProject(ctx context.Context, flow *draft.Flow, projectID string, members []entities.TeamMember, payments []entities.PaymentLine) error {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return ErrInvalidProjectID
	}

	project, err := u.catalog.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project.ID == "" {
		return ErrProjectNotFound
	}

	amount := project.BaselineAmount
	if len(members) > 0 || len(payments) > 0 {
		snapshot := budget.ComputeFinancials(members, payments, project.Category)
		amount = snapshot.Revenue
	}

	content := entities.BillingContent{
		Title:       fmt.Sprintf("Invoice: %s", project.Name),
		Description: fmt.Sprintf("Billing for %s (%s)", project.Name, project.Category),
		Amount:      amount,
		WorkItems:   []string{project.Name},
	}

	tpl := u.resolveTemplate(ctx, project.Category)
	if err := flow.SelectProject(project, content, tpl); err != nil {
		return err
	}
	log.Printf("[draft][usecase] project selected id=%s category=%s amount=%d", project.ID, project.Category, amount)
	return nil
}

func (u *DraftFlowUseCase) ListProjects(ctx context.Context) ([]entities.Project, error) {
	return u.catalog.ListProjects(ctx)
}

// resolveTemplate returns the active template for the category, falling back
// to the built-in general template when the provider has none or fails.
func (u *DraftFlowUseCase) resolveTemplate(ctx context.Context, category entities.ProjectCategory) entities.EmailTemplate {
	if u.templates == nil {
		return draft.GeneralTemplate
	}
	tpl, err := u.templates.GetTemplateByCategory(ctx, category)
	if err != nil {
		log.Printf("[draft][usecase] template lookup failed category=%s err=%v", category, err)
		return draft.GeneralTemplate
	}
	if tpl == nil || !tpl.Active {
		return draft.GeneralTemplate
	}
	return *tpl
}
