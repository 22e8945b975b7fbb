package interfaces

import (
	"context"

	"pj_billing/internal/domain/entities"
)

// ITemplateProvider resolves the active email template for a project category.
//
// A nil template (no active template for the category) is not an error; the
// caller falls back to the built-in general template.

type ITemplateProvider interface {
	GetTemplateByCategory(ctx context.Context, category entities.ProjectCategory) (*entities.EmailTemplate, error)
}
