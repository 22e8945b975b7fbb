package interfaces

import (
	"context"

	"pj_billing/internal/domain/entities"
)

// IProjectCatalog is the read-only source of project records fed into billing
// composition.

type IProjectCatalog interface {
	ListProjects(ctx context.Context) ([]entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
}
