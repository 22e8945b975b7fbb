package interfaces

import (
	"context"

	"pj_billing/internal/domain/entities"
)

// IIdentityProvider supplies the acting principal. Authentication itself lives
// outside this service; the provider only surfaces whoever the transport layer
// authenticated.

type IIdentityProvider interface {
	CurrentPrincipal(ctx context.Context) (entities.Principal, error)
}
