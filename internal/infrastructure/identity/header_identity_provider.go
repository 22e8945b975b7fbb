package identity

import (
	"context"
	"errors"
	"os"
	"strings"

	"pj_billing/internal/domain/entities"
	"pj_billing/internal/usecase/interfaces"
)

var ErrNoPrincipal = errors.New("no principal in request context")

type contextKey struct{}

var principalKey contextKey

// WithPrincipal stores the principal resolved by the transport layer.
func WithPrincipal(ctx context.Context, p entities.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// FromContext returns the principal stored by WithPrincipal, if any.
func FromContext(ctx context.Context) (entities.Principal, bool) {
	p, ok := ctx.Value(principalKey).(entities.Principal)
	return p, ok
}

// HeaderIdentityProvider surfaces the principal placed into the request
// context by the identity middleware. Authentication is an upstream concern;
// this service only consumes its result.
//
// Env fallback (dev/local only):
//   - PRINCIPAL_ID, PRINCIPAL_NAME, PRINCIPAL_DEPARTMENT, PRINCIPAL_ROLE

type HeaderIdentityProvider struct{}

var _ interfaces.IIdentityProvider = (*HeaderIdentityProvider)(nil)

func NewHeaderIdentityProvider() *HeaderIdentityProvider {
	return &HeaderIdentityProvider{}
}

func (p *HeaderIdentityProvider) CurrentPrincipal(ctx context.Context) (entities.Principal, error) {
	if principal, ok := FromContext(ctx); ok && principal.ID != "" {
		return principal, nil
	}

	if id := strings.TrimSpace(os.Getenv("PRINCIPAL_ID")); id != "" {
		return entities.Principal{
			ID:         id,
			Name:       os.Getenv("PRINCIPAL_NAME"),
			Department: os.Getenv("PRINCIPAL_DEPARTMENT"),
			Role:       os.Getenv("PRINCIPAL_ROLE"),
		}, nil
	}

	return entities.Principal{}, ErrNoPrincipal
}
