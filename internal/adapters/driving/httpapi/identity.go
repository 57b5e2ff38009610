package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/custodia-labs/docspace/internal/core/domain"
)

// Headers set by the authenticating proxy in front of the API.
const (
	HeaderAuthEmail = "X-Auth-Email"
	HeaderAuthRole  = "X-Auth-Role"
)

// IdentityResolver determines who is making a request.
// Authentication itself happens outside this package.
type IdentityResolver interface {
	// Resolve returns the caller's identity, or false if the request is anonymous.
	Resolve(r *http.Request) (domain.Identity, bool)
}

// HeaderIdentityResolver trusts identity headers set by a reverse proxy.
// When the headers are absent the Fallback identity, if any, is used.
type HeaderIdentityResolver struct {
	Fallback *domain.Identity
}

// Resolve reads X-Auth-Email and X-Auth-Role.
func (h HeaderIdentityResolver) Resolve(r *http.Request) (domain.Identity, bool) {
	email := strings.TrimSpace(r.Header.Get(HeaderAuthEmail))
	if email == "" {
		if h.Fallback != nil {
			return *h.Fallback, true
		}
		return domain.Identity{}, false
	}

	role := domain.RoleViewer
	if strings.EqualFold(strings.TrimSpace(r.Header.Get(HeaderAuthRole)), string(domain.RoleAdmin)) {
		role = domain.RoleAdmin
	}
	return domain.Identity{Email: email, Role: role}, true
}

type identityKey struct{}

// withIdentity stores the caller's identity in ctx.
func withIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the identity attached to ctx by the API middleware.
func IdentityFrom(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(domain.Identity)
	return id, ok
}

// access is the permission a route needs.
type access int

const (
	accessRead access = iota
	accessWrite
)

// authorize wraps next with an identity check for the given access level.
func (s *Server) authorize(level access, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.identities.Resolve(r)
		if !ok || !id.CanRead() {
			writeError(w, r, domain.ErrUnauthenticated)
			return
		}
		if level == accessWrite && !id.CanWrite() {
			writeError(w, r, domain.ErrForbidden)
			return
		}
		next(w, r.WithContext(withIdentity(r.Context(), id)))
	}
}
