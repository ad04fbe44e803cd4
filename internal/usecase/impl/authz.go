package impl

import (
	"strings"

	"landmarket/internal/domain/entity"
	domainerrors "landmarket/internal/domain/errors"
)

// requireRole maps the authorization decision onto the error taxonomy:
// no caller is Unauthenticated, a caller without the role is AuthorizationRequired.
func requireRole(caller *entity.Caller, roles ...entity.Role) error {
	if caller == nil {
		return domainerrors.ErrUnauthenticated
	}
	if !entity.RequireRole(caller, roles...).Allowed() {
		return domainerrors.ErrAuthorizationRequired
	}

	return nil
}

func requireAdmin(caller *entity.Caller) error {
	return requireRole(caller, entity.RoleAdmin)
}

func requireCaller(caller *entity.Caller) error {
	if caller == nil {
		return domainerrors.ErrUnauthenticated
	}

	return nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)

	return &v
}
