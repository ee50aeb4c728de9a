package middleware

import (
	"context"

	"github.com/turutin/intake-backend/internal/domain"
	"github.com/turutin/intake-backend/pkg/ctxutil"
)

// RequireOperator returns domain.ErrForbidden unless the context staff
// member has the operator role. Use inside handlers, not as HTTP middleware.
func RequireOperator(ctx context.Context) error {
	if ctxutil.StaffRoleFromCtx(ctx) != string(domain.RoleOperator) {
		return domain.ErrForbidden
	}
	return nil
}
