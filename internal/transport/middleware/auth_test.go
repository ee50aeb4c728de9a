package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/turutin/intake-backend/internal/domain"
	"github.com/turutin/intake-backend/pkg/ctxutil"
)

type validatorStub struct {
	id   uuid.UUID
	role domain.Role
	err  error
}

func (v validatorStub) ValidateAccessToken(token string) (uuid.UUID, domain.Role, error) {
	return v.id, v.role, v.err
}

func TestAuth_ValidToken(t *testing.T) {
	staffID := uuid.New()
	var gotID uuid.UUID
	var gotRole string

	handler := Auth(validatorStub{id: staffID, role: domain.RoleOperator})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotID, _ = ctxutil.StaffIDFromCtx(r.Context())
			gotRole = ctxutil.StaffRoleFromCtx(r.Context())
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/applications", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if gotID != staffID {
		t.Errorf("staff id in context = %s, want %s", gotID, staffID)
	}
	if gotRole != string(domain.RoleOperator) {
		t.Errorf("role in context = %q, want %q", gotRole, domain.RoleOperator)
	}
}

func TestAuth_MissingToken(t *testing.T) {
	handler := Auth(validatorStub{id: uuid.New(), role: domain.RoleStaff})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler must not be reached without a token")
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/applications", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	handler := Auth(validatorStub{err: errors.New("token expired")})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler must not be reached with an invalid token")
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/applications", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireOperator(t *testing.T) {
	opCtx := ctxutil.WithStaff(context.Background(), uuid.New(), string(domain.RoleOperator))
	if err := RequireOperator(opCtx); err != nil {
		t.Errorf("operator rejected: %v", err)
	}

	staffCtx := ctxutil.WithStaff(context.Background(), uuid.New(), string(domain.RoleStaff))
	if !errors.Is(RequireOperator(staffCtx), domain.ErrForbidden) {
		t.Error("staff role must be forbidden")
	}

	if !errors.Is(RequireOperator(context.Background()), domain.ErrForbidden) {
		t.Error("anonymous context must be forbidden")
	}
}
