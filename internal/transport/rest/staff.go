package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/turutin/intake-backend/internal/domain"
	"github.com/turutin/intake-backend/internal/service/staff"
	"github.com/turutin/intake-backend/internal/transport/middleware"
	"github.com/turutin/intake-backend/pkg/ctxutil"
)

// staffService defines the minimal interface needed by StaffHandler.
type staffService interface {
	ListApplications(ctx context.Context, input staff.ListApplicationsInput) ([]domain.Application, error)
	UpdateStatus(ctx context.Context, input staff.UpdateStatusInput) error
	UpdateComment(ctx context.Context, input staff.UpdateCommentInput) error
	GetAuditTrail(ctx context.Context, applicationID int64) ([]domain.StatusAuditEntry, error)
	SetUserBlocked(ctx context.Context, userID string, blocked bool) error
	GetStats(ctx context.Context) (*staff.Stats, error)
}

// StaffHandler serves the admin API endpoints for application management.
// All routes require an authenticated staff member; the identity comes
// from the auth middleware via the context.
type StaffHandler struct {
	svc staffService
	log *slog.Logger
}

// NewStaffHandler creates a StaffHandler.
func NewStaffHandler(svc staffService, logger *slog.Logger) *StaffHandler {
	return &StaffHandler{svc: svc, log: logger.With("handler", "staff")}
}

type applicationResponse struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	Status    string    `json:"status"`
	Answers   string    `json:"answers"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type auditEntryResponse struct {
	ID        string    `json:"id"`
	OldStatus string    `json:"oldStatus"`
	NewStatus string    `json:"newStatus"`
	ChangedBy string    `json:"changedBy"`
	CreatedAt time.Time `json:"createdAt"`
}

type statsResponse struct {
	OpenCount int `json:"openCount"`
	NewCount  int `json:"newCount"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type updateCommentRequest struct {
	Comment string `json:"comment"`
}

type blockRequest struct {
	Blocked bool `json:"blocked"`
}

// ListApplications handles GET /api/v1/applications?limit=50&offset=0.
func (h *StaffHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	input := staff.ListApplicationsInput{
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}

	apps, err := h.svc.ListApplications(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]applicationResponse, len(apps))
	for i, a := range apps {
		out[i] = applicationResponse{
			ID:        a.ID,
			UserID:    a.UserID,
			Status:    a.Status.String(),
			Answers:   a.Answers,
			Comment:   a.Comment,
			CreatedAt: a.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// UpdateStatus handles PATCH /api/v1/applications/{id}/status.
func (h *StaffHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	appID, ok := pathID(w, r)
	if !ok {
		return
	}
	actorID, ok := ctxutil.StaffIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.svc.UpdateStatus(r.Context(), staff.UpdateStatusInput{
		ApplicationID: appID,
		NewStatus:     domain.Status(req.Status),
		ActorID:       actorID,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// UpdateComment handles PATCH /api/v1/applications/{id}/comment.
func (h *StaffHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	appID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.svc.UpdateComment(r.Context(), staff.UpdateCommentInput{
		ApplicationID: appID,
		Comment:       req.Comment,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// AuditTrail handles GET /api/v1/applications/{id}/audit.
func (h *StaffHandler) AuditTrail(w http.ResponseWriter, r *http.Request) {
	appID, ok := pathID(w, r)
	if !ok {
		return
	}

	entries, err := h.svc.GetAuditTrail(r.Context(), appID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]auditEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = auditEntryResponse{
			ID:        e.ID.String(),
			OldStatus: e.OldStatus.String(),
			NewStatus: e.NewStatus.String(),
			ChangedBy: e.ChangedBy.String(),
			CreatedAt: e.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// BlockUser handles POST /api/v1/users/{id}/block. Operator role required.
func (h *StaffHandler) BlockUser(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireOperator(r.Context()); err != nil {
		writeError(w, http.StatusForbidden, "operator access required")
		return
	}

	userID := r.PathValue("id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing user id")
		return
	}

	var req blockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.SetUserBlocked(r.Context(), userID, req.Blocked); err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Stats handles GET /api/v1/stats.
func (h *StaffHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{
		OpenCount: stats.OpenCount,
		NewCount:  stats.NewCount,
	})
}

func (h *StaffHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid application id")
		return 0, false
	}
	return id, true
}

func queryInt(r *http.Request, key string) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
