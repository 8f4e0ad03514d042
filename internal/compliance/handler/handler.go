package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"comply/internal/compliance"
	id "comply/pkg/domain"
	"comply/pkg/platform/httputil"
	"comply/pkg/requestcontext"
)

// Service defines the compliance read operations.
type Service interface {
	Overview(ctx context.Context, orgID id.OrganizationID) (*compliance.Overview, error)
	Documents(ctx context.Context, orgID id.OrganizationID) (*compliance.DocumentsProgress, error)
}

// Handler serves the compliance dashboard of one organization.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the endpoints on an organization-scoped router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/compliance/overview", h.HandleOverview)
	r.Get("/compliance/documents", h.HandleDocuments)
}

// HandleOverview handles GET /organizations/{orgID}/compliance/overview.
func (h *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orgID := requestcontext.OrganizationID(ctx)

	overview, err := h.service.Overview(ctx, orgID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to compute overview",
			"request_id", requestcontext.RequestID(ctx),
			"organization_id", orgID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, overview)
}

// HandleDocuments handles GET /organizations/{orgID}/compliance/documents.
func (h *Handler) HandleDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orgID := requestcontext.OrganizationID(ctx)

	docs, err := h.service.Documents(ctx, orgID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to compute documents",
			"request_id", requestcontext.RequestID(ctx),
			"organization_id", orgID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, docs)
}
