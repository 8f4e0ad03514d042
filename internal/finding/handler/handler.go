package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"comply/internal/finding"
	"comply/internal/finding/service"
	id "comply/pkg/domain"
	"comply/pkg/platform/httputil"
	"comply/pkg/requestcontext"
)

// Service defines the finding operations used by the handler.
type Service interface {
	Create(ctx context.Context, req service.CreateRequest) (*finding.Finding, error)
	UpdateStatus(ctx context.Context, req service.UpdateStatusRequest) (*finding.Finding, error)
	Get(ctx context.Context, orgID id.OrganizationID, findingID id.FindingID) (*finding.Finding, error)
	List(ctx context.Context, orgID id.OrganizationID, filter finding.ListFilter) ([]*finding.Finding, error)
	URL(f *finding.Finding) string
}

// Handler serves the audit findings of one organization.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the endpoints on an organization-scoped router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/findings", func(r chi.Router) {
		r.Post("/", h.HandleCreate)
		r.Get("/", h.HandleList)
		r.Get("/{findingID}", h.HandleGet)
		r.Patch("/{findingID}/status", h.HandleUpdateStatus)
	})
}

// HandleCreate handles POST /organizations/{orgID}/findings.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	orgID := requestcontext.OrganizationID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	f, err := h.service.Create(ctx, service.CreateRequest{
		OrganizationID: orgID,
		CreatedBy:      requestcontext.UserID(ctx),
		Type:           req.ParsedType(),
		Content:        req.Content,
		Target:         req.ParsedTarget(),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "finding rejected",
			"request_id", requestID,
			"organization_id", orgID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toFindingResponse(f, h.service.URL(f)))
}

// HandleList handles GET /organizations/{orgID}/findings?status=&target_kind=.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var filter finding.ListFilter
	if v := r.URL.Query().Get("status"); v != "" {
		st, err := finding.ParseStatus(v)
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		filter.Status = st
	}
	if v := r.URL.Query().Get("target_kind"); v != "" {
		kind, err := finding.ParseTargetKind(v)
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		filter.TargetKind = kind
	}

	findings, err := h.service.List(ctx, requestcontext.OrganizationID(ctx), filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list findings",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	resp := FindingListResponse{Findings: make([]FindingResponse, 0, len(findings))}
	for _, f := range findings {
		resp.Findings = append(resp.Findings, toFindingResponse(f, h.service.URL(f)))
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet handles GET /organizations/{orgID}/findings/{findingID}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	findingID, err := id.ParseFindingID(chi.URLParam(r, "findingID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	f, err := h.service.Get(ctx, requestcontext.OrganizationID(ctx), findingID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toFindingResponse(f, h.service.URL(f)))
}

// HandleUpdateStatus handles PATCH /organizations/{orgID}/findings/{findingID}/status.
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	findingID, err := id.ParseFindingID(chi.URLParam(r, "findingID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[UpdateStatusRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	f, err := h.service.UpdateStatus(ctx, service.UpdateStatusRequest{
		OrganizationID: requestcontext.OrganizationID(ctx),
		FindingID:      findingID,
		Actor:          requestcontext.UserID(ctx),
		Status:         req.ParsedStatus(),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "finding status change failed",
			"request_id", requestID,
			"finding_id", findingID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toFindingResponse(f, h.service.URL(f)))
}
