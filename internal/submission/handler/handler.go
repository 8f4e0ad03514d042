package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"comply/internal/evidence/forms"
	"comply/internal/evidence/validation"
	"comply/internal/submission/models"
	"comply/internal/submission/service"
	id "comply/pkg/domain"
	dErrors "comply/pkg/domain-errors"
	"comply/pkg/platform/httputil"
	"comply/pkg/requestcontext"
)

// Service defines the submission operations used by the handler.
type Service interface {
	Submit(ctx context.Context, req service.SubmitRequest) (*models.Submission, error)
	Validate(ctx context.Context, req service.SubmitRequest) (validation.Payload, error)
	Review(ctx context.Context, req service.ReviewRequest) (*models.Submission, error)
	Get(ctx context.Context, orgID id.OrganizationID, formType forms.FormType, subID id.SubmissionID) (*models.Submission, error)
	List(ctx context.Context, orgID id.OrganizationID, formType forms.FormType) ([]*models.Submission, error)
}

// Handler serves the evidence submission endpoints of one organization.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the endpoints on an organization-scoped router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/documents/{formType}", func(r chi.Router) {
		r.Post("/validate", h.HandleValidate)
		r.Post("/submissions", h.HandleSubmit)
		r.Get("/submissions", h.HandleList)
		r.Get("/submissions/{submissionID}", h.HandleGet)
		r.Post("/submissions/{submissionID}/review", h.HandleReview)
	})
}

// HandleSubmit handles POST /organizations/{orgID}/documents/{formType}/submissions.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	orgID := requestcontext.OrganizationID(ctx)

	formType, err := formTypeParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[SubmitRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	sub, err := h.service.Submit(ctx, service.SubmitRequest{
		OrganizationID: orgID,
		FormType:       formType,
		Subtype:        req.ParsedSubtype(),
		SubmittedBy:    requestcontext.UserID(ctx),
		Data:           req.Data,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submission rejected",
			"request_id", requestID,
			"organization_id", orgID,
			"form_type", formType,
			"error", err,
		)
		h.writeError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toSubmissionResponse(sub))
}

// HandleValidate handles POST /organizations/{orgID}/documents/{formType}/validate.
// Nothing is stored.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	formType, err := formTypeParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[SubmitRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	payload, err := h.service.Validate(ctx, service.SubmitRequest{
		OrganizationID: requestcontext.OrganizationID(ctx),
		FormType:       formType,
		Subtype:        req.ParsedSubtype(),
		Data:           req.Data,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ValidateResponse{Valid: true, Data: payload})
}

// HandleList handles GET /organizations/{orgID}/documents/{formType}/submissions.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	formType, err := formTypeParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	subs, err := h.service.List(ctx, requestcontext.OrganizationID(ctx), formType)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list submissions",
			"request_id", requestcontext.RequestID(ctx),
			"form_type", formType,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toSubmissionList(subs))
}

// HandleGet handles GET .../submissions/{submissionID}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	formType, err := formTypeParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	subID, err := id.ParseSubmissionID(chi.URLParam(r, "submissionID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	sub, err := h.service.Get(ctx, requestcontext.OrganizationID(ctx), formType, subID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toSubmissionResponse(sub))
}

// HandleReview handles POST .../submissions/{submissionID}/review.
func (h *Handler) HandleReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	formType, err := formTypeParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	subID, err := id.ParseSubmissionID(chi.URLParam(r, "submissionID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[ReviewRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	sub, err := h.service.Review(ctx, service.ReviewRequest{
		OrganizationID: requestcontext.OrganizationID(ctx),
		FormType:       formType,
		SubmissionID:   subID,
		Reviewer:       requestcontext.UserID(ctx),
		Action:         req.ParsedAction(),
		Reason:         req.Reason,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "review failed",
			"request_id", requestID,
			"submission_id", subID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toSubmissionResponse(sub))
}

// writeError renders schema violations as 422 with the field list and
// everything else through httputil.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var verrs *validation.Errors
	if errors.As(err, &verrs) {
		httputil.WriteJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
			Error:            string(dErrors.CodeValidation),
			ErrorDescription: "submission data is invalid",
			Fields:           verrs.Fields,
		})
		return
	}
	httputil.WriteError(w, err)
}

func formTypeParam(r *http.Request) (forms.FormType, error) {
	return forms.ParseFormType(chi.URLParam(r, "formType"))
}
