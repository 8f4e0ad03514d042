// Package handler serves the read-only form catalog that clients render
// document forms from.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"comply/internal/evidence/forms"
	dErrors "comply/pkg/domain-errors"
	"comply/pkg/platform/httputil"
	"comply/pkg/requestcontext"
)

// FormResponse is a form definition plus, for the meeting document, the
// subtypes a submission must choose from.
type FormResponse struct {
	forms.Definition
	Subtypes []string `json:"subtypes,omitempty"`
}

type FormListResponse struct {
	Forms []FormResponse `json:"forms"`
}

type Handler struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/forms", h.HandleList)
	r.Get("/forms/{formType}", h.HandleGet)
}

// HandleList handles GET /forms. Hidden forms are included with ?all=true.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	all := false
	if v := r.URL.Query().Get("all"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "all must be a boolean"))
			return
		}
		all = parsed
	}

	defs := forms.Visible()
	if all {
		defs = forms.Definitions()
	}
	resp := FormListResponse{Forms: make([]FormResponse, 0, len(defs))}
	for _, d := range defs {
		resp.Forms = append(resp.Forms, toFormResponse(d))
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet handles GET /forms/{formType}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "formType")
	formType, err := forms.ParseFormType(raw)
	if err != nil {
		h.logger.DebugContext(r.Context(), "unknown form type requested",
			"request_id", requestcontext.RequestID(r.Context()),
			"form_type", raw,
		)
		httputil.WriteError(w, err)
		return
	}
	def, ok := forms.Lookup(formType)
	if !ok {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "unknown form type"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toFormResponse(def))
}

func toFormResponse(d forms.Definition) FormResponse {
	resp := FormResponse{Definition: d}
	if d.Type == forms.FormTypeMeeting {
		for _, st := range forms.MeetingSubtypes() {
			resp.Subtypes = append(resp.Subtypes, st.String())
		}
	}
	return resp
}
