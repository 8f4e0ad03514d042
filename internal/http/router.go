// Package httpapi assembles the public HTTP surface: shared middleware,
// operator endpoints and the organization-scoped API.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"comply/internal/platform/metrics"
	"comply/pkg/platform/middleware/admin"
	authmw "comply/pkg/platform/middleware/auth"
	"comply/pkg/platform/middleware/metadata"
	"comply/pkg/platform/middleware/request"
	"comply/pkg/platform/middleware/requesttime"
)

// OrganizationParam is the path parameter every organization route is
// scoped by.
const OrganizationParam = "orgID"

// Registrar is implemented by every module handler.
type Registrar interface {
	Register(r chi.Router)
}

// Deps carries what the router needs. Global handlers are mounted at the
// root behind authentication; Organization handlers under
// /organizations/{orgID} after the caller's organization is checked.
type Deps struct {
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
	Validator    authmw.JWTValidator
	AdminToken   string
	Health       http.HandlerFunc
	Global       []Registrar
	Organization []Registrar
}

// NewRouter wires all public endpoints.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(request.Logger(d.Logger, d.Metrics))
	r.Use(request.Recover(d.Logger))

	if d.Health != nil {
		r.Get("/healthz", d.Health)
	}
	r.With(admin.RequireAdminToken(d.AdminToken, d.Logger)).Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(authmw.RequireAuth(d.Validator, d.Logger))
		for _, h := range d.Global {
			h.Register(r)
		}
		r.Route("/organizations/{"+OrganizationParam+"}", func(r chi.Router) {
			r.Use(authmw.RequireOrganizationParam(OrganizationParam, d.Logger))
			for _, h := range d.Organization {
				h.Register(r)
			}
		})
	})
	return r
}
