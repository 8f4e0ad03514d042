package auth

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"comply/pkg/requestcontext"
)

type stubValidator map[string]*JWTClaims

func (s stubValidator) ValidateToken(token string) (*JWTClaims, error) {
	if c, ok := s[token]; ok {
		return c, nil
	}
	return nil, errors.New("invalid token")
}

func newRouter() http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	validator := stubValidator{
		"good":    {UserID: "usr_1", OrganizationID: "org_1"},
		"bad-org": {UserID: "usr_1", OrganizationID: "org with spaces"},
	}
	r := chi.NewRouter()
	r.Use(RequireAuth(validator, logger))
	r.Route("/organizations/{orgID}", func(r chi.Router) {
		r.Use(RequireOrganizationParam("orgID", logger))
		r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-User", requestcontext.UserID(r.Context()).String())
			w.WriteHeader(http.StatusNoContent)
		})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	router := newRouter()

	tests := []struct {
		name   string
		header string
		path   string
		want   int
	}{
		{"missing header", "", "/organizations/org_1/ping", http.StatusUnauthorized},
		{"not a bearer token", "Basic abc", "/organizations/org_1/ping", http.StatusUnauthorized},
		{"unknown token", "Bearer nope", "/organizations/org_1/ping", http.StatusUnauthorized},
		{"malformed organization claim", "Bearer bad-org", "/organizations/org_1/ping", http.StatusUnauthorized},
		{"own organization", "Bearer good", "/organizations/org_1/ping", http.StatusNoContent},
		{"other organization", "Bearer good", "/organizations/org_2/ping", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusNoContent {
				assert.Equal(t, "usr_1", rec.Header().Get("X-User"))
			}
		})
	}
}
