package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comply/internal/submission/service"
	"comply/internal/submission/store"
	"comply/pkg/requestcontext"
	"comply/pkg/testutil"
)

var fixedNow = time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.New(store.NewInMemory(), service.WithLogger(logger))
	h := New(svc, logger)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := requestcontext.WithTime(r.Context(), fixedNow)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	r.Route("/organizations/{orgID}", h.Register)
	return r
}

func authed(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	return testutil.WithAuth(testutil.NewJSONRequest(t, method, path, body), "usr_1", "org_1")
}

func boardMeeting() map[string]any {
	return map[string]any{
		"subtype": "board-meeting",
		"data": map[string]any{
			"attendees":                "Alice, Bob",
			"date":                     "2024-05-30",
			"meetingMinutes":           "Approved the budget.",
			"meetingMinutesApprovedBy": "Alice",
			"approvedDate":             "2024-06-01",
		},
	}
}

func TestSubmitListAndReview(t *testing.T) {
	router := newRouter(t)

	rec := testutil.DoRequest(router, authed(t, http.MethodPost, "/organizations/org_1/documents/meeting/submissions", boardMeeting()))
	testutil.AssertStatus(t, rec, http.StatusCreated)
	created := testutil.UnmarshalResponse[SubmissionResponse](t, rec)
	assert.Equal(t, "board-meeting", created.FormType)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, "2024-06-03", created.Data["submissionDate"])

	rec = testutil.DoRequest(router, authed(t, http.MethodGet, "/organizations/org_1/documents/meeting/submissions", nil))
	testutil.AssertStatus(t, rec, http.StatusOK)
	list := testutil.UnmarshalResponse[SubmissionListResponse](t, rec)
	require.Len(t, list.Submissions, 1)
	assert.Equal(t, created.ID, list.Submissions[0].ID)

	reviewPath := "/organizations/org_1/documents/board-meeting/submissions/" + created.ID + "/review"
	rec = testutil.DoRequest(router, authed(t, http.MethodPost, reviewPath, map[string]any{"action": "approved"}))
	testutil.AssertStatus(t, rec, http.StatusOK)
	reviewed := testutil.UnmarshalResponse[SubmissionResponse](t, rec)
	assert.Equal(t, "approved", reviewed.Status)
	require.NotNil(t, reviewed.ReviewedBy)
	assert.Equal(t, "usr_1", *reviewed.ReviewedBy)

	rec = testutil.DoRequest(router, authed(t, http.MethodPost, reviewPath, map[string]any{"action": "rejected"}))
	testutil.AssertStatusAndError(t, rec, http.StatusConflict, "conflict")
}

func TestSubmitValidationErrors(t *testing.T) {
	router := newRouter(t)

	body := map[string]any{
		"data": map[string]any{
			"matrixRows": []any{
				map[string]any{"system": "AWS", "roleName": "admin", "permissionsScope": "all", "approvedBy": "CTO", "lastReviewed": "2024-05-01"},
				map[string]any{"system": "GCP", "roleName": "viewer", "permissionsScope": "read", "approvedBy": "  ", "lastReviewed": "2024-05-01"},
			},
		},
	}
	rec := testutil.DoRequest(router, authed(t, http.MethodPost, "/organizations/org_1/documents/rbac-matrix/submissions", body))
	testutil.AssertStatus(t, rec, http.StatusUnprocessableEntity)

	resp := testutil.UnmarshalResponse[ValidationErrorResponse](t, rec)
	assert.Equal(t, "validation_error", resp.Error)
	paths := make([]string, 0, len(resp.Fields))
	for _, f := range resp.Fields {
		paths = append(paths, f.Path)
	}
	assert.Contains(t, paths, "matrixRows.1.approvedBy")
}

func TestValidateEndpoint(t *testing.T) {
	router := newRouter(t)

	rec := testutil.DoRequest(router, authed(t, http.MethodPost, "/organizations/org_1/documents/meeting/validate", boardMeeting()))
	testutil.AssertStatus(t, rec, http.StatusOK)
	resp := testutil.UnmarshalResponse[ValidateResponse](t, rec)
	assert.True(t, resp.Valid)

	rec = testutil.DoRequest(router, authed(t, http.MethodGet, "/organizations/org_1/documents/meeting/submissions", nil))
	list := testutil.UnmarshalResponse[SubmissionListResponse](t, rec)
	assert.Empty(t, list.Submissions, "validate must not store anything")
}

func TestPathErrors(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		code   string
	}{
		{"unknown form type", http.MethodGet, "/organizations/org_1/documents/tax-return/submissions", nil, http.StatusNotFound, "not_found"},
		{"unknown submission", http.MethodGet, "/organizations/org_1/documents/access-request/submissions/sub_missing", nil, http.StatusNotFound, "not_found"},
		{"meeting without subtype", http.MethodPost, "/organizations/org_1/documents/meeting/submissions", map[string]any{"data": map[string]any{}}, http.StatusBadRequest, "invalid_input"},
		{"bad review action", http.MethodPost, "/organizations/org_1/documents/access-request/submissions/sub_1/review", map[string]any{"action": "maybe"}, http.StatusBadRequest, "invalid_input"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testutil.DoRequest(router, authed(t, tt.method, tt.path, tt.body))
			testutil.AssertStatusAndError(t, rec, tt.status, tt.code)
		})
	}
}

func TestMalformedJSON(t *testing.T) {
	router := newRouter(t)
	req := testutil.WithAuth(testutil.NewRequestWithBody(t, http.MethodPost, "/organizations/org_1/documents/access-request/submissions", "{"), "usr_1", "org_1")
	rec := testutil.DoRequest(router, req)
	testutil.AssertStatusAndError(t, rec, http.StatusBadRequest, "bad_request")
}
