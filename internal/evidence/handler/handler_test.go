package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comply/internal/evidence/forms"
	"comply/pkg/testutil"
)

func newRouter() http.Handler {
	r := chi.NewRouter()
	New(slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	return r
}

func TestListForms(t *testing.T) {
	router := newRouter()

	t.Run("hidden meeting subtypes are not listed by default", func(t *testing.T) {
		rec := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/forms", nil))
		testutil.AssertStatus(t, rec, http.StatusOK)
		resp := testutil.UnmarshalResponse[FormListResponse](t, rec)

		assert.Len(t, resp.Forms, len(forms.Visible()))
		for _, f := range resp.Forms {
			assert.False(t, f.Type.IsMeetingSubtype(), "listed %s", f.Type)
		}
	})

	t.Run("all includes hidden forms", func(t *testing.T) {
		rec := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/forms?all=true", nil))
		testutil.AssertStatus(t, rec, http.StatusOK)
		resp := testutil.UnmarshalResponse[FormListResponse](t, rec)
		assert.Len(t, resp.Forms, len(forms.Definitions()))
	})

	t.Run("bad flag", func(t *testing.T) {
		rec := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/forms?all=maybe", nil))
		testutil.AssertStatusAndError(t, rec, http.StatusBadRequest, "bad_request")
	})
}

func TestGetForm(t *testing.T) {
	router := newRouter()

	t.Run("meeting lists its subtypes", func(t *testing.T) {
		rec := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/forms/meeting", nil))
		testutil.AssertStatus(t, rec, http.StatusOK)
		resp := testutil.UnmarshalResponse[FormResponse](t, rec)
		require.NotEmpty(t, resp.Subtypes)
		assert.Contains(t, resp.Subtypes, "board-meeting")
	})

	t.Run("regular form", func(t *testing.T) {
		rec := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/forms/network-diagram", nil))
		testutil.AssertStatus(t, rec, http.StatusOK)
		resp := testutil.UnmarshalResponse[FormResponse](t, rec)
		assert.Equal(t, forms.FormTypeNetworkDiagram, resp.Type)
		assert.Equal(t, forms.SubmissionDateCustom, resp.SubmissionDateMode)
		assert.Empty(t, resp.Subtypes)
	})

	t.Run("unknown form type", func(t *testing.T) {
		rec := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/forms/tax-return", nil))
		testutil.AssertStatusAndError(t, rec, http.StatusNotFound, "not_found")
	})
}
