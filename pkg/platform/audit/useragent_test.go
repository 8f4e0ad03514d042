package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeUserAgent(t *testing.T) {
	t.Run("empty header", func(t *testing.T) {
		assert.Empty(t, DescribeUserAgent("  "))
	})

	t.Run("desktop browser", func(t *testing.T) {
		got := DescribeUserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
		assert.Contains(t, got, "Chrome 120.0.0.0")
		assert.Contains(t, got, "Linux")
		assert.NotContains(t, got, "mobile")
	})

	t.Run("crawler", func(t *testing.T) {
		got := DescribeUserAgent("Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)")
		assert.Contains(t, got, "bot:")
	})
}

func TestCategory(t *testing.T) {
	assert.Equal(t, CategoryCompliance, EventSubmissionReviewed.Category())
	assert.Equal(t, CategoryCompliance, EventFindingStatusChanged.Category())
	assert.Equal(t, CategoryOperations, AuditEvent("unknown").Category())
}
