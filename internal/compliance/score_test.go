package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0, Percentage(0, 0))
	assert.Equal(t, 0, Percentage(3, -1))
	assert.Equal(t, 100, Percentage(4, 4))
	assert.Equal(t, 33, Percentage(1, 3))
	assert.Equal(t, 67, Percentage(2, 3))
	assert.Equal(t, 13, Percentage(1, 8), "halves round up")
}

func TestOverallScore(t *testing.T) {
	t.Run("all categories empty scores zero", func(t *testing.T) {
		assert.Equal(t, 0, OverallScore(Progress{}, Progress{}, Progress{}, Progress{}))
	})

	t.Run("empty categories are left out of the mean", func(t *testing.T) {
		score := OverallScore(Progress{Done: 1, Total: 2}, Progress{}, Progress{Done: 0, Total: 0}, Progress{Done: 3, Total: 3})
		assert.Equal(t, 75, score)
	})

	t.Run("categories weigh equally regardless of size", func(t *testing.T) {
		small := OverallScore(Progress{Done: 2, Total: 2}, Progress{Done: 1, Total: 100}, Progress{}, Progress{})
		assert.Equal(t, 51, small)
	})

	t.Run("each category is rounded before averaging", func(t *testing.T) {
		// 33 + 67 + 13 = 113 / 3 = 37.67
		score := OverallScore(Progress{Done: 1, Total: 3}, Progress{Done: 2, Total: 3}, Progress{Done: 1, Total: 8}, Progress{})
		assert.Equal(t, 38, score)
	})
}

func TestBuildScorecard(t *testing.T) {
	card := BuildScorecard("org_123",
		Progress{Done: 5, Total: 10},
		Progress{Done: 1, Total: 4},
		Progress{Done: 6, Total: 8},
		Progress{},
	)

	assert.Equal(t, 50, card.Score)
	require.Len(t, card.Categories, 4)

	assert.Equal(t, CategoryScore{Category: CategoryPolicies, Label: "Policies", Done: 5, Total: 10, Percentage: 50, Href: "/org_123/policies"}, card.Categories[0])
	assert.Equal(t, "Evidence", card.Categories[1].Label)
	assert.Equal(t, "/org_123/tasks", card.Categories[1].Href)
	assert.Equal(t, "/org_123/documents", card.Categories[2].Href)
	assert.Equal(t, "/org_123/people/all", card.Categories[3].Href)
	assert.Equal(t, 0, card.Categories[3].Percentage)
}
