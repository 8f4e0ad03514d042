package compliance

import (
	"fmt"
	"math"
)

// Progress is a done/total pair for one category.
type Progress struct {
	Done  int `json:"done" yaml:"done"`
	Total int `json:"total" yaml:"total"`
}

// Percentage returns done/total as a rounded percentage, 0 when total is not
// positive.
func Percentage(done, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}

// Percentage returns the rounded percentage of p.
func (p Progress) Percentage() int {
	return Percentage(p.Done, p.Total)
}

// OverallScore averages the rounded percentages of the categories that track
// anything. Every category weighs the same regardless of its size. With
// nothing tracked the score is 0.
func OverallScore(policies, tasks, documents, people Progress) int {
	sum, n := 0, 0
	for _, p := range []Progress{policies, tasks, documents, people} {
		if p.Total <= 0 {
			continue
		}
		sum += p.Percentage()
		n++
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}

// Category identifies one of the four score categories.
type Category string

const (
	CategoryPolicies  Category = "policies"
	CategoryTasks     Category = "tasks"
	CategoryDocuments Category = "documents"
	CategoryPeople    Category = "people"
)

var categoryLabels = map[Category]string{
	CategoryPolicies:  "Policies",
	CategoryTasks:     "Evidence",
	CategoryDocuments: "Documents",
	CategoryPeople:    "People",
}

var categoryPaths = map[Category]string{
	CategoryPolicies:  "policies",
	CategoryTasks:     "tasks",
	CategoryDocuments: "documents",
	CategoryPeople:    "people/all",
}

// Label is the name the category is shown under.
func (c Category) Label() string { return categoryLabels[c] }

// Href is the in-app path of the category page for an organization.
func (c Category) Href(orgID string) string {
	return fmt.Sprintf("/%s/%s", orgID, categoryPaths[c])
}

// CategoryScore is one row of the compliance overview.
type CategoryScore struct {
	Category   Category `json:"category"`
	Label      string   `json:"label"`
	Done       int      `json:"done"`
	Total      int      `json:"total"`
	Percentage int      `json:"percentage"`
	Href       string   `json:"href"`
}

// Scorecard is the overall score with its per-category breakdown.
type Scorecard struct {
	Score      int             `json:"score"`
	Categories []CategoryScore `json:"categories"`
}

// BuildScorecard computes the overall score and category rows in display
// order.
func BuildScorecard(orgID string, policies, tasks, documents, people Progress) Scorecard {
	rows := []struct {
		c Category
		p Progress
	}{
		{CategoryPolicies, policies},
		{CategoryTasks, tasks},
		{CategoryDocuments, documents},
		{CategoryPeople, people},
	}
	card := Scorecard{
		Score:      OverallScore(policies, tasks, documents, people),
		Categories: make([]CategoryScore, 0, len(rows)),
	}
	for _, r := range rows {
		card.Categories = append(card.Categories, CategoryScore{
			Category:   r.c,
			Label:      r.c.Label(),
			Done:       r.p.Done,
			Total:      r.p.Total,
			Percentage: r.p.Percentage(),
			Href:       r.c.Href(orgID),
		})
	}
	return card
}
