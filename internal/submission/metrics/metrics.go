package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for evidence submissions.
type Metrics struct {
	SubmissionsTotal   *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
	ReviewsTotal       *prometheus.CounterVec
}

// New creates and registers submission metrics.
func New() *Metrics {
	return &Metrics{
		SubmissionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "comply_submissions_total",
			Help: "Accepted evidence submissions by stored form type",
		}, []string{"form_type"}),

		ValidationFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "comply_submission_validation_failures_total",
			Help: "Submission payloads rejected by validation, by form type",
		}, []string{"form_type"}),

		ReviewsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "comply_submission_reviews_total",
			Help: "Submission reviews by action",
		}, []string{"action"}),
	}
}

func (m *Metrics) IncSubmission(formType string) {
	if m != nil {
		m.SubmissionsTotal.WithLabelValues(formType).Inc()
	}
}

func (m *Metrics) IncValidationFailure(formType string) {
	if m != nil {
		m.ValidationFailures.WithLabelValues(formType).Inc()
	}
}

func (m *Metrics) IncReview(action string) {
	if m != nil {
		m.ReviewsTotal.WithLabelValues(action).Inc()
	}
}
