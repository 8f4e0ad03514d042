package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for audit findings.
type Metrics struct {
	FindingsCreated     *prometheus.CounterVec
	StatusTransitions   *prometheus.CounterVec
	NotificationResults *prometheus.CounterVec
}

// New creates and registers finding metrics.
func New() *Metrics {
	return &Metrics{
		FindingsCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "comply_findings_created_total",
			Help: "Findings raised, by type and target kind",
		}, []string{"type", "target_kind"}),

		StatusTransitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "comply_finding_status_transitions_total",
			Help: "Finding status changes, by source and destination status",
		}, []string{"from", "to"}),

		NotificationResults: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "comply_finding_notifications_total",
			Help: "Finding notifications handed to the delivery pipeline, by result",
		}, []string{"result"}),
	}
}

func (m *Metrics) IncCreated(findingType, targetKind string) {
	if m != nil {
		m.FindingsCreated.WithLabelValues(findingType, targetKind).Inc()
	}
}

func (m *Metrics) IncTransition(from, to string) {
	if m != nil {
		m.StatusTransitions.WithLabelValues(from, to).Inc()
	}
}

func (m *Metrics) IncNotification(result string) {
	if m != nil {
		m.NotificationResults.WithLabelValues(result).Inc()
	}
}
