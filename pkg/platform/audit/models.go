package audit

import (
	"context"
	"time"

	id "comply/pkg/domain"
)

// EventCategory classifies audit events by their primary purpose so stores
// can apply different retention.
type EventCategory string

const (
	// CategoryCompliance covers evidence and findings changes auditors rely
	// on. Long retention.
	CategoryCompliance EventCategory = "compliance"

	// CategoryOperations covers routine reads useful for debugging.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from services to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category       EventCategory
	Timestamp      time.Time
	OrganizationID id.OrganizationID
	ActorID        id.UserID
	// Subject is the id of the entity acted upon (submission, finding).
	Subject   string
	Action    string
	Decision  string
	Reason    string
	RequestID string
	// ClientAgent is a short description of the caller's user agent.
	ClientAgent string
}

type AuditEvent string

const (
	EventSubmissionCreated    AuditEvent = "submission_created"
	EventSubmissionReviewed   AuditEvent = "submission_reviewed"
	EventFindingCreated       AuditEvent = "finding_created"
	EventFindingStatusChanged AuditEvent = "finding_status_changed"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventSubmissionCreated:    CategoryCompliance,
	EventSubmissionReviewed:   CategoryCompliance,
	EventFindingCreated:       CategoryCompliance,
	EventFindingStatusChanged: CategoryCompliance,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

// ComplianceEvent captures an action that must be persisted before the
// operation that caused it is reported as successful.
type ComplianceEvent struct {
	Timestamp      time.Time
	OrganizationID id.OrganizationID
	ActorID        id.UserID
	Subject        string
	Action         AuditEvent
	Decision       string
	Reason         string
	RequestID      string
	ClientAgent    string
}

// ToEvent converts to the stored Event shape.
func (e ComplianceEvent) ToEvent() Event {
	return Event{
		Category:       CategoryCompliance,
		Timestamp:      e.Timestamp,
		OrganizationID: e.OrganizationID,
		ActorID:        e.ActorID,
		Subject:        e.Subject,
		Action:         string(e.Action),
		Decision:       e.Decision,
		Reason:         e.Reason,
		RequestID:      e.RequestID,
		ClientAgent:    e.ClientAgent,
	}
}

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByOrganization(ctx context.Context, orgID id.OrganizationID, limit int) ([]Event, error)
}
