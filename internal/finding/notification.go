package finding

import (
	"time"

	id "comply/pkg/domain"
)

// NotificationEvent names why a notification was sent.
type NotificationEvent string

const (
	EventFindingCreated       NotificationEvent = "finding_created"
	EventFindingStatusChanged NotificationEvent = "finding_status_changed"
)

// Notification is the payload handed to the delivery pipeline (email, push).
// URL is embedded verbatim by the templates.
type Notification struct {
	Event          NotificationEvent `json:"event"`
	FindingID      id.FindingID      `json:"finding_id"`
	OrganizationID id.OrganizationID `json:"organization_id"`
	Type           Type              `json:"type"`
	Status         Status            `json:"status"`
	PreviousStatus Status            `json:"previous_status,omitempty"`
	TargetKind     TargetKind        `json:"target_kind"`
	Content        string            `json:"content"`
	URL            string            `json:"url,omitempty"`
	ActorID        id.UserID         `json:"actor_id,omitempty"`
	OccurredAt     time.Time         `json:"occurred_at"`
}

// NewNotification builds the payload for f. previous is empty for newly
// created findings.
func NewNotification(event NotificationEvent, f *Finding, baseURL string, previous Status, actor id.UserID, now time.Time) Notification {
	n := Notification{
		Event:          event,
		FindingID:      f.ID,
		OrganizationID: f.OrganizationID,
		Type:           f.Type,
		Status:         f.Status,
		PreviousStatus: previous,
		Content:        f.Content,
		URL:            BuildURL(baseURL, f.OrganizationID, f.Target),
		ActorID:        actor,
		OccurredAt:     now,
	}
	if f.Target != nil {
		n.TargetKind = f.Target.Kind()
	}
	return n
}
