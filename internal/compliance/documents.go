package compliance

import (
	"time"

	"comply/internal/evidence/forms"
)

// LatestSubmission is one row of the "max submittedAt per form type"
// aggregate read from storage.
type LatestSubmission struct {
	FormType        forms.PersistedFormType `json:"form_type"`
	LastSubmittedAt *time.Time              `json:"last_submitted_at"`
}

// DocumentFormStatuses maps a form type to its latest submission time. A
// missing entry and a nil time both mean "never submitted".
type DocumentFormStatuses map[forms.FormType]*time.Time

// StatusesFromLatest builds the status map from the storage aggregate.
// Unknown stored values are skipped; duplicates keep the latest time.
func StatusesFromLatest(rows []LatestSubmission) DocumentFormStatuses {
	statuses := make(DocumentFormStatuses, len(rows))
	for _, row := range rows {
		ft, ok := forms.ExternalOf(row.FormType)
		if !ok {
			continue
		}
		statuses[ft] = later(statuses[ft], row.LastSubmittedAt)
	}
	return statuses
}

// DocumentStatus is the freshness of one counted document.
type DocumentStatus struct {
	FormType        forms.FormType `json:"form_type"`
	Title           string         `json:"title"`
	LastSubmittedAt *time.Time     `json:"last_submitted_at"`
	Outstanding     bool           `json:"outstanding"`
}

// DocumentsProgress summarises document completeness for an organization.
// Completed + Outstanding == Total.
type DocumentsProgress struct {
	Total       int              `json:"total"`
	Completed   int              `json:"completed"`
	Outstanding int              `json:"outstanding"`
	Items       []DocumentStatus `json:"items"`
}

// ComputeDocumentsProgress counts the documents an organization must keep
// fresh. Hidden and optional forms are excluded. The meeting document is
// satisfied by a fresh submission of any meeting subtype. A zero window uses
// DefaultStalenessWindow.
func ComputeDocumentsProgress(statuses DocumentFormStatuses, defs []forms.Definition, now time.Time, window time.Duration) DocumentsProgress {
	progress := DocumentsProgress{Items: make([]DocumentStatus, 0, len(defs))}
	for _, def := range defs {
		if !def.CountsTowardsCompleteness() {
			continue
		}
		item := documentStatus(def, statuses, now, window)
		progress.Items = append(progress.Items, item)
		progress.Total++
		if item.Outstanding {
			progress.Outstanding++
		}
	}
	progress.Completed = progress.Total - progress.Outstanding
	return progress
}

// OutstandingForms lists the counted forms that need a new submission.
func (p DocumentsProgress) OutstandingForms() []forms.FormType {
	var out []forms.FormType
	for _, item := range p.Items {
		if item.Outstanding {
			out = append(out, item.FormType)
		}
	}
	return out
}

func documentStatus(def forms.Definition, statuses DocumentFormStatuses, now time.Time, window time.Duration) DocumentStatus {
	item := DocumentStatus{FormType: def.Type, Title: def.Title}
	if def.Type != forms.FormTypeMeeting {
		item.LastSubmittedAt = statuses[def.Type]
		item.Outstanding = IsOutstanding(item.LastSubmittedAt, now, WindowFor(def, window))
		return item
	}

	item.Outstanding = true
	for _, st := range forms.MeetingSubtypes() {
		last := statuses[st]
		item.LastSubmittedAt = later(item.LastSubmittedAt, last)
		subDef, _ := forms.Lookup(st)
		if !IsOutstanding(last, now, WindowFor(subDef, window)) {
			item.Outstanding = false
		}
	}
	return item
}

func later(a, b *time.Time) *time.Time {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case b.After(*a):
		return b
	default:
		return a
	}
}
