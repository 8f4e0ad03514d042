package compliance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comply/internal/evidence/forms"
)

var (
	fresh = ago(24 * time.Hour)
	stale = ago(DefaultStalenessWindow + 24*time.Hour)
)

func countedForms() []forms.FormType {
	var out []forms.FormType
	for _, d := range forms.Definitions() {
		if d.CountsTowardsCompleteness() {
			out = append(out, d.Type)
		}
	}
	return out
}

func TestComputeDocumentsProgress(t *testing.T) {
	defs := forms.Definitions()
	counted := countedForms()

	t.Run("nothing submitted leaves every counted document outstanding", func(t *testing.T) {
		p := ComputeDocumentsProgress(DocumentFormStatuses{}, defs, now, 0)
		assert.Equal(t, len(counted), p.Total)
		assert.Equal(t, 0, p.Completed)
		assert.Equal(t, p.Total, p.Outstanding)
		assert.ElementsMatch(t, counted, p.OutstandingForms())
	})

	t.Run("hidden and optional forms are not counted", func(t *testing.T) {
		p := ComputeDocumentsProgress(DocumentFormStatuses{}, defs, now, 0)
		for _, item := range p.Items {
			assert.NotEqual(t, forms.FormTypeWhistleblowerReport, item.FormType)
			assert.False(t, item.FormType.IsMeetingSubtype())
		}
	})

	t.Run("completed plus outstanding equals total", func(t *testing.T) {
		statuses := DocumentFormStatuses{
			forms.FormTypeAccessRequest:   fresh,
			forms.FormTypeRBACMatrix:      stale,
			forms.FormTypePenetrationTest: fresh,
		}
		p := ComputeDocumentsProgress(statuses, defs, now, 0)
		assert.Equal(t, p.Total, p.Completed+p.Outstanding)
		assert.Equal(t, 2, p.Completed)
	})

	t.Run("a custom window applies to forms without their own", func(t *testing.T) {
		statuses := DocumentFormStatuses{forms.FormTypeAccessRequest: ago(40 * 24 * time.Hour)}
		p := ComputeDocumentsProgress(statuses, defs, now, 30*24*time.Hour)
		assert.Equal(t, 0, p.Completed)
	})
}

func TestComputeDocumentsProgress_MeetingFamily(t *testing.T) {
	defs := forms.Definitions()
	meetingOutstanding := func(p DocumentsProgress) bool {
		for _, item := range p.Items {
			if item.FormType == forms.FormTypeMeeting {
				return item.Outstanding
			}
		}
		t.Fatal("meeting document missing from progress")
		return false
	}

	tests := []struct {
		name     string
		board    *time.Time
		itLead   *time.Time
		risk     *time.Time
		expected bool
	}{
		{"fresh, stale, stale", fresh, stale, stale, false},
		{"stale, stale, fresh", stale, stale, fresh, false},
		{"stale, stale, stale", stale, stale, stale, true},
		{"never, never, never", nil, nil, nil, true},
		{"never, fresh, never", nil, fresh, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statuses := DocumentFormStatuses{
				forms.FormTypeBoardMeeting:         tt.board,
				forms.FormTypeITLeadershipMeeting:  tt.itLead,
				forms.FormTypeRiskCommitteeMeeting: tt.risk,
			}
			p := ComputeDocumentsProgress(statuses, defs, now, 0)
			assert.Equal(t, tt.expected, meetingOutstanding(p))
		})
	}

	t.Run("meeting counts as one document", func(t *testing.T) {
		statuses := DocumentFormStatuses{
			forms.FormTypeBoardMeeting:         fresh,
			forms.FormTypeITLeadershipMeeting:  fresh,
			forms.FormTypeRiskCommitteeMeeting: fresh,
		}
		p := ComputeDocumentsProgress(statuses, defs, now, 0)
		assert.Equal(t, 1, p.Completed)
	})

	t.Run("submissions stored under meeting itself do not satisfy it", func(t *testing.T) {
		statuses := DocumentFormStatuses{forms.FormTypeMeeting: fresh}
		p := ComputeDocumentsProgress(statuses, defs, now, 0)
		assert.True(t, meetingOutstanding(p))
	})

	t.Run("meeting reports the latest subtype submission", func(t *testing.T) {
		statuses := DocumentFormStatuses{
			forms.FormTypeBoardMeeting:         stale,
			forms.FormTypeRiskCommitteeMeeting: fresh,
		}
		p := ComputeDocumentsProgress(statuses, defs, now, 0)
		for _, item := range p.Items {
			if item.FormType == forms.FormTypeMeeting {
				require.NotNil(t, item.LastSubmittedAt)
				assert.Equal(t, *fresh, *item.LastSubmittedAt)
			}
		}
	})
}

func TestStatusesFromLatest(t *testing.T) {
	older := ago(48 * time.Hour)
	rows := []LatestSubmission{
		{FormType: forms.PersistedBoardMeeting, LastSubmittedAt: older},
		{FormType: forms.PersistedBoardMeeting, LastSubmittedAt: fresh},
		{FormType: forms.PersistedRBACMatrix, LastSubmittedAt: nil},
		{FormType: forms.PersistedFormType("legacy_form"), LastSubmittedAt: fresh},
	}

	statuses := StatusesFromLatest(rows)

	require.Contains(t, statuses, forms.FormTypeBoardMeeting)
	assert.Equal(t, *fresh, *statuses[forms.FormTypeBoardMeeting])
	assert.Contains(t, statuses, forms.FormTypeRBACMatrix)
	assert.Nil(t, statuses[forms.FormTypeRBACMatrix])
	assert.Len(t, statuses, 2)
}
