package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"comply/internal/compliance"
	"comply/internal/evidence/forms"
	"comply/internal/task/models"
)

// snapshot is an offline export of everything the overview reads for one
// organization.
type snapshot struct {
	Organization string               `yaml:"organization"`
	Policies     compliance.Progress  `yaml:"policies"`
	People       compliance.Progress  `yaml:"people"`
	Tasks        []models.Task        `yaml:"tasks"`
	Submissions  []snapshotSubmission `yaml:"submissions"`
}

type snapshotSubmission struct {
	// FormType accepts the external or the persisted spelling.
	FormType    string    `yaml:"form_type"`
	SubmittedAt time.Time `yaml:"submitted_at"`
}

func loadSnapshot(path string) (*snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var s snapshot
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if s.Organization == "" {
		return nil, fmt.Errorf("snapshot %s: organization is required", path)
	}
	return &s, nil
}

// statuses keeps the latest submission per external form type.
func (s *snapshot) statuses() (compliance.DocumentFormStatuses, error) {
	out := compliance.DocumentFormStatuses{}
	for i, sub := range s.Submissions {
		ft, err := forms.ParseFormType(sub.FormType)
		if err != nil {
			var ok bool
			if ft, ok = forms.ExternalOf(forms.PersistedFormType(sub.FormType)); !ok {
				return nil, fmt.Errorf("submissions[%d]: unknown form type %q", i, sub.FormType)
			}
		}
		at := sub.SubmittedAt
		if last := out[ft]; last == nil || at.After(*last) {
			out[ft] = &at
		}
	}
	return out, nil
}

func (s *snapshot) overview(now time.Time, window time.Duration) (compliance.Overview, error) {
	statuses, err := s.statuses()
	if err != nil {
		return compliance.Overview{}, err
	}
	docs := compliance.ComputeDocumentsProgress(statuses, forms.Definitions(), now, window)
	return compliance.BuildOverview(s.Organization, s.Policies, s.Tasks, docs, s.People, now), nil
}

func scoreCmd(v *viper.Viper) *cobra.Command {
	var file, nowFlag string
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score an organization snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now().UTC()
			if nowFlag != "" {
				t, err := time.Parse(time.RFC3339, nowFlag)
				if err != nil {
					return fmt.Errorf("--now must be RFC3339: %w", err)
				}
				now = t
			}

			snap, err := loadSnapshot(file)
			if err != nil {
				return err
			}
			overview, err := snap.overview(now, v.GetDuration("staleness-window"))
			if err != nil {
				return err
			}
			if v.GetBool("json") {
				return printJSON(cmd.OutOrStdout(), overview)
			}

			out := cmd.OutOrStdout()
			tw := table.NewWriter()
			tw.SetOutputMirror(out)
			tw.AppendHeader(table.Row{"Category", "Done", "Total", "%"})
			for _, c := range overview.Categories {
				tw.AppendRow(table.Row{c.Label, c.Done, c.Total, c.Percentage})
			}
			tw.AppendFooter(table.Row{"Score", "", "", overview.Score})
			tw.Render()

			if len(overview.OutstandingDocuments) > 0 {
				dw := table.NewWriter()
				dw.SetOutputMirror(out)
				dw.AppendHeader(table.Row{"Outstanding document", "Last submitted"})
				for _, d := range overview.OutstandingDocuments {
					last := "never"
					if d.LastSubmittedAt != nil {
						last = d.LastSubmittedAt.Format(time.DateOnly)
					}
					dw.AppendRow(table.Row{d.FormType, last})
				}
				dw.Render()
			}

			if len(overview.IncompleteTasks) > 0 {
				iw := table.NewWriter()
				iw.SetOutputMirror(out)
				iw.AppendHeader(table.Row{"Incomplete task", "Title", "Status", "Evidence"})
				for _, t := range overview.IncompleteTasks {
					iw.AppendRow(table.Row{t.ID, t.Title, t.Status, yesNo(t.EvidenceComplete)})
				}
				iw.Render()
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "snapshot", "", "snapshot YAML file")
	cmd.Flags().StringVar(&nowFlag, "now", "", "evaluation time (RFC3339, default current time)")
	cmd.Flags().Duration("staleness-window", compliance.DefaultStalenessWindow, "fallback document staleness window")
	_ = v.BindPFlag("staleness-window", cmd.Flags().Lookup("staleness-window"))
	_ = cmd.MarkFlagRequired("snapshot")
	return cmd
}
