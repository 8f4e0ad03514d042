package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"comply/internal/evidence/forms"
)

func formsCmd(v *viper.Viper) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "forms",
		Short: "List registered evidence forms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defs := forms.Visible()
			if all {
				defs = forms.Definitions()
			}
			if v.GetBool("json") {
				return printJSON(cmd.OutOrStdout(), defs)
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.AppendHeader(table.Row{"Type", "Title", "Date", "Counted", "Fields"})
			for _, d := range defs {
				tw.AppendRow(table.Row{d.Type, d.Title, d.SubmissionDateMode, yesNo(d.CountsTowardsCompleteness()), len(d.Fields)})
			}
			tw.Render()
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include hidden forms")
	return cmd
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
