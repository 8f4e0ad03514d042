package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"comply/internal/evidence/forms"
	"comply/internal/finding"
	id "comply/pkg/domain"
)

func findingURLCmd(v *viper.Viper) *cobra.Command {
	var org, task, submission, formType string
	cmd := &cobra.Command{
		Use:   "finding-url",
		Short: "Print the in-app link of a finding target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base := v.GetString("app-base-url")
			if base == "" {
				return errors.New("--base is required")
			}
			orgID, err := id.ParseOrganizationID(org)
			if err != nil {
				return fmt.Errorf("--org: %w", err)
			}
			target, err := buildTarget(task, submission, formType)
			if err != nil {
				return err
			}
			if err := finding.ValidateTarget(target); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), finding.BuildURL(base, orgID, target))
			return nil
		},
	}
	cmd.Flags().String("base", "", "app base URL (env COMPLY_APP_BASE_URL)")
	_ = v.BindPFlag("app-base-url", cmd.Flags().Lookup("base"))
	cmd.Flags().StringVar(&org, "org", "", "organization id")
	cmd.Flags().StringVar(&task, "task", "", "task id")
	cmd.Flags().StringVar(&submission, "submission", "", "submission id (needs --form-type)")
	cmd.Flags().StringVar(&formType, "form-type", "", "form type")
	_ = cmd.MarkFlagRequired("org")
	cmd.MarkFlagsMutuallyExclusive("task", "submission")
	cmd.MarkFlagsMutuallyExclusive("task", "form-type")
	return cmd
}

func buildTarget(task, submission, formType string) (finding.Target, error) {
	switch {
	case task != "":
		return finding.TaskTarget{TaskID: id.TaskID(task)}, nil
	case submission != "":
		if formType == "" {
			return nil, errors.New("--submission needs --form-type")
		}
		ft, err := forms.ParseFormType(formType)
		if err != nil {
			return nil, fmt.Errorf("--form-type: %w", err)
		}
		return finding.SubmissionTarget{SubmissionID: id.SubmissionID(submission), FormType: ft}, nil
	case formType != "":
		ft, err := forms.ParseFormType(formType)
		if err != nil {
			return nil, fmt.Errorf("--form-type: %w", err)
		}
		return finding.FormTypeTarget{FormType: ft}, nil
	default:
		return nil, errors.New("one of --task, --submission or --form-type is required")
	}
}
