package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"comply/internal/evidence/forms"
	"comply/internal/evidence/validation"
)

var errInvalidPayload = errors.New("payload is invalid")

func validateCmd(v *viper.Viper) *cobra.Command {
	var formType, file string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a submission payload against its form schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ft, err := forms.ParseFormType(formType)
			if err != nil {
				return fmt.Errorf("--type %q: %w", formType, err)
			}
			data, err := readPayload(file)
			if err != nil {
				return err
			}

			payload, err := validation.Validate(ft, data)
			var verrs *validation.Errors
			switch {
			case errors.As(err, &verrs):
				if v.GetBool("json") {
					if err := printJSON(cmd.OutOrStdout(), verrs.Fields); err != nil {
						return err
					}
					return errInvalidPayload
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(cmd.OutOrStdout())
				tw.AppendHeader(table.Row{"Path", "Message"})
				for _, f := range verrs.Fields {
					tw.AppendRow(table.Row{f.Path, f.Message})
				}
				tw.Render()
				return errInvalidPayload
			case err != nil:
				return err
			}

			if v.GetBool("json") {
				return printJSON(cmd.OutOrStdout(), payload)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s payload is valid\n", ft)
			return nil
		},
	}
	cmd.Flags().StringVar(&formType, "type", "", "form type")
	cmd.Flags().StringVar(&file, "file", "", "payload file (.json, .yaml or .yml)")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func readPayload(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}

	data := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(raw, &data)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &data)
	default:
		return nil, fmt.Errorf("unsupported payload file %q: use .json, .yaml or .yml", path)
	}
	if err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return data, nil
}
