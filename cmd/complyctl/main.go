package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// main runs the operator CLI. Every command works offline against the
// built-in form registry and local files.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("COMPLY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "complyctl",
		Short: "Comply operator CLI",
		Long: `complyctl inspects the evidence form registry, checks submission payloads,
scores offline organization snapshots and builds finding links.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Bool("json", false, "output JSON")
	_ = v.BindPFlag("json", root.PersistentFlags().Lookup("json"))

	root.AddCommand(formsCmd(v))
	root.AddCommand(validateCmd(v))
	root.AddCommand(scoreCmd(v))
	root.AddCommand(findingURLCmd(v))
	return root
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
