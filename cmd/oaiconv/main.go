// Command oaiconv reads OpenAPI 3.0 and Swagger 2.0 documents, reports
// diagnostics and converts between the two dialects.
//
// Usage:
//
//	oaiconv convert petstore.yaml --to v2 --format json -o petstore.json
//	oaiconv inspect petstore.yaml --warnings-as-errors
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func newRootCmd() *cobra.Command {
	var cfgFile string
	cfg := &Config{}

	root := &cobra.Command{
		Use:           "oaiconv",
		Short:         "Read, inspect and convert OpenAPI documents",
		Long:          `oaiconv reads OpenAPI 3.0 and Swagger 2.0 documents in JSON or YAML, reports diagnostics and writes them back in either dialect`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := LoadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			*cfg = *loaded
			cfg.apply()
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().BoolP("verbose", "v", false, "log debug events to stderr")
	root.PersistentFlags().String("lang", "en", "language for diagnostic titles (en|ja)")
	root.PersistentFlags().Int("max-depth", 0, "maximum object nesting (0 = reader default)")
	root.PersistentFlags().Bool("external", false, "resolve external references against files next to the input")

	root.AddCommand(newConvertCmd(cfg))
	root.AddCommand(newInspectCmd(cfg))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "oaiconv:", err)
		os.Exit(1)
	}
}
