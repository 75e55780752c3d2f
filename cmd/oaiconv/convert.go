package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	openapi "github.com/sahardevv/OpenAPI.NET"
	"github.com/sahardevv/OpenAPI.NET/models"
	"github.com/sahardevv/OpenAPI.NET/writer"
)

func newConvertCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [flags] <file>",
		Short: "Convert a document to OpenAPI 3.0 or Swagger 2.0",
		Long:  `Read a JSON or YAML document in either dialect and write it in the requested dialect and format. Diagnostics are logged to stderr; the partial model is still written.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, cfg, args[0])
		},
	}
	cmd.Flags().String("to", "", "target dialect (v2|v3, default: same as input)")
	cmd.Flags().String("format", "", "output format (json|yaml, default: from -o extension or json)")
	cmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	cmd.Flags().Int("indent", 2, "spaces per level for JSON output (0 = compact)")
	return cmd
}

func runConvert(cmd *cobra.Command, cfg *Config, file string) error {
	to, err := cmd.Flags().GetString("to")
	if err != nil {
		return fmt.Errorf("failed to get to flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}

	res, err := readFile(cmd, cfg, file)
	if err != nil {
		return err
	}
	for _, d := range res.Diagnostics {
		ev := cfg.logger.Warn()
		if d.Severity == openapi.SeverityError {
			ev = cfg.logger.Error()
		}
		ev.Str("code", d.Code).Str("at", d.Position.String()).Msg(d.Message)
	}

	target := res.Version
	if to != "" {
		if target, err = openapi.ParseSpecVersion(to); err != nil {
			return err
		}
	}
	if format == "" {
		format = formatFromPath(output)
	}

	var out []byte
	switch strings.ToLower(format) {
	case "json":
		out, err = models.SerializeJSON(res.Document, target, writer.Settings{Indent: cfg.Indent})
	case "yaml", "yml":
		out, err = models.SerializeYAML(res.Document, target)
	default:
		return fmt.Errorf("unknown format: %s (must be json or yaml)", format)
	}
	if err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	cfg.logger.Debug().Str("from", res.Version.String()).Str("to", target.String()).Int("bytes", len(out)).Msg("converted")
	if output == "" {
		return writeAll(cmd.OutOrStdout(), out)
	}
	return os.WriteFile(output, out, 0o644)
}

func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	}
	return "json"
}

func writeAll(w io.Writer, b []byte) error {
	if _, err := w.Write(b); err != nil {
		return err
	}
	if len(b) > 0 && b[len(b)-1] != '\n' {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}
