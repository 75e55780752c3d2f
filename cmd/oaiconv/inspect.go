package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	openapi "github.com/sahardevv/OpenAPI.NET"
	"github.com/sahardevv/OpenAPI.NET/i18n"
	"github.com/sahardevv/OpenAPI.NET/reader"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	dimColor     = color.New(color.Faint)
)

// errFailed is returned by inspect when the document has problems; the
// diagnostics have already been printed.
var errFailed = errors.New("document has errors")

func newInspectCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [flags] <file>",
		Short: "Print the diagnostics of a document",
		Long:  `Read a document and print every diagnostic found. Exits with a non-zero status when errors are present.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, cfg, args[0])
		},
	}
	cmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors")
	return cmd
}

func runInspect(cmd *cobra.Command, cfg *Config, file string) error {
	strict, err := cmd.Flags().GetBool("warnings-as-errors")
	if err != nil {
		return fmt.Errorf("failed to get warnings-as-errors flag: %w", err)
	}

	res, err := readFile(cmd, cfg, file)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %s %s\n", file, dialectName(res.Version), res.Version)
	printDiagnostics(out, res.Diagnostics)

	errs, warns := len(res.Diagnostics.Errors()), len(res.Diagnostics.Warnings())
	fmt.Fprintf(out, "%d error(s), %d warning(s)\n", errs, warns)
	if errs > 0 || (strict && warns > 0) {
		return errFailed
	}
	return nil
}

func printDiagnostics(w io.Writer, ds openapi.Diagnostics) {
	for _, d := range ds {
		var sev string
		switch d.Severity {
		case openapi.SeverityError:
			sev = errorColor.Sprint(d.Severity)
		case openapi.SeverityWarning:
			sev = warningColor.Sprint(d.Severity)
		default:
			sev = infoColor.Sprint(d.Severity)
		}
		fmt.Fprintf(w, "%s %s %s\n    %s %s\n", sev, i18n.T(d.Code, nil), dimColor.Sprintf("[%s]", d.Code), d.Position, d.Message)
	}
}

func dialectName(v openapi.SpecVersion) string {
	if v == openapi.V2 {
		return "Swagger"
	}
	return "OpenAPI"
}

// readFile reads and parses file. Only failures that leave no document at
// all are returned as errors.
func readFile(cmd *cobra.Command, cfg *Config, file string) (*reader.Result, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	res, err := reader.Read(ctx, data, cfg.readerSettings(ctx, file))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return res, nil
}
