package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	ndr "github.com/gondr/validator"
	"github.com/gondr/validator/document"
	"github.com/gondr/validator/engine"
	"github.com/gondr/validator/internal/logging"
)

// Exit codes: 0 clean, 1 defects found, 2 unreadable or malformed input.
const (
	exitOK     = 0
	exitIssues = 1
	exitInput  = 2
)

// fileReport is the JSON output for one validated file.
type fileReport struct {
	File     string   `json:"file"`
	Valid    bool     `json:"valid"`
	Blocking int      `json:"blocking"`
	Warnings int      `json:"warnings"`
	Issues   []string `json:"issues,omitempty"`
	Error    string   `json:"error,omitempty"`
}

func validateCmd() *cobra.Command {
	var (
		output     string
		strict     bool
		quiet      bool
		legacyScan bool
	)

	cmd := &cobra.Command{
		Use:   "validate [file...]",
		Short: "Validate NDR XML files (use \"-\" for stdin)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.Setup(logFormat)

			v := engine.New(
				ndr.WithStrictMode(strict),
				ndr.WithLegacyRegimenScan(legacyScan),
			)

			exitCode := exitOK
			for _, path := range args {
				report := validateOne(v, path)
				if report.Error != "" && exitCode < exitInput {
					exitCode = exitInput
				}
				if !report.Valid && exitCode < exitIssues {
					exitCode = exitIssues
				}

				switch output {
				case "json":
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					if err := enc.Encode(report); err != nil {
						return err
					}
				default:
					printText(cmd.OutOrStdout(), report, quiet)
				}

				log.Debug().
					Str("file", report.File).
					Bool("valid", report.Valid).
					Int("blocking", report.Blocking).
					Int("warnings", report.Warnings).
					Msg("validated")
			}

			if exitCode != exitOK {
				// Cobra already printed usage-level errors; a non-zero
				// validation outcome should not re-print usage.
				cmd.SilenceUsage = true
				cmd.SilenceErrors = true
				os.Exit(exitCode)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as blocking")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Print only the summary line")
	cmd.Flags().BoolVar(&legacyScan, "legacy-regimen-scan", false,
		"Re-run the regimen duration scan once per encounter (historical behavior)")

	return cmd
}

func validateOne(v *engine.Validator, path string) fileReport {
	report := fileReport{File: path, Valid: false}

	var r io.Reader
	if path == "-" {
		report.File = "stdin"
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			report.Error = err.Error()
			return report
		}
		defer f.Close()
		r = f
	}

	_, result, err := v.ValidateReader(context.Background(), r)
	if err != nil {
		var malformed *document.MalformedInputError
		if errors.As(err, &malformed) {
			report.Error = "not well-formed XML: " + malformed.Err.Error()
		} else {
			report.Error = err.Error()
		}
		return report
	}
	defer result.Release()

	report.Valid = result.Valid
	report.Blocking = result.BlockingCount()
	report.Warnings = result.WarningCount()
	report.Issues = result.Strings()
	return report
}

func printText(w io.Writer, report fileReport, quiet bool) {
	if report.Error != "" {
		fmt.Fprintf(w, "%s: ❌ %s\n", report.File, report.Error)
		return
	}
	if !quiet {
		for _, line := range report.Issues {
			fmt.Fprintf(w, "%s\n", line)
		}
	}
	if report.Valid && report.Warnings == 0 {
		fmt.Fprintf(w, "%s: no issues found\n", report.File)
		return
	}
	fmt.Fprintf(w, "%s: %d blocking, %d warning(s)\n", report.File, report.Blocking, report.Warnings)
}
