// Command ndr-validator checks NDR XML files against the national
// data-repository consistency rules, from the command line or as an upload
// server.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var logFormat string

var rootCmd = &cobra.Command{
	Use:   "ndr-validator",
	Short: "NDR clinical-record consistency checker",
	Long: "Validates single-patient NDR XML records against the national data " +
		"repository consistency rules and reports an ordered defect list.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(serveCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
