// Package cli provides the ycard command line interface.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ycard/internal/core/ports/driving"
	"github.com/custodia-labs/ycard/internal/logger"
)

var (
	version = "dev"

	sessionFactory  driving.SessionFactory
	recordService   driving.RecordService
	settingsService driving.SettingsService

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ycard",
	Short: "Validate, compare and store yCard contact lists",
	Long: `ycard checks YAML contact lists against the yCard rules, compares edits
against the text they started from, and stores valid lists locally.

Run "ycard edit" for the interactive editor, or use validate, save and diff
from scripts.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetVerbose(true)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostic logs to stderr")
}

// Services groups the driving ports the commands use.
type Services struct {
	Sessions driving.SessionFactory
	Records  driving.RecordService
	Settings driving.SettingsService
}

// SetServices injects the core services.
func SetServices(s Services) {
	sessionFactory = s.Sessions
	recordService = s.Records
	settingsService = s.Settings
}

// SetVersion sets the version reported by "ycard version".
func SetVersion(v string) {
	version = v
}

// Execute runs the root command. Cancelling ctx stops long-running
// commands such as watch, edit and mcp serve.
func Execute(ctx context.Context) error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}
