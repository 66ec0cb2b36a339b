package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ycard/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure where yCard records are stored and how the editor looks.

Use subcommands to change a single setting or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

var settingsBackendCmd = &cobra.Command{
	Use:   "backend [sqlite|memory]",
	Short: "Set the storage backend",
	Long: `Set where saved records are kept.

Available backends:
  sqlite - SQLite database in the data directory (survives restarts)
  memory - In-process only, lost on exit`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsBackend,
}

var settingsDataDirCmd = &cobra.Command{
	Use:   "data-dir [path]",
	Short: "Set the data directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsDataDir,
}

var settingsThemeCmd = &cobra.Command{
	Use:   "theme [dark|light]",
	Short: "Set the editor theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsTheme,
}

var settingsVerboseCmd = &cobra.Command{
	Use:   "verbose [true|false]",
	Short: "Enable or disable diagnostic logging by default",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsVerbose,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	settingsCmd.AddCommand(settingsBackendCmd)
	settingsCmd.AddCommand(settingsDataDirCmd)
	settingsCmd.AddCommand(settingsThemeCmd)
	settingsCmd.AddCommand(settingsVerboseCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Backend: %s\n", settings.Storage.Backend.Description())
	if settings.Storage.Backend.IsDurable() {
		dir := settings.Storage.DataDir
		if dir == "" {
			dir = "(default)"
		}
		cmd.Printf("  Data Dir: %s\n", dir)
	}
	cmd.Println()

	cmd.Println("[Editor]")
	cmd.Printf("  Theme: %s\n", settings.Editor.Theme)
	cmd.Println()

	cmd.Println("[Logging]")
	cmd.Printf("  Verbose: %s\n", yesNo(settings.Logging.Verbose))

	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Println("yCard Settings Wizard")
	cmd.Println("=====================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	cmd.Println("Step 1: Select Storage Backend")
	cmd.Println("------------------------------")
	backends := domain.AllStorageBackends()
	for i, b := range backends {
		cmd.Printf("  %d. %s\n", i+1, b.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	backend := backends[parseChoice(readLine(reader), len(backends), 1)-1]
	if err := settingsService.SetBackend(backend); err != nil {
		return fmt.Errorf("failed to set backend: %w", err)
	}
	cmd.Printf("Set storage backend to: %s\n\n", backend)

	if backend.IsDurable() {
		cmd.Println("Step 2: Data Directory")
		cmd.Println("----------------------")
		cmd.Print("Enter path [default]: ")
		if dir := readLine(reader); dir != "" {
			if err := settingsService.SetDataDir(dir); err != nil {
				return fmt.Errorf("failed to set data directory: %w", err)
			}
			cmd.Printf("Set data directory to: %s\n", dir)
		}
		cmd.Println()
	} else {
		cmd.Println("Step 2: Data Directory (skipped)")
		cmd.Println("--------------------------------")
		cmd.Println("Not used by the memory backend.")
		cmd.Println()
	}

	cmd.Println("Step 3: Select Editor Theme")
	cmd.Println("---------------------------")
	themes := domain.AllThemes()
	for i, t := range themes {
		cmd.Printf("  %d. %s\n", i+1, t)
	}
	cmd.Print("\nEnter choice [1]: ")
	theme := themes[parseChoice(readLine(reader), len(themes), 1)-1]
	if err := settingsService.SetTheme(theme); err != nil {
		return fmt.Errorf("failed to set theme: %w", err)
	}
	cmd.Printf("Set theme to: %s\n\n", theme)

	cmd.Println("Settings saved.")
	return nil
}

func runSettingsBackend(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	backend := domain.StorageBackend(strings.ToLower(args[0]))
	if err := settingsService.SetBackend(backend); err != nil {
		return fmt.Errorf("failed to set backend: %w", err)
	}
	cmd.Printf("Storage backend set to: %s\n", backend.Description())
	return nil
}

func runSettingsDataDir(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if err := settingsService.SetDataDir(args[0]); err != nil {
		return fmt.Errorf("failed to set data directory: %w", err)
	}
	cmd.Printf("Data directory set to: %s\n", args[0])
	return nil
}

func runSettingsTheme(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	theme := domain.Theme(strings.ToLower(args[0]))
	if err := settingsService.SetTheme(theme); err != nil {
		return fmt.Errorf("failed to set theme: %w", err)
	}
	cmd.Printf("Theme set to: %s\n", theme)
	return nil
}

func runSettingsVerbose(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	on, err := strconv.ParseBool(args[0])
	if err != nil {
		return fmt.Errorf("%w: verbose must be true or false", domain.ErrInvalidInput)
	}
	if err := settingsService.SetVerbose(on); err != nil {
		return fmt.Errorf("failed to set verbose: %w", err)
	}
	cmd.Printf("Verbose logging: %s\n", yesNo(on))
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
