package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/ycard/internal/adapters/driving/tui"
	"github.com/custodia-labs/ycard/internal/core/domain"
)

// newDocumentTemplate is the text a fresh editor starts with.
const newDocumentTemplate = `people:
  - uid: "1"
    name: Ada
    surname: Lovelace
    email: ada@example.com
    phone:
      - number: "+44 20 7946 0000"
        type: work
    address:
      city: London
`

var editCmd = &cobra.Command{
	Use:   "edit [file]",
	Short: "Open the interactive editor",
	Long: `Open a contact list in the terminal editor.

Without a file the editor starts from the stored record, or from a small
example when nothing is stored yet. When a file is given, the edited text
is written back to it on exit.

Controls:
  Ctrl+Z / Ctrl+Y - Undo / Redo
  Ctrl+V          - Validate
  Ctrl+S          - Save to storage
  Ctrl+D          - Compare with the opening text
  Ctrl+L          - Toggle the activity log
  Ctrl+T          - Switch theme
  Enter / Esc     - Dismiss a dialog
  Ctrl+C          - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("edit requires an interactive terminal")
	}

	text, err := initialText(cmd.Context(), args)
	if err != nil {
		return err
	}

	app, err := tui.NewApp(tui.NewPorts(sessionFactory, settingsService), text)
	if err != nil {
		return fmt.Errorf("failed to create editor: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("editor error: %w", err)
	}

	if len(args) == 1 && app.Value() != text {
		if err := os.WriteFile(args[0], []byte(app.Value()), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", args[0], err)
		}
		cmd.Printf("Wrote %s\n", args[0])
	}
	return nil
}

// initialText picks the editor's opening text: the named file, the stored
// record rendered as YAML, or the template.
func initialText(ctx context.Context, args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if errors.Is(err, os.ErrNotExist) {
			return newDocumentTemplate, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return string(data), nil
	}

	if recordService == nil {
		return newDocumentTemplate, nil
	}
	record, err := recordService.Load(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return newDocumentTemplate, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load record: %w", err)
	}
	return recordYAML(record)
}

// recordYAML renders a stored record as YAML.
func recordYAML(record *domain.PersistedRecord) (string, error) {
	var doc any
	if err := json.Unmarshal(record.Data, &doc); err != nil {
		return "", fmt.Errorf("failed to decode record: %w", err)
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to render record: %w", err)
	}
	return string(out), nil
}
