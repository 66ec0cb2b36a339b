package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/ycard/internal/adapters/driven/editor"
	"github.com/custodia-labs/ycard/internal/core/domain"
	"github.com/custodia-labs/ycard/internal/core/ports/driving"
)

// errNoInput is returned when no file is named and stdin is a terminal.
var errNoInput = errors.New("no input: pass a file or pipe a document on stdin")

// outcomeError turns a failed outcome into the command's error.
type outcomeError struct {
	outcome domain.Outcome
}

func (e *outcomeError) Error() string {
	return e.outcome.Message
}

// readInput returns the named file, or stdin for "-" or no argument.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return string(data), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", errNoInput
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// openSession opens a session mounted on a buffer holding text.
func openSession(text string) (driving.SessionService, *editor.Buffer, error) {
	if sessionFactory == nil {
		return nil, nil, errors.New("session service not configured")
	}
	session := sessionFactory.NewSession()
	buf := editor.NewBuffer(text)
	if out := session.Mount(buf); !out.OK() {
		return nil, nil, &outcomeError{outcome: out}
	}
	return session, buf, nil
}

// report prints an outcome and returns an error when it failed.
func report(cmd *cobra.Command, out domain.Outcome) error {
	if !out.OK() {
		return &outcomeError{outcome: out}
	}
	cmd.Printf("%s %s\n", out.Category.Icon(), out.Message)
	return nil
}

// printLog prints the session's activity log.
func printLog(cmd *cobra.Command, session driving.SessionService) {
	cmd.Println()
	cmd.Println("Activity Log")
	for _, e := range session.Entries() {
		cmd.Printf("  %s %s %s\n", e.Category.Icon(), e.Timestamp, e.Message)
	}
}
