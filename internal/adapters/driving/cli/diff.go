package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/ycard/internal/core/domain"
)

// errDocumentsDiffer is returned by "diff --exit-code" when the texts differ.
var errDocumentsDiffer = errors.New("documents differ")

var diffCmd = &cobra.Command{
	Use:   "diff [original] [modified]",
	Short: "Compare a contact list with the text it started from",
	Long: `Compare two versions of a contact list byte for byte and print a
unified diff. Whitespace and line ending changes count as changes.`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().Bool("exit-code", false, "fail when the documents differ")
	diffCmd.Flags().IntP("context", "U", 3, "lines of context")
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	original, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	modified, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[1], err)
	}

	session, buf, err := openSession(string(original))
	if err != nil {
		return err
	}
	defer session.Close()

	buf.SetValue(string(modified))
	out := session.Diff()
	if !out.OK() {
		return &outcomeError{outcome: out}
	}
	if out.Kind == domain.OutcomeNoChanges {
		cmd.Println(out.Message)
		return nil
	}

	lines, _ := cmd.Flags().GetInt("context")
	text, err := unifiedDiff(*out.Diff, args[0], args[1], lines)
	if err != nil {
		return fmt.Errorf("failed to render diff: %w", err)
	}
	cmd.Print(text)

	if exitCode, _ := cmd.Flags().GetBool("exit-code"); exitCode {
		return errDocumentsDiffer
	}
	return nil
}

// unifiedDiff renders a diff outcome. An empty line diff still means the
// texts differ, so it gets an explicit marker.
func unifiedDiff(diff domain.DiffOutcome, fromFile, toFile string, context int) (string, error) {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(diff.Original),
		B:        difflib.SplitLines(diff.Modified),
		FromFile: fromFile,
		ToFile:   toFile,
		Context:  context,
	})
	if err != nil {
		return "", err
	}
	if text == "" {
		text = fmt.Sprintf("--- %s\n+++ %s\n(texts differ only in line endings)\n", fromFile, toFile)
	}
	return text, nil
}
