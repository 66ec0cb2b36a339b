package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/ycard/internal/logger"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file|-]",
	Short: "Check a contact list against the yCard rules",
	Long: `Parse a YAML contact list and check it against the yCard rules.

The list must have a top-level "people" sequence. Every person needs a
non-blank uid, name, surname and email; phone, when given, must be a list;
address must not be a list. Checking stops at the first problem.

Reads stdin when the file is "-" or omitted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().Bool("log", false, "print the activity log")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	session, _, err := openSession(text)
	if err != nil {
		return err
	}
	defer session.Close()

	logger.Section("Validate")
	out := session.Validate()

	if showLog, _ := cmd.Flags().GetBool("log"); showLog {
		defer printLog(cmd, session)
	}
	return report(cmd, out)
}
