package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/ycard/internal/logger"
)

var saveCmd = &cobra.Command{
	Use:   "save [file|-]",
	Short: "Validate a contact list and store it",
	Long: `Validate a YAML contact list and, when it passes, store it as the
current yCard record. An invalid list is never written and leaves the
stored record unchanged.

Reads stdin when the file is "-" or omitted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSave,
}

func init() {
	saveCmd.Flags().Bool("log", false, "print the activity log")
	rootCmd.AddCommand(saveCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	session, _, err := openSession(text)
	if err != nil {
		return err
	}
	defer session.Close()

	logger.Section("Save")
	out := session.Save(cmd.Context())

	if showLog, _ := cmd.Flags().GetBool("log"); showLog {
		defer printLog(cmd, session)
	}
	return report(cmd, out)
}
