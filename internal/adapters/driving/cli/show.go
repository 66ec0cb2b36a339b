package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ycard/internal/core/domain"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored contact list",
	Long:  `Print the people in the stored yCard record.`,
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func init() {
	showCmd.Flags().Bool("json", false, "print the stored document as JSON")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	record, err := recordService.Load(cmd.Context())
	if errors.Is(err, domain.ErrNotFound) {
		cmd.Println("Nothing saved yet.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load record: %w", err)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		var out bytes.Buffer
		if err := json.Indent(&out, record.Data, "", "  "); err != nil {
			return fmt.Errorf("failed to format record: %w", err)
		}
		cmd.Println(out.String())
		return nil
	}

	cmd.Printf("Record:   %s\n", record.Key)
	cmd.Printf("Revision: %s\n", record.Revision)
	cmd.Printf("Updated:  %s\n", record.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
	cmd.Printf("People:   %d\n", record.Count())
	cmd.Println()

	for i, p := range record.People {
		cmd.Printf("%d. %s <%s>\n", i+1, p.DisplayName(), p.Email)
		cmd.Printf("   uid: %s\n", p.UID)
		if p.Org != "" {
			cmd.Printf("   org: %s\n", p.Org)
		}
		if p.Title != "" {
			cmd.Printf("   title: %s\n", p.Title)
		}
		if len(p.Phone) > 0 {
			cmd.Printf("   phones: %d\n", len(p.Phone))
		}
	}

	return nil
}
