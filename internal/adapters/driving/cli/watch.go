package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/ycard/internal/core/domain"
	"github.com/custodia-labs/ycard/internal/core/ports/driving"
	"github.com/custodia-labs/ycard/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-validate a contact list whenever it changes",
	Long: `Watch a YAML contact list and validate it every time it is written.
With --save, each valid version is also stored.

Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Bool("save", false, "store every valid version")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", args[0], err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	session, buf, err := openSession(string(data))
	if err != nil {
		return err
	}
	defer session.Close()

	save, _ := cmd.Flags().GetBool("save")
	check := func() {
		printOutcome(cmd, runCheck(cmd.Context(), session, save))
	}

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", args[0])
	check()

	return watchFile(cmd.Context(), path, func() {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("watch: read %s: %v", path, err)
			return
		}
		buf.SetValue(string(data))
		check()
	})
}

func runCheck(ctx context.Context, session driving.SessionService, save bool) domain.Outcome {
	if save {
		return session.Save(ctx)
	}
	return session.Validate()
}

// printOutcome prints an outcome line whether or not it succeeded.
func printOutcome(cmd *cobra.Command, out domain.Outcome) {
	cmd.Printf("%s %s\n", out.Category.Icon(), out.Message)
}

// watchFile calls onChange after each write to path until ctx is done.
// The parent directory is watched so editors that replace the file on save
// are still seen.
func watchFile(ctx context.Context, path string, onChange func()) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				logger.Debug("watch: %s %s", ev.Op, ev.Name)
				onChange()
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch: %v", err)
		}
	}
}
