package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot/pkg/session"
)

var (
	runWatch  bool
	runStrict bool
)

var runCmd = &cobra.Command{
	Use:   "run <pattern>...",
	Short: "Replay session scripts",
	Long: `Run every script matched by the given patterns (doublestar globs such as
"sessions/**/*.jot"). Each script gets its own empty store. With --watch,
a script is run again whenever it changes.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		files, err := session.Expand(args)
		if err != nil {
			return err
		}
		if len(files) == 0 && !runWatch {
			return fmt.Errorf("no scripts match %v", args)
		}

		var failed []error
		for _, path := range files {
			if err := runScript(ctx, path); err != nil {
				failed = append(failed, fmt.Errorf("%s: %w", path, err))
			}
		}

		if !runWatch {
			return errors.Join(failed...)
		}

		for _, err := range failed {
			slog.Error("script failed", "error", err)
		}
		w := &session.Watcher{
			Patterns: args,
			Run:      runScript,
			Logger:   slog.Default(),
		}
		slog.Info("watching for changes", "patterns", args)
		return w.Watch(ctx)
	},
}

func runScript(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sess, _, err := newSession(os.Stdout, session.WithStopOnError(runStrict))
	if err != nil {
		return err
	}
	fmt.Printf("== %s\n", path)
	return sess.Run(ctx, f, false)
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVarP(&runWatch, "watch", "w", false, "Re-run scripts when they change")
	runCmd.Flags().BoolVar(&runStrict, "strict", false, "Stop a script at its first failing command")
}
