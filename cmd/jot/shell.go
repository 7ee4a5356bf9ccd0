package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	jotlifecycle "github.com/aretw0/jot/pkg/adapters/lifecycle"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive note session",
	Long: `Start an interactive session reading one command per line from stdin.
Notes are kept in memory and discarded on exit. Type "help" for commands.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		sess, svc, err := newSession(os.Stdout)
		if err != nil {
			fatal("Failed to initialize jot", err)
		}

		events, err := svc.Watch(ctx)
		if err != nil {
			return err
		}
		feed := jotlifecycle.NewFeed(events)
		if err := feed.Start(ctx); err != nil {
			return err
		}
		sess.Attach(feed)
		go func() {
			for e := range feed.Events() {
				slog.Debug("note changed", "change", e)
			}
		}()

		interactive := isInteractive(os.Stdin)
		if interactive {
			fmt.Println(`jot shell. Type "help" for commands, "quit" to leave.`)
		}
		return sess.Run(ctx, os.Stdin, interactive)
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
