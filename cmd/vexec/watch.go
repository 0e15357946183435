package main

import (
	"fmt"

	"github.com/spf13/cobra"

	vector "github.com/axondata/go-vector"
)

func newWatchCmd(a *app) *cobra.Command {
	var wait []string

	cmd := &cobra.Command{
		Use:   "watch DIR",
		Short: "Print an env directory every time it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			dir := args[0]
			out := cmd.OutOrStdout()

			if len(wait) > 0 {
				a.logger.Info("waiting for variables", "dir", dir, "names", wait)
				env, err := vector.WaitEnvDir(ctx, dir, wait...)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, env.Join(" "))
				return err
			}

			events, cleanup, err := vector.WatchEnvDir(ctx, dir)
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			a.logger.Info("watching env directory", "dir", dir)
			for event := range events {
				if event.Err != nil {
					a.logger.Warn("reading env directory", "dir", dir, "err", event.Err)
					continue
				}
				if _, err := fmt.Fprintln(out, event.Env.Join(" ")); err != nil {
					return err
				}
			}
			a.logger.Debug("watch stopped", "dir", dir)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&wait, "wait", nil, "print once all NAMES are set, then exit")
	return cmd
}
