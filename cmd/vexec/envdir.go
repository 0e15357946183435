package main

import (
	"fmt"

	"github.com/spf13/cobra"

	vector "github.com/axondata/go-vector"
)

func newEnvDirCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "envdir DIR [NAME=value...]",
		Short: "Print or update an env directory",
		Long: `With only DIR, envdir prints the variables stored in DIR as NAME=value
lines. Each NAME=value argument is written to DIR atomically.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if len(args) > 1 {
				env, err := vector.FromStrings(args[1:])
				if err != nil {
					return err
				}
				a.logger.Debug("writing env directory", "dir", dir, "vars", env.Len())
				return vector.WriteEnvDir(dir, env)
			}

			env, err := vector.ReadEnvDir(dir, nil)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, kv := range env.Strings() {
				if _, err := fmt.Fprintln(out, kv); err != nil {
					return err
				}
			}
			return nil
		},
	}
	return cmd
}
