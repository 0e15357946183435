package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	vector "github.com/axondata/go-vector"
)

func newSplitCmd(a *app) *cobra.Command {
	var (
		seps string
		null bool
	)

	cmd := &cobra.Command{
		Use:   "split [STRING...]",
		Short: "Split strings into fields, one per line",
		Long: `Split breaks each STRING (or each line of standard input when no
STRING is given) at any run of separator characters and prints the fields.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("sep") {
				seps = a.config.Separators
			}
			terminator := "\n"
			if null {
				terminator = "\x00"
			}

			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				args = []string{string(data)}
			}

			var fields *vector.Vector
			out := cmd.OutOrStdout()
			for _, s := range args {
				var err error
				if fields, err = vector.SplitMulti(s, seps, fields); err != nil {
					return err
				}
				a.logger.Debug("split", "fields", fields.Len(), "cap", fields.Cap())
				for i := range fields.Len() {
					if _, err := fmt.Fprintf(out, "%s%s", fields.At(i), terminator); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&seps, "sep", "s", "", "separator characters (default from config)")
	cmd.Flags().BoolVarP(&null, "null", "z", false, "terminate fields with NUL instead of newline")
	return cmd
}
