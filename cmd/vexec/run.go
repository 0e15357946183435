package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	vector "github.com/axondata/go-vector"
)

type runOptions struct {
	envDirs  []string
	env      []string
	clearEnv bool
	argv0    string
}

func newRunCmd(a *app) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run [flags] PROGRAM [ARG...]",
		Short: "Replace vexec with PROGRAM",
		Long: `Run replaces the vexec process with PROGRAM. The environment starts
from the current one (or empty with --clear-env), then each env directory
is applied in order, then each --env assignment.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(args, opts)
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringArrayVarP(&opts.envDirs, "envdir", "e", nil, "apply an env directory (repeatable)")
	cmd.Flags().StringArrayVar(&opts.env, "env", nil, "set NAME=value (repeatable)")
	cmd.Flags().BoolVar(&opts.clearEnv, "clear-env", false, "start from an empty environment")
	cmd.Flags().StringVar(&opts.argv0, "argv0", "", "override the program's argv[0]")
	return cmd
}

func (a *app) run(args []string, opts runOptions) error {
	env, err := a.buildEnv(opts)
	if err != nil {
		return &ExitError{Code: exitExec, Err: err}
	}

	argvs := slices.Clone(args)
	if opts.argv0 != "" {
		argvs[0] = opts.argv0
	}
	argv, err := vector.FromStrings(argvs)
	if err != nil {
		return &ExitError{Code: exitExec, Err: err}
	}

	path, err := a.lookPath(args[0])
	if err != nil {
		a.logger.Error("could not find program", "program", args[0], "err", err)
		return &ExitError{Code: exitExec, Err: err}
	}

	a.logger.Debug("executing", "path", path, "argv", argv.Join(" "), "env", env.Len())
	err = a.exec(path, argv, env)
	if err == nil {
		return nil
	}
	a.logger.Error("could not execute", "path", path, "err", err)
	return &ExitError{Code: exitExec, Err: err}
}

// buildEnv assembles the environment for run from the flags and config
func (a *app) buildEnv(opts runOptions) (*vector.Vector, error) {
	var env *vector.Vector
	if opts.clearEnv {
		env = vector.New()
	} else {
		var err error
		if env, err = a.environ(); err != nil {
			return nil, err
		}
	}

	dirs := append(append([]string{}, a.config.EnvDirs...), opts.envDirs...)
	for _, dir := range dirs {
		a.logger.Debug("applying env directory", "dir", dir)
		if err := vector.ApplyEnvDir(env, dir); err != nil {
			return nil, err
		}
	}

	for _, kv := range opts.env {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("--env %q: missing '='", kv)
		}
		if err := env.Setenv(name, value); err != nil {
			return nil, fmt.Errorf("--env %q: %w", kv, err)
		}
	}
	return env, nil
}
