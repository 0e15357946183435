package main

import (
	"io"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	vector "github.com/axondata/go-vector"
)

// execFunc replaces the current process image
type execFunc func(path string, argv, env *vector.Vector) error

// app carries the state shared by every subcommand
type app struct {
	viper  *viper.Viper
	config Config
	logger *log.Logger

	exec     execFunc
	lookPath func(file string) (string, error)
	environ  func() (*vector.Vector, error)
}

func newApp() *app {
	return &app{
		viper:    newViper(),
		config:   DefaultConfig(),
		logger:   log.NewWithOptions(os.Stderr, log.Options{Prefix: "vexec"}),
		exec:     vector.ExecEnv,
		lookPath: exec.LookPath,
		environ:  vector.Environ,
	}
}

func newRootCmd(a *app) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "vexec",
		Short:         "Build argument and environment vectors and exec programs",
		Version:       vector.GetVersion().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(a.viper, configPath)
			if err != nil {
				return &ExitError{Code: exitUsage, Err: err}
			}
			a.config = cfg
			a.setOutput(cmd.ErrOrStderr())
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "enable debug logging")
	flags.StringVar(&configPath, "config", "", "path to a config file")
	_ = a.viper.BindPFlag("verbose", flags.Lookup("verbose"))

	cmd.AddCommand(
		newRunCmd(a),
		newSplitCmd(a),
		newEnvDirCmd(a),
		newWatchCmd(a),
	)
	return cmd
}

// setOutput points the logger at w and applies the verbosity setting
func (a *app) setOutput(w io.Writer) {
	a.logger.SetOutput(w)
	if a.config.Verbose {
		a.logger.SetLevel(log.DebugLevel)
	} else {
		a.logger.SetLevel(log.InfoLevel)
	}
}
