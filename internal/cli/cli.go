// Package cli wires the orbitfx commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"orbitfx/internal/config"
	"orbitfx/internal/config/logger"
)

// env carries the state shared by every subcommand after the root pre-run.
type env struct {
	configPath string
	overrides  []string
	watch      bool
	logLevel   string

	cfg *config.Config
	log logger.Logger
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, errorStyle.Render("Error: "+err.Error()))
		return 1
	}
	return 0
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:   "orbitfx",
		Short: "Ambient orbit animation: drifting figures under rotating dot rings",
		Long: `orbitfx animates a field of translucent figures travelling on circular
orbits beneath two concentric rings of dots. It can render in a window,
in a terminal, or as a JSON trace for testing and tooling.`,
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.load(cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&e.configPath, "config", "c", config.DefaultConfigFile, "Path to the YAML config file")
	flags.StringArrayVar(&e.overrides, "set", nil, "Override a scene parameter as key=value (repeatable)")
	flags.BoolVarP(&e.watch, "watch", "w", false, "Reload the config file when it changes")
	flags.StringVar(&e.logLevel, "log-level", "", "Override the configured log level")

	root.AddCommand(
		buildRunCommand(e),
		buildTermCommand(e),
		buildTraceCommand(e),
		buildParamsCommand(e),
		buildScenesCommand(e),
		buildConfigCommand(e),
		buildSweepCommand(e),
	)

	return root
}

func (e *env) load(stderr io.Writer) error {
	cfg, err := config.Load(e.configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyOverrides(e.overrides); err != nil {
		return err
	}
	if e.logLevel != "" {
		cfg.Logging.Level = e.logLevel
	}

	e.cfg = cfg
	e.log = logger.NewLoggerWithOutput(cfg, stderr)
	return nil
}

// reloads starts the config watcher when --watch is set. Overrides from the
// command line are re-applied on top of every reloaded file.
func (e *env) reloads(ctx context.Context) (<-chan *config.Config, error) {
	if !e.watch {
		return nil, nil
	}

	log := e.log.WithComponent("WATCH")
	raw, err := config.Watch(e.configPath, func(err error) {
		log.Warn().Err(err).Msg("Config reload failed")
	})
	if err != nil {
		return nil, err
	}

	out := make(chan *config.Config, 1)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case cfg, ok := <-raw:
				if !ok {
					return
				}
				if err := cfg.ApplyOverrides(e.overrides); err != nil {
					log.Warn().Err(err).Msg("Config reload failed")
					continue
				}
				log.Debug().Str("path", e.configPath).Msg("Config file changed")
				select {
				case out <- cfg:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

func openLogFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
