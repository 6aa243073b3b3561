package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"orbitfx/internal/app"
	"orbitfx/internal/config/logger"
	"orbitfx/internal/core"
)

// buildRunCommand creates the run subcommand
func buildRunCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "run",
		Aliases: []string{"r"},
		Short:   "Open a window and animate the configured scene",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := app.BuildScene(e.cfg)
			if err != nil {
				return err
			}
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			reloads, err := e.reloads(ctx)
			if err != nil {
				return err
			}
			e.log.Info().Str("scene", scene.Name()).Int("width", e.cfg.Window.Width).Int("height", e.cfg.Window.Height).Msg("Starting window host")
			return app.Run(ctx, e.cfg, scene, reloads, e.log)
		},
	}
}

// buildTermCommand creates the term subcommand
func buildTermCommand(e *env) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:     "term",
		Aliases: []string{"t"},
		Short:   "Animate the configured scene in the terminal",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := app.BuildScene(e.cfg)
			if err != nil {
				return err
			}

			// The screen owns the terminal, so logs go to a file or nowhere.
			log := logger.Nop()
			if logFile != "" {
				f, err := openLogFile(logFile)
				if err != nil {
					return err
				}
				defer f.Close()
				log = logger.NewLoggerWithOutput(e.cfg, f)
			}
			e.log = log

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("init terminal: %w", err)
			}
			defer screen.Fini()

			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			reloads, err := e.reloads(ctx)
			if err != nil {
				return err
			}

			host := app.NewTerminalHost(screen, scene, e.cfg, nil, log)
			return host.Run(ctx, reloads)
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file while the terminal is in use")
	return cmd
}

// buildTraceCommand creates the trace subcommand
func buildTraceCommand(e *env) *cobra.Command {
	var (
		ticks    int
		deltaMs  float64
		withDots bool
	)

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Advance the scene headlessly and print one JSON frame per tick",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ticks < 0 {
				return fmt.Errorf("ticks must not be negative, got %d", ticks)
			}
			scene, err := app.BuildScene(e.cfg)
			if err != nil {
				return err
			}
			e.log.Debug().Str("scene", scene.Name()).Int("ticks", ticks).Float64("delta_ms", deltaMs).Msg("Tracing scene")
			return app.Trace(cmd.OutOrStdout(), scene, ticks, deltaMs, withDots)
		},
	}

	cmd.Flags().IntVarP(&ticks, "ticks", "n", 60, "Number of ticks to advance")
	cmd.Flags().Float64VarP(&deltaMs, "delta", "d", 1000.0/60, "Milliseconds per tick")
	cmd.Flags().BoolVar(&withDots, "dots", false, "Include ring dots in every frame")
	return cmd
}

// buildParamsCommand creates the params subcommand
func buildParamsCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Show the effective tunables of the configured scene",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := app.BuildScene(e.cfg)
			if err != nil {
				return err
			}
			snapshot, ok := app.Parameters(scene)
			if !ok {
				snapshot = core.ParameterSnapshot{}
			}
			_, err = io.WriteString(cmd.OutOrStdout(), RenderParameters(scene.Name(), snapshot)+"\n")
			return err
		},
	}
}

// buildScenesCommand creates the scenes subcommand
func buildScenesCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "scenes",
		Short: "List the available scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), RenderScenes(core.SceneNames(), e.cfg.Scene.Name)+"\n")
			return err
		},
	}
}

// buildConfigCommand creates the config subcommand
func buildConfigCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := e.cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// buildSweepCommand creates the sweep subcommand
func buildSweepCommand(e *env) *cobra.Command {
	var (
		vary    []string
		ticks   int
		deltaMs float64
		workers int
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run the scene headlessly over combinations of parameter values",
		Example: `  orbitfx sweep --vary count=10,20,40 --vary base_speed=0.03,0.06
  orbitfx sweep --vary lifetime_min=200,1000 --ticks 1200`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			axes := make([]app.SweepAxis, 0, len(vary))
			for _, v := range vary {
				axis, err := app.ParseAxis(v)
				if err != nil {
					return err
				}
				axes = append(axes, axis)
			}

			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			total := len(app.Combinations(axes))
			e.log.Info().Int("scenarios", total).Int("workers", workers).Int("ticks", ticks).Msg("Sweeping parameters")

			results, err := app.Sweep(ctx, e.cfg, axes, ticks, deltaMs, workers)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), RenderSweep(axes, results)+"\n")
			return err
		},
	}

	cmd.Flags().StringArrayVar(&vary, "vary", nil, "Parameter values to combine as key=v1,v2 (repeatable)")
	cmd.Flags().IntVarP(&ticks, "ticks", "n", 600, "Ticks to simulate per scenario")
	cmd.Flags().Float64VarP(&deltaMs, "delta", "d", 1000.0/60, "Milliseconds per tick")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "Number of worker goroutines")
	return cmd
}
