package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"botanist/internal/bootstrap"
	"botanist/internal/platform/config"
	"botanist/internal/platform/logging"
	"botanist/internal/ui/render"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type globals struct {
	dir      string
	logLevel string
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:           "botanist",
		Short:         "Grow a garden out of focused work sessions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&g.dir, "dir", ".", "directory holding the garden and session files")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level override: trace|debug|info|warn|error")

	root.AddCommand(newStartCmd(g))
	root.AddCommand(newPauseCmd(g))
	root.AddCommand(newResumeCmd(g))
	root.AddCommand(newFinishCmd(g))
	root.AddCommand(newStatusCmd(g))
	root.AddCommand(newGardenCmd(g))
	root.AddCommand(newWeeklyCmd(g))
	root.AddCommand(newExportCmd(g))
	root.AddCommand(newBackupsCmd(g))
	root.AddCommand(newVerifyCmd(g))
	root.AddCommand(newGoalsCmd(g))
	root.AddCommand(newConfigCmd(g))
	root.AddCommand(newFlowersCmd(g))
	return root
}

func loadApp(g *globals) (*bootstrap.App, error) {
	cfg, err := config.New(g.dir)
	if err != nil {
		return nil, err
	}
	level := cfg.Settings.LogLevel
	if g.logLevel != "" {
		level = g.logLevel
	}
	return bootstrap.New(cfg, logging.New(level, os.Stderr))
}

func writeLine(w io.Writer, s string) {
	_, _ = fmt.Fprintln(w, s)
}

func newStartCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start a work session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(g)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Start(context.Background())
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), render.Start(out))
			return nil
		},
	}
}

func newPauseCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Pause the active session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(g)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Pause(context.Background())
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), render.Pause(out))
			return nil
		},
	}
}

func newResumeCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Resume the paused session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(g)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Resume(context.Background())
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), render.Resume(out))
			return nil
		},
	}
}

func newFinishCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "finish [description]",
		Short: "Finish the active session and plant its flower",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(g)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Finish(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), render.Finish(out))
			return nil
		},
	}
}

func newStatusCmd(g *globals) *cobra.Command {
	var watch bool
	status := &cobra.Command{
		Use:   "status",
		Short: "Show the active session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(g)
			if err != nil {
				return err
			}
			if watch {
				ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
				defer stop()
				return bootstrap.RunStatusView(ctx, app)
			}
			out, err := app.SessionCLI.Status(context.Background())
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), render.Status(out))
			return nil
		},
	}
	status.Flags().BoolVar(&watch, "watch", false, "keep a live view open")
	return status
}

func newGardenCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "garden",
		Short: "List saved sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(g)
			if err != nil {
				return err
			}
			out, err := app.GardenCLI.Garden(context.Background())
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), render.Garden(out))
			return nil
		},
	}
}

func newWeeklyCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "weekly",
		Short: "Show hours per week and weekday",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(g)
			if err != nil {
				return err
			}
			report, err := app.AnalyticsCLI.Weekly(context.Background())
			if err != nil {
				return err
			}
			if len(report.Weeks) == 0 {
				writeLine(cmd.OutOrStdout(), "no sessions to report")
				return nil
			}
			writeLine(cmd.OutOrStdout(), render.Weekly(report))
			return nil
		},
	}
}

func newExportCmd(g *globals) *cobra.Command {
	var outPath string
	export := &cobra.Command{
		Use:   "export",
		Short: "Export sessions as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(g)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if outPath != "" {
				file, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				defer file.Close()
				w = file
			}
			out, err := app.GardenCLI.Export(context.Background(), w)
			if err != nil {
				return err
			}
			if outPath != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d session(s) to %s\n", out.Count, outPath)
			}
			return nil
		},
	}
	export.Flags().StringVar(&outPath, "out", "", "write to a file instead of stdout")
	return export
}

func newBackupsCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "backups",
		Short: "List garden backups, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(g)
			if err != nil {
				return err
			}
			backups, err := app.GardenCLI.Backups(context.Background())
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), render.Backups(backups))
			return nil
		},
	}
}

func newVerifyCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the garden file and recover it from backups if needed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(g)
			if err != nil {
				return err
			}
			out, err := app.GardenCLI.Verify(context.Background())
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), render.Verify(out))
			return nil
		},
	}
}

func newGoalsCmd(g *globals) *cobra.Command {
	goals := &cobra.Command{Use: "goals", Short: "Daily and weekly progress"}

	goals.AddCommand(&cobra.Command{
		Use:   "today",
		Short: "Show today's focus time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(g)
			if err != nil {
				return err
			}
			out, err := app.AnalyticsCLI.Today(context.Background())
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), render.Today(out))
			return nil
		},
	})

	var date string
	week := &cobra.Command{
		Use:   "week",
		Short: "Show progress against the weekly goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var weekStart time.Time
			if date != "" {
				parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
				if err != nil {
					return fmt.Errorf("--date must look like 2025-09-01: %w", err)
				}
				weekStart = parsed
			}
			app, err := loadApp(g)
			if err != nil {
				return err
			}
			out, err := app.AnalyticsCLI.Week(context.Background(), weekStart)
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), render.Week(out))
			return nil
		},
	}
	week.Flags().StringVar(&date, "date", "", "any day of the week to show (default: this week)")

	var minutes, sessions int
	set := &cobra.Command{
		Use:   "set --minutes <n> --sessions <n>",
		Short: "Set the weekly goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if minutes == 0 && sessions == 0 {
				return fmt.Errorf("--minutes or --sessions is required")
			}
			app, err := loadApp(g)
			if err != nil {
				return err
			}
			out, err := app.AnalyticsCLI.SetWeeklyGoal(context.Background(), minutes, sessions)
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), render.Goal(out))
			return nil
		},
	}
	set.Flags().IntVar(&minutes, "minutes", 0, "weekly minutes target (60..3360)")
	set.Flags().IntVar(&sessions, "sessions", 0, "weekly sessions target (3..140)")

	goals.AddCommand(week, set)
	return goals
}

func newConfigCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New(g.dir)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", cfg.FilePath)
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg.Settings); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return enc.Close()
		},
	}
}

func newFlowersCmd(g *globals) *cobra.Command {
	var minutes float64
	flowers := &cobra.Command{
		Use:   "flowers",
		Short: "Show the flower for each duration tier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(g)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("minutes") {
				f, err := app.FlowerCLI.Assign(context.Background(), minutes*60)
				if err != nil {
					return err
				}
				writeLine(cmd.OutOrStdout(), render.Flower(f.Name, f.Art))
				return nil
			}
			samples, err := app.FlowerCLI.Samples(context.Background())
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), render.Samples(samples))
			return nil
		},
	}
	flowers.Flags().Float64Var(&minutes, "minutes", 0, "show the flower a session of this many minutes earns")
	return flowers
}
