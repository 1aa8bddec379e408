package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/gamma-omg/tradeview/internal/config"
	"github.com/gamma-omg/tradeview/internal/dashboard"
	"github.com/gamma-omg/tradeview/internal/render"
	"github.com/gamma-omg/tradeview/internal/report"
	"github.com/gamma-omg/tradeview/internal/source"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type app struct {
	cfgPath string
	verbose bool
	log     *slog.Logger
	cfg     *config.Config
	ref     *dashboard.Refresher
}

func main() {
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "tradeview",
		Short:         "Trading performance charts and statistics",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", os.Getenv("CONFIG"), "path to the yaml config")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug messages")

	root.AddCommand(a.renderCmd(), a.reportCmd(), a.exportCmd(), a.watchCmd())
	return root
}

func (a *app) init() error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if a.cfgPath == "" {
		return errors.New("no config given: use --config or CONFIG")
	}

	cfg, err := config.ReadFromFile(a.cfgPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	src, err := source.Create(a.log, *cfg)
	if err != nil {
		return fmt.Errorf("failed to create record source: %w", err)
	}
	a.ref = dashboard.NewRefresher(a.log, src)

	return nil
}

func (a *app) renderCmd() *cobra.Command {
	var out, format string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write every chart as an image file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = a.cfg.Output.Dir
			}
			if format == "" {
				format = a.cfg.Output.Format
			}
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}

			v, err := a.ref.Refresh(cmd.Context(), *a.cfg)
			if err != nil {
				return err
			}

			return a.render(v, out, f)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output directory")
	cmd.Flags().StringVar(&format, "format", "", "svg or png")

	return cmd
}

func (a *app) render(v *dashboard.View, dir string, f render.Format) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	vp := a.cfg.Charts.Viewport()
	opt := dashboard.RenderOptions(a.cfg.Charts)
	for _, c := range v.Charts() {
		path := filepath.Join(dir, c.Name+"."+string(f))
		err := writeFile(path, func(w io.Writer) error {
			return render.Save(w, c, vp, opt, f)
		})
		if err != nil {
			return err
		}
	}

	p, err := report.EquityPlot(v, int(vp.Width), int(vp.Height))
	if errors.Is(err, report.ErrNoData) {
		a.log.Info("reference plot skipped, no operations")
		return nil
	}
	if err != nil {
		return err
	}

	return writeFile(filepath.Join(dir, "reference.png"), func(w io.Writer) error {
		_, err := p.WriteTo(w)
		return err
	})
}

func (a *app) reportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the performance summary as json",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.ref.Refresh(cmd.Context(), *a.cfg)
			if err != nil {
				return err
			}

			r := report.NewJsonReportBuilder(a.log)
			r.SubmitView(v)
			if out == "" {
				return r.Write(cmd.OutOrStdout())
			}
			return writeFile(out, r.Write)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output file, stdout when empty")

	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the derived series as csv files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = a.cfg.Output.Dir
			}

			v, err := a.ref.Refresh(cmd.Context(), *a.cfg)
			if err != nil {
				return err
			}

			return report.Export(out, v)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output directory")

	return cmd
}

func (a *app) watchCmd() *cobra.Command {
	var every time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Refresh periodically and print the summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			r := report.NewJsonReportBuilder(a.log)

			t := time.NewTicker(every)
			defer t.Stop()

			for {
				v, err := a.ref.Refresh(ctx, *a.cfg)
				switch {
				case errors.Is(err, dashboard.ErrStale):
					a.log.Debug("refresh superseded")
				case ctx.Err() != nil:
					return nil
				case err != nil:
					a.log.Error("failed to refresh dashboard", "error", err)
				default:
					r.SubmitView(v)
					if err := r.Write(cmd.OutOrStdout()); err != nil {
						return err
					}
				}

				select {
				case <-ctx.Done():
					return nil
				case <-t.C:
				}
			}
		},
	}
	cmd.Flags().DurationVar(&every, "every", time.Minute, "refresh interval")

	return cmd
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close %s: %w", path, cerr))
		}
	}()

	return write(f)
}
