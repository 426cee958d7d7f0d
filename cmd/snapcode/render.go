package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/snapcode/internal/app/render"
	"github.com/alexisbeaulieu97/snapcode/internal/config"
	"github.com/alexisbeaulieu97/snapcode/internal/export"
	"github.com/alexisbeaulieu97/snapcode/internal/watcher"
	snaperrors "github.com/alexisbeaulieu97/snapcode/pkg/errors"
)

type renderFlags struct {
	snippetFlags
	output string
	format string
	scale  float64
	watch  bool
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a code snippet to PNG or PDF",
		Long: `Render a code snippet as an image framed by a window with a title bar.
Code is read from the file argument, or from stdin when the argument is
omitted or "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root, func(cfg *config.Config) {
				flags.apply(cmd, cfg)
				if cmd.Flags().Changed("output") {
					cfg.Output = flags.output
				}
				if cmd.Flags().Changed("scale") {
					cfg.Scale = flags.scale
				}
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return runRender(ctx, cmd, app, flags, args)
		},
	}

	defaults := config.Defaults()
	flags.register(cmd)
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", `Output path, "-" for stdout (default <filename>.<format>)`)
	cmd.Flags().StringVar(&flags.format, "format", defaults.Format, "Output format: png or pdf")
	cmd.Flags().Float64Var(&flags.scale, "scale", defaults.Scale, "Device pixel ratio")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "Re-render whenever the input file changes")

	return cmd
}

func runRender(ctx context.Context, cmd *cobra.Command, app *appContext, flags *renderFlags, args []string) error {
	if !flags.watch {
		return renderOnce(ctx, cmd, app, flags, args)
	}

	if len(args) == 0 || args[0] == "-" || flags.gitRev != "" {
		return snaperrors.NewValidationError("watch", "--watch needs a file on disk", nil)
	}

	w, err := watcher.New(watcher.Config{Path: args[0], Logger: app.log})
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	changes, err := w.Start()
	if err != nil {
		return err
	}

	if err := renderOnce(ctx, cmd, app, flags, args); err != nil {
		app.log.Error(err, "render failed")
	}
	app.log.Info("watching " + args[0])

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			if err := renderOnce(ctx, cmd, app, flags, args); err != nil {
				app.log.Error(err, "render failed")
			}
		}
	}
}

func renderOnce(ctx context.Context, cmd *cobra.Command, app *appContext, flags *renderFlags, args []string) error {
	snippet, err := flags.readSnippet(cmd, args, app.cfg)
	if err != nil {
		return err
	}

	req := buildRequest(app.cfg, snippet)
	format, err := resolveFormat(cmd.Flags().Changed("format"), flags.format, app.cfg.Output, app.cfg.Format)
	if err != nil {
		return err
	}

	res, err := app.service.Render(ctx, req)
	if err != nil {
		return err
	}

	dest := app.cfg.Output
	if dest == "" {
		dest = export.FileName(req.Filename, format)
	}

	if dest == "-" {
		return app.service.Export(ctx, res, format, cmd.OutOrStdout())
	}

	if err := writeFile(ctx, app, res, format, dest); err != nil {
		return err
	}

	b := res.Image.Bounds()
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%dx%d)\n", dest, b.Dx(), b.Dy())
	return nil
}

func writeFile(ctx context.Context, app *appContext, res *render.Result, format export.Format, dest string) (err error) {
	f, err := os.Create(dest)
	if err != nil {
		return snaperrors.NewExportError(string(format), dest, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = snaperrors.NewExportError(string(format), dest, cerr)
		}
		if err != nil {
			_ = os.Remove(dest)
		}
	}()

	if err := app.service.Export(ctx, res, format, f); err != nil {
		var eerr *snaperrors.ExportError
		if errors.As(err, &eerr) && eerr.Path == "" {
			eerr.Path = dest
		}
		return err
	}
	return nil
}
