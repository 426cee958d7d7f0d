package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/snapcode/internal/config"
	"github.com/alexisbeaulieu97/snapcode/internal/highlight"
	"github.com/alexisbeaulieu97/snapcode/internal/preview"
	"github.com/alexisbeaulieu97/snapcode/internal/tui"
)

type previewFlags struct {
	snippetFlags
	interactive bool
}

var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	flags := &previewFlags{}

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Preview highlighted code in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root, func(cfg *config.Config) {
				flags.apply(cmd, cfg)
			})
			if err != nil {
				return err
			}
			return runPreview(cmd, app, flags, args)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "Pick a theme interactively")

	return cmd
}

// themeChoice is printed after an interactive session in config file form.
type themeChoice struct {
	Theme       string `yaml:"theme"`
	LineNumbers bool   `yaml:"line_numbers"`
}

func runPreview(cmd *cobra.Command, app *appContext, flags *previewFlags, args []string) error {
	snippet, err := flags.readSnippet(cmd, args, app.cfg)
	if err != nil {
		return err
	}

	req := buildRequest(app.cfg, snippet)
	hl, err := app.service.Highlight(cmd.Context(), req)
	if err != nil {
		return err
	}

	show := func(themeID string, lineNumbers bool) string {
		th := app.themes.Get(themeID)
		return preview.Render(highlight.Colorize(hl.Tokens, th), th, preview.Options{
			Title:       req.Filename,
			LineNumbers: lineNumbers,
			Padding:     1,
		})
	}

	out := cmd.OutOrStdout()
	if flags.interactive {
		if stdoutIsTerminal() {
			model := tui.NewModel(app.themes.All(), hl.Theme.ID, req.LineNumbers, show)
			sel, err := tui.Run(model, tea.WithAltScreen())
			if err != nil {
				return err
			}
			if !sel.Confirmed {
				return nil
			}
			data, err := yaml.Marshal(themeChoice{Theme: sel.Theme, LineNumbers: sel.LineNumbers})
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		}
		app.log.Warn("stdout is not a terminal, printing a static preview")
	}

	fmt.Fprintln(out, show(hl.Theme.ID, req.LineNumbers))
	return nil
}
