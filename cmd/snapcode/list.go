package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/snapcode/internal/fonts"
	"github.com/alexisbeaulieu97/snapcode/internal/grammar"
)

type listOptions struct {
	jsonOutput bool
}

type listEntry struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Detail string `json:"detail,omitempty"`
}

func newThemesCmd(root *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List available color themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root, nil)
			if err != nil {
				return err
			}

			var entries []listEntry
			for _, info := range app.themes.All() {
				detail := ""
				if info.ID == app.cfg.Theme {
					detail = "default"
				}
				entries = append(entries, listEntry{ID: info.ID, Name: info.Name, Detail: detail})
			}
			return renderList(cmd.OutOrStdout(), entries, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	return cmd
}

func newLanguagesCmd() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var entries []listEntry
			for _, info := range grammar.All() {
				entries = append(entries, listEntry{ID: info.ID, Name: info.Name, Detail: grammar.Get(info.ID).Extension})
			}
			return renderList(cmd.OutOrStdout(), entries, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	return cmd
}

func newFontsCmd() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "fonts",
		Short: "List available fonts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := fonts.Default()
			var entries []listEntry
			for _, info := range reg.All() {
				detail := "remote"
				if reg.Get(info.ID).Embedded() {
					detail = "embedded"
				}
				entries = append(entries, listEntry{ID: info.ID, Name: info.Name, Detail: detail})
			}
			return renderList(cmd.OutOrStdout(), entries, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	return cmd
}

func renderList(w io.Writer, entries []listEntry, opts *listOptions) error {
	if opts.jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\t")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.ID, e.Name, e.Detail)
	}
	return tw.Flush()
}
