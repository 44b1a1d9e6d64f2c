package main

import (
	"fmt"

	"github.com/fwojciec/brochure"
	bt "github.com/fwojciec/brochure/bubbletea"
	"github.com/fwojciec/brochure/config"
	"github.com/fwojciec/brochure/goldmark"
	"github.com/fwojciec/brochure/inline"
	brochurejson "github.com/fwojciec/brochure/json"
	"github.com/fwojciec/brochure/markdown"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render [text...]",
		Short: "Render inline markup from arguments or stdin",
		Long: "Render inline markup (**bold** and [text](url) links) in the chosen format.\n" +
			"Paragraphs are separated by a blank line. With no arguments, stdin is read.",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := getConfig(cmd)
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch c.Format {
			case config.FormatHTML:
				_, err = fmt.Fprintln(out, goldmark.Render(text))
			case config.FormatJSON:
				var data []byte
				data, err = brochurejson.MarshalDocument(inline.Render(text))
				if err == nil {
					_, err = fmt.Fprintln(out, string(data))
				}
			default:
				_, err = fmt.Fprintln(out, markdown.Render(text, wrapWidth(c), c.Theme,
					markdown.WithMaxURLWidth(c.MaxURLWidth)))
			}
			return err
		},
	}
}

func newShowCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "show [dashboard]",
		Short: "Print a dashboard",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := getConfig(cmd)
			d, err := loadDashboard(c, args)
			if err != nil {
				return err
			}
			var open []int
			if all {
				open = allIndices(d)
			}

			out := cmd.OutOrStdout()
			switch c.Format {
			case config.FormatHTML:
				_, err = fmt.Fprintln(out, goldmark.RenderDashboard(d, open...))
			case config.FormatJSON:
				var data []byte
				data, err = brochurejson.MarshalDashboard(d)
				if err == nil {
					_, err = fmt.Fprintln(out, string(data))
				}
			default:
				_, err = fmt.Fprintln(out, bt.Render(d, c.Theme,
					bt.Config{MaxURLWidth: c.MaxURLWidth}, wrapWidth(c), open...))
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "expand every FAQ answer")
	return cmd
}

func newFAQCmd() *cobra.Command {
	var (
		open []int
		all  bool
	)
	cmd := &cobra.Command{
		Use:   "faq [dashboard]",
		Short: "Print a dashboard's FAQ with the chosen answers expanded",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := getConfig(cmd)
			d, err := loadDashboard(c, args)
			if err != nil {
				return err
			}
			if all {
				open = allIndices(d)
			}
			if err := checkOpen(d, open); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch c.Format {
			case config.FormatHTML:
				_, err = fmt.Fprintln(out, goldmark.RenderFAQ(d.FAQ, open...))
			case config.FormatJSON:
				var data []byte
				data, err = brochurejson.MarshalDashboard(brochure.Dashboard{Name: d.Name, FAQ: d.FAQ})
				if err == nil {
					_, err = fmt.Fprintln(out, string(data))
				}
			default:
				faq := bt.NewFAQBlock(d.FAQ, c.Theme, bt.NewStyles(c.Theme),
					markdown.WithMaxURLWidth(c.MaxURLWidth))
				faq.Expand(open...)
				faq.Blur()
				_, err = fmt.Fprintln(out, faq.View(wrapWidth(c)))
			}
			return err
		},
	}
	cmd.Flags().IntSliceVar(&open, "open", nil, "indices of the answers to expand (e.g. 0,2)")
	cmd.Flags().BoolVar(&all, "all", false, "expand every answer")
	return cmd
}

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [dashboard]",
		Short: "Browse a dashboard interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := getConfig(cmd)
			d, err := loadDashboard(c, args)
			if err != nil {
				return err
			}
			m := bt.New(d, c.Theme, bt.Config{MaxURLWidth: c.MaxURLWidth})
			return bt.Run(cmd.Context(), m)
		},
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file...]",
		Short: "Check dashboard files, or every available dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			type entry struct {
				label string
				d     brochure.Dashboard
				err   error
			}
			var entries []entry
			if len(args) > 0 {
				for _, path := range args {
					d, err := brochurejson.Load(path)
					entries = append(entries, entry{label: path, d: d, err: err})
				}
			} else {
				all, err := loadDashboards(getConfig(cmd))
				if err != nil {
					return err
				}
				for _, d := range all {
					entries = append(entries, entry{label: d.Name, d: d})
				}
			}

			failed := 0
			for _, e := range entries {
				err := e.err
				if err == nil {
					err = e.d.Validate()
				}
				if err != nil {
					failed++
					fmt.Fprintf(out, "FAIL %s: %v\n", e.label, err)
					continue
				}
				fmt.Fprintf(out, "ok   %s\n", e.label)
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errInvalidDashboards, failed, len(entries))
			}
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available dashboards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := loadDashboards(getConfig(cmd))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, d := range all {
				fmt.Fprintf(out, "%s\t%d questions\t%d callouts\n", d.Name, len(d.FAQ), len(d.Callouts))
			}
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the default config.toml",
		Long:  "Print a config.toml holding every option at its default. Save it to " + config.DefaultConfigPath() + " to customize.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), config.RenderDefaultTOML())
			return err
		},
	}
}

func allIndices(d brochure.Dashboard) []int {
	out := make([]int, len(d.FAQ))
	for i := range out {
		out[i] = i
	}
	return out
}
