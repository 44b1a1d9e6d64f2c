package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/brochure"
	"github.com/fwojciec/brochure/config"
	"github.com/fwojciec/brochure/content"
	brochurejson "github.com/fwojciec/brochure/json"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type ctxKey string

const configKey ctxKey = "config"

// newRootCmd builds the command tree. Configuration is resolved once in
// PersistentPreRunE and handed to subcommands through the context.
func newRootCmd() *cobra.Command {
	var cfgPath string
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "brochure",
		Short:         "Render upgrade dashboards and their inline markup",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.Load(v); err != nil {
				return err
			}
			c, err := config.Resolve(v)
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), configKey, c))
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfgPath, "config", "", "path to config file (toml)")
	flags.String("content", "", "directory or JSON file with dashboards (replaces built-ins)")
	flags.Int("width", 0, "wrap width for static output (0 means 80)")
	flags.String("format", config.FormatANSI, "output format: ansi, html, json")
	flags.Int("max-url-width", 0, "truncate displayed link targets wider than this (0 disables)")
	for key, flag := range map[string]string{
		"content":       "content",
		"width":         "width",
		"format":        "format",
		"max_url_width": "max-url-width",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}

	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newFAQCmd())
	cmd.AddCommand(newTUICmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newConfigCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

func getConfig(cmd *cobra.Command) config.Config {
	c, ok := cmd.Context().Value(configKey).(config.Config)
	if !ok {
		panic("config not initialized")
	}
	return c
}

// wrapWidth returns the configured static output width.
func wrapWidth(c config.Config) int {
	if c.Width > 0 {
		return c.Width
	}
	return 80
}

// loadDashboards returns every available dashboard: those under
// c.Content when set, otherwise the built-ins.
func loadDashboards(c config.Config) ([]brochure.Dashboard, error) {
	if c.Content == "" {
		names := content.Names()
		out := make([]brochure.Dashboard, 0, len(names))
		for _, name := range names {
			d, err := content.Builtin(name)
			if err != nil {
				return nil, err
			}
			out = append(out, d)
		}
		return out, nil
	}

	info, err := os.Stat(c.Content)
	if err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	if !info.IsDir() {
		d, err := brochurejson.Load(c.Content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Content, err)
		}
		return []brochure.Dashboard{d}, nil
	}
	return brochurejson.LoadGlob(c.Content, "**/*.json")
}

// loadDashboard resolves the dashboard named by args, falling back to the
// configured default. With a content source holding a single dashboard
// and no name given, that dashboard is used.
func loadDashboard(c config.Config, args []string) (brochure.Dashboard, error) {
	name := c.Dashboard
	if len(args) > 0 {
		name = args[0]
	}

	if c.Content == "" {
		return content.Builtin(name)
	}

	all, err := loadDashboards(c)
	if err != nil {
		return brochure.Dashboard{}, err
	}
	if len(args) == 0 && len(all) == 1 {
		return all[0], nil
	}
	for _, d := range all {
		if d.Name == name {
			return d, nil
		}
	}
	return brochure.Dashboard{}, fmt.Errorf("%q: %w", name, brochure.ErrUnknownDashboard)
}

// readText returns args joined by spaces, or all of stdin when there are
// no args. Only the single newline ending the last line of stdin is
// dropped; further trailing newlines are content.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

// checkOpen reports the first index outside the FAQ.
func checkOpen(d brochure.Dashboard, open []int) error {
	for _, i := range open {
		if i < 0 || i >= len(d.FAQ) {
			return fmt.Errorf("%s has no question %d (it has %d): %w",
				d.Name, i, len(d.FAQ), brochure.ErrValidation)
		}
	}
	return nil
}

var errInvalidDashboards = errors.New("invalid dashboards")
