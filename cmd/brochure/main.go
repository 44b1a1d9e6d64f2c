// Command brochure renders the upgrade dashboards and their inline markup.
//
// Usage:
//
//	brochure [command] [flags]
//
// Commands:
//
//	render    Render inline markup from arguments or stdin
//	show      Print a dashboard
//	faq       Print a dashboard's FAQ
//	tui       Browse a dashboard interactively
//	validate  Check dashboard files
//	list      List available dashboards
//	config    Print the default config.toml
//
// Settings come from $XDG_CONFIG_HOME/brochure/config.toml, BROCHURE_*
// environment variables and flags, in increasing order of precedence.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "brochure: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	return cmd.ExecuteContext(ctx)
}
