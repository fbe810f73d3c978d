// Package cli implements the aistats command tree.
//
// Commands that talk to the gateway or read recorded history obtain an
// app.App through GlobalOptions.Load, so every call made from the CLI is
// recorded by the devtools recorder like any other SDK call.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phaseo/ai-stats-go/internal/app"
)

const (
	cliName        = "aistats"
	cliDescription = "aistats - call the AI Stats gateway and inspect recorded requests"
)

// Loader builds the runtime used by a command.
type Loader func(ctx context.Context) (*app.App, error)

// GlobalOptions holds options that are common to all commands.
type GlobalOptions struct {
	Load Loader
}

// NewRootCommand creates the root command with all subcommands.
func NewRootCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   cliName,
		Short: cliDescription,
		Long: `aistats is a command-line client for the AI Stats gateway.

Every gateway operation can be invoked by name with "aistats call". Requests
are recorded locally and can be browsed with "aistats history", summarized
with "aistats stats" or served to a browser with "aistats serve".

Configuration is read from the environment (and configs/.env), for example
AI_STATS_API_KEY and AI_STATS_BASE_URL.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(
		NewOperationsCommand(opts),
		NewCallCommand(opts),
		NewHistoryCommand(opts),
		NewStatsCommand(opts),
		NewServeCommand(opts),
		NewVersionCommand(opts),
	)
	return cmd
}

// withApp loads the runtime, runs fn and closes the runtime afterwards.
func withApp(ctx context.Context, opts *GlobalOptions, fn func(a *app.App) error) error {
	if opts == nil || opts.Load == nil {
		return fmt.Errorf("no runtime loader configured")
	}
	a, err := opts.Load(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
