package cli

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/phaseo/ai-stats-go/internal/app"
	"github.com/phaseo/ai-stats-go/pkg/devtools"
)

// NewStatsCommand creates the stats command, which prints aggregated
// statistics over recorded requests as JSON.
func NewStatsCommand(globalOpts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize recorded requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), globalOpts, func(a *app.App) error {
				entries, err := a.Store().Entries(cmd.Context())
				if err != nil {
					return fmt.Errorf("read entries: %w", err)
				}
				data, err := sonic.ConfigStd.MarshalIndent(devtools.Summarize(entries), "", "  ")
				if err != nil {
					return fmt.Errorf("encode stats: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			})
		},
	}
}
