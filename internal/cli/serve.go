package cli

import (
	"github.com/spf13/cobra"

	"github.com/phaseo/ai-stats-go/internal/app"
	"github.com/phaseo/ai-stats-go/internal/viewer"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	*GlobalOptions

	Addr string
}

// NewServeCommand creates the serve command, which runs the devtools viewer
// until the command context is cancelled.
func NewServeCommand(globalOpts *GlobalOptions) *cobra.Command {
	opts := &ServeOptions{GlobalOptions: globalOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve recorded requests over HTTP",
		Long: `Serve the devtools API for recorded requests:

  GET    /health
  GET    /api/generations?type=&model=&hasError=&limit=&offset=
  GET    /api/generations/:id
  DELETE /api/generations
  GET    /api/stats
  GET    /api/export?format=json|jsonl`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts.GlobalOptions, func(a *app.App) error {
				addr := opts.Addr
				if addr == "" {
					addr = a.Config().ViewerAddr
				}
				return viewer.New(a.Store(), a.Logger(), "").Run(cmd.Context(), addr)
			})
		},
	}
	cmd.Flags().StringVar(&opts.Addr, "addr", "", "listen address (default from VIEWER_ADDR)")
	return cmd
}
