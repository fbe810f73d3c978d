package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phaseo/ai-stats-go/pkg/aistats"
	"github.com/phaseo/ai-stats-go/pkg/devtools"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(_ *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "SDK:        %s\n", devtools.SDKName)
			fmt.Fprintf(out, "Version:    %s\n", devtools.SDKVersion)
			fmt.Fprintf(out, "Operations: %d\n", len(aistats.Operations()))
			return nil
		},
	}
}
