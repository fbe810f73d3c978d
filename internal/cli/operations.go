package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/phaseo/ai-stats-go/pkg/aistats"
)

// OperationsOptions holds options for the operations command.
type OperationsOptions struct {
	*GlobalOptions

	JSON bool
}

// NewOperationsCommand creates the operations command, which lists the
// operation catalogue.
func NewOperationsCommand(globalOpts *GlobalOptions) *cobra.Command {
	opts := &OperationsOptions{GlobalOptions: globalOpts}

	cmd := &cobra.Command{
		Use:     "operations",
		Aliases: []string{"ops"},
		Short:   "List gateway operations",
		Example: `  # Table of every operation
  aistats operations

  # Machine readable
  aistats operations --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperations(cmd, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "print the catalogue as JSON")
	return cmd
}

type operationView struct {
	Name   string   `json:"name"`
	Method string   `json:"method"`
	Path   string   `json:"path"`
	Params []string `json:"params,omitempty"`
}

func runOperations(cmd *cobra.Command, opts *OperationsOptions) error {
	ops := aistats.Operations()
	out := cmd.OutOrStdout()

	if opts.JSON {
		views := make([]operationView, 0, len(ops))
		for _, op := range ops {
			views = append(views, operationView{Name: op.Name, Method: op.Method, Path: op.Path, Params: op.Params()})
		}
		data, err := sonic.ConfigStd.MarshalIndent(views, "", "  ")
		if err != nil {
			return fmt.Errorf("encode operations: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMETHOD\tPATH\tPARAMS")
	for _, op := range ops {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", op.Name, op.Method, op.Path, strings.Join(op.Params(), ","))
	}
	return w.Flush()
}
