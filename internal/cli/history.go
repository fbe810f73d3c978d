package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/phaseo/ai-stats-go/internal/app"
	"github.com/phaseo/ai-stats-go/pkg/devtools"
)

// HistoryOptions holds options for the history command.
type HistoryOptions struct {
	*GlobalOptions

	Type   string
	Model  string
	Errors bool
	OK     bool
	Limit  int
	Offset int
	JSON   bool
}

// NewHistoryCommand creates the history command, which lists recorded requests.
func NewHistoryCommand(globalOpts *GlobalOptions) *cobra.Command {
	opts := &HistoryOptions{GlobalOptions: globalOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded requests, most recent first",
		Example: `  # Last 20 chat completions
  aistats history --type chat.completions --limit 20

  # Failed requests only
  aistats history --errors`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Errors && opts.OK {
				return fmt.Errorf("--errors and --ok are mutually exclusive")
			}
			return runHistory(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Type, "type", "", "endpoint type, e.g. chat.completions")
	cmd.Flags().StringVar(&opts.Model, "model", "", "model name")
	cmd.Flags().BoolVar(&opts.Errors, "errors", false, "only requests that failed")
	cmd.Flags().BoolVar(&opts.OK, "ok", false, "only requests that succeeded")
	cmd.Flags().IntVar(&opts.Limit, "limit", devtools.DefaultLimit, "maximum number of entries")
	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "number of entries to skip")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "print the page as JSON")
	return cmd
}

func runHistory(cmd *cobra.Command, opts *HistoryOptions) error {
	f := devtools.Filter{
		Type:   devtools.EndpointType(opts.Type),
		Model:  opts.Model,
		Limit:  opts.Limit,
		Offset: opts.Offset,
	}
	switch {
	case opts.Errors:
		f.HasError = devtools.ParseHasError("true")
	case opts.OK:
		f.HasError = devtools.ParseHasError("false")
	}

	return withApp(cmd.Context(), opts.GlobalOptions, func(a *app.App) error {
		page, err := a.Store().List(cmd.Context(), f)
		if err != nil {
			return fmt.Errorf("list history: %w", err)
		}

		out := cmd.OutOrStdout()
		if opts.JSON {
			data, err := sonic.ConfigStd.MarshalIndent(page, "", "  ")
			if err != nil {
				return fmt.Errorf("encode history: %w", err)
			}
			_, err = fmt.Fprintln(out, string(data))
			return err
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTYPE\tMODEL\tSTATUS\tDURATION\tTOKENS\tTIME")
		for _, e := range page.Generations {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%dms\t%d\t%s\n",
				e.ID, e.Type, orDash(e.Metadata.Model), entryStatus(e), e.DurationMs, e.Tokens(),
				time.UnixMilli(e.Timestamp).Local().Format(time.DateTime))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%d of %d entries\n", len(page.Generations), page.Total)
		return nil
	})
}

func entryStatus(e devtools.Entry) string {
	switch {
	case e.Error != nil && e.Error.Status > 0:
		return strconv.Itoa(e.Error.Status)
	case e.Error != nil:
		return e.Error.Code
	case e.Metadata.StatusCode > 0:
		return strconv.Itoa(e.Metadata.StatusCode)
	default:
		return "-"
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
