package cli

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/phaseo/ai-stats-go/internal/app"
	"github.com/phaseo/ai-stats-go/pkg/aistats"
)

// CallOptions holds options for the call command.
type CallOptions struct {
	*GlobalOptions

	Params      []string
	Query       []string
	Data        string
	LenientPath bool
	Raw         bool
}

// NewCallCommand creates the call command, which invokes one operation by name.
func NewCallCommand(globalOpts *GlobalOptions) *cobra.Command {
	opts := &CallOptions{GlobalOptions: globalOpts}

	cmd := &cobra.Command{
		Use:   "call OPERATION",
		Short: "Invoke a gateway operation",
		Long: `Invoke a gateway operation by name and print the response body.

Path placeholders are filled with -p name=value. A missing placeholder fails
before any request is sent unless --lenient-path is given. Non-2xx responses
print the body and exit with an error.`,
		Example: `  # List models
  aistats call listModels

  # Fetch a video job
  aistats call getVideo -p video_id=abc123

  # Chat completion with an inline body
  aistats call createChatCompletion -d '{"model":"gpt-4o","messages":[{"role":"user","content":"hi"}]}'

  # Body from a file
  aistats call createEmbedding -d @embedding.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringArrayVarP(&opts.Params, "param", "p", nil, "path parameter as name=value (repeatable)")
	cmd.Flags().StringArrayVarP(&opts.Query, "query", "q", nil, "query parameter as name=value (repeatable)")
	cmd.Flags().StringVarP(&opts.Data, "data", "d", "", "request body, or @file to read it from a file")
	cmd.Flags().BoolVar(&opts.LenientPath, "lenient-path", false, "substitute empty strings for missing path parameters")
	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "print the body exactly as received")
	return cmd
}

func runCall(cmd *cobra.Command, opts *CallOptions, name string) error {
	op, ok := aistats.LookupOperation(name)
	if !ok {
		return fmt.Errorf("unknown operation %q (see \"aistats operations\")", name)
	}

	params, err := parsePairs(opts.Params)
	if err != nil {
		return fmt.Errorf("invalid --param: %w", err)
	}
	query, err := parseQuery(opts.Query)
	if err != nil {
		return fmt.Errorf("invalid --query: %w", err)
	}
	body, err := readBody(opts.Data)
	if err != nil {
		return err
	}

	var callOpts []aistats.CallOption
	if len(query) > 0 {
		callOpts = append(callOpts, aistats.WithQuery(query))
	}
	if opts.LenientPath {
		callOpts = append(callOpts, aistats.WithCallPathPolicy(aistats.PathLenient))
	}

	return withApp(cmd.Context(), opts.GlobalOptions, func(a *app.App) error {
		resp, err := a.Client().Call(cmd.Context(), op, aistats.PathParams(params), body, callOpts...)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if opts.Raw {
			_, _ = out.Write(resp.Body())
		} else {
			fmt.Fprintln(out, prettyBody(resp.Body()))
		}

		if err := aistats.CheckStatus(resp); err != nil {
			var apiErr *aistats.APIError
			if errors.As(err, &apiErr) {
				return fmt.Errorf("%s failed with status %d: %s", op.Name, apiErr.StatusCode, apiErr.Message)
			}
			return err
		}
		return nil
	})
}

// parsePairs turns name=value arguments into a map. A later pair replaces an
// earlier one with the same name.
func parsePairs(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, err := cutPair(p)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

// parseQuery keeps every value of a repeated name, in flag order.
func parseQuery(pairs []string) (url.Values, error) {
	q := url.Values{}
	for _, p := range pairs {
		k, v, err := cutPair(p)
		if err != nil {
			return nil, err
		}
		q.Add(k, v)
	}
	return q, nil
}

func cutPair(p string) (string, string, error) {
	k, v, ok := strings.Cut(p, "=")
	k = strings.TrimSpace(k)
	if !ok || k == "" {
		return "", "", fmt.Errorf("%q is not name=value", p)
	}
	return k, v, nil
}

// readBody returns nil for an empty flag, the file contents for @path, and the
// literal bytes otherwise.
func readBody(data string) ([]byte, error) {
	if data == "" {
		return nil, nil
	}
	if path, ok := strings.CutPrefix(data, "@"); ok {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read body file: %w", err)
		}
		return b, nil
	}
	return []byte(data), nil
}

// prettyBody indents JSON bodies and returns other bodies unchanged.
func prettyBody(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return string(body)
	}
	var v any
	if err := sonic.ConfigStd.Unmarshal(trimmed, &v); err != nil {
		return string(body)
	}
	out, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return string(body)
	}
	return string(out)
}
