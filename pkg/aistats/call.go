package aistats

import (
	"context"
	"net/url"

	"github.com/phaseo/ai-stats-go/pkg/httpclient"
)

// CallOption customizes a single Call.
type CallOption func(*callOptions)

type callOptions struct {
	query  url.Values
	policy *PathPolicy
}

// WithQuery appends an encoded query string to the resolved path.
func WithQuery(q url.Values) CallOption {
	return func(o *callOptions) {
		if o.query == nil {
			o.query = url.Values{}
		}
		for k, vs := range q {
			o.query[k] = append(o.query[k], vs...)
		}
	}
}

// WithCallPathPolicy overrides the client's path policy for one call.
func WithCallPathPolicy(p PathPolicy) CallOption {
	return func(o *callOptions) { o.policy = &p }
}

// Call resolves op's template against params and sends it through the client.
// Under PathStrict a missing parameter returns *MissingPathParamError without
// touching the transport.
func (c *Client) Call(ctx context.Context, op Operation, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	var co callOptions
	for _, opt := range opts {
		opt(&co)
	}
	policy := c.pathPolicy
	if co.policy != nil {
		policy = *co.policy
	}

	path, err := resolvePath(op.Name, op.Path, params, policy, func(name string) {
		c.log.WarnObj("path parameter missing, substituting empty value", "path_param", map[string]string{
			"operation": op.Name,
			"param":     name,
		})
	})
	if err != nil {
		return httpclient.Response{}, err
	}
	if len(co.query) > 0 {
		path += "?" + co.query.Encode()
	}
	return c.send(ctx, op.Name, op.Method, path, body)
}
