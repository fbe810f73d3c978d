package httpclient

import "context"

// Request is one outbound HTTP exchange as seen by a Transport.
type Request struct {
	Method  string
	URL     string
	Body    []byte // nil means no body
	Headers map[string]string

	// Operation names the catalogue entry that produced the request, if any.
	// Transports must not change behaviour based on it.
	Operation string
}

// Transport sends a single request and returns the remote status and body.
// Implementations perform exactly one network exchange per call and never retry.
type Transport interface {
	Do(ctx context.Context, req Request) (Response, error)
}

// TransportFunc adapts a plain function to the Transport interface.
type TransportFunc func(ctx context.Context, req Request) (Response, error)

// Do calls f(ctx, req).
func (f TransportFunc) Do(ctx context.Context, req Request) (Response, error) {
	return f(ctx, req)
}
