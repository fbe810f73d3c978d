package httpclient

import (
	"errors"
	"fmt"
)

// ErrTransport matches every TransportError through errors.Is.
var ErrTransport = errors.New("transport failure")

// TransportError reports that the network exchange itself did not complete
// (dial, DNS, TLS, timeout). HTTP error statuses are never reported this way.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrTransport) succeed for any TransportError.
func (e *TransportError) Is(target error) bool { return target == ErrTransport }

func newTransportError(req Request, err error) error {
	return &TransportError{Method: req.Method, URL: req.URL, Err: err}
}
