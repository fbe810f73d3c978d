package httpclient

import (
	"bytes"
	"math"
)

// Response is the uniform result of a completed exchange. Non-2xx statuses are
// ordinary responses; interpreting them is the caller's job.
type Response struct {
	status uint16
	body   []byte
}

// NewResponse builds a Response, clamping the status into the uint16 range and
// copying body so later writes to it are not observed.
func NewResponse(status int, body []byte) Response {
	switch {
	case status < 0:
		status = 0
	case status > math.MaxUint16:
		status = math.MaxUint16
	}
	return Response{status: uint16(status), body: bytes.Clone(body)}
}

// StatusCode returns the HTTP status code.
func (r Response) StatusCode() int { return int(r.status) }

// Body returns the raw body. Callers must not modify the returned slice.
func (r Response) Body() []byte { return r.body }

// String returns the body as text.
func (r Response) String() string { return string(r.body) }

// IsSuccess reports whether the status is 2xx.
func (r Response) IsSuccess() bool { return r.status >= 200 && r.status < 300 }
