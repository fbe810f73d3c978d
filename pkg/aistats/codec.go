package aistats

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/phaseo/ai-stats-go/pkg/httpclient"
)

// Encode marshals v into a request body.
func Encode(v any) ([]byte, error) {
	b, err := sonic.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return b, nil
}

// Decode unmarshals the response body into T. It does not inspect the status
// code; pair it with CheckStatus when error bodies must not be decoded as T.
func Decode[T any](resp httpclient.Response) (T, error) {
	return DecodeBytes[T](resp.Body())
}

// DecodeBytes unmarshals raw JSON into T.
func DecodeBytes[T any](data []byte) (T, error) {
	var out T
	if len(data) == 0 {
		return out, fmt.Errorf("decode response body: empty body")
	}
	if err := sonic.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode response body: %w", err)
	}
	return out, nil
}
