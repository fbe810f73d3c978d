// Package devtools records every gateway exchange as an Entry that can be
// stored, published and inspected later.
package devtools

import "github.com/phaseo/ai-stats-go/pkg/httpclient"

// SDKName identifies this SDK in entry metadata.
const SDKName = "go"

// SDKVersion is reported in entry metadata.
const SDKVersion = "0.3.0"

// Logger is the logging surface used by the recorder.
type Logger = httpclient.Logger

type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Status  int    `json:"status,omitempty"`
}

type UsageInfo struct {
	PromptTokens             int64   `json:"prompt_tokens,omitempty"`
	CompletionTokens         int64   `json:"completion_tokens,omitempty"`
	TotalTokens              int64   `json:"total_tokens,omitempty"`
	ImagesGenerated          int64   `json:"images_generated,omitempty"`
	AudioSeconds             float64 `json:"audio_seconds,omitempty"`
	VideoSeconds             float64 `json:"video_seconds,omitempty"`
	CacheCreationInputTokens int64   `json:"cache_creation_input_tokens,omitempty"`
	CacheReadInputTokens     int64   `json:"cache_read_input_tokens,omitempty"`
}

// CostInfo is in USD.
type CostInfo struct {
	InputCost  float64 `json:"input_cost,omitempty"`
	OutputCost float64 `json:"output_cost,omitempty"`
	TotalCost  float64 `json:"total_cost"`
}

type Metadata struct {
	SDK        string            `json:"sdk"`
	SDKVersion string            `json:"sdk_version"`
	Stream     bool              `json:"stream"`
	Usage      *UsageInfo        `json:"usage,omitempty"`
	Cost       *CostInfo         `json:"cost,omitempty"`
	Model      string            `json:"model,omitempty"`
	Provider   string            `json:"provider,omitempty"`
	StatusCode int               `json:"status_code,omitempty"`
	Headers    map[string]string `json:"headers,omitempty"`
}

// Entry captures one request and its outcome. Response is nil when the
// transport failed; Error is nil for 2xx exchanges.
type Entry struct {
	ID         string         `json:"id"`
	Type       EndpointType   `json:"type"`
	Timestamp  int64          `json:"timestamp"`
	DurationMs int64          `json:"duration_ms"`
	Request    map[string]any `json:"request"`
	Response   map[string]any `json:"response"`
	Error      *ErrorInfo     `json:"error"`
	Metadata   Metadata       `json:"metadata"`
}

func (e Entry) HasError() bool { return e.Error != nil }

// Tokens returns the total token count, or 0 when usage is unknown.
func (e Entry) Tokens() int64 {
	if e.Metadata.Usage == nil {
		return 0
	}
	return e.Metadata.Usage.TotalTokens
}

// Cost returns the total cost, or 0 when cost is unknown.
func (e Entry) Cost() float64 {
	if e.Metadata.Cost == nil {
		return 0
	}
	return e.Metadata.Cost.TotalCost
}
