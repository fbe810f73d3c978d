package devtools

import (
	"bytes"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/bytedance/sonic"
)

const maxRawBody = 64 << 10

// decodeBody turns a body into the map stored on an Entry. JSON objects are
// kept as-is, other JSON values are wrapped under "value", text under "raw"
// and binary payloads are reduced to their size.
func decodeBody(body []byte) map[string]any {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return map[string]any{}
	}
	var v any
	if err := sonic.Unmarshal(trimmed, &v); err == nil {
		if obj, ok := v.(map[string]any); ok {
			return obj
		}
		return map[string]any{"value": v}
	}
	if isBinary(body) {
		return map[string]any{"bytes": len(body)}
	}
	return map[string]any{"raw": truncateUTF8(string(body), maxRawBody)}
}

func isBinary(body []byte) bool {
	return len(body) > 0 && !utf8.Valid(body)
}

// truncateUTF8 cuts s to at most n bytes without splitting a character.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}

func intField(m map[string]any, keys ...string) int64 {
	for _, k := range keys {
		if n, ok := number(m[k]); ok {
			return int64(n)
		}
	}
	return 0
}

// extractUsage reads OpenAI-style and Anthropic-style usage blocks. Image
// responses without usage report the number of images returned.
func extractUsage(resp map[string]any, typ EndpointType) *UsageInfo {
	if u, ok := resp["usage"].(map[string]any); ok {
		usage := &UsageInfo{
			PromptTokens:     intField(u, "prompt_tokens", "input_tokens"),
			CompletionTokens: intField(u, "completion_tokens", "output_tokens"),
			TotalTokens:      intField(u, "total_tokens"),
		}
		if usage.TotalTokens == 0 {
			usage.TotalTokens = usage.PromptTokens + usage.CompletionTokens
		}
		if details, ok := u["prompt_tokens_details"].(map[string]any); ok {
			usage.CacheReadInputTokens = intField(details, "cached_tokens")
		}
		if n := intField(u, "cache_creation_input_tokens"); n > 0 {
			usage.CacheCreationInputTokens = n
		}
		if n := intField(u, "cache_read_input_tokens"); n > 0 {
			usage.CacheReadInputTokens = n
		}
		return usage
	}
	if typ == TypeImagesGenerations || typ == TypeImagesEdits {
		if data, ok := resp["data"].([]any); ok {
			return &UsageInfo{ImagesGenerated: int64(len(data))}
		}
	}
	return nil
}

// extractCost reads a gateway cost figure from usage or meta blocks.
func extractCost(resp map[string]any) *CostInfo {
	for _, block := range []string{"usage", "meta"} {
		m, ok := resp[block].(map[string]any)
		if !ok {
			continue
		}
		for _, key := range []string{"cost_usd", "total_cost", "cost"} {
			if n, ok := number(m[key]); ok {
				return &CostInfo{TotalCost: n}
			}
		}
	}
	return nil
}

func extractProvider(resp, req map[string]any) string {
	if p := stringField(resp, "provider"); p != "" {
		return p
	}
	switch p := req["provider"].(type) {
	case string:
		return p
	case map[string]any:
		if order, ok := p["order"].([]any); ok && len(order) == 1 {
			s, _ := order[0].(string)
			return s
		}
	}
	return ""
}

var sensitiveHeaders = []string{"authorization", "x-api-key", "cookie", "proxy-authorization"}

// redactHeaders copies headers, masking credentials.
func redactHeaders(h map[string]string) map[string]string {
	if len(h) == 0 {
		return nil
	}
	out := make(map[string]string, len(h))
	for k, v := range h {
		if slices.Contains(sensitiveHeaders, strings.ToLower(k)) {
			v = "[redacted]"
		}
		out[k] = v
	}
	return out
}
