package aistats

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/bytedance/sonic"

	"github.com/phaseo/ai-stats-go/pkg/httpclient"
)

const maxMessageLen = 512

// APIError is a non-2xx gateway response turned into an error by CheckStatus.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// CheckStatus returns nil for 2xx responses and an *APIError otherwise.
func CheckStatus(resp httpclient.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	body := resp.Body()
	return &APIError{
		StatusCode: resp.StatusCode(),
		Message:    errorMessage(resp.StatusCode(), body),
		Body:       body,
	}
}

func errorMessage(status int, body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return http.StatusText(status)
	}
	if trimmed[0] == '{' {
		var er ErrorResponse
		if err := sonic.Unmarshal(trimmed, &er); err == nil {
			if msg := jsonErrorMessage(er); msg != "" {
				return msg
			}
		}
	}
	if trimmed[0] == '<' {
		if title := htmlTitle(trimmed); title != "" {
			return title
		}
	}
	return truncate(string(trimmed), maxMessageLen)
}

func jsonErrorMessage(er ErrorResponse) string {
	switch v := er.Error.(type) {
	case string:
		if er.Message != "" && er.Message != v {
			return v + ": " + er.Message
		}
		return v
	case map[string]any:
		if msg, ok := v["message"].(string); ok && msg != "" {
			return msg
		}
		if code, ok := v["code"].(string); ok && code != "" {
			return code
		}
	}
	return er.Message
}

// htmlTitle extracts the <title> of an error page served by a proxy or CDN in
// front of the gateway.
func htmlTitle(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	return strings.Join(strings.Fields(title), " ")
}

// truncate shortens s to at most n bytes plus an ellipsis, backing up to a
// character boundary.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
