package aistats

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// PathParams maps placeholder names to values.
type PathParams map[string]string

// PathPolicy controls what happens when a template placeholder has no value.
type PathPolicy int

const (
	// PathStrict fails before any network call. A present but empty value
	// counts as missing.
	PathStrict PathPolicy = iota
	// PathLenient substitutes an empty string, which usually yields a remote 404.
	PathLenient
)

func (p PathPolicy) String() string {
	switch p {
	case PathStrict:
		return "strict"
	case PathLenient:
		return "lenient"
	default:
		return fmt.Sprintf("PathPolicy(%d)", int(p))
	}
}

// ParsePathPolicy accepts "strict" or "lenient".
func ParsePathPolicy(s string) (PathPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return PathStrict, nil
	case "lenient":
		return PathLenient, nil
	default:
		return PathStrict, fmt.Errorf("unknown path policy %q", s)
	}
}

// ErrMissingPathParam matches every MissingPathParamError through errors.Is.
var ErrMissingPathParam = errors.New("missing path parameter")

// MissingPathParamError names the placeholder that had no value.
type MissingPathParamError struct {
	Operation string
	Template  string
	Param     string
}

func (e *MissingPathParamError) Error() string {
	if e.Operation == "" {
		return fmt.Sprintf("missing path parameter %q in %s", e.Param, e.Template)
	}
	return fmt.Sprintf("missing path parameter %q for %s (%s)", e.Param, e.Operation, e.Template)
}

func (e *MissingPathParamError) Is(target error) bool { return target == ErrMissingPathParam }

// Placeholders lists the {name} tokens of template in order.
func Placeholders(template string) []string {
	var names []string
	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			return names
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return names
		}
		names = append(names, rest[open+1:open+end])
		rest = rest[open+end+1:]
	}
}

// ResolvePath substitutes every {name} in template with the path-escaped value
// from params. Missing values are handled according to policy.
func ResolvePath(template string, params PathParams, policy PathPolicy) (string, error) {
	return resolvePath("", template, params, policy, nil)
}

func resolvePath(operation, template string, params PathParams, policy PathPolicy, onMissing func(name string)) (string, error) {
	if !strings.Contains(template, "{") {
		return template, nil
	}

	var b strings.Builder
	b.Grow(len(template) + 16)
	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			break
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			break
		}
		b.WriteString(rest[:open])

		name := rest[open+1 : open+end]
		value, ok := params[name]
		if !ok || value == "" {
			if policy == PathStrict {
				return "", &MissingPathParamError{Operation: operation, Template: template, Param: name}
			}
			if onMissing != nil {
				onMissing(name)
			}
		}
		b.WriteString(url.PathEscape(value))
		rest = rest[open+end+1:]
	}
	b.WriteString(rest)
	return b.String(), nil
}
