package main

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

var errEmptyKeyword = errors.New("keyword argument without a name")

// parseArgs splits command-line arguments into positional and keyword
// values. name=value arguments are keywords; everything else is positional.
func parseArgs(raw []string) ([]any, map[string]any, error) {
	positional := make([]any, 0, len(raw))
	kwargs := make(map[string]any)

	for _, arg := range raw {
		name, value, isKeyword := strings.Cut(arg, "=")
		if !isKeyword || !isIdentifier(name) {
			if isKeyword && name == "" {
				return nil, nil, fmt.Errorf("%w: %q", errEmptyKeyword, arg)
			}
			positional = append(positional, decodeValue(arg))
			continue
		}
		kwargs[name] = decodeValue(value)
	}

	return positional, kwargs, nil
}

// decodeValue reads s as a YAML scalar or flow sequence. Strings are kept
// verbatim unless fully quoted, and text that YAML would treat as a comment
// or a mapping stays a raw string.
func decodeValue(s string) any {
	if hasComment(s) {
		return s
	}

	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return s
	}

	switch v.(type) {
	case string:
		if isQuoted(s) {
			return v
		}
		return s
	case map[string]any:
		return s
	case nil:
		if isNull(s) {
			return nil
		}
		return s
	default:
		return v
	}
}

func hasComment(s string) bool {
	return strings.HasPrefix(s, "#") || strings.Contains(s, " #") || strings.Contains(s, "\t#")
}

func isQuoted(s string) bool {
	if len(s) < 2 {
		return false
	}
	q := s[0]
	return (q == '"' || q == '\'') && s[len(s)-1] == q
}

func isNull(s string) bool {
	switch s {
	case "null", "Null", "NULL", "~":
		return true
	default:
		return false
	}
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}
