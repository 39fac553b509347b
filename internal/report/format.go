package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultMaxOutputLength caps tool output shown inline.
	DefaultMaxOutputLength = 256

	// truncationMarker is appended to any content cut at a length cap.
	truncationMarker = "... (truncated)"

	// maxInlineArrayItems is the largest array rendered element by element.
	maxInlineArrayItems = 3

	// maxValueLength caps any individual rendered parameter value.
	maxValueLength = 64

	// DefaultMaxParameterFields caps the key/value pairs shown per call.
	DefaultMaxParameterFields = 4
)

// FormatParameters renders a tool input map as a compact single line:
// at most maxFields key/value pairs in sorted key order, with an
// ellipsis marker when more exist. maxFields <= 0 selects the default.
//
// JSON objects decode into unordered Go maps, so sorted keys stand in
// for insertion order; this also keeps repeated renders byte-identical.
func FormatParameters(input map[string]any, maxFields int) string {
	if len(input) == 0 {
		return ""
	}
	if maxFields <= 0 {
		maxFields = DefaultMaxParameterFields
	}

	keys := make([]string, 0, len(input))
	for k := range input {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for i, k := range keys {
		if i >= maxFields {
			parts = append(parts, "...")
			break
		}
		parts = append(parts, fmt.Sprintf("%s: %s", k, FormatValue(input[k])))
	}
	return strings.Join(parts, ", ")
}

// FormatValue renders one parameter value: scalars stringified, short
// arrays inline, long arrays elided, objects as compact JSON. Any
// rendered value longer than the per-value cap is cut with an ellipsis.
func FormatValue(v any) string {
	var rendered string
	switch val := v.(type) {
	case nil:
		rendered = "null"
	case string:
		rendered = val
	case []any:
		rendered = formatArray(val)
	case map[string]any:
		if b, err := json.Marshal(val); err == nil {
			rendered = string(b)
		} else {
			rendered = fmt.Sprintf("%v", val)
		}
	default:
		rendered = fmt.Sprintf("%v", val)
	}

	rendered = strings.ReplaceAll(rendered, "\n", " ")
	if len(rendered) > maxValueLength {
		rendered = cutAtRuneBoundary(rendered, maxValueLength) + "..."
	}
	return rendered
}

// cutAtRuneBoundary cuts s at no more than max bytes, backing off to the
// previous rune boundary so the result stays valid UTF-8.
func cutAtRuneBoundary(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

func formatArray(items []any) string {
	if len(items) <= maxInlineArrayItems {
		parts := make([]string, 0, len(items))
		for _, item := range items {
			parts = append(parts, fmt.Sprintf("%v", item))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}

	parts := make([]string, 0, maxInlineArrayItems)
	for _, item := range items[:maxInlineArrayItems] {
		parts = append(parts, fmt.Sprintf("%v", item))
	}
	return fmt.Sprintf("[%s, ...%d more]", strings.Join(parts, ", "), len(items)-maxInlineArrayItems)
}

// FormatOutput truncates tool output content to maxLength bytes,
// appending a marker when anything was cut. maxLength <= 0 selects the
// default. Content at or under the limit is returned untouched.
func FormatOutput(content string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultMaxOutputLength
	}
	if len(content) <= maxLength {
		return content
	}
	return content[:maxLength] + truncationMarker
}

// ContentText flattens a tool result content payload to plain text.
// Claude encodes result content either as a string or as a list of
// typed blocks.
func ContentText(content any) string {
	switch val := content.(type) {
	case nil:
		return ""
	case string:
		return val
	case []any:
		var parts []string
		for _, item := range val {
			if block, ok := item.(map[string]any); ok {
				if text, ok := block["text"].(string); ok {
					parts = append(parts, text)
					continue
				}
			}
			parts = append(parts, fmt.Sprintf("%v", item))
		}
		return strings.Join(parts, "\n")
	default:
		return fmt.Sprintf("%v", val)
	}
}
