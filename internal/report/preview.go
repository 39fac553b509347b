package report

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Caps for preview entry fields. Rich (markdown) previews allow more
// room than plain-text ones.
const (
	previewPlainTitleMax = 60
	previewPlainBodyMax  = 80
	previewRichTitleMax  = 256
	previewRichBodyMax   = 512

	defaultPreviewMaxEntries = 10
)

// PreviewEntry is one pending downstream action record, independent of
// the transcript format.
type PreviewEntry struct {
	Type  string `json:"type"`
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
}

// PreviewOptions configures FormatSafeOutputPreview.
type PreviewOptions struct {
	MaxEntries int  // 0 selects the default
	PlainText  bool // plain mode uses tighter field caps and no markup
}

// FormatSafeOutputPreview formats a bounded preview of pending
// downstream action records from a newline-delimited input. Each line
// is decoded independently; malformed lines are skipped silently. The
// total count is taken before truncation. Empty or whitespace-only
// input yields an empty string.
func FormatSafeOutputPreview(input string, opts PreviewOptions) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	maxEntries := opts.MaxEntries
	if maxEntries <= 0 {
		maxEntries = defaultPreviewMaxEntries
	}

	var records []PreviewEntry
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var record PreviewEntry
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			continue
		}
		if record.Type == "" {
			continue
		}
		records = append(records, record)
	}
	if len(records) == 0 {
		return ""
	}

	titleMax, bodyMax := previewRichTitleMax, previewRichBodyMax
	if opts.PlainText {
		titleMax, bodyMax = previewPlainTitleMax, previewPlainBodyMax
	}

	var b strings.Builder
	if opts.PlainText {
		fmt.Fprintf(&b, "%d pending output(s)\n", len(records))
	} else {
		fmt.Fprintf(&b, "**%d pending output(s)**\n\n", len(records))
	}

	shown := records
	if len(shown) > maxEntries {
		shown = shown[:maxEntries]
	}
	for _, record := range shown {
		b.WriteString(previewLine(record, titleMax, bodyMax, opts.PlainText))
	}

	if hidden := len(records) - len(shown); hidden > 0 {
		fmt.Fprintf(&b, "... and %d more entries\n", hidden)
	}
	return b.String()
}

func previewLine(record PreviewEntry, titleMax, bodyMax int, plain bool) string {
	var parts []string
	if plain {
		parts = append(parts, record.Type)
	} else {
		parts = append(parts, fmt.Sprintf("**%s**", record.Type))
	}
	if record.Title != "" {
		parts = append(parts, truncateField(record.Title, titleMax))
	}
	if record.Body != "" {
		parts = append(parts, truncateField(record.Body, bodyMax))
	}

	if plain {
		return fmt.Sprintf("- %s\n", strings.Join(parts, ": "))
	}
	return fmt.Sprintf("* %s\n", strings.Join(parts, ": "))
}

// truncateField collapses newlines and cuts the field at the cap,
// keeping the cut on a rune boundary.
func truncateField(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	return cutAtRuneBoundary(s, max) + "..."
}
