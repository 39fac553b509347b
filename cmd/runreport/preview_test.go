package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePreviewFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "safe_output.ndjson")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write safe output: %v", err)
	}
	return path
}

func writePreviewConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "runreport.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestPreviewCmd_ConfigSettings(t *testing.T) {
	file := writePreviewFile(t,
		`{"type":"create_issue","title":"first"}`+"\n"+
			`{"type":"add_comment","body":"second"}`+"\n"+
			`{"type":"create_pr","title":"third"}`+"\n")

	cmd := &PreviewCmd{
		File:   file,
		Config: writePreviewConfig(t, "[preview]\nmax_entries = 1\nplain_text = true\n"),
	}
	out, err := cmd.render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if strings.Contains(out, "**") {
		t.Errorf("config plain_text should suppress markup:\n%s", out)
	}
	if !strings.Contains(out, "3 pending output(s)") {
		t.Errorf("expected total count before truncation:\n%s", out)
	}
	if !strings.Contains(out, "... and 2 more entries") {
		t.Errorf("config max_entries = 1 should hide two entries:\n%s", out)
	}
}

func TestPreviewCmd_FlagOverridesConfig(t *testing.T) {
	file := writePreviewFile(t,
		`{"type":"create_issue","title":"first"}`+"\n"+
			`{"type":"add_comment","body":"second"}`+"\n")

	cmd := &PreviewCmd{
		File:       file,
		MaxEntries: 2,
		Config:     writePreviewConfig(t, "[preview]\nmax_entries = 1\n"),
	}
	out, err := cmd.render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if strings.Contains(out, "more entries") {
		t.Errorf("explicit --max-entries should win over config:\n%s", out)
	}
	if !strings.Contains(out, "first") || !strings.Contains(out, "second") {
		t.Errorf("both entries should be shown:\n%s", out)
	}
}
