package main

import (
	"testing"

	"github.com/alecthomas/kong"

	"github.com/strawgate/runreport/internal/report"
)

func TestRenderCmd_Defaults(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kongVars())
	if err != nil {
		t.Fatal(err)
	}

	_, err = parser.Parse([]string{"render", "run.log"})
	if err != nil {
		t.Fatal(err)
	}

	if cli.Render.Log != "run.log" {
		t.Errorf("expected log 'run.log', got %q", cli.Render.Log)
	}
	if cli.Render.Format != "" {
		t.Errorf("format flag should default empty, got %q", cli.Render.Format)
	}
	if cli.Render.Engine != "" {
		t.Errorf("engine flag should default empty, got %q", cli.Render.Engine)
	}
}

func TestRenderCmd_AllFlags(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kongVars())
	if err != nil {
		t.Fatal(err)
	}

	_, err = parser.Parse([]string{
		"render", "run.log",
		"--format", "text",
		"--max-turns", "20",
		"--workflow", "workflow.md",
		"--no-pager",
		"-o", "/tmp/report",
	})
	if err != nil {
		t.Fatal(err)
	}

	if cli.Render.Format != "text" {
		t.Errorf("expected format text, got %q", cli.Render.Format)
	}
	if cli.Render.MaxTurns != 20 {
		t.Errorf("expected max-turns 20, got %d", cli.Render.MaxTurns)
	}
	if cli.Render.Workflow != "workflow.md" {
		t.Errorf("expected workflow path, got %q", cli.Render.Workflow)
	}
	if !cli.Render.NoPager {
		t.Error("expected no-pager to be true")
	}
	if cli.Render.Out != "/tmp/report" {
		t.Errorf("expected out path, got %q", cli.Render.Out)
	}
}

func TestRenderCmd_InvalidFormat(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kongVars())
	if err != nil {
		t.Fatal(err)
	}

	_, err = parser.Parse([]string{"render", "run.log", "--format", "pdf"})
	if err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestRenderCmd_Verbose(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kongVars())
	if err != nil {
		t.Fatal(err)
	}

	_, err = parser.Parse([]string{"render", "-vv", "run.log"})
	if err != nil {
		t.Fatal(err)
	}

	if cli.Render.Verbose != 2 {
		t.Errorf("expected verbose=2, got %d", cli.Render.Verbose)
	}
}

func TestPreviewCmd(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kongVars())
	if err != nil {
		t.Fatal(err)
	}

	_, err = parser.Parse([]string{"preview", "safe_output.jsonl", "--max-entries", "5", "--plain"})
	if err != nil {
		t.Fatal(err)
	}

	if cli.Preview.File != "safe_output.jsonl" {
		t.Errorf("expected file 'safe_output.jsonl', got %q", cli.Preview.File)
	}
	if cli.Preview.MaxEntries != 5 {
		t.Errorf("expected max-entries 5, got %d", cli.Preview.MaxEntries)
	}
	if !cli.Preview.Plain {
		t.Error("expected plain to be true")
	}
}

func TestEngineParseFunc_Unknown(t *testing.T) {
	if _, err := engineParseFunc("copilot", report.ClaudeOptions{}); err == nil {
		t.Error("expected error for unknown engine")
	}
	if _, err := engineParseFunc("claude", report.ClaudeOptions{}); err != nil {
		t.Errorf("claude engine should resolve: %v", err)
	}
}

func TestFormatExtension(t *testing.T) {
	if got := formatExtension("text"); got != ".txt" {
		t.Errorf("text extension = %q", got)
	}
	if got := formatExtension("markdown"); got != ".md" {
		t.Errorf("markdown extension = %q", got)
	}
	if got := formatExtension("terminal"); got != ".md" {
		t.Errorf("terminal extension = %q", got)
	}
}
