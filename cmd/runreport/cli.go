// Package main defines the CLI structure using kong.
package main

import "github.com/alecthomas/kong"

// CLI defines the command-line interface.
type CLI struct {
	Render  RenderCmd  `cmd:"" default:"withargs" help:"Render a report from an agent run log"`
	Preview PreviewCmd `cmd:"" help:"Preview pending safe outputs from an NDJSON file"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// RenderCmd renders a report from a log file.
type RenderCmd struct {
	Log      string `arg:"" help:"Agent run log file"`
	Format   string `enum:",markdown,text,terminal" default:"" help:"Output format (markdown, text, terminal; default: markdown)"`
	Out      string `short:"o" help:"Output file or directory (default: stdout)"`
	Engine   string `help:"Agent engine that produced the log (default: claude)"`
	MaxTurns int    `help:"Turn budget for max-turns detection (0 disables)"`
	Config   string `help:"Config file path"`
	Workflow string `help:"Workflow markdown file to read engine settings from"`
	NoPager  bool   `help:"Disable pager for output"`
	Verbose  int    `short:"v" type:"counter" help:"Verbosity level (-v, -vv)"`
}

// PreviewCmd previews safe output records.
type PreviewCmd struct {
	File       string `arg:"" help:"Safe output NDJSON file"`
	MaxEntries int    `help:"Entries shown before the overflow trailer"`
	Plain      bool   `help:"Plain-text output without markup"`
	Config     string `help:"Config file path"`
}

// VersionCmd shows version information.
type VersionCmd struct{}

// kongVars returns variables for kong (version info).
func kongVars() kong.Vars {
	return kong.Vars{
		"version": version,
	}
}
