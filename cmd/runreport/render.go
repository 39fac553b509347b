package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/strawgate/runreport/internal/config"
	"github.com/strawgate/runreport/internal/console"
	"github.com/strawgate/runreport/internal/logging"
	"github.com/strawgate/runreport/internal/pager"
	"github.com/strawgate/runreport/internal/report"
	"github.com/strawgate/runreport/internal/telemetry"
)

// Run renders a report from the given log file.
func (c *RenderCmd) Run() error {
	logger := logging.New().WithComponent("render")
	if c.Verbose > 0 {
		logger.SetLevel(logging.LevelDebug)
	}

	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}

	engine := cfg.Engine.ID
	maxTurns := cfg.Engine.MaxTurns
	if c.Workflow != "" {
		fm, err := config.LoadWorkflowFrontmatter(c.Workflow)
		if err != nil {
			return fmt.Errorf("workflow %s: %w", c.Workflow, err)
		}
		if fm.Engine.ID != "" {
			engine = fm.Engine.ID
		}
		if fm.Engine.MaxTurns > 0 {
			maxTurns = fm.Engine.MaxTurns
		}
	}
	if c.Engine != "" {
		engine = c.Engine
	}
	if engine == "" {
		engine = "claude"
	}
	if c.MaxTurns > 0 {
		maxTurns = c.MaxTurns
	}

	format := cfg.Report.Format
	if c.Format != "" {
		format = c.Format
	}
	if format == "" {
		format = "markdown"
	}

	parse, err := engineParseFunc(engine, report.ClaudeOptions{
		TurnBudget: maxTurns,
		SizeLimit:  cfg.Report.SizeLimit,
	})
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(c.Log)
	if err != nil {
		return fmt.Errorf("failed to read log: %w", err)
	}

	ctx := context.Background()
	logger.ParseStart(c.Log, len(raw))
	start := time.Now()

	ctx, span := telemetry.StartParseSpan(ctx, engine, c.Log)
	result := report.Wrap(parse, engine, string(raw))
	telemetry.EndParseSpan(span, len(result.LogEntries), nil)
	logger.ParseComplete(c.Log, len(result.LogEntries), time.Since(start))

	if msg, ok := result.Extras["parse_error"].(string); ok {
		logger.EngineError(engine, errors.New(msg))
		fmt.Fprintln(os.Stderr, console.FormatErrorMessage(fmt.Sprintf("Failed to parse %s log: %s", engine, msg)))
	}

	for _, server := range result.MCPFailures {
		fmt.Fprintln(os.Stderr, console.FormatWarningMessage(fmt.Sprintf("MCP server failed to start: %s", server)))
	}
	if result.MaxTurnsHit {
		fmt.Fprintln(os.Stderr, console.FormatWarningMessage(fmt.Sprintf("Run hit the configured turn budget (%d)", maxTurns)))
	}

	_, renderSpan := telemetry.StartRenderSpan(ctx, format)
	var output string
	switch format {
	case "text":
		output = report.RenderPlainText(result.LogEntries)
	case "terminal":
		output = report.RenderTerminal(result.LogEntries)
	default:
		output = result.Markdown
	}
	telemetry.EndRenderSpan(renderSpan, len(output), result.SizeLimitReached)
	logger.RenderComplete(format, len(output), result.SizeLimitReached)

	if result.SizeLimitReached {
		fmt.Fprintln(os.Stderr, console.FormatWarningMessage("Report truncated at the configured size limit"))
	}

	return c.emit(format, output)
}

// emit writes the rendered report to the requested destination.
func (c *RenderCmd) emit(format, output string) error {
	if c.Out != "" {
		path := c.Out
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			path = filepath.Join(path, uuid.NewString()+formatExtension(format))
		}
		if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Fprintln(os.Stderr, console.FormatSuccessMessage(fmt.Sprintf("Report written to %s (%s)", path, console.FormatFileSize(int64(len(output))))))
		return nil
	}

	// Use interactive pager when stdout is a TTY and not disabled
	if !c.NoPager && isTerminal(os.Stdout) {
		return pager.Run(filepath.Base(c.Log), output)
	}
	fmt.Print(output)
	return nil
}

// loadConfig loads the named config file, or the default one.
func loadConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// engineParseFunc maps an engine id to its parse function.
func engineParseFunc(engine string, opts report.ClaudeOptions) (report.ParseFunc, error) {
	switch engine {
	case "claude":
		return report.ClaudeParseFunc(opts), nil
	default:
		return nil, fmt.Errorf("unknown engine %q", engine)
	}
}

// formatExtension returns the file extension for a report format.
func formatExtension(format string) string {
	if format == "text" {
		return ".txt"
	}
	return ".md"
}
