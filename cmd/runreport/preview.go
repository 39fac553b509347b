package main

import (
	"fmt"
	"os"

	"github.com/strawgate/runreport/internal/report"
)

// Run previews pending safe output records from an NDJSON file.
func (c *PreviewCmd) Run() error {
	out, err := c.render()
	if err != nil {
		return err
	}
	if out == "" {
		fmt.Println("No pending outputs.")
		return nil
	}
	fmt.Print(out)
	return nil
}

// render produces the preview text, applying config values under any
// explicit flags.
func (c *PreviewCmd) render() (string, error) {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return "", err
	}

	maxEntries := cfg.Preview.MaxEntries
	if c.MaxEntries > 0 {
		maxEntries = c.MaxEntries
	}
	plain := cfg.Preview.PlainText
	if c.Plain {
		plain = true
	}

	raw, err := os.ReadFile(c.File)
	if err != nil {
		return "", fmt.Errorf("failed to read safe output file: %w", err)
	}

	return report.FormatSafeOutputPreview(string(raw), report.PreviewOptions{
		MaxEntries: maxEntries,
		PlainText:  plain,
	}), nil
}

// Run prints version information.
func (c *VersionCmd) Run() error {
	fmt.Printf("runreport version %s (commit: %s, built: %s)\n", version, commit, buildTime)
	return nil
}
