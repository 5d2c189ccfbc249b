// Package reporter renders rename plans for the terminal and keeps the
// history file of applied renames.
package reporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Nomadcxx/zeropad/internal/plan"
	"github.com/Nomadcxx/zeropad/internal/scan"
)

// Report bundles everything one scan produced for rendering
type Report struct {
	Timestamp time.Time
	Dir       string
	Plan      plan.Plan
	Skipped   []scan.Skipped
}

// New builds a report for a scanned directory and its plan
func New(dir string, p plan.Plan, skipped []scan.Skipped) Report {
	return Report{
		Timestamp: time.Now(),
		Dir:       dir,
		Plan:      p,
		Skipped:   skipped,
	}
}

// Empty reports whether the scan found no usable files at all
func (r Report) Empty() bool {
	return len(r.Plan.Entries) == 0
}

// Summary generates the human-readable plan text
func (r Report) Summary() string {
	var sb strings.Builder

	sb.WriteString("ZEROPAD RENAME PLAN\n")
	sb.WriteString(strings.Repeat("=", 64) + "\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n", r.Timestamp.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("Directory: %s\n", r.Dir))
	sb.WriteString(fmt.Sprintf("Padding width: %d digits\n", r.Plan.MaxWidth))
	sb.WriteString("\n")

	renames := r.Plan.Renames()
	unchanged := r.Plan.Unchanged()

	sb.WriteString(fmt.Sprintf("RENAMES (%d)\n", len(renames)))
	sb.WriteString(strings.Repeat("=", 64) + "\n")
	if len(renames) == 0 {
		sb.WriteString("Nothing to rename; all files are already padded.\n")
	}
	for _, e := range renames {
		sb.WriteString(fmt.Sprintf("  %s  ->  %s\n", e.File.Name(), e.NewName))
	}
	sb.WriteString("\n")

	if len(unchanged) > 0 {
		sb.WriteString(fmt.Sprintf("ALREADY CORRECT (%d)\n", len(unchanged)))
		sb.WriteString(strings.Repeat("=", 64) + "\n")
		for _, e := range unchanged {
			sb.WriteString(fmt.Sprintf("  %s\n", e.File.Name()))
		}
		sb.WriteString("\n")
	}

	if len(r.Skipped) > 0 {
		sb.WriteString(fmt.Sprintf("SKIPPED (%d)\n", len(r.Skipped)))
		sb.WriteString(strings.Repeat("=", 64) + "\n")
		for _, s := range r.Skipped {
			sb.WriteString(fmt.Sprintf("  %s: %v\n", s.Name, s.Reason))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// AppendHistory records applied renames in the history file so users can
// trace what a past run did. The history is a log, not an undo journal.
func AppendHistory(path string, dir string, entries []plan.Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer f.Close()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	for _, e := range entries {
		if !e.NeedsRename() {
			continue
		}
		line := fmt.Sprintf("%s | %s | %s -> %s\n", timestamp, dir, e.File.Name(), e.NewName)
		if _, err := f.WriteString(line); err != nil {
			return fmt.Errorf("failed to write history: %w", err)
		}
	}

	return nil
}
