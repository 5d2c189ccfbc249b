package reporter

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Nomadcxx/zeropad/internal/parse"
	"github.com/Nomadcxx/zeropad/internal/plan"
	"github.com/Nomadcxx/zeropad/internal/scan"
)

func buildPlan(t *testing.T, names []string) plan.Plan {
	t.Helper()
	var files []parse.ParsedFile
	for _, n := range names {
		pf, err := parse.Parse(n)
		if err != nil {
			t.Fatalf("parse %q: %v", n, err)
		}
		files = append(files, pf)
	}
	return plan.Build(files)
}

func TestSummaryListsRenamesAndUnchanged(t *testing.T) {
	p := buildPlan(t, []string{"paris (1).jpg", "paris (10).jpg", "paris (734).jpg"})
	r := New("/photos/paris", p, nil)

	summary := r.Summary()

	wantLines := []string{
		"Directory: /photos/paris",
		"Padding width: 3 digits",
		"RENAMES (2)",
		"paris (1).jpg  ->  paris (001).jpg",
		"paris (10).jpg  ->  paris (010).jpg",
		"ALREADY CORRECT (1)",
		"paris (734).jpg",
	}
	for _, want := range wantLines {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q\n%s", want, summary)
		}
	}
}

func TestSummaryListsSkippedFiles(t *testing.T) {
	p := buildPlan(t, []string{"paris (1).jpg", "paris (2).jpg"})
	skipped := []scan.Skipped{
		{Name: "invalid (100) (19231).jpg", Reason: errors.New("two number groups")},
	}
	r := New("/photos", p, skipped)

	summary := r.Summary()
	if !strings.Contains(summary, "SKIPPED (1)") {
		t.Errorf("summary missing skipped section\n%s", summary)
	}
	if !strings.Contains(summary, "invalid (100) (19231).jpg") {
		t.Errorf("summary missing skipped filename\n%s", summary)
	}
}

func TestSummaryEmptyPlan(t *testing.T) {
	r := New("/photos", plan.Plan{}, nil)

	if !r.Empty() {
		t.Error("expected Empty() for a plan with no entries")
	}
	if !strings.Contains(r.Summary(), "Nothing to rename") {
		t.Error("summary of empty plan should say there is nothing to rename")
	}
}

func TestAppendHistory(t *testing.T) {
	tmpDir := t.TempDir()
	historyPath := filepath.Join(tmpDir, "share", "history.log")

	p := buildPlan(t, []string{"paris (1).jpg", "paris (734).jpg"})
	if err := AppendHistory(historyPath, "/photos", p.Entries); err != nil {
		t.Fatalf("AppendHistory failed: %v", err)
	}

	data, err := os.ReadFile(historyPath)
	if err != nil {
		t.Fatalf("failed to read history: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "paris (1).jpg -> paris (001).jpg") {
		t.Errorf("history missing rename line:\n%s", content)
	}
	if strings.Contains(content, "paris (734).jpg") {
		t.Errorf("history contains unchanged entry:\n%s", content)
	}

	// A second run appends rather than truncates.
	if err := AppendHistory(historyPath, "/photos", p.Entries); err != nil {
		t.Fatalf("second AppendHistory failed: %v", err)
	}
	data, _ = os.ReadFile(historyPath)
	if got := strings.Count(string(data), "paris (1).jpg"); got != 2 {
		t.Errorf("expected 2 history lines after second append, got %d", got)
	}
}
