package rename

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/Nomadcxx/zeropad/internal/plan"
	"github.com/Nomadcxx/zeropad/internal/scan"
)

func createFiles(t *testing.T, dir string, names []string) {
	t.Helper()
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("x"), 0644); err != nil {
			t.Fatalf("failed to create %s: %v", n, err)
		}
	}
}

func scanAndBuild(t *testing.T, dir string) plan.Plan {
	t.Helper()
	result, err := scan.Directory(dir)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	return plan.Build(result.Files)
}

func TestApplyRenamesFiles(t *testing.T) {
	tmpDir := t.TempDir()
	var names []string
	for i := 1; i <= 10; i++ {
		names = append(names, fmt.Sprintf("paris (%d).jpg", i))
	}
	names = append(names, "paris (734).jpg")
	createFiles(t, tmpDir, names)

	p := scanAndBuild(t, tmpDir)
	result, err := Apply(p, tmpDir, false)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if result.Renamed != 10 {
		t.Errorf("Renamed = %d, want 10", result.Renamed)
	}
	if result.Unchanged != 1 {
		t.Errorf("Unchanged = %d, want 1", result.Unchanged)
	}
	if len(result.Entries) != 11 {
		t.Errorf("Entries has %d items, want the full plan of 11", len(result.Entries))
	}

	for _, want := range []string{"paris (001).jpg", "paris (010).jpg", "paris (734).jpg"} {
		if _, err := os.Stat(filepath.Join(tmpDir, want)); err != nil {
			t.Errorf("expected %s to exist after apply: %v", want, err)
		}
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "paris (1).jpg")); !os.IsNotExist(err) {
		t.Error("old name paris (1).jpg still exists after apply")
	}
}

func TestApplyDryRunTouchesNothing(t *testing.T) {
	tmpDir := t.TempDir()
	names := []string{"paris (1).jpg", "paris (734).jpg"}
	createFiles(t, tmpDir, names)

	p := scanAndBuild(t, tmpDir)
	result, err := Apply(p, tmpDir, true)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if !result.DryRun {
		t.Error("result not marked as dry run")
	}
	if result.Renamed != 1 {
		t.Errorf("Renamed = %d, want 1", result.Renamed)
	}
	for _, n := range names {
		if _, err := os.Stat(filepath.Join(tmpDir, n)); err != nil {
			t.Errorf("dry run moved %s: %v", n, err)
		}
	}
}

func TestApplyAbortsOnValidationFailure(t *testing.T) {
	tmpDir := t.TempDir()
	names := []string{"paris (1).jpg", "paris (734).jpg"}
	createFiles(t, tmpDir, names)
	// Occupy the planned target so validation must fail.
	createFiles(t, tmpDir, []string{"paris (001).jpg"})

	p := scanAndBuild(t, tmpDir)
	_, err := Apply(p, tmpDir, false)

	var conflict *plan.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Apply = %v, want ConflictError", err)
	}
	// Nothing may have been touched.
	if _, err := os.Stat(filepath.Join(tmpDir, "paris (1).jpg")); err != nil {
		t.Errorf("validation failure mutated the directory: %v", err)
	}
}

func TestApplyStopsOnFirstFailure(t *testing.T) {
	tmpDir := t.TempDir()
	names := []string{"paris (1).jpg", "paris (2).jpg", "paris (734).jpg"}
	createFiles(t, tmpDir, names)

	p := scanAndBuild(t, tmpDir)
	// Remove the second source after planning; its rename will fail while
	// the first one succeeds.
	if err := os.Remove(filepath.Join(tmpDir, "paris (2).jpg")); err != nil {
		t.Fatalf("failed to remove source: %v", err)
	}

	_, err := Apply(p, tmpDir, false)

	var failed *FailedError
	if !errors.As(err, &failed) {
		t.Fatalf("Apply = %v, want FailedError", err)
	}
	if filepath.Base(failed.OldPath) != "paris (2).jpg" {
		t.Errorf("FailedError.OldPath = %q, want paris (2).jpg", failed.OldPath)
	}

	// The first rename stands; there is no rollback.
	if _, err := os.Stat(filepath.Join(tmpDir, "paris (001).jpg")); err != nil {
		t.Errorf("expected paris (001).jpg from the rename before the failure: %v", err)
	}
}
