// Package rename applies a validated rename plan to the filesystem.
package rename

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Nomadcxx/zeropad/internal/plan"
)

// Result summarizes one apply run.
type Result struct {
	// Entries is the complete plan, changed and unchanged, so the caller
	// can report totals.
	Entries   []plan.Entry
	Renamed   int
	Unchanged int
	DryRun    bool
}

// Apply validates the plan against dir and then renames every entry that
// needs it, in plan order. Validation failures abort before any mutation.
// A failing rename aborts immediately; renames applied before the failure
// are not rolled back, the returned *FailedError says so.
//
// With dryRun set, validation still runs but the filesystem is left
// untouched.
func Apply(p plan.Plan, dir string, dryRun bool) (Result, error) {
	if err := plan.Validate(p, dir); err != nil {
		return Result{}, err
	}

	result := Result{Entries: p.Entries, DryRun: dryRun}
	for _, e := range p.Entries {
		if !e.NeedsRename() {
			result.Unchanged++
			continue
		}

		oldPath := filepath.Join(dir, e.File.Name())
		newPath := filepath.Join(dir, e.NewName)
		if !dryRun {
			if err := os.Rename(oldPath, newPath); err != nil {
				return result, &FailedError{OldPath: oldPath, NewPath: newPath, Err: err}
			}
		}
		result.Renamed++
	}

	return result, nil
}

// FailedError reports a rename that failed partway through an apply run.
type FailedError struct {
	OldPath string
	NewPath string
	Err     error
}

func (e *FailedError) Error() string {
	return fmt.Sprintf("cannot rename %q to %q: %v (renames applied before this failure keep their new names, the directory may be in a mixed state)",
		e.OldPath, e.NewPath, e.Err)
}

func (e *FailedError) Unwrap() error { return e.Err }
