// Package scan lists a directory and partitions its regular files into
// parsed rename candidates and skipped entries.
package scan

import (
	"fmt"
	"os"

	"github.com/Nomadcxx/zeropad/internal/parse"
)

// Skipped records one file that was excluded from the candidate set,
// together with the parse failure that excluded it.
type Skipped struct {
	Name   string
	Reason error
}

// Result is the outcome of scanning one directory. Files that fail to
// parse never abort the scan; they land in Skipped so the caller can
// report them.
type Result struct {
	Dir     string
	Files   []parse.ParsedFile
	Skipped []Skipped
}

// Directory reads the regular files of dir at depth 0 (subdirectories and
// non-regular entries excluded) and parses each filename. An unreadable
// directory is fatal and returns a *ReadDirError.
func Directory(dir string) (Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Result{}, &ReadDirError{Path: dir, Err: err}
	}

	result := Result{Dir: dir}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return Result{}, &ReadDirError{Path: dir, Err: err}
		}
		if !info.Mode().IsRegular() {
			continue
		}

		pf, err := parse.Parse(entry.Name())
		if err != nil {
			result.Skipped = append(result.Skipped, Skipped{Name: entry.Name(), Reason: err})
			continue
		}
		result.Files = append(result.Files, pf)
	}

	return result, nil
}

// ReadDirError reports a directory that could not be listed.
type ReadDirError struct {
	Path string
	Err  error
}

func (e *ReadDirError) Error() string {
	return fmt.Sprintf("cannot read directory %q: %v", e.Path, e.Err)
}

func (e *ReadDirError) Unwrap() error { return e.Err }
