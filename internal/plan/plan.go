// Package plan turns parsed filenames into a rename plan that pads every
// number group to the width of the largest number in the directory, and
// validates that the plan is safe to apply.
package plan

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Nomadcxx/zeropad/internal/parse"
)

// Entry pairs a parsed file with the name it should be renamed to.
// NewName is empty when the file is already padded correctly; a non-empty
// NewName always differs from the original name.
type Entry struct {
	File    parse.ParsedFile
	NewName string
}

// NeedsRename reports whether applying the plan will touch this entry.
func (e Entry) NeedsRename() bool { return e.NewName != "" }

// Plan is the full set of rename decisions for one directory scan.
// Entries are ordered ascending by number group value.
type Plan struct {
	Entries []Entry

	// MaxWidth is the digit count of the largest number group value.
	// Every entry is padded to this shared width.
	MaxWidth int
}

// Renames returns the entries that will actually be renamed.
func (p Plan) Renames() []Entry {
	var out []Entry
	for _, e := range p.Entries {
		if e.NeedsRename() {
			out = append(out, e)
		}
	}
	return out
}

// Unchanged returns the entries that are already padded correctly.
func (p Plan) Unchanged() []Entry {
	var out []Entry
	for _, e := range p.Entries {
		if !e.NeedsRename() {
			out = append(out, e)
		}
	}
	return out
}

// Build computes the rename plan for files. An empty input yields an
// empty plan. Building a plan from the renamed outputs of a previous plan
// yields only unchanged entries, so applying a plan is idempotent.
func Build(files []parse.ParsedFile) Plan {
	if len(files) == 0 {
		return Plan{}
	}

	var max uint64
	for _, f := range files {
		if f.Number() > max {
			max = f.Number()
		}
	}
	width := digitCount(max)

	entries := make([]Entry, 0, len(files))
	for _, f := range files {
		name := paddedName(f, width)
		if name == f.Name() {
			name = ""
		}
		entries = append(entries, Entry{File: f, NewName: name})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].File, entries[j].File
		if a.Number() != b.Number() {
			return a.Number() < b.Number()
		}
		return a.Name() < b.Name()
	})

	return Plan{Entries: entries, MaxWidth: width}
}

// paddedName rebuilds the filename with the number group zero-padded to
// width digits.
func paddedName(f parse.ParsedFile, width int) string {
	zeros := leadingZeros(f.Number(), width)
	return f.Prefix() + strings.Repeat("0", zeros) + strconv.FormatUint(f.Number(), 10) + f.Suffix()
}

// digitCount returns the number of decimal digits needed to print n,
// i.e. ceil(log10(n+1)). The padding formula relies on digitCount(0) == 0:
// zero contributes no width of its own.
func digitCount(n uint64) int {
	count := 0
	for n > 0 {
		n /= 10
		count++
	}
	return count
}

// leadingZeros returns how many zeros to prepend so value prints at the
// target width. width is always the maximum digit count over the same
// value set, so the difference cannot be negative.
func leadingZeros(value uint64, width int) int {
	return width - digitCount(value)
}
