// Package parse extracts the parenthesized number group from filenames
// like "paris (42).jpg".
package parse

import (
	"regexp"
	"strconv"
)

// numberGroup matches one parenthesized run of ASCII digits, e.g. "(42)".
// Compiled once at startup and never mutated.
var numberGroup = regexp.MustCompile(`\([0-9]+\)`)

// ParsedFile is a filename that contains exactly one parenthesized number
// group. It is constructed by Parse and immutable afterwards.
type ParsedFile struct {
	name   string
	start  int // first digit, inclusive (opening parenthesis excluded)
	end    int // past last digit, exclusive (closing parenthesis excluded)
	number uint64
}

// Parse validates that name contains exactly one number group and returns
// the parsed result. name must be a bare filename, not a path.
//
// Names with zero groups fail with *NoNumberGroupError, names with two or
// more fail with *MultipleNumberGroupsError. A second group is rejected
// even though only one of them could be the numbering group; renaming a
// file whose other parenthetical content merely looks numeric is worse
// than skipping it.
func Parse(name string) (ParsedFile, error) {
	matches := numberGroup.FindAllStringIndex(name, -1)
	switch {
	case len(matches) == 0:
		return ParsedFile{}, &NoNumberGroupError{Name: name}
	case len(matches) > 1:
		return ParsedFile{}, &MultipleNumberGroupsError{Name: name, Count: len(matches)}
	}

	// Strip the parentheses from the matched span.
	start := matches[0][0] + 1
	end := matches[0][1] - 1

	digits := name[start:end]
	number, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return ParsedFile{}, &InvalidNumberError{Name: name, Digits: digits, Err: err}
	}

	return ParsedFile{
		name:   name,
		start:  start,
		end:    end,
		number: number,
	}, nil
}

// Name returns the original filename.
func (f ParsedFile) Name() string { return f.name }

// Number returns the value of the number group.
func (f ParsedFile) Number() uint64 { return f.number }

// Span returns the half-open range of the digits inside Name,
// parentheses excluded.
func (f ParsedFile) Span() (start, end int) { return f.start, f.end }

// Prefix returns everything before the digits, including the opening
// parenthesis. Derived from the name and span on every call.
func (f ParsedFile) Prefix() string { return f.name[:f.start] }

// Suffix returns everything after the digits, including the closing
// parenthesis.
func (f ParsedFile) Suffix() string { return f.name[f.end:] }

func (f ParsedFile) String() string { return f.name }
