package plan

import (
	"fmt"
	"strings"
)

// ConflictError reports planned target paths that already exist on disk.
type ConflictError struct {
	Paths []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("cannot rename: %d new filenames conflict with existing files: %s",
		len(e.Paths), strings.Join(e.Paths, ", "))
}

// AmbiguousPrefixesError reports a directory whose files carry more than
// one distinct prefix before the number group.
type AmbiguousPrefixesError struct {
	Prefixes []string
}

func (e *AmbiguousPrefixesError) Error() string {
	return fmt.Sprintf("files have multiple ambiguous prefixes: %q", e.Prefixes)
}

// AmbiguousSuffixesError reports a directory whose files carry more than
// one distinct suffix after the number group, beyond the tolerated
// case-only difference.
type AmbiguousSuffixesError struct {
	Suffixes []string
}

func (e *AmbiguousSuffixesError) Error() string {
	return fmt.Sprintf("files have multiple ambiguous suffixes: %q", e.Suffixes)
}
