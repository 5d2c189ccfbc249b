package plan

import (
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/cases"
)

// Validate checks that applying the plan inside dir cannot lose data.
// Renames have no rollback, so every check runs before any mutation:
// no planned target name may already exist on disk, and all entries must
// share one prefix and one suffix. Two suffixes that differ only in case
// are tolerated (mixed extension casing like ".jpg" vs ".JPG"); prefixes
// get no such exception.
func Validate(p Plan, dir string) error {
	if err := checkDestinations(p, dir); err != nil {
		return err
	}
	return checkPrefixesAndSuffixes(p)
}

// checkDestinations collects every planned target name that already
// exists in dir. All conflicts are reported at once, not just the first.
func checkDestinations(p Plan, dir string) error {
	var conflicts []string
	for _, e := range p.Entries {
		if !e.NeedsRename() {
			continue
		}
		target := filepath.Join(dir, e.NewName)
		if _, err := os.Stat(target); err == nil {
			conflicts = append(conflicts, target)
		}
	}

	if len(conflicts) > 0 {
		return &ConflictError{Paths: conflicts}
	}
	return nil
}

// checkPrefixesAndSuffixes verifies that every entry, including already
// correctly named ones, belongs to the same naming series.
func checkPrefixesAndSuffixes(p Plan) error {
	prefixes := make(map[string]struct{})
	suffixes := make(map[string]struct{})
	for _, e := range p.Entries {
		prefixes[e.File.Prefix()] = struct{}{}
		suffixes[e.File.Suffix()] = struct{}{}
	}

	if len(prefixes) > 1 {
		return &AmbiguousPrefixesError{Prefixes: sortedKeys(prefixes)}
	}

	if len(suffixes) > 1 {
		if len(suffixes) != 2 || !foldEqual(sortedKeys(suffixes)) {
			return &AmbiguousSuffixesError{Suffixes: sortedKeys(suffixes)}
		}
	}
	return nil
}

// foldEqual reports whether two suffixes are equal under Unicode case
// folding.
func foldEqual(pair []string) bool {
	folder := cases.Fold()
	return folder.String(pair[0]) == folder.String(pair[1])
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
