package parse

import "fmt"

// NoNumberGroupError reports a filename without any parenthesized number
// group.
type NoNumberGroupError struct {
	Name string
}

func (e *NoNumberGroupError) Error() string {
	return fmt.Sprintf("filename %q must include exactly one parenthesized number group", e.Name)
}

// MultipleNumberGroupsError reports a filename with more than one
// parenthesized number group.
type MultipleNumberGroupsError struct {
	Name  string
	Count int
}

func (e *MultipleNumberGroupsError) Error() string {
	return fmt.Sprintf("filename %q contains %d parenthesized number groups, want exactly one", e.Name, e.Count)
}

// InvalidNumberError reports digits that did not parse as a uint64,
// e.g. a value beyond its range.
type InvalidNumberError struct {
	Name   string
	Digits string
	Err    error
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("number group %q in filename %q is not a valid number: %v", e.Digits, e.Name, e.Err)
}

func (e *InvalidNumberError) Unwrap() error { return e.Err }
