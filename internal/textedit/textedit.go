// Package textedit implements exact-match text replacement with postcondition
// verification.
//
// The engine is pure: it derives new content from old content and never
// touches disk. Callers (the edit and multi_edit tools) read the file, run
// the engine, and perform a single whole-file overwrite only after the
// engine has verified the result. A failed postcondition therefore leaves
// the file byte-identical to its pre-call state.
package textedit

import (
	"errors"
	"fmt"
	"strings"
)

// MaxOperations bounds one multi-edit batch.
const MaxOperations = 50

// Span locates one occurrence of a pattern: byte offsets plus the 1-based
// line number of the match start.
type Span struct {
	Start int
	End   int
	Line  int
}

// Operation describes one exact-match replacement.
type Operation struct {
	Old        string `json:"old_string"`
	New        string `json:"new_string"`
	ReplaceAll bool   `json:"replace_all,omitempty"`
}

// Validation failures shared by single and batch edits.
var (
	ErrEmptyPattern = errors.New("old_string cannot be empty")
	ErrNoOpEdit     = errors.New("old_string and new_string are identical - no changes needed")
)

// NotFoundError reports a pattern with zero occurrences.
type NotFoundError struct {
	Old string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("old_string not found in file: %q. Make sure the string matches exactly, including whitespace and indentation.", e.Old)
}

// AmbiguousError reports a single-occurrence edit whose pattern matched more
// than once. Lines enumerates every matching line number.
type AmbiguousError struct {
	Old   string
	Lines []int
}

func (e *AmbiguousError) Error() string {
	nums := make([]string, len(e.Lines))
	for i, n := range e.Lines {
		nums[i] = fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("old_string %q found %d times; provide more context to make it unique or set replace_all=true. Found at lines: %s",
		e.Old, len(e.Lines), strings.Join(nums, ", "))
}

// PostconditionError reports a replacement whose verification re-scan found
// an unexpected number of remaining occurrences. It is a correctness
// violation: the candidate content is discarded, never written.
type PostconditionError struct {
	Want int
	Got  int
}

func (e *PostconditionError) Error() string {
	return fmt.Sprintf("replacement verification failed: expected %d remaining occurrence(s) of old_string, found %d; no changes applied", e.Want, e.Got)
}

// FindMatches scans content for occurrences of pattern, advancing one byte
// past each match start before continuing, and records byte offsets and
// 1-based line numbers. An empty pattern yields no matches.
func FindMatches(content, pattern string) []Span {
	if pattern == "" {
		return nil
	}
	var spans []Span
	line := 1
	prev := 0
	for from := 0; from <= len(content)-len(pattern); {
		i := strings.Index(content[from:], pattern)
		if i < 0 {
			break
		}
		at := from + i
		line += strings.Count(content[prev:at], "\n")
		prev = at
		spans = append(spans, Span{Start: at, End: at + len(pattern), Line: line})
		from = at + 1
	}
	return spans
}

// Replace applies op to content and returns the verified result plus the
// number of replacements made.
//
// Contract:
//  1. op.Old must be non-empty and differ from op.New.
//  2. The pattern must occur at least once; without ReplaceAll it must occur
//     exactly once (otherwise the error lists every matching line).
//  3. After replacing, the content is re-scanned: ReplaceAll requires zero
//     remaining occurrences, a single replacement requires exactly one fewer
//     than before. Any other count fails the edit.
func Replace(content string, op Operation) (string, int, error) {
	if op.Old == "" {
		return "", 0, ErrEmptyPattern
	}
	if op.Old == op.New {
		return "", 0, ErrNoOpEdit
	}

	spans := FindMatches(content, op.Old)
	if len(spans) == 0 {
		return "", 0, &NotFoundError{Old: op.Old}
	}
	if !op.ReplaceAll && len(spans) > 1 {
		lines := make([]int, len(spans))
		for i, s := range spans {
			lines[i] = s.Line
		}
		return "", 0, &AmbiguousError{Old: op.Old, Lines: lines}
	}

	n := 1
	if op.ReplaceAll {
		n = -1
	}
	result := strings.Replace(content, op.Old, op.New, n)

	// Verify: re-scan for the pattern and compare against the expected count.
	// This converts silent over/under-application (e.g. new text containing
	// the pattern) into a reported failure instead of quiet corruption.
	remaining := len(FindMatches(result, op.Old))
	want := 0
	if !op.ReplaceAll {
		want = len(spans) - 1
	}
	if remaining != want {
		return "", 0, &PostconditionError{Want: want, Got: remaining}
	}

	replaced := 1
	if op.ReplaceAll {
		replaced = len(spans)
	}
	return result, replaced, nil
}

// ValidateSequence checks batch-level constraints before any operation runs:
// a non-empty list of at most MaxOperations entries, none with an empty or
// no-op pattern. Failures identify the offending operation by 1-based index.
func ValidateSequence(ops []Operation) error {
	if len(ops) == 0 {
		return errors.New("no edits provided")
	}
	if len(ops) > MaxOperations {
		return fmt.Errorf("too many edits (%d); maximum %d per call", len(ops), MaxOperations)
	}
	for i, op := range ops {
		if op.Old == "" {
			return fmt.Errorf("edit #%d: %w", i+1, ErrEmptyPattern)
		}
		if op.Old == op.New {
			return fmt.Errorf("edit #%d: %w", i+1, ErrNoOpEdit)
		}
	}
	return nil
}

// ApplySequence applies ops in order against an in-memory buffer, each
// operation running its full single-edit contract against the previous
// operation's output. On any failure it returns an error identifying the
// failed operation, and the caller must not write anything: atomicity is
// achieved by deferring the single disk write until every operation has
// succeeded.
//
// The returned counts hold replacements made per operation.
func ApplySequence(content string, ops []Operation) (string, []int, error) {
	if err := ValidateSequence(ops); err != nil {
		return "", nil, err
	}

	buf := content
	counts := make([]int, 0, len(ops))
	for i, op := range ops {
		next, n, err := Replace(buf, op)
		if err != nil {
			return "", nil, fmt.Errorf("edit #%d failed: %w; no modifications made to the file", i+1, err)
		}
		buf = next
		counts = append(counts, n)
	}
	return buf, counts, nil
}
