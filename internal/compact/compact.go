// Package compact shrinks tool results to fit the reasoning engine's context
// budget.
//
// Compaction is pure and keyed by capability name: search output, file
// content, and listings each get a type-specific policy, and everything then
// passes through a flat rune cap as the last-resort bound. Results under a
// policy's threshold are returned unchanged, byte for byte.
package compact

import (
	"fmt"
	"strings"

	"github.com/petasbytes/fileagent/internal/metrics"
)

const (
	// searchLineThreshold is the pass-through bound for search-style results.
	searchLineThreshold = 30
	// fileLineThreshold is the pass-through bound for full file content.
	fileLineThreshold = 2000
	// listItemThreshold is the pass-through bound for listing-style results.
	listItemThreshold = 100
	// flatRuneCap bounds any result regardless of type. Counting runes keeps
	// the cut safe on multi-byte characters.
	flatRuneCap = 30000

	headLines = 50
	tailLines = 10
	windowLen = 50

	elisionMarker = "... [TRUNCATED] ..."
)

// Result applies the policy for the named capability, then the flat cap.
func Result(name, s string) string {
	switch name {
	case "grep":
		s = searchStyle(s)
	case "read":
		s = fileStyle(s)
	case "ls", "glob":
		s = listingStyle(s)
	}
	return capFlat(s)
}

// splitLines splits on newlines, ignoring a single trailing newline so a
// newline-terminated result is not counted one line long.
func splitLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// searchStyle summarizes large match sets: total matches, distinct source
// files, the first 50 lines verbatim, and the last 10 lines verbatim.
func searchStyle(s string) string {
	lines := splitLines(s)
	if len(lines) <= searchLineThreshold {
		return s
	}

	head := lines
	if len(head) > headLines {
		head = head[:headLines]
	}
	tail := lines
	if len(tail) > tailLines {
		tail = tail[len(tail)-tailLines:]
	}

	return fmt.Sprintf(
		"Found %d matches across %d files.\n\nFirst %d matches:\n%s\n\n%s\n\nLast %d matches:\n%s",
		len(lines), distinctSources(lines),
		len(head), strings.Join(head, "\n"),
		elisionMarker,
		len(tail), strings.Join(tail, "\n"),
	)
}

// fileStyle samples large files into three labeled 50-line windows:
// beginning, a window centered at the midpoint, and the end, each labeled
// with its starting line number.
func fileStyle(s string) string {
	lines := splitLines(s)
	if len(lines) <= fileLineThreshold {
		return s
	}

	begin := lines[:windowLen]

	mid := len(lines) / 2
	midStart := mid - windowLen/2
	if midStart < 0 {
		midStart = 0
	}
	midEnd := midStart + windowLen
	if midEnd > len(lines) {
		midEnd = len(lines)
	}
	middle := lines[midStart:midEnd]

	endStart := len(lines) - windowLen
	end := lines[endStart:]

	var b strings.Builder
	fmt.Fprintf(&b, "=== FILE PREVIEW (large file: %d lines) ===\n\n", len(lines))
	fmt.Fprintf(&b, "BEGINNING (lines 1-%d):\n%s\n\n", len(begin), strings.Join(begin, "\n"))
	fmt.Fprintf(&b, "MIDDLE (lines %d-%d, around line %d):\n%s\n\n", midStart+1, midEnd, mid, strings.Join(middle, "\n"))
	fmt.Fprintf(&b, "END (lines %d-%d):\n%s", endStart+1, len(lines), strings.Join(end, "\n"))
	return b.String()
}

// listingStyle summarizes large listings: first 50 items, elision marker,
// last 10 items, with the true total count.
func listingStyle(s string) string {
	lines := splitLines(s)
	if len(lines) <= listItemThreshold {
		return s
	}

	head := lines[:headLines]
	tail := lines[len(lines)-tailLines:]

	return fmt.Sprintf(
		"Large listing (%d items):\n\nFirst %d items:\n%s\n\n%s\n\nLast %d items:\n%s",
		len(lines),
		len(head), strings.Join(head, "\n"),
		elisionMarker,
		len(tail), strings.Join(tail, "\n"),
	)
}

// capFlat truncates any result exceeding flatRuneCap runes and appends a
// marker stating how many characters were removed. Slicing a rune slice,
// not the byte string, keeps multi-byte characters intact at the cut.
func capFlat(s string) string {
	f := metrics.CountFeatures(s)
	if f.Runes <= flatRuneCap {
		return s
	}
	r := []rune(s)
	return fmt.Sprintf("%s\n... [TRUNCATED - %d chars removed]", string(r[:flatRuneCap]), f.Runes-flatRuneCap)
}

// distinctSources counts unique "file:" prefixes in match lines; lines
// without a colon contribute nothing.
func distinctSources(lines []string) int {
	seen := make(map[string]struct{})
	for _, l := range lines {
		if i := strings.IndexByte(l, ':'); i > 0 {
			seen[l[:i]] = struct{}{}
		}
	}
	return len(seen)
}
