package tools_test

import (
	"strings"
	"testing"

	"github.com/petasbytes/fileagent/tools"
)

func TestGrep_ContentModeWithLineNumbers(t *testing.T) {
	writeFixture(t, rel(t, "src", "a.go"), "package a\n\nfunc Hello() {}\n")
	writeFixture(t, rel(t, "src", "b.go"), "package a\n\nfunc World() {}\n")

	out, err := callTool(t, tools.GrepDefinition, tools.GrepInput{
		Pattern:     `func \w+`,
		Path:        rel(t, "src"),
		OutputMode:  "content",
		LineNumbers: true,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out, "a.go:3:func Hello() {}") {
		t.Fatalf("content match missing:\n%s", out)
	}
	if !strings.Contains(out, "b.go:3:func World() {}") {
		t.Fatalf("second file missing:\n%s", out)
	}
}

func TestGrep_FilesWithMatchesDefault(t *testing.T) {
	writeFixture(t, rel(t, "x.txt"), "needle here\n")
	writeFixture(t, rel(t, "y.txt"), "nothing\n")

	out, err := callTool(t, tools.GrepDefinition, tools.GrepInput{
		Pattern: "needle",
		Path:    t.Name(),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out, "x.txt") || strings.Contains(out, "y.txt") {
		t.Fatalf("file list wrong:\n%s", out)
	}
}

func TestGrep_CountMode(t *testing.T) {
	writeFixture(t, rel(t, "c.txt"), "hit\nmiss\nhit\n")

	out, err := callTool(t, tools.GrepDefinition, tools.GrepInput{
		Pattern:    "hit",
		Path:       t.Name(),
		OutputMode: "count",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "c.txt:2") {
		t.Fatalf("count wrong:\n%s", out)
	}
}

func TestGrep_CaseInsensitive(t *testing.T) {
	writeFixture(t, rel(t, "ci.txt"), "MixedCase\n")

	out, err := callTool(t, tools.GrepDefinition, tools.GrepInput{
		Pattern:         "mixedcase",
		Path:            t.Name(),
		CaseInsensitive: true,
		OutputMode:      "content",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out, "MixedCase") {
		t.Fatalf("case-insensitive match missing:\n%s", out)
	}
}

func TestGrep_GlobFilter(t *testing.T) {
	writeFixture(t, rel(t, "k.go"), "token\n")
	writeFixture(t, rel(t, "k.txt"), "token\n")

	out, err := callTool(t, tools.GrepDefinition, tools.GrepInput{
		Pattern: "token",
		Path:    t.Name(),
		Glob:    "*.go",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out, "k.go") || strings.Contains(out, "k.txt") {
		t.Fatalf("glob filter not applied:\n%s", out)
	}
}

func TestGrep_UnknownOutputModeDefaultsToFileList(t *testing.T) {
	writeFixture(t, rel(t, "u.txt"), "needle\nneedle again\n")

	out, err := callTool(t, tools.GrepDefinition, tools.GrepInput{
		Pattern:    "needle",
		Path:       t.Name(),
		OutputMode: "files",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 1 || !strings.HasSuffix(lines[0], "u.txt") {
		t.Fatalf("expected a single file path:\n%s", out)
	}
}

func TestGrep_NoMatches(t *testing.T) {
	writeFixture(t, rel(t, "empty.txt"), "nothing relevant\n")

	out, err := callTool(t, tools.GrepDefinition, tools.GrepInput{
		Pattern: "zzz_absent",
		Path:    t.Name(),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out, "No matches found for pattern: zzz_absent") {
		t.Fatalf("no-match notice missing:\n%s", out)
	}
}

func TestGrep_HeadLimit(t *testing.T) {
	writeFixture(t, rel(t, "h.txt"), "m\nm\nm\nm\nm\n")

	out, err := callTool(t, tools.GrepDefinition, tools.GrepInput{
		Pattern:    "m",
		Path:       t.Name(),
		OutputMode: "content",
		HeadLimit:  2,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := len(strings.Split(strings.TrimSpace(out), "\n")); got != 2 {
		t.Fatalf("head_limit not honored: %d lines\n%s", got, out)
	}
}
