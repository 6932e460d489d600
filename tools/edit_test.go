package tools_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/petasbytes/fileagent/tools"
)

func TestEdit_SingleReplacement(t *testing.T) {
	writeFixture(t, rel(t, "a.go"), "package main\n\nfunc old() {}\n")

	out, err := callTool(t, tools.EditDefinition, tools.EditInput{
		FilePath:  rel(t, "a.go"),
		OldString: "func old()",
		NewString: "func renamed()",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out, "Made 1 replacement\n") {
		t.Fatalf("unexpected result: %s", out)
	}
	if !strings.Contains(out, "around line 3") {
		t.Fatalf("change location missing: %s", out)
	}

	b, _ := os.ReadFile(filepath.Join(sharedDir, rel(t, "a.go")))
	if !strings.Contains(string(b), "func renamed()") {
		t.Fatalf("edit not applied: %q", string(b))
	}
}

func TestEdit_AmbiguousMatchRejected(t *testing.T) {
	writeFixture(t, rel(t, "dup.txt"), "x = 1\ny = 1\n")

	_, err := callTool(t, tools.EditDefinition, tools.EditInput{
		FilePath:  rel(t, "dup.txt"),
		OldString: "= 1",
		NewString: "= 2",
	})
	if err == nil {
		t.Fatal("expected ambiguity error")
	}
	if !strings.Contains(err.Error(), "lines") {
		t.Fatalf("error should list match lines: %v", err)
	}

	b, _ := os.ReadFile(filepath.Join(sharedDir, rel(t, "dup.txt")))
	if string(b) != "x = 1\ny = 1\n" {
		t.Fatalf("file modified despite error: %q", string(b))
	}
}

func TestEdit_ReplaceAll(t *testing.T) {
	writeFixture(t, rel(t, "dup.txt"), "x = 1\ny = 1\n")

	out, err := callTool(t, tools.EditDefinition, tools.EditInput{
		FilePath:   rel(t, "dup.txt"),
		OldString:  "= 1",
		NewString:  "= 2",
		ReplaceAll: true,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out, "Made 2 replacements") {
		t.Fatalf("unexpected result: %s", out)
	}

	b, _ := os.ReadFile(filepath.Join(sharedDir, rel(t, "dup.txt")))
	if string(b) != "x = 2\ny = 2\n" {
		t.Fatalf("replace all incomplete: %q", string(b))
	}
}

func TestEdit_MissingPattern(t *testing.T) {
	writeFixture(t, rel(t, "c.txt"), "content")

	_, err := callTool(t, tools.EditDefinition, tools.EditInput{
		FilePath:  rel(t, "c.txt"),
		OldString: "absent",
		NewString: "anything",
	})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not-found error, got: %v", err)
	}
}
