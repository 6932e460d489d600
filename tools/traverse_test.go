package tools_test

import (
	"strings"
	"testing"

	"github.com/petasbytes/fileagent/tools"
)

func TestLs_ListsDirsAndFilesWithSizes(t *testing.T) {
	writeFixture(t, rel(t, "sub", "inner.txt"), "x")
	writeFixture(t, rel(t, "top.txt"), "hello")

	out, err := callTool(t, tools.LsDefinition, tools.LsInput{Path: t.Name()})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out, "sub/") {
		t.Fatalf("subdirectory missing:\n%s", out)
	}
	if !strings.Contains(out, "top.txt (5 B)") {
		t.Fatalf("file with size missing:\n%s", out)
	}
	if strings.Contains(out, "inner.txt") {
		t.Fatalf("listing should not recurse:\n%s", out)
	}
}

func TestLs_IgnorePatterns(t *testing.T) {
	writeFixture(t, rel(t, "keep.txt"), "k")
	writeFixture(t, rel(t, "skip.log"), "s")

	out, err := callTool(t, tools.LsDefinition, tools.LsInput{
		Path:   t.Name(),
		Ignore: []string{".log"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out, "keep.txt") || strings.Contains(out, "skip.log") {
		t.Fatalf("ignore pattern not applied:\n%s", out)
	}
}

func TestLs_EmptyDirectory(t *testing.T) {
	writeFixture(t, rel(t, "only", ".placeholder"), "")
	// List a directory containing only an ignored dotfile pattern.
	out, err := callTool(t, tools.LsDefinition, tools.LsInput{
		Path:   rel(t, "only"),
		Ignore: []string{".*"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out, "(Empty directory)") {
		t.Fatalf("empty notice missing:\n%s", out)
	}
}

func TestLs_MissingPathErrors(t *testing.T) {
	_, err := callTool(t, tools.LsDefinition, tools.LsInput{Path: rel(t, "typo")})
	if err == nil {
		t.Fatal("expected error for nonexistent directory")
	}
	if !strings.Contains(err.Error(), "ERR_PATH_NOT_FOUND") {
		t.Fatalf("expected path-not-found error, got: %v", err)
	}
}

func TestLs_FileTargetErrors(t *testing.T) {
	writeFixture(t, rel(t, "plain.txt"), "x")
	_, err := callTool(t, tools.LsDefinition, tools.LsInput{Path: rel(t, "plain.txt")})
	if err == nil {
		t.Fatal("expected error for file target")
	}
	if !strings.Contains(err.Error(), "ERR_NOT_A_DIRECTORY") {
		t.Fatalf("expected not-a-directory error, got: %v", err)
	}
}

func TestGlob_RecursiveExtensionPattern(t *testing.T) {
	writeFixture(t, rel(t, "a.go"), "x")
	writeFixture(t, rel(t, "deep", "b.go"), "x")
	writeFixture(t, rel(t, "deep", "c.txt"), "x")

	out, err := callTool(t, tools.GlobDefinition, tools.GlobInput{
		Pattern: "**/*.go",
		Path:    t.Name(),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out, "Found 2 files") {
		t.Fatalf("match count wrong:\n%s", out)
	}
	if !strings.Contains(out, "a.go") || !strings.Contains(out, "deep/b.go") {
		t.Fatalf("matches missing:\n%s", out)
	}
	if strings.Contains(out, "c.txt") {
		t.Fatalf("non-matching file included:\n%s", out)
	}
}

func TestGlob_NoMatches(t *testing.T) {
	writeFixture(t, rel(t, "a.md"), "x")

	out, err := callTool(t, tools.GlobDefinition, tools.GlobInput{
		Pattern: "*.rs",
		Path:    t.Name(),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out, "No files found matching pattern: *.rs") {
		t.Fatalf("no-match notice missing:\n%s", out)
	}
}

func TestGlob_MissingPathErrors(t *testing.T) {
	_, err := callTool(t, tools.GlobDefinition, tools.GlobInput{
		Pattern: "*.go",
		Path:    rel(t, "gone"),
	})
	if err == nil || !strings.Contains(err.Error(), "ERR_PATH_NOT_FOUND") {
		t.Fatalf("expected path-not-found error, got: %v", err)
	}
}

func TestFind_MissingPathErrors(t *testing.T) {
	_, err := callTool(t, tools.FindDefinition, tools.FindInput{Path: rel(t, "gone")})
	if err == nil || !strings.Contains(err.Error(), "ERR_PATH_NOT_FOUND") {
		t.Fatalf("expected path-not-found error, got: %v", err)
	}
}

func TestFind_NameFilterCaseInsensitive(t *testing.T) {
	writeFixture(t, rel(t, "Config.yaml"), "x")
	writeFixture(t, rel(t, "other.txt"), "x")

	out, err := callTool(t, tools.FindDefinition, tools.FindInput{
		Path: t.Name(),
		Name: "config",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out, "Config.yaml") || strings.Contains(out, "other.txt") {
		t.Fatalf("name filter wrong:\n%s", out)
	}
}

func TestFind_TypeAndDepth(t *testing.T) {
	writeFixture(t, rel(t, "lvl1", "lvl2", "deep.txt"), "x")

	out, err := callTool(t, tools.FindDefinition, tools.FindInput{
		Path:     t.Name(),
		FileType: "dir",
		MaxDepth: 1,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out, "[DIR]") || !strings.Contains(out, "lvl1") {
		t.Fatalf("dir entry missing:\n%s", out)
	}
	if strings.Contains(out, "lvl2") || strings.Contains(out, "deep.txt") {
		t.Fatalf("depth limit not applied:\n%s", out)
	}
}

func TestFind_RegexPattern(t *testing.T) {
	writeFixture(t, rel(t, "handler_test.go"), "x")
	writeFixture(t, rel(t, "handler.go"), "x")

	out, err := callTool(t, tools.FindDefinition, tools.FindInput{
		Path:    t.Name(),
		Pattern: `_test\.go$`,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out, "handler_test.go") {
		t.Fatalf("regex match missing:\n%s", out)
	}
	if strings.Contains(out, "Found 2 matches") {
		t.Fatalf("non-matching entry counted:\n%s", out)
	}
}

func TestFind_InvalidType(t *testing.T) {
	_, err := callTool(t, tools.FindDefinition, tools.FindInput{
		Path:     ".",
		FileType: "socket",
	})
	if err == nil || !strings.Contains(err.Error(), "invalid file_type") {
		t.Fatalf("expected type validation error, got: %v", err)
	}
}
