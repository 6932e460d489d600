package tools_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/petasbytes/fileagent/tools"
)

func TestWrite_CreatesFileAndReportsStats(t *testing.T) {
	out, err := callTool(t, tools.WriteDefinition, tools.WriteInput{
		FilePath: rel(t, "new.txt"),
		Content:  "hello\nworld",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out, "Successfully wrote file") {
		t.Fatalf("unexpected result: %s", out)
	}
	if !strings.Contains(out, "2 lines, 2 words, 11 bytes") {
		t.Fatalf("stats wrong: %s", out)
	}

	b, err := os.ReadFile(filepath.Join(sharedDir, rel(t, "new.txt")))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "hello\nworld" {
		t.Fatalf("content mismatch: %q", string(b))
	}
}

func TestWrite_RefusesClobberWithoutOverwrite(t *testing.T) {
	writeFixture(t, rel(t, "exists.txt"), "original")

	_, err := callTool(t, tools.WriteDefinition, tools.WriteInput{
		FilePath: rel(t, "exists.txt"),
		Content:  "replacement",
	})
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected clobber refusal, got: %v", err)
	}

	b, _ := os.ReadFile(filepath.Join(sharedDir, rel(t, "exists.txt")))
	if string(b) != "original" {
		t.Fatalf("file was modified: %q", string(b))
	}
}

func TestWrite_OverwriteReplaces(t *testing.T) {
	writeFixture(t, rel(t, "exists.txt"), "original")

	_, err := callTool(t, tools.WriteDefinition, tools.WriteInput{
		FilePath:  rel(t, "exists.txt"),
		Content:   "replacement",
		Overwrite: true,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	b, _ := os.ReadFile(filepath.Join(sharedDir, rel(t, "exists.txt")))
	if string(b) != "replacement" {
		t.Fatalf("content mismatch: %q", string(b))
	}
}

func TestWrite_NormalizesCRLF(t *testing.T) {
	_, err := callTool(t, tools.WriteDefinition, tools.WriteInput{
		FilePath: rel(t, "crlf.txt"),
		Content:  "a\r\nb\r\n",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	b, _ := os.ReadFile(filepath.Join(sharedDir, rel(t, "crlf.txt")))
	if string(b) != "a\nb\n" {
		t.Fatalf("line endings not normalized: %q", string(b))
	}
}

func TestWrite_DeniedBasename(t *testing.T) {
	_, err := callTool(t, tools.WriteDefinition, tools.WriteInput{
		FilePath: rel(t, "go.mod"),
		Content:  "module x",
	})
	if err == nil || !strings.Contains(err.Error(), "ERR_DENIED_WRITE") {
		t.Fatalf("expected ERR_DENIED_WRITE, got: %v", err)
	}
}
