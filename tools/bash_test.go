package tools_test

import (
	"runtime"
	"strings"
	"testing"

	"github.com/petasbytes/fileagent/tools"
)

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}
}

func TestBash_CapturesOutputAndExitCode(t *testing.T) {
	skipWithoutShell(t)

	out, err := callTool(t, tools.BashDefinition, tools.BashInput{
		Command: "echo hello",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out, "Exit Code: 0 (Success)") {
		t.Fatalf("exit status missing:\n%s", out)
	}
	if !strings.Contains(out, "Standard Output:\nhello") {
		t.Fatalf("stdout missing:\n%s", out)
	}
}

func TestBash_NonZeroExitIsResultNotError(t *testing.T) {
	skipWithoutShell(t)

	out, err := callTool(t, tools.BashDefinition, tools.BashInput{
		Command: "exit 3",
	})
	if err != nil {
		t.Fatalf("non-zero exit must not be an execution error: %v", err)
	}
	if !strings.Contains(out, "Exit Code: 3 (Failed)") {
		t.Fatalf("exit code missing:\n%s", out)
	}
}

func TestBash_StderrCaptured(t *testing.T) {
	skipWithoutShell(t)

	out, err := callTool(t, tools.BashDefinition, tools.BashInput{
		Command: "echo oops 1>&2",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out, "Standard Error:\noops") {
		t.Fatalf("stderr missing:\n%s", out)
	}
}

func TestBash_TimeoutEnforced(t *testing.T) {
	skipWithoutShell(t)

	_, err := callTool(t, tools.BashDefinition, tools.BashInput{
		Command: "sleep 5",
		Timeout: 100,
	})
	if err == nil || !strings.Contains(err.Error(), "timed out") {
		t.Fatalf("expected timeout error, got: %v", err)
	}
}

func TestBash_ForbiddenCommandRejected(t *testing.T) {
	_, err := callTool(t, tools.BashDefinition, tools.BashInput{
		Command: "rm -rf / --no-preserve-root",
	})
	if err == nil || !strings.Contains(err.Error(), "forbidden command") {
		t.Fatalf("expected denylist rejection, got: %v", err)
	}
}

func TestBash_StripsANSISequences(t *testing.T) {
	skipWithoutShell(t)

	out, err := callTool(t, tools.BashDefinition, tools.BashInput{
		Command: `printf '\033[31mred\033[0m\n'`,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("escape sequences not stripped:\n%q", out)
	}
	if !strings.Contains(out, "red") {
		t.Fatalf("payload lost during stripping:\n%s", out)
	}
}
