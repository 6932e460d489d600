package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/petasbytes/fileagent/internal/fsops"
)

type BashInput struct {
	Command     string `json:"command" jsonschema_description:"Shell command to execute."`
	Description string `json:"description,omitempty" jsonschema_description:"Short description of what the command does."`
	Timeout     int64  `json:"timeout,omitempty" jsonschema_description:"Timeout in milliseconds (default 120000, max 600000)."`
}

const (
	defaultBashTimeout = 120_000 * time.Millisecond
	maxBashTimeout     = 600_000 * time.Millisecond
)

// forbiddenCommands are refused outright. This is a best-effort guard, not
// a security boundary.
var forbiddenCommands = []string{
	"rm -rf /",
	"rm -rf /*",
	":(){ :|:& };:",
	"mkfs",
	"dd if=/dev/zero",
	"shutdown",
	"reboot",
	"halt",
	"poweroff",
}

var ansiEscapes = regexp.MustCompile(`\x1b\[[0-9;]*m`)

var BashDefinition = ToolDefinition{
	Name:        "bash",
	Description: "Execute a shell command in the workspace with a timeout. Output is captured and cleaned of terminal escape codes.",
	InputSchema: BashInputSchema,
	Function:    Bash,
}

var BashInputSchema = GenerateSchema[BashInput]()

func validateCommand(command string) error {
	lower := strings.ToLower(command)
	for _, f := range forbiddenCommands {
		if strings.Contains(lower, f) {
			return fmt.Errorf("forbidden command detected: %q", f)
		}
	}
	return nil
}

// Bash runs the command under sh -c with the sandbox write root as working
// directory. The exit status is always reported; a non-zero exit is part of
// the result, not an execution error.
func Bash(ctx context.Context, input json.RawMessage) (string, error) {
	var in BashInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}
	if strings.TrimSpace(in.Command) == "" {
		return "", fmt.Errorf("command is required")
	}
	if err := validateCommand(in.Command); err != nil {
		return "", err
	}

	timeout := defaultBashTimeout
	if in.Timeout > 0 {
		timeout = time.Duration(in.Timeout) * time.Millisecond
		if timeout > maxBashTimeout {
			timeout = maxBashTimeout
		}
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	workDir, err := fsops.WriteRoot()
	if err != nil {
		return "", err
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", in.Command)
	cmd.Dir = workDir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	runErr := cmd.Run()
	elapsed := time.Since(start)

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "", fmt.Errorf("command timed out after %s: %s", timeout, in.Command)
	}
	exitCode := 0
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			return "", fmt.Errorf("failed to execute command %q: %w", in.Command, runErr)
		}
	}

	outText := ansiEscapes.ReplaceAllString(stdout.String(), "")
	errText := ansiEscapes.ReplaceAllString(stderr.String(), "")

	var b strings.Builder
	fmt.Fprintf(&b, "Command: %s\n", in.Command)
	if in.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", in.Description)
	}
	status := "Success"
	if exitCode != 0 {
		status = "Failed"
	}
	fmt.Fprintf(&b, "Exit Code: %d (%s)\nExecution Time: %s\n\n", exitCode, status, elapsed.Round(time.Millisecond))

	if outText != "" {
		b.WriteString("Standard Output:\n")
		b.WriteString(outText)
		if !strings.HasSuffix(outText, "\n") {
			b.WriteByte('\n')
		}
	}
	if errText != "" {
		b.WriteString("Standard Error:\n")
		b.WriteString(errText)
		if !strings.HasSuffix(errText, "\n") {
			b.WriteByte('\n')
		}
	}
	if outText == "" && errText == "" {
		b.WriteString("No output produced\n")
	}
	return b.String(), nil
}
