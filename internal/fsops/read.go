package fsops

import (
	"os"

	"github.com/petasbytes/fileagent/internal/safety"
)

// ReadFile reads a file addressed by a relative path under the sandbox read root.
// It validates the path via safety and returns a ToolError on policy violations.
func ReadFile(relPath string) (string, error) {
	readRoot, _, err := getRoots()
	if err != nil {
		return "", err
	}

	absPath, err := safety.ValidateReadPath(readRoot, relPath)
	if err != nil {
		return "", err
	}

	fi, err := os.Stat(absPath)
	if err != nil {
		return "", err
	}
	if fi.IsDir() {
		return "", safety.ToolError{Code: "ERR_NOT_A_FILE", Message: "path is a directory"}
	}

	b, err := os.ReadFile(absPath)
	if err != nil {
		return "", err // standard error for I/O issues (not policy)
	}
	return string(b), nil
}

// StatFile returns size in bytes for a relative file path under the read
// root. Directories are rejected the same way ReadFile rejects them.
func StatFile(relPath string) (int64, error) {
	readRoot, _, err := getRoots()
	if err != nil {
		return 0, err
	}
	absPath, err := safety.ValidateReadPath(readRoot, relPath)
	if err != nil {
		return 0, err
	}
	fi, err := os.Stat(absPath)
	if err != nil {
		return 0, err
	}
	if fi.IsDir() {
		return 0, safety.ToolError{Code: "ERR_NOT_A_FILE", Message: "path is a directory"}
	}
	return fi.Size(), nil
}
