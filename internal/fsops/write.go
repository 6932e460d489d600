package fsops

import (
	"os"
	"path/filepath"

	"github.com/petasbytes/fileagent/internal/safety"
)

// WriteFile writes content to a file addressed by a relative path under the
// sandbox write root as a single whole-file overwrite. Parent directories are
// created as needed.
func WriteFile(relPath, content string) error {
	_, writeRoot, err := getRoots()
	if err != nil {
		return err
	}

	absPath, err := safety.ValidateWritePath(writeRoot, relPath)
	if err != nil {
		return err // propagate ToolError unchanged
	}

	dir := filepath.Dir(absPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	return os.WriteFile(absPath, []byte(content), 0o644)
}

// FileExists reports whether a relative path under the write root names an
// existing file. Policy violations surface as errors.
func FileExists(relPath string) (bool, error) {
	_, writeRoot, err := getRoots()
	if err != nil {
		return false, err
	}
	absPath, err := safety.ValidateWritePath(writeRoot, relPath)
	if err != nil {
		return false, err
	}
	fi, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !fi.IsDir(), nil
}
