package safety

import "path/filepath"

// Write denylist: directory prefixes and basenames that tools must never
// modify. go.mod/go.sum are blocked at any depth to keep module metadata
// out of the agent's reach.
var (
	deniedWriteDirs      = []string{".git", ".agent"}
	deniedWriteBasenames = map[string]struct{}{
		"go.mod": {},
		"go.sum": {},
	}
)

// ValidateWritePath resolves relPath against absRoot and returns an absolute
// path inside the sandbox that is safe to create or overwrite. On a policy
// violation it returns a ToolError with code ERR_DENIED_WRITE.
func ValidateWritePath(absRoot, relPath string) (string, error) {
	abs, rel, err := resolveUnderRoot(absRoot, relPath)
	if err != nil {
		return "", err
	}

	for _, dir := range deniedWriteDirs {
		if underDir(rel, dir) {
			return "", ToolError{Code: "ERR_DENIED_WRITE", Message: "writes under " + dir + "/ are not allowed"}
		}
	}
	if _, blocked := deniedWriteBasenames[filepath.Base(rel)]; blocked {
		return "", ToolError{Code: "ERR_DENIED_WRITE", Message: "writes to " + filepath.Base(rel) + " are not allowed"}
	}

	return abs, nil
}
