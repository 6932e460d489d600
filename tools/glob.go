package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/petasbytes/fileagent/internal/fsops"
)

type GlobInput struct {
	Pattern string `json:"pattern" jsonschema_description:"Glob pattern to match files (e.g. '**/*.go', '*.txt', 'src/**/*.json')."`
	Path    string `json:"path,omitempty" jsonschema_description:"Relative directory to search in (defaults to the workspace root)."`
}

var GlobDefinition = ToolDefinition{
	Name:        "glob",
	Description: "Find files matching a glob pattern, searching the workspace recursively.",
	InputSchema: GlobInputSchema,
	Function:    Glob,
}

var GlobInputSchema = GenerateSchema[GlobInput]()

// matchGlob matches a slash-separated relative path against a glob pattern.
// A leading "**/" matches the pattern against the basename at any depth;
// otherwise the pattern must match the whole relative path or its basename.
func matchGlob(relPath, pattern string) bool {
	if rest, ok := strings.CutPrefix(pattern, "**/"); ok {
		if ok, _ := path.Match(rest, path.Base(relPath)); ok {
			return true
		}
		// Also allow multi-segment remainders like "**/sub/*.go".
		segs := strings.Split(relPath, "/")
		for i := range segs {
			if ok, _ := path.Match(rest, strings.Join(segs[i:], "/")); ok {
				return true
			}
		}
		return false
	}
	if ok, _ := path.Match(pattern, relPath); ok {
		return true
	}
	ok, _ := path.Match(pattern, path.Base(relPath))
	return ok
}

// Glob walks the sandbox and returns the paths matching the pattern.
func Glob(ctx context.Context, input json.RawMessage) (string, error) {
	var in GlobInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}
	if in.Pattern == "" {
		return "", fmt.Errorf("pattern is required")
	}

	entries, err := fsops.Walk(in.Path, 0)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, e := range entries {
		if e.IsDir {
			continue
		}
		if matchGlob(e.RelPath, in.Pattern) {
			rel := e.RelPath
			if in.Path != "" {
				rel = path.Join(in.Path, rel)
			}
			matches = append(matches, rel)
		}
	}

	if len(matches) == 0 {
		return fmt.Sprintf("No files found matching pattern: %s", in.Pattern), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d files matching pattern '%s':\n\n", len(matches), in.Pattern)
	for _, m := range matches {
		b.WriteString(m)
		b.WriteByte('\n')
	}
	return b.String(), nil
}
