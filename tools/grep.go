package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/petasbytes/fileagent/internal/fsops"
)

type GrepInput struct {
	Pattern         string `json:"pattern" jsonschema_description:"Regular expression pattern to search for."`
	Path            string `json:"path,omitempty" jsonschema_description:"Relative file or directory to search in (defaults to the workspace root)."`
	Glob            string `json:"glob,omitempty" jsonschema_description:"Glob pattern to filter files (e.g. '*.go')."`
	CaseInsensitive bool   `json:"-i,omitempty" jsonschema_description:"Case insensitive search."`
	LineNumbers     bool   `json:"-n,omitempty" jsonschema_description:"Show line numbers in output (content mode only)."`
	OutputMode      string `json:"output_mode,omitempty" jsonschema_description:"Output mode: 'content' shows matching lines, 'files_with_matches' shows file paths (default), 'count' shows match counts per file."`
	HeadLimit       int    `json:"head_limit,omitempty" jsonschema_description:"Limit output to the first N result lines."`
}

var GrepDefinition = ToolDefinition{
	Name:        "grep",
	Description: "Regex text search across workspace files with content, file-list, and count output modes.",
	InputSchema: GrepInputSchema,
	Function:    Grep,
}

var GrepInputSchema = GenerateSchema[GrepInput]()

// isBinary reports whether the content looks binary (NUL byte in the first
// kilobyte).
func isBinary(content string) bool {
	probe := content
	if len(probe) > 1024 {
		probe = probe[:1024]
	}
	return strings.ContainsRune(probe, 0)
}

// Grep searches sandbox files with a pure-Go regexp. Binary files are
// skipped. Results keep walk order (sorted by path) so output is
// deterministic.
func Grep(ctx context.Context, input json.RawMessage) (string, error) {
	var in GrepInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}
	if in.Pattern == "" {
		return "", fmt.Errorf("pattern is required")
	}
	pat := in.Pattern
	if in.CaseInsensitive {
		pat = "(?i)" + pat
	}
	re, err := regexp.Compile(pat)
	if err != nil {
		return "", fmt.Errorf("invalid regex pattern: %w", err)
	}

	files, err := grepTargets(in.Path, in.Glob)
	if err != nil {
		return "", err
	}

	// Unknown modes fall back to the file list, same as an empty mode.
	mode := in.OutputMode
	switch mode {
	case "content", "count":
	default:
		mode = "files_with_matches"
	}

	var lines []string
	counts := map[string]int{}
	var countOrder []string
	for _, f := range files {
		content, rerr := fsops.ReadFile(f)
		if rerr != nil || isBinary(content) {
			continue
		}
		fileLines := strings.Split(content, "\n")
		matched := false
		for n, line := range fileLines {
			if !re.MatchString(line) {
				continue
			}
			matched = true
			counts[f]++
			if mode == "content" {
				if in.LineNumbers {
					lines = append(lines, fmt.Sprintf("%s:%d:%s", f, n+1, line))
				} else {
					lines = append(lines, fmt.Sprintf("%s:%s", f, line))
				}
			}
		}
		if matched {
			countOrder = append(countOrder, f)
			if mode == "files_with_matches" {
				lines = append(lines, f)
			}
		}
	}

	if mode == "count" {
		sort.Strings(countOrder)
		for _, f := range countOrder {
			lines = append(lines, fmt.Sprintf("%s:%d", f, counts[f]))
		}
	}

	if len(lines) == 0 {
		return fmt.Sprintf("No matches found for pattern: %s", in.Pattern), nil
	}
	if in.HeadLimit > 0 && len(lines) > in.HeadLimit {
		lines = lines[:in.HeadLimit]
	}
	return strings.Join(lines, "\n"), nil
}

// grepTargets resolves the search scope to a list of relative file paths.
// A file path searches that single file; a directory (or empty path)
// searches the whole subtree.
func grepTargets(relPath, glob string) ([]string, error) {
	if relPath != "" {
		if _, err := fsops.StatFile(relPath); err == nil {
			return []string{relPath}, nil
		}
	}
	entries, err := fsops.Walk(relPath, 0)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir {
			continue
		}
		full := e.RelPath
		if relPath != "" {
			full = relPath + "/" + e.RelPath
		}
		if glob != "" && !matchGlob(e.RelPath, glob) {
			continue
		}
		files = append(files, full)
	}
	return files, nil
}
