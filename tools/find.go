package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/petasbytes/fileagent/internal/fsops"
)

type FindInput struct {
	Path          string `json:"path" jsonschema_description:"Relative directory to start the search from."`
	Name          string `json:"name,omitempty" jsonschema_description:"Filter by file name (substring match)."`
	Pattern       string `json:"pattern,omitempty" jsonschema_description:"Regex pattern matched against the full relative path."`
	FileType      string `json:"file_type,omitempty" jsonschema_description:"Filter by entry type: 'file' or 'dir'."`
	MaxDepth      int    `json:"max_depth,omitempty" jsonschema_description:"Maximum directory depth to search (0 = unlimited)."`
	CaseSensitive bool   `json:"case_sensitive,omitempty" jsonschema_description:"Case sensitive name/pattern matching (default false)."`
	Limit         int    `json:"limit,omitempty" jsonschema_description:"Maximum number of results to return (default 1000)."`
}

const defaultFindLimit = 1000

var FindDefinition = ToolDefinition{
	Name:        "find",
	Description: "Search for files and directories by name, regex pattern, type, and depth.",
	InputSchema: FindInputSchema,
	Function:    Find,
}

var FindInputSchema = GenerateSchema[FindInput]()

// Find walks the sandbox applying the requested filters and returns a
// formatted entry per match.
func Find(ctx context.Context, input json.RawMessage) (string, error) {
	var in FindInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}
	limit := in.Limit
	if limit <= 0 {
		limit = defaultFindLimit
	}
	if in.FileType != "" && in.FileType != "file" && in.FileType != "dir" {
		return "", fmt.Errorf("invalid file_type: %s", in.FileType)
	}

	var re *regexp.Regexp
	if in.Pattern != "" {
		pat := in.Pattern
		if !in.CaseSensitive {
			pat = "(?i)" + pat
		}
		var err error
		if re, err = regexp.Compile(pat); err != nil {
			return "", fmt.Errorf("invalid regex pattern: %w", err)
		}
	}

	entries, err := fsops.Walk(in.Path, in.MaxDepth)
	if err != nil {
		return "", err
	}

	var results []string
	checked := 0
	for _, e := range entries {
		checked++
		if in.FileType == "file" && e.IsDir {
			continue
		}
		if in.FileType == "dir" && !e.IsDir {
			continue
		}
		if in.Name != "" {
			base := path.Base(e.RelPath)
			if in.CaseSensitive {
				if !strings.Contains(base, in.Name) {
					continue
				}
			} else if !strings.Contains(strings.ToLower(base), strings.ToLower(in.Name)) {
				continue
			}
		}
		full := e.RelPath
		if in.Path != "" {
			full = path.Join(in.Path, e.RelPath)
		}
		if re != nil && !re.MatchString(full) {
			continue
		}

		if e.IsDir {
			results = append(results, fmt.Sprintf("[DIR]  %10s %s", "-", full))
		} else {
			results = append(results, fmt.Sprintf("[FILE] %10s %s", formatSize(e.Size), full))
		}
		if len(results) >= limit {
			break
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d matches (checked %d items, limit: %d)\n\n", len(results), checked, limit)
	if len(results) == 0 {
		b.WriteString("No files found matching the specified criteria.")
		return b.String(), nil
	}
	b.WriteString(strings.Join(results, "\n"))
	if len(results) >= limit {
		fmt.Fprintf(&b, "\n\n... Results limited to %d items", limit)
	}
	return b.String(), nil
}
