package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/petasbytes/fileagent/internal/fsops"
)

type LsInput struct {
	Path   string   `json:"path" jsonschema_description:"Relative directory path to list."`
	Ignore []string `json:"ignore,omitempty" jsonschema_description:"Substring patterns to skip (e.g. [\"node_modules\", \".cache\"])."`
}

var LsDefinition = ToolDefinition{
	Name:        "ls",
	Description: "List files and directories with sizes. Directories first, then files, each group sorted by name.",
	InputSchema: LsInputSchema,
	Function:    Ls,
}

var LsInputSchema = GenerateSchema[LsInput]()

// formatSize renders a byte count as a short human unit.
func formatSize(n int64) string {
	units := []string{"B", "KB", "MB", "GB", "TB"}
	size := float64(n)
	i := 0
	for size >= 1024 && i < len(units)-1 {
		size /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%d %s", n, units[i])
	}
	return fmt.Sprintf("%.1f %s", size, units[i])
}

func ignored(name string, patterns []string) bool {
	for _, p := range patterns {
		if p == "" {
			continue
		}
		if strings.Contains(name, p) {
			return true
		}
		if p == ".*" && strings.HasPrefix(name, ".") {
			return true
		}
	}
	return false
}

// Ls lists the direct children of a sandboxed directory with a size summary.
func Ls(ctx context.Context, input json.RawMessage) (string, error) {
	var in LsInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}

	entries, err := fsops.Walk(in.Path, 1)
	if err != nil {
		return "", err
	}

	var dirs []string
	type fileEntry struct {
		name string
		size int64
	}
	var files []fileEntry
	var totalSize int64
	for _, e := range entries {
		name := e.RelPath
		if i := strings.LastIndex(name, "/"); i >= 0 {
			name = name[i+1:]
		}
		if ignored(name, in.Ignore) {
			continue
		}
		if e.IsDir {
			dirs = append(dirs, name)
		} else {
			files = append(files, fileEntry{name: name, size: e.Size})
			totalSize += e.Size
		}
	}
	sort.Strings(dirs)
	sort.Slice(files, func(i, j int) bool { return files[i].name < files[j].name })

	var b strings.Builder
	display := in.Path
	if display == "" {
		display = "."
	}
	fmt.Fprintf(&b, "Directory: %s\n", display)

	if len(dirs) > 0 {
		fmt.Fprintf(&b, "\nSubdirectories (%d):\n", len(dirs))
		for _, d := range dirs {
			fmt.Fprintf(&b, "  %s/\n", d)
		}
	}
	if len(files) > 0 {
		fmt.Fprintf(&b, "\nFiles (%d) - Total size: %s:\n", len(files), formatSize(totalSize))
		for _, f := range files {
			fmt.Fprintf(&b, "  %s (%s)\n", f.name, formatSize(f.size))
		}
	}
	if len(dirs) == 0 && len(files) == 0 {
		b.WriteString("(Empty directory)")
	}
	return b.String(), nil
}
