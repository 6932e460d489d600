package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/petasbytes/fileagent/internal/fsops"
)

type ReadInput struct {
	FilePath string `json:"file_path" jsonschema_description:"Relative path to the file to read."`
	Offset   int    `json:"offset,omitempty" jsonschema_description:"Line number to start reading from (0-based)."`
	Limit    int    `json:"limit,omitempty" jsonschema_description:"Number of lines to read. Omit to read the whole file."`
}

const maxLineRunes = 2000 // per-line clamp before the marker

var ReadDefinition = ToolDefinition{
	Name:        "read",
	Description: "Read a file with line numbers. Supports offset/limit paging; long lines are clamped; binary files are refused.",
	InputSchema: ReadInputSchema,
	Function:    Read,
}

var ReadInputSchema = GenerateSchema[ReadInput]()

// numberLines renders lines with 1-based right-aligned numbers starting at
// startLine, clamping each line to maxLineRunes.
func numberLines(lines []string, startLine int) string {
	var b strings.Builder
	for i, line := range lines {
		r := []rune(line)
		if len(r) > maxLineRunes {
			line = string(r[:maxLineRunes]) + "... [TRUNCATED]"
		}
		fmt.Fprintf(&b, "%5d→%s", startLine+i+1, line)
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Read returns numbered file content. With offset/limit it returns the
// requested window plus a remainder note; without them the whole file.
func Read(ctx context.Context, input json.RawMessage) (string, error) {
	var in ReadInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}

	content, err := fsops.ReadFile(in.FilePath)
	if err != nil {
		return "", err
	}
	if isBinary(content) {
		size, _ := fsops.StatFile(in.FilePath)
		return fmt.Sprintf("File: %s - Size: %s\n\nThis appears to be a binary file and cannot be displayed as text.",
			in.FilePath, formatSize(size)), nil
	}

	lines := strings.Split(content, "\n")
	offset := in.Offset
	if offset < 0 {
		offset = 0
	}

	if in.Offset == 0 && in.Limit <= 0 {
		return numberLines(lines, 0), nil
	}

	if offset >= len(lines) {
		return fmt.Sprintf("Offset %d exceeds file length (%d lines)", offset, len(lines)), nil
	}
	end := len(lines)
	if in.Limit > 0 && offset+in.Limit < end {
		end = offset + in.Limit
	}

	var b strings.Builder
	fmt.Fprintf(&b, "=== LINES %d-%d of %d ===\n\n", offset+1, end, len(lines))
	b.WriteString(numberLines(lines[offset:end], offset))
	if end < len(lines) {
		fmt.Fprintf(&b, "\n\n... %d more lines follow ...", len(lines)-end)
	}
	return b.String(), nil
}
