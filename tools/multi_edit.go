package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/petasbytes/fileagent/internal/fsops"
	"github.com/petasbytes/fileagent/internal/metrics"
	"github.com/petasbytes/fileagent/internal/textedit"
)

type MultiEditInput struct {
	FilePath string               `json:"file_path" jsonschema_description:"Relative path of the file to modify."`
	Edits    []textedit.Operation `json:"edits" jsonschema_description:"Ordered list of replacements (1 to 50). Each edit sees the result of the previous one. If any edit fails, the file is left untouched."`
}

var MultiEditDefinition = ToolDefinition{
	Name:        "multi_edit",
	Description: "Apply a sequence of exact string replacements to one file atomically: either every edit succeeds or the file is left unchanged.",
	InputSchema: MultiEditInputSchema,
	Function:    MultiEdit,
}

var MultiEditInputSchema = GenerateSchema[MultiEditInput]()

// MultiEdit applies all edits against an in-memory buffer and writes the
// final content once, so the on-disk file never reflects a partial batch.
func MultiEdit(ctx context.Context, input json.RawMessage) (string, error) {
	var in MultiEditInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}
	if in.FilePath == "" {
		return "", fmt.Errorf("file_path is required")
	}

	content, err := fsops.ReadFile(in.FilePath)
	if err != nil {
		return "", err
	}

	newContent, counts, err := textedit.ApplySequence(content, in.Edits)
	if err != nil {
		return "", err
	}
	if err := fsops.WriteFile(in.FilePath, newContent); err != nil {
		return "", err
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	before := metrics.CountFeatures(content)
	after := metrics.CountFeatures(newContent)

	var b strings.Builder
	fmt.Fprintf(&b, "Successfully applied %d edits to: %s\nTotal replacements made: %d\n\n",
		len(in.Edits), in.FilePath, total)
	b.WriteString("Edit Results:\n")
	for i, c := range counts {
		fmt.Fprintf(&b, "  Edit #%d: %d replacement(s)\n", i+1, c)
	}
	fmt.Fprintf(&b, "\nFile Statistics:\n- Lines: %d -> %d (%+d)\n- Size: %d -> %d bytes (%+d)\n",
		before.Lines, after.Lines, after.Lines-before.Lines,
		before.Bytes, after.Bytes, after.Bytes-before.Bytes)
	return b.String(), nil
}
