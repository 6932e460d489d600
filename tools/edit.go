package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/petasbytes/fileagent/internal/fsops"
	"github.com/petasbytes/fileagent/internal/textedit"
)

type EditInput struct {
	FilePath   string `json:"file_path" jsonschema_description:"Relative path of the file to modify."`
	OldString  string `json:"old_string" jsonschema_description:"Exact text to replace. Must match the file verbatim."`
	NewString  string `json:"new_string" jsonschema_description:"Replacement text. Must differ from old_string."`
	ReplaceAll bool   `json:"replace_all,omitempty" jsonschema_description:"Replace every occurrence instead of requiring a unique match (default false)."`
}

var EditDefinition = ToolDefinition{
	Name:        "edit",
	Description: "Perform an exact string replacement in a file. The old string must exist, and must be unique unless replace_all is set.",
	InputSchema: EditInputSchema,
	Function:    Edit,
}

var EditInputSchema = GenerateSchema[EditInput]()

// Edit applies a single validated replacement and writes the file back.
func Edit(ctx context.Context, input json.RawMessage) (string, error) {
	var in EditInput
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

	op := textedit.Operation{Old: in.OldString, New: in.NewString, ReplaceAll: in.ReplaceAll}
	newContent, count, err := textedit.Replace(content, op)
	if err != nil {
		return "", err
	}
	matches := textedit.FindMatches(content, in.OldString)
	if err := fsops.WriteFile(in.FilePath, newContent); err != nil {
		return "", err
	}

	plural := "s"
	if count == 1 {
		plural = ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Successfully edited file: %s\nMade %d replacement%s\n", in.FilePath, count, plural)
	if len(matches) > 0 {
		fmt.Fprintf(&b, "\nChange made around line %d:\n", matches[0].Line)
		fmt.Fprintf(&b, "- %s\n", strings.ReplaceAll(in.OldString, "\n", "\\n"))
		fmt.Fprintf(&b, "+ %s\n", strings.ReplaceAll(in.NewString, "\n", "\\n"))
	}
	return b.String(), nil
}
