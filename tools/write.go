package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/petasbytes/fileagent/internal/fsops"
	"github.com/petasbytes/fileagent/internal/metrics"
)

type WriteInput struct {
	FilePath  string `json:"file_path" jsonschema_description:"Relative path of the file to create or replace."`
	Content   string `json:"content" jsonschema_description:"Content to write to the file."`
	Overwrite bool   `json:"overwrite,omitempty" jsonschema_description:"Whether to overwrite an existing file (default false)."`
}

var WriteDefinition = ToolDefinition{
	Name:        "write",
	Description: "Create a file with the given content. Refuses to overwrite existing files unless overwrite=true; prefer edit for modifying existing files.",
	InputSchema: WriteInputSchema,
	Function:    Write,
}

var WriteInputSchema = GenerateSchema[WriteInput]()

// Write creates or replaces a file inside the sandbox. Line endings are
// normalized to \n.
func Write(ctx context.Context, input json.RawMessage) (string, error) {
	var in WriteInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}
	if in.FilePath == "" {
		return "", fmt.Errorf("file_path is required")
	}

	exists, err := fsops.FileExists(in.FilePath)
	if err != nil {
		return "", err
	}
	if exists && !in.Overwrite {
		return "", fmt.Errorf("file already exists: %s. Use the edit tool to modify existing files, or set overwrite=true to replace entirely", in.FilePath)
	}

	content := strings.ReplaceAll(in.Content, "\r\n", "\n")
	if err := fsops.WriteFile(in.FilePath, content); err != nil {
		return "", err
	}

	f := metrics.CountFeatures(content)
	return fmt.Sprintf("Successfully wrote file: %s\nStats: %d lines, %d words, %d bytes",
		in.FilePath, f.Lines, f.Words, f.Bytes), nil
}
