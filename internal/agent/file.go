package agent

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/petasbytes/fileagent/internal/audit"
	"github.com/petasbytes/fileagent/internal/capability"
	"github.com/petasbytes/fileagent/internal/driver"
	"github.com/petasbytes/fileagent/internal/provider"
	"github.com/petasbytes/fileagent/tools"
)

const fileSystemPrompt = `You are a file operations agent with comprehensive file management capabilities.

Use the provided tools to complete file-related tasks efficiently and safely. Always read existing files before modifying them to understand their current state.

When working with multiple related operations, use the todo_write tool to break down the task into manageable steps and track your progress. Only mark one todo as "in_progress" at a time.

Choose the most appropriate tools for each operation and execute them in parallel when operations are independent of each other.`

// FileAgent runs workspace tasks with the full tool registry.
type FileAgent struct {
	drv *driver.Driver
}

// NewFileAgent wires the tool registry into a driver instance.
func NewFileAgent(client *anthropic.Client, sink *audit.Store) (*FileAgent, error) {
	caps := make([]capability.Capability, 0, len(tools.Registry()))
	for _, def := range tools.Registry() {
		caps = append(caps, capability.NewTool(def.Name, def.Description, def.InputSchema, def.Function))
	}
	reg, err := capability.NewRegistry(caps...)
	if err != nil {
		return nil, err
	}
	drv := driver.New(client, reg, sink, driver.Options{
		Source:      "file_agent",
		System:      fileSystemPrompt,
		Temperature: provider.Temperature(),
	})
	return &FileAgent{drv: drv}, nil
}

// Execute runs one task to completion.
func (a *FileAgent) Execute(ctx context.Context, task string) (string, error) {
	return a.drv.Execute(ctx, task)
}
