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

const orchestratorSystemPrompt = `You are a File Operations Orchestrator that routes file-related tasks to the file_agent.

Your job is to:
1. Analyze incoming tasks to determine if they are file-related
2. Route file operations to the file_agent, which has comprehensive file management capabilities
3. Coordinate complex multi-step file operations

For any task involving files, directories, code analysis, or file system operations, delegate to the file_agent. Summarize its result for the user when it finishes.`

const fileAgentDescription = `Delegate a file-related task to the file agent. It specializes in:
- File CRUD operations (create, read, update, delete)
- Directory management and traversal
- File search and pattern matching
- Content manipulation and transformation
- Batch file processing`

type delegateInput struct {
	Task string `json:"task" jsonschema_description:"The file-related task to delegate, described in plain language."`
}

var delegateInputSchema = tools.GenerateSchema[delegateInput]()

// Orchestrator fronts the file agent: it owns the conversation with the
// user task and hands the actual file work to its delegate.
type Orchestrator struct {
	drv *driver.Driver
}

// NewOrchestrator builds the orchestrator over a fresh file agent sharing
// the same client and audit sink.
func NewOrchestrator(client *anthropic.Client, sink *audit.Store) (*Orchestrator, error) {
	fa, err := NewFileAgent(client, sink)
	if err != nil {
		return nil, err
	}
	delegate := capability.NewSubAgent("file_agent", fileAgentDescription, delegateInputSchema, fa.Execute)
	reg, err := capability.NewRegistry(delegate)
	if err != nil {
		return nil, err
	}
	drv := driver.New(client, reg, sink, driver.Options{
		Source:      "orchestrator",
		System:      orchestratorSystemPrompt,
		Temperature: provider.Temperature(),
	})
	return &Orchestrator{drv: drv}, nil
}

// Execute runs one task end to end through delegation.
func (o *Orchestrator) Execute(ctx context.Context, task string) (string, error) {
	return o.drv.Execute(ctx, task)
}
