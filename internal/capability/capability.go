// Package capability defines the uniform invocation shape shared by tools
// and sub-agents, and the name-keyed registry advertised to the reasoning
// engine.
//
// A Driver depends only on this interface: the file agent's registry holds
// tool capabilities (structured JSON payloads), the orchestrator's holds
// sub-agent capabilities (a task string wrapped in a one-field payload).
package capability

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/tidwall/gjson"
)

// Capability is one named, schema-described unit of work.
type Capability interface {
	Name() string
	Description() string
	InputSchema() anthropic.ToolInputSchemaParam
	Invoke(ctx context.Context, input json.RawMessage) (string, error)
}

// tool adapts a structured-payload executor.
type tool struct {
	name        string
	description string
	schema      anthropic.ToolInputSchemaParam
	fn          func(ctx context.Context, input json.RawMessage) (string, error)
}

// NewTool wraps a tool handler as a Capability. The handler parses and
// validates its own arguments; the schema is advertised for guidance only.
func NewTool(name, description string, schema anthropic.ToolInputSchemaParam, fn func(ctx context.Context, input json.RawMessage) (string, error)) Capability {
	return &tool{name: name, description: description, schema: schema, fn: fn}
}

func (t *tool) Name() string                                { return t.name }
func (t *tool) Description() string                         { return t.description }
func (t *tool) InputSchema() anthropic.ToolInputSchemaParam { return t.schema }

func (t *tool) Invoke(ctx context.Context, input json.RawMessage) (string, error) {
	return t.fn(ctx, input)
}

// subAgent adapts a task-string executor: the engine supplies {"task": ...}
// and the delegate runs its own conversation to completion.
type subAgent struct {
	name        string
	description string
	schema      anthropic.ToolInputSchemaParam
	run         func(ctx context.Context, task string) (string, error)
}

// NewSubAgent wraps a delegated agent as a Capability.
func NewSubAgent(name, description string, schema anthropic.ToolInputSchemaParam, run func(ctx context.Context, task string) (string, error)) Capability {
	return &subAgent{name: name, description: description, schema: schema, run: run}
}

func (a *subAgent) Name() string                                { return a.name }
func (a *subAgent) Description() string                         { return a.description }
func (a *subAgent) InputSchema() anthropic.ToolInputSchemaParam { return a.schema }

func (a *subAgent) Invoke(ctx context.Context, input json.RawMessage) (string, error) {
	task := gjson.GetBytes(input, "task").String()
	if task == "" {
		return "", errors.New("no task provided to agent")
	}
	return a.run(ctx, task)
}
