// Package driver runs the round-trip conversation state machine against the
// reasoning engine.
//
// One Driver serves one task end to end: it seeds the conversation with the
// task, advertises its registry's catalog, and loops until the engine
// returns plain text with no capability calls, or the round ceiling is hit.
// The same machine backs both agent variants; only the registry contents,
// system prompt, and audit source differ.
package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/google/uuid"

	"github.com/petasbytes/fileagent/internal/audit"
	"github.com/petasbytes/fileagent/internal/capability"
	"github.com/petasbytes/fileagent/internal/dispatch"
	"github.com/petasbytes/fileagent/internal/provider"
	"github.com/petasbytes/fileagent/internal/telemetry"
)

// MaxRounds is the fixed ceiling on engine round-trips per task.
const MaxRounds = 100

// CompletionNotice is returned when the ceiling is reached without the
// engine ever producing text.
const CompletionNotice = "Task completed successfully"

// state enumerates the phases of the round loop.
type state int

const (
	stateSending state = iota
	stateDispatching
	stateDone
)

// Options configures one Driver instance.
type Options struct {
	Source      string // audit/telemetry source name, e.g. "file_agent"
	System      string // system prompt
	Model       anthropic.Model
	MaxTokens   int64
	Temperature float64
	MaxRounds   int // defaults to MaxRounds when <= 0
}

// Driver drives one conversation per Execute call.
type Driver struct {
	client *anthropic.Client
	reg    *capability.Registry
	sink   *audit.Store
	opts   Options
}

// New builds a Driver over the given registry and audit sink.
func New(client *anthropic.Client, reg *capability.Registry, sink *audit.Store, opts Options) *Driver {
	if opts.MaxRounds <= 0 {
		opts.MaxRounds = MaxRounds
	}
	if opts.Model == "" {
		opts.Model = provider.Model()
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = provider.MaxTokens()
	}
	return &Driver{client: client, reg: reg, sink: sink, opts: opts}
}

// loopState carries the mutable conversation state across rounds.
type loopState struct {
	conv      []anthropic.MessageParam
	msg       *anthropic.Message
	calls     []dispatch.Call
	roundText string // text block of the current response, if any
	lastText  string // last non-empty text seen across all rounds
	round     int
}

// Execute runs the task to completion. The sole success-termination path is
// a response carrying text and no tool calls; hitting the ceiling yields the
// last text seen across rounds, or a generic completion notice. Transport
// failures are fatal to the whole task. Capability failures never are: they
// are fed back as tool results so the engine can adapt.
func (d *Driver) Execute(ctx context.Context, task string) (string, error) {
	if _, ok := telemetry.TaskIDFromContext(ctx); !ok {
		ctx = telemetry.WithTaskID(ctx, uuid.NewString())
	}

	ls := &loopState{
		conv: []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(task))},
	}

	for st := stateSending; st != stateDone; {
		switch st {
		case stateSending:
			if ls.round >= d.opts.MaxRounds {
				st = stateDone
				continue
			}
			ls.round++
			if err := d.sendAndAwait(ctx, ls); err != nil {
				return "", err
			}
			if len(ls.calls) > 0 {
				st = stateDispatching
				continue
			}
			// Text with no tool calls ends the conversation.
			if ls.roundText != "" {
				return ls.roundText, nil
			}
			// Empty response: nothing to dispatch, nothing to say.
			st = stateDone

		case stateDispatching:
			d.dispatchAndAppend(ctx, ls)
			st = stateSending
		}
	}

	if strings.TrimSpace(ls.lastText) != "" {
		return ls.lastText, nil
	}
	return CompletionNotice, nil
}

// sendAndAwait performs one engine round-trip and parses the response into
// tool calls (emitted order) plus at most one trailing text block. When both
// appear together, dispatch wins and the text survives only as "last seen
// text" for the ceiling fallback.
func (d *Driver) sendAndAwait(ctx context.Context, ls *loopState) error {
	params := anthropic.MessageNewParams{
		Model:     d.opts.Model,
		MaxTokens: d.opts.MaxTokens,
		Messages:  ls.conv,
		Tools:     d.reg.Catalog(),
	}
	if d.opts.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: d.opts.System}}
	}
	if d.opts.Temperature > 0 {
		params.Temperature = anthropic.Float(d.opts.Temperature)
	}

	start := time.Now()
	msg, err := d.client.Messages.New(ctx, params)
	if err != nil {
		return fmt.Errorf("reasoning engine request failed: %w", err)
	}

	if werr := d.sink.Write(d.opts.Source, json.RawMessage(msg.RawJSON())); werr != nil {
		telemetry.Emit("audit_write_failed", map[string]any{"source": d.opts.Source, "error": werr.Error()})
	}

	ls.msg = msg
	ls.calls = ls.calls[:0]
	ls.roundText = ""
	for _, block := range msg.Content {
		switch v := block.AsAny().(type) {
		case anthropic.TextBlock:
			if v.Text != "" {
				ls.roundText = v.Text
			}
		case anthropic.ToolUseBlock:
			ls.calls = append(ls.calls, dispatch.Call{
				ID:    v.ID,
				Name:  v.Name,
				Input: json.RawMessage(v.JSON.Input.Raw()),
			})
		}
	}
	if ls.roundText != "" {
		ls.lastText = ls.roundText
	}

	taskID, _ := telemetry.TaskIDFromContext(ctx)
	telemetry.Emit("engine_round", map[string]any{
		"task_id":     taskID,
		"agent":       d.opts.Source,
		"round":       ls.round,
		"tool_calls":  len(ls.calls),
		"has_text":    ls.roundText != "",
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return nil
}

// dispatchAndAppend runs the round's batch and extends the conversation:
// the assistant message verbatim, then one user message per result in
// call-issue order, each carrying the compacted output tagged by
// correlation id.
func (d *Driver) dispatchAndAppend(ctx context.Context, ls *loopState) {
	results := dispatch.Run(ctx, ls.calls, d.reg, d.sink)

	ls.conv = append(ls.conv, ls.msg.ToParam())
	for _, res := range results {
		blk := anthropic.NewToolResultBlock(res.ID, res.Compacted, res.IsError)
		ls.conv = append(ls.conv, anthropic.NewUserMessage(blk))
	}
}
