// Package dispatch executes one round's batch of capability calls.
//
// All calls launch concurrently; each is awaited independently and no call's
// failure or panic can take down its siblings. Results come back in
// call-issue order (restored by index, not completion race), which the
// Driver relies on when feeding them to the reasoning engine.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/petasbytes/fileagent/internal/audit"
	"github.com/petasbytes/fileagent/internal/capability"
	"github.com/petasbytes/fileagent/internal/compact"
	"github.com/petasbytes/fileagent/internal/metrics"
	"github.com/petasbytes/fileagent/internal/telemetry"
)

// Call is one capability invocation requested by the reasoning engine.
type Call struct {
	ID    string // correlation id, unique within a round
	Name  string
	Input json.RawMessage
}

// Result is the outcome of one Call. Raw is the full capability output;
// Compacted is what gets fed back into the conversation.
type Result struct {
	ID        string
	Name      string
	Raw       string
	Compacted string
	IsError   bool
}

// Run executes calls concurrently against reg and returns results in the
// same order as calls. Capability failures are soft: they surface as error
// results, never as a dispatch failure.
func Run(ctx context.Context, calls []Call, reg *capability.Registry, sink *audit.Store) []Result {
	results := make([]Result, len(calls))

	g, ctx := errgroup.WithContext(ctx)
	for i, call := range calls {
		g.Go(func() error {
			results[i] = runOne(ctx, call, reg, sink)
			return nil
		})
	}
	// Workers only signal completion; soft failures live in the results.
	_ = g.Wait()

	return results
}

func runOne(ctx context.Context, call Call, reg *capability.Registry, sink *audit.Store) Result {
	start := time.Now()
	out, invokeErr := invoke(ctx, call, reg)

	res := Result{ID: call.ID, Name: call.Name, Raw: out}
	if invokeErr != "" {
		res.Raw = invokeErr
		res.IsError = true
	}
	res.Compacted = compact.Result(call.Name, res.Raw)

	record := map[string]any{
		"tool":      call.Name,
		"arguments": json.RawMessage(call.Input),
		"result":    res.Raw,
		"is_error":  res.IsError,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if err := sink.Write(call.Name, record); err != nil {
		telemetry.Emit("audit_write_failed", map[string]any{"tool": call.Name, "error": err.Error()})
	}

	taskID, _ := telemetry.TaskIDFromContext(ctx)
	fields := map[string]any{
		"task_id":     taskID,
		"tool_name":   call.Name,
		"duration_ms": time.Since(start).Milliseconds(),
		"input_size":  len(call.Input),
		"output":      metrics.CountFeatures(res.Raw).Map(),
	}
	if res.IsError {
		fields["error"] = res.Raw
	} else {
		fields["error"] = nil
	}
	telemetry.Emit("tool_exec", fields)

	return res
}

// invoke runs one capability, converting unknown names, handler errors, and
// panics into sentinel payloads. An empty second return means success.
func invoke(ctx context.Context, call Call, reg *capability.Registry) (out string, errText string) {
	defer func() {
		if r := recover(); r != nil {
			out = ""
			errText = fmt.Sprintf("execution failed: panic: %v", r)
		}
	}()

	c, ok := reg.Lookup(call.Name)
	if !ok {
		return "", fmt.Sprintf("capability not found: %s", call.Name)
	}

	res, err := c.Invoke(ctx, call.Input)
	if err != nil {
		return "", fmt.Sprintf("execution failed: %v", err)
	}
	return res, ""
}
