package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

type TodoItem struct {
	Content  string `json:"content" jsonschema_description:"Task description."`
	Status   string `json:"status" jsonschema_description:"Current status: 'pending', 'in_progress', or 'completed'."`
	Priority string `json:"priority" jsonschema_description:"Priority level: 'high', 'medium', or 'low'."`
	ID       string `json:"id" jsonschema_description:"Unique identifier for the task."`
}

type TodoWriteInput struct {
	Todos []TodoItem `json:"todos" jsonschema_description:"Full todo list; replaces the previous one."`
}

var TodoWriteDefinition = ToolDefinition{
	Name:        "todo_write",
	Description: "Create and manage a structured task list for multi-step work. The list replaces the previous one; keep at most one task in_progress.",
	InputSchema: TodoWriteInputSchema,
	Function:    TodoWrite,
}

var TodoWriteInputSchema = GenerateSchema[TodoWriteInput]()

// sessionTodos is the current checklist for this process. One task per
// process, so a package-level list is enough.
var (
	todoMu       sync.Mutex
	sessionTodos []TodoItem
)

// SessionTodos returns a copy of the current checklist.
func SessionTodos() []TodoItem {
	todoMu.Lock()
	defer todoMu.Unlock()
	out := make([]TodoItem, len(sessionTodos))
	copy(out, sessionTodos)
	return out
}

func validateTodos(todos []TodoItem) error {
	inProgress := 0
	for _, td := range todos {
		if strings.TrimSpace(td.Content) == "" {
			return fmt.Errorf("todo content cannot be empty")
		}
		if strings.TrimSpace(td.ID) == "" {
			return fmt.Errorf("todo id cannot be empty")
		}
		switch td.Status {
		case "pending", "in_progress", "completed":
		default:
			return fmt.Errorf("invalid todo status: %s", td.Status)
		}
		switch td.Priority {
		case "high", "medium", "low":
		default:
			return fmt.Errorf("invalid todo priority: %s", td.Priority)
		}
		if td.Status == "in_progress" {
			inProgress++
		}
	}
	if inProgress > 1 {
		return fmt.Errorf("only one todo can be in_progress at a time, got %d", inProgress)
	}
	return nil
}

// TodoWrite replaces the session checklist and renders a progress summary.
func TodoWrite(ctx context.Context, input json.RawMessage) (string, error) {
	var in TodoWriteInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}
	if err := validateTodos(in.Todos); err != nil {
		return "", err
	}

	todoMu.Lock()
	sessionTodos = append([]TodoItem(nil), in.Todos...)
	todoMu.Unlock()

	completed, pending := 0, 0
	for _, td := range in.Todos {
		switch td.Status {
		case "completed":
			completed++
		case "pending":
			pending++
		}
	}

	var b strings.Builder
	total := len(in.Todos)
	if total > 1 {
		pct := 0
		if total > 0 {
			pct = completed * 100 / total
		}
		fmt.Fprintf(&b, "Todo Progress: %d/%d (%d%% complete)\n", completed, total, pct)
		if pending > 0 {
			fmt.Fprintf(&b, "%d tasks remaining\n", pending)
		}
		b.WriteByte('\n')
	}
	for i, td := range in.Todos {
		icon := "[?]"
		switch td.Status {
		case "completed":
			icon = "[DONE]"
		case "in_progress":
			icon = "[ACTIVE]"
		case "pending":
			icon = "[TODO]"
		}
		fmt.Fprintf(&b, "%d. %s %s [%s]\n", i+1, icon, td.Content, strings.ToUpper(td.Priority))
	}
	b.WriteString("\nTodos have been updated and tracked for progress visibility.")
	return b.String(), nil
}
