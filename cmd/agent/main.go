package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/petasbytes/fileagent/internal/agent"
	"github.com/petasbytes/fileagent/internal/audit"
	"github.com/petasbytes/fileagent/internal/provider"
	"github.com/petasbytes/fileagent/internal/telemetry"
	"github.com/petasbytes/fileagent/memory"
)

const transcriptPath = "transcript.json"

func main() {
	// Basic env check (SDK also reads API key)
	if os.Getenv("ANTHROPIC_API_KEY") == "" {
		fmt.Println("Missing ANTHROPIC_API_KEY; export it before running.")
		os.Exit(1)
	}

	task, err := readTask()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Set up graceful shutdown on Ctrl-C (SIGINT) / SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigch)
	go func() {
		<-sigch
		fmt.Println("\nExiting...")
		cancel()
	}()

	// One task per process: start from a clean message store.
	sink := audit.NewStore(audit.DefaultRoot)
	if err := sink.Reset(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to reset message store: %v\n", err)
	}

	client := provider.NewAnthropicClient()
	orch, err := agent.NewOrchestrator(client, sink)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	telemetry.Emit("task_start", map[string]any{"task": task})
	result, err := orch.Execute(ctx, task)
	if err != nil {
		telemetry.Emit("task_failed", map[string]any{"error": err.Error()})
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	telemetry.Emit("task_done", map[string]any{"task": task})

	fmt.Println(result)

	if err := memory.AppendTask(transcriptPath, task, result); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save transcript: %v\n", err)
	}
}

// readTask takes the task from argv, or from the first stdin line when no
// arguments are given.
func readTask() (string, error) {
	if len(os.Args) > 1 {
		task := strings.TrimSpace(strings.Join(os.Args[1:], " "))
		if task == "" {
			return "", fmt.Errorf("empty task")
		}
		return task, nil
	}

	fmt.Print("Task: ")
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("stdin read error: %w", err)
		}
		return "", fmt.Errorf("no task provided")
	}
	task := strings.TrimSpace(scanner.Text())
	if task == "" {
		return "", fmt.Errorf("empty task")
	}
	return task, nil
}
