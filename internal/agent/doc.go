// Package agent assembles the two agent variants from the shared driver:
// the file agent, whose registry holds the concrete workspace tools, and
// the orchestrator, whose registry holds the file agent as its single
// delegate. Both write to the same audit sink under their own source names.
package agent
