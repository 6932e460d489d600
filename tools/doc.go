// Package tools defines tool contracts and implementations.
//
// Includes:
//   - ToolDefinition: name, description, JSON input schema, handler.
//   - GenerateSchema[T](): derive JSON Schema from Go structs.
//   - File tools: ls, glob, find, grep, read, write, edit, multi_edit.
//   - Process tools: bash (sandboxed working directory, timeout).
//   - Session tools: todo_write.
//
// All file tools address the workspace through relative paths resolved by
// internal/fsops; unsafe paths are rejected before any I/O happens.
package tools
