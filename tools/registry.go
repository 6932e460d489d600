package tools

// Registry returns all tool definitions wired for the file agent.
func Registry() []ToolDefinition {
	return []ToolDefinition{
		LsDefinition,
		GlobDefinition,
		FindDefinition,
		GrepDefinition,
		ReadDefinition,
		WriteDefinition,
		EditDefinition,
		MultiEditDefinition,
		BashDefinition,
		TodoWriteDefinition,
	}
}
