package capability

import (
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
)

// Registry is a read-only name-keyed set of capabilities, built once per
// Driver instance.
type Registry struct {
	byName  map[string]Capability
	ordered []Capability
}

// NewRegistry builds a Registry from the given capabilities. Duplicate names
// are a construction-time contract violation.
func NewRegistry(caps ...Capability) (*Registry, error) {
	r := &Registry{byName: make(map[string]Capability, len(caps))}
	for _, c := range caps {
		if c.Name() == "" {
			return nil, fmt.Errorf("capability with empty name")
		}
		if _, dup := r.byName[c.Name()]; dup {
			return nil, fmt.Errorf("duplicate capability name: %q", c.Name())
		}
		r.byName[c.Name()] = c
		r.ordered = append(r.ordered, c)
	}
	return r, nil
}

// Lookup returns the capability registered under name.
func (r *Registry) Lookup(name string) (Capability, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// Len returns the number of registered capabilities.
func (r *Registry) Len() int { return len(r.ordered) }

// Catalog renders the registry for advertising to the reasoning engine, in
// registration order.
func (r *Registry) Catalog() []anthropic.ToolUnionParam {
	out := make([]anthropic.ToolUnionParam, 0, len(r.ordered))
	for _, c := range r.ordered {
		out = append(out, anthropic.ToolUnionParam{OfTool: &anthropic.ToolParam{
			Name:        c.Name(),
			Description: anthropic.String(c.Description()),
			InputSchema: c.InputSchema(),
		}})
	}
	return out
}
