// Package tools exposes the API as a set of named, self-describing tools a
// language model can invoke. Each tool carries a JSON-schema parameter
// description for the model and a handler that calls the HTTP API and
// renders a compact markdown answer.
package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Tool is one callable unit. Run receives the raw JSON argument object the
// model produced (possibly empty) and returns rendered text. Upstream API
// failures are rendered into the text; Run errors are reserved for misuse
// such as malformed arguments or an unparsable date.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
	Run         func(ctx context.Context, args string) (string, error)
}

// Registry holds tools by name and preserves registration order for listing.
type Registry struct {
	log   *slog.Logger
	order []string
	tools map[string]Tool
}

func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{
		log:   log,
		tools: make(map[string]Tool),
	}
}

// Register adds a tool. Re-registering a name replaces the handler but keeps
// the original listing position.
func (r *Registry) Register(t Tool) {
	if _, ok := r.tools[t.Name]; !ok {
		r.order = append(r.order, t.Name)
	}
	r.tools[t.Name] = t
}

// List returns all tools in registration order.
func (r *Registry) List() []Tool {
	out := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// Get returns the named tool.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Invoke runs the named tool. Every invocation gets a uuid and a structured
// log line with the outcome and duration.
func (r *Registry) Invoke(ctx context.Context, name, args string) (string, error) {
	t, ok := r.tools[name]
	if !ok {
		return "", fmt.Errorf("tools.Registry.Invoke: unknown tool %q", name)
	}

	id := uuid.NewString()
	start := time.Now()
	r.log.InfoContext(ctx, "tool invocation", "tool", name, "invocation_id", id)

	out, err := t.Run(ctx, args)

	if err != nil {
		r.log.ErrorContext(ctx, "tool invocation failed",
			"tool", name,
			"invocation_id", id,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		return "", fmt.Errorf("tools.Registry.Invoke: %s: %w", name, err)
	}

	r.log.InfoContext(ctx, "tool invocation done",
		"tool", name,
		"invocation_id", id,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}
