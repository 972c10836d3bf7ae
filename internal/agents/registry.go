package agents

// Registry is the handler table keyed by agent name. Registration happens
// at startup; lookups afterwards are read-only and safe for concurrent use.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds a handler under its own name. Later registrations replace
// earlier ones.
func (r *Registry) Register(h Handler) {
	r.handlers[h.Name()] = h
}

// Get returns the handler for the agent name.
func (r *Registry) Get(name string) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Names returns the registered agent names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	return names
}
