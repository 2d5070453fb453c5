package code

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds the closed set of codes for one process. It is assembled
// during startup and sealed on first enumeration; registering after sealing
// is a programming error and panics.
type Registry struct {
	mu     sync.Mutex
	codes  map[Code]struct{}
	sealed bool
}

// NewRegistry creates a registry pre-populated with the built-in codes.
func NewRegistry() *Registry {
	r := &Registry{codes: make(map[Code]struct{})}
	for _, c := range builtin() {
		r.codes[c] = struct{}{}
	}
	return r
}

// Register adds a code to the registry and returns it, so application
// packages can register at var-declaration time:
//
//	var CodeQuotaExceeded = reg.Register("QUOTA_EXCEEDED")
func (r *Registry) Register(c Code) Code {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		panic(fmt.Sprintf("code: Register(%q) after registry was sealed", c))
	}
	if c == "" {
		panic("code: Register with empty code")
	}
	if _, dup := r.codes[c]; dup {
		panic(fmt.Sprintf("code: %q registered twice", c))
	}
	r.codes[c] = struct{}{}
	return c
}

// Contains reports whether c is part of the registered set.
func (r *Registry) Contains(c Code) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.codes[c]
	return ok
}

// All seals the registry and returns the registered codes in sorted order.
// After the first call the set is fixed for the life of the process.
func (r *Registry) All() []Code {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
	out := make([]Code, 0, len(r.codes))
	for c := range r.codes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Sealed reports whether the registry has been sealed.
func (r *Registry) Sealed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sealed
}

// --- Default registry ---

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }

// Register adds a code to the process-wide registry.
func Register(c Code) Code { return defaultRegistry.Register(c) }

// Contains reports whether c is registered in the process-wide registry.
func Contains(c Code) bool { return defaultRegistry.Contains(c) }

// All seals the process-wide registry and returns its codes.
func All() []Code { return defaultRegistry.All() }
