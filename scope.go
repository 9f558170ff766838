package blaskontrol

// Scope defines the lifetime and sharing behavior of a bound service.
type Scope string

const (
	// ScopeSingleton shares one instance across the whole container family.
	ScopeSingleton Scope = "singleton"

	// ScopeRequest shares one instance within a single child container.
	// On the root container the scope degrades to a fresh instance per
	// resolution.
	ScopeRequest Scope = "request"

	// ScopeTransient builds a fresh instance on every resolution and
	// never caches it.
	ScopeTransient Scope = "transient"

	// ScopeMock marks identities that were first seen through Mock,
	// before any real binding existed. A later child registration
	// replaces it with the requested scope.
	ScopeMock Scope = "mock"
)

func (s Scope) valid() bool {
	switch s {
	case ScopeSingleton, ScopeRequest, ScopeTransient:
		return true
	}
	return false
}
