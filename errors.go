package blaskontrol

import (
	"fmt"
	"strings"
)

// AlreadyRegisteredError is returned when a root registration targets an
// identity that already carries metadata, whether from a previous binding
// or from a mock placed on a never-bound identity.
type AlreadyRegisteredError struct {
	Name string
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("service %s is already registered", e.Name)
}

// SingletonOnChildError is returned when a child container requests
// singleton scope. Singletons belong to the root.
type SingletonOnChildError struct {
	Name string
}

func (e *SingletonOnChildError) Error() string {
	return fmt.Sprintf("cannot bind %s as singleton on a child container, bind it on the root", e.Name)
}

// RootOnlyError is returned when a root-only operation is called on a
// child container.
type RootOnlyError struct {
	Op string
}

func (e *RootOnlyError) Error() string {
	return fmt.Sprintf("%s is only available on the root container", e.Op)
}

// MetadataNotFoundError is returned by Get when the identity was never
// registered anywhere in the family, so no metadata exists for it.
type MetadataNotFoundError struct {
	Name string
}

func (e *MetadataNotFoundError) Error() string {
	return fmt.Sprintf("missing injected value for %s: identity was never registered", e.Name)
}

// BindingNotFoundError is returned by Get when the identity is known to
// the family but no cache entry and no binding is reachable from the
// resolving container.
type BindingNotFoundError struct {
	Name string
	ID   string
}

func (e *BindingNotFoundError) Error() string {
	return fmt.Sprintf("missing binding for %s (%s): no factory or constant is reachable from this container", e.Name, e.ID)
}

// NoActiveSessionError is returned when Mock, Restore or ClearMocks is
// called while no snapshot session is open.
type NoActiveSessionError struct {
	Op string
}

func (e *NoActiveSessionError) Error() string {
	return fmt.Sprintf("%s requires an active session, call Snapshot first", e.Op)
}

// AlreadySnapshottedError is returned by Snapshot when a session is
// already open.
type AlreadySnapshottedError struct{}

func (e *AlreadySnapshottedError) Error() string {
	return "a session is already active, call Restore before snapshotting again"
}

// InvalidScopeError is returned when a registration names a scope outside
// singleton, request and transient.
type InvalidScopeError struct {
	Scope Scope
	Name  string
}

func (e *InvalidScopeError) Error() string {
	return fmt.Sprintf("invalid scope %q for service %s", e.Scope, e.Name)
}

// NilHandlerError is returned when a dynamic registration carries a nil
// construction recipe.
type NilHandlerError struct {
	Name string
}

func (e *NilHandlerError) Error() string {
	return fmt.Sprintf("nil handler provided for service %s", e.Name)
}

// CircularDependencyError is returned when a handler directly or
// indirectly resolves the identity it is building. Chain lists the
// in-flight ids from the outermost resolution down to the repeat.
type CircularDependencyError struct {
	Name  string
	Chain []string
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("circular dependency detected for %s: %s", e.Name, strings.Join(e.Chain, " -> "))
}

// TypeMismatchError is returned by Resolve when the stored instance does
// not assert to the requested type.
type TypeMismatchError struct {
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Got)
}
