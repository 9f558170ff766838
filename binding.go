package blaskontrol

import "fmt"

// Handler is a construction recipe: a function from the resolving
// container to a service instance. Handlers may resolve their own
// dependencies through the container they receive.
type Handler func(c *Container) (any, error)

// Provider is the typed form of Handler accepted by BindDynamic.
type Provider[T any] func(c *Container) (T, error)

// binding pairs an identity with its construction recipe. Binding tables
// are keyed by the identity's metadata id.
type binding struct {
	identity Identity
	handler  Handler
}

type bindOptions struct {
	scope Scope
}

// BindOption adjusts a single BindAsDynamic registration.
type BindOption func(*bindOptions)

// InScope requests a lifetime other than the default ScopeSingleton.
func InScope(scope Scope) BindOption {
	return func(o *bindOptions) {
		o.scope = scope
	}
}

// BindAsConstant registers a ready-made instance under identity with
// singleton scope. Root-only. The instance lands in the shared singleton
// store immediately, so every existing and future container in the family
// resolves the same value without running any recipe.
func (c *Container) BindAsConstant(identity Identity, instance any) error {
	if !c.isRoot {
		return &RootOnlyError{Op: "BindAsConstant"}
	}
	fam := c.family
	fam.mu.Lock()
	if md, ok := fam.lookup(identity); ok {
		fam.mu.Unlock()
		return &AlreadyRegisteredError{Name: md.name}
	}
	md := fam.stamp(identity, ScopeSingleton)
	fam.singletons[md.id] = instance
	c.resolved[md.id] = instance
	fam.mu.Unlock()

	c.debugf("register constant %s (%s) in singleton scope", md.name, md.id)
	return nil
}

// BindAsDynamic registers a construction recipe under identity. The recipe
// does not run here; it runs lazily on first Get per the scope's caching
// policy. The default scope is ScopeSingleton, override it with InScope.
//
// On the root the identity must be new. On a child the registration
// shadows any inherited binding in the child's own table without touching
// the ancestor, singleton scope is rejected, and when the identity is
// already stamped with a different real scope the stamped scope wins and a
// warning is traced instead of an error.
func (c *Container) BindAsDynamic(identity Identity, handler Handler, opts ...BindOption) error {
	if handler == nil {
		return &NilHandlerError{Name: identityName(identity)}
	}
	cfg := bindOptions{scope: ScopeSingleton}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.scope.valid() {
		return &InvalidScopeError{Scope: cfg.scope, Name: identityName(identity)}
	}

	fam := c.family
	var warn string
	fam.mu.Lock()
	md, exists := fam.lookup(identity)
	switch {
	case c.isRoot:
		if exists {
			fam.mu.Unlock()
			return &AlreadyRegisteredError{Name: md.name}
		}
		md = fam.stamp(identity, cfg.scope)
	case cfg.scope == ScopeSingleton:
		fam.mu.Unlock()
		return &SingletonOnChildError{Name: identityName(identity)}
	case !exists:
		md = fam.stamp(identity, cfg.scope)
	case md.scope == ScopeMock:
		md.scope = cfg.scope
	case md.scope != cfg.scope:
		warn = fmt.Sprintf("warning: %s (%s) keeps %s scope, requested %s scope was ignored", md.name, md.id, md.scope, cfg.scope)
	}
	c.bindings[md.id] = binding{identity: identity, handler: handler}
	effective := md.scope
	fam.mu.Unlock()

	if warn != "" {
		c.debugf("%s", warn)
	}
	suffix := ""
	if !c.isRoot {
		suffix = " on child container"
	}
	c.debugf("register dynamic %s (%s) in %s scope%s", md.name, md.id, effective, suffix)
	return nil
}

// BindDynamic is the call-site-typed form of BindAsDynamic.
func BindDynamic[T any](c *Container, identity Identity, provider Provider[T], opts ...BindOption) error {
	if provider == nil {
		return &NilHandlerError{Name: identityName(identity)}
	}
	return c.BindAsDynamic(identity, func(c *Container) (any, error) {
		return provider(c)
	}, opts...)
}

// Mock places replacement in the shared mock overlay for identity. It
// requires an active session started by Snapshot. While present, the
// replacement wins over every real binding and cache in the family, from
// any container, until Restore or ClearMocks removes it. An identity never
// registered before is stamped with mock scope on the spot, so mocking
// does not require a prior real binding.
func (c *Container) Mock(identity Identity, replacement any) error {
	fam := c.family
	fam.mu.Lock()
	if fam.session != sessionSnapshotted {
		fam.mu.Unlock()
		return &NoActiveSessionError{Op: "Mock"}
	}
	md, ok := fam.lookup(identity)
	if !ok {
		md = fam.stamp(identity, ScopeMock)
	}
	fam.mocks[md.id] = replacement
	fam.mu.Unlock()

	c.debugf("register mock for %s (%s)", md.name, md.id)
	return nil
}
