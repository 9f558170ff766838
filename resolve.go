package blaskontrol

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Get resolves identity to an instance. The lookup order is fixed: the
// identity's metadata, the shared mock overlay, this container's resolved
// cache, the shared singleton store (memoized into the local cache on
// hit), and finally this container's binding table. A matched recipe runs
// outside the family lock, so handlers can resolve their own dependencies
// recursively.
func (c *Container) Get(identity Identity) (any, error) {
	fam := c.family

	fam.mu.RLock()
	md, ok := fam.lookup(identity)
	if !ok {
		fam.mu.RUnlock()
		return nil, &MetadataNotFoundError{Name: identityName(identity)}
	}
	if v, ok := fam.mocks[md.id]; ok {
		fam.mu.RUnlock()
		c.debugf("resolve %s (%s) from mock overlay", md.name, md.id)
		return v, nil
	}
	if v, ok := c.resolved[md.id]; ok {
		fam.mu.RUnlock()
		c.debugf("resolve %s (%s) from local cache", md.name, md.id)
		return v, nil
	}
	if v, ok := fam.singletons[md.id]; ok {
		fam.mu.RUnlock()
		fam.mu.Lock()
		c.resolved[md.id] = v
		fam.mu.Unlock()
		c.debugf("resolve %s (%s) from singleton store", md.name, md.id)
		return v, nil
	}
	b, found := c.bindings[md.id]
	scope := md.scope
	fam.mu.RUnlock()

	if !found {
		return nil, &BindingNotFoundError{Name: md.name, ID: md.id}
	}
	return c.build(md, scope, b)
}

// build runs the recipe and applies the scope's caching policy. The
// handler itself runs without holding the lock.
func (c *Container) build(md *metadata, scope Scope, b binding) (any, error) {
	for _, inflight := range c.building {
		if inflight != md.id {
			continue
		}
		chain := make([]string, 0, len(c.building)+1)
		chain = append(chain, c.building...)
		chain = append(chain, md.id)
		return nil, &CircularDependencyError{Name: md.name, Chain: chain}
	}

	value, err := b.handler(c.forBuild(md.id))
	if err != nil {
		return nil, errors.Wrapf(err, "handler for %s (%s) failed", md.name, md.id)
	}

	fam := c.family
	switch scope {
	case ScopeSingleton:
		fam.mu.Lock()
		fam.singletons[md.id] = value
		c.resolved[md.id] = value
		fam.mu.Unlock()
		c.debugf("resolve %s (%s) as singleton, cached in singleton store", md.name, md.id)
	case ScopeRequest:
		if c.isRoot {
			c.debugf("resolve %s (%s) as request-scoped on the root, returning fresh instance", md.name, md.id)
			break
		}
		fam.mu.Lock()
		c.resolved[md.id] = value
		fam.mu.Unlock()
		c.debugf("resolve %s (%s) as request-scoped, cached in this container", md.name, md.id)
	default:
		c.debugf("resolve %s (%s) as transient", md.name, md.id)
	}
	return value, nil
}

// MustGet is Get for wiring code where a missing binding is fatal.
func (c *Container) MustGet(identity Identity) any {
	v, err := c.Get(identity)
	if err != nil {
		panic(fmt.Sprintf("blaskontrol: %v", err))
	}
	return v
}

// Resolve resolves identity and asserts the instance to T.
func Resolve[T any](c *Container, identity Identity) (T, error) {
	var zero T
	v, err := c.Get(identity)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		expected := reflect.TypeOf((*T)(nil)).Elem()
		return zero, &TypeMismatchError{Expected: expected.String(), Got: fmt.Sprintf("%T", v)}
	}
	return typed, nil
}

// MustResolve is Resolve for wiring code where failure is fatal.
func MustResolve[T any](c *Container, identity Identity) T {
	v, err := Resolve[T](c, identity)
	if err != nil {
		panic(fmt.Sprintf("blaskontrol: %v", err))
	}
	return v
}
