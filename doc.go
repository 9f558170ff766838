// Package blaskontrol is a small dependency-resolution container built
// around identity keys instead of reflection. Services register under a
// comparable identity (a string, a pointer or a ServiceKey token) either
// as ready-made constants or as lazy construction recipes, and resolve
// through a fixed cache precedence: mock overlay first, then the
// container's own cache, then the family-wide singleton store, then the
// container's binding table.
//
// A root container created by New can fork children with CreateChild.
// A child starts with a snapshot of its parent's binding table and an
// empty cache, which makes it a natural unit of work: one child per HTTP
// request gives request-scoped services exactly one instance per request
// while singletons stay shared across the whole family.
//
// Three lifetimes are supported. ScopeSingleton instances are built once
// and shared family-wide. ScopeRequest instances are cached per child and
// degrade to fresh-per-call on the root. ScopeTransient instances are
// never cached.
//
// For tests the root can open a session with Snapshot, override any
// identity family-wide with Mock, and roll everything back with Restore.
// Mocks win over every real binding and cache until the session ends.
package blaskontrol
