package blaskontrol

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/samber/lo"
)

// DebugFunc receives one human-readable line per registration and
// resolution decision. The default sink discards everything.
type DebugFunc func(msg string)

type options struct {
	debug DebugFunc
}

// Option configures a root container created by New.
type Option func(*options)

// WithDebug installs fn as the trace sink for the whole container family.
// The sink is shared by reference, so children created later report
// through the same function.
func WithDebug(fn DebugFunc) Option {
	return func(o *options) {
		o.debug = fn
	}
}

// WithLogger routes trace lines to logger at debug level.
func WithLogger(logger *slog.Logger) Option {
	return WithDebug(func(msg string) {
		logger.Debug(msg)
	})
}

type sessionState uint8

const (
	sessionNormal sessionState = iota
	sessionSnapshotted
)

// familyState is co-owned by every container descended from one New call.
// The metadata side table, the singleton store, the mock overlay, the id
// counter and the debug sink are shared by reference and never copied on
// fork. Snapshot swaps the singleton store for a working copy through this
// struct, which is exactly why children keep seeing session state.
type familyState struct {
	mu         sync.RWMutex
	meta       map[Identity]*metadata
	singletons map[string]any
	mocks      map[string]any
	counter    uint64
	debug      DebugFunc
	session    sessionState
	backup     *sessionBackup
	root       *Container
}

// Container resolves identities against the shared mock overlay, its own
// resolved cache, the shared singleton store and its own binding table, in
// that order. The zero value is not usable. Create roots with New and
// children with CreateChild.
type Container struct {
	family   *familyState
	isRoot   bool
	bindings map[string]binding
	resolved map[string]any
	building []string
}

// New creates the root container of a fresh family.
func New(opts ...Option) *Container {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	fam := &familyState{
		meta:       make(map[Identity]*metadata),
		singletons: make(map[string]any),
		mocks:      make(map[string]any),
		debug:      o.debug,
	}
	root := &Container{
		family:   fam,
		isRoot:   true,
		bindings: make(map[string]binding),
		resolved: make(map[string]any),
	}
	fam.root = root
	return root
}

// CreateChild forks this container. The child starts with a copy of the
// parent's binding table taken at fork time, so later registrations on
// either side are invisible to the other. Its resolved cache starts empty.
// Everything held in familyState stays shared.
func (c *Container) CreateChild() *Container {
	fam := c.family
	fam.mu.RLock()
	forked := lo.Assign(c.bindings)
	fam.mu.RUnlock()

	child := &Container{
		family:   fam,
		bindings: forked,
		resolved: make(map[string]any),
	}
	c.debugf("create child container")
	return child
}

// forBuild derives the container a handler runs against: same family and
// tables, with id pushed onto the in-flight stack so a recursive resolve
// of the same identity is caught as a cycle. The struct copy happens under
// the family lock because Snapshot and Restore swap the root's tables.
func (c *Container) forBuild(id string) *Container {
	stack := make([]string, 0, len(c.building)+1)
	stack = append(stack, c.building...)

	c.family.mu.RLock()
	sub := *c
	c.family.mu.RUnlock()

	sub.building = append(stack, id)
	return &sub
}

func (c *Container) debugf(format string, args ...any) {
	if c.family.debug == nil {
		return
	}
	c.family.debug(fmt.Sprintf(format, args...))
}
