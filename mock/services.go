// Package mock provides shared service doubles used across the
// blaskontrol test suites and usable by consumers testing their own
// wiring.
package mock

import (
	"fmt"
	"sync"
)

// Database is the storage contract the test services depend on.
type Database interface {
	DSN() string
	Ping() error
}

// MockDB is an in-memory Database that records pings.
type MockDB struct {
	Addr  string
	Fail  bool
	Pings int
}

func (m *MockDB) DSN() string {
	return "mock://" + m.Addr
}

func (m *MockDB) Ping() error {
	m.Pings++
	if m.Fail {
		return fmt.Errorf("ping %s: connection refused", m.Addr)
	}
	return nil
}

// Cache is a key-value contract layered on top of a Database.
type Cache interface {
	Get(key string) (string, bool)
	Put(key, value string)
}

// MockCache is a map-backed Cache that remembers which Database it was
// wired against, so tests can assert the container handed it the right
// dependency.
type MockCache struct {
	DB Database

	mu    sync.RWMutex
	items map[string]string
}

// NewMockCache builds a MockCache on top of db.
func NewMockCache(db Database) *MockCache {
	return &MockCache{
		DB:    db,
		items: make(map[string]string),
	}
}

func (m *MockCache) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	return v, ok
}

func (m *MockCache) Put(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
}

// Counter carries independently initialized state, useful for proving
// that two resolutions produced two instances.
type Counter struct {
	N int
}

// Incr bumps and returns the count.
func (c *Counter) Incr() int {
	c.N++
	return c.N
}

// RequestContext models one unit of work, useful for request-scope
// assertions.
type RequestContext struct {
	ID string
}

// Deep dependency chain: Service1 needs Service2 which needs Service3.

type DeepService3 interface {
	Value() string
}

type DeepService2 interface {
	Service3() DeepService3
}

type DeepService1 interface {
	Service2() DeepService2
}

type DeepImpl3 struct {
	V string
}

func (d *DeepImpl3) Value() string {
	return d.V
}

type DeepImpl2 struct {
	S3 DeepService3
}

func (d *DeepImpl2) Service3() DeepService3 {
	return d.S3
}

type DeepImpl1 struct {
	S2 DeepService2
}

func (d *DeepImpl1) Service2() DeepService2 {
	return d.S2
}
