// Package di provides a small service container with typed tokens.
package di

import (
	"fmt"
	"sync"
)

// ServiceRegistry provides read access to registered services.
type ServiceRegistry interface {
	// Get returns the service registered under name, resolving lazy
	// factories on first access. Panics if the name is unknown.
	Get(name string) any
}

// Container is a ServiceRegistry that also accepts registrations.
type Container interface {
	ServiceRegistry

	// Register stores an already-constructed service under name.
	Register(name string, service any)

	// RegisterFactory stores a lazy constructor; the service is built once,
	// on first Get.
	RegisterFactory(name string, factory func(ServiceRegistry) any)
}

type entry struct {
	once    sync.Once
	value   any
	factory func(ServiceRegistry) any
}

type container struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// NewContainer creates an empty container.
func NewContainer() Container {
	return &container{
		entries: make(map[string]*entry),
	}
}

func (c *container) Register(name string, service any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := &entry{value: service}
	e.once.Do(func() {})
	c.entries[name] = e
}

func (c *container) RegisterFactory(name string, factory func(ServiceRegistry) any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[name] = &entry{factory: factory}
}

// Get resolves a service, running the factory at most once. Concurrent first
// accesses of the same name block until the factory returns, so callers never
// observe a half-built entry. Factories may resolve other names but must not
// resolve their own (that deadlocks inside the once).
func (c *container) Get(name string) any {
	c.mu.Lock()
	e, ok := c.entries[name]
	c.mu.Unlock()
	if !ok {
		panic(fmt.Sprintf("di: service %q not registered", name))
	}

	e.once.Do(func() {
		e.value = e.factory(c)
	})

	return e.value
}
