package pseudo

import (
	"fmt"
	"sync"
)

// Enum is a named set of constants used to display numbers symbolically.
type Enum struct {
	name string

	mu      sync.RWMutex
	byValue map[uint64]string
	byName  map[string]uint64
	order   []string
}

// Name returns the enum's type name.
func (e *Enum) Name() string {
	return e.name
}

// AddMember adds a constant. Names are unique within an enum; when two
// members share a value, the first one added is displayed.
func (e *Enum) AddMember(name string, value uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, dup := e.byName[name]; dup {
		return fmt.Errorf("enum %s: member %s already defined", e.name, name)
	}

	e.byName[name] = value
	e.order = append(e.order, name)
	if _, taken := e.byValue[value]; !taken {
		e.byValue[value] = name
	}

	return nil
}

// Member returns the display name for value.
func (e *Enum) Member(value uint64) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	name, ok := e.byValue[value]
	return name, ok
}

// Value returns the value of a named member.
func (e *Enum) Value(name string) (uint64, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	v, ok := e.byName[name]
	return v, ok
}

// Len returns the number of members.
func (e *Enum) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return len(e.order)
}

// Enums is a registry of enums, keyed by name.
type Enums struct {
	mu    sync.RWMutex
	enums map[string]*Enum
}

// NewEnums creates an empty registry.
func NewEnums() *Enums {
	return &Enums{enums: make(map[string]*Enum)}
}

// Add creates a new, empty enum.
func (r *Enums) Add(name string) (*Enum, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.enums[name]; dup {
		return nil, fmt.Errorf("enum %s already exists", name)
	}

	e := &Enum{
		name:    name,
		byValue: make(map[uint64]string),
		byName:  make(map[string]uint64),
	}
	r.enums[name] = e
	return e, nil
}

// Get looks an enum up by name.
func (r *Enums) Get(name string) (*Enum, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.enums[name]
	return e, ok
}

// Remove deletes an enum. Numbers that refer to it print as plain values.
func (r *Enums) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.enums, name)
}
