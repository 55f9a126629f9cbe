package sysreg

import (
	"slices"
	"strings"
	"sync"
)

// Entry pairs a key with a register name.
type Entry struct {
	Key  Key
	Name string
}

// Duplicate describes a key that appears more than once in the source data.
type Duplicate struct {
	Key Key
	// Names lists every name given to Key, in source order.
	Names []string
	// Winner is the name the table resolves Key to.
	Winner string
}

// Table is a read-only mapping from packed keys to register names.
// It is safe for concurrent use.
type Table struct {
	names  map[Key]string
	byName map[string]Key
	keys   []Key
	dups   []Duplicate
}

// NewTable builds a table from key/name pairs given in order. When a key
// repeats, the last pair wins and the key is recorded as a duplicate.
func NewTable(es ...Entry) *Table {
	t := &Table{
		names:  make(map[Key]string, len(es)),
		byName: make(map[string]Key, len(es)),
	}

	seen := make(map[Key][]string, len(es))
	for _, e := range es {
		seen[e.Key] = append(seen[e.Key], e.Name)
		t.names[e.Key] = e.Name
		t.byName[strings.ToUpper(e.Name)] = e.Key
	}

	t.keys = make([]Key, 0, len(t.names))
	for k := range t.names {
		t.keys = append(t.keys, k)
	}
	slices.Sort(t.keys)

	for _, k := range t.keys {
		if names := seen[k]; len(names) > 1 {
			t.dups = append(t.dups, Duplicate{
				Key:    k,
				Names:  names,
				Winner: t.names[k],
			})
		}
	}

	return t
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the table of known ARM64 system registers.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = NewTable(entries...)
	})

	return defaultTable
}

// Resolve packs the five fields and looks the key up in the default table.
func Resolve(op0, op1, crn, crm, op2 uint8) (string, bool) {
	return Default().Resolve(op0, op1, crn, crm, op2)
}

// Lookup looks a packed key up in the default table.
func Lookup(k Key) (string, bool) {
	return Default().Lookup(k)
}

// ByName finds the key of a register name in the default table.
func ByName(name string) (Key, bool) {
	return Default().ByName(name)
}

// Resolve packs the five fields and looks the key up.
func (t *Table) Resolve(op0, op1, crn, crm, op2 uint8) (string, bool) {
	return t.Lookup(Pack(op0, op1, crn, crm, op2))
}

// Lookup returns the name for k. The boolean is false when k is unknown.
// A nil table knows no keys.
func (t *Table) Lookup(k Key) (string, bool) {
	if t == nil {
		return "", false
	}
	name, ok := t.names[k]
	return name, ok
}

// ByName returns the key for a register name, ignoring case.
// For a duplicated key, every one of its names maps back to it.
func (t *Table) ByName(name string) (Key, bool) {
	k, ok := t.byName[strings.ToUpper(name)]
	return k, ok
}

// Len returns the number of distinct keys.
func (t *Table) Len() int {
	return len(t.keys)
}

// Keys returns the distinct keys in ascending order.
func (t *Table) Keys() []Key {
	return slices.Clone(t.keys)
}

// Each calls fn for every key in ascending order until fn returns false.
func (t *Table) Each(fn func(k Key, name string) bool) {
	for _, k := range t.keys {
		if !fn(k, t.names[k]) {
			return
		}
	}
}

// Duplicates reports the keys that were given more than one name.
func (t *Table) Duplicates() []Duplicate {
	return slices.Clone(t.dups)
}
