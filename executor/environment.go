package executor

import (
	"maps"
	"slices"
)

// Environment is the single flat scope of an interpreter. Rebinding a name
// overwrites it.
type Environment struct {
	vars map[string]Value
}

func NewEnvironment() *Environment {
	return &Environment{vars: map[string]Value{}}
}

func (e *Environment) Get(name string) (Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

func (e *Environment) Set(name string, v Value) {
	e.vars[name] = v
}

// Names returns the bound names in sorted order.
func (e *Environment) Names() []string {
	return slices.Sorted(maps.Keys(e.vars))
}
