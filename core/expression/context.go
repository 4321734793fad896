package expression

import (
	"sort"
	"sync"

	"github.com/hashicorp/hcl/v2/hclsyntax"

	"unties/core/quantity"
	uerrors "unties/internal/errors"
)

// Context layers named variables over a parent resolver. Variables shadow
// the parent's symbols.
type Context struct {
	mu sync.RWMutex

	variables map[string]quantity.Quantity

	// Parent resolver, usually a registry or another Context
	parent Resolver
}

// NewContext creates a new evaluation context over parent, which may be nil
func NewContext(parent Resolver) *Context {
	return &Context{
		variables: make(map[string]quantity.Quantity),
		parent:    parent,
	}
}

// NewChildContext creates a context whose parent is c
func (c *Context) NewChildContext() *Context {
	return NewContext(c)
}

// SetVariable binds name to q
func (c *Context) SetVariable(name string, q quantity.Quantity) error {
	if !hclsyntax.ValidIdentifier(name) {
		return uerrors.Newf(uerrors.TypeInput, "invalid variable name %q", name)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.variables[name] = q
	return nil
}

// SetVariables binds every entry of vars
func (c *Context) SetVariables(vars map[string]quantity.Quantity) error {
	for name, q := range vars {
		if err := c.SetVariable(name, q); err != nil {
			return err
		}
	}
	return nil
}

// Define evaluates src in c and binds the result to name
func (c *Context) Define(name, src string) (quantity.Quantity, error) {
	q, err := Eval(src, c)
	if err != nil {
		return quantity.Quantity{}, err
	}
	if err := c.SetVariable(name, q); err != nil {
		return quantity.Quantity{}, err
	}
	return q, nil
}

// Lookup resolves name from the context's variables, then the parent
func (c *Context) Lookup(name string) (quantity.Quantity, bool) {
	c.mu.RLock()
	q, ok := c.variables[name]
	c.mu.RUnlock()
	if ok {
		return q, true
	}
	if c.parent == nil {
		return quantity.Quantity{}, false
	}
	return c.parent.Lookup(name)
}

// Variables returns the names bound directly in c
func (c *Context) Variables() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.variables))
	for name := range c.variables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
