package domain

import (
	"fmt"
	"strings"
	"sync"
)

// Well-known context keys.
const (
	// KeyTargetName holds the name of the target currently executing.
	KeyTargetName = "anvil.target.name"
	// KeyTaskName holds the name of the task currently executing.
	KeyTaskName = "anvil.task.name"
	// KeyProjectName holds the project name.
	KeyProjectName = "anvil.project.name"
	// KeyBaseDir holds the project base directory.
	KeyBaseDir = "anvil.base.dir"
)

// Context is a layered key/value store.
// Reads fall through to the parent chain; writes only touch the receiver's own layer.
type Context struct {
	parent *Context

	mu     sync.RWMutex
	values map[string]any
}

// NewContext creates a layer on top of parent. parent may be nil.
func NewContext(parent *Context) *Context {
	return &Context{
		parent: parent,
		values: make(map[string]any),
	}
}

// Child creates a new layer on top of c.
func (c *Context) Child() *Context {
	return NewContext(c)
}

// Parent returns the layer below c, or nil for a root context.
func (c *Context) Parent() *Context {
	return c.parent
}

// Get looks key up in c and then in its ancestors.
func (c *Context) Get(key string) (any, bool) {
	for layer := c; layer != nil; layer = layer.parent {
		layer.mu.RLock()
		v, ok := layer.values[key]
		layer.mu.RUnlock()
		if ok {
			return v, true
		}
	}
	return nil, false
}

// Set binds key in c's own layer.
func (c *Context) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
}

// Property returns the string form of key, or "" when unset.
func (c *Context) Property(key string) string {
	v, ok := c.Get(key)
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Expand replaces ${name} references with property values.
// Unknown names expand to the empty string; a bare $ and an unterminated ${ are kept as written.
func (c *Context) Expand(s string) string {
	var b strings.Builder
	for {
		start := strings.Index(s, "${")
		if start < 0 {
			break
		}
		end := strings.IndexByte(s[start+2:], '}')
		if end < 0 {
			break
		}
		b.WriteString(s[:start])
		b.WriteString(c.Property(s[start+2 : start+2+end]))
		s = s[start+2+end+1:]
	}
	b.WriteString(s)
	return b.String()
}
