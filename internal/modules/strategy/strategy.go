package strategy

import (
	"slices"
	"strings"
	"sync"
)

// Strategy rearranges data in place and returns it.
type Strategy interface {
	Apply(data []string) []string
}

type SortStrategy struct{}

func (SortStrategy) Apply(data []string) []string {
	slices.Sort(data)
	return data
}

type ReverseStrategy struct{}

func (ReverseStrategy) Apply(data []string) []string {
	slices.Reverse(data)
	return data
}

type Context struct {
	mu       sync.RWMutex
	strategy Strategy
}

func NewContext(s Strategy) *Context {
	return &Context{strategy: s}
}

func (c *Context) SetStrategy(s Strategy) {
	c.mu.Lock()
	c.strategy = s
	c.mu.Unlock()
}

// DoSomeBusinessLogic runs the current strategy over data and returns the
// comma joined contents before and after.
func (c *Context) DoSomeBusinessLogic(data []string) (before, after string) {
	c.mu.RLock()
	s := c.strategy
	c.mu.RUnlock()
	before = strings.Join(data, ",")
	s.Apply(data)
	after = strings.Join(data, ",")
	return
}
