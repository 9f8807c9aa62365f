package concurrent

import (
	"sync"
)

// Counter tracks events across goroutines.
type Counter struct {
	lock  sync.Mutex
	count int
	vv    []interface{}
}

// NewCounter creates a new counter.
func NewCounter() *Counter {
	return &Counter{
		vv: make([]interface{}, 0),
	}
}

// Track increments the counter by one and potentially adds the object to it's memory.
func (c *Counter) Track(v interface{}) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.count++
	if v != nil {
		c.vv = append(c.vv, v)
	}
}

// Get returns the current count.
func (c *Counter) Get() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.count
}

// Values returns the tracked values.
func (c *Counter) Values() []interface{} {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.vv
}
