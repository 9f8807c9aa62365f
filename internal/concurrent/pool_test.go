package concurrent

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPool(t *testing.T) {

	n := 100

	counter := NewCounter()
	tasks := make([]func(), n)
	for i := 0; i < n; i++ {
		tasks[i] = func() {
			counter.Track(nil)
		}
	}

	Pool(4, tasks...)

	assert.Equal(t, n, counter.Get())

}

func TestPool_Bounded(t *testing.T) {

	mutex := new(sync.Mutex)
	active := 0
	max := 0

	tasks := make([]func(), 50)
	for i := range tasks {
		tasks[i] = func() {
			mutex.Lock()
			active++
			if active > max {
				max = active
			}
			mutex.Unlock()

			mutex.Lock()
			active--
			mutex.Unlock()
		}
	}

	Pool(3, tasks...)

	assert.True(t, max <= 3, "observed %d concurrent tasks", max)

}
