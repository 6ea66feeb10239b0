// File: alloc/stats.go
// Author: momentics <momentics@gmail.com>

package alloc

import (
	"sync/atomic"

	"github.com/momentics/hioload-alloc/api"
)

// counters tracks allocation accounting for a strategy instance.
type counters struct {
	totalAlloc atomic.Int64
	totalFree  atomic.Int64
}

func (c *counters) alloc()   { c.totalAlloc.Add(1) }
func (c *counters) release() { c.totalFree.Add(1) }

func (c *counters) snapshot() api.Stats {
	alloc := c.totalAlloc.Load()
	free := c.totalFree.Load()
	return api.Stats{
		TotalAlloc: alloc,
		TotalFree:  free,
		InUse:      alloc - free,
	}
}
