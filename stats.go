// Copyright (c) 2024 The ibdd Authors
//
// MIT License

package ibdd

// Stats summarizes the size and health of an Engine's tables, the
// structured counterpart to the teacher library's PrintStat text report
// in stdio.go (spec.md §6.4).
type Stats struct {
	Varnum      int
	NodeSlots   int
	NodesInUse  int
	FreeNodes   int
	NodesEver   int
	CacheSlots  int
	CollectRuns int
	NodesFreed  int
}

// Stats reports the current size of an Engine's node arena.
func (e *Engine) Stats() Stats {
	e.enter()
	defer e.leave()
	return Stats{
		Varnum:      e.varnum,
		NodeSlots:   len(e.nodes),
		NodesInUse:  len(e.nodes) - e.freeNum,
		FreeNodes:   e.freeNum,
		NodesEver:   e.produced,
		CacheSlots:  len(e.computed.slots),
		CollectRuns: e.gcstat.Runs,
		NodesFreed:  e.gcstat.Freed,
	}
}

// CacheStats reports how many Computed Table slots currently hold a
// memoized entry, a rough occupancy measure the way the teacher
// library's cache.go exposes hit/lookup counters, adapted here to a
// direct-mapped table that does not track hits and misses per lookup.
func (e *Engine) CacheStats() (used, total int) {
	e.enter()
	defer e.leave()
	for i := range e.computed.slots {
		if e.computed.slots[i].used {
			used++
		}
	}
	return used, len(e.computed.slots)
}
