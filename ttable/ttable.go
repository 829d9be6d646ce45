// Package ttable is a fixed-size hash table of node counts keyed by 64-bit
// position keys, organised in small clusters.
package ttable

import "unsafe"

const clusterSize = 4

// Entry is one cached result.
type Entry struct {
	Key   uint64
	Depth int8
	Nodes uint64
}

// Stats counts table traffic since the last Clear.
type Stats struct {
	Probes uint64
	Hits   uint64
	Stores uint64
}

// Table is a clustered cache. A zero Table stores nothing and never hits.
type Table struct {
	entries      []Entry
	clusterCount uint64
	stats        Stats
}

// New allocates a table of roughly sizeMB megabytes.
func New(sizeMB int) *Table {
	t := &Table{}
	entrySize := uint64(unsafe.Sizeof(Entry{}))
	clusterBytes := entrySize * clusterSize
	clusterCount := uint64(sizeMB) * 1024 * 1024 / clusterBytes
	if clusterCount == 0 {
		clusterCount = 1
	}
	t.clusterCount = clusterCount
	t.entries = make([]Entry, clusterCount*clusterSize)
	return t
}

// Len returns the number of slots.
func (t *Table) Len() int { return len(t.entries) }

// Stats returns the traffic counters.
func (t *Table) Stats() Stats { return t.stats }

// Clear empties every slot and resets the counters.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
	t.stats = Stats{}
}

// Probe looks up the node count stored for key at exactly depth.
func (t *Table) Probe(key uint64, depth int8) (uint64, bool) {
	if t.clusterCount == 0 {
		return 0, false
	}
	t.stats.Probes++
	base := int(key%t.clusterCount) * clusterSize
	for i := 0; i < clusterSize; i++ {
		e := &t.entries[base+i]
		if e.Key == key && e.Depth == depth {
			t.stats.Hits++
			return e.Nodes, true
		}
	}
	return 0, false
}

// Store records a node count. It updates a matching entry if present, then
// fills an empty slot, and otherwise replaces the shallowest entry of the
// cluster.
func (t *Table) Store(key uint64, depth int8, nodes uint64) {
	if t.clusterCount == 0 {
		return
	}
	t.stats.Stores++
	base := int(key%t.clusterCount) * clusterSize
	target := -1

	for i := 0; i < clusterSize; i++ {
		if e := &t.entries[base+i]; e.Key == key && e.Depth == depth {
			target = base + i
			break
		}
	}

	if target == -1 {
		for i := 0; i < clusterSize; i++ {
			if t.entries[base+i].Key == 0 {
				target = base + i
				break
			}
		}
	}

	if target == -1 {
		target = base
		minDepth := t.entries[base].Depth
		for i := 1; i < clusterSize; i++ {
			if t.entries[base+i].Depth < minDepth {
				minDepth = t.entries[base+i].Depth
				target = base + i
			}
		}
	}

	t.entries[target] = Entry{Key: key, Depth: depth, Nodes: nodes}
}
