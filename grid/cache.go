package grid

import "github.com/janelia-flyem/voxmask/voxmask"

// cacheEntry remembers the most recently traversed node at one level
// together with its cube base.
type cacheEntry struct {
	base voxmask.Point3d
	n    node
}

// pathCache is the last-path shortcut: one entry per tree level, leaf first.
// Consecutive operations that land in the same cube dispatch straight to the
// deepest cached node instead of descending from the root.  Entries only
// ever reference attached nodes: a collapse invalidates every slot at or
// below the dropped child.
type pathCache struct {
	levels []level
	slots  []cacheEntry
}

func newPathCache(levels []level) *pathCache {
	return &pathCache{
		levels: levels,
		slots:  make([]cacheEntry, len(levels)),
	}
}

// note records a node just traversed.
func (c *pathCache) note(n node) {
	c.slots[n.depth()] = cacheEntry{base: n.base(), n: n}
}

// lookup scans from the deepest level upward and returns the first cached
// node whose cube contains p.
func (c *pathCache) lookup(p voxmask.Point3d) (node, bool) {
	for k := range c.slots {
		e := &c.slots[k]
		if e.n != nil && e.base == c.levels[k].cubeBase(p) {
			return e.n, true
		}
	}
	return nil, false
}

// invalidate clears every slot at or below the given level.
func (c *pathCache) invalidate(level int) {
	for k := 0; k <= level; k++ {
		c.slots[k] = cacheEntry{}
	}
}

// reset clears every slot.
func (c *pathCache) reset() {
	c.invalidate(len(c.slots) - 1)
}
