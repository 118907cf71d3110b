/*
	Package grid implements a sparse boolean volumetric grid over the signed
	64-bit integer lattice.  The grid is a tile-tree: interior nodes keep a
	uniform tile value per child slot and only materialise a child once a
	write diverges from that value.  Writes that return a subtree to a
	uniform state collapse it back to a tile, so memory tracks the surface
	between active and inactive regions rather than the active volume.

	A Grid is exclusive to its owner.  Operations may allocate and free
	subtrees and refresh the last-path cache even on reads, so callers
	needing concurrency must serialise externally.
*/
package grid

import "github.com/janelia-flyem/voxmask/voxmask"

// rootEntry is one record of the root directory.  A nil child with a false
// active flag is equivalent to a missing key.
type rootEntry struct {
	child  node
	active bool
}

// Grid is a sparse boolean volumetric grid with a fixed shape.
type Grid struct {
	shape  Shape
	levels []level
	root   map[voxmask.Point3d]*rootEntry
	cache  *pathCache
}

// New returns an empty grid of the given shape.  The shape is fixed for the
// life of the grid.
func New(shape Shape) (*Grid, error) {
	if err := shape.validate(); err != nil {
		return nil, err
	}
	levels := makeLevels(shape)
	g := &Grid{
		shape:  append(Shape(nil), shape...),
		levels: levels,
		root:   make(map[voxmask.Point3d]*rootEntry),
		cache:  newPathCache(levels),
	}
	voxmask.Debugf("Created %s grid\n", g.shape)
	return g, nil
}

// Shape returns a copy of the grid's shape.
func (g *Grid) Shape() Shape {
	return append(Shape(nil), g.shape...)
}

// top returns the level just below the root directory.
func (g *Grid) top() *level {
	return &g.levels[len(g.levels)-1]
}

// Set writes the voxel at p.
func (g *Grid) Set(p voxmask.Point3d, v bool) {
	if n, ok := g.cache.lookup(p); ok {
		n.set(p, v, g.cache)
		if !n.allActive() && !n.allInactive() {
			return
		}
		// The shortcut subtree went uniform; redo from the root so every
		// ancestor runs its collapse check.  The rewrite itself is a no-op.
		g.cache.invalidate(n.depth())
	}
	g.setFromRoot(p, v)
}

// Reset writes the voxel at p to false.
func (g *Grid) Reset(p voxmask.Point3d) {
	g.Set(p, false)
}

// Get reads the voxel at p.  Voxels never written read as false.
func (g *Grid) Get(p voxmask.Point3d) bool {
	if n, ok := g.cache.lookup(p); ok {
		return n.get(p, g.cache)
	}
	rec, found := g.root[g.top().cubeBase(p)]
	if !found {
		return false
	}
	if rec.child != nil {
		g.cache.note(rec.child)
		return rec.child.get(p, g.cache)
	}
	return rec.active
}

// Clear drops every node, empties the root directory, and resets the cache.
func (g *Grid) Clear() {
	g.root = make(map[voxmask.Point3d]*rootEntry)
	g.cache.reset()
}

func (g *Grid) setFromRoot(p voxmask.Point3d, v bool) {
	key := g.top().cubeBase(p)
	rec, found := g.root[key]
	if !found {
		rec = &rootEntry{}
		g.root[key] = rec
	}

	if rec.child == nil {
		if v == rec.active {
			return
		}
		rec.child = g.newTopChild(key, rec.active)
		g.cache.note(rec.child)
		rec.child.set(p, v, g.cache)
		return
	}

	g.cache.note(rec.child)
	rec.child.set(p, v, g.cache)
	switch {
	case rec.child.allActive():
		rec.active = true
	case rec.child.allInactive():
		rec.active = false
	default:
		return
	}
	rec.child = nil
	g.cache.invalidate(len(g.levels) - 1)
}

// newTopChild materialises a top-level subtree filled with the given
// uniform value.
func (g *Grid) newTopChild(base voxmask.Point3d, fill bool) node {
	k := len(g.levels) - 1
	if k == 0 {
		return newLeaf(&g.levels[0], base, fill)
	}
	return newBranch(g.levels, k, base, fill)
}
