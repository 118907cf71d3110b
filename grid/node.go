package grid

import "github.com/janelia-flyem/voxmask/voxmask"

// node is a materialised subtree: a branch for interior levels, a leaf at
// level 0.  A materialised node is never uniform after a completed write;
// uniform regions live as tile flags in the parent.
type node interface {
	// set writes one voxel, recording traversed nodes in the path cache.
	set(p voxmask.Point3d, v bool, c *pathCache)

	// get reads one voxel, recording traversed nodes in the path cache.
	get(p voxmask.Point3d, c *pathCache) bool

	// allActive returns true iff every voxel covered by this subtree is on.
	allActive() bool

	// allInactive returns true iff every voxel covered by this subtree is off.
	allInactive() bool

	// depth returns the node's level, 0 for a leaf.
	depth() int

	// base returns the node's cube origin.
	base() voxmask.Point3d
}
