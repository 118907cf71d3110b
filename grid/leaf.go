package grid

import "github.com/janelia-flyem/voxmask/voxmask"

// leafNode is a dense cube of voxel state, one bit per voxel.
type leafNode struct {
	origin voxmask.Point3d
	lv     *level
	bits   bitmask
}

func newLeaf(lv *level, origin voxmask.Point3d, fill bool) *leafNode {
	return &leafNode{
		origin: origin,
		lv:     lv,
		bits:   newBitmask(lv.numSlots, fill),
	}
}

func (n *leafNode) set(p voxmask.Point3d, v bool, c *pathCache) {
	n.bits.setBit(n.lv.bitIndex(p), v)
}

func (n *leafNode) get(p voxmask.Point3d, c *pathCache) bool {
	return n.bits.bit(n.lv.bitIndex(p))
}

func (n *leafNode) allActive() bool {
	return n.bits.all()
}

func (n *leafNode) allInactive() bool {
	return n.bits.none()
}

func (n *leafNode) depth() int {
	return 0
}

func (n *leafNode) base() voxmask.Point3d {
	return n.origin
}
