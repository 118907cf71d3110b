package grid

import "github.com/janelia-flyem/voxmask/voxmask"

// branchNode is an interior node.  Each of its slots is either a uniform
// tile, whose value lives in the active mask, or a materialised child,
// flagged in the child mask.  A slot's active bit is meaningful only while
// no child is materialised there.
type branchNode struct {
	origin    voxmask.Point3d
	levels    []level
	k         int
	active    bitmask
	childBits bitmask
	children  []node
}

func newBranch(levels []level, k int, origin voxmask.Point3d, fill bool) *branchNode {
	lv := &levels[k]
	return &branchNode{
		origin:    origin,
		levels:    levels,
		k:         k,
		active:    newBitmask(lv.numSlots, fill),
		childBits: newBitmask(lv.numSlots, false),
		children:  make([]node, lv.numSlots),
	}
}

// newChild materialises the child cube containing p, filled with the given
// uniform value.
func (n *branchNode) newChild(p voxmask.Point3d, fill bool) node {
	ck := n.k - 1
	clv := &n.levels[ck]
	if ck == 0 {
		return newLeaf(clv, clv.cubeBase(p), fill)
	}
	return newBranch(n.levels, ck, clv.cubeBase(p), fill)
}

func (n *branchNode) set(p voxmask.Point3d, v bool, c *pathCache) {
	i := n.levels[n.k].bitIndex(p)
	if !n.childBits.bit(i) {
		if v == n.active.bit(i) {
			return
		}
		child := n.newChild(p, n.active.bit(i))
		n.children[i] = child
		n.childBits.setBit(i, true)
		c.note(child)
		child.set(p, v, c)
		return
	}

	child := n.children[i]
	c.note(child)
	child.set(p, v, c)

	// Collapse the slot back to a tile once the child is uniform.
	switch {
	case child.allActive():
		n.active.setBit(i, true)
	case child.allInactive():
		n.active.setBit(i, false)
	default:
		return
	}
	n.childBits.setBit(i, false)
	n.children[i] = nil
	c.invalidate(n.k - 1)
}

func (n *branchNode) get(p voxmask.Point3d, c *pathCache) bool {
	i := n.levels[n.k].bitIndex(p)
	if n.childBits.bit(i) {
		child := n.children[i]
		c.note(child)
		return child.get(p, c)
	}
	return n.active.bit(i)
}

// allActive is true only when every slot is an active tile: a materialised
// child is never uniform, so its presence alone disproves uniformity.
func (n *branchNode) allActive() bool {
	return n.active.all() && n.childBits.none()
}

func (n *branchNode) allInactive() bool {
	return n.active.none() && n.childBits.none()
}

func (n *branchNode) depth() int {
	return n.k
}

func (n *branchNode) base() voxmask.Point3d {
	return n.origin
}
