package grid

import (
	"fmt"
	"strings"

	"github.com/DmitriyVTitov/size"
	"github.com/dustin/go-humanize"
)

// Stats describes the materialised structure of a grid.  Per-level slices
// are ordered leaf-first, mirroring the internal level numbering.
type Stats struct {
	// RootEntries is the number of records in the root directory, including
	// records holding only a tile flag.
	RootEntries int

	// RootTiles is the number of root records that are uniformly active
	// tiles with no materialised subtree.
	RootTiles int

	// Nodes counts materialised nodes per level.
	Nodes []int

	// ActiveTiles counts uniformly active tile slots per branch level.
	ActiveTiles []int

	// ActiveVoxels is the number of set bits across materialised leaves.
	// Voxels covered by tiles are not included.
	ActiveVoxels uint64

	// HeapBytes is the in-memory footprint of the whole grid.
	HeapBytes uint64
}

// Stats walks the tree and reports its materialised structure along with
// the grid's heap footprint.
func (g *Grid) Stats() Stats {
	s := Stats{
		Nodes:       make([]int, len(g.levels)),
		ActiveTiles: make([]int, len(g.levels)),
	}
	for _, rec := range g.root {
		s.RootEntries++
		if rec.child == nil {
			if rec.active {
				s.RootTiles++
			}
			continue
		}
		s.tally(rec.child)
	}
	s.HeapBytes = uint64(size.Of(g))
	return s
}

func (s *Stats) tally(n node) {
	switch n := n.(type) {
	case *leafNode:
		s.Nodes[0]++
		s.ActiveVoxels += uint64(n.bits.countOn())
	case *branchNode:
		s.Nodes[n.k]++
		s.ActiveTiles[n.k] += n.active.countOnDiff(n.childBits)
		for i, child := range n.children {
			if n.childBits.bit(i) {
				s.tally(child)
			}
		}
	}
}

func (s Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "root entries: %s (%s active tiles)\n",
		humanize.Comma(int64(s.RootEntries)), humanize.Comma(int64(s.RootTiles)))
	for k := len(s.Nodes) - 1; k >= 0; k-- {
		if k == 0 {
			fmt.Fprintf(&b, "level 0: %s leaves\n", humanize.Comma(int64(s.Nodes[0])))
			continue
		}
		fmt.Fprintf(&b, "level %d: %s branches, %s active tiles\n", k,
			humanize.Comma(int64(s.Nodes[k])), humanize.Comma(int64(s.ActiveTiles[k])))
	}
	fmt.Fprintf(&b, "active voxels in leaves: %s\n", humanize.Comma(int64(s.ActiveVoxels)))
	fmt.Fprintf(&b, "memory: %s", humanize.Bytes(s.HeapBytes))
	return b.String()
}
