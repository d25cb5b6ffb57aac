package util

import "github.com/pkg/errors"

type dsNode struct {
	parent *dsNode
	rank   int
	index  int
}

// DisjointSets is a union-find forest over dense integer element IDs,
// with union by rank and full path compression. It is single-threaded:
// even FindSet mutates parent pointers.
type DisjointSets struct {
	nodes    []*dsNode
	setCount int
}

// NewDisjointSets creates n singleton sets with IDs [0, n).
func NewDisjointSets(n int) *DisjointSets {
	ds := &DisjointSets{}
	if err := ds.AddElements(n); err != nil {
		panic(err)
	}
	return ds
}

// AddElements appends k new singleton sets. The new IDs are contiguous,
// starting at the previous element count.
func (ds *DisjointSets) AddElements(k int) error {
	if k < 0 {
		return errors.Wrapf(ErrOutOfRange, "cannot add %d elements", k)
	}
	for i := 0; i < k; i++ {
		n := &dsNode{index: len(ds.nodes)}
		n.parent = nil
		ds.nodes = append(ds.nodes, n)
	}
	ds.setCount += k
	return nil
}

// ElementCount returns the number of elements.
func (ds *DisjointSets) ElementCount() int {
	return len(ds.nodes)
}

// SetCount returns the number of disjoint sets.
func (ds *DisjointSets) SetCount() int {
	return ds.setCount
}

// FindSet returns the root representative of the set containing id.
// The forest is compressed along the walked path, so the structure
// mutates even though the operation is logically read-only.
func (ds *DisjointSets) FindSet(id int) (int, error) {
	if id < 0 || id >= len(ds.nodes) {
		return 0, errors.Wrapf(ErrOutOfRange, "element %d of %d", id,
			len(ds.nodes))
	}
	return ds.findRoot(ds.nodes[id]).index, nil
}

func (ds *DisjointSets) findRoot(n *dsNode) *dsNode {
	root := n
	for root.parent != nil {
		root = root.parent
	}
	for n != root {
		next := n.parent
		n.parent = root
		n = next
	}
	return root
}

// Union merges the sets rooted at a and b. If a and b name the same
// node, nothing happens.
//
// Union takes set identifiers, but it only bounds-checks against the
// element count and operates on the nodes stored at indices a and b
// without re-rooting them. Correctness therefore depends on the caller
// passing results of prior FindSet calls; handing it arbitrary element
// IDs silently corrupts the forest.
func (ds *DisjointSets) Union(a, b int) error {
	if a < 0 || a >= len(ds.nodes) {
		return errors.Wrapf(ErrOutOfRange, "element %d of %d", a,
			len(ds.nodes))
	}
	if b < 0 || b >= len(ds.nodes) {
		return errors.Wrapf(ErrOutOfRange, "element %d of %d", b,
			len(ds.nodes))
	}

	x, y := ds.nodes[a], ds.nodes[b]
	if x == y {
		return nil
	}

	if x.rank > y.rank {
		y.parent = x
	} else {
		x.parent = y
		if x.rank == y.rank {
			y.rank++
		}
	}
	ds.setCount--

	return nil
}
