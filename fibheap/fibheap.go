// SPDX-License-Identifier: MIT

// Package fibheap: the heap operations — Insert, DecreaseValue, ExtractMin
// with rank-bucket consolidation — over the arena declared in types.go.

package fibheap

// Reset returns every node to NotInHeap with value 0 and all links cleared,
// and empties the heap. Called once at the start of every single-source
// search so one arena serves any number of sequential searches.
// Complexity: O(n).
func (h *Heap) Reset() {
	var i int
	for i = range h.nodes {
		h.nodes[i] = node{parent: None, child: None, left: None, right: None}
	}
	h.min = None
}

// Insert enqueues vertex i with the given initial value as a new root.
// If the heap was empty, or val undercuts the current minimum, i becomes
// the new minimum. Panics if i is already InHeap or Scanned.
// Complexity: O(1).
func (h *Heap) Insert(i int, val float64) {
	n := &h.nodes[i]
	if n.state != NotInHeap {
		panic(panicInsertState)
	}
	n.val = val
	n.state = InHeap
	n.rank = 0
	n.parent, n.child = None, None

	// Empty heap: i is the whole root list.
	if h.min == None {
		n.left, n.right = None, None
		h.min = i

		return
	}

	// Splice i into the root list beside the minimum.
	h.spliceRoot(i)
	if val < h.nodes[h.min].val {
		h.min = i
	}
}

// DecreaseValue lowers vertex i's value to val. If i has a parent whose
// value is ≥ val, i is cut from that parent and rejoins the root list; a
// single cut suffices (see package doc). Panics if i is not InHeap or if
// val exceeds i's current value.
// Complexity: O(1).
func (h *Heap) DecreaseValue(i int, val float64) {
	n := &h.nodes[i]
	if n.state != InHeap {
		panic(panicDecreaseState)
	}
	if val > n.val {
		panic(panicDecreaseUp)
	}
	n.val = val

	// Heap-order violation against the parent: cut i loose as a root.
	if p := n.parent; p != None && h.nodes[p].val >= val {
		h.cutChild(i)
		h.spliceRoot(i)
	}

	// A root (old or fresh) may now undercut the minimum.
	if val < h.nodes[h.min].val {
		h.min = i
	}
}

// ExtractMin removes the minimum node, marks it Scanned, and returns its
// vertex index and final value. Children of the removed node are promoted
// to roots, then the root list is consolidated so at most one root of each
// rank remains. Panics if the heap is empty.
// Complexity: O(log n) amortized.
func (h *Heap) ExtractMin() (int, float64) {
	if h.min == None {
		panic(panicEmptyExtract)
	}
	mi := h.min
	m := &h.nodes[mi]

	// Detach the minimum from the root list, joining its neighbors.
	l, r := m.left, m.right
	if l != None {
		h.nodes[l].right = r
	}
	if r != None {
		h.nodes[r].left = l
	}

	// Head of the surviving sibling chain, rewound to the leftmost root.
	// The rewind is O(#roots), within consolidation's own budget.
	start := l
	if start == None {
		start = r
	}
	for start != None && h.nodes[start].left != None {
		start = h.nodes[start].left
	}

	// Promote the minimum's children: clear parent links and push each onto
	// the front of the root chain.
	var c, next int
	for c = m.child; c != None; c = next {
		next = h.nodes[c].right
		h.nodes[c].parent = None
		h.nodes[c].left = None
		h.nodes[c].right = start
		if start != None {
			h.nodes[start].left = c
		}
		start = c
	}

	// Finalize the extracted node before the forest is reshaped.
	m.state = Scanned
	m.parent, m.child = None, None
	m.left, m.right = None, None
	m.rank = 0

	// No siblings and no children: the heap is now empty.
	if start == None {
		h.min = None

		return mi, m.val
	}

	h.consolidate(start)

	return mi, m.val
}

// spliceRoot inserts node i into the root list as the right sibling of the
// current minimum. Precondition: h.min != None and i is detached.
func (h *Heap) spliceRoot(i int) {
	n := &h.nodes[i]
	r := h.nodes[h.min].right
	n.left, n.right = h.min, r
	h.nodes[h.min].right = i
	if r != None {
		h.nodes[r].left = i
	}
}

// cutChild unlinks node i from its parent's child list and decrements the
// parent's rank. i is left fully detached (parent and siblings cleared).
func (h *Heap) cutChild(i int) {
	n := &h.nodes[i]
	p := n.parent
	if n.left != None {
		h.nodes[n.left].right = n.right
	} else {
		// i headed the child list; the parent must point at the next child.
		h.nodes[p].child = n.right
	}
	if n.right != None {
		h.nodes[n.right].left = n.left
	}
	h.nodes[p].rank--
	n.parent = None
	n.left, n.right = None, None
}

// addChild makes c the first child of p, incrementing p's rank.
// Precondition: c is detached.
func (h *Heap) addChild(p, c int) {
	n := &h.nodes[c]
	n.parent = p
	head := h.nodes[p].child
	n.left, n.right = None, head
	if head != None {
		h.nodes[head].left = c
	}
	h.nodes[p].child = c
	h.nodes[p].rank++
}

// consolidate walks the root chain headed by start once, merging roots of
// equal rank through the bucket table until no collision remains, then
// rebuilds the root list from the buckets and re-derives the minimum.
// start doubles as the provisional minimum for the merge tie rule.
func (h *Heap) consolidate(start int) {
	prov := start // provisional minimum: an arbitrary surviving root

	// Bucket every root. Each chain node is detached before merging, so
	// merges only ever involve already-detached nodes and the saved next
	// pointer stays valid.
	var cur, next, x, y, rank int
	for cur = start; cur != None; cur = next {
		next = h.nodes[cur].right
		h.nodes[cur].left, h.nodes[cur].right = None, None

		x = cur
		for {
			rank = h.nodes[x].rank
			y = h.roots[rank]
			if y == None {
				h.roots[rank] = x

				break
			}
			h.roots[rank] = None
			x = h.link(x, y, prov)
		}
	}

	// Rebuild the root list in ascending rank order and track the minimum.
	h.min = None
	prev := None
	for rank = 0; rank < MaxRank; rank++ {
		x = h.roots[rank]
		if x == None {
			continue
		}
		h.roots[rank] = None
		h.nodes[x].left, h.nodes[x].right = prev, None
		if prev != None {
			h.nodes[prev].right = x
		}
		prev = x
		if h.min == None || h.nodes[x].val < h.nodes[h.min].val {
			h.min = x
		}
	}
}

// link merges two equal-rank roots and returns the survivor. The root with
// the larger value becomes a child of the other; on a tie the incoming
// node x becomes the parent unless the resident node y is the provisional
// minimum, which avoids re-linking the minimum under a peer.
func (h *Heap) link(x, y, prov int) int {
	parent, child := x, y
	if h.nodes[y].val < h.nodes[x].val ||
		(h.nodes[y].val == h.nodes[x].val && y == prov) {
		parent, child = y, x
	}
	h.addChild(parent, child)

	return parent
}
