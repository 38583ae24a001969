package lap

// colHeap is an indexed 4-ary min-heap of column indices, keyed by a
// shared distance-label slice. The position array doubles as the stable
// per-column handle required for decrease-key: pos[j] is the heap slot
// currently holding column j, or -1 when j is not in the heap.
//
// Keys may only decrease while a column sits in the heap (decreaseKey
// sifts up exclusively), which is exactly the discipline of a shortest
// path label-correcting search.
type colHeap struct {
	dist  []int64 // shared with augmentState; dist[j] is the key of column j
	slots []int   // heap slots, each holding a column index
	pos   []int   // column → slot handle; -1 when absent
}

// heapArity is the branching factor. Four children per node keeps the
// tree shallow and sift-down comparisons cache-friendly.
const heapArity = 4

// newColHeap returns an empty heap over dim columns sharing the given
// label slice.
func newColHeap(dim int, dist []int64) *colHeap {
	h := &colHeap{dist: dist, slots: make([]int, 0, dim), pos: make([]int, dim)}
	for j := range h.pos {
		h.pos[j] = -1
	}

	return h
}

// clear empties the heap and invalidates every handle.
func (h *colHeap) clear() {
	for _, j := range h.slots {
		h.pos[j] = -1
	}
	h.slots = h.slots[:0]
}

// empty reports whether the heap holds no columns.
func (h *colHeap) empty() bool { return len(h.slots) == 0 }

// min returns the column with the smallest label. The heap must be
// non-empty.
func (h *colHeap) min() int { return h.slots[0] }

// push inserts column j. j must not already be in the heap.
func (h *colHeap) push(j int) {
	h.slots = append(h.slots, j)
	h.pos[j] = len(h.slots) - 1
	h.siftUp(len(h.slots) - 1)
}

// pop removes and returns the column with the smallest label. The heap
// must be non-empty.
func (h *colHeap) pop() int {
	top := h.slots[0]
	h.pos[top] = -1
	last := len(h.slots) - 1
	if last > 0 {
		h.slots[0] = h.slots[last]
		h.pos[h.slots[0]] = 0
	}
	h.slots = h.slots[:last]
	if last > 0 {
		h.siftDown(0)
	}

	return top
}

// decreaseKey restores heap order after dist[j] was lowered. j must be
// in the heap.
func (h *colHeap) decreaseKey(j int) {
	h.siftUp(h.pos[j])
}

func (h *colHeap) siftUp(slot int) {
	j := h.slots[slot]
	key := h.dist[j]
	for slot > 0 {
		parent := (slot - 1) / heapArity
		p := h.slots[parent]
		if h.dist[p] <= key {
			break
		}
		h.slots[slot] = p
		h.pos[p] = slot
		slot = parent
	}
	h.slots[slot] = j
	h.pos[j] = slot
}

func (h *colHeap) siftDown(slot int) {
	j := h.slots[slot]
	key := h.dist[j]
	n := len(h.slots)
	for {
		first := heapArity*slot + 1
		if first >= n {
			break
		}
		best := first
		last := first + heapArity
		if last > n {
			last = n
		}
		for c := first + 1; c < last; c++ {
			if h.dist[h.slots[c]] < h.dist[h.slots[best]] {
				best = c
			}
		}
		if h.dist[h.slots[best]] >= key {
			break
		}
		h.slots[slot] = h.slots[best]
		h.pos[h.slots[slot]] = slot
		slot = best
	}
	h.slots[slot] = j
	h.pos[j] = slot
}
