package tree

// pool owns the tree's node storage. Its backing array (records) is kept
// dense — no holes, no free-list threaded through unused slots — so that
// shrinking by copying the live prefix into a smaller array, as
// ReactPhysics3D's DynamicAABBTree::releaseNode does, is correct by
// construction rather than by convention. See DESIGN.md's "Open Question
// resolution" for why a B2DynamicTree-style "handle == physical slot"
// scheme can't make that guarantee while also honoring a stable external
// handle.
//
// NodeID values are handles, minted from a monotonically increasing
// counter with LIFO reuse, and are independent of where a node's record
// currently sits in records. slotOf/recordHandle is the indirection
// between the two.
type pool struct {
	records      []node
	slotOf       map[NodeID]int32
	recordHandle []NodeID

	freeHandles []NodeID
	nextHandle  NodeID

	numAllocated int
}

func newPool() *pool {
	p := &pool{
		records:      make([]node, 0, initialCapacity),
		slotOf:       make(map[NodeID]int32, initialCapacity),
		recordHandle: make([]NodeID, 0, initialCapacity),
		numAllocated: initialCapacity,
	}
	return p
}

func (p *pool) numUsed() int {
	return len(p.records)
}

// get returns a pointer into the dense backing array for id. The pointer
// is invalidated by the next allocate/release call — callers must not
// retain it across one.
func (p *pool) get(id NodeID) *node {
	slot, ok := p.slotOf[id]
	debugAssert(ok, "get: unknown handle %d", id)
	return &p.records[slot]
}

func (p *pool) height(id NodeID) int {
	if id == NilNode {
		return -1
	}
	slot, ok := p.slotOf[id]
	if !ok {
		return -1
	}
	return p.records[slot].height
}

// allocate mints a handle and appends a fresh record for it (nil
// parent/children, height -1 until the caller sets it), growing the
// backing array by doubling when it's full. Ported from
// B2DynamicTree.AllocateNode / ReactPhysics3D's DynamicAABBTree::allocateNode.
func (p *pool) allocate() NodeID {
	var id NodeID
	if n := len(p.freeHandles); n > 0 {
		id = p.freeHandles[n-1]
		p.freeHandles = p.freeHandles[:n-1]
	} else {
		id = p.nextHandle
		p.nextHandle++
	}

	if len(p.records) == cap(p.records) {
		p.grow()
	}

	slot := int32(len(p.records))
	p.records = append(p.records, node{parent: NilNode, left: NilNode, right: NilNode, height: -1})
	p.recordHandle = append(p.recordHandle, id)
	p.slotOf[id] = slot
	return id
}

func (p *pool) grow() {
	newCap := cap(p.records) * 2
	if newCap == 0 {
		newCap = initialCapacity
	}
	grown := make([]node, len(p.records), newCap)
	copy(grown, p.records)
	p.records = grown
	p.numAllocated = newCap
}

// release frees id's handle for reuse and removes its record from the
// dense array via swap-with-last, then shrinks the backing array when
// occupancy drops below a quarter of capacity (and above the shrink
// floor), per ReactPhysics3D's DynamicAABBTree::releaseNode.
func (p *pool) release(id NodeID) {
	slot, ok := p.slotOf[id]
	debugAssert(ok, "release: unknown handle %d", id)

	last := len(p.records) - 1
	if int(slot) != last {
		p.records[slot] = p.records[last]
		movedHandle := p.recordHandle[last]
		p.recordHandle[slot] = movedHandle
		p.slotOf[movedHandle] = slot
	}
	p.records = p.records[:last]
	p.recordHandle = p.recordHandle[:last]
	delete(p.slotOf, id)

	p.freeHandles = append(p.freeHandles, id)

	if p.numUsed() > shrinkFloor && p.numUsed() < p.numAllocated/shrinkFraction {
		p.shrink()
	}
}

func (p *pool) shrink() {
	newCap := p.numAllocated / 2
	if newCap < shrinkFloor {
		newCap = shrinkFloor
	}
	if newCap >= p.numAllocated {
		return
	}
	shrunk := make([]node, len(p.records), newCap)
	copy(shrunk, p.records)
	p.records = shrunk
	p.numAllocated = newCap
}
