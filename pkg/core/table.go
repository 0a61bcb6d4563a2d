package core

// node is the registry's view of one live component: its identity, its
// parent link for dirty-climb lookups, and a type-erased rebuild closure.
// Real ownership lives in the Handle; the table never owns a node.
type node struct {
	id       ComponentID
	parentID ComponentID // 0 = root
	rebuild  func()
	dead     bool
}

// table maps component ids to non-owning node entries and tracks the
// dirty set. It is not safe for concurrent use; the engine's
// single-threaded contract covers it.
type table struct {
	nextID ComponentID
	nodes  map[ComponentID]*node
	dirty  map[ComponentID]struct{}
}

func newTable() *table {
	return &table{
		nextID: 1,
		nodes:  make(map[ComponentID]*node),
		dirty:  make(map[ComponentID]struct{}),
	}
}

// reserveID allocates the next unique id. Never fails, never reuses.
func (t *table) reserveID() ComponentID {
	id := t.nextID
	t.nextID++
	return id
}

// insert records the entry for a freshly built node. Ids are never reused,
// so this is always a fresh insert.
func (t *table) insert(id ComponentID, n *node) {
	t.nodes[id] = n
}

// markDirty adds id to the dirty set. Idempotent.
func (t *table) markDirty(id ComponentID) {
	t.dirty[id] = struct{}{}
}

// isClean reports whether the dirty set is empty. Used to detect the
// clean-to-dirty edge that fires first-change listeners.
func (t *table) isClean() bool {
	return len(t.dirty) == 0
}

// destroy removes id from both the live map and the dirty set. Safe to
// call on an id that is not present: a component may be destroyed while
// already dirty, or destroyed twice defensively.
func (t *table) destroy(id ComponentID) {
	delete(t.nodes, id)
	delete(t.dirty, id)
}

// lookup returns the live node for id, or nil if the id is unknown or the
// node has been destroyed. This is the weak-reference upgrade: every
// caller must tolerate a nil result and skip silently.
func (t *table) lookup(id ComponentID) *node {
	n := t.nodes[id]
	if n == nil || n.dead {
		return nil
	}
	return n
}
