package engine

const DefaultHashTableSize = 1 << 20 // number of entries

// Entry is the result of a fully scanned node.
type Entry struct {
	Max, Min BranchValue
	Depth    int // depth budget of the search that stored the entry
	Ply      int
}

// covers reports whether the entry can answer a node searched with the given depth
// budget at the given ply: it must have been searched at least as deep, from at least
// as far down the tree, with at least as many plies left.
func (e Entry) covers(depth, ply int) bool {
	return e.Depth >= depth && e.Ply >= ply && e.Depth-e.Ply >= depth-ply
}

// TranspositionTable memoizes node results by position hash. A nil table disables
// caching. Once size entries are stored, further writes are dropped.
type TranspositionTable struct {
	table map[uint64]Entry
	size  int

	// stats
	hits   int
	misses int
	writes int
}

func NewTranspositionTable(size int) *TranspositionTable {
	if size <= 0 {
		size = DefaultHashTableSize
	}
	return &TranspositionTable{
		table: make(map[uint64]Entry),
		size:  size,
	}
}

func (t *TranspositionTable) Set(hash uint64, e Entry) {
	if t == nil {
		return
	}
	if _, ok := t.table[hash]; !ok && len(t.table) >= t.size {
		return
	}
	t.writes++
	t.table[hash] = e
}

func (t *TranspositionTable) Get(hash uint64) (Entry, bool) {
	if t == nil {
		return Entry{}, false
	}
	e, ok := t.table[hash]
	if !ok {
		t.misses++
		return Entry{}, false
	}
	t.hits++
	return e, true
}

func (t *TranspositionTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.table)
}

// Clear drops every entry. Stored values are relative to the root they were searched
// from, so a table must not outlive its root.
func (t *TranspositionTable) Clear() {
	if t == nil {
		return
	}
	t.table = make(map[uint64]Entry)
	t.ResetStats()
}

func (t *TranspositionTable) ResetStats() {
	t.hits = 0
	t.misses = 0
	t.writes = 0
}

func (t *TranspositionTable) Stats() (int, int, int) {
	if t == nil {
		return 0, 0, 0
	}
	return t.hits, t.misses, t.writes
}
