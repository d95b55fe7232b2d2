package courses

// Index maps course IDs to the Tree nodes holding them. It never owns a
// record: entries are Refs into the Tree the index was built from, so an
// Index must be Reset together with its Tree.
type Index struct {
	refs map[string]Ref
}

// NewIndex creates an empty index with room for capacity entries.
func NewIndex(capacity int) *Index {
	return &Index{refs: make(map[string]Ref, max(capacity, 0))}
}

// Set points id at ref, replacing any previous entry.
func (x *Index) Set(id string, ref Ref) {
	x.refs[id] = ref
}

// Lookup returns the Ref recorded for id.
func (x *Index) Lookup(id string) (Ref, bool) {
	ref, ok := x.refs[id]
	return ref, ok
}

// Has reports whether id is indexed.
func (x *Index) Has(id string) bool {
	_, ok := x.refs[id]
	return ok
}

// Len returns the number of entries.
func (x *Index) Len() int {
	return len(x.refs)
}

// Reset drops every entry.
func (x *Index) Reset() {
	clear(x.refs)
}
