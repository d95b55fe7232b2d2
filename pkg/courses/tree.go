package courses

import "iter"

// Ref is a handle to a node in a Tree's arena. A Ref is only meaningful
// for the Tree that issued it and only until that Tree is Reset.
type Ref int32

// noRef marks an empty child slot.
const noRef Ref = -1

type node struct {
	course      Course
	left, right Ref
}

// Tree is an unbalanced binary search tree of courses keyed by ID.
//
// All nodes live in a single arena slice owned by the tree; children are
// addressed by Ref. Nodes are never moved or removed individually, so a
// Ref stays valid until Reset. Duplicate keys are never stored: the first
// record inserted for an ID wins.
//
// No rebalancing is performed. Sorted input degrades the tree to a list
// (Height == Len); all operations are iterative so that case costs time,
// not stack.
type Tree struct {
	nodes []node
	root  Ref
}

// NewTree creates an empty tree with room for capacity nodes.
func NewTree(capacity int) *Tree {
	if capacity < 0 {
		capacity = 0
	}
	return &Tree{
		nodes: make([]node, 0, capacity),
		root:  noRef,
	}
}

// Insert stores c unless a node with the same ID already exists.
// It returns the Ref of the node holding c.ID and whether a new node was
// created. An existing node is left untouched.
func (t *Tree) Insert(c Course) (Ref, bool) {
	if t.root == noRef {
		t.root = t.alloc(c)
		return t.root, true
	}

	cur := t.root
	for {
		n := &t.nodes[cur]
		switch {
		case c.ID < n.course.ID:
			if n.left == noRef {
				ref := t.alloc(c)
				t.nodes[cur].left = ref
				return ref, true
			}
			cur = n.left
		case c.ID > n.course.ID:
			if n.right == noRef {
				ref := t.alloc(c)
				t.nodes[cur].right = ref
				return ref, true
			}
			cur = n.right
		default:
			return cur, false
		}
	}
}

// alloc appends a new leaf to the arena. The pointer n in Insert must not
// be used after alloc since append may move the arena.
func (t *Tree) alloc(c Course) Ref {
	t.nodes = append(t.nodes, node{course: c.Clone(), left: noRef, right: noRef})
	return Ref(len(t.nodes) - 1)
}

// Search returns the Ref of the node keyed by id.
func (t *Tree) Search(id string) (Ref, bool) {
	cur := t.root
	for cur != noRef {
		n := &t.nodes[cur]
		switch {
		case id < n.course.ID:
			cur = n.left
		case id > n.course.ID:
			cur = n.right
		default:
			return cur, true
		}
	}
	return noRef, false
}

// Get returns a copy of the course keyed by id.
func (t *Tree) Get(id string) (Course, bool) {
	ref, ok := t.Search(id)
	if !ok {
		return Course{}, false
	}
	return t.At(ref), true
}

// At returns a copy of the course stored at ref.
// It panics if ref was not issued by this tree.
func (t *Tree) At(ref Ref) Course {
	return t.nodes[ref].course.Clone()
}

// valid reports whether ref addresses a node of this tree.
func (t *Tree) valid(ref Ref) bool {
	return ref >= 0 && int(ref) < len(t.nodes)
}

// id returns the key stored at ref without copying the record.
func (t *Tree) id(ref Ref) string {
	return t.nodes[ref].course.ID
}

// All returns the courses in ascending ID order. The sequence walks the
// tree lazily with an explicit stack; the tree must not be modified while
// it is being consumed.
func (t *Tree) All() iter.Seq[Course] {
	return func(yield func(Course) bool) {
		var stack []Ref
		cur := t.root
		for cur != noRef || len(stack) > 0 {
			for cur != noRef {
				stack = append(stack, cur)
				cur = t.nodes[cur].left
			}
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(t.nodes[cur].course.Clone()) {
				return
			}
			cur = t.nodes[cur].right
		}
	}
}

// Len returns the number of stored courses.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// IsEmpty reports whether the tree holds no courses.
func (t *Tree) IsEmpty() bool {
	return t.root == noRef
}

// Height returns the number of nodes on the longest root-to-leaf path.
// An empty tree has height 0.
func (t *Tree) Height() int {
	if t.root == noRef {
		return 0
	}

	type frame struct {
		ref   Ref
		depth int
	}
	height := 0
	stack := []frame{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		height = max(height, f.depth)
		n := &t.nodes[f.ref]
		if n.left != noRef {
			stack = append(stack, frame{n.left, f.depth + 1})
		}
		if n.right != noRef {
			stack = append(stack, frame{n.right, f.depth + 1})
		}
	}
	return height
}

// Reset releases every node at once. All previously issued Refs become
// invalid.
func (t *Tree) Reset() {
	clear(t.nodes)
	t.nodes = t.nodes[:0]
	t.root = noRef
}
