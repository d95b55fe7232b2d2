package courses

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(seq iter.Seq[Course]) []string {
	var out []string
	for c := range seq {
		out = append(out, c.ID)
	}
	return out
}

func TestTreeEmpty(t *testing.T) {
	tree := NewTree(0)

	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 0, tree.Height())
	assert.Empty(t, ids(tree.All()))

	_, ok := tree.Search("CS101")
	assert.False(t, ok)
	_, ok = tree.Get("CS101")
	assert.False(t, ok)
}

func TestTreeInsertAndSearch(t *testing.T) {
	tree := NewTree(4)

	ref, inserted := tree.Insert(Course{ID: "CS200", Title: "Data Structures", Prerequisites: []string{"CS101"}})
	require.True(t, inserted)
	assert.Equal(t, Ref(0), ref)

	_, inserted = tree.Insert(Course{ID: "CS101", Title: "Intro to CS"})
	require.True(t, inserted)
	_, inserted = tree.Insert(Course{ID: "MATH201", Title: "Discrete Math"})
	require.True(t, inserted)

	found, ok := tree.Search("CS101")
	require.True(t, ok)
	assert.Equal(t, "Intro to CS", tree.At(found).Title)

	course, ok := tree.Get("CS200")
	require.True(t, ok)
	assert.Equal(t, []string{"CS101"}, course.Prerequisites)

	assert.False(t, tree.IsEmpty())
	assert.Equal(t, 3, tree.Len())
	assert.Equal(t, 2, tree.Height())
	assert.Equal(t, []string{"CS101", "CS200", "MATH201"}, ids(tree.All()))
}

func TestTreeDuplicateFirstWriteWins(t *testing.T) {
	tree := NewTree(0)

	first, inserted := tree.Insert(Course{ID: "CS101", Title: "Original", Prerequisites: []string{"MATH100"}})
	require.True(t, inserted)

	second, inserted := tree.Insert(Course{ID: "CS101", Title: "Replacement"})
	assert.False(t, inserted)
	assert.Equal(t, first, second, "duplicate insert must return the existing node")

	course, ok := tree.Get("CS101")
	require.True(t, ok)
	assert.Equal(t, "Original", course.Title)
	assert.Equal(t, []string{"MATH100"}, course.Prerequisites)
	assert.Equal(t, 1, tree.Len())
}

func TestTreeReturnsCopies(t *testing.T) {
	tree := NewTree(0)
	prereqs := []string{"CS101"}
	tree.Insert(Course{ID: "CS200", Title: "Data Structures", Prerequisites: prereqs})

	// Mutating the caller's slice after insert must not reach the tree.
	prereqs[0] = "HACKED"

	course, _ := tree.Get("CS200")
	assert.Equal(t, []string{"CS101"}, course.Prerequisites)

	// Mutating a returned copy must not reach the tree either.
	course.Prerequisites[0] = "HACKED"
	again, _ := tree.Get("CS200")
	assert.Equal(t, []string{"CS101"}, again.Prerequisites)
}

func TestTreeInOrderIsPermutationInvariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for _, n := range []int{0, 1, 2, 3, 10, 64, 257} {
		want := make([]string, n)
		for i := range want {
			want[i] = fmt.Sprintf("C%04d", i)
		}

		for trial := 0; trial < 5; trial++ {
			shuffled := slices.Clone(want)
			rng.Shuffle(len(shuffled), func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})

			tree := NewTree(n)
			for _, id := range shuffled {
				tree.Insert(Course{ID: id, Title: "T" + id})
			}

			got := ids(tree.All())
			if n == 0 {
				assert.Empty(t, got)
				continue
			}
			assert.Equal(t, want, got, "n=%d trial=%d", n, trial)
			assert.True(t, slices.IsSorted(got))
			assert.Equal(t, n, tree.Len())
		}
	}
}

func TestTreeSortedInputDegenerates(t *testing.T) {
	tree := NewTree(0)
	const n = 5000
	for i := 0; i < n; i++ {
		tree.Insert(Course{ID: fmt.Sprintf("C%05d", i), Title: "t"})
	}

	assert.Equal(t, n, tree.Height())
	_, ok := tree.Search(fmt.Sprintf("C%05d", n-1))
	assert.True(t, ok)
	assert.Len(t, ids(tree.All()), n)
}

func TestTreeAllStopsEarly(t *testing.T) {
	tree := NewTree(0)
	for _, id := range []string{"D", "B", "F", "A", "C", "E", "G"} {
		tree.Insert(Course{ID: id})
	}

	var seen []string
	for c := range tree.All() {
		seen = append(seen, c.ID)
		if c.ID == "C" {
			break
		}
	}
	assert.Equal(t, []string{"A", "B", "C"}, seen)
}

func TestTreeLexicalOrdering(t *testing.T) {
	tree := NewTree(0)
	for _, id := range []string{"CS2", "CS10", "cs1", "CS1"} {
		tree.Insert(Course{ID: id})
	}
	// Byte-wise ordering: digits sort as characters and upper case precedes lower.
	assert.Equal(t, []string{"CS1", "CS10", "CS2", "cs1"}, ids(tree.All()))
}

func TestTreeReset(t *testing.T) {
	tree := NewTree(0)
	ref, _ := tree.Insert(Course{ID: "CS101"})
	tree.Insert(Course{ID: "CS200"})

	tree.Reset()

	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Len())
	assert.False(t, tree.valid(ref))
	assert.Empty(t, ids(tree.All()))

	_, inserted := tree.Insert(Course{ID: "CS101"})
	assert.True(t, inserted)
	assert.Equal(t, 1, tree.Len())
}
