package snapdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

type entry struct {
	Name  string
	Tags  []string
	Route *int
}

func mapOf(pairs ...any) *OrderedMap[string, entry] {
	m := NewOrderedMap[string, entry]()
	for i := 0; i < len(pairs); i += 2 {
		m.Set(pairs[i].(string), pairs[i+1].(entry))
	}
	return m
}

func intPtr(v int) *int { return &v }

func TestDiff_IdenticalSnapshots(t *testing.T) {
	a := mapOf("x", entry{Name: "x", Tags: []string{"t"}}, "y", entry{Name: "y", Route: intPtr(1)})

	assert.Empty(t, Diff[string, entry](a, a))
	assert.Empty(t, Diff[string, entry](a, a.Clone(nil)))
}

func TestDiff_EmptySnapshots(t *testing.T) {
	empty := NewOrderedMap[string, entry]()

	got := Diff[string, entry](empty, empty)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDiff_ReportsChangedAndMissingKeysInOrder(t *testing.T) {
	a := mapOf(
		"c", entry{Name: "c"},
		"a", entry{Name: "a", Route: intPtr(2)},
		"b", entry{Name: "b"},
		"d", entry{Name: "only-in-a"},
	)
	b := mapOf(
		"a", entry{Name: "a", Route: intPtr(1)},
		"b", entry{Name: "b"},
		"c", entry{Name: "C"},
		"e", entry{Name: "only-in-b"},
	)

	assert.Equal(t, []string{"c", "a", "d"}, Diff[string, entry](a, b))
}

func TestDiff_ComparesPointeesNotPointers(t *testing.T) {
	a := mapOf("x", entry{Route: intPtr(1)})
	b := mapOf("x", entry{Route: intPtr(1)})

	assert.Empty(t, Diff[string, entry](a, b))
}

func TestDiff_CommonIdenticalKeyDoesNotChangeResult(t *testing.T) {
	a := mapOf("x", entry{Name: "1"})
	b := mapOf("x", entry{Name: "2"})
	before := Diff[string, entry](a, b)

	a.Set("extra", entry{Name: "same", Tags: []string{"k"}})
	b.Set("extra", entry{Name: "same", Tags: []string{"k"}})

	assert.Equal(t, before, Diff[string, entry](a, b))
}

func TestDiff_NilVersusEmptySliceDiffersUnlessOptedOut(t *testing.T) {
	a := mapOf("x", entry{Tags: []string{}})
	b := mapOf("x", entry{Tags: nil})

	assert.Equal(t, []string{"x"}, Diff[string, entry](a, b))
	assert.Empty(t, Diff[string, entry](a, b, cmpopts.EquateEmpty()))
}
