package snapdiff

import "github.com/google/go-cmp/cmp"

// Diff returns, in the key order of a, every key whose value in a is not
// deeply equal to its value in b, including keys missing from b.
// Keys present only in b are never reported.
func Diff[K comparable, V any](a, b Snapshot[K, V], opts ...cmp.Option) []K {
	changed := make([]K, 0)
	for _, k := range a.Keys() {
		av, _ := a.Get(k)
		bv, ok := b.Get(k)
		if !ok || !cmp.Equal(av, bv, opts...) {
			changed = append(changed, k)
		}
	}
	return changed
}
