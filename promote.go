package hll

// promoteToDense converts a sparse store to dense, writing each non-zero
// run's value into every register it covers. Demotion (dense back to
// sparse) is never performed, matching spec.md §4.4. Grounded on the
// teacher's sparseToDense/upgrade, generalized from the teacher's
// map-of-registers walk to a run-list walk.
func promoteToDense(s *sparseStore) *denseStore {
	d := newDenseStore()
	s.forEach(func(i int, v byte) {
		d.set(i, v)
	})
	return d
}
