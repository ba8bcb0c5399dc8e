package costar

// Partition splits two filmographies into the titles they share and the
// titles exclusive to each. The three results are pairwise disjoint and
// together cover the union of a and b.
func Partition(a, b TitleSet) (both, onlyA, onlyB TitleSet) {
	both = make(TitleSet)
	onlyA = make(TitleSet)
	onlyB = make(TitleSet)

	for t := range a {
		if b.Contains(t) {
			both[t] = struct{}{}
		} else {
			onlyA[t] = struct{}{}
		}
	}
	for t := range b {
		if !both.Contains(t) {
			onlyB[t] = struct{}{}
		}
	}

	return both, onlyA, onlyB
}
