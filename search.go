package flatbush

// Search returns every leaf reference whose stored box overlaps the query
// box, inclusive on all four edges. The order is the deterministic DFS
// order induced by the packed buffer layout; sort the result yourself if
// you need a specific order.
func (f *FlatBush[T]) Search(minX, minY, maxX, maxY T) ([]int, error) {
	return f.SearchFast(minX, minY, maxX, maxY, nil, nil)
}

// SearchFilter is Search with a predicate consulted once per candidate
// leaf; a leaf is included only when the filter also returns true for it.
func (f *FlatBush[T]) SearchFilter(minX, minY, maxX, maxY T, filter func(ref int) bool) ([]int, error) {
	return f.SearchFast(minX, minY, maxX, maxY, filter, nil)
}

// SearchFast is Search/SearchFilter with the results slice supplied by the
// caller (and truncated to zero length before use), to avoid a
// per-query allocation in hot loops.
func (f *FlatBush[T]) SearchFast(minX, minY, maxX, maxY T, filter func(ref int) bool, results []int) ([]int, error) {
	if !f.built {
		return nil, ErrNotFinished
	}
	results = results[:0]

	leafSlots := f.numItems * recordSlots
	rootOffset := len(f.data) - recordSlots
	rootLevel := len(f.levelBounds) - 1

	// Explicit work list (used as a LIFO stack) of (nodeSlotOffset, level)
	// pairs, bounding stack depth and fixing a deterministic visit order.
	stack := make([]int, 0, 32)
	stack = append(stack, rootOffset, rootLevel)

	for len(stack) != 0 {
		level := stack[len(stack)-1]
		nodeOffset := stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		end := nodeOffset + f.nodeSize*recordSlots
		if bound := f.levelBounds[level]; end > bound {
			end = bound
		}

		for pos := nodeOffset; pos < end; pos += recordSlots {
			recMinX, recMinY := f.data[pos+1], f.data[pos+2]
			recMaxX, recMaxY := f.data[pos+3], f.data[pos+4]

			if maxX < recMinX || maxY < recMinY || minX > recMaxX || minY > recMaxY {
				continue
			}

			ref := int(f.data[pos])
			if nodeOffset < leafSlots {
				if filter == nil || filter(ref) {
					results = append(results, ref)
				}
			} else {
				stack = append(stack, ref, level-1)
			}
		}
	}

	return results, nil
}
