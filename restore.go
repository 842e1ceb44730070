package flatbush

// Restore wraps an existing buffer produced by a prior Finish call,
// recovering global extrema from its root record. The caller must supply
// the same numItems and nodeSize used to build buf; there is no
// self-describing header to recover them from.
func Restore[T Num](buf []T, numItems, nodeSize int) (*FlatBush[T], error) {
	if numItems <= 0 {
		return nil, ErrInvalidItemCount
	}
	nodeSize = clampNodeSize(nodeSize)

	levelBounds, totalNodes := computeLevelBounds(numItems, nodeSize)
	if len(buf) != recordSlots*totalNodes {
		return nil, ErrBufferMismatch
	}

	rootOffset := len(buf) - recordSlots
	f := &FlatBush[T]{
		nodeSize:    nodeSize,
		numItems:    numItems,
		count:       numItems,
		built:       true,
		data:        buf,
		levelBounds: levelBounds,
		minX:        buf[rootOffset+1],
		minY:        buf[rootOffset+2],
		maxX:        buf[rootOffset+3],
		maxY:        buf[rootOffset+4],
	}
	return f, nil
}
