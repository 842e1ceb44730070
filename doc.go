// Package flatbush is a static, packed Hilbert R-tree for 2D axis-aligned
// bounding boxes, ported from the design of https://github.com/mourner/flatbush.
//
// The whole index lives in one contiguous numeric buffer: no node is ever
// heap-allocated, and no reference is ever a pointer. A FlatBush is built in
// two phases: insert every leaf box via Add, then call Finish exactly once.
// After that, Search answers axis-aligned range queries by walking the
// packed buffer directly.
package flatbush
