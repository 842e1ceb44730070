package flatbush

import "errors"

// Sentinel errors for every precondition this package enforces. None of
// these are recoverable: each marks programmer misuse of the build/query
// protocol rather than a data-dependent failure.
var (
	// ErrInvalidItemCount is returned by New and Restore when numItems is
	// not a positive integer.
	ErrInvalidItemCount = errors.New("flatbush: numItems must be a positive integer")

	// ErrAlreadyFinished is returned by Add and Finish once Finish has
	// already succeeded once for this index.
	ErrAlreadyFinished = errors.New("flatbush: index is already finished")

	// ErrTooManyItems is returned by Add once numItems leaves have already
	// been inserted.
	ErrTooManyItems = errors.New("flatbush: insertion count exceeds numItems")

	// ErrCountMismatch is returned by Finish when the number of leaves
	// inserted so far does not equal numItems.
	ErrCountMismatch = errors.New("flatbush: insertion count does not match numItems")

	// ErrNotFinished is returned by Search when called before Finish.
	ErrNotFinished = errors.New("flatbush: search called before finish")

	// ErrBufferMismatch is returned by Restore when the supplied buffer's
	// length does not match the buffer length implied by numItems and
	// nodeSize.
	ErrBufferMismatch = errors.New("flatbush: existing buffer does not match numItems/nodeSize")
)
