package commerce

import "errors"

var (
	// ErrStateConflict signals a status transition not present in the
	// transition table. Retrying without new information fails identically,
	// so callers surface it instead of retrying.
	ErrStateConflict = errors.New("state conflict")

	// ErrInvalidArgument signals malformed input to a function with a
	// documented precondition: a caller bug or upstream data corruption.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedOrderType signals an order type outside the known set.
	ErrUnsupportedOrderType = errors.New("unsupported order type")

	// ErrStaleStatus signals that a conditional write found the stored
	// status no longer equal to the snapshot the decision was made against.
	ErrStaleStatus = errors.New("status changed concurrently")
)
