package list

import "errors"

var (
	// ErrInvalidArgument reports a value rejected by a validator, an index out of
	// range or a list which cannot be merged.
	ErrInvalidArgument = errors.New("sortedlist: invalid argument")

	// ErrComparison reports a comparator which failed, panicked or contradicted
	// itself.
	ErrComparison = errors.New("sortedlist: comparison failure")

	// ErrConcurrentModification reports an iteration advanced after the list
	// changed structurally.
	ErrConcurrentModification = errors.New("sortedlist: concurrent modification")
)
