package timelog

import "errors"

// Sentinel errors for store operations.
var (
	// ErrTimeRegression marks a log whose entries go back in time. The file
	// is considered corrupt; it is never reordered or partially loaded.
	ErrTimeRegression = errors.New("timelog entry goes back in time")

	// ErrNoBackingFile is returned by Save on a store built without a file.
	ErrNoBackingFile = errors.New("timelog has no backing file")
)
