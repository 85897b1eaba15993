package tagcloud

import "errors"

// Error definitions for the `cybergodev/tagcloud` package.
var (
	// ErrInvalidCount is returned when the requested word count is not a
	// non-negative integer.
	ErrInvalidCount = errors.New("tagcloud: invalid word count")

	// ErrInputUnreadable is returned when the source document cannot be read
	// or decoded.
	ErrInputUnreadable = errors.New("tagcloud: input unreadable")

	// ErrOutputUnwritable is returned when the generated page cannot be written.
	ErrOutputUnwritable = errors.New("tagcloud: output unwritable")

	// ErrInputTooLarge is returned when input exceeds MaxInputSize.
	ErrInputTooLarge = errors.New("tagcloud: input size exceeds maximum")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("tagcloud: invalid config")

	// ErrGeneratorClosed is returned when operations are attempted on a closed generator.
	ErrGeneratorClosed = errors.New("tagcloud: generator closed")

	// ErrInvalidFilePath is returned when a file path is empty.
	ErrInvalidFilePath = errors.New("tagcloud: invalid file path")
)
