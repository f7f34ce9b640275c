package generation

import "errors"

// Standard errors for generation backends
var (
	// ErrUnsupportedBackend is returned when an unknown backend type is requested
	ErrUnsupportedBackend = errors.New("unsupported generation backend")

	// ErrInvalidConfiguration is returned when the backend configuration is invalid
	ErrInvalidConfiguration = errors.New("invalid generator configuration")

	// ErrGenerationFailed is returned when the backend call fails
	ErrGenerationFailed = errors.New("text generation failed")

	// ErrBackendUnavailable is returned when the backend is unreachable or overloaded
	ErrBackendUnavailable = errors.New("generation backend unavailable")

	// ErrEmptyCompletion is returned when the backend responds without any text
	ErrEmptyCompletion = errors.New("backend returned an empty completion")

	// ErrContextDeadlineExceeded is returned when the context deadline is exceeded
	ErrContextDeadlineExceeded = errors.New("context deadline exceeded")
)
