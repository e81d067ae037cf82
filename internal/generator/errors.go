package generator

import "errors"

var (
	// ErrGenerationFailed is matched by every analyze and generate failure.
	ErrGenerationFailed = errors.New("content generation failed")

	ErrMissingAPIKey = errors.New("openai api key is not configured")
	ErrEmptyReply    = errors.New("model returned an empty reply")
)

// Error carries the failed operation and the upstream cause. Its message
// includes the upstream message so callers can log it verbatim.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return "failed to " + e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() []error {
	return []error{ErrGenerationFailed, e.Err}
}
