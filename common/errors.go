package common

import (
	"fmt"

	"emperror.dev/errors"
)

const (
	ErrInvalidDate  = errors.Sentinel("invalid date")
	ErrInvalidImage = errors.Sentinel("invalid image")
)

// InputError is a validation error whose message is safe to show to the user.
// errors.Is matches it against its Kind.
type InputError struct {
	Kind    error
	Message string
}

func (e *InputError) Error() string { return e.Message }

func (e *InputError) Is(target error) bool { return target == e.Kind }

func (e *InputError) Unwrap() error { return e.Kind }

func inputError(kind error, tmpl string, args ...any) error {
	return &InputError{Kind: kind, Message: fmt.Sprintf(tmpl, args...)}
}

// UserMessage returns the user-facing message for err, and false if err is not an *InputError.
func UserMessage(err error) (string, bool) {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie.Message, true
	}
	return "", false
}
