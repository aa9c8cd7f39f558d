package domain

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login responses never reveal which part was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrEmailTaken      = errors.New("email already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrStoreNotFound   = errors.New("store not found")
	ErrStoreExists     = errors.New("store already exists for this owner")
	ErrOwnerNotFound   = errors.New("owner does not exist or is not a store owner")
	ErrForbidden       = errors.New("access forbidden")
	ErrTooManyAttempts = errors.New("too many failed login attempts")
)

// ValidationError reports a policy violation on user-supplied input. It is
// surfaced as a 400 with the message intact.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError from a plain message.
func Validationf(msg string) error { return &ValidationError{Msg: msg} }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
