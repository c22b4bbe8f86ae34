package auth

import "errors"

var (
	// ErrEmptyPassword is returned when hashing an empty plaintext.
	ErrEmptyPassword = errors.New("password must not be empty")
	// ErrMalformedHash is returned when a stored digest cannot be parsed.
	ErrMalformedHash = errors.New("malformed password hash")

	// ErrPasswordTooLong is returned when a plaintext exceeds bcrypt's input limit.
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

	// ErrSigningKeyMissing is returned when no secret was configured.
	ErrSigningKeyMissing = errors.New("token signing key is missing")

	// ErrInvalidToken is the parent of every verification failure.
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenMalformed = wrapInvalid("token is malformed")
	ErrTokenSignature = wrapInvalid("token signature is invalid")
	ErrTokenExpired   = wrapInvalid("token is expired")
	ErrTokenClaims    = wrapInvalid("token claims are invalid")
)

type tokenError struct {
	msg string
}

func (e *tokenError) Error() string { return e.msg }

func (e *tokenError) Unwrap() error { return ErrInvalidToken }

func wrapInvalid(msg string) error {
	return &tokenError{msg: msg}
}
