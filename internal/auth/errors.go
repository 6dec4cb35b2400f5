package auth

import (
	"errors"
	"net/http"
)

// Kind classifies authentication failures.
type Kind int

const (
	KindInvalidCredentials Kind = iota + 1
	KindAlreadyExists
	KindTokenAbsent
	KindMalformedToken
	KindTokenExpired
	KindSubjectMissing
)

// String returns the stable wire code of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidCredentials:
		return "INVALID_CREDENTIALS"
	case KindAlreadyExists:
		return "ALREADY_EXISTS"
	case KindTokenAbsent:
		return "TOKEN_ABSENT"
	case KindMalformedToken:
		return "MALFORMED_TOKEN"
	case KindTokenExpired:
		return "TOKEN_EXPIRED"
	case KindSubjectMissing:
		return "SUBJECT_MISSING"
	default:
		return "UNKNOWN"
	}
}

func (k Kind) message() string {
	switch k {
	case KindInvalidCredentials:
		return "invalid email or password"
	case KindAlreadyExists:
		return "user already exists"
	case KindTokenAbsent:
		return "access token is absent"
	case KindMalformedToken:
		return "access token is malformed"
	case KindTokenExpired:
		return "access token has expired"
	case KindSubjectMissing:
		return "access token subject is missing"
	default:
		return "authentication failed"
	}
}

// Error is an authentication failure of a known Kind.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Kind.message()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same Kind, so the sentinels below work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// ErrorCode implements the errorutil coder contract.
func (e *Error) ErrorCode() string {
	return e.Kind.String()
}

// StatusCode implements the errorutil coder contract.
func (e *Error) StatusCode() int {
	if e.Kind == KindAlreadyExists {
		return http.StatusConflict
	}
	return http.StatusUnauthorized
}

var (
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials}
	ErrAlreadyExists      = &Error{Kind: KindAlreadyExists}
	ErrTokenAbsent        = &Error{Kind: KindTokenAbsent}
	ErrMalformedToken     = &Error{Kind: KindMalformedToken}
	ErrTokenExpired       = &Error{Kind: KindTokenExpired}
	ErrSubjectMissing     = &Error{Kind: KindSubjectMissing}
)

func newError(kind Kind, cause error) error {
	return &Error{Kind: kind, Err: cause}
}

// KindOf reports the Kind of an authentication error anywhere in err's chain.
func KindOf(err error) (Kind, bool) {
	var authErr *Error
	if errors.As(err, &authErr) {
		return authErr.Kind, true
	}
	return 0, false
}
