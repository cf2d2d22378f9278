package usecase

import "errors"

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindInvalidInput
	KindNotFound
	KindConflict
)

// DomainError is the only error type use cases return for expected
// failures. Anything else reaching the HTTP layer is treated as internal.
type DomainError struct {
	Kind    ErrorKind
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func ErrInvalidInput(msg string) error {
	return &DomainError{Kind: KindInvalidInput, Message: msg}
}

func ErrNotFound(msg string) error {
	return &DomainError{Kind: KindNotFound, Message: msg}
}

func ErrConflict(msg string) error {
	return &DomainError{Kind: KindConflict, Message: msg}
}

// KindOf classifies err for status mapping. Unrecognized errors are
// KindInternal.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}
