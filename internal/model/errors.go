package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a rejected operator decision.
type ErrorKind int

const (
	InsufficientFunds ErrorKind = iota + 1
	InvalidPrice
	InvalidQuantity
)

func (k ErrorKind) String() string {
	switch k {
	case InsufficientFunds:
		return "insufficient funds"
	case InvalidPrice:
		return "invalid price"
	case InvalidQuantity:
		return "invalid quantity"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is matching against a *ValidationError.
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidPrice      = errors.New("invalid price")
	ErrInvalidQuantity   = errors.New("invalid quantity")
)

// ValidationError rejects a decision. The caller re-asks for the same decision;
// no state has been changed.
type ValidationError struct {
	Kind    ErrorKind
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Message
}

// Is matches the sentinel for the error's kind.
func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrInsufficientFunds:
		return e.Kind == InsufficientFunds
	case ErrInvalidPrice:
		return e.Kind == InvalidPrice
	case ErrInvalidQuantity:
		return e.Kind == InvalidQuantity
	}
	return false
}

// Rejectf builds a *ValidationError of the given kind.
func Rejectf(kind ErrorKind, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf reports the validation kind of err, if it is one.
func KindOf(err error) (ErrorKind, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind, true
	}
	return 0, false
}
