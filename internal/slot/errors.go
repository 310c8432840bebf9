package slot

import (
	"errors"
	"fmt"
)

// TypeError reports a variable whose declared type cannot be sized.
// Any TypeError aborts the whole computation; there is no meaningful
// partial packing result.
type TypeError struct {
	// Code identifies the error category.
	Code TypeErrorCode

	// Type is the offending type tag.
	Type string

	// Name is the declared name of the offending variable, when known.
	Name string
}

// TypeErrorCode categorizes type sizing errors.
type TypeErrorCode string

const (
	// ErrCodeUnrecognizedType indicates the type tag matches no known pattern.
	ErrCodeUnrecognizedType TypeErrorCode = "UNRECOGNIZED_TYPE"

	// ErrCodeMalformedWidthSuffix indicates a width suffix with non-digit characters.
	ErrCodeMalformedWidthSuffix TypeErrorCode = "MALFORMED_WIDTH_SUFFIX"
)

// Error implements the error interface.
func (e *TypeError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: cannot size type %q (variable %q)", e.Code, e.Type, e.Name)
	}
	return fmt.Sprintf("%s: cannot size type %q", e.Code, e.Type)
}

// IsUnrecognizedType returns true if the error is an unrecognized-type error.
// Uses errors.As to handle wrapped errors.
func IsUnrecognizedType(err error) bool {
	var te *TypeError
	if errors.As(err, &te) {
		return te.Code == ErrCodeUnrecognizedType
	}
	return false
}

// IsMalformedWidthSuffix returns true if the error is a malformed-suffix error.
// Uses errors.As to handle wrapped errors.
func IsMalformedWidthSuffix(err error) bool {
	var te *TypeError
	if errors.As(err, &te) {
		return te.Code == ErrCodeMalformedWidthSuffix
	}
	return false
}

func newUnrecognizedType(v Variable) *TypeError {
	return &TypeError{Code: ErrCodeUnrecognizedType, Type: v.Type, Name: v.Name}
}

func newMalformedWidthSuffix(v Variable) *TypeError {
	return &TypeError{Code: ErrCodeMalformedWidthSuffix, Type: v.Type, Name: v.Name}
}
