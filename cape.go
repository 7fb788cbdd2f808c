package cape

import (
	"errors"

	"github.com/avila-r/cape/hresult"
	"github.com/avila-r/cape/property"
	"github.com/avila-r/cape/trait"
)

// New creates an ECapeUnknown error.
func New(message string, v ...any) *Error {
	return Builder(Unknown).
		Message(message, v...).
		Build()
}

// From returns the first package error in err's chain, or nil.
func From(err error) *Error {
	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}

	return nil
}

// Cast returns err as a package error if it is one, without unwrapping.
func Cast(err error) *Error {
	if e, ok := err.(*Error); ok && e != nil {
		return e
	}

	return nil
}

// Decorate adds a message to err without changing its class, code or payload.
func Decorate(err error, message string, v ...any) *Error {
	return Builder(transparentWrapper).
		Message(message, v...).
		Cause(err).
		Transparent().
		Build()
}

// Extends reports whether the first package error in err's chain is of class c
// or one of its subclasses.
func Extends(err error, c *ErrorClass) bool {
	typed := From(err)

	return typed != nil && typed.Extends(c)
}

func Has(err error, trait trait.Trait) bool {
	if typed := From(err); typed != nil {
		return typed.Has(trait)
	}

	return false
}

// CodeOf returns the HRESULT carried by err: the class code for package errors,
// any hresult.Coder in the chain otherwise, E_FAIL when there is none.
func CodeOf(err error) hresult.HRESULT {
	return hresult.FromError(err)
}

// Cause returns the innermost error of the chain.
func Cause(err error) error {
	for {
		previous := errors.Unwrap(err)
		if previous == nil {
			return err
		}
		err = previous
	}
}

func Property(err error, key string) property.Result {
	if typed := From(err); typed != nil {
		return typed.Property(key)
	}

	return property.Empty()
}

func Extract[T any](err error, key string) (out T) {
	Property(err, key).Bind(&out)
	return
}

func Contains(err error, key string) bool {
	return Property(err, key).Ok
}

// Inspect renders err with payload and cause for logs.
func Inspect(err error) string {
	if typed := Cast(err); typed != nil {
		return typed.Summary()
	}

	return err.Error()
}
