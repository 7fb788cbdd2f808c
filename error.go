package cape

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/avila-r/cape/hresult"
	"github.com/avila-r/cape/property"
	"github.com/avila-r/cape/stacktrace"
	"github.com/avila-r/cape/tags"
	"github.com/avila-r/cape/trait"
)

// Error is the single error type of the package. Its class selects the
// CAPE-OPEN kind; the kind-specific payload (position, bounds, requested
// operation, item name) lives in the property list and reads as zero when
// absent.
type Error struct {
	class *ErrorClass
	id    uuid.UUID

	message    string
	user       user
	Cause      error
	StackTrace *stacktrace.StackTrace
	properties *property.List
	tags       tags.Tags

	Transparent            bool
	HasUnderlying          bool
	PrintablePropertyCount uint8
}

// user holds the ECapeUser fields besides code and description.
type user struct {
	name      string
	iface     string
	scope     string
	operation string
	moreInfo  string
}

var (
	_ error         = (*Error)(nil)
	_ fmt.Formatter = (*Error)(nil)

	_ Root                      = (*Error)(nil)
	_ User                      = (*Error)(nil)
	_ BadArgumentDetail         = (*Error)(nil)
	_ BoundariesDetail          = (*Error)(nil)
	_ BadInvOrderDetail         = (*Error)(nil)
	_ PersistenceNotFoundDetail = (*Error)(nil)
	_ hresult.Coder             = (*Error)(nil)
)

// ID identifies this error instance in logs.
func (e *Error) ID() uuid.UUID {
	return e.id
}

// Is matches errors of the same class; a target without description matches
// any description.
func (e *Error) Is(target error) bool {
	t := Cast(target)
	if t == nil {
		return false
	}

	return e.Class().ID == t.Class().ID && (t.message == "" || t.message == e.message)
}

func (e *Error) Has(trait trait.Trait) bool {
	return e.Class().Has(trait)
}

// Extends reports whether e's class is c or a subclass of c.
func (e *Error) Extends(c *ErrorClass) bool {
	return e.Class().Is(c)
}

func (e *Error) Property(key string) property.Result {
	for cause := e; cause != nil; cause = Cast(cause.Cause) {
		value, ok := cause.properties.Get(key)
		if ok {
			return property.Result{Value: value, Ok: true}
		}

		if !cause.Transparent {
			break
		}
	}

	return property.Empty()
}

func (e *Error) With(key string, value any) *Error {
	copy := *e
	copy.properties = copy.properties.Set(key, value)
	if copy.PrintablePropertyCount < 255 {
		copy.PrintablePropertyCount++
	}
	return &copy
}

// WithPosition returns a copy of e reporting the offending argument position.
func (e *Error) WithPosition(position int) *Error {
	return e.With(property.Position, position)
}

// Also attaches errors that happened while handling e; they are printed but not unwrapped.
func (e *Error) Also(errs ...error) *Error {
	var (
		underlying = e.underlying()
		new        = underlying
	)

	for _, err := range errs {
		if err == nil {
			continue
		}
		new = append(new, err)
	}

	if len(new) == len(underlying) {
		return e
	}

	l := len(new)
	copy := e.With(property.Underlying, new[:l:l])
	copy.PrintablePropertyCount--
	copy.HasUnderlying = true
	return copy
}

func (e *Error) Unwrap() error {
	if e != nil && e.Cause != nil {
		return e.Cause
	} else {
		return nil
	}
}

// Class resolves the class through transparent wrappers.
func (e *Error) Class() *ErrorClass {
	for cause := e; cause != nil; cause = Cast(cause.Cause) {
		if !cause.Transparent {
			return cause.class
		}
	}

	return foreignType
}

// Code is the HRESULT of e's class. Unbound classes report the code carried
// by the cause, or E_FAIL.
func (e *Error) Code() hresult.HRESULT {
	if class := e.Class(); class.Bound() {
		return class.Code
	}

	if e.Cause != nil {
		return hresult.FromError(e.Cause)
	}

	return hresult.E_FAIL
}

// HResult implements hresult.Coder.
func (e *Error) HResult() int32 {
	return int32(e.Code())
}

// Name implements Root. It defaults to the class's interface name.
func (e *Error) Name() string {
	if e.user.name != "" {
		return e.user.name
	}
	if class := e.Class(); class.Interface != "" {
		return class.Interface
	}
	return e.Class().Name
}

// Description implements User.
func (e *Error) Description() string {
	return e.message
}

// InterfaceName implements User.
func (e *Error) InterfaceName() string {
	return e.user.iface
}

// Scope implements User.
func (e *Error) Scope() string {
	return e.user.scope
}

// Operation implements User.
func (e *Error) Operation() string {
	return e.user.operation
}

// MoreInfo implements User.
func (e *Error) MoreInfo() string {
	return e.user.moreInfo
}

// Position implements BadArgumentDetail.
func (e *Error) Position() int {
	return extract[int](e, property.Position)
}

// LowerBound implements BoundariesDetail.
func (e *Error) LowerBound() float64 {
	return extract[float64](e, property.LowerBound)
}

// UpperBound implements BoundariesDetail.
func (e *Error) UpperBound() float64 {
	return extract[float64](e, property.UpperBound)
}

// Value implements BoundariesDetail.
func (e *Error) Value() float64 {
	return extract[float64](e, property.Value)
}

// Type implements BoundariesDetail.
func (e *Error) Type() string {
	return extract[string](e, property.Type)
}

// RequestedOperation implements BadInvOrderDetail.
func (e *Error) RequestedOperation() string {
	return extract[string](e, property.RequestedOperation)
}

// ItemName implements PersistenceNotFoundDetail.
func (e *Error) ItemName() string {
	return extract[string](e, property.ItemName)
}

func (e *Error) Tags() tags.Tags {
	return e.tags
}

func extract[T any](e *Error, key string) (out T) {
	e.Property(key).Bind(&out)
	return
}

// Summary renders class, description, payload, cause and attached errors.
func (e *Error) Summary() string {
	var join = func(delimiter string, parts ...string) string {
		filtered := make([]string, 0, len(parts))
		for _, part := range parts {
			if len(part) > 0 {
				filtered = append(filtered, part)
			}
		}
		return strings.Join(filtered, delimiter)
	}

	properties := ""
	if e.PrintablePropertyCount != 0 {
		strs := make([]string, 0, e.PrintablePropertyCount)
		e.properties.Each(func(key string, value any) {
			if key != property.Underlying {
				strs = append(strs, fmt.Sprintf("%s: %v", key, value))
			}
		})

		properties = "{" + strings.Join(strs, ", ") + "}"
	}

	text := join(" ", e.message, properties)
	if cause := e.Cause; cause != nil && cause.Error() != e.message {
		text = join(", cause: ", text, cause.Error())
	}

	underlying := ""
	if e.HasUnderlying {
		details := make([]string, 0, len(e.underlying()))
		for _, err := range e.underlying() {
			details = append(details, err.Error())
		}
		underlying = fmt.Sprintf("(hidden: %s)", join(", ", details...))
	}

	if transparent := join(" ", text, underlying); e.Transparent {
		return transparent
	} else {
		return join(": ", e.class.Name, transparent)
	}
}

func (e *Error) underlying() []error {
	if !e.HasUnderlying {
		return nil
	}
	u, _ := e.properties.Get(property.Underlying)
	return u.([]error)
}

// Error implements the error interface.
// A result is the same as with %s formatter and does not contain a stack trace.
func (e *Error) Error() string {
	return e.Summary()
}

// Format implements the Formatter interface.
//
// Supported verbs:
//
//	%s		simple message output
//	%v		simple message output
//	%+v		full output complete with a stack trace
//
// In is nearly always preferable to use %+v format.
// If a stack trace is not required, it should be omitted
// at the moment of creation rather in formatting.
func (e *Error) Format(state fmt.State, verb rune) {
	switch message := e.Summary(); verb {
	case 'v':
		_, _ = io.WriteString(state, message)
		if state.Flag('+') {
			e.StackTrace.Format(state, verb)
		}
	case 's':
		_, _ = io.WriteString(state, message)
	}
}
