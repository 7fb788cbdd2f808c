package cape

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/avila-r/cape/property"
	"github.com/avila-r/cape/stacktrace"
	"github.com/avila-r/cape/tags"
)

type ErrorBuilder struct {
	class       *ErrorClass
	message     string
	cause       error
	mode        stacktrace.Mode
	transparent bool

	user       user
	properties *property.List
	printable  uint8
	tags       tags.Tags
}

func Builder(c *ErrorClass) ErrorBuilder {
	return ErrorBuilder{
		class: c,
		mode: func() stacktrace.Mode {
			if c.Modifiers.CollectStackTrace() {
				return stacktrace.TraceCollect
			} else {
				return stacktrace.TraceOmit
			}
		}(),
		transparent: c.Modifiers.Transparent(),
	}
}

func (b ErrorBuilder) Cause(err error) ErrorBuilder {
	b.cause = err
	if Cast(err) != nil {
		if b.class.Modifiers.CollectStackTrace() {
			b.mode = stacktrace.TraceBorrowOrCollect
		} else {
			b.mode = stacktrace.TraceBorrowOnly
		}
	}
	return b
}

func (b ErrorBuilder) Transparent() ErrorBuilder {
	if b.cause == nil {
		panic("wrong builder usage: wrap modifier without non-nil cause")
	}
	b.transparent = true
	return b
}

func (b ErrorBuilder) EnhanceStackTrace() ErrorBuilder {
	if b.cause == nil {
		panic("wrong builder usage: wrap modifier without non-nil cause")
	}
	if Cast(b.cause) != nil {
		b.mode = stacktrace.TraceEnhance
	} else {
		b.mode = stacktrace.TraceCollect
	}
	return b
}

func (b ErrorBuilder) OmitStackTrace() ErrorBuilder {
	b.mode = stacktrace.TraceOmit
	return b
}

func (b ErrorBuilder) Message(message string, v ...any) ErrorBuilder {
	if len(v) == 0 {
		b.message = message
	} else {
		b.message = fmt.Sprintf(message, v...)
	}
	return b
}

// Name sets the ECapeRoot name; it defaults to the class's interface name.
func (b ErrorBuilder) Name(name string) ErrorBuilder {
	b.user.name = name
	return b
}

func (b ErrorBuilder) Interface(name string) ErrorBuilder {
	b.user.iface = name
	return b
}

func (b ErrorBuilder) Scope(scope string) ErrorBuilder {
	b.user.scope = scope
	return b
}

func (b ErrorBuilder) Operation(operation string) ErrorBuilder {
	b.user.operation = operation
	return b
}

func (b ErrorBuilder) MoreInfo(link string) ErrorBuilder {
	b.user.moreInfo = link
	return b
}

func (b ErrorBuilder) Tags(t tags.Tags) ErrorBuilder {
	merged := tags.Tags{}
	tags.Merge(t, &merged)
	tags.Merge(b.tags, &merged)
	b.tags = merged
	return b
}

// Property attaches a payload value that is printed with the message.
func (b ErrorBuilder) Property(key string, value any) ErrorBuilder {
	b.properties = b.properties.Set(key, value)
	if b.printable < 255 {
		b.printable++
	}
	return b
}

// Position sets the 1-based index of the offending argument.
func (b ErrorBuilder) Position(position int) ErrorBuilder {
	return b.Property(property.Position, position)
}

// Bounds sets the ECapeBoundaries payload.
func (b ErrorBuilder) Bounds(lower, upper, value float64, kind string) ErrorBuilder {
	return b.
		Property(property.LowerBound, lower).
		Property(property.UpperBound, upper).
		Property(property.Value, value).
		Property(property.Type, kind)
}

// RequestedOperation names the operation that has to be called first.
func (b ErrorBuilder) RequestedOperation(operation string) ErrorBuilder {
	return b.Property(property.RequestedOperation, operation)
}

// Item names the persisted item that could not be found.
func (b ErrorBuilder) Item(name string) ErrorBuilder {
	return b.Property(property.ItemName, name)
}

func (b ErrorBuilder) Build() *Error {
	return &Error{
		class:                  b.class,
		id:                     uuid.New(),
		message:                b.message,
		user:                   b.user,
		Cause:                  b.cause,
		properties:             b.properties,
		tags:                   b.tags,
		Transparent:            b.transparent,
		PrintablePropertyCount: b.printable,
		StackTrace: func() *stacktrace.StackTrace {
			switch b.mode {
			case stacktrace.TraceCollect:
				return stacktrace.Collect()
			case stacktrace.TraceBorrowOnly:
				if casted := Cast(b.cause); casted != nil {
					return casted.StackTrace
				} else {
					return nil
				}
			case stacktrace.TraceBorrowOrCollect:
				if casted := Cast(b.cause); casted != nil && casted.StackTrace != nil {
					return casted.StackTrace
				} else {
					return stacktrace.Collect()
				}
			case stacktrace.TraceEnhance:
				current := stacktrace.Collect()
				if casted := Cast(b.cause); casted != nil && casted.StackTrace != nil {
					current.Enhance(casted.StackTrace)
				}
				return current
			case stacktrace.TraceOmit:
				return nil
			default:
				panic("unknown mode " + strconv.Itoa(int(b.mode)))
			}
		}(),
	}
}
