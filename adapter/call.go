package adapter

import (
	"errors"
	"fmt"

	"github.com/untillpro/goutils/logger"

	"github.com/avila-r/cape"
	"github.com/avila-r/cape/gateway"
	"github.com/avila-r/cape/tags"
	"github.com/avila-r/cape/thermo"
	"github.com/avila-r/cape/variant"
)

var errNilMaterial = errors.New("material is nil")

// call identifies one forwarded operation for error reporting.
type call struct {
	source    any
	iface     thermo.InterfaceID
	operation string
}

func (c call) annotate(err *cape.Error) *cape.Error {
	return err.Chain().
		Interface(string(c.iface)).
		Operation(c.operation).
		Tags(tags.Tags{
			"interface": string(c.iface),
			"operation": c.operation,
		}).
		Done()
}

// failure translates an error raised by the wrapped component.
func (c call) failure(err error) error {
	return c.annotate(gateway.Translate(c.source, err))
}

// argument reports a malformed argument at a 1-based position.
func (c call) argument(position int, err error) error {
	typed := cape.From(err)
	if typed == nil {
		typed = cape.InvalidArgument.Wrap(err, "argument %d", position)
	}
	return c.annotate(typed.WithPosition(position))
}

// result reports a value returned by the wrapped component that does not
// have the shape the interface defines.
func (c call) result(err error) error {
	return c.annotate(cape.Data.Wrap(err, "%s returned a malformed result", c.operation))
}

// pointer rejects a nil out-parameter.
func (c call) pointer(position int, out any) error {
	switch p := out.(type) {
	case *variant.Variant:
		if p != nil {
			return nil
		}
	case *float64:
		if p != nil {
			return nil
		}
	}
	return c.annotate(cape.InvalidArgument.Builder().
		Message("out-parameter %d is nil", position).
		Position(position).
		Build())
}

func (c call) unsupported() {
	if logger.IsVerbose() {
		logger.Verbose(string(c.iface), "is not supported by the wrapped component,", c.operation, "skipped")
	}
}

// narrow converts a COM argument to its native type.
func narrow[T any](c call, position int, v variant.Variant, convert func(variant.Variant) (T, error)) (T, error) {
	value, err := convert(v)
	if err != nil {
		return value, c.argument(position, err)
	}
	return value, nil
}

// unbox converts a COM result to its native type.
func unbox[T any](c call, v variant.Variant, convert func(variant.Variant) (T, error)) (T, error) {
	value, err := convert(v)
	if err != nil {
		return value, c.result(err)
	}
	return value, nil
}

func describe(obj any) string {
	return fmt.Sprintf("%T", obj)
}
