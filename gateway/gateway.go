// Package gateway rebuilds the richest available CAPE-OPEN error from a
// failure reported by a component: the status code selects the kind, the
// error interfaces the component implements supply description and payload.
package gateway

import (
	"errors"

	"github.com/untillpro/goutils/logger"

	"github.com/avila-r/cape"
	"github.com/avila-r/cape/hresult"
)

// Fallback is the name given to errors whose source does not identify itself.
const Fallback = "CAPE-OPEN component"

// Capabilities records which CAPE-OPEN error interfaces a failure exposes.
// Absent interfaces are nil; readers fall back to zero values.
type Capabilities struct {
	Root                cape.Root
	Identification      cape.Identification
	User                cape.User
	BadArgument         cape.BadArgumentDetail
	Boundaries          cape.BoundariesDetail
	BadInvOrder         cape.BadInvOrderDetail
	PersistenceNotFound cape.PersistenceNotFoundDetail
}

// Probe type-checks each candidate once per interface; for every interface
// the first candidate implementing it wins. Nil candidates are skipped.
func Probe(candidates ...any) Capabilities {
	var c Capabilities
	for _, candidate := range candidates {
		if candidate == nil {
			continue
		}
		if v, ok := candidate.(cape.Root); ok && c.Root == nil {
			c.Root = v
		}
		if v, ok := candidate.(cape.Identification); ok && c.Identification == nil {
			c.Identification = v
		}
		if v, ok := candidate.(cape.User); ok && c.User == nil {
			c.User = v
		}
		if v, ok := candidate.(cape.BadArgumentDetail); ok && c.BadArgument == nil {
			c.BadArgument = v
		}
		if v, ok := candidate.(cape.BoundariesDetail); ok && c.Boundaries == nil {
			c.Boundaries = v
		}
		if v, ok := candidate.(cape.BadInvOrderDetail); ok && c.BadInvOrder == nil {
			c.BadInvOrder = v
		}
		if v, ok := candidate.(cape.PersistenceNotFoundDetail); ok && c.PersistenceNotFound == nil {
			c.PersistenceNotFound = v
		}
	}
	return c
}

// Translate converts inner, raised while calling source, into a new
// *cape.Error of the kind its code names. Unrecognised codes become
// ECapeUnknown. inner is kept as the cause and never modified; a nil inner
// translates to nil.
func Translate(source any, inner error) *cape.Error {
	if inner == nil {
		return nil
	}

	candidates := []any{source, inner}
	if detail := cape.From(inner); detail != nil && detail != inner {
		candidates = append(candidates, detail)
	}
	caps := Probe(candidates...)

	code := codeOf(inner, caps)
	class, build := dispatch(code, caps)

	err := build(wrapper(class, source, inner, caps)).Build()

	if logger.IsVerbose() {
		logger.Verbose("translated", code.Hex(), "to", class.Interface, err.ID().String()+":", cape.Inspect(err))
	}

	return err
}

// codeOf prefers the code carried by inner and falls back to ECapeUser.code.
func codeOf(inner error, caps Capabilities) hresult.HRESULT {
	var coder hresult.Coder
	if errors.As(inner, &coder) {
		return hresult.HRESULT(coder.HResult())
	}
	if caps.User != nil {
		return read(caps.User.Code)
	}
	return hresult.Unknown
}

// wrapper copies the generic ECapeUser fields; the kind is decided by dispatch.
func wrapper(class *cape.ErrorClass, source any, inner error, caps Capabilities) cape.ErrorBuilder {
	b := class.Builder().
		Name(nameOf(source, inner)).
		Cause(inner)

	description := ""
	if caps.User != nil {
		description = read(caps.User.Description)
		b = b.
			Interface(read(caps.User.InterfaceName)).
			Scope(read(caps.User.Scope)).
			Operation(read(caps.User.Operation)).
			MoreInfo(read(caps.User.MoreInfo))
	}
	if description == "" {
		description = inner.Error()
	}

	return b.Message("%s", description)
}

// nameOf asks the source first: its ECapeRoot name, then its component
// name; an error's own ECapeRoot name comes last.
func nameOf(source any, inner error) string {
	if root, ok := source.(cape.Root); ok {
		if name := read(root.Name); name != "" {
			return name
		}
	}
	if identification, ok := source.(cape.Identification); ok {
		if name := read(identification.ComponentName); name != "" {
			return name
		}
	}
	if root, ok := inner.(cape.Root); ok {
		if name := read(root.Name); name != "" {
			return name
		}
	}
	return Fallback
}

type payload func(cape.ErrorBuilder) cape.ErrorBuilder

func dispatch(code hresult.HRESULT, caps Capabilities) (*cape.ErrorClass, payload) {
	none := func(b cape.ErrorBuilder) cape.ErrorBuilder { return b }

	switch code {
	case hresult.Unknown:
		return cape.Unknown, none
	case hresult.Data:
		return cape.Data, none
	case hresult.LicenceError:
		return cape.LicenceError, none
	case hresult.BadCOParameter:
		return cape.BadCOParameter, none
	case hresult.BadArgument:
		return cape.BadArgument, position(caps)
	case hresult.InvalidArgument:
		return cape.InvalidArgument, position(caps)
	case hresult.OutOfBounds:
		return cape.OutOfBounds, func(b cape.ErrorBuilder) cape.ErrorBuilder {
			if caps.Boundaries == nil {
				return b.Bounds(0, 0, 0, "").Position(0)
			}
			b = bounds(caps)(b)
			return position(caps)(b)
		}
	case hresult.Implementation:
		return cape.Implementation, none
	case hresult.NoImpl:
		return cape.NoImpl, none
	case hresult.LimitedImpl:
		return cape.LimitedImpl, none
	case hresult.Computation:
		return cape.Computation, none
	case hresult.OutOfResources:
		return cape.OutOfResources, none
	case hresult.NoMemory:
		return cape.NoMemory, none
	case hresult.TimeOut:
		return cape.TimeOut, none
	case hresult.FailedInitialisation:
		return cape.FailedInitialisation, none
	case hresult.SolvingError:
		return cape.SolvingError, none
	case hresult.BadInvOrder:
		return cape.BadInvOrder, func(b cape.ErrorBuilder) cape.ErrorBuilder {
			operation := ""
			if caps.BadInvOrder != nil {
				operation = read(caps.BadInvOrder.RequestedOperation)
			}
			return b.RequestedOperation(operation)
		}
	case hresult.InvalidOperation:
		return cape.InvalidOperation, none
	case hresult.Persistence:
		return cape.Persistence, none
	case hresult.IllegalAccess:
		return cape.IllegalAccess, none
	case hresult.PersistenceNotFound:
		return cape.PersistenceNotFound, func(b cape.ErrorBuilder) cape.ErrorBuilder {
			item := ""
			if caps.PersistenceNotFound != nil {
				item = read(caps.PersistenceNotFound.ItemName)
			}
			return b.Item(item)
		}
	case hresult.PersistenceSystemError:
		return cape.PersistenceSystemError, none
	case hresult.PersistenceOverflow:
		return cape.PersistenceOverflow, bounds(caps)
	case hresult.OutsideSolverScope:
		return cape.OutsideSolverScope, none
	case hresult.HessianInfoNotAvailable:
		return cape.HessianInfoNotAvailable, none
	case hresult.ThrmPropertyNotAvailable:
		return cape.ThrmPropertyNotAvailable, none
	default:
		return cape.Unknown, none
	}
}

func position(caps Capabilities) payload {
	return func(b cape.ErrorBuilder) cape.ErrorBuilder {
		position := 0
		if caps.BadArgument != nil {
			position = read(caps.BadArgument.Position)
		}
		return b.Position(position)
	}
}

func bounds(caps Capabilities) payload {
	return func(b cape.ErrorBuilder) cape.ErrorBuilder {
		if caps.Boundaries == nil {
			return b.Bounds(0, 0, 0, "")
		}
		return b.Bounds(
			read(caps.Boundaries.LowerBound),
			read(caps.Boundaries.UpperBound),
			read(caps.Boundaries.Value),
			read(caps.Boundaries.Type),
		)
	}
}

// read calls a getter of a foreign component; a panicking getter reads as zero.
func read[T any](getter func() T) (value T) {
	defer func() {
		if r := recover(); r != nil {
			logger.Verbose("error interface getter panicked:", r)
		}
	}()
	return getter()
}
