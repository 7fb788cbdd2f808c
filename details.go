package cape

import "github.com/avila-r/cape/hresult"

// The interfaces below are the CAPE-OPEN error interfaces. A failing
// component may implement any subset of them; consumers must probe before
// reading kind-specific fields.

// Root is ECapeRoot.
type Root interface {
	Name() string
}

// Identification is ICapeIdentification, implemented by components rather than errors.
type Identification interface {
	ComponentName() string
	ComponentDescription() string
}

// User is ECapeUser, the generic error contract every kind shares.
type User interface {
	Code() hresult.HRESULT
	Description() string
	InterfaceName() string
	Scope() string
	Operation() string
	MoreInfo() string
}

// BadArgumentDetail is ECapeBadArgument.
type BadArgumentDetail interface {
	Position() int
}

// BoundariesDetail is ECapeBoundaries.
type BoundariesDetail interface {
	LowerBound() float64
	UpperBound() float64
	Value() float64
	Type() string
}

// BadInvOrderDetail is ECapeBadInvOrder.
type BadInvOrderDetail interface {
	RequestedOperation() string
}

// PersistenceNotFoundDetail is ECapePersistenceNotFound.
type PersistenceNotFoundDetail interface {
	ItemName() string
}
