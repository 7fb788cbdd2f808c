package cape

import (
	"github.com/avila-r/cape/hresult"
	"github.com/avila-r/cape/modifier"
	"github.com/avila-r/cape/trait"
)

var (
	// CapeOpen is the namespace of the standard's error kinds. Every class
	// declared here is bound to its CAPE-OPEN HRESULT.
	CapeOpen = Namespace("cape")

	// Unknown is the fallback for codes outside the standard.
	Unknown = CapeOpen.Class("unknown").Bind(hresult.Unknown, "ECapeUnknown")

	Data           = CapeOpen.Class("data").Bind(hresult.Data, "ECapeData")
	LicenceError   = Data.Class("licence").Bind(hresult.LicenceError, "ECapeLicenceError")
	BadCOParameter = Data.Class("bad_co_parameter").Bind(hresult.BadCOParameter, "ECapeBadCOParameter")

	// BadArgument and its subclasses carry the 1-based argument position.
	BadArgument     = Data.Class("bad_argument", trait.Argument()).Bind(hresult.BadArgument, "ECapeBadArgument")
	InvalidArgument = BadArgument.Class("invalid").Bind(hresult.InvalidArgument, "ECapeInvalidArgument")
	// OutOfBounds carries bounds, offending value and its type besides the position.
	OutOfBounds = BadArgument.Class("out_of_bounds", trait.Boundaries()).Bind(hresult.OutOfBounds, "ECapeOutOfBounds")

	Implementation = CapeOpen.Class("implementation").Bind(hresult.Implementation, "ECapeImplementation")
	NoImpl         = Implementation.Class("no_impl").Bind(hresult.NoImpl, "ECapeNoImpl")
	LimitedImpl    = Implementation.Class("limited_impl").Bind(hresult.LimitedImpl, "ECapeLimitedImpl")

	Computation          = CapeOpen.Class("computation").Bind(hresult.Computation, "ECapeComputation")
	OutOfResources       = Computation.Class("out_of_resources").Bind(hresult.OutOfResources, "ECapeOutOfResources")
	NoMemory             = OutOfResources.Class("no_memory").Bind(hresult.NoMemory, "ECapeNoMemory")
	TimeOut              = Computation.Class("timeout", trait.Timeout()).Bind(hresult.TimeOut, "ECapeTimeOut")
	FailedInitialisation = Computation.Class("failed_initialisation").Bind(hresult.FailedInitialisation, "ECapeFailedInitialisation")
	SolvingError         = Computation.Class("solving_error").Bind(hresult.SolvingError, "ECapeSolvingError")
	// BadInvOrder carries the name of the operation that has to be called first.
	BadInvOrder             = Computation.Class("bad_invocation_order").Bind(hresult.BadInvOrder, "ECapeBadInvOrder")
	InvalidOperation        = Computation.Class("invalid_operation").Bind(hresult.InvalidOperation, "ECapeInvalidOperation")
	OutsideSolverScope      = Computation.Class("outside_solver_scope").Bind(hresult.OutsideSolverScope, "ECapeOutsideSolverScope")
	HessianInfoNotAvailable = Computation.Class("hessian_info_not_available").Bind(hresult.HessianInfoNotAvailable, "ECapeHessianInfoNotAvailable")

	Persistence   = CapeOpen.Class("persistence", trait.Persistence()).Bind(hresult.Persistence, "ECapePersistence")
	IllegalAccess = Persistence.Class("illegal_access").Bind(hresult.IllegalAccess, "ECapeIllegalAccess")
	// PersistenceNotFound carries the name of the missing item.
	PersistenceNotFound    = Persistence.Class("not_found").Bind(hresult.PersistenceNotFound, "ECapePersistenceNotFound")
	PersistenceSystemError = Persistence.Class("system_error").Bind(hresult.PersistenceSystemError, "ECapePersistenceSystemError")
	PersistenceOverflow    = Persistence.Class("overflow", trait.Boundaries()).Bind(hresult.PersistenceOverflow, "ECapePersistenceOverflow")

	ThrmPropertyNotAvailable = CapeOpen.Class("thrm_property_not_available").Bind(hresult.ThrmPropertyNotAvailable, "ECapeThrmPropertyNotAvailable")
)

// Classes outside the CAPE-OPEN code space. They bind no HRESULT.
var (
	synthetic = Namespace("synthetic")

	// foreignType is what Class reports for a wrapper with no bound class
	// below it.
	foreignType = synthetic.Class("foreign")

	// transparentWrapper backs Decorate: a message on top, class and payload
	// from the cause.
	transparentWrapper = synthetic.Class("decorate").Apply(modifier.ClassModifierTransparent)
)
