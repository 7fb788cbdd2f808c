package hresult

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// HRESULT is a 32-bit COM status code. Negative values signal failure.
type HRESULT int32

// Coder is implemented by errors that carry a COM status code.
type Coder interface {
	HResult() int32
}

const (
	S_OK          HRESULT = 0
	E_NOTIMPL     HRESULT = -2147467263 // 0x80004001
	E_POINTER     HRESULT = -2147467261 // 0x80004003
	E_FAIL        HRESULT = -2147467259 // 0x80004005
	E_OUTOFMEMORY HRESULT = -2147024882 // 0x8007000E
	E_INVALIDARG  HRESULT = -2147024809 // 0x80070057
)

// CAPE-OPEN error codes. The values are fixed by the standard.
const (
	Unknown HRESULT = -2147220223 + iota // 0x80040501
	Data
	LicenceError
	BadCOParameter
	BadArgument
	InvalidArgument
	OutOfBounds
	Implementation
	NoImpl
	LimitedImpl
	Computation
	OutOfResources
	NoMemory
	TimeOut
	FailedInitialisation
	SolvingError
	BadInvOrder
	InvalidOperation
	Persistence
	IllegalAccess
	PersistenceNotFound
	PersistenceSystemError
	PersistenceOverflow
	OutsideSolverScope
	HessianInfoNotAvailable
	ThrmPropertyNotAvailable // 0x8004051A
)

var names = map[HRESULT]string{
	S_OK:                     "S_OK",
	E_NOTIMPL:                "E_NOTIMPL",
	E_POINTER:                "E_POINTER",
	E_FAIL:                   "E_FAIL",
	E_OUTOFMEMORY:            "E_OUTOFMEMORY",
	E_INVALIDARG:             "E_INVALIDARG",
	Unknown:                  "ECapeUnknownHR",
	Data:                     "ECapeDataHR",
	LicenceError:             "ECapeLicenceErrorHR",
	BadCOParameter:           "ECapeBadCOParameterHR",
	BadArgument:              "ECapeBadArgumentHR",
	InvalidArgument:          "ECapeInvalidArgumentHR",
	OutOfBounds:              "ECapeOutOfBoundsHR",
	Implementation:           "ECapeImplementationHR",
	NoImpl:                   "ECapeNoImplHR",
	LimitedImpl:              "ECapeLimitedImplHR",
	Computation:              "ECapeComputationHR",
	OutOfResources:           "ECapeOutOfResourcesHR",
	NoMemory:                 "ECapeNoMemoryHR",
	TimeOut:                  "ECapeTimeOutHR",
	FailedInitialisation:     "ECapeFailedInitialisationHR",
	SolvingError:             "ECapeSolvingErrorHR",
	BadInvOrder:              "ECapeBadInvOrderHR",
	InvalidOperation:         "ECapeInvalidOperationHR",
	Persistence:              "ECapePersistenceHR",
	IllegalAccess:            "ECapeIllegalAccessHR",
	PersistenceNotFound:      "ECapePersistenceNotFoundHR",
	PersistenceSystemError:   "ECapePersistenceSystemErrorHR",
	PersistenceOverflow:      "ECapePersistenceOverflowHR",
	OutsideSolverScope:       "ECapeOutsideSolverScopeHR",
	HessianInfoNotAvailable:  "ECapeHessianInfoNotAvailableHR",
	ThrmPropertyNotAvailable: "ECapeThrmPropertyNotAvailableHR",
}

// Failed reports whether h signals a failure.
func (h HRESULT) Failed() bool {
	return h < 0
}

// Succeeded reports whether h signals success.
func (h HRESULT) Succeeded() bool {
	return h >= 0
}

// IsCapeOpen reports whether h belongs to the CAPE-OPEN code range.
func (h HRESULT) IsCapeOpen() bool {
	return h >= Unknown && h <= ThrmPropertyNotAvailable
}

// Hex renders h the way COM tooling prints it, e.g. 0x80040507.
func (h HRESULT) Hex() string {
	return fmt.Sprintf("0x%08X", uint32(h))
}

func (h HRESULT) String() string {
	if name, ok := names[h]; ok {
		return name
	}
	return h.Hex()
}

// HResult implements Coder.
func (h HRESULT) HResult() int32 {
	return int32(h)
}

// Error makes a bare code usable as an error value.
func (h HRESULT) Error() string {
	return h.String() + " (" + h.Hex() + ")"
}

// CapeOpen returns every CAPE-OPEN code in ascending order.
func CapeOpen() []HRESULT {
	codes := make([]HRESULT, 0, ThrmPropertyNotAvailable-Unknown+1)
	for h := Unknown; h <= ThrmPropertyNotAvailable; h++ {
		codes = append(codes, h)
	}
	return codes
}

// FromError extracts the status code of the first error in the chain that
// implements Coder. Errors without a code report E_FAIL, nil reports S_OK.
func FromError(err error) HRESULT {
	if err == nil {
		return S_OK
	}

	var coder Coder
	if errors.As(err, &coder) {
		return HRESULT(coder.HResult())
	}

	return E_FAIL
}

// Parse accepts hexadecimal (0x80040507), unsigned decimal (2147747079),
// signed decimal (-2147220217) and symbolic (ECapeOutOfBoundsHR) forms.
func Parse(s string) (HRESULT, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty code")
	}

	for h, name := range names {
		if strings.EqualFold(name, s) || strings.EqualFold(strings.TrimSuffix(name, "HR"), s) {
			return h, nil
		}
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "0x") {
		v, err := strconv.ParseUint(lower[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("parse %q: %w", s, err)
		}
		return HRESULT(int32(uint32(v))), nil
	}

	if strings.HasPrefix(s, "-") {
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("parse %q: %w", s, err)
		}
		return HRESULT(v), nil
	}

	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	return HRESULT(int32(uint32(v))), nil
}

// Error wraps a bare status code with a message, the way a COM runtime
// surfaces a failed call.
type Error struct {
	Code    HRESULT
	Message string
}

func New(code HRESULT, message string) *Error {
	return &Error{Code: code, Message: message}
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code.Error()
	}
	return e.Message + " (" + e.Code.Hex() + ")"
}

// HResult implements Coder.
func (e *Error) HResult() int32 {
	return int32(e.Code)
}
