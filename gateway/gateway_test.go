package gateway_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/untillpro/goutils/logger"

	"github.com/avila-r/cape"
	"github.com/avila-r/cape/gateway"
	"github.com/avila-r/cape/hresult"
	"github.com/avila-r/cape/property"
)

// userError implements ECapeUser only.
type userError struct {
	code        hresult.HRESULT
	description string
	iface       string
	scope       string
	operation   string
	moreInfo    string
}

func (e userError) Error() string { return "component failure " + e.code.Hex() }
func (e userError) Code() hresult.HRESULT { return e.code }
func (e userError) Description() string { return e.description }
func (e userError) InterfaceName() string { return e.iface }
func (e userError) Scope() string { return e.scope }
func (e userError) Operation() string { return e.operation }
func (e userError) MoreInfo() string { return e.moreInfo }

type boundsError struct {
	userError
	lower, upper, value float64
	kind                string
}

func (e boundsError) LowerBound() float64 { return e.lower }
func (e boundsError) UpperBound() float64 { return e.upper }
func (e boundsError) Value() float64      { return e.value }
func (e boundsError) Type() string        { return e.kind }

type positionedBoundsError struct {
	boundsError
	position int
}

func (e positionedBoundsError) Position() int { return e.position }

type invOrderError struct {
	userError
	operation string
}

func (e invOrderError) RequestedOperation() string { return e.operation }

type notFoundError struct {
	userError
	item string
}

func (e notFoundError) ItemName() string { return e.item }

type panickyError struct {
	userError
}

func (e panickyError) Position() int { panic("released") }

type namedError struct {
	userError
	name string
}

func (e namedError) Name() string { return e.name }

type rootComponent struct{ name string }

func (c rootComponent) Name() string { return c.name }

type identifiedComponent struct{ name string }

func (c identifiedComponent) ComponentName() string        { return c.name }
func (c identifiedComponent) ComponentDescription() string { return "thermo package" }

func Test_TranslateEveryCode(t *testing.T) {
	for _, code := range hresult.CapeOpen() {
		t.Run(code.String(), func(t *testing.T) {
			require := require.New(t)

			err := gateway.Translate(nil, userError{code: code, description: "failure"})
			require.NotNil(err)

			class, ok := cape.Lookup(code)
			require.True(ok)
			require.Same(class, err.Class())
			require.Equal(code, err.Code())
			require.Equal("failure", err.Description())
		})
	}
}

func Test_TranslateUnrecognised(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		description string
	}{
		{"OutsideRange", userError{code: hresult.HRESULT(-2147220000), description: "odd"}, "odd"},
		{"COMCode", userError{code: hresult.E_FAIL, description: "failed"}, "failed"},
		{"Success", userError{code: hresult.S_OK}, "component failure 0x00000000"},
		{"Foreign", errors.New("plain"), "plain"},
		{"COMError", hresult.New(hresult.E_OUTOFMEMORY, "allocation"), "allocation (0x8007000E)"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := gateway.Translate(nil, test.err)
			require.NotNil(t, err)
			require.Same(t, cape.Unknown, err.Class())
			require.Equal(t, test.description, err.Description())
			require.Equal(t, test.err, errors.Unwrap(err))
		})
	}
}

func Test_TranslateNil(t *testing.T) {
	require.Nil(t, gateway.Translate(rootComponent{"x"}, nil))
}

func Test_DefaultPayload(t *testing.T) {
	require := require.New(t)

	// A failure carrying 0x80040507 with no ECapeBoundaries behind it.
	err := gateway.Translate(nil, userError{code: hresult.OutOfBounds, description: "too hot"})

	require.True(err.Extends(cape.OutOfBounds))
	require.Zero(err.Position())
	require.Zero(err.LowerBound())
	require.Zero(err.UpperBound())
	require.Zero(err.Value())
	require.Empty(err.Type())
	for _, key := range []string{property.Position, property.LowerBound, property.UpperBound, property.Value, property.Type} {
		require.True(cape.Contains(err, key), key)
	}

	order := gateway.Translate(nil, userError{code: hresult.BadInvOrder})
	require.Empty(order.RequestedOperation())
	require.True(cape.Contains(order, property.RequestedOperation))

	missing := gateway.Translate(nil, userError{code: hresult.PersistenceNotFound})
	require.Empty(missing.ItemName())
	require.True(cape.Contains(missing, property.ItemName))

	argument := gateway.Translate(nil, userError{code: hresult.InvalidArgument})
	require.Zero(argument.Position())
	require.True(cape.Contains(argument, property.Position))
}

func Test_Payload(t *testing.T) {
	t.Run("Bounds", func(t *testing.T) {
		require := require.New(t)

		inner := boundsError{
			userError: userError{code: hresult.OutOfBounds},
			lower:     200, upper: 400, value: 512, kind: "temperature",
		}
		err := gateway.Translate(nil, inner)
		require.Equal(200.0, err.LowerBound())
		require.Equal(400.0, err.UpperBound())
		require.Equal(512.0, err.Value())
		require.Equal("temperature", err.Type())
		require.Zero(err.Position())
	})

	t.Run("BoundsAndPosition", func(t *testing.T) {
		require := require.New(t)

		inner := positionedBoundsError{
			boundsError: boundsError{userError: userError{code: hresult.OutOfBounds}, lower: 0, upper: 1, value: 2, kind: "fraction"},
			position:    3,
		}
		err := gateway.Translate(nil, inner)
		require.Equal(3, err.Position())
		require.Equal(1.0, err.UpperBound())
	})

	t.Run("PersistenceOverflow", func(t *testing.T) {
		inner := boundsError{userError: userError{code: hresult.PersistenceOverflow}, upper: 64, value: 65, kind: "bytes"}
		err := gateway.Translate(nil, inner)
		require.Equal(t, 64.0, err.UpperBound())
		require.Equal(t, "bytes", err.Type())
	})

	t.Run("BadInvOrder", func(t *testing.T) {
		inner := invOrderError{userError: userError{code: hresult.BadInvOrder}, operation: "CalcEquilibrium"}
		require.Equal(t, "CalcEquilibrium", gateway.Translate(nil, inner).RequestedOperation())
	})

	t.Run("PersistenceNotFound", func(t *testing.T) {
		inner := notFoundError{userError: userError{code: hresult.PersistenceNotFound}, item: "composition"}
		require.Equal(t, "composition", gateway.Translate(nil, inner).ItemName())
	})
}

func Test_PanickingGetter(t *testing.T) {
	require := require.New(t)

	inner := panickyError{userError{code: hresult.BadArgument, description: "bad"}}

	var err *cape.Error
	require.NotPanics(func() { err = gateway.Translate(nil, inner) })
	require.True(err.Extends(cape.BadArgument))
	require.Zero(err.Position())
}

func Test_UserFields(t *testing.T) {
	require := require.New(t)

	inner := userError{
		code:        hresult.SolvingError,
		description: "flash did not converge",
		iface:       "ICapeThermoEquilibriumRoutine",
		scope:       "PengRobinson",
		operation:   "CalcEquilibrium",
		moreInfo:    "https://www.colan.org",
	}
	err := gateway.Translate(nil, inner)

	require.Equal("flash did not converge", err.Description())
	require.Equal("ICapeThermoEquilibriumRoutine", err.InterfaceName())
	require.Equal("PengRobinson", err.Scope())
	require.Equal("CalcEquilibrium", err.Operation())
	require.Equal("https://www.colan.org", err.MoreInfo())
	require.Equal(inner, errors.Unwrap(err))
}

func Test_DescriptionVerbatim(t *testing.T) {
	logger.SetLogLevel(logger.LogLevelVerbose)
	defer logger.SetLogLevel(logger.LogLevelInfo)

	tests := []struct {
		name     string
		inner    error
		expected string
	}{
		{
			name:     "User",
			inner:    userError{code: hresult.OutOfBounds, description: "x = 100% of %d moles %s"},
			expected: "x = 100% of %d moles %s",
		},
		{
			name:     "Fallback",
			inner:    hresult.New(hresult.SolvingError, "converged to 5%"),
			expected: "converged to 5% (0x80040510)",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := gateway.Translate(nil, test.inner)
			require.Equal(t, test.expected, err.Description())
			require.Contains(t, cape.Inspect(err), test.expected)
		})
	}
}

func Test_Name(t *testing.T) {
	inner := userError{code: hresult.NoImpl}
	named := namedError{userError: inner, name: "ErrorFromPackage"}

	tests := []struct {
		name     string
		source   any
		inner    error
		expected string
	}{
		{"SourceRoot", rootComponent{"Flash"}, named, "Flash"},
		{"SourceIdentification", identifiedComponent{"PengRobinson"}, named, "PengRobinson"},
		{"EmptySourceName", rootComponent{""}, named, "ErrorFromPackage"},
		{"ErrorRoot", nil, named, "ErrorFromPackage"},
		{"Fallback", struct{}{}, inner, gateway.Fallback},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := gateway.Translate(test.source, test.inner)
			if err.Name() != test.expected {
				t.Errorf("expected %v, got %v", test.expected, err.Name())
			}
		})
	}
}

func Test_PackageErrors(t *testing.T) {
	require := require.New(t)

	inner := cape.OutOfBounds.Builder().
		Message("fraction out of range").
		Bounds(0, 1, 1.5, "mole fraction").
		Position(3).
		Build()

	err := gateway.Translate(nil, inner)
	require.NotSame(inner, err)
	require.Same(inner, err.Cause)
	require.True(err.Extends(cape.OutOfBounds))
	require.Equal(3, err.Position())
	require.Equal(1.5, err.Value())
	require.Equal("fraction out of range", err.Description())

	wrapped := fmt.Errorf("material: %w", cape.BadInvOrder.Builder().
		Message("not ready").
		RequestedOperation("SetPresentPhases").
		Build())
	translated := gateway.Translate(nil, wrapped)
	require.True(translated.Extends(cape.BadInvOrder))
	require.Equal("SetPresentPhases", translated.RequestedOperation())
}

func Test_Probe(t *testing.T) {
	require := require.New(t)

	caps := gateway.Probe(nil, rootComponent{"a"}, namedError{name: "b"}, boundsError{})
	require.Equal("a", caps.Root.Name())
	require.NotNil(caps.User)
	require.NotNil(caps.Boundaries)
	require.Nil(caps.BadArgument)
	require.Nil(caps.Identification)
	require.Nil(caps.BadInvOrder)
	require.Nil(caps.PersistenceNotFound)
}
