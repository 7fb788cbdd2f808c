package adapter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avila-r/cape"
	"github.com/avila-r/cape/adapter"
	"github.com/avila-r/cape/thermo"
)

func Test_DecodeCalculationType(t *testing.T) {
	tests := []struct {
		name     string
		flags    int32
		expected thermo.CalculationType
	}{
		{"None", 0, thermo.NoCalculation},
		{"LogFugacity", 1, thermo.LogFugacityCoefficients},
		{"TDerivative", 2, thermo.TDerivative},
		{"PDerivative", 4, thermo.PDerivative},
		{"MoleNumbers", 8, thermo.MoleNumbersDerivatives},
		{"LogFugacityAndMoleNumbers", 9, thermo.LogFugacityCoefficients | thermo.MoleNumbersDerivatives},
		{"WithoutPDerivative", 11, thermo.LogFugacityCoefficients | thermo.MoleNumbersDerivatives | thermo.TDerivative},
		{"All", 15, thermo.LogFugacityCoefficients | thermo.TDerivative | thermo.PDerivative | thermo.MoleNumbersDerivatives},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			flags, err := adapter.DecodeCalculationType(test.flags)
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if flags != test.expected {
				t.Errorf("expected %v, got %v", test.expected, flags)
			}
		})
	}
}

func Test_CalculationTypeRoundTrip(t *testing.T) {
	require := require.New(t)

	for combination := int32(0); combination < 16; combination++ {
		flags, err := adapter.DecodeCalculationType(combination)
		require.NoError(err)
		require.Equal(combination, adapter.EncodeCalculationType(flags), flags.String())

		require.Equal(combination&1 != 0, flags.Has(thermo.LogFugacityCoefficients))
		require.Equal(combination&2 != 0, flags.Has(thermo.TDerivative))
		require.Equal(combination&4 != 0, flags.Has(thermo.PDerivative))
		require.Equal(combination&8 != 0, flags.Has(thermo.MoleNumbersDerivatives))
	}
}

func Test_CalculationTypeRange(t *testing.T) {
	for _, flags := range []int32{-1, 16, 31, 1 << 20} {
		_, err := adapter.DecodeCalculationType(flags)
		require.Error(t, err)
		require.True(t, cape.Extends(err, cape.InvalidArgument))
	}
}

func Test_PhaseStatusRoundTrip(t *testing.T) {
	tests := []struct {
		status  thermo.PhaseStatus
		encoded int32
	}{
		{thermo.PhaseStatusUnknown, 0},
		{thermo.AtEquilibrium, 1},
		{thermo.Estimates, 2},
	}

	for _, test := range tests {
		t.Run(test.status.String(), func(t *testing.T) {
			require := require.New(t)

			encoded, err := adapter.EncodePhaseStatus(test.status)
			require.NoError(err)
			require.Equal(test.encoded, encoded)

			decoded, err := adapter.DecodePhaseStatus(encoded)
			require.NoError(err)
			require.Equal(test.status, decoded)
		})
	}

	_, err := adapter.DecodePhaseStatus(3)
	require.True(t, cape.Extends(err, cape.InvalidArgument))

	_, err = adapter.EncodePhaseStatus(thermo.PhaseStatus(-1))
	require.True(t, cape.Extends(err, cape.InvalidArgument))
}
