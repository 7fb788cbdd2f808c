package adapter

import (
	"github.com/avila-r/cape"
	"github.com/avila-r/cape/thermo"
)

// COM encoding of thermo.PhaseStatus.
const (
	comPhaseStatusUnknown       int32 = 0
	comPhaseStatusAtEquilibrium int32 = 1
	comPhaseStatusEstimates     int32 = 2
)

// EncodePhaseStatus maps a native phase status to its COM integer.
func EncodePhaseStatus(status thermo.PhaseStatus) (int32, error) {
	switch status {
	case thermo.PhaseStatusUnknown:
		return comPhaseStatusUnknown, nil
	case thermo.AtEquilibrium:
		return comPhaseStatusAtEquilibrium, nil
	case thermo.Estimates:
		return comPhaseStatusEstimates, nil
	default:
		return 0, cape.InvalidArgument.New("phase status %d has no COM encoding", int(status))
	}
}

// DecodePhaseStatus maps a COM integer to the native phase status.
func DecodePhaseStatus(status int32) (thermo.PhaseStatus, error) {
	switch status {
	case comPhaseStatusUnknown:
		return thermo.PhaseStatusUnknown, nil
	case comPhaseStatusAtEquilibrium:
		return thermo.AtEquilibrium, nil
	case comPhaseStatusEstimates:
		return thermo.Estimates, nil
	default:
		return 0, cape.InvalidArgument.New("phase status %d is not one of 0, 1, 2", status)
	}
}

func encodePhaseStatuses(statuses []thermo.PhaseStatus) ([]int32, error) {
	out := make([]int32, len(statuses))
	for i, status := range statuses {
		encoded, err := EncodePhaseStatus(status)
		if err != nil {
			return nil, err
		}
		out[i] = encoded
	}
	return out, nil
}

func decodePhaseStatuses(statuses []int32) ([]thermo.PhaseStatus, error) {
	out := make([]thermo.PhaseStatus, len(statuses))
	for i, status := range statuses {
		decoded, err := DecodePhaseStatus(status)
		if err != nil {
			return nil, err
		}
		out[i] = decoded
	}
	return out, nil
}

// DecodeCalculationType converts the COM fFlags integer into the native flag
// set. Bits are matched from the highest (8) down to the lowest (1), each
// matched bit being subtracted before the next test; flags above 15 are rejected.
func DecodeCalculationType(flags int32) (thermo.CalculationType, error) {
	if flags < 0 || flags > 15 {
		return 0, cape.InvalidArgument.New("calculation type %d is outside 0..15", flags)
	}

	decoded := thermo.NoCalculation
	for _, bit := range []struct {
		value int32
		flag  thermo.CalculationType
	}{
		{8, thermo.MoleNumbersDerivatives},
		{4, thermo.PDerivative},
		{2, thermo.TDerivative},
		{1, thermo.LogFugacityCoefficients},
	} {
		if flags >= bit.value {
			decoded |= bit.flag
			flags -= bit.value
		}
	}

	return decoded, nil
}

// EncodeCalculationType converts the native flag set into the COM fFlags integer.
func EncodeCalculationType(flags thermo.CalculationType) int32 {
	var encoded int32
	if flags.Has(thermo.LogFugacityCoefficients) {
		encoded += 1
	}
	if flags.Has(thermo.TDerivative) {
		encoded += 2
	}
	if flags.Has(thermo.PDerivative) {
		encoded += 4
	}
	if flags.Has(thermo.MoleNumbersDerivatives) {
		encoded += 8
	}
	return encoded
}

func encodeValidities(validities []thermo.Validity) []int32 {
	out := make([]int32, len(validities))
	for i, validity := range validities {
		out[i] = int32(validity)
	}
	return out
}

func decodeValidities(validities []int32) ([]thermo.Validity, error) {
	out := make([]thermo.Validity, len(validities))
	for i, validity := range validities {
		switch v := thermo.Validity(validity); v {
		case thermo.Valid, thermo.Invalid, thermo.ValidityUnknown:
			out[i] = v
		default:
			return nil, cape.InvalidArgument.New("validity %d is not one of 0, 1, 2", validity)
		}
	}
	return out, nil
}
