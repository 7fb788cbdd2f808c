package thermo

import "strings"

// PhaseStatus qualifies the conditions of a present phase.
type PhaseStatus int

const (
	PhaseStatusUnknown PhaseStatus = iota
	AtEquilibrium
	Estimates
)

func (s PhaseStatus) String() string {
	switch s {
	case PhaseStatusUnknown:
		return "CAPE_UNKNOWNPHASESTATUS"
	case AtEquilibrium:
		return "CAPE_ATEQUILIBRIUM"
	case Estimates:
		return "CAPE_ESTIMATES"
	default:
		return "PhaseStatus(?)"
	}
}

// CalculationType selects what CalcAndGetLnPhi computes. Flags combine.
type CalculationType int

const (
	NoCalculation           CalculationType = 0
	LogFugacityCoefficients CalculationType = 1
	TDerivative             CalculationType = 2
	PDerivative             CalculationType = 4
	MoleNumbersDerivatives  CalculationType = 8
)

// Has reports whether every flag of f is set in c.
func (c CalculationType) Has(f CalculationType) bool {
	return c&f == f
}

func (c CalculationType) String() string {
	if c == NoCalculation {
		return "CAPE_NO_CALCULATION"
	}

	var parts []string
	for _, f := range []struct {
		flag CalculationType
		name string
	}{
		{LogFugacityCoefficients, "CAPE_LOG_FUGACITY_COEFFICIENTS"},
		{TDerivative, "CAPE_T_DERIVATIVE"},
		{PDerivative, "CAPE_P_DERIVATIVE"},
		{MoleNumbersDerivatives, "CAPE_MOLE_NUMBERS_DERIVATIVES"},
	} {
		if c.Has(f.flag) {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}

// Validity is the outcome of a 1.0 ValidityCheck.
type Validity int

const (
	Valid Validity = iota
	Invalid
	ValidityUnknown
)
