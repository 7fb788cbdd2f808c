// Package com declares the COM shape of the CAPE-OPEN thermodynamic material
// interfaces: collections travel as variants, multi-output operations fill
// out-parameters, and nested material objects are opaque COM objects.
// Components resolve interfaces with thermo.Query and thermo.Unknown.
package com

import "github.com/avila-r/cape/variant"

// MaterialObject is ICapeThermoMaterialObject (1.0).
type MaterialObject interface {
	ComponentIds() (variant.Variant, error)
	PhaseIds() (variant.Variant, error)
	GetUniversalConstant(props variant.Variant) (variant.Variant, error)
	GetComponentConstant(props, compIds variant.Variant) (variant.Variant, error)
	CalcProp(props, phases variant.Variant, calcType string) error
	GetProp(property, phase string, compIds variant.Variant, calcType, basis string) (variant.Variant, error)
	SetProp(property, phase string, compIds variant.Variant, calcType, basis string, values variant.Variant) error
	CalcEquilibrium(flashType string, props variant.Variant) error
	SetIndependentVar(indVars, values variant.Variant) error
	GetIndependentVar(indVars variant.Variant) (variant.Variant, error)
	PropCheck(props variant.Variant) (variant.Variant, error)
	AvailableProps() (variant.Variant, error)
	RemoveResults(props variant.Variant) error
	CreateMaterialObject() (any, error)
	Duplicate() (any, error)
	ValidityCheck(props variant.Variant) (variant.Variant, error)
	GetNumComponents() (int32, error)
}

// Material is ICapeThermoMaterial (1.1).
type Material interface {
	ClearAllProps() error
	CopyFromMaterial(source any) error
	CreateMaterial() (any, error)
	GetOverallProp(property, basis string, results *variant.Variant) error
	GetOverallTPFraction(temperature, pressure *float64, composition *variant.Variant) error
	GetPresentPhases(phaseLabels, phaseStatus *variant.Variant) error
	GetSinglePhaseProp(property, phaseLabel, basis string, results *variant.Variant) error
	GetTPFraction(phaseLabel string, temperature, pressure *float64, composition *variant.Variant) error
	GetTwoPhaseProp(property string, phaseLabels variant.Variant, basis string, results *variant.Variant) error
	SetOverallProp(property, basis string, values variant.Variant) error
	SetPresentPhases(phaseLabels, phaseStatus variant.Variant) error
	SetSinglePhaseProp(property, phaseLabel, basis string, values variant.Variant) error
	SetTwoPhaseProp(property string, phaseLabels variant.Variant, basis string, values variant.Variant) error
}

// Compounds is ICapeThermoCompounds (1.1).
type Compounds interface {
	GetCompoundConstant(props, compIds variant.Variant) (variant.Variant, error)
	GetCompoundList(compIds, formulae, names, boilTemps, molwts, casnos *variant.Variant) error
	GetConstPropList() (variant.Variant, error)
	GetNumCompounds() (int32, error)
	GetPDependentProperty(props variant.Variant, pressure float64, compIds variant.Variant, propVals *variant.Variant) error
	GetPDependentPropList() (variant.Variant, error)
	GetTDependentProperty(props variant.Variant, temperature float64, compIds variant.Variant, propVals *variant.Variant) error
	GetTDependentPropList() (variant.Variant, error)
}

// Phases is ICapeThermoPhases (1.1).
type Phases interface {
	GetNumPhases() (int32, error)
	GetPhaseInfo(phaseLabel, phaseAttribute string) (variant.Variant, error)
	GetPhaseList(phaseLabels, stateOfAggregation, keyCompoundID *variant.Variant) error
}

// UniversalConstant is ICapeThermoUniversalConstant (1.1).
type UniversalConstant interface {
	GetUniversalConstant(constantID string) (variant.Variant, error)
	GetUniversalConstantList() (variant.Variant, error)
}

// PropertyRoutine is ICapeThermoPropertyRoutine (1.1). fFlags is the
// CalculationType bit set as a plain integer.
type PropertyRoutine interface {
	CalcAndGetLnPhi(phaseLabel string, temperature, pressure float64, moleNumbers variant.Variant, fFlags int32, lnPhi, lnPhiDT, lnPhiDP, lnPhiDn *variant.Variant) error
	CalcSinglePhaseProp(props variant.Variant, phaseLabel string) error
	CalcTwoPhaseProp(props, phaseLabels variant.Variant) error
	CheckSinglePhasePropSpec(property, phaseLabel string) (bool, error)
	CheckTwoPhasePropSpec(property string, phaseLabels variant.Variant) (bool, error)
	GetSinglePhasePropList() (variant.Variant, error)
	GetTwoPhasePropList() (variant.Variant, error)
}

// EquilibriumRoutine is ICapeThermoEquilibriumRoutine (1.1).
type EquilibriumRoutine interface {
	CalcEquilibrium(specification1, specification2 variant.Variant, solutionType string) error
	CheckEquilibriumSpec(specification1, specification2 variant.Variant, solutionType string) (bool, error)
}
