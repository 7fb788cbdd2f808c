package adapter

import (
	"github.com/avila-r/cape/thermo"
	"github.com/avila-r/cape/variant"
)

// The 1.1 routine interfaces are gated on the 1.1 generation flag and on the
// native component implementing the interface itself.

// COMCompounds is the ICapeThermoCompounds view of a COMObject.
type COMCompounds struct {
	o *COMObject
}

func (v *COMCompounds) begin(operation string) (thermo.Compounds, call, bool) {
	c := v.o.call(thermo.ICompounds, operation)
	if !v.o.v11 || v.o.compounds == nil {
		c.unsupported()
		return nil, c, false
	}
	return v.o.compounds, c, true
}

func (v *COMCompounds) GetCompoundConstant(props, compIds variant.Variant) (variant.Variant, error) {
	native, c, ok := v.begin("GetCompoundConstant")
	if !ok {
		return variant.Variant{}, nil
	}

	names, err := narrow(c, 1, props, variant.Variant.Strings)
	if err != nil {
		return variant.Variant{}, err
	}
	ids, err := narrow(c, 2, compIds, variant.Variant.Strings)
	if err != nil {
		return variant.Variant{}, err
	}

	values, err := native.GetCompoundConstant(names, ids)
	if err != nil {
		return variant.Variant{}, c.failure(err)
	}

	result, err := variant.OfValues(values)
	if err != nil {
		return variant.Variant{}, c.result(err)
	}
	return result, nil
}

func (v *COMCompounds) GetCompoundList(compIds, formulae, names, boilTemps, molwts, casnos *variant.Variant) error {
	native, c, ok := v.begin("GetCompoundList")
	if !ok {
		return nil
	}

	for position, out := range []*variant.Variant{compIds, formulae, names, boilTemps, molwts, casnos} {
		if err := c.pointer(position+1, out); err != nil {
			return err
		}
	}

	list, err := native.GetCompoundList()
	if err != nil {
		return c.failure(err)
	}

	*compIds = variant.OfStrings(list.IDs)
	*formulae = variant.OfStrings(list.Formulae)
	*names = variant.OfStrings(list.Names)
	*boilTemps = variant.OfDoubles(list.BoilTemps)
	*molwts = variant.OfDoubles(list.MolWts)
	*casnos = variant.OfStrings(list.CASNos)
	return nil
}

func (v *COMCompounds) GetConstPropList() (variant.Variant, error) {
	native, c, ok := v.begin("GetConstPropList")
	if !ok {
		return variant.Variant{}, nil
	}

	props, err := native.GetConstPropList()
	if err != nil {
		return variant.Variant{}, c.failure(err)
	}
	return variant.OfStrings(props), nil
}

func (v *COMCompounds) GetNumCompounds() (int32, error) {
	native, c, ok := v.begin("GetNumCompounds")
	if !ok {
		return 0, nil
	}

	n, err := native.GetNumCompounds()
	if err != nil {
		return 0, c.failure(err)
	}
	return int32(n), nil
}

func (v *COMCompounds) GetPDependentProperty(props variant.Variant, pressure float64, compIds variant.Variant, propVals *variant.Variant) error {
	native, c, ok := v.begin("GetPDependentProperty")
	if !ok {
		return nil
	}

	names, err := narrow(c, 1, props, variant.Variant.Strings)
	if err != nil {
		return err
	}
	ids, err := narrow(c, 3, compIds, variant.Variant.Strings)
	if err != nil {
		return err
	}
	if err := c.pointer(4, propVals); err != nil {
		return err
	}

	values, err := native.GetPDependentProperty(names, pressure, ids)
	if err != nil {
		return c.failure(err)
	}
	*propVals = variant.OfDoubles(values)
	return nil
}

func (v *COMCompounds) GetPDependentPropList() (variant.Variant, error) {
	native, c, ok := v.begin("GetPDependentPropList")
	if !ok {
		return variant.Variant{}, nil
	}

	props, err := native.GetPDependentPropList()
	if err != nil {
		return variant.Variant{}, c.failure(err)
	}
	return variant.OfStrings(props), nil
}

func (v *COMCompounds) GetTDependentProperty(props variant.Variant, temperature float64, compIds variant.Variant, propVals *variant.Variant) error {
	native, c, ok := v.begin("GetTDependentProperty")
	if !ok {
		return nil
	}

	names, err := narrow(c, 1, props, variant.Variant.Strings)
	if err != nil {
		return err
	}
	ids, err := narrow(c, 3, compIds, variant.Variant.Strings)
	if err != nil {
		return err
	}
	if err := c.pointer(4, propVals); err != nil {
		return err
	}

	values, err := native.GetTDependentProperty(names, temperature, ids)
	if err != nil {
		return c.failure(err)
	}
	*propVals = variant.OfDoubles(values)
	return nil
}

func (v *COMCompounds) GetTDependentPropList() (variant.Variant, error) {
	native, c, ok := v.begin("GetTDependentPropList")
	if !ok {
		return variant.Variant{}, nil
	}

	props, err := native.GetTDependentPropList()
	if err != nil {
		return variant.Variant{}, c.failure(err)
	}
	return variant.OfStrings(props), nil
}

// COMPhases is the ICapeThermoPhases view of a COMObject.
type COMPhases struct {
	o *COMObject
}

func (v *COMPhases) begin(operation string) (thermo.Phases, call, bool) {
	c := v.o.call(thermo.IPhases, operation)
	if !v.o.v11 || v.o.phases == nil {
		c.unsupported()
		return nil, c, false
	}
	return v.o.phases, c, true
}

func (v *COMPhases) GetNumPhases() (int32, error) {
	native, c, ok := v.begin("GetNumPhases")
	if !ok {
		return 0, nil
	}

	n, err := native.GetNumPhases()
	if err != nil {
		return 0, c.failure(err)
	}
	return int32(n), nil
}

func (v *COMPhases) GetPhaseInfo(phaseLabel, phaseAttribute string) (variant.Variant, error) {
	native, c, ok := v.begin("GetPhaseInfo")
	if !ok {
		return variant.Variant{}, nil
	}

	info, err := native.GetPhaseInfo(phaseLabel, phaseAttribute)
	if err != nil {
		return variant.Variant{}, c.failure(err)
	}

	result, err := variant.From(info)
	if err != nil {
		return variant.Variant{}, c.result(err)
	}
	return result, nil
}

func (v *COMPhases) GetPhaseList(phaseLabels, stateOfAggregation, keyCompoundID *variant.Variant) error {
	native, c, ok := v.begin("GetPhaseList")
	if !ok {
		return nil
	}

	for position, out := range []*variant.Variant{phaseLabels, stateOfAggregation, keyCompoundID} {
		if err := c.pointer(position+1, out); err != nil {
			return err
		}
	}

	list, err := native.GetPhaseList()
	if err != nil {
		return c.failure(err)
	}

	*phaseLabels = variant.OfStrings(list.Labels)
	*stateOfAggregation = variant.OfStrings(list.StateOfAggregation)
	*keyCompoundID = variant.OfStrings(list.KeyCompoundIDs)
	return nil
}

// COMUniversalConstant is the ICapeThermoUniversalConstant view of a COMObject.
type COMUniversalConstant struct {
	o *COMObject
}

func (v *COMUniversalConstant) begin(operation string) (thermo.UniversalConstant, call, bool) {
	c := v.o.call(thermo.IUniversalConstant, operation)
	if !v.o.v11 || v.o.constants == nil {
		c.unsupported()
		return nil, c, false
	}
	return v.o.constants, c, true
}

func (v *COMUniversalConstant) GetUniversalConstant(constantID string) (variant.Variant, error) {
	native, c, ok := v.begin("GetUniversalConstant")
	if !ok {
		return variant.Variant{}, nil
	}

	value, err := native.GetUniversalConstant(constantID)
	if err != nil {
		return variant.Variant{}, c.failure(err)
	}

	result, err := variant.From(value)
	if err != nil {
		return variant.Variant{}, c.result(err)
	}
	return result, nil
}

func (v *COMUniversalConstant) GetUniversalConstantList() (variant.Variant, error) {
	native, c, ok := v.begin("GetUniversalConstantList")
	if !ok {
		return variant.Variant{}, nil
	}

	ids, err := native.GetUniversalConstantList()
	if err != nil {
		return variant.Variant{}, c.failure(err)
	}
	return variant.OfStrings(ids), nil
}

// COMPropertyRoutine is the ICapeThermoPropertyRoutine view of a COMObject.
type COMPropertyRoutine struct {
	o *COMObject
}

func (v *COMPropertyRoutine) begin(operation string) (thermo.PropertyRoutine, call, bool) {
	c := v.o.call(thermo.IPropertyRoutine, operation)
	if !v.o.v11 || v.o.properties == nil {
		c.unsupported()
		return nil, c, false
	}
	return v.o.properties, c, true
}

// CalcAndGetLnPhi decodes fFlags with DecodeCalculationType. Outputs the
// flags did not request are left empty.
func (v *COMPropertyRoutine) CalcAndGetLnPhi(phaseLabel string, temperature, pressure float64, moleNumbers variant.Variant, fFlags int32, lnPhi, lnPhiDT, lnPhiDP, lnPhiDn *variant.Variant) error {
	native, c, ok := v.begin("CalcAndGetLnPhi")
	if !ok {
		return nil
	}

	moles, err := narrow(c, 4, moleNumbers, variant.Variant.Doubles)
	if err != nil {
		return err
	}
	flags, err := DecodeCalculationType(fFlags)
	if err != nil {
		return c.argument(5, err)
	}
	for position, out := range []*variant.Variant{lnPhi, lnPhiDT, lnPhiDP, lnPhiDn} {
		if err := c.pointer(position+6, out); err != nil {
			return err
		}
	}

	result, err := native.CalcAndGetLnPhi(phaseLabel, temperature, pressure, moles, flags)
	if err != nil {
		return c.failure(err)
	}

	*lnPhi = optional(result.LnPhi)
	*lnPhiDT = optional(result.LnPhiDT)
	*lnPhiDP = optional(result.LnPhiDP)
	*lnPhiDn = optional(result.LnPhiDn)
	return nil
}

func optional(values []float64) variant.Variant {
	if values == nil {
		return variant.Variant{}
	}
	return variant.OfDoubles(values)
}

func (v *COMPropertyRoutine) CalcSinglePhaseProp(props variant.Variant, phaseLabel string) error {
	native, c, ok := v.begin("CalcSinglePhaseProp")
	if !ok {
		return nil
	}

	names, err := narrow(c, 1, props, variant.Variant.Strings)
	if err != nil {
		return err
	}

	if err := native.CalcSinglePhaseProp(names, phaseLabel); err != nil {
		return c.failure(err)
	}
	return nil
}

func (v *COMPropertyRoutine) CalcTwoPhaseProp(props, phaseLabels variant.Variant) error {
	native, c, ok := v.begin("CalcTwoPhaseProp")
	if !ok {
		return nil
	}

	names, err := narrow(c, 1, props, variant.Variant.Strings)
	if err != nil {
		return err
	}
	labels, err := narrow(c, 2, phaseLabels, variant.Variant.Strings)
	if err != nil {
		return err
	}

	if err := native.CalcTwoPhaseProp(names, labels); err != nil {
		return c.failure(err)
	}
	return nil
}

func (v *COMPropertyRoutine) CheckSinglePhasePropSpec(property, phaseLabel string) (bool, error) {
	native, c, ok := v.begin("CheckSinglePhasePropSpec")
	if !ok {
		return false, nil
	}

	valid, err := native.CheckSinglePhasePropSpec(property, phaseLabel)
	if err != nil {
		return false, c.failure(err)
	}
	return valid, nil
}

func (v *COMPropertyRoutine) CheckTwoPhasePropSpec(property string, phaseLabels variant.Variant) (bool, error) {
	native, c, ok := v.begin("CheckTwoPhasePropSpec")
	if !ok {
		return false, nil
	}

	labels, err := narrow(c, 2, phaseLabels, variant.Variant.Strings)
	if err != nil {
		return false, err
	}

	valid, err := native.CheckTwoPhasePropSpec(property, labels)
	if err != nil {
		return false, c.failure(err)
	}
	return valid, nil
}

func (v *COMPropertyRoutine) GetSinglePhasePropList() (variant.Variant, error) {
	native, c, ok := v.begin("GetSinglePhasePropList")
	if !ok {
		return variant.Variant{}, nil
	}

	props, err := native.GetSinglePhasePropList()
	if err != nil {
		return variant.Variant{}, c.failure(err)
	}
	return variant.OfStrings(props), nil
}

func (v *COMPropertyRoutine) GetTwoPhasePropList() (variant.Variant, error) {
	native, c, ok := v.begin("GetTwoPhasePropList")
	if !ok {
		return variant.Variant{}, nil
	}

	props, err := native.GetTwoPhasePropList()
	if err != nil {
		return variant.Variant{}, c.failure(err)
	}
	return variant.OfStrings(props), nil
}

// COMEquilibriumRoutine is the ICapeThermoEquilibriumRoutine view of a COMObject.
type COMEquilibriumRoutine struct {
	o *COMObject
}

func (v *COMEquilibriumRoutine) begin(operation string) (thermo.EquilibriumRoutine, call, bool) {
	c := v.o.call(thermo.IEquilibriumRoutine, operation)
	if !v.o.v11 || v.o.equilibrium == nil {
		c.unsupported()
		return nil, c, false
	}
	return v.o.equilibrium, c, true
}

func (v *COMEquilibriumRoutine) CalcEquilibrium(specification1, specification2 variant.Variant, solutionType string) error {
	native, c, ok := v.begin("CalcEquilibrium")
	if !ok {
		return nil
	}

	spec1, err := narrow(c, 1, specification1, variant.Variant.Strings)
	if err != nil {
		return err
	}
	spec2, err := narrow(c, 2, specification2, variant.Variant.Strings)
	if err != nil {
		return err
	}

	if err := native.CalcEquilibrium(spec1, spec2, solutionType); err != nil {
		return c.failure(err)
	}
	return nil
}

func (v *COMEquilibriumRoutine) CheckEquilibriumSpec(specification1, specification2 variant.Variant, solutionType string) (bool, error) {
	native, c, ok := v.begin("CheckEquilibriumSpec")
	if !ok {
		return false, nil
	}

	spec1, err := narrow(c, 1, specification1, variant.Variant.Strings)
	if err != nil {
		return false, err
	}
	spec2, err := narrow(c, 2, specification2, variant.Variant.Strings)
	if err != nil {
		return false, err
	}

	valid, err := native.CheckEquilibriumSpec(spec1, spec2, solutionType)
	if err != nil {
		return false, c.failure(err)
	}
	return valid, nil
}
