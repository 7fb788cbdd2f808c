package adapter

import (
	"github.com/avila-r/cape/com"
	"github.com/avila-r/cape/thermo"
	"github.com/avila-r/cape/variant"
)

// NativeCompounds is the thermo.Compounds view of a NativeObject.
type NativeCompounds struct {
	o *NativeObject
}

func (v *NativeCompounds) begin(operation string) (com.Compounds, call, bool) {
	c := v.o.call(thermo.ICompounds, operation)
	if !v.o.v11 || v.o.compounds == nil {
		c.unsupported()
		return nil, c, false
	}
	return v.o.compounds, c, true
}

func (v *NativeCompounds) GetCompoundConstant(props, compIds []string) ([]any, error) {
	target, c, ok := v.begin("GetCompoundConstant")
	if !ok {
		return nil, nil
	}

	values, err := target.GetCompoundConstant(variant.OfStrings(props), variant.OfStrings(compIds))
	if err != nil {
		return nil, c.failure(err)
	}
	return unbox(c, values, variant.Variant.Values)
}

func (v *NativeCompounds) GetCompoundList() (thermo.CompoundList, error) {
	target, c, ok := v.begin("GetCompoundList")
	if !ok {
		return thermo.CompoundList{}, nil
	}

	var ids, formulae, names, boilTemps, molwts, casnos variant.Variant
	if err := target.GetCompoundList(&ids, &formulae, &names, &boilTemps, &molwts, &casnos); err != nil {
		return thermo.CompoundList{}, c.failure(err)
	}

	var (
		list thermo.CompoundList
		err  error
	)
	if list.IDs, err = unbox(c, ids, variant.Variant.Strings); err != nil {
		return thermo.CompoundList{}, err
	}
	if list.Formulae, err = unbox(c, formulae, variant.Variant.Strings); err != nil {
		return thermo.CompoundList{}, err
	}
	if list.Names, err = unbox(c, names, variant.Variant.Strings); err != nil {
		return thermo.CompoundList{}, err
	}
	if list.BoilTemps, err = unbox(c, boilTemps, variant.Variant.Doubles); err != nil {
		return thermo.CompoundList{}, err
	}
	if list.MolWts, err = unbox(c, molwts, variant.Variant.Doubles); err != nil {
		return thermo.CompoundList{}, err
	}
	if list.CASNos, err = unbox(c, casnos, variant.Variant.Strings); err != nil {
		return thermo.CompoundList{}, err
	}
	return list, nil
}

func (v *NativeCompounds) GetConstPropList() ([]string, error) {
	target, c, ok := v.begin("GetConstPropList")
	if !ok {
		return nil, nil
	}

	props, err := target.GetConstPropList()
	if err != nil {
		return nil, c.failure(err)
	}
	return unbox(c, props, variant.Variant.Strings)
}

func (v *NativeCompounds) GetNumCompounds() (int, error) {
	target, c, ok := v.begin("GetNumCompounds")
	if !ok {
		return 0, nil
	}

	n, err := target.GetNumCompounds()
	if err != nil {
		return 0, c.failure(err)
	}
	return int(n), nil
}

func (v *NativeCompounds) GetPDependentProperty(props []string, pressure float64, compIds []string) ([]float64, error) {
	target, c, ok := v.begin("GetPDependentProperty")
	if !ok {
		return nil, nil
	}

	var values variant.Variant
	err := target.GetPDependentProperty(variant.OfStrings(props), pressure, variant.OfStrings(compIds), &values)
	if err != nil {
		return nil, c.failure(err)
	}
	return unbox(c, values, variant.Variant.Doubles)
}

func (v *NativeCompounds) GetPDependentPropList() ([]string, error) {
	target, c, ok := v.begin("GetPDependentPropList")
	if !ok {
		return nil, nil
	}

	props, err := target.GetPDependentPropList()
	if err != nil {
		return nil, c.failure(err)
	}
	return unbox(c, props, variant.Variant.Strings)
}

func (v *NativeCompounds) GetTDependentProperty(props []string, temperature float64, compIds []string) ([]float64, error) {
	target, c, ok := v.begin("GetTDependentProperty")
	if !ok {
		return nil, nil
	}

	var values variant.Variant
	err := target.GetTDependentProperty(variant.OfStrings(props), temperature, variant.OfStrings(compIds), &values)
	if err != nil {
		return nil, c.failure(err)
	}
	return unbox(c, values, variant.Variant.Doubles)
}

func (v *NativeCompounds) GetTDependentPropList() ([]string, error) {
	target, c, ok := v.begin("GetTDependentPropList")
	if !ok {
		return nil, nil
	}

	props, err := target.GetTDependentPropList()
	if err != nil {
		return nil, c.failure(err)
	}
	return unbox(c, props, variant.Variant.Strings)
}

// NativePhases is the thermo.Phases view of a NativeObject.
type NativePhases struct {
	o *NativeObject
}

func (v *NativePhases) begin(operation string) (com.Phases, call, bool) {
	c := v.o.call(thermo.IPhases, operation)
	if !v.o.v11 || v.o.phases == nil {
		c.unsupported()
		return nil, c, false
	}
	return v.o.phases, c, true
}

func (v *NativePhases) GetNumPhases() (int, error) {
	target, c, ok := v.begin("GetNumPhases")
	if !ok {
		return 0, nil
	}

	n, err := target.GetNumPhases()
	if err != nil {
		return 0, c.failure(err)
	}
	return int(n), nil
}

func (v *NativePhases) GetPhaseInfo(phaseLabel, phaseAttribute string) (any, error) {
	target, c, ok := v.begin("GetPhaseInfo")
	if !ok {
		return nil, nil
	}

	info, err := target.GetPhaseInfo(phaseLabel, phaseAttribute)
	if err != nil {
		return nil, c.failure(err)
	}
	return info.Interface(), nil
}

func (v *NativePhases) GetPhaseList() (thermo.PhaseList, error) {
	target, c, ok := v.begin("GetPhaseList")
	if !ok {
		return thermo.PhaseList{}, nil
	}

	var labels, aggregation, keys variant.Variant
	if err := target.GetPhaseList(&labels, &aggregation, &keys); err != nil {
		return thermo.PhaseList{}, c.failure(err)
	}

	var (
		list thermo.PhaseList
		err  error
	)
	if list.Labels, err = unbox(c, labels, variant.Variant.Strings); err != nil {
		return thermo.PhaseList{}, err
	}
	if list.StateOfAggregation, err = unbox(c, aggregation, variant.Variant.Strings); err != nil {
		return thermo.PhaseList{}, err
	}
	if list.KeyCompoundIDs, err = unbox(c, keys, variant.Variant.Strings); err != nil {
		return thermo.PhaseList{}, err
	}
	return list, nil
}

// NativeUniversalConstant is the thermo.UniversalConstant view of a NativeObject.
type NativeUniversalConstant struct {
	o *NativeObject
}

func (v *NativeUniversalConstant) begin(operation string) (com.UniversalConstant, call, bool) {
	c := v.o.call(thermo.IUniversalConstant, operation)
	if !v.o.v11 || v.o.constants == nil {
		c.unsupported()
		return nil, c, false
	}
	return v.o.constants, c, true
}

func (v *NativeUniversalConstant) GetUniversalConstant(constantID string) (any, error) {
	target, c, ok := v.begin("GetUniversalConstant")
	if !ok {
		return nil, nil
	}

	value, err := target.GetUniversalConstant(constantID)
	if err != nil {
		return nil, c.failure(err)
	}
	return value.Interface(), nil
}

func (v *NativeUniversalConstant) GetUniversalConstantList() ([]string, error) {
	target, c, ok := v.begin("GetUniversalConstantList")
	if !ok {
		return nil, nil
	}

	ids, err := target.GetUniversalConstantList()
	if err != nil {
		return nil, c.failure(err)
	}
	return unbox(c, ids, variant.Variant.Strings)
}

// NativePropertyRoutine is the thermo.PropertyRoutine view of a NativeObject.
type NativePropertyRoutine struct {
	o *NativeObject
}

func (v *NativePropertyRoutine) begin(operation string) (com.PropertyRoutine, call, bool) {
	c := v.o.call(thermo.IPropertyRoutine, operation)
	if !v.o.v11 || v.o.properties == nil {
		c.unsupported()
		return nil, c, false
	}
	return v.o.properties, c, true
}

func (v *NativePropertyRoutine) CalcAndGetLnPhi(phaseLabel string, temperature, pressure float64, moleNumbers []float64, flags thermo.CalculationType) (thermo.LnPhi, error) {
	target, c, ok := v.begin("CalcAndGetLnPhi")
	if !ok {
		return thermo.LnPhi{}, nil
	}

	var lnPhi, lnPhiDT, lnPhiDP, lnPhiDn variant.Variant
	err := target.CalcAndGetLnPhi(phaseLabel, temperature, pressure, variant.OfDoubles(moleNumbers),
		EncodeCalculationType(flags), &lnPhi, &lnPhiDT, &lnPhiDP, &lnPhiDn)
	if err != nil {
		return thermo.LnPhi{}, c.failure(err)
	}

	var result thermo.LnPhi
	if result.LnPhi, err = unbox(c, lnPhi, variant.Variant.Doubles); err != nil {
		return thermo.LnPhi{}, err
	}
	if result.LnPhiDT, err = unbox(c, lnPhiDT, variant.Variant.Doubles); err != nil {
		return thermo.LnPhi{}, err
	}
	if result.LnPhiDP, err = unbox(c, lnPhiDP, variant.Variant.Doubles); err != nil {
		return thermo.LnPhi{}, err
	}
	if result.LnPhiDn, err = unbox(c, lnPhiDn, variant.Variant.Doubles); err != nil {
		return thermo.LnPhi{}, err
	}
	return result, nil
}

func (v *NativePropertyRoutine) CalcSinglePhaseProp(props []string, phaseLabel string) error {
	target, c, ok := v.begin("CalcSinglePhaseProp")
	if !ok {
		return nil
	}

	if err := target.CalcSinglePhaseProp(variant.OfStrings(props), phaseLabel); err != nil {
		return c.failure(err)
	}
	return nil
}

func (v *NativePropertyRoutine) CalcTwoPhaseProp(props, phaseLabels []string) error {
	target, c, ok := v.begin("CalcTwoPhaseProp")
	if !ok {
		return nil
	}

	if err := target.CalcTwoPhaseProp(variant.OfStrings(props), variant.OfStrings(phaseLabels)); err != nil {
		return c.failure(err)
	}
	return nil
}

func (v *NativePropertyRoutine) CheckSinglePhasePropSpec(property, phaseLabel string) (bool, error) {
	target, c, ok := v.begin("CheckSinglePhasePropSpec")
	if !ok {
		return false, nil
	}

	valid, err := target.CheckSinglePhasePropSpec(property, phaseLabel)
	if err != nil {
		return false, c.failure(err)
	}
	return valid, nil
}

func (v *NativePropertyRoutine) CheckTwoPhasePropSpec(property string, phaseLabels []string) (bool, error) {
	target, c, ok := v.begin("CheckTwoPhasePropSpec")
	if !ok {
		return false, nil
	}

	valid, err := target.CheckTwoPhasePropSpec(property, variant.OfStrings(phaseLabels))
	if err != nil {
		return false, c.failure(err)
	}
	return valid, nil
}

func (v *NativePropertyRoutine) GetSinglePhasePropList() ([]string, error) {
	target, c, ok := v.begin("GetSinglePhasePropList")
	if !ok {
		return nil, nil
	}

	props, err := target.GetSinglePhasePropList()
	if err != nil {
		return nil, c.failure(err)
	}
	return unbox(c, props, variant.Variant.Strings)
}

func (v *NativePropertyRoutine) GetTwoPhasePropList() ([]string, error) {
	target, c, ok := v.begin("GetTwoPhasePropList")
	if !ok {
		return nil, nil
	}

	props, err := target.GetTwoPhasePropList()
	if err != nil {
		return nil, c.failure(err)
	}
	return unbox(c, props, variant.Variant.Strings)
}

// NativeEquilibriumRoutine is the thermo.EquilibriumRoutine view of a NativeObject.
type NativeEquilibriumRoutine struct {
	o *NativeObject
}

func (v *NativeEquilibriumRoutine) begin(operation string) (com.EquilibriumRoutine, call, bool) {
	c := v.o.call(thermo.IEquilibriumRoutine, operation)
	if !v.o.v11 || v.o.equilibrium == nil {
		c.unsupported()
		return nil, c, false
	}
	return v.o.equilibrium, c, true
}

func (v *NativeEquilibriumRoutine) CalcEquilibrium(specification1, specification2 []string, solutionType string) error {
	target, c, ok := v.begin("CalcEquilibrium")
	if !ok {
		return nil
	}

	err := target.CalcEquilibrium(variant.OfStrings(specification1), variant.OfStrings(specification2), solutionType)
	if err != nil {
		return c.failure(err)
	}
	return nil
}

func (v *NativeEquilibriumRoutine) CheckEquilibriumSpec(specification1, specification2 []string, solutionType string) (bool, error) {
	target, c, ok := v.begin("CheckEquilibriumSpec")
	if !ok {
		return false, nil
	}

	valid, err := target.CheckEquilibriumSpec(variant.OfStrings(specification1), variant.OfStrings(specification2), solutionType)
	if err != nil {
		return false, c.failure(err)
	}
	return valid, nil
}
