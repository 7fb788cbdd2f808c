package adapter

import (
	"github.com/avila-r/cape/com"
	"github.com/avila-r/cape/thermo"
	"github.com/avila-r/cape/variant"
)

// NativeMaterialObject is the thermo.MaterialObject view of a NativeObject.
type NativeMaterialObject struct {
	o *NativeObject
}

func (m *NativeMaterialObject) begin(operation string) (com.MaterialObject, call, bool) {
	c := m.o.call(thermo.IMaterialObject, operation)
	if !m.o.v10 || m.o.materialObject == nil {
		c.unsupported()
		return nil, c, false
	}
	return m.o.materialObject, c, true
}

func (m *NativeMaterialObject) ComponentIds() ([]string, error) {
	target, c, ok := m.begin("ComponentIds")
	if !ok {
		return nil, nil
	}

	ids, err := target.ComponentIds()
	if err != nil {
		return nil, c.failure(err)
	}
	return unbox(c, ids, variant.Variant.Strings)
}

func (m *NativeMaterialObject) PhaseIds() ([]string, error) {
	target, c, ok := m.begin("PhaseIds")
	if !ok {
		return nil, nil
	}

	ids, err := target.PhaseIds()
	if err != nil {
		return nil, c.failure(err)
	}
	return unbox(c, ids, variant.Variant.Strings)
}

func (m *NativeMaterialObject) GetUniversalConstant(props []string) ([]any, error) {
	target, c, ok := m.begin("GetUniversalConstant")
	if !ok {
		return nil, nil
	}

	values, err := target.GetUniversalConstant(variant.OfStrings(props))
	if err != nil {
		return nil, c.failure(err)
	}
	return unbox(c, values, variant.Variant.Values)
}

func (m *NativeMaterialObject) GetComponentConstant(props, compIds []string) ([]any, error) {
	target, c, ok := m.begin("GetComponentConstant")
	if !ok {
		return nil, nil
	}

	values, err := target.GetComponentConstant(variant.OfStrings(props), variant.OfStrings(compIds))
	if err != nil {
		return nil, c.failure(err)
	}
	return unbox(c, values, variant.Variant.Values)
}

func (m *NativeMaterialObject) CalcProp(props, phases []string, calcType string) error {
	target, c, ok := m.begin("CalcProp")
	if !ok {
		return nil
	}

	if err := target.CalcProp(variant.OfStrings(props), variant.OfStrings(phases), calcType); err != nil {
		return c.failure(err)
	}
	return nil
}

func (m *NativeMaterialObject) GetProp(property, phase string, compIds []string, calcType, basis string) ([]float64, error) {
	target, c, ok := m.begin("GetProp")
	if !ok {
		return nil, nil
	}

	values, err := target.GetProp(property, phase, variant.OfStrings(compIds), calcType, basis)
	if err != nil {
		return nil, c.failure(err)
	}
	return unbox(c, values, variant.Variant.Doubles)
}

func (m *NativeMaterialObject) SetProp(property, phase string, compIds []string, calcType, basis string, values []float64) error {
	target, c, ok := m.begin("SetProp")
	if !ok {
		return nil
	}

	err := target.SetProp(property, phase, variant.OfStrings(compIds), calcType, basis, variant.OfDoubles(values))
	if err != nil {
		return c.failure(err)
	}
	return nil
}

func (m *NativeMaterialObject) CalcEquilibrium(flashType string, props []string) error {
	target, c, ok := m.begin("CalcEquilibrium")
	if !ok {
		return nil
	}

	if err := target.CalcEquilibrium(flashType, variant.OfStrings(props)); err != nil {
		return c.failure(err)
	}
	return nil
}

func (m *NativeMaterialObject) SetIndependentVar(indVars []string, values []float64) error {
	target, c, ok := m.begin("SetIndependentVar")
	if !ok {
		return nil
	}

	if err := target.SetIndependentVar(variant.OfStrings(indVars), variant.OfDoubles(values)); err != nil {
		return c.failure(err)
	}
	return nil
}

func (m *NativeMaterialObject) GetIndependentVar(indVars []string) ([]float64, error) {
	target, c, ok := m.begin("GetIndependentVar")
	if !ok {
		return nil, nil
	}

	values, err := target.GetIndependentVar(variant.OfStrings(indVars))
	if err != nil {
		return nil, c.failure(err)
	}
	return unbox(c, values, variant.Variant.Doubles)
}

func (m *NativeMaterialObject) PropCheck(props []string) ([]bool, error) {
	target, c, ok := m.begin("PropCheck")
	if !ok {
		return nil, nil
	}

	checks, err := target.PropCheck(variant.OfStrings(props))
	if err != nil {
		return nil, c.failure(err)
	}
	return unbox(c, checks, variant.Variant.Bools)
}

func (m *NativeMaterialObject) AvailableProps() ([]string, error) {
	target, c, ok := m.begin("AvailableProps")
	if !ok {
		return nil, nil
	}

	props, err := target.AvailableProps()
	if err != nil {
		return nil, c.failure(err)
	}
	return unbox(c, props, variant.Variant.Strings)
}

func (m *NativeMaterialObject) RemoveResults(props []string) error {
	target, c, ok := m.begin("RemoveResults")
	if !ok {
		return nil
	}

	if err := target.RemoveResults(variant.OfStrings(props)); err != nil {
		return c.failure(err)
	}
	return nil
}

// CreateMaterialObject returns a new NativeObject owned by the caller.
func (m *NativeMaterialObject) CreateMaterialObject() (any, error) {
	target, c, ok := m.begin("CreateMaterialObject")
	if !ok {
		return nil, nil
	}

	created, err := target.CreateMaterialObject()
	if err != nil {
		return nil, c.failure(err)
	}
	return toNative(created), nil
}

// Duplicate returns a new NativeObject owned by the caller.
func (m *NativeMaterialObject) Duplicate() (any, error) {
	target, c, ok := m.begin("Duplicate")
	if !ok {
		return nil, nil
	}

	duplicate, err := target.Duplicate()
	if err != nil {
		return nil, c.failure(err)
	}
	return toNative(duplicate), nil
}

func (m *NativeMaterialObject) ValidityCheck(props []string) ([]thermo.Validity, error) {
	target, c, ok := m.begin("ValidityCheck")
	if !ok {
		return nil, nil
	}

	result, err := target.ValidityCheck(variant.OfStrings(props))
	if err != nil {
		return nil, c.failure(err)
	}

	encoded, err := unbox(c, result, variant.Variant.Ints)
	if err != nil {
		return nil, err
	}
	validities, err := decodeValidities(encoded)
	if err != nil {
		return nil, c.result(err)
	}
	return validities, nil
}

func (m *NativeMaterialObject) GetNumComponents() (int, error) {
	target, c, ok := m.begin("GetNumComponents")
	if !ok {
		return 0, nil
	}

	n, err := target.GetNumComponents()
	if err != nil {
		return 0, c.failure(err)
	}
	return int(n), nil
}
