package adapter

import (
	"github.com/avila-r/cape/thermo"
	"github.com/avila-r/cape/variant"
)

// COMMaterialObject is the ICapeThermoMaterialObject (1.0) view of a COMObject.
type COMMaterialObject struct {
	o *COMObject
}

func (m *COMMaterialObject) begin(operation string) (thermo.MaterialObject, call, bool) {
	c := m.o.call(thermo.IMaterialObject, operation)
	if !m.o.v10 || m.o.materialObject == nil {
		c.unsupported()
		return nil, c, false
	}
	return m.o.materialObject, c, true
}

func (m *COMMaterialObject) ComponentIds() (variant.Variant, error) {
	native, c, ok := m.begin("ComponentIds")
	if !ok {
		return variant.Variant{}, nil
	}

	ids, err := native.ComponentIds()
	if err != nil {
		return variant.Variant{}, c.failure(err)
	}
	return variant.OfStrings(ids), nil
}

func (m *COMMaterialObject) PhaseIds() (variant.Variant, error) {
	native, c, ok := m.begin("PhaseIds")
	if !ok {
		return variant.Variant{}, nil
	}

	ids, err := native.PhaseIds()
	if err != nil {
		return variant.Variant{}, c.failure(err)
	}
	return variant.OfStrings(ids), nil
}

func (m *COMMaterialObject) GetUniversalConstant(props variant.Variant) (variant.Variant, error) {
	native, c, ok := m.begin("GetUniversalConstant")
	if !ok {
		return variant.Variant{}, nil
	}

	names, err := narrow(c, 1, props, variant.Variant.Strings)
	if err != nil {
		return variant.Variant{}, err
	}

	values, err := native.GetUniversalConstant(names)
	if err != nil {
		return variant.Variant{}, c.failure(err)
	}

	result, err := variant.OfValues(values)
	if err != nil {
		return variant.Variant{}, c.result(err)
	}
	return result, nil
}

func (m *COMMaterialObject) GetComponentConstant(props, compIds variant.Variant) (variant.Variant, error) {
	native, c, ok := m.begin("GetComponentConstant")
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

	values, err := native.GetComponentConstant(names, ids)
	if err != nil {
		return variant.Variant{}, c.failure(err)
	}

	result, err := variant.OfValues(values)
	if err != nil {
		return variant.Variant{}, c.result(err)
	}
	return result, nil
}

func (m *COMMaterialObject) CalcProp(props, phases variant.Variant, calcType string) error {
	native, c, ok := m.begin("CalcProp")
	if !ok {
		return nil
	}

	names, err := narrow(c, 1, props, variant.Variant.Strings)
	if err != nil {
		return err
	}
	labels, err := narrow(c, 2, phases, variant.Variant.Strings)
	if err != nil {
		return err
	}

	if err := native.CalcProp(names, labels, calcType); err != nil {
		return c.failure(err)
	}
	return nil
}

func (m *COMMaterialObject) GetProp(property, phase string, compIds variant.Variant, calcType, basis string) (variant.Variant, error) {
	native, c, ok := m.begin("GetProp")
	if !ok {
		return variant.Variant{}, nil
	}

	ids, err := narrow(c, 3, compIds, variant.Variant.Strings)
	if err != nil {
		return variant.Variant{}, err
	}

	values, err := native.GetProp(property, phase, ids, calcType, basis)
	if err != nil {
		return variant.Variant{}, c.failure(err)
	}
	return variant.OfDoubles(values), nil
}

// SetProp takes the numeric array from values, never from compIds.
func (m *COMMaterialObject) SetProp(property, phase string, compIds variant.Variant, calcType, basis string, values variant.Variant) error {
	native, c, ok := m.begin("SetProp")
	if !ok {
		return nil
	}

	ids, err := narrow(c, 3, compIds, variant.Variant.Strings)
	if err != nil {
		return err
	}
	numbers, err := narrow(c, 6, values, variant.Variant.Doubles)
	if err != nil {
		return err
	}

	if err := native.SetProp(property, phase, ids, calcType, basis, numbers); err != nil {
		return c.failure(err)
	}
	return nil
}

func (m *COMMaterialObject) CalcEquilibrium(flashType string, props variant.Variant) error {
	native, c, ok := m.begin("CalcEquilibrium")
	if !ok {
		return nil
	}

	names, err := narrow(c, 2, props, variant.Variant.Strings)
	if err != nil {
		return err
	}

	if err := native.CalcEquilibrium(flashType, names); err != nil {
		return c.failure(err)
	}
	return nil
}

func (m *COMMaterialObject) SetIndependentVar(indVars, values variant.Variant) error {
	native, c, ok := m.begin("SetIndependentVar")
	if !ok {
		return nil
	}

	names, err := narrow(c, 1, indVars, variant.Variant.Strings)
	if err != nil {
		return err
	}
	numbers, err := narrow(c, 2, values, variant.Variant.Doubles)
	if err != nil {
		return err
	}

	if err := native.SetIndependentVar(names, numbers); err != nil {
		return c.failure(err)
	}
	return nil
}

func (m *COMMaterialObject) GetIndependentVar(indVars variant.Variant) (variant.Variant, error) {
	native, c, ok := m.begin("GetIndependentVar")
	if !ok {
		return variant.Variant{}, nil
	}

	names, err := narrow(c, 1, indVars, variant.Variant.Strings)
	if err != nil {
		return variant.Variant{}, err
	}

	values, err := native.GetIndependentVar(names)
	if err != nil {
		return variant.Variant{}, c.failure(err)
	}
	return variant.OfDoubles(values), nil
}

func (m *COMMaterialObject) PropCheck(props variant.Variant) (variant.Variant, error) {
	native, c, ok := m.begin("PropCheck")
	if !ok {
		return variant.Variant{}, nil
	}

	names, err := narrow(c, 1, props, variant.Variant.Strings)
	if err != nil {
		return variant.Variant{}, err
	}

	checks, err := native.PropCheck(names)
	if err != nil {
		return variant.Variant{}, c.failure(err)
	}
	return variant.OfBools(checks), nil
}

func (m *COMMaterialObject) AvailableProps() (variant.Variant, error) {
	native, c, ok := m.begin("AvailableProps")
	if !ok {
		return variant.Variant{}, nil
	}

	props, err := native.AvailableProps()
	if err != nil {
		return variant.Variant{}, c.failure(err)
	}
	return variant.OfStrings(props), nil
}

func (m *COMMaterialObject) RemoveResults(props variant.Variant) error {
	native, c, ok := m.begin("RemoveResults")
	if !ok {
		return nil
	}

	names, err := narrow(c, 1, props, variant.Variant.Strings)
	if err != nil {
		return err
	}

	if err := native.RemoveResults(names); err != nil {
		return c.failure(err)
	}
	return nil
}

// CreateMaterialObject returns a new COMObject owned by the caller.
func (m *COMMaterialObject) CreateMaterialObject() (any, error) {
	native, c, ok := m.begin("CreateMaterialObject")
	if !ok {
		return nil, nil
	}

	created, err := native.CreateMaterialObject()
	if err != nil {
		return nil, c.failure(err)
	}
	return toCOM(created), nil
}

// Duplicate returns a new COMObject owned by the caller.
func (m *COMMaterialObject) Duplicate() (any, error) {
	native, c, ok := m.begin("Duplicate")
	if !ok {
		return nil, nil
	}

	duplicate, err := native.Duplicate()
	if err != nil {
		return nil, c.failure(err)
	}
	return toCOM(duplicate), nil
}

func (m *COMMaterialObject) ValidityCheck(props variant.Variant) (variant.Variant, error) {
	native, c, ok := m.begin("ValidityCheck")
	if !ok {
		return variant.Variant{}, nil
	}

	names, err := narrow(c, 1, props, variant.Variant.Strings)
	if err != nil {
		return variant.Variant{}, err
	}

	validities, err := native.ValidityCheck(names)
	if err != nil {
		return variant.Variant{}, c.failure(err)
	}
	return variant.OfInts(encodeValidities(validities)), nil
}

func (m *COMMaterialObject) GetNumComponents() (int32, error) {
	native, c, ok := m.begin("GetNumComponents")
	if !ok {
		return 0, nil
	}

	n, err := native.GetNumComponents()
	if err != nil {
		return 0, c.failure(err)
	}
	return int32(n), nil
}
