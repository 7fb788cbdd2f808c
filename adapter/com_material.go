package adapter

import (
	"github.com/avila-r/cape/thermo"
	"github.com/avila-r/cape/variant"
)

// COMMaterial is the ICapeThermoMaterial (1.1) view of a COMObject.
type COMMaterial struct {
	o *COMObject
}

func (m *COMMaterial) begin(operation string) (thermo.Material, call, bool) {
	c := m.o.call(thermo.IMaterial, operation)
	if !m.o.v11 || m.o.material == nil {
		c.unsupported()
		return nil, c, false
	}
	return m.o.material, c, true
}

func (m *COMMaterial) ClearAllProps() error {
	native, c, ok := m.begin("ClearAllProps")
	if !ok {
		return nil
	}

	if err := native.ClearAllProps(); err != nil {
		return c.failure(err)
	}
	return nil
}

// CopyFromMaterial accepts either another COMObject, whose native component is
// passed on, or any other COM material, which is wrapped in a NativeObject.
func (m *COMMaterial) CopyFromMaterial(source any) error {
	native, c, ok := m.begin("CopyFromMaterial")
	if !ok {
		return nil
	}

	if source == nil {
		return c.argument(1, errNilMaterial)
	}

	if err := native.CopyFromMaterial(toNative(source)); err != nil {
		return c.failure(err)
	}
	return nil
}

// CreateMaterial returns a new COMObject owned by the caller.
func (m *COMMaterial) CreateMaterial() (any, error) {
	native, c, ok := m.begin("CreateMaterial")
	if !ok {
		return nil, nil
	}

	created, err := native.CreateMaterial()
	if err != nil {
		return nil, c.failure(err)
	}
	return toCOM(created), nil
}

func (m *COMMaterial) GetOverallProp(property, basis string, results *variant.Variant) error {
	native, c, ok := m.begin("GetOverallProp")
	if !ok {
		return nil
	}

	if err := c.pointer(3, results); err != nil {
		return err
	}

	values, err := native.GetOverallProp(property, basis)
	if err != nil {
		return c.failure(err)
	}
	*results = variant.OfDoubles(values)
	return nil
}

func (m *COMMaterial) GetOverallTPFraction(temperature, pressure *float64, composition *variant.Variant) error {
	native, c, ok := m.begin("GetOverallTPFraction")
	if !ok {
		return nil
	}

	for position, out := range []any{temperature, pressure, composition} {
		if err := c.pointer(position+1, out); err != nil {
			return err
		}
	}

	t, p, x, err := native.GetOverallTPFraction()
	if err != nil {
		return c.failure(err)
	}
	*temperature, *pressure, *composition = t, p, variant.OfDoubles(x)
	return nil
}

// GetPresentPhases reports statuses as 0 (unknown), 1 (at equilibrium), 2 (estimates).
func (m *COMMaterial) GetPresentPhases(phaseLabels, phaseStatus *variant.Variant) error {
	native, c, ok := m.begin("GetPresentPhases")
	if !ok {
		return nil
	}

	for position, out := range []any{phaseLabels, phaseStatus} {
		if err := c.pointer(position+1, out); err != nil {
			return err
		}
	}

	labels, statuses, err := native.GetPresentPhases()
	if err != nil {
		return c.failure(err)
	}

	encoded, err := encodePhaseStatuses(statuses)
	if err != nil {
		return c.result(err)
	}
	*phaseLabels, *phaseStatus = variant.OfStrings(labels), variant.OfInts(encoded)
	return nil
}

func (m *COMMaterial) GetSinglePhaseProp(property, phaseLabel, basis string, results *variant.Variant) error {
	native, c, ok := m.begin("GetSinglePhaseProp")
	if !ok {
		return nil
	}

	if err := c.pointer(4, results); err != nil {
		return err
	}

	values, err := native.GetSinglePhaseProp(property, phaseLabel, basis)
	if err != nil {
		return c.failure(err)
	}
	*results = variant.OfDoubles(values)
	return nil
}

func (m *COMMaterial) GetTPFraction(phaseLabel string, temperature, pressure *float64, composition *variant.Variant) error {
	native, c, ok := m.begin("GetTPFraction")
	if !ok {
		return nil
	}

	for position, out := range []any{temperature, pressure, composition} {
		if err := c.pointer(position+2, out); err != nil {
			return err
		}
	}

	t, p, x, err := native.GetTPFraction(phaseLabel)
	if err != nil {
		return c.failure(err)
	}
	*temperature, *pressure, *composition = t, p, variant.OfDoubles(x)
	return nil
}

func (m *COMMaterial) GetTwoPhaseProp(property string, phaseLabels variant.Variant, basis string, results *variant.Variant) error {
	native, c, ok := m.begin("GetTwoPhaseProp")
	if !ok {
		return nil
	}

	labels, err := narrow(c, 2, phaseLabels, variant.Variant.Strings)
	if err != nil {
		return err
	}
	if err := c.pointer(4, results); err != nil {
		return err
	}

	values, err := native.GetTwoPhaseProp(property, labels, basis)
	if err != nil {
		return c.failure(err)
	}
	*results = variant.OfDoubles(values)
	return nil
}

func (m *COMMaterial) SetOverallProp(property, basis string, values variant.Variant) error {
	native, c, ok := m.begin("SetOverallProp")
	if !ok {
		return nil
	}

	numbers, err := narrow(c, 3, values, variant.Variant.Doubles)
	if err != nil {
		return err
	}

	if err := native.SetOverallProp(property, basis, numbers); err != nil {
		return c.failure(err)
	}
	return nil
}

// SetPresentPhases accepts statuses encoded as 0, 1 or 2.
func (m *COMMaterial) SetPresentPhases(phaseLabels, phaseStatus variant.Variant) error {
	native, c, ok := m.begin("SetPresentPhases")
	if !ok {
		return nil
	}

	labels, err := narrow(c, 1, phaseLabels, variant.Variant.Strings)
	if err != nil {
		return err
	}
	encoded, err := narrow(c, 2, phaseStatus, variant.Variant.Ints)
	if err != nil {
		return err
	}
	statuses, err := decodePhaseStatuses(encoded)
	if err != nil {
		return c.argument(2, err)
	}

	if err := native.SetPresentPhases(labels, statuses); err != nil {
		return c.failure(err)
	}
	return nil
}

func (m *COMMaterial) SetSinglePhaseProp(property, phaseLabel, basis string, values variant.Variant) error {
	native, c, ok := m.begin("SetSinglePhaseProp")
	if !ok {
		return nil
	}

	numbers, err := narrow(c, 4, values, variant.Variant.Doubles)
	if err != nil {
		return err
	}

	if err := native.SetSinglePhaseProp(property, phaseLabel, basis, numbers); err != nil {
		return c.failure(err)
	}
	return nil
}

func (m *COMMaterial) SetTwoPhaseProp(property string, phaseLabels variant.Variant, basis string, values variant.Variant) error {
	native, c, ok := m.begin("SetTwoPhaseProp")
	if !ok {
		return nil
	}

	labels, err := narrow(c, 2, phaseLabels, variant.Variant.Strings)
	if err != nil {
		return err
	}
	numbers, err := narrow(c, 4, values, variant.Variant.Doubles)
	if err != nil {
		return err
	}

	if err := native.SetTwoPhaseProp(property, labels, basis, numbers); err != nil {
		return c.failure(err)
	}
	return nil
}
