package adapter

import (
	"github.com/avila-r/cape/com"
	"github.com/avila-r/cape/thermo"
	"github.com/avila-r/cape/variant"
)

// NativeMaterial is the thermo.Material view of a NativeObject.
type NativeMaterial struct {
	o *NativeObject
}

func (m *NativeMaterial) begin(operation string) (com.Material, call, bool) {
	c := m.o.call(thermo.IMaterial, operation)
	if !m.o.v11 || m.o.material == nil {
		c.unsupported()
		return nil, c, false
	}
	return m.o.material, c, true
}

func (m *NativeMaterial) ClearAllProps() error {
	target, c, ok := m.begin("ClearAllProps")
	if !ok {
		return nil
	}

	if err := target.ClearAllProps(); err != nil {
		return c.failure(err)
	}
	return nil
}

// CopyFromMaterial passes the COM component behind a NativeObject on, and
// wraps any other native material in a COMObject.
func (m *NativeMaterial) CopyFromMaterial(source any) error {
	target, c, ok := m.begin("CopyFromMaterial")
	if !ok {
		return nil
	}

	if source == nil {
		return c.argument(1, errNilMaterial)
	}

	if err := target.CopyFromMaterial(toCOM(source)); err != nil {
		return c.failure(err)
	}
	return nil
}

func (m *NativeMaterial) CreateMaterial() (any, error) {
	target, c, ok := m.begin("CreateMaterial")
	if !ok {
		return nil, nil
	}

	created, err := target.CreateMaterial()
	if err != nil {
		return nil, c.failure(err)
	}
	return toNative(created), nil
}

func (m *NativeMaterial) GetOverallProp(property, basis string) ([]float64, error) {
	target, c, ok := m.begin("GetOverallProp")
	if !ok {
		return nil, nil
	}

	var results variant.Variant
	if err := target.GetOverallProp(property, basis, &results); err != nil {
		return nil, c.failure(err)
	}
	return unbox(c, results, variant.Variant.Doubles)
}

func (m *NativeMaterial) GetOverallTPFraction() (temperature, pressure float64, composition []float64, err error) {
	target, c, ok := m.begin("GetOverallTPFraction")
	if !ok {
		return 0, 0, nil, nil
	}

	var x variant.Variant
	if err := target.GetOverallTPFraction(&temperature, &pressure, &x); err != nil {
		return 0, 0, nil, c.failure(err)
	}
	composition, err = unbox(c, x, variant.Variant.Doubles)
	if err != nil {
		return 0, 0, nil, err
	}
	return temperature, pressure, composition, nil
}

func (m *NativeMaterial) GetPresentPhases() (phaseLabels []string, status []thermo.PhaseStatus, err error) {
	target, c, ok := m.begin("GetPresentPhases")
	if !ok {
		return nil, nil, nil
	}

	var labels, statuses variant.Variant
	if err := target.GetPresentPhases(&labels, &statuses); err != nil {
		return nil, nil, c.failure(err)
	}

	phaseLabels, err = unbox(c, labels, variant.Variant.Strings)
	if err != nil {
		return nil, nil, err
	}
	encoded, err := unbox(c, statuses, variant.Variant.Ints)
	if err != nil {
		return nil, nil, err
	}
	status, err = decodePhaseStatuses(encoded)
	if err != nil {
		return nil, nil, c.result(err)
	}
	return phaseLabels, status, nil
}

func (m *NativeMaterial) GetSinglePhaseProp(property, phaseLabel, basis string) ([]float64, error) {
	target, c, ok := m.begin("GetSinglePhaseProp")
	if !ok {
		return nil, nil
	}

	var results variant.Variant
	if err := target.GetSinglePhaseProp(property, phaseLabel, basis, &results); err != nil {
		return nil, c.failure(err)
	}
	return unbox(c, results, variant.Variant.Doubles)
}

func (m *NativeMaterial) GetTPFraction(phaseLabel string) (temperature, pressure float64, composition []float64, err error) {
	target, c, ok := m.begin("GetTPFraction")
	if !ok {
		return 0, 0, nil, nil
	}

	var x variant.Variant
	if err := target.GetTPFraction(phaseLabel, &temperature, &pressure, &x); err != nil {
		return 0, 0, nil, c.failure(err)
	}
	composition, err = unbox(c, x, variant.Variant.Doubles)
	if err != nil {
		return 0, 0, nil, err
	}
	return temperature, pressure, composition, nil
}

func (m *NativeMaterial) GetTwoPhaseProp(property string, phaseLabels []string, basis string) ([]float64, error) {
	target, c, ok := m.begin("GetTwoPhaseProp")
	if !ok {
		return nil, nil
	}

	var results variant.Variant
	if err := target.GetTwoPhaseProp(property, variant.OfStrings(phaseLabels), basis, &results); err != nil {
		return nil, c.failure(err)
	}
	return unbox(c, results, variant.Variant.Doubles)
}

func (m *NativeMaterial) SetOverallProp(property, basis string, values []float64) error {
	target, c, ok := m.begin("SetOverallProp")
	if !ok {
		return nil
	}

	if err := target.SetOverallProp(property, basis, variant.OfDoubles(values)); err != nil {
		return c.failure(err)
	}
	return nil
}

func (m *NativeMaterial) SetPresentPhases(phaseLabels []string, status []thermo.PhaseStatus) error {
	target, c, ok := m.begin("SetPresentPhases")
	if !ok {
		return nil
	}

	encoded, err := encodePhaseStatuses(status)
	if err != nil {
		return c.argument(2, err)
	}

	if err := target.SetPresentPhases(variant.OfStrings(phaseLabels), variant.OfInts(encoded)); err != nil {
		return c.failure(err)
	}
	return nil
}

func (m *NativeMaterial) SetSinglePhaseProp(property, phaseLabel, basis string, values []float64) error {
	target, c, ok := m.begin("SetSinglePhaseProp")
	if !ok {
		return nil
	}

	if err := target.SetSinglePhaseProp(property, phaseLabel, basis, variant.OfDoubles(values)); err != nil {
		return c.failure(err)
	}
	return nil
}

func (m *NativeMaterial) SetTwoPhaseProp(property string, phaseLabels []string, basis string, values []float64) error {
	target, c, ok := m.begin("SetTwoPhaseProp")
	if !ok {
		return nil
	}

	err := target.SetTwoPhaseProp(property, variant.OfStrings(phaseLabels), basis, variant.OfDoubles(values))
	if err != nil {
		return c.failure(err)
	}
	return nil
}
