package adapter_test

import (
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slices"

	"github.com/avila-r/cape/thermo"
	"github.com/avila-r/cape/variant"
)

func get[T any](called mock.Arguments, i int) T {
	value, _ := called.Get(i).(T)
	return value
}

type mockMaterial struct {
	mock.Mock
	thermo.MaterialObject
	thermo.Material
	thermo.Compounds
	thermo.Phases
	thermo.PropertyRoutine
}

func (m *mockMaterial) ComponentIds() ([]string, error) {
	called := m.Called()
	return get[[]string](called, 0), called.Error(1)
}

func (m *mockMaterial) CalcProp(props, phases []string, calcType string) error {
	return m.Called(props, phases, calcType).Error(0)
}

func (m *mockMaterial) GetProp(property, phase string, compIds []string, calcType, basis string) ([]float64, error) {
	called := m.Called(property, phase, compIds, calcType, basis)
	return get[[]float64](called, 0), called.Error(1)
}

func (m *mockMaterial) SetProp(property, phase string, compIds []string, calcType, basis string, values []float64) error {
	return m.Called(property, phase, compIds, calcType, basis, values).Error(0)
}

func (m *mockMaterial) GetComponentConstant(props, compIds []string) ([]any, error) {
	called := m.Called(props, compIds)
	return get[[]any](called, 0), called.Error(1)
}

func (m *mockMaterial) ValidityCheck(props []string) ([]thermo.Validity, error) {
	called := m.Called(props)
	return get[[]thermo.Validity](called, 0), called.Error(1)
}

func (m *mockMaterial) CreateMaterialObject() (any, error) {
	called := m.Called()
	return called.Get(0), called.Error(1)
}

func (m *mockMaterial) Duplicate() (any, error) {
	called := m.Called()
	return called.Get(0), called.Error(1)
}

func (m *mockMaterial) GetNumComponents() (int, error) {
	called := m.Called()
	return called.Int(0), called.Error(1)
}

func (m *mockMaterial) CopyFromMaterial(source any) error {
	return m.Called(source).Error(0)
}

func (m *mockMaterial) GetOverallProp(property, basis string) ([]float64, error) {
	called := m.Called(property, basis)
	return get[[]float64](called, 0), called.Error(1)
}

func (m *mockMaterial) GetOverallTPFraction() (float64, float64, []float64, error) {
	called := m.Called()
	return get[float64](called, 0), get[float64](called, 1), get[[]float64](called, 2), called.Error(3)
}

func (m *mockMaterial) GetPresentPhases() ([]string, []thermo.PhaseStatus, error) {
	called := m.Called()
	return get[[]string](called, 0), get[[]thermo.PhaseStatus](called, 1), called.Error(2)
}

func (m *mockMaterial) SetPresentPhases(phaseLabels []string, status []thermo.PhaseStatus) error {
	return m.Called(phaseLabels, status).Error(0)
}

func (m *mockMaterial) GetSinglePhaseProp(property, phaseLabel, basis string) ([]float64, error) {
	called := m.Called(property, phaseLabel, basis)
	return get[[]float64](called, 0), called.Error(1)
}

func (m *mockMaterial) GetCompoundList() (thermo.CompoundList, error) {
	called := m.Called()
	return get[thermo.CompoundList](called, 0), called.Error(1)
}

func (m *mockMaterial) GetPhaseList() (thermo.PhaseList, error) {
	called := m.Called()
	return get[thermo.PhaseList](called, 0), called.Error(1)
}

func (m *mockMaterial) GetPhaseInfo(phaseLabel, phaseAttribute string) (any, error) {
	called := m.Called(phaseLabel, phaseAttribute)
	return called.Get(0), called.Error(1)
}

func (m *mockMaterial) CalcAndGetLnPhi(phaseLabel string, temperature, pressure float64, moleNumbers []float64, flags thermo.CalculationType) (thermo.LnPhi, error) {
	called := m.Called(phaseLabel, temperature, pressure, moleNumbers, flags)
	return get[thermo.LnPhi](called, 0), called.Error(1)
}

type mockConstants struct {
	mock.Mock
}

func (m *mockConstants) GetUniversalConstant(constantID string) (any, error) {
	called := m.Called(constantID)
	return called.Get(0), called.Error(1)
}

func (m *mockConstants) GetUniversalConstantList() ([]string, error) {
	called := m.Called()
	return get[[]string](called, 0), called.Error(1)
}

type mockEquilibrium struct {
	mock.Mock
}

func (m *mockEquilibrium) CalcEquilibrium(specification1, specification2 []string, solutionType string) error {
	return m.Called(specification1, specification2, solutionType).Error(0)
}

func (m *mockEquilibrium) CheckEquilibriumSpec(specification1, specification2 []string, solutionType string) (bool, error) {
	called := m.Called(specification1, specification2, solutionType)
	return called.Bool(0), called.Error(1)
}

// component is a native thermo package exposing a chosen set of interfaces.
type component struct {
	name        string
	material    *mockMaterial
	constants   *mockConstants
	equilibrium *mockEquilibrium
	exposes     []thermo.InterfaceID
}

func newComponent(exposes ...thermo.InterfaceID) *component {
	if len(exposes) == 0 {
		exposes = thermo.Interfaces
	}
	return &component{
		name:        "TestPackage",
		material:    &mockMaterial{},
		constants:   &mockConstants{},
		equilibrium: &mockEquilibrium{},
		exposes:     exposes,
	}
}

func (c *component) ComponentName() string        { return c.name }
func (c *component) ComponentDescription() string { return "thermo package under test" }

func (c *component) QueryInterface(id thermo.InterfaceID) (any, bool) {
	if !slices.Contains(c.exposes, id) {
		return nil, false
	}
	switch id {
	case thermo.IUniversalConstant:
		return c.constants, true
	case thermo.IEquilibriumRoutine:
		return c.equilibrium, true
	default:
		return c.material, true
	}
}

// malformedPhases is a COM phases interface returning values of the wrong kind.
type malformedPhases struct{}

func (malformedPhases) GetNumPhases() (int32, error) { return 2, nil }

func (malformedPhases) GetPhaseInfo(string, string) (variant.Variant, error) {
	return variant.OfString("Vapor"), nil
}

func (malformedPhases) GetPhaseList(labels, aggregation, keys *variant.Variant) error {
	*labels = variant.OfDoubles([]float64{1, 2})
	*aggregation = variant.OfStrings([]string{"Vapor", "Liquid"})
	*keys = variant.Variant{}
	return nil
}

// comComponent is a COM component whose phases interface is malformed.
type comComponent struct {
	inner  thermo.Unknown
	phases malformedPhases
}

func (c comComponent) QueryInterface(id thermo.InterfaceID) (any, bool) {
	if id == thermo.IPhases {
		return c.phases, true
	}
	return c.inner.QueryInterface(id)
}
