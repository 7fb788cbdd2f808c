package thermo

// InterfaceID names a CAPE-OPEN interface a component may expose.
type InterfaceID string

const (
	IMaterialObject     InterfaceID = "ICapeThermoMaterialObject"
	IMaterial           InterfaceID = "ICapeThermoMaterial"
	ICompounds          InterfaceID = "ICapeThermoCompounds"
	IPhases             InterfaceID = "ICapeThermoPhases"
	IUniversalConstant  InterfaceID = "ICapeThermoUniversalConstant"
	IPropertyRoutine    InterfaceID = "ICapeThermoPropertyRoutine"
	IEquilibriumRoutine InterfaceID = "ICapeThermoEquilibriumRoutine"
)

// Interfaces lists every interface a material component may expose.
var Interfaces = []InterfaceID{
	IMaterialObject,
	IMaterial,
	ICompounds,
	IPhases,
	IUniversalConstant,
	IPropertyRoutine,
	IEquilibriumRoutine,
}

// Unknown mirrors IUnknown. The 1.0 and 1.1 method sets collide
// (CalcEquilibrium, GetUniversalConstant), so a component implementing both
// generations hands each interface out as a separate value.
type Unknown interface {
	QueryInterface(id InterfaceID) (any, bool)
}

// Query resolves interface id on obj: through QueryInterface when obj
// implements Unknown, by type assertion otherwise.
func Query[T any](obj any, id InterfaceID) (T, bool) {
	var zero T
	if obj == nil {
		return zero, false
	}

	if unknown, ok := obj.(Unknown); ok {
		if iface, found := unknown.QueryInterface(id); found {
			typed, ok := iface.(T)
			return typed, ok
		}
		return zero, false
	}

	typed, ok := obj.(T)
	return typed, ok
}
