package adapter

import (
	"github.com/untillpro/goutils/logger"

	"github.com/avila-r/cape/com"
	"github.com/avila-r/cape/thermo"
)

// COMObject presents a native material component through the COM shape.
// It computes nothing: every call narrows its variant arguments, forwards to
// the native interface and widens the results. Native errors are translated
// by the gateway before they leave the adapter.
//
// A COMObject is used by one caller at a time.
type COMObject struct {
	native any

	materialObject thermo.MaterialObject
	material       thermo.Material
	compounds      thermo.Compounds
	phases         thermo.Phases
	constants      thermo.UniversalConstant
	properties     thermo.PropertyRoutine
	equilibrium    thermo.EquilibriumRoutine

	// v10 and v11 record the thermodynamic interface generations the native
	// component implements; they are fixed at construction.
	v10 bool
	v11 bool
}

var _ thermo.Unknown = (*COMObject)(nil)

// NewCOMObject probes native once for every interface it implements.
func NewCOMObject(native any) *COMObject {
	o := &COMObject{native: native}

	o.materialObject, o.v10 = thermo.Query[thermo.MaterialObject](native, thermo.IMaterialObject)
	o.material, o.v11 = thermo.Query[thermo.Material](native, thermo.IMaterial)
	o.compounds, _ = thermo.Query[thermo.Compounds](native, thermo.ICompounds)
	o.phases, _ = thermo.Query[thermo.Phases](native, thermo.IPhases)
	o.constants, _ = thermo.Query[thermo.UniversalConstant](native, thermo.IUniversalConstant)
	o.properties, _ = thermo.Query[thermo.PropertyRoutine](native, thermo.IPropertyRoutine)
	o.equilibrium, _ = thermo.Query[thermo.EquilibriumRoutine](native, thermo.IEquilibriumRoutine)

	if logger.IsVerbose() {
		logger.Verbose("COM adapter over", describe(native), "thermo 1.0:", o.v10, "thermo 1.1:", o.v11)
	}

	return o
}

// Supports10 reports whether the native component implements the 1.0 material object.
func (o *COMObject) Supports10() bool {
	return o.v10
}

// Supports11 reports whether the native component implements the 1.1 material.
func (o *COMObject) Supports11() bool {
	return o.v11
}

// Native returns the wrapped component, nil after Close.
func (o *COMObject) Native() any {
	return o.native
}

// Close releases the references to the native component. Later calls are
// answered as not supported.
func (o *COMObject) Close() error {
	o.native = nil
	o.materialObject = nil
	o.material = nil
	o.compounds = nil
	o.phases = nil
	o.constants = nil
	o.properties = nil
	o.equilibrium = nil
	return nil
}

// QueryInterface implements thermo.Unknown with the COM-shaped views.
func (o *COMObject) QueryInterface(id thermo.InterfaceID) (any, bool) {
	switch id {
	case thermo.IMaterialObject:
		return o.MaterialObject(), o.v10
	case thermo.IMaterial:
		return o.Material(), o.v11
	case thermo.ICompounds:
		return o.Compounds(), o.v11 && o.compounds != nil
	case thermo.IPhases:
		return o.Phases(), o.v11 && o.phases != nil
	case thermo.IUniversalConstant:
		return o.UniversalConstant(), o.v11 && o.constants != nil
	case thermo.IPropertyRoutine:
		return o.PropertyRoutine(), o.v11 && o.properties != nil
	case thermo.IEquilibriumRoutine:
		return o.EquilibriumRoutine(), o.v11 && o.equilibrium != nil
	default:
		return nil, false
	}
}

func (o *COMObject) MaterialObject() *COMMaterialObject {
	return &COMMaterialObject{o}
}

func (o *COMObject) Material() *COMMaterial {
	return &COMMaterial{o}
}

func (o *COMObject) Compounds() *COMCompounds {
	return &COMCompounds{o}
}

func (o *COMObject) Phases() *COMPhases {
	return &COMPhases{o}
}

func (o *COMObject) UniversalConstant() *COMUniversalConstant {
	return &COMUniversalConstant{o}
}

func (o *COMObject) PropertyRoutine() *COMPropertyRoutine {
	return &COMPropertyRoutine{o}
}

func (o *COMObject) EquilibriumRoutine() *COMEquilibriumRoutine {
	return &COMEquilibriumRoutine{o}
}

func (o *COMObject) call(iface thermo.InterfaceID, operation string) call {
	return call{source: o.native, iface: iface, operation: operation}
}

// toCOM hands a native material object returned by the component to a COM
// caller: native objects get a new adapter, adapters over COM objects are unwrapped.
func toCOM(native any) any {
	switch t := native.(type) {
	case nil:
		return nil
	case *NativeObject:
		if t.com != nil {
			return t.com
		}
	}
	return NewCOMObject(native)
}

var (
	_ com.MaterialObject     = (*COMMaterialObject)(nil)
	_ com.Material           = (*COMMaterial)(nil)
	_ com.Compounds          = (*COMCompounds)(nil)
	_ com.Phases             = (*COMPhases)(nil)
	_ com.UniversalConstant  = (*COMUniversalConstant)(nil)
	_ com.PropertyRoutine    = (*COMPropertyRoutine)(nil)
	_ com.EquilibriumRoutine = (*COMEquilibriumRoutine)(nil)
)
