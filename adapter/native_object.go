package adapter

import (
	"github.com/untillpro/goutils/logger"

	"github.com/avila-r/cape/com"
	"github.com/avila-r/cape/thermo"
)

// NativeObject presents a COM material component through the native shape:
// arguments are widened into variants, results narrowed back, and COM
// failures translated by the gateway with the COM component as source.
//
// A NativeObject is used by one caller at a time.
type NativeObject struct {
	com any

	materialObject com.MaterialObject
	material       com.Material
	compounds      com.Compounds
	phases         com.Phases
	constants      com.UniversalConstant
	properties     com.PropertyRoutine
	equilibrium    com.EquilibriumRoutine

	v10 bool
	v11 bool
}

var _ thermo.Unknown = (*NativeObject)(nil)

// NewNativeObject probes obj once for every COM interface it implements.
func NewNativeObject(obj any) *NativeObject {
	o := &NativeObject{com: obj}

	o.materialObject, o.v10 = thermo.Query[com.MaterialObject](obj, thermo.IMaterialObject)
	o.material, o.v11 = thermo.Query[com.Material](obj, thermo.IMaterial)
	o.compounds, _ = thermo.Query[com.Compounds](obj, thermo.ICompounds)
	o.phases, _ = thermo.Query[com.Phases](obj, thermo.IPhases)
	o.constants, _ = thermo.Query[com.UniversalConstant](obj, thermo.IUniversalConstant)
	o.properties, _ = thermo.Query[com.PropertyRoutine](obj, thermo.IPropertyRoutine)
	o.equilibrium, _ = thermo.Query[com.EquilibriumRoutine](obj, thermo.IEquilibriumRoutine)

	if logger.IsVerbose() {
		logger.Verbose("native adapter over", describe(obj), "thermo 1.0:", o.v10, "thermo 1.1:", o.v11)
	}

	return o
}

func (o *NativeObject) Supports10() bool {
	return o.v10
}

func (o *NativeObject) Supports11() bool {
	return o.v11
}

// COM returns the wrapped component, nil after Close.
func (o *NativeObject) COM() any {
	return o.com
}

// Close releases the references to the COM component.
func (o *NativeObject) Close() error {
	o.com = nil
	o.materialObject = nil
	o.material = nil
	o.compounds = nil
	o.phases = nil
	o.constants = nil
	o.properties = nil
	o.equilibrium = nil
	return nil
}

// QueryInterface implements thermo.Unknown with the native views.
func (o *NativeObject) QueryInterface(id thermo.InterfaceID) (any, bool) {
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

func (o *NativeObject) MaterialObject() *NativeMaterialObject {
	return &NativeMaterialObject{o}
}

func (o *NativeObject) Material() *NativeMaterial {
	return &NativeMaterial{o}
}

func (o *NativeObject) Compounds() *NativeCompounds {
	return &NativeCompounds{o}
}

func (o *NativeObject) Phases() *NativePhases {
	return &NativePhases{o}
}

func (o *NativeObject) UniversalConstant() *NativeUniversalConstant {
	return &NativeUniversalConstant{o}
}

func (o *NativeObject) PropertyRoutine() *NativePropertyRoutine {
	return &NativePropertyRoutine{o}
}

func (o *NativeObject) EquilibriumRoutine() *NativeEquilibriumRoutine {
	return &NativeEquilibriumRoutine{o}
}

func (o *NativeObject) call(iface thermo.InterfaceID, operation string) call {
	return call{source: o.com, iface: iface, operation: operation}
}

// toNative hands a COM material object to a native caller: COM objects get a
// new adapter, adapters over native objects are unwrapped.
func toNative(obj any) any {
	switch t := obj.(type) {
	case nil:
		return nil
	case *COMObject:
		if t.native != nil {
			return t.native
		}
	}
	return NewNativeObject(obj)
}

var (
	_ thermo.MaterialObject     = (*NativeMaterialObject)(nil)
	_ thermo.Material           = (*NativeMaterial)(nil)
	_ thermo.Compounds          = (*NativeCompounds)(nil)
	_ thermo.Phases             = (*NativePhases)(nil)
	_ thermo.UniversalConstant  = (*NativeUniversalConstant)(nil)
	_ thermo.PropertyRoutine    = (*NativePropertyRoutine)(nil)
	_ thermo.EquilibriumRoutine = (*NativeEquilibriumRoutine)(nil)
)
