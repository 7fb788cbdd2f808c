// Package thermo declares the native, strongly typed shape of the CAPE-OPEN
// thermodynamic material interfaces (1.0 material object and the 1.1
// material, compounds, phases, universal constant, property routine and
// equilibrium routine interfaces).
package thermo

// MaterialObject is ICapeThermoMaterialObject (1.0).
type MaterialObject interface {
	ComponentIds() ([]string, error)
	PhaseIds() ([]string, error)
	GetUniversalConstant(props []string) ([]any, error)
	GetComponentConstant(props, compIds []string) ([]any, error)
	CalcProp(props, phases []string, calcType string) error
	GetProp(property, phase string, compIds []string, calcType, basis string) ([]float64, error)
	SetProp(property, phase string, compIds []string, calcType, basis string, values []float64) error
	CalcEquilibrium(flashType string, props []string) error
	SetIndependentVar(indVars []string, values []float64) error
	GetIndependentVar(indVars []string) ([]float64, error)
	PropCheck(props []string) ([]bool, error)
	AvailableProps() ([]string, error)
	RemoveResults(props []string) error
	CreateMaterialObject() (any, error)
	Duplicate() (any, error)
	ValidityCheck(props []string) ([]Validity, error)
	GetNumComponents() (int, error)
}

// Material is ICapeThermoMaterial (1.1).
type Material interface {
	ClearAllProps() error
	CopyFromMaterial(source any) error
	CreateMaterial() (any, error)
	GetOverallProp(property, basis string) ([]float64, error)
	GetOverallTPFraction() (temperature, pressure float64, composition []float64, err error)
	GetPresentPhases() (phaseLabels []string, status []PhaseStatus, err error)
	GetSinglePhaseProp(property, phaseLabel, basis string) ([]float64, error)
	GetTPFraction(phaseLabel string) (temperature, pressure float64, composition []float64, err error)
	GetTwoPhaseProp(property string, phaseLabels []string, basis string) ([]float64, error)
	SetOverallProp(property, basis string, values []float64) error
	SetPresentPhases(phaseLabels []string, status []PhaseStatus) error
	SetSinglePhaseProp(property, phaseLabel, basis string, values []float64) error
	SetTwoPhaseProp(property string, phaseLabels []string, basis string, values []float64) error
}

// CompoundList is the result of Compounds.GetCompoundList.
type CompoundList struct {
	IDs       []string
	Formulae  []string
	Names     []string
	BoilTemps []float64
	MolWts    []float64
	CASNos    []string
}

// Compounds is ICapeThermoCompounds (1.1).
type Compounds interface {
	GetCompoundConstant(props, compIds []string) ([]any, error)
	GetCompoundList() (CompoundList, error)
	GetConstPropList() ([]string, error)
	GetNumCompounds() (int, error)
	GetPDependentProperty(props []string, pressure float64, compIds []string) ([]float64, error)
	GetPDependentPropList() ([]string, error)
	GetTDependentProperty(props []string, temperature float64, compIds []string) ([]float64, error)
	GetTDependentPropList() ([]string, error)
}

// PhaseList is the result of Phases.GetPhaseList.
type PhaseList struct {
	Labels             []string
	StateOfAggregation []string
	KeyCompoundIDs     []string
}

// Phases is ICapeThermoPhases (1.1).
type Phases interface {
	GetNumPhases() (int, error)
	GetPhaseInfo(phaseLabel, phaseAttribute string) (any, error)
	GetPhaseList() (PhaseList, error)
}

// UniversalConstant is ICapeThermoUniversalConstant (1.1).
type UniversalConstant interface {
	GetUniversalConstant(constantID string) (any, error)
	GetUniversalConstantList() ([]string, error)
}

// LnPhi is the result of PropertyRoutine.CalcAndGetLnPhi. Slices the
// calculation type did not request are nil.
type LnPhi struct {
	LnPhi   []float64
	LnPhiDT []float64
	LnPhiDP []float64
	LnPhiDn []float64
}

// PropertyRoutine is ICapeThermoPropertyRoutine (1.1).
type PropertyRoutine interface {
	CalcAndGetLnPhi(phaseLabel string, temperature, pressure float64, moleNumbers []float64, flags CalculationType) (LnPhi, error)
	CalcSinglePhaseProp(props []string, phaseLabel string) error
	CalcTwoPhaseProp(props, phaseLabels []string) error
	CheckSinglePhasePropSpec(property, phaseLabel string) (bool, error)
	CheckTwoPhasePropSpec(property string, phaseLabels []string) (bool, error)
	GetSinglePhasePropList() ([]string, error)
	GetTwoPhasePropList() ([]string, error)
}

// EquilibriumRoutine is ICapeThermoEquilibriumRoutine (1.1).
type EquilibriumRoutine interface {
	CalcEquilibrium(specification1, specification2 []string, solutionType string) error
	CheckEquilibriumSpec(specification1, specification2 []string, solutionType string) (bool, error)
}
