package modifier

// ClassModifier changes how errors of a class are built.
type ClassModifier int

const (
	// ClassModifierTransparent makes errors of the class transparent wrappers:
	// class, traits and properties are resolved through the cause.
	ClassModifierTransparent ClassModifier = 1 << iota
	// ClassModifierOmitStackTrace skips stack trace collection for errors of the class.
	ClassModifierOmitStackTrace
)

// Modifiers is the effective modifier set of a namespace or class. Modifiers
// set on an ancestor apply to every descendant; each level may be modified once.
type Modifiers struct {
	parent *Modifiers
	own    ClassModifier
	sealed bool
}

// None has no modifiers and no parent.
var None = Modifiers{}

// Inherited starts a child level under parent.
func Inherited(parent Modifiers) Modifiers {
	if parent.effective() == 0 {
		return None
	}
	return Modifiers{parent: &parent}
}

// With returns m with the given modifiers added at this level.
func (m Modifiers) With(modifiers ...ClassModifier) Modifiers {
	if m.sealed {
		panic("attempt to modify class modifiers more than once")
	}
	for _, modifier := range modifiers {
		m.own |= modifier
	}
	m.sealed = true
	return m
}

func (m Modifiers) CollectStackTrace() bool {
	return m.effective()&ClassModifierOmitStackTrace == 0
}

func (m Modifiers) Transparent() bool {
	return m.effective()&ClassModifierTransparent != 0
}

func (m Modifiers) effective() ClassModifier {
	flags := m.own
	for p := m.parent; p != nil; p = p.parent {
		flags |= p.own
	}
	return flags
}
