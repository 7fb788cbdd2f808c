package cape

import (
	"encoding"
	"fmt"

	"github.com/avila-r/cape/hresult"
	"github.com/avila-r/cape/id"
	"github.com/avila-r/cape/modifier"
	"github.com/avila-r/cape/trait"
)

// ErrorClass is one error kind. CAPE-OPEN kinds are bound to exactly one
// HRESULT and to the name of the standard's error interface (ECapeOutOfBounds, ...).
type ErrorClass struct {
	Namespace ErrorNamespace
	Parent    *ErrorClass
	ID        uint64
	Name      string
	Traits    map[trait.Trait]bool
	Modifiers modifier.Modifiers

	// Code and Interface are set by Bind.
	Code      hresult.HRESULT
	Interface string
	bound     bool
}

func Class(namespace ErrorNamespace, name string, traits ...trait.Trait) *ErrorClass {
	class := &ErrorClass{
		Namespace: namespace,
		ID:        id.Next(),
		Name:      namespace.Name + "." + name,
		Traits:    merge(namespace.CollectTraits(), traits),
		Modifiers: modifier.Inherited(namespace.Modifiers),
	}

	class.register()

	return class
}

// Class declares a subclass; it inherits the parent's traits and modifiers.
func (c *ErrorClass) Class(name string, traits ...trait.Trait) *ErrorClass {
	class := &ErrorClass{
		Namespace: c.Namespace,
		Parent:    c,
		ID:        id.Next(),
		Name:      c.Name + "." + name,
		Traits:    merge(c.Traits, traits),
		Modifiers: modifier.Inherited(c.Modifiers),
	}

	class.register()

	return class
}

func merge(inherited map[trait.Trait]bool, own []trait.Trait) map[trait.Trait]bool {
	result := make(map[trait.Trait]bool, len(inherited)+len(own))
	for trait := range inherited {
		result[trait] = true
	}
	for _, trait := range own {
		result[trait] = true
	}
	return result
}

// Bind attaches a status code and a standard interface name to the class.
// A code can be bound once per process.
func (c *ErrorClass) Bind(code hresult.HRESULT, iface string) *ErrorClass {
	Registry.mu.Lock()
	defer Registry.mu.Unlock()

	if c.bound {
		panic(fmt.Sprintf("class %s is already bound to %s", c.Name, c.Code))
	}
	if other, ok := Registry.codes[code]; ok {
		panic(fmt.Sprintf("code %s is already bound to %s", code, other.Name))
	}

	c.Code, c.Interface, c.bound = code, iface, true
	Registry.codes[code] = c
	return c
}

// Bound reports whether the class carries a status code.
func (c *ErrorClass) Bound() bool {
	return c.bound
}

// Is reports whether c is other or one of its subclasses.
func (c *ErrorClass) Is(other *ErrorClass) bool {
	for current := c; current != nil; current = current.Parent {
		if current.ID == other.ID {
			return true
		}
	}
	return false
}

func (c *ErrorClass) Has(trait trait.Trait) bool {
	_, ok := c.Traits[trait]
	return ok
}

// Lineage lists c and its ancestors, most specific first.
func (c *ErrorClass) Lineage() []*ErrorClass {
	var lineage []*ErrorClass
	for current := c; current != nil; current = current.Parent {
		lineage = append(lineage, current)
	}
	return lineage
}

func (c *ErrorClass) Apply(modifiers ...modifier.ClassModifier) *ErrorClass {
	c.Modifiers = c.Modifiers.With(modifiers...)
	return c
}

// New creates an error of this class with a formatted description.
func (c *ErrorClass) New(message string, v ...any) *Error {
	return Builder(c).
		Message(message, v...).
		Build()
}

// Wrap creates an error of this class caused by err.
func (c *ErrorClass) Wrap(err error, message string, v ...any) *Error {
	return Builder(c).
		Message(message, v...).
		Cause(err).
		Build()
}

func (c *ErrorClass) Builder() ErrorBuilder {
	return Builder(c)
}

func (c *ErrorClass) String() string {
	return c.Name
}

func (c *ErrorClass) register() {
	Registry.mu.Lock()
	defer Registry.mu.Unlock()

	Registry.Classes = append(Registry.Classes, c)
	for _, s := range Registry.Listeners {
		s.OnClassCreated(c)
	}
}

var _ encoding.TextMarshaler = (*ErrorClass)(nil)

// MarshalText implements encoding.TextMarshaler
func (c *ErrorClass) MarshalText() (text []byte, err error) {
	return []byte(c.String()), nil
}
