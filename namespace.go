package cape

import (
	"github.com/avila-r/cape/id"
	"github.com/avila-r/cape/modifier"
	"github.com/avila-r/cape/trait"
)

// ErrorNamespace groups error classes; its traits and modifiers are inherited
// by every class declared in it.
type ErrorNamespace struct {
	Parent    *ErrorNamespace
	ID        uint64
	Name      string
	Traits    []trait.Trait
	Modifiers modifier.Modifiers
}

func Namespace(name string, traits ...trait.Trait) ErrorNamespace {
	namespace := ErrorNamespace{
		ID:        id.Next(),
		Name:      name,
		Traits:    append([]trait.Trait{}, traits...),
		Modifiers: modifier.None,
	}

	namespace.register()

	return namespace
}

func (n ErrorNamespace) Namespace(name string, traits ...trait.Trait) ErrorNamespace {
	namespace := ErrorNamespace{
		Parent:    &n,
		ID:        id.Next(),
		Name:      n.Name + "." + name,
		Traits:    append([]trait.Trait{}, traits...),
		Modifiers: modifier.Inherited(n.Modifiers),
	}

	namespace.register()

	return namespace
}

func (n ErrorNamespace) Apply(modifiers ...modifier.ClassModifier) ErrorNamespace {
	n.Modifiers = n.Modifiers.With(modifiers...)
	return n
}

func (n ErrorNamespace) Class(name string, traits ...trait.Trait) *ErrorClass {
	return Class(n, name, traits...)
}

// Contains reports whether class was declared in n or in one of its sub-namespaces.
func (n ErrorNamespace) Contains(class *ErrorClass) bool {
	for other := &class.Namespace; other != nil; other = other.Parent {
		if n.ID == other.ID {
			return true
		}
	}

	return false
}

func (n ErrorNamespace) CollectTraits() map[trait.Trait]bool {
	result := make(map[trait.Trait]bool)

	for namespace := &n; namespace != nil; namespace = namespace.Parent {
		for _, trait := range namespace.Traits {
			result[trait] = true
		}
	}

	return result
}

func (n ErrorNamespace) register() {
	Registry.mu.Lock()
	defer Registry.mu.Unlock()

	Registry.Namespaces = append(Registry.Namespaces, n)
	for _, s := range Registry.Listeners {
		s.OnNamespaceCreated(n)
	}
}
