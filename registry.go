package cape

import (
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/avila-r/cape/hresult"
)

var Registry = struct {
	Listeners  []RegistryListener
	Namespaces []ErrorNamespace
	Classes    []*ErrorClass

	codes map[hresult.HRESULT]*ErrorClass
	mu    sync.Mutex
}{
	codes: make(map[hresult.HRESULT]*ErrorClass),
}

type RegistryListener interface {
	// OnNamespaceCreated is called exactly once for each namespace
	OnNamespaceCreated(namespace ErrorNamespace)

	// OnClassCreated is called exactly once for each class
	OnClassCreated(t *ErrorClass)
}

func Subscribe(listener RegistryListener) {
	Registry.mu.Lock()
	defer Registry.mu.Unlock()

	for _, namespace := range Registry.Namespaces {
		listener.OnNamespaceCreated(namespace)
	}

	for _, class := range Registry.Classes {
		listener.OnClassCreated(class)
	}

	Registry.Listeners = append(Registry.Listeners, listener)
}

// Lookup returns the class bound to code.
func Lookup(code hresult.HRESULT) (*ErrorClass, bool) {
	Registry.mu.Lock()
	defer Registry.mu.Unlock()

	class, ok := Registry.codes[code]
	return class, ok
}

// Codes returns every bound code in ascending unsigned order.
func Codes() []hresult.HRESULT {
	Registry.mu.Lock()
	codes := maps.Keys(Registry.codes)
	Registry.mu.Unlock()

	slices.SortFunc(codes, func(a, b hresult.HRESULT) int {
		switch {
		case uint32(a) < uint32(b):
			return -1
		case uint32(a) > uint32(b):
			return 1
		default:
			return 0
		}
	})
	return codes
}
