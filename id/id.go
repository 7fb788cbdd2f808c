// Package id hands out process-unique identifiers for namespaces, classes and traits.
package id

import "sync/atomic"

var current atomic.Uint64

// Next returns the next identifier; the first one is 1, zero is never issued.
func Next() uint64 {
	return current.Add(1)
}
