package tags

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Tags annotate an error with where it crossed the shape boundary, e.g.
// {"interface": "ICapeThermoMaterial", "operation": "GetSinglePhaseProp"}.
type Tags map[string]string

// Merge copies tags into on without overwriting existing keys.
func Merge(tags Tags, on *Tags) {
	if on == nil {
		return
	}

	if *on == nil {
		*on = make(Tags)
	}

	for k, v := range tags {
		if _, exists := (*on)[k]; !exists {
			(*on)[k] = v
		}
	}
}

// String renders tags as "k=v" pairs ordered by key.
func (t Tags) String() string {
	keys := maps.Keys(t)
	slices.Sort(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+t[k])
	}
	return strings.Join(pairs, " ")
}
