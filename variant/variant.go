// Package variant models the loosely typed values COM callers exchange
// (VARIANT): a tagged union with checked conversions to the strongly typed
// values native components expect. A conversion never coerces between kinds;
// a mismatch is an ECapeInvalidArgument error.
package variant

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"

	"github.com/avila-r/cape"
)

type Kind int

const (
	Empty Kind = iota
	Bool
	Int
	Double
	String
	BoolArray
	IntArray
	DoubleArray
	StringArray
	// Array holds mixed scalars, e.g. compound constants that are partly
	// numeric and partly textual.
	Array
)

var kinds = [...]string{
	Empty:       "empty",
	Bool:        "bool",
	Int:         "int",
	Double:      "double",
	String:      "string",
	BoolArray:   "bool array",
	IntArray:    "int array",
	DoubleArray: "double array",
	StringArray: "string array",
	Array:       "array",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kinds) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kinds[k]
}

// IsArray reports whether values of kind k hold a slice.
func (k Kind) IsArray() bool {
	return k >= BoolArray
}

// Variant is immutable; array accessors return copies.
type Variant struct {
	kind  Kind
	value any
}

func OfBool(v bool) Variant {
	return Variant{kind: Bool, value: v}
}

func OfInt(v int32) Variant {
	return Variant{kind: Int, value: v}
}

func OfDouble(v float64) Variant {
	return Variant{kind: Double, value: v}
}

func OfString(v string) Variant {
	return Variant{kind: String, value: v}
}

func OfBools(v []bool) Variant {
	return Variant{kind: BoolArray, value: slices.Clone(v)}
}

func OfInts(v []int32) Variant {
	return Variant{kind: IntArray, value: slices.Clone(v)}
}

func OfDoubles(v []float64) Variant {
	return Variant{kind: DoubleArray, value: slices.Clone(v)}
}

func OfStrings(v []string) Variant {
	return Variant{kind: StringArray, value: slices.Clone(v)}
}

// OfValues builds a mixed array. Elements must be scalars accepted by From.
func OfValues(v []any) (Variant, error) {
	values := make([]any, len(v))
	for i, element := range v {
		scalar, err := From(element)
		if err != nil {
			return Variant{}, err
		}
		if scalar.kind.IsArray() {
			return Variant{}, cape.InvalidArgument.New("array element %d is a %s", i, scalar.kind)
		}
		values[i] = scalar.value
	}
	return Variant{kind: Array, value: values}, nil
}

// From boxes a Go value. Supported: nil, bool, int, int32, float64, string,
// their slices, []any of scalars and Variant itself.
func From(v any) (Variant, error) {
	switch t := v.(type) {
	case nil:
		return Variant{}, nil
	case Variant:
		return t, nil
	case bool:
		return OfBool(t), nil
	case int:
		value, err := toInt32(t)
		if err != nil {
			return Variant{}, err
		}
		return OfInt(value), nil
	case int32:
		return OfInt(t), nil
	case float64:
		return OfDouble(t), nil
	case string:
		return OfString(t), nil
	case []bool:
		return OfBools(t), nil
	case []int32:
		return OfInts(t), nil
	case []int:
		ints := make([]int32, len(t))
		for i, value := range t {
			narrowed, err := toInt32(value)
			if err != nil {
				return Variant{}, cape.Decorate(err, "element %d", i)
			}
			ints[i] = narrowed
		}
		return OfInts(ints), nil
	case []float64:
		return OfDoubles(t), nil
	case []string:
		return OfStrings(t), nil
	case []any:
		return OfValues(t)
	default:
		return Variant{}, cape.InvalidArgument.New("cannot box %T into a variant", v)
	}
}

func toInt32(value int) (int32, error) {
	if value < math.MinInt32 || value > math.MaxInt32 {
		return 0, cape.InvalidArgument.New("%d does not fit a 32-bit integer", value)
	}
	return int32(value), nil
}

func (v Variant) Kind() Kind {
	return v.kind
}

func (v Variant) IsEmpty() bool {
	return v.kind == Empty
}

// Len is the element count of arrays, 1 for scalars and 0 when empty.
func (v Variant) Len() int {
	switch t := v.value.(type) {
	case nil:
		return 0
	case []bool:
		return len(t)
	case []int32:
		return len(t)
	case []float64:
		return len(t)
	case []string:
		return len(t)
	case []any:
		return len(t)
	default:
		return 1
	}
}

// Interface returns the boxed value; nil when empty.
func (v Variant) Interface() any {
	return v.value
}

func (v Variant) String() string {
	if v.kind == Empty {
		return "<empty>"
	}
	return fmt.Sprintf("%s(%v)", v.kind, v.value)
}

func (v Variant) mismatch(expected Kind) *cape.Error {
	return cape.InvalidArgument.Builder().
		Message("variant holds %s, expected %s", v.kind, expected).
		OmitStackTrace().
		Build()
}

// Bools narrows a bool array. Empty narrows to nil.
func (v Variant) Bools() ([]bool, error) {
	return array[bool](v, BoolArray)
}

// Ints narrows an int array. Empty narrows to nil.
func (v Variant) Ints() ([]int32, error) {
	return array[int32](v, IntArray)
}

// Doubles narrows a double array. Empty narrows to nil.
func (v Variant) Doubles() ([]float64, error) {
	return array[float64](v, DoubleArray)
}

// Strings narrows a string array. Empty narrows to nil.
func (v Variant) Strings() ([]string, error) {
	return array[string](v, StringArray)
}

// Values narrows any array to its elements; typed arrays are widened.
func (v Variant) Values() ([]any, error) {
	var values []any
	switch t := v.value.(type) {
	case nil:
		return nil, nil
	case []any:
		return slices.Clone(t), nil
	case []bool:
		values = widen(t)
	case []int32:
		values = widen(t)
	case []float64:
		values = widen(t)
	case []string:
		values = widen(t)
	default:
		return nil, v.mismatch(Array)
	}
	return values, nil
}

func array[T any](v Variant, kind Kind) ([]T, error) {
	if v.kind == Empty {
		return nil, nil
	}
	if v.kind != kind {
		return nil, v.mismatch(kind)
	}
	return slices.Clone(v.value.([]T)), nil
}

func widen[T any](values []T) []any {
	out := make([]any, len(values))
	for i, value := range values {
		out[i] = value
	}
	return out
}

func (v Variant) Bool() (bool, error) {
	return scalar[bool](v, Bool)
}

func (v Variant) Int() (int32, error) {
	return scalar[int32](v, Int)
}

func (v Variant) Double() (float64, error) {
	return scalar[float64](v, Double)
}

func (v Variant) Text() (string, error) {
	return scalar[string](v, String)
}

func scalar[T any](v Variant, kind Kind) (out T, err error) {
	if v.kind != kind {
		return out, v.mismatch(kind)
	}
	return v.value.(T), nil
}
