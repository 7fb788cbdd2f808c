package property

import (
	"reflect"
)

// Keys of the CAPE-OPEN payload carried by errors. Which keys are present
// depends on the error kind.
const (
	Position           = "position"
	LowerBound         = "lower_bound"
	UpperBound         = "upper_bound"
	Value              = "value"
	Type               = "type"
	RequestedOperation = "requested_operation"
	ItemName           = "item_name"
	Underlying         = "underlying"
)

// List represents map of properties.
// Compared to builtin type, it uses less allocations and reallocations on copy.
// It is implemented as a simple linked list; Set shadows earlier values.
type List struct {
	Key   string
	Value any
	Next  *List
}

func (p *List) Set(key string, value any) *List {
	return &List{Key: key, Value: value, Next: p}
}

func (p *List) Get(key string) (value any, ok bool) {
	for p != nil {
		if p.Key == key {
			return p.Value, true
		}
		p = p.Next
	}
	return nil, false
}

// Each visits every visible key once, most recent first.
func (p *List) Each(do func(key string, value any)) {
	seen := map[string]struct{}{}
	for ; p != nil; p = p.Next {
		if _, ok := seen[p.Key]; ok {
			continue
		}
		seen[p.Key] = struct{}{}
		do(p.Key, p.Value)
	}
}

type Result struct {
	Value any
	Ok    bool
}

func Empty() Result {
	return Result{}
}

func (r Result) Get() (value any, ok bool) {
	return r.Value, r.Ok
}

// Bind stores the value into out, which must be a pointer to an assignable type.
func (r Result) Bind(out any) bool {
	if !r.Ok || r.Value == nil {
		return false
	}

	v := reflect.ValueOf(out)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return false
	}

	target, bind := v.Elem(), reflect.ValueOf(r.Value)
	if !target.CanSet() || !bind.Type().AssignableTo(target.Type()) {
		return false
	}

	target.Set(bind)
	return true
}
