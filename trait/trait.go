package trait

import "github.com/avila-r/cape/id"

// Trait is a property shared by error classes across the hierarchy, such as
// "carries bounds" or "is a timeout". Classes inherit traits from their
// namespace and parent class.
type Trait struct {
	ID    uint64
	Label string
}

func New(label string) Trait {
	return Trait{
		ID:    id.Next(),
		Label: label,
	}
}

func (t Trait) String() string {
	return t.Label
}

var (
	timeout    = New("timeout")
	boundaries = New("boundaries")
	argument   = New("argument")
	persistent = New("persistence")
)

// Timeout marks errors raised because an operation ran out of time.
func Timeout() Trait {
	return timeout
}

// Boundaries marks errors carrying lower bound, upper bound, value and type.
func Boundaries() Trait {
	return boundaries
}

// Argument marks errors carrying the 1-based position of the offending argument.
func Argument() Trait {
	return argument
}

// Persistence marks errors raised while saving or loading component state.
func Persistence() Trait {
	return persistent
}
