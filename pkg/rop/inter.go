package rop

// Presence is implemented by wrappers that can tell whether they carry a value.
type Presence interface {
	// IsPresent returns true if a value is available
	IsPresent() bool
}

// ValueProvider extends Presence with access to the carried value
type ValueProvider[T any] interface {
	Presence
	// Get returns the value and whether it is present
	Get() (T, bool)
}

// Alternative describes a wrapper type W with an empty element and a lazy
// choice. Alt must return first unchanged when first carries a value and
// must only call second otherwise.
type Alternative[W any] interface {
	// Zero returns the empty element of W
	Zero() W
	// Alt picks first when it holds a value, otherwise the result of second
	Alt(first W, second func() W) W
}

var (
	_ ValueProvider[int] = Option[int]{}
	_ ValueProvider[int] = Validation[string, int]{}
)
