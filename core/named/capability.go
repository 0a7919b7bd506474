package named

import "golang.org/x/exp/constraints"

// Capabilities are zero-size markers embedded in a tag struct:
//
//	type serialTag struct {
//		named.Comparable
//		named.Hashable
//	}
//
// Embedding promotes the marker's unexported method into the tag's method set,
// which is what the operation constraints below look for. The set is a plain
// union, so embedding order does not matter and two capabilities never
// conflict. A tag with no markers yields a wrapper with New and Get only.

// Addable grants Add.
type Addable struct{}

func (Addable) addable() {}

// Subtractable grants Sub.
type Subtractable struct{}

func (Subtractable) subtractable() {}

// Multiplicable grants Mul.
type Multiplicable struct{}

func (Multiplicable) multiplicable() {}

// Negatable grants Neg.
type Negatable struct{}

func (Negatable) negatable() {}

// Comparable grants Equal, NotEqual and, for ordered underlying types,
// Compare, Less and friends.
type Comparable struct{}

func (Comparable) comparableMarker() {}

// Hashable grants Hash. Combined with Comparable it allows a wrapper to key a Map.
type Hashable struct{}

func (Hashable) hashable() {}

// ImplicitlyConvertible grants ConvertTo and ConvertFrom between the wrapper
// and Target. A tag can carry a single ImplicitlyConvertible: two of them
// would hide each other's marker method.
type ImplicitlyConvertible[Target any] struct{}

func (ImplicitlyConvertible[Target]) convertibleTo(Target) {}

type (
	addableTag       interface{ addable() }
	subtractableTag  interface{ subtractable() }
	multiplicableTag interface{ multiplicable() }
	negatableTag     interface{ negatable() }
	comparableTag    interface{ comparableMarker() }
	hashableTag      interface{ hashable() }

	convertibleTag[Target any] interface{ convertibleTo(Target) }

	keyTag interface {
		comparableTag
		hashableTag
	}
)

// Number is any type supporting the arithmetic operators.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Summable is any type supporting +.
type Summable interface {
	Number | ~string
}

// Signed is any number supporting unary minus meaningfully.
type Signed interface {
	constraints.Signed | constraints.Float | constraints.Complex
}

// Real is any integer or floating point type, the domain of Go's numeric conversions.
type Real interface {
	constraints.Integer | constraints.Float
}
