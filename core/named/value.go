// Package named provides strong types: a primitive value wrapped in a distinct,
// non-interchangeable type whose behavior is opted into through capabilities.
//
// A strong type is declared once, as an alias over Value with a tag struct:
//
//	type widthTag struct{ named.Comparable }
//	type Width = named.Value[float64, widthTag]
//
// The tag never exists at run time in any meaningful way; it is a zero-size
// struct whose only role is to make Value[float64, widthTag] and
// Value[float64, heightTag] different types. Capabilities are zero-size markers
// embedded in the tag (see capability.go). Every operation a capability grants
// is a generic function whose constraint demands the marker, so a missing
// capability, a mismatched tag or an unsupported underlying type is a compile
// error, never a run time one.
package named

// Value holds exactly one U under the nominal identity of Tag.
//
// Value is deliberately not comparable: == and use as a built-in map key are
// rejected by the compiler. Equality comes from the Comparable capability and
// keyed lookup from Map.
type Value[U any, Tag any] struct {
	_ [0]func()
	v U
}

// New wraps v. Only the tag needs to be spelled out:
//
//	w := named.New[widthTag](10.0)
func New[Tag any, U any](v U) Value[U, Tag] {
	return Value[U, Tag]{v: v}
}

// Get returns the underlying value.
func (v Value[U, Tag]) Get() U {
	return v.v
}

// Ref holds a non-owning alias to a U under the nominal identity of Tag.
// It is the borrowing counterpart of Value: writes through any Ref are seen by
// every other alias of the same referent and by the original variable.
type Ref[U any, Tag any] struct {
	_ [0]func()
	p *U
}

// NewRef wraps the referent p. It panics if p is nil.
func NewRef[Tag any, U any](p *U) Ref[U, Tag] {
	if p == nil {
		panic("named: NewRef of nil pointer")
	}
	return Ref[U, Tag]{p: p}
}

// Get returns the mutable alias.
func (r Ref[U, Tag]) Get() *U {
	return r.p
}

// Load returns a copy of the referent.
func (r Ref[U, Tag]) Load() U {
	return *r.p
}

// Store overwrites the referent.
func (r Ref[U, Tag]) Store(v U) {
	*r.p = v
}

// Value copies the referent into an owning Value of the same tag.
func (r Ref[U, Tag]) Value() Value[U, Tag] {
	return Value[U, Tag]{v: *r.p}
}
