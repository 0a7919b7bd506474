// Package unit builds units of measure on top of named strong types.
//
// A unit is a tag struct that embeds exactly one relation marker next to any
// capabilities from package named:
//
//	type meterTag struct {
//		unit.Base
//		named.Addable
//		named.Comparable
//	}
//	type kilometerTag struct {
//		unit.MultipleOf[meterTag, unit.Kilo]
//		named.Addable
//		named.Comparable
//	}
//	type mileTag struct {
//		unit.ConvertibleTo[kilometerTag, mileFromKilometer]
//	}
//
// Units related through markers form a family rooted at a Base unit. Convert
// moves a Quantity between any two units of one family; the derivation graph
// is read from the tag types themselves, there is no registry.
package unit

import (
	"reflect"
)

// Unit is satisfied by tag structs that embed Base, MultipleOf or ConvertibleTo.
// Embedding two of them leaves the tag without a relation and fails the constraint.
type Unit interface {
	link(seen []reflect.Type) *node
}

// Ratio is an exact rational scale factor, num/den.
type Ratio interface {
	Ratio() (num, den int64)
}

// Formula is a bidirectional mapping between a derived unit and its base.
// Implementations are stateless; the zero value is used.
type Formula interface {
	// ConvertFrom maps a value in the base unit to the derived unit.
	ConvertFrom(base float64) float64

	// ConvertTo maps a value in the derived unit back to the base unit.
	ConvertTo(derived float64) float64
}

// Base marks the root unit of a family.
type Base struct{}

func (Base) link([]reflect.Type) *node {
	return &node{}
}

// MultipleOf marks a unit worth R of unit B: one derived unit converts to
// num/den base units.
type MultipleOf[B Unit, R Ratio] struct{}

func (MultipleOf[B, R]) link(seen []reflect.Type) *node {
	var r R
	num, den := r.Ratio()
	return &node{parent: nodeOf[B](seen), num: num, den: den}
}

// ConvertibleTo marks a unit related to B by the formula F.
type ConvertibleTo[B Unit, F Formula] struct{}

func (ConvertibleTo[B, F]) link(seen []reflect.Type) *node {
	var f F
	return &node{parent: nodeOf[B](seen), formula: f}
}

// node is one unit in a derivation chain. Exactly one of the ratio terms or
// formula is set on every node except a root. A cyclic node closes a chain
// that reached a unit already on it; it has no parent.
type node struct {
	id      reflect.Type
	parent  *node
	num     int64
	den     int64
	formula Formula
	cyclic  bool
}

// nodeOf builds the chain of T. seen holds the units already visited on the chain
// being built, so a unit deriving from itself ends in a cyclic node instead
// of recursing forever.
func nodeOf[T Unit](seen []reflect.Type) *node {
	id := reflect.TypeFor[T]()
	for _, s := range seen {
		if s == id {
			return &node{id: id, cyclic: true}
		}
	}

	var t T
	n := t.link(append(seen[:len(seen):len(seen)], id))
	n.id = id
	return n
}

func (n *node) isRatio() bool {
	return n.parent != nil && n.formula == nil
}

// cycle returns the unit that closes a cycle on n's chain, or nil.
func (n *node) cycle() *node {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.cyclic {
			return cur
		}
	}
	return nil
}

// chain lists n and its ancestors, n first.
func (n *node) chain() []*node {
	var out []*node
	for cur := n; cur != nil; cur = cur.parent {
		out = append(out, cur)
	}
	return out
}

func (n *node) name() string {
	if n.id == nil {
		return "<anonymous>"
	}
	return n.id.String()
}
