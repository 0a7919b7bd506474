package named

// Add returns the wrapper of a.Get() + b.Get(). Both operands must be the same
// strong type and its tag must carry Addable.
func Add[U Summable, Tag addableTag](a, b Value[U, Tag]) Value[U, Tag] {
	return Value[U, Tag]{v: a.v + b.v}
}

// Sum folds Add over vs, starting from the zero value.
func Sum[U Summable, Tag addableTag](vs ...Value[U, Tag]) Value[U, Tag] {
	var total Value[U, Tag]
	for _, v := range vs {
		total.v += v.v
	}
	return total
}

// Sub returns the wrapper of a.Get() - b.Get().
func Sub[U Number, Tag subtractableTag](a, b Value[U, Tag]) Value[U, Tag] {
	return Value[U, Tag]{v: a.v - b.v}
}

// Mul returns the wrapper of a.Get() * b.Get().
func Mul[U Number, Tag multiplicableTag](a, b Value[U, Tag]) Value[U, Tag] {
	return Value[U, Tag]{v: a.v * b.v}
}

// Neg returns the wrapper of -v.Get().
func Neg[U Signed, Tag negatableTag](v Value[U, Tag]) Value[U, Tag] {
	return Value[U, Tag]{v: -v.v}
}
