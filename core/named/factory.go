package named

// Make wraps a callable, or any generic value, under Tag. The callable's type is
// inferred, so a function literal can be wrapped without writing its signature:
//
//	type comparatorTag struct{}
//	cmp := named.Make[comparatorTag](func() string { return "compare" })
//
// Each distinct function type yields a distinct strong type under the same tag.
func Make[Tag any, F any](f F) Value[F, Tag] {
	return New[Tag](f)
}

// Call invokes a wrapped nullary function.
func Call[R any, Tag any](v Value[func() R, Tag]) R {
	return v.v()
}

// Apply invokes a wrapped unary function with a.
func Apply[A any, R any, Tag any](v Value[func(A) R, Tag], a A) R {
	return v.v(a)
}
