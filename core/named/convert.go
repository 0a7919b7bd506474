package named

// ConvertTo unwraps v into Target using Go's own conversion rules, so a signed
// to unsigned conversion wraps around exactly as it would on the raw value.
// The tag must carry ImplicitlyConvertible[Target].
//
//	type myIntTag struct{ named.ImplicitlyConvertible[uint32] }
//	named.ConvertTo[uint32](named.New[myIntTag](int32(-1))) // 4294967295
func ConvertTo[Target Real, U Real, Tag convertibleTag[Target]](v Value[U, Tag]) Target {
	return Target(v.v)
}

// ConvertFrom wraps a Target into the strong type, the reverse direction of
// ConvertTo under the same capability. Go infers only Target from the
// argument, so the underlying type U is always spelled out:
//
//	named.ConvertFrom[myIntTag, int32](uint32(7))
//
// Both directions are limited to Real types. A string target is left out
// because Go converts an integer to a string as a rune, not as digits.
func ConvertFrom[Tag convertibleTag[Target], U Real, Target Real](t Target) Value[U, Tag] {
	return Value[U, Tag]{v: U(t)}
}
