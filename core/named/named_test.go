package named

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type meterTag struct {
	Addable
	Subtractable
	Negatable
	Comparable
}

type Meter = Value[float64, meterTag]

type widthTag struct{}
type heightTag struct{}

type Width = Value[Meter, widthTag]
type Height = Value[Meter, heightTag]

type rectangle struct {
	width  Meter
	height Meter
}

func newRectangle(w Width, h Height) rectangle {
	return rectangle{width: w.Get(), height: h.Get()}
}

func meters(v float64) Meter { return New[meterTag](v) }

func TestBasicUsage(t *testing.T) {
	r := newRectangle(New[widthTag](meters(10)), New[heightTag](meters(12)))
	assert.Equal(t, 10.0, r.width.Get())
	assert.Equal(t, 12.0, r.height.Get())
}

func TestZeroValueUnwrapsToZero(t *testing.T) {
	var m Meter
	assert.Zero(t, m.Get())
}

type nameRefTag struct{}

type NameRef = Ref[string, nameRefTag]

func changeValue(name NameRef) {
	*name.Get() = "value2"
}

func TestReferenceAliasesReferent(t *testing.T) {
	value := "value1"
	changeValue(NewRef[nameRefTag](&value))
	assert.Equal(t, "value2", value)

	a := NewRef[nameRefTag](&value)
	b := NewRef[nameRefTag](&value)
	a.Store("value3")
	assert.Equal(t, "value3", b.Load())
	assert.Equal(t, "value3", value)

	snapshot := b.Value()
	value = "value4"
	assert.Equal(t, "value3", snapshot.Get(), "Value copies, it does not alias")
}

func TestNewRefNilPanics(t *testing.T) {
	assert.Panics(t, func() { NewRef[nameRefTag, string](nil) })
}

func TestArithmetic(t *testing.T) {
	assert.Equal(t, 1200.0, Add(meters(1000), meters(200)).Get())
	assert.Equal(t, 800.0, Sub(meters(1000), meters(200)).Get())
	assert.Equal(t, -3.5, Neg(meters(3.5)).Get())
	assert.Equal(t, 6.0, Sum(meters(1), meters(2), meters(3)).Get())
	assert.Zero(t, Sum[float64, meterTag]().Get())
}

type labelTag struct {
	Addable
	Multiplicable
}

func TestAddConcatenatesStrings(t *testing.T) {
	label := Add(New[labelTag]("kilo"), New[labelTag]("meter"))
	assert.Equal(t, "kilometer", label.Get())

	area := Mul(New[labelTag](3), New[labelTag](4))
	assert.Equal(t, 12, area.Get())
}

func TestComparable(t *testing.T) {
	assert.True(t, Equal(meters(10), meters(10)))
	assert.False(t, Equal(meters(10), meters(11)))
	assert.True(t, NotEqual(meters(10), meters(11)))

	assert.Equal(t, -1, Compare(meters(1), meters(2)))
	assert.Equal(t, 0, Compare(meters(2), meters(2)))
	assert.Equal(t, 1, Compare(meters(3), meters(2)))

	assert.True(t, Less(meters(1), meters(2)))
	assert.True(t, LessOrEqual(meters(2), meters(2)))
	assert.True(t, Greater(meters(3), meters(2)))
	assert.True(t, GreaterOrEqual(meters(2), meters(2)))
	assert.False(t, Greater(meters(2), meters(2)))

	assert.Equal(t, 1.0, Min(meters(1), meters(2)).Get())
	assert.Equal(t, 2.0, Max(meters(1), meters(2)).Get())
}

func TestComparableIsReflexive(t *testing.T) {
	for _, v := range []float64{0, -1, 1e300, math.Inf(1), math.SmallestNonzeroFloat64} {
		assert.True(t, Equal(meters(v), meters(v)), "%g", v)
	}
}

type myIntTag struct {
	ImplicitlyConvertible[uint32]
}

type MyInt = Value[int32, myIntTag]

func TestConvertibleWrapsAround(t *testing.T) {
	myInt := New[myIntTag](int32(-1))
	assert.Equal(t, uint32(math.MaxUint32), ConvertTo[uint32](myInt))

	back := ConvertFrom[myIntTag, int32](uint32(math.MaxUint32))
	assert.Equal(t, int32(-1), back.Get())
}

type serialNumberTag struct {
	Comparable
	Hashable
}

type reversedSerialTag struct {
	Hashable
	Comparable
}

type SerialNumber = Value[string, serialNumberTag]

func TestHashEqualValuesHashAlike(t *testing.T) {
	assert.Equal(t, Hash(New[serialNumberTag]("AA11")), Hash(New[serialNumberTag]("AA11")))
	assert.NotEqual(t, Hash(New[serialNumberTag]("AA11")), Hash(New[serialNumberTag]("BB22")))

	type floatKey struct{ Hashable }
	assert.Equal(t, Hash(New[floatKey](0.0)), Hash(New[floatKey](math.Copysign(0, -1))))

	type pairKey struct{ Hashable }
	type pair struct {
		a int
		b string
	}
	assert.Equal(t, Hash(New[pairKey](pair{1, "x"})), Hash(New[pairKey](pair{1, "x"})))
	assert.NotEqual(t, Hash(New[pairKey](pair{1, "x"})), Hash(New[pairKey](pair{2, "x"})))

	type anyKey struct{ Hashable }
	assert.Equal(t, Hash(New[anyKey, any](7)), Hash(New[anyKey, any](7)))
	assert.NotEqual(t, Hash(New[anyKey, any](7)), Hash(New[anyKey, any](int64(7))))
}

func TestMapWithHashableKeys(t *testing.T) {
	hashMap := NewMap[string, serialNumberTag, int]()
	hashMap.Set(New[serialNumberTag]("AA11"), 10)
	hashMap.Set(New[serialNumberTag]("BB22"), 20)
	cc33 := New[serialNumberTag]("CC33")
	hashMap.Set(cc33, 30)

	v, ok := hashMap.Get(New[serialNumberTag]("AA11"))
	require.True(t, ok)
	assert.Equal(t, 10, v)
	v, _ = hashMap.Get(New[serialNumberTag]("BB22"))
	assert.Equal(t, 20, v)
	v, _ = hashMap.Get(cc33)
	assert.Equal(t, 30, v)

	hashMap.Set(cc33, 33)
	assert.Equal(t, 3, hashMap.Len())
	v, _ = hashMap.Get(New[serialNumberTag]("CC33"))
	assert.Equal(t, 33, v)

	_, ok = hashMap.Get(New[serialNumberTag]("DD44"))
	assert.False(t, ok)
}

func TestMapCapabilityOrderIndependent(t *testing.T) {
	m := NewMap[string, reversedSerialTag, bool]()
	m.Set(New[reversedSerialTag]("AA11"), true)
	assert.True(t, m.Has(New[reversedSerialTag]("AA11")))
}

func TestZeroValueMap(t *testing.T) {
	var m Map[string, serialNumberTag, int]
	assert.False(t, m.Has(New[serialNumberTag]("AA11")))
	m.Delete(New[serialNumberTag]("AA11"))

	m.Set(New[serialNumberTag]("AA11"), 10)
	v, ok := m.Get(New[serialNumberTag]("AA11"))
	require.True(t, ok)
	assert.Equal(t, 10, v)
	assert.Equal(t, 1, m.Len())
}

func TestMapDeleteKeepsInsertionOrder(t *testing.T) {
	m := NewMap[string, serialNumberTag, int]()
	names := []string{"a", "b", "c", "d", "e"}
	for i, n := range names {
		m.Set(New[serialNumberTag](n), i)
	}

	m.Delete(New[serialNumberTag]("b"))
	m.Delete(New[serialNumberTag]("d"))
	m.Delete(New[serialNumberTag]("a"))
	m.Delete(New[serialNumberTag]("missing"))

	assert.Equal(t, 2, m.Len())
	assert.False(t, m.Has(New[serialNumberTag]("a")))

	var got []string
	for _, k := range m.Keys() {
		got = append(got, k.Get())
	}
	assert.Equal(t, []string{"c", "e"}, got)

	m.Set(New[serialNumberTag]("a"), 9)
	v, ok := m.Get(New[serialNumberTag]("a"))
	require.True(t, ok)
	assert.Equal(t, 9, v)

	var visited int
	m.Range(func(Value[string, serialNumberTag], int) bool {
		visited++
		return false
	})
	assert.Equal(t, 1, visited)
}

type comparatorTag struct{}

func performAction[F func() string](comp Value[F, comparatorTag]) string {
	return comp.Get()()
}

func TestGenericType(t *testing.T) {
	comp := Make[comparatorTag](func() string { return "compare" })
	assert.Equal(t, "compare", performAction(comp))
	assert.Equal(t, "compare", Call(comp))

	double := Make[comparatorTag](func(x int) int { return 2 * x })
	assert.Equal(t, 42, Apply(double, 21))
}
