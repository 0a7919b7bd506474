package unit

import (
	"math"
	"math/big"
	"reflect"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"strongtype/core/named"
	"strongtype/internal/errors"
	"strongtype/internal/logging"
)

// Quantity is a floating point amount expressed in the unit Tag.
type Quantity[Tag Unit] = named.Value[float64, Tag]

// Of constructs a quantity in unit Tag. The value is stored as given; no
// scaling happens until the quantity crosses into another unit.
func Of[Tag Unit](v float64) Quantity[Tag] {
	return named.New[Tag](v)
}

// Convert expresses q in the unit To.
//
// The path runs from From up to the closest unit both share and down to To.
// Consecutive ratio hops are multiplied together exactly and applied to the
// value once; each formula on the path runs exactly once, ConvertTo on the way
// up and ConvertFrom on the way down.
//
// Units from different families have no path. Go cannot express a unit family
// in a constraint that callers could satisfy by inference, so that mistake
// panics with an UNRELATED_UNITS *errors.Error at the conversion instead of
// failing the build. A ratio with a zero term panics with INVALID_RATIO, and a
// unit that derives from itself panics with CYCLIC_UNIT.
// Use CheckRelated to verify a pair up front.
//
// The path is resolved once per pair. Afterwards an integer multiple or
// fraction costs one float64 operation; other ratios go through exact decimal
// arithmetic.
func Convert[To Unit, From Unit](q Quantity[From]) Quantity[To] {
	p, err := planFor[To, From]()
	if err != nil {
		panic(err)
	}
	return Of[To](p.apply(q.Get()))
}

// Related reports whether A and B belong to the same family.
func Related[A Unit, B Unit]() bool {
	return CheckRelated[A, B]() == nil
}

// CheckRelated returns the error Convert[B, A] would panic with, or nil.
func CheckRelated[A Unit, B Unit]() error {
	_, err := planFor[B, A]()
	return err
}

// Scale returns the exact factor that turns a quantity in From into one in To,
// rounded to 18 decimal places. It reports false when a formula lies on the
// path, because the relation is then not a scale.
func Scale[To Unit, From Unit]() (decimal.Decimal, bool) {
	p, err := planFor[To, From]()
	if err != nil {
		panic(err)
	}
	total := identity()
	for _, s := range p.steps {
		if s.kind == stepFormula {
			return decimal.Decimal{}, false
		}
		total = total.mul(s.scale)
	}
	return total.num.DivRound(total.den, 18), true
}

// ratio is an exact num/den pair; both terms are integers.
type ratio struct {
	num decimal.Decimal
	den decimal.Decimal
}

func identity() ratio {
	return ratio{num: decimal.NewFromInt(1), den: decimal.NewFromInt(1)}
}

func (r ratio) mul(o ratio) ratio {
	return ratio{num: r.num.Mul(o.num), den: r.den.Mul(o.den)}
}

func (r ratio) isIdentity() bool {
	return r.num.Equal(r.den)
}

// reduced returns r in lowest terms with a positive denominator.
func (r ratio) reduced() ratio {
	num, den := r.num.BigInt(), r.den.BigInt()
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if g.Sign() == 0 {
		return r
	}
	num.Quo(num, g)
	den.Quo(den, g)
	return ratio{num: decimal.NewFromBigInt(num, 0), den: decimal.NewFromBigInt(den, 0)}
}

// maxExactInt is the largest integer magnitude a float64 holds exactly.
const maxExactInt = 1 << 53

// factor reports a float64 f such that v*num/den equals v*f (mul) or v/f
// (div) with a single rounding. ok is false when both terms exceed one.
func (r ratio) factor() (f float64, mul bool, ok bool) {
	one := decimal.NewFromInt(1)
	limit := decimal.NewFromInt(maxExactInt)
	switch {
	case r.den.Equal(one) && r.num.Abs().LessThanOrEqual(limit):
		return r.num.InexactFloat64(), true, true
	case r.num.Equal(one) && r.den.LessThanOrEqual(limit):
		return r.den.InexactFloat64(), false, true
	}
	return 0, false, false
}

// significantDigits is the precision kept when dividing by a denominator,
// comfortably above the 17 digits a float64 can carry.
const significantDigits = 20

// apply returns v*num/den rounded once, from exact decimal arithmetic.
func (r ratio) apply(v float64) float64 {
	if r.isIdentity() {
		return v
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v == 0 {
		return v * r.num.InexactFloat64() / r.den.InexactFloat64()
	}

	d := decimal.NewFromFloat(v).Mul(r.num)
	if !r.den.Equal(decimal.NewFromInt(1)) {
		magnitude := int32(d.NumDigits()) + d.Exponent() - int32(r.den.NumDigits())
		precision := significantDigits - magnitude
		if precision < 0 {
			precision = 0
		}
		d = d.DivRound(r.den, precision)
	}
	f, _ := d.Float64()
	return f
}

func (r ratio) String() string {
	return r.num.String() + "/" + r.den.String()
}

type stepKind uint8

const (
	// stepExact scales through decimal arithmetic.
	stepExact stepKind = iota
	stepMul
	stepDiv
	stepFormula
)

// step is one transformation of a plan: a ratio, or a formula in one direction.
type step struct {
	kind    stepKind
	scale   ratio
	factor  float64
	formula Formula
	toBase  bool
}

func scaleStep(r ratio) step {
	r = r.reduced()
	f, mul, ok := r.factor()
	switch {
	case !ok:
		return step{kind: stepExact, scale: r}
	case mul:
		return step{kind: stepMul, scale: r, factor: f}
	default:
		return step{kind: stepDiv, scale: r, factor: f}
	}
}

func (s step) apply(v float64) float64 {
	switch s.kind {
	case stepMul:
		return v * s.factor
	case stepDiv:
		return v / s.factor
	case stepExact:
		return s.scale.apply(v)
	}
	if s.toBase {
		return s.formula.ConvertTo(v)
	}
	return s.formula.ConvertFrom(v)
}

func (s step) String() string {
	switch {
	case s.kind != stepFormula:
		return "x" + s.scale.String()
	case s.toBase:
		return reflect.TypeOf(s.formula).String() + ".ConvertTo"
	default:
		return reflect.TypeOf(s.formula).String() + ".ConvertFrom"
	}
}

// plan is the resolved conversion between two units.
type plan struct {
	steps []step
}

func (p *plan) apply(v float64) float64 {
	for _, s := range p.steps {
		v = s.apply(v)
	}
	return v
}

func (p *plan) String() string {
	if len(p.steps) == 0 {
		return "identity"
	}
	parts := make([]string, len(p.steps))
	for i, s := range p.steps {
		parts[i] = s.String()
	}
	return strings.Join(parts, " -> ")
}

type planEntry struct {
	plan *plan
	err  error
}

// plans memoizes resolved conversions: source unit to a *sync.Map of target
// unit to *planEntry. Keys are reflect.Type values so lookups do not allocate.
var plans sync.Map

func planFor[To Unit, From Unit]() (*plan, error) {
	from, to := reflect.TypeFor[From](), reflect.TypeFor[To]()
	targets, ok := plans.Load(from)
	if !ok {
		targets, _ = plans.LoadOrStore(from, new(sync.Map))
	}
	byTarget := targets.(*sync.Map)
	if e, ok := byTarget.Load(to); ok {
		entry := e.(*planEntry)
		return entry.plan, entry.err
	}

	p, err := resolve(nodeOf[From](nil), nodeOf[To](nil))
	switch {
	case errors.IsType(err, errors.TypeUnrelatedUnits):
		logging.Warn("unit conversion rejected",
			zap.Stringer("from", from),
			zap.Stringer("to", to),
			zap.Error(err),
		)
	case err != nil:
		logging.Error("unit conversion rejected",
			zap.Stringer("from", from),
			zap.Stringer("to", to),
			zap.Error(err),
		)
	default:
		logging.Debug("resolved unit conversion",
			zap.Stringer("from", from),
			zap.Stringer("to", to),
			zap.Stringer("plan", p),
		)
	}

	e, _ := byTarget.LoadOrStore(to, &planEntry{plan: p, err: err})
	entry := e.(*planEntry)
	return entry.plan, entry.err
}

// resolve walks from up to the closest common ancestor of from and to, then
// down to to, folding adjacent ratio hops into a single scale.
func resolve(from, to *node) (*plan, error) {
	for _, n := range []*node{from, to} {
		if c := n.cycle(); c != nil {
			return nil, errors.CyclicUnit(c.name())
		}
	}

	up := from.chain()
	index := make(map[reflect.Type]int, len(up))
	for i, n := range up {
		index[n.id] = i
	}

	down := to.chain()
	meet, lca := -1, -1
	for i, n := range down {
		if j, ok := index[n.id]; ok {
			meet, lca = i, j
			break
		}
	}
	if lca < 0 {
		return nil, errors.UnrelatedUnits(from.name(), to.name())
	}

	p := &plan{}
	acc := identity()
	flush := func() {
		if !acc.isIdentity() {
			p.steps = append(p.steps, scaleStep(acc))
		}
		acc = identity()
	}

	for _, n := range up[:lca] {
		if n.isRatio() {
			r, err := ratioOf(n)
			if err != nil {
				return nil, err
			}
			acc = acc.mul(r)
			continue
		}
		flush()
		p.steps = append(p.steps, step{kind: stepFormula, formula: n.formula, toBase: true})
	}

	for i := meet - 1; i >= 0; i-- {
		n := down[i]
		if n.isRatio() {
			r, err := ratioOf(n)
			if err != nil {
				return nil, err
			}
			acc = acc.mul(ratio{num: r.den, den: r.num})
			continue
		}
		flush()
		p.steps = append(p.steps, step{kind: stepFormula, formula: n.formula})
	}
	flush()

	return p, nil
}

func ratioOf(n *node) (ratio, error) {
	if n.num == 0 || n.den == 0 {
		return ratio{}, errors.InvalidRatio(n.num, n.den).WithContext("unit", n.name())
	}
	return ratio{num: decimal.NewFromInt(n.num), den: decimal.NewFromInt(n.den)}, nil
}
