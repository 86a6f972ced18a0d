// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cofree

// Traverse is the effectful-walk capability: rewrite every element through
// an effect described by an [Idiom], collecting the rebuilt container
// inside the effect. The erased result is g's constructor applied to a
// Kind[S] of the rewritten elements.
type Traverse[S any] interface {
	Functor[S]
	Foldable[S]
	Traverse(s Kind[S], g Idiom, f func(Erased) Erased) Erased
}

// Traverse1 is Traverse for containers guaranteed non-empty. Because at
// least one effect is always produced, the idiom needs no unit: an
// [ApplyIdiom] suffices.
type Traverse1[S any] interface {
	Traverse[S]
	Foldable1[S]
	Traverse1(s Kind[S], g ApplyIdiom, f func(Erased) Erased) Erased
}

// pureOr is a value of the effect constructor extended with a pure layer:
// either an effectful value of the underlying idiom, or a pure value not
// yet lifted. It lets an ApplyIdiom without a unit stand in where an Idiom
// is required, as long as at least one genuine effect appears — the pure
// layer absorbs the unit obligations of structurally empty regions.
type pureOr struct {
	pure bool
	v    Erased // pure value when pure, effect value otherwise
}

// pureOrIdiom adapts an [ApplyIdiom] into a full [Idiom] over [pureOr]
// values. Point produces the pure layer; Map2 collapses pure operands into
// the other side's effect so the underlying Map2 only ever sees real
// effects on both sides.
type pureOrIdiom struct {
	g ApplyIdiom
}

func (p pureOrIdiom) Point(a Erased) Erased {
	return pureOr{pure: true, v: a}
}

func (p pureOrIdiom) Map(ga Erased, f func(Erased) Erased) Erased {
	x := ga.(pureOr)
	if x.pure {
		return pureOr{pure: true, v: f(x.v)}
	}
	return pureOr{v: p.g.Map(x.v, f)}
}

func (p pureOrIdiom) Map2(ga, gb Erased, f func(x, y Erased) Erased) Erased {
	x := ga.(pureOr)
	y := gb.(pureOr)
	switch {
	case x.pure && y.pure:
		return pureOr{pure: true, v: f(x.v, y.v)}
	case x.pure:
		return pureOr{v: p.g.Map(y.v, func(b Erased) Erased { return f(x.v, b) })}
	case y.pure:
		return pureOr{v: p.g.Map(x.v, func(a Erased) Erased { return f(a, y.v) })}
	default:
		return pureOr{v: p.g.Map2(x.v, y.v, f)}
	}
}
