// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cofree

// Option is the zero-or-one-child branching shape. A Cofree[Option, A] is
// a non-empty finite or infinite chain.
type Option struct{}

// optionPayload is the container payload of the Option shape.
type optionPayload struct {
	has bool
	v   Erased
}

// SomeOf wraps a present element.
func SomeOf(x Erased) Kind[Option] {
	return Of[Option](optionPayload{has: true, v: x})
}

// NoneOf is the absent container.
func NoneOf() Kind[Option] {
	return Of[Option](optionPayload{})
}

// OptionGet returns the element and whether it is present.
func OptionGet(k Kind[Option]) (Erased, bool) {
	p := k.Val().(optionPayload)
	return p.v, p.has
}

// OptionShape is the capability dictionary for [Option]: Functor, Apply,
// PlusEmpty, Foldable, Traverse, Equal. Concat is first-wins (orElse);
// absence is the identity element.
type OptionShape struct{}

func (OptionShape) Map(s Kind[Option], f func(Erased) Erased) Kind[Option] {
	if v, ok := OptionGet(s); ok {
		return SomeOf(f(v))
	}
	return NoneOf()
}

func (OptionShape) Map2(a, b Kind[Option], f func(x, y Erased) Erased) Kind[Option] {
	x, okA := OptionGet(a)
	y, okB := OptionGet(b)
	if okA && okB {
		return SomeOf(f(x, y))
	}
	return NoneOf()
}

func (OptionShape) Concat(a, b Kind[Option]) Kind[Option] {
	if _, ok := OptionGet(a); ok {
		return a
	}
	return b
}

func (OptionShape) Empty() Kind[Option] {
	return NoneOf()
}

func (OptionShape) FoldLeft(s Kind[Option], z Erased, f func(acc, x Erased) Erased) Erased {
	if v, ok := OptionGet(s); ok {
		return f(z, v)
	}
	return z
}

func (OptionShape) FoldRight(s Kind[Option], z Erased, f func(x, acc Erased) Erased) Erased {
	if v, ok := OptionGet(s); ok {
		return f(v, z)
	}
	return z
}

// wrapSome rebuilds a present container inside an effect.
func wrapSome(x Erased) Erased {
	return Erased(SomeOf(x))
}

func (OptionShape) Traverse(s Kind[Option], g Idiom, f func(Erased) Erased) Erased {
	if v, ok := OptionGet(s); ok {
		return g.Map(f(v), wrapSome)
	}
	return g.Point(Erased(NoneOf()))
}

func (OptionShape) Equal(a, b Kind[Option], eq func(x, y Erased) bool) bool {
	x, okA := OptionGet(a)
	y, okB := OptionGet(b)
	if okA != okB {
		return false
	}
	if !okA {
		return true
	}
	return eq(x, y)
}

// OptionIdiom is the Option applicative viewed as a traversal effect:
// effect values are Kind[Option], erased. Absence anywhere makes the
// whole traversal absent.
type OptionIdiom struct{}

func (OptionIdiom) Point(a Erased) Erased {
	return Erased(SomeOf(a))
}

func (OptionIdiom) Map(ga Erased, f func(Erased) Erased) Erased {
	if v, ok := OptionGet(ga.(Kind[Option])); ok {
		return Erased(SomeOf(f(v)))
	}
	return Erased(NoneOf())
}

func (OptionIdiom) Map2(ga, gb Erased, f func(x, y Erased) Erased) Erased {
	x, okA := OptionGet(ga.(Kind[Option]))
	y, okB := OptionGet(gb.(Kind[Option]))
	if okA && okB {
		return Erased(SomeOf(f(x, y)))
	}
	return Erased(NoneOf())
}
