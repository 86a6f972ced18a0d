// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cofree

// Capability dictionaries for container shapes.
//
// A shape publishes one dictionary value implementing the subset of these
// interfaces it supports. The resolution hierarchy (resolve.go) probes that
// value with structural type assertions, so richer capabilities must be
// implemented on the same dictionary value, not on a separate one.

// Functor is the mappable capability: rewrite every element of a container,
// preserving its structure.
type Functor[S any] interface {
	Map(s Kind[S], f func(Erased) Erased) Kind[S]
}

// Apply is the zip capability: combine two containers pointwise.
// Map2 pairs elements positionally; the shape defines what happens when
// the two containers disagree in extent (e.g. Slice truncates to the
// shorter operand).
type Apply[S any] interface {
	Functor[S]
	Map2(a, b Kind[S], f func(x, y Erased) Erased) Kind[S]
}

// Plus is the combinable capability: concatenate two containers.
// Concat must be associative.
type Plus[S any] interface {
	Concat(a, b Kind[S]) Kind[S]
}

// PlusEmpty is Plus with an identity element.
// Concat(Empty(), s) and Concat(s, Empty()) must both equal s.
type PlusEmpty[S any] interface {
	Plus[S]
	Empty() Kind[S]
}

// ApplyIdiom is an erased applicative without a unit, consumed by
// [Traverse1]. Values of the effect constructor flow through as Erased;
// the idiom itself fixes their concrete type.
type ApplyIdiom interface {
	Map(ga Erased, f func(Erased) Erased) Erased
	Map2(ga, gb Erased, f func(x, y Erased) Erased) Erased
}

// Idiom is an erased applicative functor, consumed by [Traverse].
// Point lifts a pure value into the effect.
type Idiom interface {
	ApplyIdiom
	Point(a Erased) Erased
}
