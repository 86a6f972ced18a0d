// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cofree

// Capability interfaces provided FOR Cofree[S, _].
//
// Derived dictionaries operate shape-generically through the [Co] brand:
// a Kind[Co[S]] wraps a *Cofree[S, Erased], the erased-head form produced
// by [EraseHeads]. Client code generic over comonads or monads consumes
// these exactly like the shape dictionaries in functor.go.

// Co is the brand of the Cofree[S, _] constructor itself, viewed as a
// container shape of its annotations.
type Co[S any] struct{}

// CoKind wraps an erased-head tree for shape-generic consumption.
func CoKind[S any](c *Cofree[S, Erased]) Kind[Co[S]] {
	return Of[Co[S]](c)
}

// CoVal unwraps a Co-branded Kind back to its tree.
func CoVal[S any](k Kind[Co[S]]) *Cofree[S, Erased] {
	return k.Val().(*Cofree[S, Erased])
}

// Comonad is the dual of Monad: extraction of a focused value plus
// context-sensitive redecoration.
type Comonad[S any] interface {
	Functor[S]
	// Extract returns the focused value — for a tree, the root head.
	Extract(w Kind[S]) Erased
	// Cobind redecorates every position with f applied to the whole
	// structure focused there.
	Cobind(w Kind[S], f func(Kind[S]) Erased) Kind[S]
	// Cojoin is Cobind with the identity: every position is annotated
	// with the structure focused there.
	Cojoin(w Kind[S]) Kind[S]
}

// BindM is monadic chaining without a unit.
type BindM[S any] interface {
	Functor[S]
	FlatMap(m Kind[S], f func(Erased) Kind[S]) Kind[S]
}

// Monad is BindM with a unit.
type Monad[S any] interface {
	BindM[S]
	Point(a Erased) Kind[S]
}
