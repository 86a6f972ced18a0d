// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cofree

import (
	"sync"
)

// Cofree is a node of a comonadic tree: a head annotation and a branching
// continuation of child nodes. The children live in a container of shape S
// whose elements are *Cofree[S, A]; the shape's capability dictionary is
// passed explicitly to every operation that needs it.
//
// The tail is deferred and memoized, so a Cofree value may describe an
// infinite structure. Nodes are immutable once observed; sharing subtrees
// between parents is fine.
type Cofree[S, A any] struct {
	head A
	tail func() Kind[S]
}

// New constructs a node with an already-materialized branching.
func New[S, A any](head A, tail Kind[S]) *Cofree[S, A] {
	return &Cofree[S, A]{head: head, tail: func() Kind[S] { return tail }}
}

// Defer constructs a node whose branching is computed on first demand and
// memoized. This is the coinductive constructor: tail may corecurse into
// further Defer calls without terminating, as long as observation does.
func Defer[S, A any](head A, tail func() Kind[S]) *Cofree[S, A] {
	return &Cofree[S, A]{head: head, tail: sync.OnceValue(tail)}
}

// Head returns the annotation at this node.
func (c *Cofree[S, A]) Head() A {
	return c.head
}

// Extract returns the annotation at this node — the comonadic counit.
// Identical to [Cofree.Head]; both names appear in client code depending
// on whether the value is being read as a tree or as a comonad.
func (c *Cofree[S, A]) Extract() A {
	return c.head
}

// Tail forces and returns the branching continuation.
// Elements of the returned Kind are *Cofree[S, A].
func (c *Cofree[S, A]) Tail() Kind[S] {
	return c.tail()
}

// ToPair destructures the node into its annotation and its branching.
func (c *Cofree[S, A]) ToPair() (A, Kind[S]) {
	return c.head, c.tail()
}

// Map rewrites every annotation via f, preserving structure.
// The result's tails are deferred, so mapping an infinite tree is safe.
func Map[S, A, B any](s Functor[S], c *Cofree[S, A], f func(A) B) *Cofree[S, B] {
	return Defer(f(c.head), func() Kind[S] {
		return s.Map(c.Tail(), func(x Erased) Erased {
			return Map(s, x.(*Cofree[S, A]), f)
		})
	})
}

// Extend redecorates every node with f applied to the entire subtree
// rooted there — the comonadic cobind. The new tree's branching mirrors
// the original's element-wise.
func Extend[S, A, B any](s Functor[S], c *Cofree[S, A], f func(*Cofree[S, A]) B) *Cofree[S, B] {
	return Defer(f(c), func() Kind[S] {
		return s.Map(c.Tail(), func(x Erased) Erased {
			return Extend(s, x.(*Cofree[S, A]), f)
		})
	})
}

// Duplicate redecorates every node with the subtree rooted there:
// Extend with the identity.
func Duplicate[S, A any](s Functor[S], c *Cofree[S, A]) *Cofree[S, *Cofree[S, A]] {
	return Extend(s, c, func(w *Cofree[S, A]) *Cofree[S, A] { return w })
}

// ScanRight folds bottom-up while keeping the full history: descendants
// are transformed first, then g combines the original head with the
// already-transformed children to produce the new annotation at each
// level. Elements of the Kind passed to g are *Cofree[S, B].
//
// Forces the whole structure — only meaningful on finite trees.
func ScanRight[S, A, B any](s Functor[S], c *Cofree[S, A], g func(head A, done Kind[S]) B) *Cofree[S, B] {
	tail := s.Map(c.Tail(), func(x Erased) Erased {
		return ScanRight(s, x.(*Cofree[S, A]), g)
	})
	return New(g(c.head, tail), tail)
}

// MapBranching reshapes the branching container at every level via the
// natural transformation nt, preserving all annotations.
func MapBranching[S, T, A any](s Functor[S], nt Natural[S, T], c *Cofree[S, A]) *Cofree[T, A] {
	return Defer(c.head, func() Kind[T] {
		return nt(s.Map(c.Tail(), func(x Erased) Erased {
			return MapBranching(s, nt, x.(*Cofree[S, A]))
		}))
	})
}

// MapFirstBranching reshapes only the root's immediate branching,
// leaving descendants untouched.
func MapFirstBranching[S, A any](nt Natural[S, S], c *Cofree[S, A]) *Cofree[S, A] {
	return Defer(c.head, func() Kind[S] {
		return nt(c.Tail())
	})
}

// ApplyCofree applies f to the head and g through the tail.
// The primitive under [Inject] and similar head/tail rewrites.
func ApplyCofree[S, A, B any](s Functor[S], c *Cofree[S, A], f func(A) B, g func(*Cofree[S, A]) *Cofree[S, B]) *Cofree[S, B] {
	return Defer(f(c.head), func() Kind[S] {
		return s.Map(c.Tail(), func(x Erased) Erased {
			return g(x.(*Cofree[S, A]))
		})
	})
}

// Inject replaces every annotation in the tree, the root's included,
// with the constant b.
func Inject[S, A, B any](s Functor[S], c *Cofree[S, A], b B) *Cofree[S, B] {
	return ApplyCofree(s, c, func(A) B { return b }, func(x *Cofree[S, A]) *Cofree[S, B] {
		return Inject(s, x, b)
	})
}

// UnfoldC corecursively builds a tree from a seed: f computes the child
// seeds for the current seed, and the unfold recurses into each of them.
// Elements of the Kind returned by f are A values. The recursion is
// demand-driven, so a generator that never stops describes an infinite
// tree.
func UnfoldC[S, A any](s Functor[S], seed A, f func(A) Kind[S]) *Cofree[S, A] {
	return Defer(seed, func() Kind[S] {
		return s.Map(f(seed), func(x Erased) Erased {
			return UnfoldC(s, x.(A), f)
		})
	})
}

// Unfold generalizes [UnfoldC] to distinct seed and annotation types:
// f splits a seed into the annotation for the current node and the
// container of child seeds. Elements of the returned Kind are B values.
func Unfold[S, A, B any](s Functor[S], seed B, f func(B) (A, Kind[S])) *Cofree[S, A] {
	a, seeds := f(seed)
	return Defer(a, func() Kind[S] {
		return s.Map(seeds, func(x Erased) Erased {
			return Unfold[S, A](s, x.(B), f)
		})
	})
}

// EraseHeads boxes every annotation, producing the erased-head form
// consumed by the shape-generic dictionaries of the [Co] brand.
// Lazy like [Map], so infinite trees survive.
func EraseHeads[S, A any](s Functor[S], c *Cofree[S, A]) *Cofree[S, Erased] {
	return Map(s, c, func(a A) Erased { return a })
}
