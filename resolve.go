// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cofree

// Capability resolution for Cofree[S, _].
//
// Several capabilities admit two derivations: a generic one from a weaker
// capability of S, and a specialized one when S natively carries a
// stronger capability. Each resolver probes the S dictionary with
// structural type assertions, most specific first, and returns one
// concrete derivation type per specificity level. The probe order is the
// priority order; because a lookup can only ever take the first matching
// branch, resolution is coherent — no two derivations for the same
// capability are visible in the same lookup.
//
// Specialized derivations must agree with the generic ones observably;
// they are allowed to differ only in cost.

// ---- comonad: base level, S Functor ----

type cofreeComonad[S any] struct {
	s Functor[S]
}

func (d *cofreeComonad[S]) Map(w Kind[Co[S]], f func(Erased) Erased) Kind[Co[S]] {
	return CoKind(Map(d.s, CoVal(w), f))
}

func (d *cofreeComonad[S]) Extract(w Kind[Co[S]]) Erased {
	return CoVal(w).head
}

func (d *cofreeComonad[S]) Cobind(w Kind[Co[S]], f func(Kind[Co[S]]) Erased) Kind[Co[S]] {
	return CoKind(Extend(d.s, CoVal(w), func(x *Cofree[S, Erased]) Erased {
		return f(CoKind(x))
	}))
}

func (d *cofreeComonad[S]) Cojoin(w Kind[Co[S]]) Kind[Co[S]] {
	return CoKind(Extend(d.s, CoVal(w), func(x *Cofree[S, Erased]) Erased {
		return Erased(x)
	}))
}

// ResolveComonad derives the comonad for Cofree[S, _].
// Always available: every shape dictionary is at least a Functor.
func ResolveComonad[S any](s Functor[S]) Comonad[Co[S]] {
	return &cofreeComonad[S]{s: s}
}

// ---- foldable1: generic level, S Foldable ----

type cofreeFoldable1[S any] struct {
	sf Foldable[S]
}

func (d *cofreeFoldable1[S]) FoldLeft(w Kind[Co[S]], z Erased, f func(acc, x Erased) Erased) Erased {
	return d.foldLeftNode(CoVal(w), z, f)
}

func (d *cofreeFoldable1[S]) foldLeftNode(c *Cofree[S, Erased], z Erased, f func(acc, x Erased) Erased) Erased {
	acc := f(z, c.head)
	return d.sf.FoldLeft(c.Tail(), acc, func(a, x Erased) Erased {
		return d.foldLeftNode(x.(*Cofree[S, Erased]), a, f)
	})
}

func (d *cofreeFoldable1[S]) FoldRight(w Kind[Co[S]], z Erased, f func(x, acc Erased) Erased) Erased {
	return d.foldRightNode(CoVal(w), z, f)
}

func (d *cofreeFoldable1[S]) foldRightNode(c *Cofree[S, Erased], z Erased, f func(x, acc Erased) Erased) Erased {
	rest := d.sf.FoldRight(c.Tail(), z, func(x, acc Erased) Erased {
		return d.foldRightNode(x.(*Cofree[S, Erased]), acc, f)
	})
	return f(c.head, rest)
}

func (d *cofreeFoldable1[S]) FoldMapLeft1(w Kind[Co[S]], z func(Erased) Erased, f func(acc, x Erased) Erased) Erased {
	c := CoVal(w)
	return d.sf.FoldLeft(c.Tail(), z(c.head), func(acc, x Erased) Erased {
		return d.foldLeftNode(x.(*Cofree[S, Erased]), acc, f)
	})
}

// lazySuffix is the optional, lazily-folded suffix threaded through
// non-empty right folds. A nil thunk means nothing to the right.
type lazySuffix struct {
	v func() Erased
}

func (d *cofreeFoldable1[S]) FoldMapRight1(w Kind[Co[S]], z func(Erased) Erased, f func(x Erased, acc func() Erased) Erased) Erased {
	return d.foldMapRight1Node(CoVal(w), nil, z, f)
}

// foldMapRight1Node folds a node given the optional lazy suffix to its
// right: children are threaded right-to-left, each receiving the fold of
// everything after it, and the head is combined last. A node with no
// children and no suffix is the final element and goes through z.
func (d *cofreeFoldable1[S]) foldMapRight1Node(c *Cofree[S, Erased], suffix func() Erased, z func(Erased) Erased, f func(x Erased, acc func() Erased) Erased) Erased {
	rest := d.sf.FoldRight(c.Tail(), Erased(lazySuffix{v: suffix}), func(x, acc Erased) Erased {
		after := acc.(lazySuffix)
		child := x.(*Cofree[S, Erased])
		return Erased(lazySuffix{v: func() Erased {
			return d.foldMapRight1Node(child, after.v, z, f)
		}})
	}).(lazySuffix)
	if rest.v == nil {
		return z(c.head)
	}
	return f(c.head, rest.v)
}

// ---- foldable1: specialized level, S natively Foldable1 ----

// cofreeFoldable1Native replaces the suffix-cursor bookkeeping of the
// generic right fold with S's own non-empty fold: children are guaranteed
// to exist, so neither the empty-tail check nor the cursor boxing is
// needed. Elements are visited in the same order as the generic
// derivation; only the cost differs.
type cofreeFoldable1Native[S any] struct {
	cofreeFoldable1[S]
	s1 Foldable1[S]
}

func (d *cofreeFoldable1Native[S]) FoldMapRight1(w Kind[Co[S]], z func(Erased) Erased, f func(x Erased, acc func() Erased) Erased) Erased {
	return d.foldMapRight1Native(CoVal(w), nil, z, f)
}

func (d *cofreeFoldable1Native[S]) foldMapRight1Native(c *Cofree[S, Erased], suffix func() Erased, z func(Erased) Erased, f func(x Erased, acc func() Erased) Erased) Erased {
	return f(c.head, func() Erased {
		return d.s1.FoldMapRight1(c.Tail(),
			func(x Erased) Erased {
				// The outer suffix follows the last child.
				return d.foldMapRight1Native(x.(*Cofree[S, Erased]), suffix, z, f)
			},
			func(x Erased, acc func() Erased) Erased {
				return d.foldMapRight1Native(x.(*Cofree[S, Erased]), acc, z, f)
			})
	})
}

// ResolveFoldable1 derives the non-empty foldable for Cofree[S, _].
// A cofree tree is never empty — the head is always there — so Foldable
// on S is enough for the generic derivation; a native Foldable1 on S is
// probed first and wins with the specialized derivation.
func ResolveFoldable1[S any](s Functor[S]) (Foldable1[Co[S]], bool) {
	if s1, ok := s.(Foldable1[S]); ok {
		return &cofreeFoldable1Native[S]{
			cofreeFoldable1: cofreeFoldable1[S]{sf: s1},
			s1:              s1,
		}, true
	}
	if sf, ok := s.(Foldable[S]); ok {
		return &cofreeFoldable1[S]{sf: sf}, true
	}
	return nil, false
}

// ---- traverse1: generic level, S Traverse ----

// rebuildNode reassembles a node from a traversed head and tail.
// Named generic function to avoid a closure allocation per node.
func rebuildNode[S any](h, t Erased) Erased {
	return Erased(New[S, Erased](h, t.(Kind[S])))
}

// rewrapNode rebrands a traversed tree for shape-generic consumption.
func rewrapNode[S any](c Erased) Erased {
	return Erased(CoKind(c.(*Cofree[S, Erased])))
}

// traverseNode walks one node through the idiom: head first, then the
// children via S's own traversal, recombining inside the effect.
func traverseNode[S any](st Traverse[S], c *Cofree[S, Erased], g Idiom, f func(Erased) Erased) Erased {
	gTail := st.Traverse(c.Tail(), g, func(x Erased) Erased {
		return traverseNode(st, x.(*Cofree[S, Erased]), g, f)
	})
	return g.Map2(f(c.head), gTail, rebuildNode[S])
}

type cofreeTraverse1[S any] struct {
	*cofreeComonad[S]
	*cofreeFoldable1[S]
	st Traverse[S]
}

func (d *cofreeTraverse1[S]) Traverse(w Kind[Co[S]], g Idiom, f func(Erased) Erased) Erased {
	return g.Map(traverseNode(d.st, CoVal(w), g, f), rewrapNode[S])
}

// Traverse1 derives the unit-free traversal from S's plain Traverse by
// running it under [pureOrIdiom]: the head always contributes a genuine
// effect, so the pure layer introduced for empty branching regions is
// collapsed away before the result is returned.
func (d *cofreeTraverse1[S]) Traverse1(w Kind[Co[S]], g ApplyIdiom, f func(Erased) Erased) Erased {
	return g.Map(d.traverse1Node(CoVal(w), g, f), rewrapNode[S])
}

func (d *cofreeTraverse1[S]) traverse1Node(c *Cofree[S, Erased], g ApplyIdiom, f func(Erased) Erased) Erased {
	po := pureOrIdiom{g: g}
	gTail := d.st.Traverse(c.Tail(), po, func(x Erased) Erased {
		return Erased(pureOr{v: d.traverse1Node(x.(*Cofree[S, Erased]), g, f)})
	}).(pureOr)
	if gTail.pure {
		t := gTail.v.(Kind[S])
		return g.Map(f(c.head), func(h Erased) Erased {
			return Erased(New[S, Erased](h, t))
		})
	}
	return g.Map2(f(c.head), gTail.v, rebuildNode[S])
}

// ---- traverse1: specialized level, S natively Traverse1 ----

type cofreeTraverse1Native[S any] struct {
	*cofreeComonad[S]
	cofreeFoldable1Native[S]
	st1 Traverse1[S]
}

func (d *cofreeTraverse1Native[S]) Traverse(w Kind[Co[S]], g Idiom, f func(Erased) Erased) Erased {
	return g.Map(traverseNode(d.st1, CoVal(w), g, f), rewrapNode[S])
}

// Traverse1 goes through S's native non-empty traversal directly:
// no pure layer, no collapse pass.
func (d *cofreeTraverse1Native[S]) Traverse1(w Kind[Co[S]], g ApplyIdiom, f func(Erased) Erased) Erased {
	return g.Map(d.traverse1Node(CoVal(w), g, f), rewrapNode[S])
}

func (d *cofreeTraverse1Native[S]) traverse1Node(c *Cofree[S, Erased], g ApplyIdiom, f func(Erased) Erased) Erased {
	gTail := d.st1.Traverse1(c.Tail(), g, func(x Erased) Erased {
		return d.traverse1Node(x.(*Cofree[S, Erased]), g, f)
	})
	return g.Map2(f(c.head), gTail, rebuildNode[S])
}

// ResolveTraverse1 derives the non-empty traversal for Cofree[S, _].
// A native Traverse1 on S is probed first; the generic derivation from
// Traverse is the fallback.
func ResolveTraverse1[S any](s Functor[S]) (Traverse1[Co[S]], bool) {
	if st1, ok := s.(Traverse1[S]); ok {
		return &cofreeTraverse1Native[S]{
			cofreeComonad: &cofreeComonad[S]{s: s},
			cofreeFoldable1Native: cofreeFoldable1Native[S]{
				cofreeFoldable1: cofreeFoldable1[S]{sf: st1},
				s1:              st1,
			},
			st1: st1,
		}, true
	}
	if st, ok := s.(Traverse[S]); ok {
		return &cofreeTraverse1[S]{
			cofreeComonad:   &cofreeComonad[S]{s: s},
			cofreeFoldable1: &cofreeFoldable1[S]{sf: st},
			st:              st,
		}, true
	}
	return nil, false
}

// ---- bind and monad: independent axis, S Plus / PlusEmpty ----

type cofreeBind[S any] struct {
	*cofreeComonad[S]
	p Plus[S]
}

// FlatMap substitutes: every annotation is replaced by a whole tree, and
// the produced tree's children are grafted in front of the flat-mapped
// original children by S's concatenation. Non-emptiness is preserved —
// the produced head always becomes the new head.
func (d *cofreeBind[S]) FlatMap(m Kind[Co[S]], f func(Erased) Kind[Co[S]]) Kind[Co[S]] {
	return CoKind(d.flatMapNode(CoVal(m), f))
}

func (d *cofreeBind[S]) flatMapNode(c *Cofree[S, Erased], f func(Erased) Kind[Co[S]]) *Cofree[S, Erased] {
	g := CoVal(f(c.head))
	return Defer(g.head, func() Kind[S] {
		return d.p.Concat(g.Tail(), d.s.Map(c.Tail(), func(x Erased) Erased {
			return d.flatMapNode(x.(*Cofree[S, Erased]), f)
		}))
	})
}

type cofreeMonad[S any] struct {
	*cofreeBind[S]
	pe PlusEmpty[S]
}

// Point lifts a value into a leaf: the identity element of S is the
// empty branching.
func (d *cofreeMonad[S]) Point(a Erased) Kind[Co[S]] {
	return CoKind(New[S, Erased](a, d.pe.Empty()))
}

// ResolveBind derives monadic chaining for Cofree[S, _] when S supports
// concatenation of branches.
func ResolveBind[S any](s Functor[S]) (BindM[Co[S]], bool) {
	if p, ok := s.(Plus[S]); ok {
		return &cofreeBind[S]{cofreeComonad: &cofreeComonad[S]{s: s}, p: p}, true
	}
	return nil, false
}

// ResolveMonad derives the full monad for Cofree[S, _] when S additionally
// has an identity element for Point's empty branching.
func ResolveMonad[S any](s Functor[S]) (Monad[Co[S]], bool) {
	if pe, ok := s.(PlusEmpty[S]); ok {
		return &cofreeMonad[S]{
			cofreeBind: &cofreeBind[S]{cofreeComonad: &cofreeComonad[S]{s: s}, p: pe},
			pe:         pe,
		}, true
	}
	return nil, false
}

// ---- equality ----

type cofreeEqual[S any] struct {
	se Equal[S]
}

func (d *cofreeEqual[S]) Equal(a, b Kind[Co[S]], eq func(x, y Erased) bool) bool {
	ca, cb := CoVal(a), CoVal(b)
	if !eq(ca.head, cb.head) {
		return false
	}
	return d.se.Equal(ca.Tail(), cb.Tail(), func(x, y Erased) bool {
		return d.Equal(CoKind(x.(*Cofree[S, Erased])), CoKind(y.(*Cofree[S, Erased])), eq)
	})
}

// ResolveEqual derives recursive structural equality for Cofree[S, _]
// when S can compare its containers.
func ResolveEqual[S any](s Functor[S]) (Equal[Co[S]], bool) {
	if se, ok := s.(Equal[S]); ok {
		return &cofreeEqual[S]{se: se}, true
	}
	return nil, false
}

// ---- aggregate ----

// Instances is the resolved capability set for Cofree[S, _].
// Fields the shape cannot support are nil.
type Instances[S any] struct {
	Comonad   Comonad[Co[S]]
	Foldable1 Foldable1[Co[S]]
	Traverse1 Traverse1[Co[S]]
	Bind      BindM[Co[S]]
	Monad     Monad[Co[S]]
	Equal     Equal[Co[S]]
	ZipApply  Apply[Zip[S]]
}

// Resolve computes the richest capability set derivable for Cofree[S, _]
// from the capabilities of the given S dictionary, in a single lookup.
// When the full monad resolves, it is also installed as the Bind instance
// so that chaining always goes through one dictionary. The zip applicative
// is returned under the [Zip] brand and can never collide with the monad
// in a Co[S] lookup.
func Resolve[S any](s Functor[S]) Instances[S] {
	out := Instances[S]{Comonad: ResolveComonad(s)}
	if d, ok := ResolveFoldable1(s); ok {
		out.Foldable1 = d
	}
	if d, ok := ResolveTraverse1(s); ok {
		out.Traverse1 = d
	}
	if d, ok := ResolveBind(s); ok {
		out.Bind = d
	}
	if d, ok := ResolveMonad(s); ok {
		out.Monad = d
		out.Bind = d
	}
	if d, ok := ResolveEqual(s); ok {
		out.Equal = d
	}
	if d, ok := ResolveZipApply(s); ok {
		out.ZipApply = d
	}
	return out
}
