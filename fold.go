// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cofree

// Foldable is the collapsible capability: reduce a container to a single
// value given an explicit zero. Both folds are eager.
type Foldable[S any] interface {
	FoldLeft(s Kind[S], z Erased, f func(acc, x Erased) Erased) Erased
	FoldRight(s Kind[S], z Erased, f func(x, acc Erased) Erased) Erased
}

// Foldable1 is Foldable for containers guaranteed non-empty: the folds
// without a zero map the first (respectively last) element through z
// instead.
//
// FoldMapRight1 passes the folded suffix lazily: a combiner that does not
// force acc stops the fold, which is the only way a right fold over an
// always-branching (hence infinite) structure can terminate.
type Foldable1[S any] interface {
	Foldable[S]
	FoldMapLeft1(s Kind[S], z func(Erased) Erased, f func(acc, x Erased) Erased) Erased
	FoldMapRight1(s Kind[S], z func(Erased) Erased, f func(x Erased, acc func() Erased) Erased) Erased
}

// cursor is the optional accumulator threaded through generic 1-fold
// derivations. The zero cursor means no element has been observed yet.
type cursor struct {
	has bool
	v   Erased
}

// FoldMapLeft1From derives a zero-less left fold from a plain Foldable.
//
// Panics if the container reports no elements: a caller reaching for a
// 1-fold asserts non-emptiness, so an empty observation means the shape's
// own dictionary is inconsistent — a programming error, not a
// recoverable condition.
func FoldMapLeft1From[S any](sf Foldable[S], s Kind[S], z func(Erased) Erased, f func(acc, x Erased) Erased) Erased {
	out := sf.FoldLeft(s, Erased(cursor{}), func(acc, x Erased) Erased {
		cur := acc.(cursor)
		if !cur.has {
			return Erased(cursor{has: true, v: z(x)})
		}
		return Erased(cursor{has: true, v: f(cur.v, x)})
	}).(cursor)
	if !out.has {
		emptyFold1("FoldMapLeft1From")
	}
	return out.v
}

// FoldMapRight1From derives a zero-less right fold from a plain Foldable.
// Panics on an empty container, see [FoldMapLeft1From]. The underlying
// FoldRight is eager, so the suffix handed to f is already folded; only
// genuine Foldable1 shapes can offer a lazy suffix.
func FoldMapRight1From[S any](sf Foldable[S], s Kind[S], z func(Erased) Erased, f func(x Erased, acc func() Erased) Erased) Erased {
	out := sf.FoldRight(s, Erased(cursor{}), func(x, acc Erased) Erased {
		cur := acc.(cursor)
		if !cur.has {
			return Erased(cursor{has: true, v: z(x)})
		}
		v := cur.v
		return Erased(cursor{has: true, v: f(x, func() Erased { return v })})
	}).(cursor)
	if !out.has {
		emptyFold1("FoldMapRight1From")
	}
	return out.v
}

// emptyFold1 panics with a descriptive message for inconsistent shapes.
// Extracted as a noinline function so that fold derivations remain
// inlineable.
//
//go:noinline
func emptyFold1(op string) {
	panic("cofree: " + op + " observed an empty container in a non-empty fold")
}
