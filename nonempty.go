// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cofree

// NonEmpty is the ordered-sequence branching shape guaranteed to hold at
// least one element. It carries native non-empty folds and traversals,
// and Plus without an identity — concatenation preserves non-emptiness,
// but there is no empty container to serve as a unit.
type NonEmpty struct{}

// NonEmptyOf wraps a sequence with a mandatory first element.
func NonEmptyOf(first Erased, rest ...Erased) Kind[NonEmpty] {
	xs := make([]Erased, 0, 1+len(rest))
	xs = append(xs, first)
	xs = append(xs, rest...)
	return Of[NonEmpty](xs)
}

// NonEmptyVal returns the elements of a NonEmpty container.
// Panics if the payload is empty: such a value cannot be built through
// [NonEmptyOf], so observing one means the container was forged.
func NonEmptyVal(k Kind[NonEmpty]) []Erased {
	xs := k.Val().([]Erased)
	if len(xs) == 0 {
		panic("cofree: empty payload in NonEmpty container")
	}
	return xs
}

// NonEmptyShape is the capability dictionary for [NonEmpty]: Functor,
// Apply, Plus, Foldable1, Traverse1, Equal.
type NonEmptyShape struct{}

func (NonEmptyShape) Map(s Kind[NonEmpty], f func(Erased) Erased) Kind[NonEmpty] {
	xs := NonEmptyVal(s)
	ys := make([]Erased, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return Of[NonEmpty](ys)
}

func (NonEmptyShape) Map2(a, b Kind[NonEmpty], f func(x, y Erased) Erased) Kind[NonEmpty] {
	xs, ys := NonEmptyVal(a), NonEmptyVal(b)
	n := min(len(xs), len(ys))
	zs := make([]Erased, n)
	for i := range n {
		zs[i] = f(xs[i], ys[i])
	}
	return Of[NonEmpty](zs)
}

func (NonEmptyShape) Concat(a, b Kind[NonEmpty]) Kind[NonEmpty] {
	xs, ys := NonEmptyVal(a), NonEmptyVal(b)
	zs := make([]Erased, 0, len(xs)+len(ys))
	zs = append(zs, xs...)
	zs = append(zs, ys...)
	return Of[NonEmpty](zs)
}

func (NonEmptyShape) FoldLeft(s Kind[NonEmpty], z Erased, f func(acc, x Erased) Erased) Erased {
	acc := z
	for _, x := range NonEmptyVal(s) {
		acc = f(acc, x)
	}
	return acc
}

func (NonEmptyShape) FoldRight(s Kind[NonEmpty], z Erased, f func(x, acc Erased) Erased) Erased {
	xs := NonEmptyVal(s)
	acc := z
	for i := len(xs) - 1; i >= 0; i-- {
		acc = f(xs[i], acc)
	}
	return acc
}

func (NonEmptyShape) FoldMapLeft1(s Kind[NonEmpty], z func(Erased) Erased, f func(acc, x Erased) Erased) Erased {
	xs := NonEmptyVal(s)
	acc := z(xs[0])
	for _, x := range xs[1:] {
		acc = f(acc, x)
	}
	return acc
}

// FoldMapRight1 recurses from the left so that a combiner not forcing
// its suffix never touches the elements to the right.
func (NonEmptyShape) FoldMapRight1(s Kind[NonEmpty], z func(Erased) Erased, f func(x Erased, acc func() Erased) Erased) Erased {
	xs := NonEmptyVal(s)
	var fold func(i int) Erased
	fold = func(i int) Erased {
		if i == len(xs)-1 {
			return z(xs[i])
		}
		return f(xs[i], func() Erased { return fold(i + 1) })
	}
	return fold(0)
}

func (NonEmptyShape) Traverse(s Kind[NonEmpty], g Idiom, f func(Erased) Erased) Erased {
	return nonEmptyTraverse(s, g, f)
}

func (NonEmptyShape) Traverse1(s Kind[NonEmpty], g ApplyIdiom, f func(Erased) Erased) Erased {
	return nonEmptyTraverse(s, g, f)
}

// nonEmptyTraverse seeds the accumulator from the first element, so no
// unit on the idiom is ever needed.
func nonEmptyTraverse(s Kind[NonEmpty], g ApplyIdiom, f func(Erased) Erased) Erased {
	xs := NonEmptyVal(s)
	acc := g.Map(f(xs[0]), func(y Erased) Erased {
		return Erased([]Erased{y})
	})
	for _, x := range xs[1:] {
		acc = g.Map2(acc, f(x), func(ys, y Erased) Erased {
			prev := ys.([]Erased)
			next := make([]Erased, 0, len(prev)+1)
			next = append(next, prev...)
			return Erased(append(next, y))
		})
	}
	return g.Map(acc, func(ys Erased) Erased {
		return Erased(Of[NonEmpty](ys.([]Erased)))
	})
}

func (NonEmptyShape) Equal(a, b Kind[NonEmpty], eq func(x, y Erased) bool) bool {
	xs, ys := NonEmptyVal(a), NonEmptyVal(b)
	if len(xs) != len(ys) {
		return false
	}
	for i, x := range xs {
		if !eq(x, ys[i]) {
			return false
		}
	}
	return true
}
