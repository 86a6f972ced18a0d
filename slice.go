// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cofree

// Slice is the ordered-sequence branching shape: each node has zero or
// more children in order. This is the general finite-tree shape.
type Slice struct{}

// SliceOf wraps an ordered sequence of elements.
func SliceOf(xs ...Erased) Kind[Slice] {
	return Of[Slice](xs)
}

// SliceVal returns the elements of a Slice container.
func SliceVal(k Kind[Slice]) []Erased {
	return k.Val().([]Erased)
}

// SliceShape is the capability dictionary for [Slice]: Functor, Apply,
// PlusEmpty, Foldable, Traverse, Equal. Map2 zips positionally and
// truncates to the shorter operand; Concat appends.
type SliceShape struct{}

func (SliceShape) Map(s Kind[Slice], f func(Erased) Erased) Kind[Slice] {
	xs := SliceVal(s)
	ys := make([]Erased, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return Of[Slice](ys)
}

func (SliceShape) Map2(a, b Kind[Slice], f func(x, y Erased) Erased) Kind[Slice] {
	xs, ys := SliceVal(a), SliceVal(b)
	n := min(len(xs), len(ys))
	zs := make([]Erased, n)
	for i := range n {
		zs[i] = f(xs[i], ys[i])
	}
	return Of[Slice](zs)
}

func (SliceShape) Concat(a, b Kind[Slice]) Kind[Slice] {
	xs, ys := SliceVal(a), SliceVal(b)
	zs := make([]Erased, 0, len(xs)+len(ys))
	zs = append(zs, xs...)
	zs = append(zs, ys...)
	return Of[Slice](zs)
}

func (SliceShape) Empty() Kind[Slice] {
	return Of[Slice]([]Erased(nil))
}

func (SliceShape) FoldLeft(s Kind[Slice], z Erased, f func(acc, x Erased) Erased) Erased {
	acc := z
	for _, x := range SliceVal(s) {
		acc = f(acc, x)
	}
	return acc
}

func (SliceShape) FoldRight(s Kind[Slice], z Erased, f func(x, acc Erased) Erased) Erased {
	xs := SliceVal(s)
	acc := z
	for i := len(xs) - 1; i >= 0; i-- {
		acc = f(xs[i], acc)
	}
	return acc
}

func (SliceShape) Traverse(s Kind[Slice], g Idiom, f func(Erased) Erased) Erased {
	acc := g.Point(Erased([]Erased(nil)))
	for _, x := range SliceVal(s) {
		acc = g.Map2(acc, f(x), func(ys, y Erased) Erased {
			prev := ys.([]Erased)
			next := make([]Erased, 0, len(prev)+1)
			next = append(next, prev...)
			return Erased(append(next, y))
		})
	}
	return g.Map(acc, func(ys Erased) Erased {
		return Erased(Of[Slice](ys.([]Erased)))
	})
}

func (SliceShape) Equal(a, b Kind[Slice], eq func(x, y Erased) bool) bool {
	xs, ys := SliceVal(a), SliceVal(b)
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
