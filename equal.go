// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cofree

// Equal is the structural-equality capability for a container shape:
// two containers are equal when they agree in extent and every pair of
// positionally corresponding elements satisfies eq.
type Equal[S any] interface {
	Equal(a, b Kind[S], eq func(x, y Erased) bool) bool
}

// EqualTrees compares two trees recursively: head-wise via eq and
// branch-wise via the shape's own equality. Two trees built independently
// but with identical shape and values compare equal; one differing leaf
// anywhere makes them unequal.
//
// Forces both trees completely — only meaningful on finite structures.
func EqualTrees[S, A any](se Equal[S], a, b *Cofree[S, A], eq func(x, y A) bool) bool {
	if !eq(a.head, b.head) {
		return false
	}
	return se.Equal(a.Tail(), b.Tail(), func(x, y Erased) bool {
		return EqualTrees(se, x.(*Cofree[S, A]), y.(*Cofree[S, A]), eq)
	})
}
