// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cofree

// Identity is the single-child branching shape. A Cofree[Identity, A] is
// an infinite stream: every node has exactly one continuation.
type Identity struct{}

// IdentityOf wraps the single element.
func IdentityOf(x Erased) Kind[Identity] {
	return Of[Identity](x)
}

// IdentityShape is the capability dictionary for [Identity]:
// Functor, Apply, Foldable1, Traverse1, Equal. No Plus — two single-slot
// containers cannot concatenate into one.
type IdentityShape struct{}

func (IdentityShape) Map(s Kind[Identity], f func(Erased) Erased) Kind[Identity] {
	return IdentityOf(f(s.Val()))
}

func (IdentityShape) Map2(a, b Kind[Identity], f func(x, y Erased) Erased) Kind[Identity] {
	return IdentityOf(f(a.Val(), b.Val()))
}

func (IdentityShape) FoldLeft(s Kind[Identity], z Erased, f func(acc, x Erased) Erased) Erased {
	return f(z, s.Val())
}

func (IdentityShape) FoldRight(s Kind[Identity], z Erased, f func(x, acc Erased) Erased) Erased {
	return f(s.Val(), z)
}

func (IdentityShape) FoldMapLeft1(s Kind[Identity], z func(Erased) Erased, f func(acc, x Erased) Erased) Erased {
	return z(s.Val())
}

func (IdentityShape) FoldMapRight1(s Kind[Identity], z func(Erased) Erased, f func(x Erased, acc func() Erased) Erased) Erased {
	return z(s.Val())
}

// wrapIdentity rebuilds the container inside an effect.
// Named function to avoid a closure allocation per traversal step.
func wrapIdentity(x Erased) Erased {
	return Erased(IdentityOf(x))
}

func (IdentityShape) Traverse(s Kind[Identity], g Idiom, f func(Erased) Erased) Erased {
	return g.Map(f(s.Val()), wrapIdentity)
}

func (IdentityShape) Traverse1(s Kind[Identity], g ApplyIdiom, f func(Erased) Erased) Erased {
	return g.Map(f(s.Val()), wrapIdentity)
}

func (IdentityShape) Equal(a, b Kind[Identity], eq func(x, y Erased) bool) bool {
	return eq(a.Val(), b.Val())
}
