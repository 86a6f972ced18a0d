// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cofree

// Pairing witnesses that shapes S and G are annihilating duals: given a
// container of each and a combiner, it selects the matching pair of
// elements and collapses them to a single value. The witness is supplied
// by whoever relates the two shapes; this package only consumes it.
type Pairing[S, G any] interface {
	ZapWith(s Kind[S], g Kind[G], f func(x, y Erased) Erased) Erased
}

// ZapWith annihilates a cofree tree against a free computation in
// lock-step: when the computation finishes, its value meets the current
// head; while it is suspended, the pairing witness chooses which branch
// of the tree follows which branch of the computation. Both structures
// are consumed entirely into a single result.
func ZapWith[S, G, A, B, C any](p Pairing[S, G], w *Cofree[S, A], m *Free[G, B], f func(A, B) C) C {
	step, value, done := m.Resume()
	if done {
		return f(w.head, value)
	}
	return p.ZapWith(w.Tail(), step, func(x, y Erased) Erased {
		return ZapWith(p, x.(*Cofree[S, A]), y.(*Free[G, B]), f)
	}).(C)
}

// Zap is [ZapWith] where the monadic side carries functions and the
// combiner is application.
func Zap[S, G, A, C any](p Pairing[S, G], w *Cofree[S, A], m *Free[G, func(A) C]) C {
	return ZapWith(p, w, m, func(a A, f func(A) C) C {
		return f(a)
	})
}

// IdentityPairing witnesses Identity against itself: both sides always
// hold exactly one continuation, so zapping follows the single branch.
type IdentityPairing struct{}

func (IdentityPairing) ZapWith(s Kind[Identity], g Kind[Identity], f func(x, y Erased) Erased) Erased {
	return f(s.Val(), g.Val())
}
