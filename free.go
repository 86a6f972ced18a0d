// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cofree

// Free is the monadic dual of [Cofree]: a computation that is either a
// finished value or a suspended branching step of shape G whose elements
// are further Free computations. It exists here as the counterparty of
// [ZapWith]; only the minimal monadic surface is provided.
type Free[G, A any] struct {
	done  bool
	value A
	step  Kind[G]
}

// DoneF lifts a finished value.
func DoneF[G, A any](a A) *Free[G, A] {
	return &Free[G, A]{done: true, value: a}
}

// RollF suspends one branching step. Elements of step are *Free[G, A].
func RollF[G, A any](step Kind[G]) *Free[G, A] {
	return &Free[G, A]{step: step}
}

// LiftF suspends a single container of plain values, finishing each.
// Elements of step are A values.
func LiftF[G, A any](g Functor[G], step Kind[G]) *Free[G, A] {
	return RollF[G, A](g.Map(step, func(x Erased) Erased {
		return DoneF[G](x.(A))
	}))
}

// Resume exposes one layer: a finished value, or the next suspended step.
func (m *Free[G, A]) Resume() (step Kind[G], value A, done bool) {
	return m.step, m.value, m.done
}

// FreeMap rewrites the final value of a computation.
func FreeMap[G, A, B any](g Functor[G], m *Free[G, A], f func(A) B) *Free[G, B] {
	if m.done {
		return DoneF[G](f(m.value))
	}
	return RollF[G, B](g.Map(m.step, func(x Erased) Erased {
		return FreeMap(g, x.(*Free[G, A]), f)
	}))
}

// FreeBind sequences: the continuation runs on the final value, splicing
// its own suspensions after the existing ones.
func FreeBind[G, A, B any](g Functor[G], m *Free[G, A], f func(A) *Free[G, B]) *Free[G, B] {
	if m.done {
		return f(m.value)
	}
	return RollF[G, B](g.Map(m.step, func(x Erased) Erased {
		return FreeBind(g, x.(*Free[G, A]), f)
	}))
}
