// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cofree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/cofree"
)

// delay suspends n identity steps before finishing with a.
func delay[A any](n int, a A) *cofree.Free[cofree.Identity, A] {
	if n == 0 {
		return cofree.DoneF[cofree.Identity](a)
	}
	return cofree.RollF[cofree.Identity, A](cofree.IdentityOf(delay(n-1, a)))
}

// runDelay drives an identity-shaped computation to completion, counting
// the suspensions consumed.
func runDelay[A any](m *cofree.Free[cofree.Identity, A]) (A, int) {
	steps := 0
	for {
		step, value, done := m.Resume()
		if done {
			return value, steps
		}
		steps++
		m = step.Val().(*cofree.Free[cofree.Identity, A])
	}
}

func TestDoneResumesImmediately(t *testing.T) {
	v, steps := runDelay(cofree.DoneF[cofree.Identity](7))
	require.Equal(t, 7, v)
	require.Equal(t, 0, steps)
}

func TestRollSuspends(t *testing.T) {
	v, steps := runDelay(delay(3, "done"))
	require.Equal(t, "done", v)
	require.Equal(t, 3, steps)
}

func TestLiftFSuspendsOnce(t *testing.T) {
	m := cofree.LiftF[cofree.Identity, int](cofree.IdentityShape{}, cofree.IdentityOf(5))
	v, steps := runDelay(m)
	require.Equal(t, 5, v)
	require.Equal(t, 1, steps)
}

func TestFreeMapKeepsSuspensions(t *testing.T) {
	m := cofree.FreeMap(cofree.IdentityShape{}, delay(2, 21), func(n int) int { return n * 2 })
	v, steps := runDelay(m)
	require.Equal(t, 42, v)
	require.Equal(t, 2, steps)
}

func TestFreeBindSplicesSuspensions(t *testing.T) {
	m := cofree.FreeBind(cofree.IdentityShape{}, delay(2, 3), func(n int) *cofree.Free[cofree.Identity, int] {
		return delay(n, n*10)
	})
	v, steps := runDelay(m)
	require.Equal(t, 30, v)
	require.Equal(t, 5, steps, "continuation suspensions follow the existing ones")
}

// TestZapWithConsumesOneHeadPerSuspension pins the annihilation pacing:
// each suspension of the computation advances the stream by one element,
// and the finishing value meets the head reached at that point.
func TestZapWithConsumesOneHeadPerSuspension(t *testing.T) {
	naturals := cofree.UnfoldC(cofree.IdentityShape{}, 0, func(n int) cofree.Kind[cofree.Identity] {
		return cofree.IdentityOf(n + 1)
	})
	m := cofree.FreeMap(cofree.IdentityShape{}, delay(2, 10), func(k int) int { return k })
	got := cofree.ZapWith(cofree.IdentityPairing{}, naturals, m, func(head, final int) int {
		return head * final
	})
	require.Equal(t, 20, got)
}

func TestZapAppliesSuspendedFunction(t *testing.T) {
	naturals := cofree.UnfoldC(cofree.IdentityShape{}, 0, func(n int) cofree.Kind[cofree.Identity] {
		return cofree.IdentityOf(n + 1)
	})
	m := delay(3, func(n int) string {
		return string(rune('a' + n))
	})
	got := cofree.Zap(cofree.IdentityPairing{}, naturals, m)
	require.Equal(t, "d", got, "three suspensions land on stream element 3")
}

func TestZapDoneReadsTheRoot(t *testing.T) {
	naturals := cofree.UnfoldC(cofree.IdentityShape{}, 9, func(n int) cofree.Kind[cofree.Identity] {
		return cofree.IdentityOf(n + 1)
	})
	got := cofree.ZapWith(cofree.IdentityPairing{}, naturals, cofree.DoneF[cofree.Identity]("x"),
		func(head int, s string) string {
			if head != 9 {
				t.Fatalf("finished computation must meet the root head, got %d", head)
			}
			return s
		})
	require.Equal(t, "x", got)
}
