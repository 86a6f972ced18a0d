// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cofree_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"code.hybscloud.com/cofree"
)

// leaf builds a slice-branching node with no children.
func leaf(n int) *cofree.Cofree[cofree.Slice, int] {
	return cofree.New(n, cofree.SliceOf())
}

// node builds a slice-branching node with the given children.
func node(n int, kids ...*cofree.Cofree[cofree.Slice, int]) *cofree.Cofree[cofree.Slice, int] {
	xs := make([]cofree.Erased, len(kids))
	for i, k := range kids {
		xs[i] = k
	}
	return cofree.New(n, cofree.SliceOf(xs...))
}

// heads collects annotations depth-first, root first.
func heads[A any](c *cofree.Cofree[cofree.Slice, A]) []A {
	out := []A{c.Head()}
	for _, x := range cofree.SliceVal(c.Tail()) {
		out = append(out, heads(x.(*cofree.Cofree[cofree.Slice, A]))...)
	}
	return out
}

// sumTree adds up every annotation of a finite tree.
func sumTree(c *cofree.Cofree[cofree.Slice, int]) int {
	total := c.Head()
	for _, x := range cofree.SliceVal(c.Tail()) {
		total += sumTree(x.(*cofree.Cofree[cofree.Slice, int]))
	}
	return total
}

func intEq(a, b int) bool { return a == b }

func TestHeadExtractTail(t *testing.T) {
	c := node(1, leaf(2), leaf(3))
	if c.Head() != 1 {
		t.Fatalf("Head: got %d, want 1", c.Head())
	}
	if c.Extract() != 1 {
		t.Fatalf("Extract: got %d, want 1", c.Extract())
	}
	if n := len(cofree.SliceVal(c.Tail())); n != 2 {
		t.Fatalf("Tail children: got %d, want 2", n)
	}
}

func TestToPair(t *testing.T) {
	c := node(7, leaf(8))
	h, tail := c.ToPair()
	if h != 7 {
		t.Fatalf("head: got %d, want 7", h)
	}
	if n := len(cofree.SliceVal(tail)); n != 1 {
		t.Fatalf("tail children: got %d, want 1", n)
	}
}

func TestDeferMemoizesTail(t *testing.T) {
	forced := 0
	c := cofree.Defer(1, func() cofree.Kind[cofree.Slice] {
		forced++
		return cofree.SliceOf()
	})
	c.Tail()
	c.Tail()
	if forced != 1 {
		t.Fatalf("tail forced %d times, want 1", forced)
	}
}

func TestMapRewritesEveryHead(t *testing.T) {
	c := node(1, node(2, leaf(4)), leaf(3))
	m := cofree.Map(cofree.SliceShape{}, c, func(n int) int { return n * 10 })
	if diff := cmp.Diff([]int{10, 20, 40, 30}, heads(m)); diff != "" {
		t.Fatalf("mapped heads mismatch (-want +got):\n%s", diff)
	}
}

func TestMapChangesElementType(t *testing.T) {
	c := node(1, leaf(2))
	m := cofree.Map(cofree.SliceShape{}, c, func(n int) string {
		return string(rune('a' + n))
	})
	if diff := cmp.Diff([]string{"b", "c"}, heads(m)); diff != "" {
		t.Fatalf("mapped heads mismatch (-want +got):\n%s", diff)
	}
}

func TestExtendDecoratesWithSubtreeSums(t *testing.T) {
	c := node(1, node(2, leaf(4)), leaf(3))
	e := cofree.Extend(cofree.SliceShape{}, c, sumTree)
	if diff := cmp.Diff([]int{10, 6, 4, 3}, heads(e)); diff != "" {
		t.Fatalf("extended heads mismatch (-want +got):\n%s", diff)
	}
}

func TestDuplicateNodesHoldTheirSubtrees(t *testing.T) {
	c := node(1, leaf(2), leaf(3))
	d := cofree.Duplicate(cofree.SliceShape{}, c)
	if got := d.Head(); got != c {
		t.Fatalf("root of duplicate is not the original tree")
	}
	kids := cofree.SliceVal(d.Tail())
	orig := cofree.SliceVal(c.Tail())
	for i, x := range kids {
		dup := x.(*cofree.Cofree[cofree.Slice, *cofree.Cofree[cofree.Slice, int]])
		if dup.Head() != orig[i].(*cofree.Cofree[cofree.Slice, int]) {
			t.Fatalf("duplicate child %d does not hold the original subtree", i)
		}
	}
}

func TestScanRightKeepsHistory(t *testing.T) {
	c := node(1, node(2, leaf(4)), leaf(3))
	s := cofree.ScanRight(cofree.SliceShape{}, c, func(head int, done cofree.Kind[cofree.Slice]) int {
		total := head
		for _, x := range cofree.SliceVal(done) {
			total += x.(*cofree.Cofree[cofree.Slice, int]).Head()
		}
		return total
	})
	// Every node ends up annotated with its subtree sum.
	if diff := cmp.Diff([]int{10, 6, 4, 3}, heads(s)); diff != "" {
		t.Fatalf("scan heads mismatch (-want +got):\n%s", diff)
	}
}

// firstChildOrNone keeps only the leftmost branch.
func firstChildOrNone(k cofree.Kind[cofree.Slice]) cofree.Kind[cofree.Option] {
	xs := cofree.SliceVal(k)
	if len(xs) == 0 {
		return cofree.NoneOf()
	}
	return cofree.SomeOf(xs[0])
}

func TestMapBranchingSliceToOption(t *testing.T) {
	c := node(1, node(2, leaf(4), leaf(5)), leaf(3))
	chain := cofree.MapBranching[cofree.Slice, cofree.Option, int](cofree.SliceShape{}, firstChildOrNone, c)

	got := []int{}
	for at := chain; ; {
		got = append(got, at.Head())
		v, ok := cofree.OptionGet(at.Tail())
		if !ok {
			break
		}
		at = v.(*cofree.Cofree[cofree.Option, int])
	}
	if diff := cmp.Diff([]int{1, 2, 4}, got); diff != "" {
		t.Fatalf("leftmost chain mismatch (-want +got):\n%s", diff)
	}
}

func TestMapFirstBranchingOnlyTouchesRoot(t *testing.T) {
	c := node(1, node(2, leaf(4)), leaf(3))
	reverse := func(k cofree.Kind[cofree.Slice]) cofree.Kind[cofree.Slice] {
		xs := cofree.SliceVal(k)
		ys := make([]cofree.Erased, len(xs))
		for i, x := range xs {
			ys[len(xs)-1-i] = x
		}
		return cofree.SliceOf(ys...)
	}
	r := cofree.MapFirstBranching(cofree.Natural[cofree.Slice, cofree.Slice](reverse), c)
	if diff := cmp.Diff([]int{1, 3, 2, 4}, heads(r)); diff != "" {
		t.Fatalf("heads after root reshape mismatch (-want +got):\n%s", diff)
	}
}

// TestInjectReplacesEveryHead pins the constant-injection semantics:
// every annotation is replaced, the root's included.
func TestInjectReplacesEveryHead(t *testing.T) {
	chain := node(1, node(2, leaf(3)))
	got := heads(cofree.Inject(cofree.SliceShape{}, chain, 99))
	if diff := cmp.Diff([]int{99, 99, 99}, got); diff != "" {
		t.Fatalf("injected heads mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyCofree(t *testing.T) {
	c := node(1, leaf(2), leaf(3))
	r := cofree.ApplyCofree(cofree.SliceShape{}, c,
		func(n int) int { return -n },
		func(x *cofree.Cofree[cofree.Slice, int]) *cofree.Cofree[cofree.Slice, int] {
			return cofree.Map(cofree.SliceShape{}, x, func(n int) int { return n * 100 })
		})
	if diff := cmp.Diff([]int{-1, 200, 300}, heads(r)); diff != "" {
		t.Fatalf("heads mismatch (-want +got):\n%s", diff)
	}
}

// TestUnfoldCBinaryTree checks the unfold against manual iteration of the
// generator to the same depth.
func TestUnfoldCBinaryTree(t *testing.T) {
	gen := func(n int) cofree.Kind[cofree.Slice] {
		if n >= 4 {
			return cofree.SliceOf()
		}
		return cofree.SliceOf(n*2, n*2+1)
	}
	got := heads(cofree.UnfoldC(cofree.SliceShape{}, 1, gen))
	// Manual expansion: 1 -> (2, 3); 2 -> (4, 5); 3 -> (6, 7); 4.. stop.
	want := []int{1, 2, 4, 5, 3, 6, 7}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unfolded heads mismatch (-want +got):\n%s", diff)
	}
}

func TestUnfoldSplitsSeed(t *testing.T) {
	type seed struct {
		label string
		depth int
	}
	c := cofree.Unfold(cofree.SliceShape{}, seed{label: "r", depth: 2}, func(b seed) (string, cofree.Kind[cofree.Slice]) {
		if b.depth == 0 {
			return b.label, cofree.SliceOf()
		}
		return b.label, cofree.SliceOf(
			seed{label: b.label + "l", depth: b.depth - 1},
			seed{label: b.label + "r", depth: b.depth - 1},
		)
	})
	want := []string{"r", "rl", "rll", "rlr", "rr", "rrl", "rrr"}
	if diff := cmp.Diff(want, heads(c)); diff != "" {
		t.Fatalf("unfolded labels mismatch (-want +got):\n%s", diff)
	}
}

// TestInfiniteStreamIsLazy walks a corecursive stream that never
// terminates; only the demanded prefix is materialized.
func TestInfiniteStreamIsLazy(t *testing.T) {
	naturals := cofree.UnfoldC(cofree.IdentityShape{}, 0, func(n int) cofree.Kind[cofree.Identity] {
		return cofree.IdentityOf(n + 1)
	})
	at := naturals
	for want := 0; want < 5; want++ {
		if at.Head() != want {
			t.Fatalf("stream element: got %d, want %d", at.Head(), want)
		}
		at = at.Tail().Val().(*cofree.Cofree[cofree.Identity, int])
	}
}

func TestInfiniteStreamMapIsLazy(t *testing.T) {
	naturals := cofree.UnfoldC(cofree.IdentityShape{}, 1, func(n int) cofree.Kind[cofree.Identity] {
		return cofree.IdentityOf(n + 1)
	})
	doubled := cofree.Map(cofree.IdentityShape{}, naturals, func(n int) int { return n * 2 })
	at := doubled
	for want := 2; want <= 10; want += 2 {
		if at.Head() != want {
			t.Fatalf("stream element: got %d, want %d", at.Head(), want)
		}
		at = at.Tail().Val().(*cofree.Cofree[cofree.Identity, int])
	}
}

func TestEraseHeadsBoxesAnnotations(t *testing.T) {
	c := node(1, leaf(2))
	e := cofree.EraseHeads(cofree.SliceShape{}, c)
	if e.Head().(int) != 1 {
		t.Fatalf("erased root head: got %v, want 1", e.Head())
	}
	kid := cofree.SliceVal(e.Tail())[0].(*cofree.Cofree[cofree.Slice, cofree.Erased])
	if kid.Head().(int) != 2 {
		t.Fatalf("erased child head: got %v, want 2", kid.Head())
	}
}

func TestEqualTrees(t *testing.T) {
	a := node(1, node(2, leaf(4)), leaf(3))
	b := node(1, node(2, leaf(4)), leaf(3))
	if !cofree.EqualTrees(cofree.SliceShape{}, a, b, intEq) {
		t.Fatalf("independently built identical trees compare unequal")
	}
	c := node(1, node(2, leaf(5)), leaf(3))
	if cofree.EqualTrees(cofree.SliceShape{}, a, c, intEq) {
		t.Fatalf("trees differing in one deep leaf compare equal")
	}
	d := node(1, node(2, leaf(4), leaf(9)), leaf(3))
	if cofree.EqualTrees(cofree.SliceShape{}, a, d, intEq) {
		t.Fatalf("trees differing in branching extent compare equal")
	}
}
