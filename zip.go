// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cofree

// Zip is the brand tag selecting zip-applicative semantics for
// Cofree[S, _]. A Kind[Zip[S]] carries the same *Cofree[S, Erased]
// payload as a Kind[Co[S]]; only the brand differs, routing lookups to
// the pointwise instance instead of the monadic one. Rebranding is free.
type Zip[S any] struct{}

// AsZip rebrands a tree to select zip-applicative instances.
func AsZip[S any](k Kind[Co[S]]) Kind[Zip[S]] {
	return Of[Zip[S]](k.Val())
}

// AsCo rebrands a zip-tagged tree back to the default instances.
func AsCo[S any](k Kind[Zip[S]]) Kind[Co[S]] {
	return Of[Co[S]](k.Val())
}

// ZipKind wraps an erased-head tree under the zip brand.
func ZipKind[S any](c *Cofree[S, Erased]) Kind[Zip[S]] {
	return Of[Zip[S]](c)
}

// ZipVal unwraps a zip-branded Kind back to its tree.
func ZipVal[S any](k Kind[Zip[S]]) *Cofree[S, Erased] {
	return k.Val().(*Cofree[S, Erased])
}

// cofreeZipApply pairs two trees position by position: heads are combined
// directly and the two branchings are zipped by S's Map2. Extent follows
// S's zip — with Slice branching, each node keeps as many children as the
// narrower operand.
type cofreeZipApply[S any] struct {
	s Apply[S]
}

func (d *cofreeZipApply[S]) Map(w Kind[Zip[S]], f func(Erased) Erased) Kind[Zip[S]] {
	return ZipKind(Map(d.s, ZipVal(w), f))
}

func (d *cofreeZipApply[S]) Map2(a, b Kind[Zip[S]], f func(x, y Erased) Erased) Kind[Zip[S]] {
	return ZipKind(d.zipNode(ZipVal(a), ZipVal(b), f))
}

func (d *cofreeZipApply[S]) zipNode(ca, cb *Cofree[S, Erased], f func(x, y Erased) Erased) *Cofree[S, Erased] {
	return Defer(f(ca.head, cb.head), func() Kind[S] {
		return d.s.Map2(ca.Tail(), cb.Tail(), func(x, y Erased) Erased {
			return d.zipNode(x.(*Cofree[S, Erased]), y.(*Cofree[S, Erased]), f)
		})
	})
}

// ResolveZipApply derives the pointwise applicative for zip-tagged cofree
// trees when S can zip its containers. It resolves only for the Zip brand:
// requesting zip semantics is an explicit rebrand, never an ambiguous
// lookup against the monad instance of the untagged type.
func ResolveZipApply[S any](s Functor[S]) (Apply[Zip[S]], bool) {
	if sa, ok := s.(Apply[S]); ok {
		return &cofreeZipApply[S]{s: sa}, true
	}
	return nil, false
}
