// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cofree provides the cofree comonad and its capability algebra
// in Go.
//
// The core type [Cofree] is a recursive, possibly infinite tree: a head
// annotation of type A and a branching continuation of child nodes held
// in a generic container shape S. Shapes are described by capability
// dictionaries ([Functor], [Foldable], [Traverse], ...) rather than by
// higher-kinded type parameters, which Go does not have.
//
// # Kind Encoding
//
// A container value of shape S is carried as a [Kind] — a phantom-branded
// wrapper around a type-erased payload. Dictionaries operate on Kind values
// with [Erased] elements; concrete element types are recovered via type
// assertions at the boundaries of typed generic functions. The brand ties
// a dictionary to its values at compile time: a Kind[Slice] cannot be
// handed to the Option dictionary.
//
// # Capability Resolution
//
// The capabilities of Cofree[S, _] are computed from the capabilities of S
// by a priority-ordered derivation hierarchy. Each resolver probes the S
// dictionary with structural type assertions, most specific first:
//
//   - [ResolveComonad]: S is a Functor — always available
//   - [ResolveFoldable1]: native Foldable1 on S wins over the generic
//     derivation from Foldable
//   - [ResolveTraverse1]: native Traverse1 on S wins over the generic
//     derivation from Traverse
//   - [ResolveBind]: S has Plus — children graft by concatenation
//   - [ResolveMonad]: S has PlusEmpty — adds Point with empty branching
//   - [ResolveEqual]: S has Equal — recursive structural equality
//   - [ResolveZipApply]: S has Apply — pointwise zipping, resolved only
//     for the tagged [Zip] brand
//
// Probe order makes resolution coherent: for a given capability and shape
// exactly one derivation is ever selected. The zip applicative and the
// monad never meet in the same lookup because the zip instance exists only
// under the Zip brand; [AsZip] and [AsCo] rebrand at zero cost.
//
// # Core Operations
//
//   - [New], [Defer]: eager and lazy node construction
//   - [Map], [Extend], [Duplicate]: functor and comonad operations
//   - [ScanRight]: bottom-up fold keeping the full history of results
//   - [MapBranching], [MapFirstBranching]: reshape the branching container
//   - [UnfoldC], [Unfold]: corecursive construction from a seed
//   - [ZapWith], [Zap]: annihilation against the dual [Free] monad
//
// # Laziness
//
// The tail of every node is a deferred, memoized computation. Structure
// transformations defer their tails as well, so infinite trees — an
// infinite stream is Cofree[Identity, A] — are traversed on demand and
// never fully materialized. [New] is the eager special case behind the
// same representation.
//
// # Purity
//
// Every operation is a pure recursive traversal: no I/O, no shared
// mutable state, no internal error values. The only aborts are
// programming-error panics raised when a shape's own dictionary is
// observed to be inconsistent.
package cofree
