// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cofree

// Erased represents a type-erased element value inside a container shape.
// Capability dictionaries process heterogeneous element types through a
// homogeneous erased pipeline. Concrete types are recovered via type
// assertions at the boundaries of typed generic functions.
type Erased = any

// Kind is a container value of shape S with erased elements.
// S is a phantom brand: it carries no runtime payload and exists only to
// tie the value to the dictionaries of its shape at compile time.
type Kind[S any] struct {
	v Erased
}

// Of wraps an erased container payload as a Kind of shape S.
// Shapes provide typed constructors ([IdentityOf], [SliceOf], ...) on top
// of this primitive; client code rarely calls it directly.
func Of[S any](v Erased) Kind[S] {
	return Kind[S]{v: v}
}

// Val returns the erased container payload.
func (k Kind[S]) Val() Erased {
	return k.v
}

// Natural is a natural transformation between container shapes: a
// reshaping of the container that is uniform over the element type.
// Implementations must not inspect or alter elements.
type Natural[S, T any] func(Kind[S]) Kind[T]
