// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ownref

// Ref is a non-owning view granting read-only access to a value owned
// elsewhere. Its method set exposes the value only by copy, so there is
// no expressible way to mutate the underlying value through a Ref —
// the restriction is structural, rejected at compile time rather than
// checked at run time.
//
// A function taking a Ref asserts in its signature that the call cannot
// modify the argument, independent of the function's implementation.
//
// Ref is a small value type and freely copyable; copies alias the same
// cell. Validity is bounded by the originating owner, as with [Mut].
type Ref[T any] struct {
	c *cell[T]
}

// Value returns a copy of the viewed value.
func (r Ref[T]) Value() T {
	r.c.assertLive()
	return r.c.value
}

// Do invokes f with a copy of the viewed value.
func (r Ref[T]) Do(f func(T)) {
	r.c.assertLive()
	f(r.c.value)
}
