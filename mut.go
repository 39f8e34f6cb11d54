// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ownref

// Mut is a non-owning view granting read and write access to a value
// owned elsewhere. It carries no destruction rights: a callee given a
// Mut may mutate the value but can neither drop it nor take ownership.
//
// Mut is a small value type and freely copyable; copies alias the same
// cell. A Mut is valid only while its originating owner is valid —
// this is a call-stack discipline, not a runtime guarantee. Builds with
// the debug tag verify on each access that the owner has not dropped
// the value.
type Mut[T any] struct {
	c *cell[T]
}

// Deref returns mutable access to the viewed value.
func (m Mut[T]) Deref() *T {
	m.c.assertLive()
	return &m.c.value
}

// Set replaces the viewed value.
func (m Mut[T]) Set(v T) {
	m.c.assertLive()
	m.c.value = v
}

// Ref weakens the view to read-only access.
func (m Mut[T]) Ref() Ref[T] {
	return Ref[T]{c: m.c}
}
