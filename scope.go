// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ownref

// Scoped ownership helpers. These provide the bracket pattern for owned
// values: acquire → use → release, where the drop is guaranteed even if
// use panics. They are the panic-safe substitute for destructor-at-scope-exit
// semantics.

// With runs use with a mutable view of o's value and drops o afterwards,
// even if use panics. o is empty when With returns. Panics if o is empty.
func With[T, A any](o *Owned[T], use func(Mut[T]) A) A {
	defer o.Drop()
	return use(o.BorrowMut())
}

// WithRef runs use with a read-only view of o's value and drops o
// afterwards, even if use panics. o is empty when WithRef returns.
// Panics if o is empty.
func WithRef[T, A any](o *Owned[T], use func(Ref[T]) A) A {
	defer o.Drop()
	return use(o.Borrow())
}
