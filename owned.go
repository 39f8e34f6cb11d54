// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ownref

// cell is the heap allocation behind an owned value. Exactly one non-empty
// [Owned] refers to a cell at any time; any number of views may alias it.
// destroyed is set by Drop so that debug builds can detect stale views.
type cell[T any] struct {
	value     T
	destroyed bool
}

// Disposer is the teardown hook for owned payloads.
// If the payload type (or its pointer type) implements Disposer,
// [Owned.Drop] invokes Dispose exactly once before releasing the value.
type Disposer interface {
	Dispose()
}

// Owned is an exclusive, move-only handle to a heap-allocated T.
// It is the only reference kind that may destroy the value.
//
// An Owned is either non-empty (holds a live allocation) or empty
// (moved-from or dropped). Operating on an empty handle panics, except
// [Owned.Drop], which is an idempotent no-op, and the Try variants.
//
// Owned must be used through its pointer; copying an Owned value would
// duplicate exclusive ownership and is a contract violation the type
// system cannot reject. Moving is always explicit: [Owned.Move],
// [Owned.MoveTo], and [Stack.Push] empty the source handle.
type Owned[T any] struct {
	c *cell[T]
}

// New allocates a fresh cell holding value and returns a non-empty
// owning handle to it. The caller is responsible for eventually calling
// [Owned.Drop] (directly or via [With]) exactly once along every path.
func New[T any](value T) *Owned[T] {
	return &Owned[T]{c: &cell[T]{value: value}}
}

// Empty reports whether the handle has been moved from or dropped.
func (o *Owned[T]) Empty() bool {
	return o.c == nil
}

// Deref returns mutable access to the owned value.
// Panics if the handle is empty.
func (o *Owned[T]) Deref() *T {
	if o.c == nil {
		panic("ownref: dereference of empty owned handle")
	}
	return &o.c.value
}

// TryDeref is the non-panicking variant of [Owned.Deref].
// Returns (nil, false) if the handle is empty.
func (o *Owned[T]) TryDeref() (*T, bool) {
	if o.c == nil {
		return nil, false
	}
	return &o.c.value, true
}

// Move transfers ownership to a freshly returned handle, leaving the
// receiver empty. Panics if the receiver is already empty.
func (o *Owned[T]) Move() *Owned[T] {
	if o.c == nil {
		panic("ownref: move from empty owned handle")
	}
	moved := &Owned[T]{c: o.c}
	o.c = nil
	return moved
}

// TryMove is the non-panicking variant of [Owned.Move].
// Returns (nil, false) if the receiver is empty.
func (o *Owned[T]) TryMove() (*Owned[T], bool) {
	if o.c == nil {
		return nil, false
	}
	moved := &Owned[T]{c: o.c}
	o.c = nil
	return moved, true
}

// MoveTo transfers ownership into dst, leaving the receiver empty.
// dst must be empty beforehand: move-assigning over a live allocation
// would leak it. Panics if the receiver is empty or dst is non-empty.
func (o *Owned[T]) MoveTo(dst *Owned[T]) {
	if o.c == nil {
		panic("ownref: move from empty owned handle")
	}
	if dst.c != nil {
		panic("ownref: move into non-empty owned handle")
	}
	dst.c = o.c
	o.c = nil
}

// Drop destroys the owned value: if the payload implements [Disposer],
// Dispose is invoked exactly once, then the handle becomes empty.
// Drop on an empty handle is a no-op, so dropping twice is safe and the
// value is never destroyed more than once.
func (o *Owned[T]) Drop() {
	if o.c == nil {
		return
	}
	c := o.c
	o.c = nil
	if d, ok := any(&c.value).(Disposer); ok {
		d.Dispose()
	}
	c.destroyed = true
}

// Borrow derives a read-only view of the owned value.
// The view must not outlive the handle's validity. Panics if empty.
func (o *Owned[T]) Borrow() Ref[T] {
	if o.c == nil {
		panic("ownref: borrow of empty owned handle")
	}
	return Ref[T]{c: o.c}
}

// BorrowMut derives a mutable view of the owned value.
// The view must not outlive the handle's validity. Panics if empty.
func (o *Owned[T]) BorrowMut() Mut[T] {
	if o.c == nil {
		panic("ownref: borrow of empty owned handle")
	}
	return Mut[T]{c: o.c}
}
