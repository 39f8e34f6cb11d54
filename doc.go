// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ownref provides ownership-discipline reference primitives in Go.
//
// The package distinguishes, at the type level, three capabilities a holder
// of a value may have: destroy it, mutate it, or only observe it. Each
// capability level is a distinct reference kind:
//
//   - [Owned]: exclusive, move-only owning handle; the only kind that may
//     destroy the value ([Owned.Drop], exactly once)
//   - [Mut]: non-owning view with read/write access, derived from an owner
//   - [Ref]: non-owning view with read-only access, derived from an owner
//     or from a [Mut]
//
// # Design Philosophy
//
// ownref provides:
//   - Exclusive ownership without reference counting: moving a handle
//     empties the source, so at most one live owner exists per allocation
//   - Capability restriction by disjoint method sets: [Ref] exposes the
//     value only by copy, so mutation through a Ref does not type-check
//   - Zero runtime bookkeeping on the hot path: views are single-word
//     value types and derivation never allocates
//
// # Ownership Protocol
//
// A handle is created non-empty by [New] and becomes empty when moved from
// or dropped. Operations on an empty handle are programmer errors and panic;
// the non-panicking Try variants ([Owned.TryDeref], [Owned.TryMove],
// [Stack.TryTop], [Stack.TryPop]) report the empty state instead.
//
//   - [New]: allocate a value and return its owning handle
//   - [Owned.Move], [Owned.MoveTo], [Owned.TryMove]: explicit ownership
//     transfer; the source handle is empty afterwards
//   - [Owned.Deref], [Owned.TryDeref]: mutable access for the owner
//   - [Owned.Drop]: destroy the value exactly once; no-op when empty
//   - [Owned.Empty]: moved-from predicate
//
// Payloads that need teardown implement [Disposer]; Drop invokes Dispose
// exactly once per allocation.
//
// # Views
//
// Views grant access without ownership, decoupling "may mutate" from
// "may destroy":
//
//   - [Owned.BorrowMut] → [Mut]: read/write, no destruction rights
//   - [Owned.Borrow], [Mut.Ref] → [Ref]: read-only
//   - [Mut.Deref], [Mut.Set]: mutable access through a view
//   - [Ref.Value], [Ref.Do]: read-only access, by copy
//
// Views are valid only for the dynamic extent of their owner's validity.
// This is a call-stack discipline: storing a view beyond its owner's
// lifetime is a use-after-free the package does not defend against.
// Builds tagged debug verify on each view access that the owner has not
// dropped the value, and panic on violation; release builds elide the check.
//
// # Owning Stack
//
// [Stack] is a LIFO container that composes with exclusive ownership:
// elements are moved in and out, never copied, and peeking yields views
// rather than a second owner.
//
//   - [Stack.Push]: move a handle's value in; the handle becomes empty
//   - [Stack.Top], [Stack.TopRef]: views of the top element
//   - [Stack.Pop]: move the top element's ownership out to the caller
//   - [Stack.Drop]: destroy all remaining elements, top first
//
// # Scoped Ownership
//
// [With] and [WithRef] provide the bracket pattern: run a function with a
// view of the value and guarantee the drop afterwards, even on panic.
//
// # Concurrency
//
// The model is single-threaded call-stack discipline. Handles, views, and
// stacks are not safe for concurrent use; exclusivity is a compile-time and
// convention-level property, with no locks or atomics involved.
//
// # Example
//
//	type buffer struct{ data []byte }
//
//	owner := ownref.New(buffer{data: make([]byte, 0, 64)})
//
//	grow := func(b ownref.Mut[buffer]) {
//		b.Deref().data = append(b.Deref().data, 1, 2, 3)
//	}
//	observe := func(b ownref.Ref[buffer]) int {
//		return len(b.Value().data) // read-only: no *buffer reachable
//	}
//
//	grow(owner.BorrowMut())
//	n := observe(owner.Borrow())
//	_ = n
//
//	var s ownref.Stack[buffer]
//	s.Push(owner)            // ownership moved in; owner is now empty
//	back := s.Pop()          // ownership moved back out
//	back.Drop()              // destroyed exactly once
package ownref
