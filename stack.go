// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ownref

// Stack is a LIFO container of exclusively-owned values. Elements enter
// by ownership transfer ([Stack.Push] empties the source handle) and
// leave by ownership transfer ([Stack.Pop] returns a fresh owning
// handle). Every stored element is non-empty. Peeking never creates a
// second owner: [Stack.Top] and [Stack.TopRef] hand out views only.
//
// The zero value is an empty stack ready for use. Stack is not safe for
// concurrent use.
type Stack[T any] struct {
	cells []*cell[T]
}

// Len returns the number of elements currently owned by the stack.
func (s *Stack[T]) Len() int {
	return len(s.cells)
}

// Push moves o's value into the stack as the new top element.
// o is empty afterwards. Panics if o is empty.
func (s *Stack[T]) Push(o *Owned[T]) {
	if o.c == nil {
		panic("ownref: push of empty owned handle")
	}
	s.cells = append(s.cells, o.c)
	o.c = nil
}

// Top returns a mutable view of the top element without removing it.
// The view is invalidated the moment the element is popped and dropped.
// Panics if the stack is empty.
func (s *Stack[T]) Top() Mut[T] {
	if len(s.cells) == 0 {
		panic("ownref: top of empty owning stack")
	}
	return Mut[T]{c: s.cells[len(s.cells)-1]}
}

// TryTop is the non-panicking variant of [Stack.Top].
func (s *Stack[T]) TryTop() (Mut[T], bool) {
	if len(s.cells) == 0 {
		return Mut[T]{}, false
	}
	return Mut[T]{c: s.cells[len(s.cells)-1]}, true
}

// TopRef returns a read-only view of the top element without removing
// it, for callers that only observe. Panics if the stack is empty.
func (s *Stack[T]) TopRef() Ref[T] {
	if len(s.cells) == 0 {
		panic("ownref: top of empty owning stack")
	}
	return Ref[T]{c: s.cells[len(s.cells)-1]}
}

// Pop removes the top element and returns ownership of it to the
// caller. Panics if the stack is empty.
func (s *Stack[T]) Pop() *Owned[T] {
	n := len(s.cells)
	if n == 0 {
		panic("ownref: pop of empty owning stack")
	}
	c := s.cells[n-1]
	s.cells[n-1] = nil
	s.cells = s.cells[:n-1]
	return &Owned[T]{c: c}
}

// TryPop is the non-panicking variant of [Stack.Pop].
func (s *Stack[T]) TryPop() (*Owned[T], bool) {
	if len(s.cells) == 0 {
		return nil, false
	}
	return s.Pop(), true
}

// Drop pops and drops every remaining element, leaving the stack empty.
// Each element's payload is destroyed exactly once, top first.
func (s *Stack[T]) Drop() {
	for len(s.cells) > 0 {
		s.Pop().Drop()
	}
}
