package list

import (
	"fmt"
	"iter"
)

// Iterator walks a list from the head, reading the chain live. Any structural
// change to the list after the iterator was created makes the next call to
// Next fail with ErrConcurrentModification.
//
//	it := l.Iterate()
//	for it.Next() {
//		use(it.Value())
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
type Iterator[T any] struct {
	list    *List[T]
	next    *node[T]
	version uint64
	value   T
	err     error
	done    bool
}

// Iterate starts a new traversal from the current head.
func (l *List[T]) Iterate() *Iterator[T] {
	return &Iterator[T]{
		list:    l,
		next:    l.head,
		version: l.version,
	}
}

// Next advances to the following element. It returns false at the end of the
// list or when the list was modified; Err tells the two apart.
func (it *Iterator[T]) Next() bool {
	if it.done {
		return false
	}
	var zero T
	it.value = zero
	switch {
	case it.version != it.list.version:
		it.err = fmt.Errorf("%w: list changed after iteration started", ErrConcurrentModification)
	case it.next != nil:
		it.value = it.next.value
		it.next = it.next.next
		return true
	}
	it.done = true
	it.next = nil
	return false
}

// Value returns the element reached by the last successful call to Next.
func (it *Iterator[T]) Value() T {
	return it.value
}

func (it *Iterator[T]) Err() error {
	return it.err
}

// All returns a sequence over the elements in order; every range over it starts
// a new traversal. It panics with an error wrapping ErrConcurrentModification
// if the list is changed structurally while the loop is still running. Use
// Iterate to get the failure as an error instead.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.Iterate()
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
		if err := it.Err(); err != nil {
			panic(err)
		}
	}
}
