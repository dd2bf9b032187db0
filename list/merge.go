package list

import (
	"fmt"

	"github.com/ddirect/sortedlist/internal/mergeheap"
)

// Merge returns a new list holding the elements of l and other in order,
// walking both chains once. Equal elements of l come before those of other.
// Both lists are left untouched. The result takes the configuration of l, and
// the elements of other must satisfy its validators.
//
// The lists must be ordered the same way: either both were declared with the
// same WithOrdering name, or neither declares one and both were built from the
// same comparator value. Two closures are different comparators even when they
// come from the same function literal.
func (l *List[T]) Merge(other *List[T]) (*List[T], error) {
	if err := l.checkMergeable(other); err != nil {
		return nil, err
	}

	m := l.empty()
	tail := &m.head
	a, b := l.head, other.head
	for a != nil && b != nil {
		c, err := l.compare(b.value, a.value)
		if err != nil {
			return nil, err
		}
		if c < 0 {
			if err := m.validate(b.value); err != nil {
				return nil, err
			}
			tail = m.append(tail, b.value)
			b = b.next
		} else {
			tail = m.append(tail, a.value)
			a = a.next
		}
	}
	for ; a != nil; a = a.next {
		tail = m.append(tail, a.value)
	}
	for ; b != nil; b = b.next {
		if err := m.validate(b.value); err != nil {
			return nil, err
		}
		tail = m.append(tail, b.value)
	}
	return m, nil
}

type cursor[T any] struct {
	n   *node[T]
	src int
}

// MergeAll merges any number of lists into a new one. Equal elements keep the
// order of the arguments. The compatibility rules of Merge apply to every list
// against the first one, whose configuration the result inherits; elements of
// the other lists must satisfy its validators.
func MergeAll[T any](lists ...*List[T]) (*List[T], error) {
	if len(lists) == 0 || lists[0] == nil {
		return nil, fmt.Errorf("%w: nothing to merge", ErrInvalidArgument)
	}
	first := lists[0]
	for _, other := range lists[1:] {
		if err := first.checkMergeable(other); err != nil {
			return nil, err
		}
	}

	h := mergeheap.New(func(a, b cursor[T]) (bool, error) {
		c, err := first.compare(a.n.value, b.n.value)
		if err != nil {
			return false, err
		}
		return c < 0 || (c == 0 && a.src < b.src), nil
	}, len(lists))
	for i, other := range lists {
		if other.head != nil {
			h.Push(cursor[T]{other.head, i})
		}
	}
	if err := h.Err(); err != nil {
		return nil, err
	}

	m := first.empty()
	tail := &m.head
	for h.Len() > 0 {
		top := h.Top()
		if top.src != 0 {
			if err := m.validate(top.n.value); err != nil {
				return nil, err
			}
		}
		tail = m.append(tail, top.n.value)
		var err error
		if top.n.next != nil {
			err = h.ReplaceTop(cursor[T]{top.n.next, top.src})
		} else {
			_, err = h.Pop()
		}
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (l *List[T]) checkMergeable(other *List[T]) error {
	if other == nil {
		return fmt.Errorf("%w: cannot merge a nil list", ErrInvalidArgument)
	}
	if l.ordering != "" || other.ordering != "" {
		if l.ordering != other.ordering {
			return fmt.Errorf("%w: cannot merge lists ordered by %q and %q", ErrInvalidArgument, l.ordering, other.ordering)
		}
		return nil
	}
	if l.cmpID != other.cmpID {
		return fmt.Errorf("%w: cannot merge lists built from different comparators", ErrInvalidArgument)
	}
	return nil
}
