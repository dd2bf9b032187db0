// Package list implements a singly linked list which keeps its elements sorted
// according to a comparator fixed at construction.
//
// A List is not safe for concurrent use. Callers sharing a list between
// goroutines must serialize every call, iterations included.
package list

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"unsafe"

	"github.com/ddirect/sortedlist"
)

type List[T any] struct {
	head    *node[T]
	size    int
	version uint64 // bumped by every structural change

	cmp        sortedlist.FallibleComparator[T]
	cmpID      unsafe.Pointer
	ordering   string
	validators []func(T) error
}

func New[T any](compare sortedlist.Comparator[T], opts ...Option[T]) *List[T] {
	if compare == nil {
		panic(fmt.Errorf("sortedlist: nil comparator"))
	}
	return newList(sortedlist.Fallible(compare), closureID(compare), opts)
}

// NewFallible creates a list whose comparator can fail. Comparator errors are
// returned wrapped in ErrComparison and leave the list unchanged.
func NewFallible[T any](compare sortedlist.FallibleComparator[T], opts ...Option[T]) *List[T] {
	if compare == nil {
		panic(fmt.Errorf("sortedlist: nil comparator"))
	}
	return newList(compare, closureID(compare), opts)
}

// NewOrdered creates a list in ascending natural order, declared as the
// "natural" ordering unless opts declare another one.
func NewOrdered[T cmp.Ordered](opts ...Option[T]) *List[T] {
	return New(sortedlist.Natural[T](), append([]Option[T]{WithOrdering[T](naturalOrdering)}, opts...)...)
}

const naturalOrdering = "natural"

func newList[T any](compare sortedlist.FallibleComparator[T], id unsafe.Pointer, opts []Option[T]) *List[T] {
	l := &List[T]{
		cmp:   compare,
		cmpID: id,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// closureID returns the function value's closure object: shared by every use
// of a plain function, distinct for each closure instance.
func closureID[F any](f F) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&f))
}

// empty returns a list with no elements sharing the configuration of l.
func (l *List[T]) empty() *List[T] {
	return &List[T]{
		cmp:        l.cmp,
		cmpID:      l.cmpID,
		ordering:   l.ordering,
		validators: slices.Clone(l.validators),
	}
}

func (l *List[T]) Len() int {
	return l.size
}

func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// Insert places v after every element comparing equal to it, so equal elements
// keep their insertion order.
func (l *List[T]) Insert(v T) error {
	if err := l.validate(v); err != nil {
		return err
	}
	return l.insert(v)
}

// InsertAll validates every value before inserting any of them. A comparison
// failure stops the insertion at the failing value; the values before it stay
// in the list. Callers needing all or nothing insert into a Clone and keep it
// only on success.
func (l *List[T]) InsertAll(vs ...T) error {
	for _, v := range vs {
		if err := l.validate(v); err != nil {
			return err
		}
	}
	for _, v := range vs {
		if err := l.insert(v); err != nil {
			return err
		}
	}
	return nil
}

func (l *List[T]) insert(v T) error {
	pos, err := l.seek(v, sortsBefore)
	if err != nil {
		return err
	}
	if pos.prev != nil {
		if err := l.checkAntisymmetry(v, pos.prev.value, pos.prevC); err != nil {
			return err
		}
	}
	*pos.link = &node[T]{value: v, next: pos.at}
	l.size++
	l.version++
	return nil
}

// Remove deletes the first element comparing equal to v and reports whether
// one was found.
func (l *List[T]) Remove(v T) (bool, error) {
	pos, err := l.seek(v, notAfter)
	if err != nil || pos.at == nil || pos.c != 0 {
		return false, err
	}
	*pos.link = pos.at.detach()
	l.size--
	l.version++
	return true, nil
}

func (l *List[T]) RemoveAt(i int) (t T, err error) {
	if i < 0 || i >= l.size {
		return t, fmt.Errorf("%w: index %d out of range [0, %d)", ErrInvalidArgument, i, l.size)
	}
	link := &l.head
	for range i {
		link = &(*link).next
	}
	n := *link
	*link = n.detach()
	l.size--
	l.version++
	return n.value, nil
}

func (l *List[T]) Contains(v T) (bool, error) {
	pos, err := l.seek(v, notAfter)
	if err != nil {
		return false, err
	}
	return pos.at != nil && pos.c == 0, nil
}

func (l *List[T]) Clear() {
	l.head = nil
	l.size = 0
	l.version++
}

func (l *List[T]) At(i int) (t T, ok bool) {
	if i < 0 || i >= l.size {
		return
	}
	n := l.head
	for range i {
		n = n.next
	}
	return n.value, true
}

func (l *List[T]) First() (T, bool) {
	return l.At(0)
}

func (l *List[T]) Last() (T, bool) {
	return l.At(l.size - 1)
}

// Slice returns a copy of the elements in order.
func (l *List[T]) Slice() []T {
	s := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		s = append(s, n.value)
	}
	return s
}

// Clone returns an independent copy of l with the same comparator and options.
func (l *List[T]) Clone() *List[T] {
	c := l.empty()
	tail := &c.head
	for n := l.head; n != nil; n = n.next {
		tail = c.append(tail, n.value)
	}
	return c
}

func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, n.value)
	}
	b.WriteByte(']')
	return b.String()
}

// append links v at tail, which must be the last link of the chain, and
// returns the new last link. The caller guarantees the order.
func (l *List[T]) append(tail **node[T], v T) **node[T] {
	n := &node[T]{value: v}
	*tail = n
	l.size++
	return &n.next
}

func (l *List[T]) validate(v T) error {
	for _, validate := range l.validators {
		if err := validate(v); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
	}
	return nil
}

type position[T any] struct {
	link  **node[T] // link owning at
	at    *node[T]  // nil at the end of the chain
	c     int       // compare(v, at.value)
	prev  *node[T]
	prevC int // compare(v, prev.value)
}

func sortsBefore(c int) bool {
	return c < 0
}

func notAfter(c int) bool {
	return c <= 0
}

// seek walks the chain from the head up to the first node n for which
// stop(compare(v, n.value)) holds. Nothing is modified, so a failure leaves the
// list as it was.
func (l *List[T]) seek(v T, stop func(c int) bool) (position[T], error) {
	pos := position[T]{link: &l.head}
	for n := l.head; n != nil; n = n.next {
		c, err := l.compare(v, n.value)
		if err != nil {
			return pos, err
		}
		if stop(c) {
			pos.at, pos.c = n, c
			return pos, l.checkAntisymmetry(v, n.value, c)
		}
		pos.link, pos.prev, pos.prevC = &n.next, n, c
	}
	return pos, nil
}

func (l *List[T]) compare(a, b T) (c int, err error) {
	defer func() {
		if r := recover(); r != nil {
			c, err = 0, fmt.Errorf("%w: comparator panicked: %v", ErrComparison, r)
		}
	}()
	if c, err = l.cmp(a, b); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrComparison, err)
	}
	return c, nil
}

// checkAntisymmetry verifies that compare(b, a) agrees with ab = compare(a, b).
func (l *List[T]) checkAntisymmetry(a, b T, ab int) error {
	ba, err := l.compare(b, a)
	if err != nil {
		return err
	}
	if cmp.Compare(ab, 0) != -cmp.Compare(ba, 0) {
		return fmt.Errorf("%w: comparator is not antisymmetric (%d, %d)", ErrComparison, ab, ba)
	}
	return nil
}
