// Package mergeheap is a binary min-heap whose ordering function can fail.
// It backs the k-way merge of sorted lists.
package mergeheap

// Heap stops reordering as soon as the ordering function fails; from then on
// Err and every mutating call report the same error.
type Heap[T any] struct {
	s        []T
	lessFunc func(a, b T) (bool, error)
	err      error
}

func New[T any](less func(a, b T) (bool, error), capacity int) *Heap[T] {
	return &Heap[T]{
		s:        make([]T, 0, capacity),
		lessFunc: less,
	}
}

func (h *Heap[T]) Len() int {
	return len(h.s)
}

func (h *Heap[T]) Err() error {
	return h.err
}

// Top returns the smallest element. The heap must not be empty.
func (h *Heap[T]) Top() T {
	return h.s[0]
}

// Push adds x; a failure of the ordering is reported by Err.
func (h *Heap[T]) Push(x T) {
	if h.err != nil {
		return
	}
	h.s = append(h.s, x)
	h.up(h.Len() - 1)
}

func (h *Heap[T]) Pop() (t T, err error) {
	if h.err != nil {
		return t, h.err
	}
	n := h.Len() - 1
	h.swap(0, n)
	h.down(0, n)
	if h.err != nil {
		return t, h.err
	}
	return h.pop(n), nil
}

// ReplaceTop overwrites the smallest element with x and restores the heap order.
func (h *Heap[T]) ReplaceTop(x T) error {
	if h.err != nil {
		return h.err
	}
	h.s[0] = x
	h.down(0, h.Len())
	return h.err
}

func (h *Heap[T]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !h.less(j, i) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

func (h *Heap[T]) down(i, n int) {
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.less(j2, j1) {
			j = j2 // right child
		}
		if !h.less(j, i) {
			break
		}
		h.swap(i, j)
		i = j
	}
}

func (h *Heap[T]) swap(i, j int) {
	h.s[i], h.s[j] = h.s[j], h.s[i]
}

func (h *Heap[T]) pop(n int) T {
	var zero T
	e := h.s[n]
	h.s[n] = zero
	h.s = h.s[:n]
	return e
}

// less reports false once the ordering has failed, which ends any sift in progress.
func (h *Heap[T]) less(i, j int) bool {
	if h.err != nil {
		return false
	}
	ok, err := h.lessFunc(h.s[i], h.s[j])
	if err != nil {
		h.err = err
		return false
	}
	return ok
}
