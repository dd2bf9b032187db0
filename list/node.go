package list

// node is owned by exactly one link: the list head or the next field of its
// predecessor.
type node[T any] struct {
	value T
	next  *node[T]
}

// detach releases the successor so a removed node keeps nothing alive.
func (n *node[T]) detach() *node[T] {
	next := n.next
	n.next = nil
	return next
}
