// Package sortedlist holds the ordering capability shared by the containers
// in this module.
package sortedlist

import "cmp"

// Comparator orders two values: negative if a sorts before b, zero if they are
// equivalent and positive if a sorts after b. It must describe a total order.
type Comparator[T any] func(a, b T) int

// FallibleComparator is a Comparator which can fail.
type FallibleComparator[T any] func(a, b T) (int, error)

// Comparer is implemented by values which know how to order themselves.
type Comparer[T any] interface {
	Compare(T) int
}

func Natural[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

func ByComparer[T Comparer[T]]() Comparator[T] {
	return func(a, b T) int {
		return a.Compare(b)
	}
}

// Fallible adapts c to a FallibleComparator that never fails.
func Fallible[T any](c Comparator[T]) FallibleComparator[T] {
	return func(a, b T) (int, error) {
		return c(a, b), nil
	}
}
