package list_test

import (
	"slices"
	"testing"

	"github.com/ddirect/sortedlist/list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Iterate(t *testing.T) {
	l := list.NewOrdered[int]()
	require.NoError(t, l.InsertAll(3, 1, 2))

	it := l.Iterate()
	var got []int
	for it.Next() {
		got = append(got, it.Value())
	}
	assert.NoError(t, it.Err())
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.False(t, it.Next())
	assert.Zero(t, it.Value())

	// each traversal is independent
	a, b := l.Iterate(), l.Iterate()
	require.True(t, a.Next())
	require.True(t, a.Next())
	require.True(t, b.Next())
	assert.Equal(t, 2, a.Value())
	assert.Equal(t, 1, b.Value())
}

func Test_IterateEmpty(t *testing.T) {
	l := list.NewOrdered[int]()
	it := l.Iterate()
	assert.False(t, it.Next())
	assert.NoError(t, it.Err())
	assert.Empty(t, slices.Collect(l.All()))
}

func Test_IterateInvalidatedByMutation(t *testing.T) {
	mutations := map[string]func(t *testing.T, l *list.List[int]){
		"Insert": func(t *testing.T, l *list.List[int]) {
			require.NoError(t, l.Insert(4))
		},
		"Remove": func(t *testing.T, l *list.List[int]) {
			removed, err := l.Remove(3)
			require.NoError(t, err)
			require.True(t, removed)
		},
		"RemoveAt": func(t *testing.T, l *list.List[int]) {
			_, err := l.RemoveAt(0)
			require.NoError(t, err)
		},
		"Clear": func(t *testing.T, l *list.List[int]) {
			l.Clear()
		},
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			l := list.NewOrdered[int]()
			require.NoError(t, l.InsertAll(1, 2, 3))

			it := l.Iterate()
			require.True(t, it.Next())
			assert.Equal(t, 1, it.Value())

			mutate(t, l)

			assert.False(t, it.Next())
			assert.ErrorIs(t, it.Err(), list.ErrConcurrentModification)
			assert.False(t, it.Next())
			assert.ErrorIs(t, it.Err(), list.ErrConcurrentModification)

			// a new traversal sees the new state
			assert.Equal(t, l.Slice(), slices.Collect(l.All()))
		})
	}
}

func Test_IterateInvalidatedBeforeFirstNext(t *testing.T) {
	l := list.NewOrdered[int]()
	it := l.Iterate()
	require.NoError(t, l.Insert(1))
	assert.False(t, it.Next())
	assert.ErrorIs(t, it.Err(), list.ErrConcurrentModification)
}

func Test_IterateSurvivesReads(t *testing.T) {
	l := list.NewOrdered[int]()
	require.NoError(t, l.InsertAll(1, 2, 3))

	it := l.Iterate()
	require.True(t, it.Next())

	found, err := l.Contains(2)
	require.NoError(t, err)
	assert.True(t, found)
	removed, err := l.Remove(99)
	require.NoError(t, err)
	assert.False(t, removed)
	_ = l.Slice()
	_ = l.Clone()

	require.True(t, it.Next())
	assert.Equal(t, 2, it.Value())
	require.True(t, it.Next())
	assert.Equal(t, 3, it.Value())
	assert.False(t, it.Next())
	assert.NoError(t, it.Err())
}

func Test_AllPanicsOnMutation(t *testing.T) {
	l := list.NewOrdered[int]()
	require.NoError(t, l.InsertAll(1, 2, 3))

	var recovered any
	func() {
		defer func() {
			recovered = recover()
		}()
		for v := range l.All() {
			if v == 1 {
				require.NoError(t, l.Insert(10))
			}
		}
	}()

	err, ok := recovered.(error)
	require.True(t, ok)
	assert.ErrorIs(t, err, list.ErrConcurrentModification)
	assert.Equal(t, []int{1, 2, 3, 10}, l.Slice())
}

func Test_AllStopsEarly(t *testing.T) {
	l := list.NewOrdered[int]()
	require.NoError(t, l.InsertAll(1, 2, 3))

	// breaking out right after a mutation is fine
	assert.NotPanics(t, func() {
		for range l.All() {
			l.Clear()
			break
		}
	})
	assert.True(t, l.IsEmpty())
}
