package sortutil

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortBy_AscendingInts(t *testing.T) {
	s := []int{5, 3, 8, 1, 9, 1, 0, -4}
	SortBy(s, func(a, b int) bool { return a < b })
	require.True(t, sort.IntsAreSorted(s))
}

func TestSortBy_DescendingByKey(t *testing.T) {
	type pair struct {
		key   rune
		count int
	}
	s := []pair{{'a', 3}, {'b', 9}, {'c', 1}, {'d', 9}}
	SortBy(s, func(a, b pair) bool { return a.count > b.count })

	require.Equal(t, 9, s[0].count)
	require.Equal(t, 9, s[1].count)
	require.Equal(t, 1, s[3].count)
}

func TestSortBy_EmptyAndSingleton(t *testing.T) {
	var empty []int
	SortBy(empty, func(a, b int) bool { return a < b })
	require.Empty(t, empty)

	single := []int{42}
	SortBy(single, func(a, b int) bool { return a < b })
	require.Equal(t, []int{42}, single)
}

func TestSortBy_AllEqual(t *testing.T) {
	s := []int{7, 7, 7, 7, 7}
	SortBy(s, func(a, b int) bool { return a < b })
	require.Equal(t, []int{7, 7, 7, 7, 7}, s)
}

func TestSortBy_Stable_ish(t *testing.T) {
	// Not claiming stability, just that all elements survive the sort.
	s := []int{3, 1, 2}
	SortBy(s, func(a, b int) bool { return a < b })
	require.Equal(t, []int{1, 2, 3}, s)
}
