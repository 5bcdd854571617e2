// Package sortutil provides the randomized three-way quicksort used to
// order character-frequency tables for display and the digest
// command's integer arguments,
// generalized from a from-scratch integer quicksort into a
// less-than-driven in-place sort over any slice element type.
package sortutil

import "math/rand/v2"

// SortBy sorts s in place according to less, using a randomized
// Dutch-national-flag quicksort: one pass partitions the slice into
// "less than pivot", "equal to pivot", and "greater than pivot" runs
// around a randomly chosen pivot, so equal elements only need to be
// examined once per partition instead of twice.
func SortBy[T any](s []T, less func(a, b T) bool) {
	var quicksort func(arr []T)
	quicksort = func(arr []T) {
		n := len(arr)
		if n <= 1 {
			return
		}

		pivot := arr[rand.IntN(n)]
		lo, eq := 0, 0
		for i, cur := range arr {
			switch {
			case !less(cur, pivot) && !less(pivot, cur):
				arr[eq], arr[i] = cur, arr[eq]
				eq++
			case less(cur, pivot):
				arr[eq], arr[i] = cur, arr[eq]
				arr[lo], arr[eq] = arr[eq], arr[lo]
				lo++
				eq++
			}
		}

		quicksort(arr[:lo])
		quicksort(arr[eq:])
	}
	quicksort(s)
}
