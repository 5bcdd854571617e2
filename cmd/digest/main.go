// Command digest is a small CLI exercising the numeric utility
// package: it sorts its integer arguments and prints the result,
// alongside the same sort's reverse.
package main

import (
	"fmt"
	"os"
	"strconv"

	"fileanalyzer/internal/numeric"
	"fileanalyzer/internal/sortutil"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: digest N [N ...]")
		os.Exit(1)
	}

	numbers := make([]int, 0, len(os.Args)-1)
	for _, arg := range os.Args[1:] {
		n, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "digest: %q is not an integer\n", arg)
			os.Exit(1)
		}
		numbers = append(numbers, n)
	}

	sortutil.SortBy(numbers, func(a, b int) bool { return a < b })
	fmt.Println("sorted:", numbers)
	fmt.Println("reversed:", numeric.Reversed(numbers))
}
