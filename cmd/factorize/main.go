// Command factorize is a standalone exercise in channel-based fan-out
// concurrency, contrasting with the mutex/condvar worker pool the main
// analyzer uses: it factorizes a list of integers given on the command
// line and prints one factorization per line.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"fileanalyzer/internal/factorize"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: factorize N [N ...]")
		os.Exit(1)
	}

	numbers := make([]int, 0, len(os.Args)-1)
	for _, arg := range os.Args[1:] {
		n, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "factorize: %q is not an integer\n", arg)
			os.Exit(1)
		}
		numbers = append(numbers, n)
	}

	done := make(chan struct{})
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		close(done)
	}()

	if err := factorize.Do(done, numbers, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "factorize:", err)
		os.Exit(1)
	}
}
