// Package factorize provides a channel-based concurrent prime
// factorization pipeline, kept alongside the worker-pool-based
// analyzer as a contrasting concurrency idiom: fan-out over a number
// channel, fan-in over a results channel, cooperative cancellation via
// a shared done channel instead of a mutex/condvar pool.
package factorize

import (
	"errors"
	"fmt"
	"io"
	"math"
	"runtime"
	"strconv"
	"strings"
	"sync"
)

// ErrCancelled is returned when factorization is stopped early via the
// done channel.
var ErrCancelled = errors.New("factorization cancelled")

// ErrWriterFailed is returned, wrapping the underlying error, when a
// write to the result writer fails and triggers early termination of
// every worker.
var ErrWriterFailed = errors.New("writer interaction failed")

// Config sizes the two worker pools a Do call spins up.
type Config struct {
	FactorizationWorkers int
	WriteWorkers         int
}

// Do factorizes every number in numbers concurrently and writes one
// "n = p1 * p2 * ..." line per number to writer. The writer must be
// safe for concurrent use. If any write fails, every worker stops and
// Do returns ErrWriterFailed; if done closes first, it returns
// ErrCancelled.
func Do(done <-chan struct{}, numbers []int, writer io.Writer, config ...Config) error {
	conf, err := resolveConfig(config...)
	if err != nil {
		return err
	}

	numCh := make(chan int, 1)
	wgFact, lines := factorizeAll(conf.FactorizationWorkers, done, numCh)
	defer wgFact.Wait()

	select {
	case <-done:
		return ErrCancelled
	default:
	}

	wgWrite, writeErr := writeAll(conf.WriteWorkers, done, lines, writer)
	var once sync.Once
	drain := func() {
		once.Do(func() {
			close(numCh)
			wgWrite.Wait()
		})
	}
	defer drain()

	for i := 0; i < len(numbers); {
		select {
		case <-done:
			return ErrCancelled
		case e := <-writeErr:
			return e
		case numCh <- numbers[i]:
			i++
		}
	}
	drain()

	select {
	case <-done:
		return ErrCancelled
	case e := <-writeErr:
		return e
	default:
		return nil
	}
}

func resolveConfig(config ...Config) (Config, error) {
	if len(config) == 0 {
		n := runtime.GOMAXPROCS(0)
		return Config{FactorizationWorkers: n, WriteWorkers: n}, nil
	}
	conf := config[0]
	if conf.FactorizationWorkers < 1 || conf.WriteWorkers < 1 {
		return Config{}, errors.New("factorize: worker counts must be at least 1")
	}
	return conf, nil
}

// factorLine renders a single number's prime factorization as
// "n = p1 * p2 * ...\n", treating math.MinInt specially so negating it
// cannot overflow.
func factorLine(n int) string {
	factors := make([]string, 0, 4)
	cur := n
	if cur < 0 {
		factors = append(factors, "-1")
		if cur == math.MinInt {
			factors = append(factors, "2")
			cur /= 2
		}
		cur = -cur
	}

	limit := int(math.Sqrt(math.Abs(float64(n))))
	for i := 2; ; {
		if i > limit {
			factors = append(factors, strconv.Itoa(cur))
			break
		}
		if cur%i == 0 {
			cur /= i
			factors = append(factors, strconv.Itoa(i))
			if i > cur {
				break
			}
			continue
		}
		i++
	}

	return fmt.Sprintf("%s = %s\n", strconv.Itoa(n), strings.Join(factors, " * "))
}

func factorizeAll(workers int, done <-chan struct{}, input <-chan int) (*sync.WaitGroup, <-chan string) {
	out := make(chan string)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				case n, ok := <-input:
					if !ok {
						return
					}
					select {
					case <-done:
						return
					case out <- factorLine(n):
					}
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return &wg, out
}

func writeAll(workers int, done <-chan struct{}, lines <-chan string, writer io.Writer) (*sync.WaitGroup, <-chan error) {
	var wg sync.WaitGroup
	var once sync.Once
	errCh := make(chan error, 1)
	failed := make(chan struct{})

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				case <-failed:
					return
				case line, ok := <-lines:
					if !ok {
						return
					}
					select {
					case <-done:
						return
					case <-failed:
						return
					default:
						if _, err := writer.Write([]byte(line)); err != nil {
							once.Do(func() {
								errCh <- fmt.Errorf("%w: %w", ErrWriterFailed, err)
								close(failed)
							})
						}
					}
				}
			}
		}()
	}

	return &wg, errCh
}
