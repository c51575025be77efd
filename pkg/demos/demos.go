// Package demos holds the small language demonstrations that sit next to the
// sum and timing examples: future-style async supply, plain goroutines and
// static typing.
package demos

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu     sync.Mutex
	output io.Writer = os.Stdout
)

// SetOutput redirects where the demos print. Intended for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// printLine writes one line, serialized so concurrent demos interleave by line.
func printLine(args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(output, args...)
}
