package compare

import (
	"fmt"
	"io"
	"os"
)

// output is where the report lines go. The canonical program writes them to
// standard output and nothing else may write there.
var output io.Writer = os.Stdout

// SetOutput redirects the report writer. Intended for tests.
func SetOutput(w io.Writer) {
	output = w
}

// Add returns the sum of a and b.
func Add(a, b int) int {
	return a + b
}

// Simple computes the fixed example sum and reports it on one line.
func Simple() {
	result := Add(3, 4)
	fmt.Fprintln(output, "The sum is:", result)
}
