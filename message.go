package sample

import (
	"fmt"
	"io"
	"os"
)

// PrintMessage writes message followed by a single line terminator to
// standard output. Nothing is prepended or appended to the text.
func PrintMessage(message string) {
	fprintMessage(os.Stdout, message)
}

func fprintMessage(w io.Writer, message string) {
	fmt.Fprintln(w, message)
}

// Greet writes a hello greeting for name to standard output.
func Greet(name string) {
	fgreet(os.Stdout, name)
}

func fgreet(w io.Writer, name string) {
	fmt.Fprintf(w, "Hello, %s!\n", name)
}

// Add returns the sum of a and b. Overflow wraps per Go int semantics.
func Add(a, b int) int {
	return a + b
}
