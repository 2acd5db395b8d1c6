// Package log provides the leveled console logger used by init-sources.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	// Quiet suppresses all logging output below ERROR
	Quiet bool

	// Verbose enables logging output below INFO
	Verbose bool

	mu     sync.Mutex
	output io.Writer = os.Stderr
)

// SetOutput redirects log output and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := output
	output = w
	return prev
}

func Infof(format string, args ...any) {
	if Quiet {
		return
	}
	if Verbose {
		printf("INFO "+format, args...)
	} else {
		printf(format, args...)
	}
}

func Debugf(format string, args ...any) {
	if Verbose && !Quiet {
		printf("DEBUG "+format, args...)
	}
}

// Errorf is printed regardless of Quiet.
func Errorf(format string, args ...any) {
	printf("ERROR "+format, args...)
}

func printf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(output, format+"\n", args...)
}
