// Package logger provides a configurable logger shared by linprog components.
//
// The root logger uses github.com/rs/zerolog with a console writer. Solvers
// emit their pivot/branching traces through it at debug level; by default the
// logger is disabled inside `go test` binaries to keep test output clean.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var root zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	root = zerolog.New(output).With().Timestamp().Logger()

	if strings.HasSuffix(os.Args[0], ".test") {
		root = zerolog.Nop()
	}
}

// SetOutput changes the output of the global logger.
func SetOutput(w io.Writer) {
	root = root.Output(w)
}

// Set allows a linprog user to override the global logger.
func Set(l zerolog.Logger) {
	root = l
}

// Disable disables logging entirely.
func Disable() {
	root = zerolog.Nop()
}

// Logger returns the current root logger; components derive sub-loggers
// from it via With().
func Logger() zerolog.Logger {
	return root
}
