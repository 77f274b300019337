// Package clilog provides debug-gated tracing for the resolve path,
// turned on by the CLI's --debug flag.
package clilog

import "log"

type Logger interface {
	Debug(string, ...interface{})
}

type fullLogger struct{}
type stubLogger struct{}

// New returns a Logger that writes to the standard logger when debug is
// true, and discards everything otherwise, so call sites never branch on
// the flag themselves.
func New(debug bool) Logger {
	if debug {
		return fullLogger{}
	}

	return stubLogger{}
}

func (stubLogger) Debug(string, ...interface{}) {
}

func (fullLogger) Debug(msg string, args ...interface{}) {
	data := []interface{}{msg}
	data = append(data, args...)
	log.Println(data...)
}
