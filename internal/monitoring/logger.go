// Package monitoring holds the process-wide diagnostic logger used by the
// command. Library packages take an explicit Logf option instead.
package monitoring

import "log"

// Logf receives every diagnostic line. It starts as log.Printf; the
// command mutes it unless -v is given.
var Logf func(format string, v ...any) = log.Printf

// SetLogger swaps the sink behind Logf. A nil f mutes diagnostics.
func SetLogger(f func(format string, v ...any)) {
	if f == nil {
		Logf = Discard
		return
	}
	Logf = f
}

// Discard drops every message.
func Discard(string, ...any) {}

// Tagged returns a logger that prefixes each line with "[tag] " and
// forwards to whatever Logf is at call time, so a later SetLogger still
// takes effect on loggers already handed out.
func Tagged(tag string) func(format string, v ...any) {
	prefix := "[" + tag + "] "

	return func(format string, v ...any) {
		Logf(prefix+format, v...)
	}
}
