// Package batch drains a list of URLs through the download worker strictly one
// item at a time. A single loop goroutine owns the batch state; workers and the
// UI communicate with it only through its event channel.
package batch
