package lz4file

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"code.cloudfoundry.org/bytefmt"
	"go.uber.org/multierr"
)

// Report holds the log lines and errors of one Job, in the order they occurred.
type Report struct {
	Logs   []string
	Errors []error

	enabled bool
}

func (r *Report) logf(format string, args ...interface{}) {
	if !r.enabled {
		return
	}
	r.Logs = append(r.Logs, fmt.Sprintf(format, args...))
}

func (r *Report) fail(err error) {
	r.Errors = append(r.Errors, err)
}

// Err returns all the reported errors combined into one, or nil.
func (r *Report) Err() error {
	return multierr.Combine(r.Errors...)
}

// Failed reports whether any error was recorded.
func (r *Report) Failed() bool {
	return len(r.Errors) > 0
}

// peakHeap is the highest heap usage seen by memoryUsage.
var peakHeap atomic.Uint64

// recordHeap samples the heap in use and returns it with the peak seen so far.
func recordHeap() (current, peak uint64) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	current = m.HeapAlloc
	for {
		peak = peakHeap.Load()
		if current <= peak || peakHeap.CompareAndSwap(peak, current) {
			break
		}
	}
	if current > peak {
		peak = current
	}
	return current, peak
}

// memoryUsage formats the heap in use and its peak.
func memoryUsage() string {
	current, peak := recordHeap()
	return fmt.Sprintf("Memory usage: %s / peak usage: %s", bytefmt.ByteSize(current), bytefmt.ByteSize(peak))
}
