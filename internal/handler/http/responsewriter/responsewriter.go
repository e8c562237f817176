// Package responsewriter wraps http.ResponseWriter so middleware can read the
// status, size and latency of a response after the handler returns.
package responsewriter

import (
	"net/http"
	"time"
)

// Recorder captures what a handler wrote.
type Recorder struct {
	http.ResponseWriter
	start   time.Time
	status  int
	bytes   int
	written bool
}

// Wrap starts recording w. The clock starts at the call.
func Wrap(w http.ResponseWriter) *Recorder {
	return &Recorder{ResponseWriter: w, start: time.Now(), status: http.StatusOK}
}

// WriteHeader forwards only the first status code.
func (r *Recorder) WriteHeader(code int) {
	if r.written {
		return
	}
	r.status = code
	r.written = true
	r.ResponseWriter.WriteHeader(code)
}

func (r *Recorder) Write(b []byte) (int, error) {
	if !r.written {
		r.WriteHeader(http.StatusOK)
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

// Flush forwards to the underlying writer when it supports flushing.
func (r *Recorder) Flush() {
	if !r.written {
		r.WriteHeader(http.StatusOK)
	}
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// StatusCode is 200 when the handler never wrote a header.
func (r *Recorder) StatusCode() int { return r.status }

func (r *Recorder) BytesWritten() int { return r.bytes }

// Written reports whether a status line has been sent.
func (r *Recorder) Written() bool { return r.written }

// Elapsed is the time since Wrap.
func (r *Recorder) Elapsed() time.Duration { return time.Since(r.start) }

// Unwrap supports http.ResponseController.
func (r *Recorder) Unwrap() http.ResponseWriter { return r.ResponseWriter }
