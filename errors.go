package softgpu

import (
	"fmt"
	"slices"
)

// ErrorCode classifies a reported failure.
type ErrorCode uint8

const (
	// ErrorNone is the zero code. It never appears on a reported Error.
	ErrorNone ErrorCode = iota

	// ErrorBackend means a native allocation or creation call failed.
	ErrorBackend

	// ErrorData means caller-supplied pixel data was malformed or too short.
	ErrorData

	// ErrorUser means an operation was attempted without its preconditions,
	// for example creating an image with no current window target.
	ErrorUser

	// ErrorUnsupportedFunction means the feature is intentionally not
	// implemented by this backend.
	ErrorUnsupportedFunction

	// ErrorNullArgument means a required handle or value was missing.
	ErrorNullArgument
)

// String returns the code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrorNone:
		return "none"
	case ErrorBackend:
		return "backend error"
	case ErrorData:
		return "data error"
	case ErrorUser:
		return "user error"
	case ErrorUnsupportedFunction:
		return "unsupported function"
	case ErrorNullArgument:
		return "null argument"
	default:
		return "unknown"
	}
}

// Error is a failure reported by a renderer operation.
//
// Op names the failing entry point. Err, when set, is the native error
// that caused the failure.
type Error struct {
	Op      string
	Code    ErrorCode
	Details string
	Err     error
}

func (e *Error) Error() string {
	msg := "softgpu"
	if e.Op != "" {
		msg += ": " + e.Op
	}
	if e.Details != "" {
		msg += ": " + e.Details
	}
	msg += " (" + e.Code.String() + ")"
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the code sentinels below, so callers can write
// errors.Is(err, softgpu.ErrUnsupported).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Op != "" || t.Details != "" || t.Err != nil {
		return false
	}
	return t.Code == e.Code
}

// Code sentinels for errors.Is.
var (
	ErrBackend      = &Error{Code: ErrorBackend}
	ErrData         = &Error{Code: ErrorData}
	ErrUser         = &Error{Code: ErrorUser}
	ErrUnsupported  = &Error{Code: ErrorUnsupportedFunction}
	ErrNullArgument = &Error{Code: ErrorNullArgument}
)

// Errorf builds an Error for op with a formatted message.
func Errorf(op string, code ErrorCode, format string, args ...any) *Error {
	return &Error{Op: op, Code: code, Details: fmt.Sprintf(format, args...)}
}

// DefaultErrorQueueSize is the capacity used when none is configured.
const DefaultErrorQueueSize = 20

// ErrorQueue is a bounded FIFO of reported errors. When full, pushing
// drops the oldest entry.
//
// ErrorQueue is not safe for concurrent use.
type ErrorQueue struct {
	items   []*Error
	max     int
	dropped int
}

// NewErrorQueue creates a queue holding at most size errors.
// Non-positive sizes use DefaultErrorQueueSize.
func NewErrorQueue(size int) *ErrorQueue {
	if size <= 0 {
		size = DefaultErrorQueueSize
	}
	return &ErrorQueue{max: size}
}

// Push appends e, dropping the oldest entry if the queue is full.
func (q *ErrorQueue) Push(e *Error) {
	if e == nil {
		return
	}
	if len(q.items) == q.max {
		q.items = slices.Delete(q.items, 0, 1)
		q.dropped++
	}
	q.items = append(q.items, e)
}

// Pop removes and returns the oldest error, or nil if the queue is empty.
func (q *ErrorQueue) Pop() *Error {
	if len(q.items) == 0 {
		return nil
	}
	e := q.items[0]
	q.items = slices.Delete(q.items, 0, 1)
	return e
}

// Drain returns all queued errors, oldest first, and empties the queue.
func (q *ErrorQueue) Drain() []*Error {
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued errors.
func (q *ErrorQueue) Len() int { return len(q.items) }

// Cap returns the queue capacity.
func (q *ErrorQueue) Cap() int { return q.max }

// Dropped returns how many errors were discarded because the queue was full.
func (q *ErrorQueue) Dropped() int { return q.dropped }
