package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ErrorKind classifies provider failures for the retry policy.
type ErrorKind int

const (
	// KindUnavailable covers network failures and 5xx replies.
	KindUnavailable ErrorKind = iota
	// KindRateLimited is a 429 reply.
	KindRateLimited
	// KindInvalid is content that is not JSON or breaks the schema.
	KindInvalid
	// KindTruncated is a reply cut off by the token limit. A truncated
	// story is never usable, so it is not retried with the same budget.
	KindTruncated
	// KindRejected is a 4xx reply other than 429: bad key, bad model.
	KindRejected
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindRateLimited:
		return "rate limited"
	case KindInvalid:
		return "invalid response"
	case KindTruncated:
		return "truncated"
	case KindRejected:
		return "rejected"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is returned by every provider in this package.
type Error struct {
	Kind     ErrorKind
	Provider string

	// RetryAfter is the server's requested delay for KindRateLimited.
	RetryAfter time.Duration

	// Content is the offending reply for KindInvalid and KindTruncated.
	Content json.RawMessage

	Err error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Provider != "" {
		msg = e.Provider + ": " + msg
	}
	if e.Kind == KindRateLimited && e.RetryAfter > 0 {
		msg += fmt.Sprintf(" (retry after %s)", e.RetryAfter)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the kind of err, or false when err is not an *Error.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsKind reports whether err is an *Error of kind k.
func IsKind(err error, k ErrorKind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}

// classifyStatus maps an HTTP status from any SDK to an *Error. header
// may be nil when the SDK does not expose the response.
func classifyStatus(provider string, status int, header http.Header, err error) *Error {
	e := &Error{Kind: KindUnavailable, Provider: provider, Err: err}
	switch {
	case status == http.StatusTooManyRequests:
		e.Kind = KindRateLimited
		e.RetryAfter = parseRetryAfter(header)
	case status >= 400 && status < 500 && status != http.StatusRequestTimeout:
		e.Kind = KindRejected
	}
	return e
}

// parseRetryAfter reads a Retry-After header in seconds. HTTP dates are
// ignored and fall back to the exponential backoff.
func parseRetryAfter(h http.Header) time.Duration {
	if h == nil {
		return 0
	}
	secs, err := strconv.Atoi(h.Get("Retry-After"))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
