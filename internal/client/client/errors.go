package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNoSession    = errors.New("not logged in")
	ErrNotFound     = errors.New("not found")
)

type ErrorKind int

const (
	// KindTransport: the request never completed.
	KindTransport ErrorKind = iota + 1
	// KindCanceled: the caller's context ended first.
	KindCanceled
	// KindNoSession: a privileged call was attempted without a token.
	KindNoSession
	KindUnauthorized
	KindNotFound
	// KindRejected: any other 4xx.
	KindRejected
	KindServer
	// KindDecode: a 2xx whose body could not be parsed.
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindCanceled:
		return "canceled"
	case KindNoSession:
		return "no_session"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindRejected:
		return "rejected"
	case KindServer:
		return "server"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is the failure half of every Client call.
type Error struct {
	Kind   ErrorKind
	Status int    // HTTP status, 0 when no response was received
	Detail string // server-provided "error" text, or a best-effort description
	Err    error  // underlying cause, if any
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (%d)", msg, e.Status)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnavailable:
		return e.Kind == KindTransport || e.Kind == KindServer
	case ErrUnauthorized:
		return e.Kind == KindUnauthorized || e.Kind == KindNoSession
	case ErrNoSession:
		return e.Kind == KindNoSession
	case ErrNotFound:
		return e.Kind == KindNotFound
	}
	return false
}

// KindOf returns the kind of a Client error, or 0 for other errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// DetailOf returns the server-provided detail of a Client error, or "".
func DetailOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Detail
	}
	return ""
}

func kindForStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindUnauthorized
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= 500:
		return KindServer
	default:
		return KindRejected
	}
}
