package portscan

import (
	"errors"
	"fmt"
)

// ErrInterrupted is returned when the context is cancelled mid-scan (Ctrl+C).
var ErrInterrupted = errors.New("scan interrupted")

// ResolutionError means the target host could not be resolved to an address.
type ResolutionError struct {
	Host string
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve %s: %v", e.Host, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// SocketError means the local socket layer failed, e.g. no file descriptors left.
// Refused or timed-out connects are not SocketErrors.
type SocketError struct {
	Port int
	Err  error
}

func (e *SocketError) Error() string {
	return fmt.Sprintf("socket for port %d: %v", e.Port, e.Err)
}

func (e *SocketError) Unwrap() error { return e.Err }

// RequestError reports an invalid ScanRequest.
type RequestError struct {
	Field  string
	Value  int
	Reason string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s %d %s", e.Field, e.Value, e.Reason)
}
