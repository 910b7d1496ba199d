package portscan

import (
	"net"
	"time"
)

const (
	MinPort = 1
	MaxPort = 65535

	// DefaultTimeout bounds every single connection attempt.
	DefaultTimeout = time.Second
)

// PortStatus is the state recorded for a scanned port.
// Closed and filtered ports are never recorded, so Open is the only value.
type PortStatus int

const (
	StatusOpen PortStatus = iota
)

func (s PortStatus) String() string {
	switch s {
	case StatusOpen:
		return "Open"
	default:
		return "Unknown"
	}
}

// ScanRequest describes one scan of a single host.
type ScanRequest struct {
	Host      string
	StartPort int
	EndPort   int
	// Timeout for each connect; DefaultTimeout when zero.
	Timeout time.Duration
	// InclusiveEnd scans [StartPort, EndPort] instead of [StartPort, EndPort).
	InclusiveEnd bool
}

// Validate checks the port bounds and their ordering.
func (r ScanRequest) Validate() error {
	if r.StartPort < MinPort || r.StartPort > MaxPort {
		return &RequestError{Field: "start port", Value: r.StartPort, Reason: "must be between 1 and 65535"}
	}
	if r.EndPort < MinPort || r.EndPort > MaxPort {
		return &RequestError{Field: "end port", Value: r.EndPort, Reason: "must be between 1 and 65535"}
	}
	if r.StartPort > r.EndPort {
		return &RequestError{Field: "start port", Value: r.StartPort, Reason: "must not be greater than end port"}
	}
	if r.Timeout < 0 {
		return &RequestError{Field: "timeout", Value: int(r.Timeout), Reason: "must not be negative"}
	}
	return nil
}

// Ports returns how many ports the request covers.
func (r ScanRequest) Ports() int {
	n := r.EndPort - r.StartPort
	if r.InclusiveEnd {
		n++
	}
	if n < 0 {
		return 0
	}
	return n
}

// lastPort is the highest port the loop visits.
func (r ScanRequest) lastPort() int {
	if r.InclusiveEnd {
		return r.EndPort
	}
	return r.EndPort - 1
}

func (r ScanRequest) timeout() time.Duration {
	if r.Timeout == 0 {
		return DefaultTimeout
	}
	return r.Timeout
}

// PortResult is one open port.
type PortResult struct {
	Port    int
	Status  PortStatus
	Service string // IANA name, empty if unknown
}

// ScanResult is the outcome of a completed or interrupted scan.
type ScanResult struct {
	Host    string
	IP      net.IP
	Ports   []PortResult // ascending
	Elapsed time.Duration
}

// OpenPorts returns just the port numbers.
func (r *ScanResult) OpenPorts() []int {
	ports := make([]int, 0, len(r.Ports))
	for _, p := range r.Ports {
		ports = append(ports, p.Port)
	}
	return ports
}
