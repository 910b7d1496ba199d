package portscan

import (
	"context"
	"errors"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// Resolver looks up the addresses of a host. *net.Resolver satisfies it.
type Resolver interface {
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// Dialer opens a connection. *net.Dialer satisfies it.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Scanner runs a sequential TCP connect scan against one host.
// A Scanner is not safe for concurrent use; it never starts goroutines itself.
type Scanner struct {
	Resolver Resolver
	Dialer   Dialer
	Log      logrus.FieldLogger

	// OnResolved is called once the target address is known, before any probe.
	OnResolved func(ip net.IP)
	// OnAttempt is called before each port is probed.
	OnAttempt func(port int)
	// OnOpen is called as soon as a port is found open.
	OnOpen func(PortResult)
}

// NewScanner creates a Scanner backed by the system resolver.
func NewScanner(log logrus.FieldLogger) *Scanner {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Scanner{
		Resolver: net.DefaultResolver,
		Dialer: &net.Dialer{
			KeepAlive: -1, // no keep-alive, connection is closed right away
		},
		Log: log,
	}
}

// Resolve returns the address to scan for host, preferring IPv4.
func (s *Scanner) Resolve(ctx context.Context, host string) (net.IP, error) {
	addrs, err := s.Resolver.LookupIPAddr(ctx, host)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ErrInterrupted
		}
		return nil, &ResolutionError{Host: host, Err: err}
	}
	if len(addrs) == 0 {
		return nil, &ResolutionError{Host: host, Err: errors.New("no addresses found")}
	}
	for _, a := range addrs {
		if ip4 := a.IP.To4(); ip4 != nil {
			return ip4, nil
		}
	}
	return addrs[0].IP, nil
}

// Scan resolves req.Host and probes each port of the range in ascending order.
// On ErrInterrupted or *SocketError the result so far is returned along with the error.
func (s *Scanner) Scan(ctx context.Context, req ScanRequest) (*ScanResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ip, err := s.Resolve(ctx, req.Host)
	if err != nil {
		return nil, err
	}

	result := &ScanResult{Host: req.Host, IP: ip}
	if s.OnResolved != nil {
		s.OnResolved(ip)
	}
	log := s.Log.WithFields(logrus.Fields{"host": req.Host, "ip": ip.String()})
	log.WithFields(logrus.Fields{
		"start":     req.StartPort,
		"end":       req.EndPort,
		"inclusive": req.InclusiveEnd,
	}).Debug("scan started")

	begin := time.Now()
	defer func() { result.Elapsed = time.Since(begin) }()

	timeout := req.timeout()
	for port := req.StartPort; port <= req.lastPort(); port++ {
		// Ctrl+C
		if ctx.Err() != nil {
			log.WithField("port", port).Debug("scan interrupted")
			return result, ErrInterrupted
		}
		if s.OnAttempt != nil {
			s.OnAttempt(port)
		}

		open, err := s.scanPort(ctx, ip, port, timeout)
		if err != nil {
			return result, err
		}
		if !open {
			continue
		}

		pr := PortResult{Port: port, Status: StatusOpen, Service: ServiceName(port)}
		result.Ports = append(result.Ports, pr)
		if s.OnOpen != nil {
			s.OnOpen(pr)
		}
	}

	log.WithField("open", len(result.Ports)).Debug("scan finished")
	return result, nil
}

// scanPort makes one connect attempt. A refused, unreachable or timed-out
// port reports false with a nil error; only interrupts and local socket
// failures are errors.
func (s *Scanner) scanPort(ctx context.Context, ip net.IP, port int, timeout time.Duration) (bool, error) {
	address := net.JoinHostPort(ip.String(), strconv.Itoa(port))
	log := s.Log.WithFields(logrus.Fields{"port": port, "addr": address})

	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := s.Dialer.DialContext(dialCtx, "tcp", address)
	if err != nil {
		if ctx.Err() != nil {
			return false, ErrInterrupted
		}
		if isSocketFailure(err) {
			log.WithError(err).Error("socket creation failed")
			return false, &SocketError{Port: port, Err: err}
		}
		log.WithError(err).Debug("closed or filtered")
		return false, nil
	}
	conn.Close()

	log.WithField("service", ServiceName(port)).Debug("open")
	return true, nil
}

// isSocketFailure reports whether err came from creating the local socket
// rather than from the remote end.
func isSocketFailure(err error) bool {
	var se *os.SyscallError
	return errors.As(err, &se) && se.Syscall == "socket"
}
