package portscan

import (
	"strings"

	"github.com/google/gopacket/layers"
)

// ServiceName returns the IANA service name registered for a TCP port,
// or "" when the port has none.
func ServiceName(port int) string {
	if port < MinPort || port > MaxPort {
		return ""
	}
	// layers.TCPPort formats known ports as "80(http)"
	s := layers.TCPPort(port).String()
	i := strings.IndexByte(s, '(')
	if i < 0 || !strings.HasSuffix(s, ")") {
		return ""
	}
	return s[i+1 : len(s)-1]
}
