package report

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"os"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portscanner/internal/portscan"
)

func TestPrinterScanOutput(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.Banner(net.ParseIP("127.0.0.1"), 1, 100)
	p.Open(50)
	p.Summary(1500 * time.Millisecond)

	rule := strings.Repeat("-", 60)
	want := rule + "\n" +
		"Please wait, scanning remote host 127.0.0.1\n" +
		"On ports: 1 to 100\n" +
		rule + "\n" +
		"\n" +
		"Port 50: Open\n" +
		"\n" +
		rule + "\n" +
		"Scanning Completed in: 1.5s\n" +
		rule + "\n"
	assert.Equal(t, want, buf.String())
}

func TestPrinterColored(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, true).Open(22)

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "Port 22: Open")
}

func TestPrinterFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"interrupt", portscan.ErrInterrupted, "You pressed Ctrl+C\n"},
		{"wrapped interrupt", fmt.Errorf("scan: %w", portscan.ErrInterrupted), "You pressed Ctrl+C\n"},
		{"resolution", &portscan.ResolutionError{Host: "x.invalid", Err: &net.DNSError{Err: "no such host"}}, "Hostname could not be resolved. Exiting\n"},
		{"socket", &portscan.SocketError{Port: 3, Err: os.NewSyscallError("socket", syscall.EMFILE)}, "Socket creation failed. Error: socket: too many open files\n"},
		{"request", &portscan.RequestError{Field: "end port", Value: 0, Reason: "must be between 1 and 65535"}, "Invalid port range: end port 0 must be between 1 and 65535\n"},
		{"other", context.DeadlineExceeded, "Scan failed: context deadline exceeded\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewPrinter(&buf, false).Failure(tt.err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestClearScreen(t *testing.T) {
	var buf bytes.Buffer
	ClearScreen(&buf)
	assert.Equal(t, "\033[H\033[2J", buf.String())
}

func TestProgressWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	bar := NewProgress(&buf, 10)
	require.NoError(t, bar.Add(10))
	require.NoError(t, bar.Finish())

	assert.Contains(t, buf.String(), "10/10")
}
