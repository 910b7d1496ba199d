package report

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/fatih/color"

	"portscanner/internal/portscan"
)

const ruleWidth = 60

// ClearScreen moves the cursor home and clears the terminal.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// Printer writes the user-facing scan output.
type Printer struct {
	w     io.Writer
	info  *color.Color
	open  *color.Color
	fail  *color.Color
	plain *color.Color
}

// NewPrinter returns a Printer writing to w. Colors are only emitted when colored is set.
func NewPrinter(w io.Writer, colored bool) *Printer {
	p := &Printer{
		w:     w,
		info:  color.New(color.FgCyan),
		open:  color.New(color.FgGreen),
		fail:  color.New(color.FgRed),
		plain: color.New(color.Reset),
	}
	for _, c := range []*color.Color{p.info, p.open, p.fail, p.plain} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *Printer) rule() {
	p.plain.Fprintln(p.w, strings.Repeat("-", ruleWidth))
}

// Banner announces the target and the range about to be scanned.
func (p *Printer) Banner(ip net.IP, start, end int) {
	p.rule()
	p.info.Fprintf(p.w, "Please wait, scanning remote host %s\n", ip)
	p.info.Fprintf(p.w, "On ports: %d to %d\n", start, end)
	p.rule()
	fmt.Fprintln(p.w)
}

// Open prints one open port.
func (p *Printer) Open(port int) {
	p.open.Fprintf(p.w, "Port %d: Open\n", port)
}

// Summary prints the closing block with the elapsed time.
func (p *Printer) Summary(elapsed time.Duration) {
	fmt.Fprintln(p.w)
	p.rule()
	p.info.Fprintf(p.w, "Scanning Completed in: %s\n", elapsed)
	p.rule()
}

// Failure prints the diagnostic for a terminal error.
func (p *Printer) Failure(err error) {
	var (
		resErr  *portscan.ResolutionError
		sockErr *portscan.SocketError
		reqErr  *portscan.RequestError
	)
	switch {
	case errors.Is(err, portscan.ErrInterrupted):
		p.fail.Fprintln(p.w, "You pressed Ctrl+C")
	case errors.As(err, &resErr):
		p.fail.Fprintln(p.w, "Hostname could not be resolved. Exiting")
	case errors.As(err, &sockErr):
		p.fail.Fprintf(p.w, "Socket creation failed. Error: %v\n", sockErr.Err)
	case errors.As(err, &reqErr):
		p.fail.Fprintf(p.w, "Invalid port range: %v\n", reqErr)
	default:
		p.fail.Fprintf(p.w, "Scan failed: %v\n", err)
	}
}
