package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"portscanner/internal/portscan"
	"portscanner/internal/report"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitUsage       = 2
	exitInterrupted = 130
)

type options struct {
	host         string
	startPort    int
	endPort      int
	inclusiveEnd bool
	progress     bool
	noClear      bool
	verbose      bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("portscanner", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.host, "remoteServer", "localhost", "remote host to scan")
	fs.IntVar(&opts.startPort, "start-port", 1, "first port to scan")
	fs.IntVar(&opts.endPort, "end-port", 100, "end of the port range (exclusive unless --inclusive-end)")
	fs.BoolVar(&opts.inclusiveEnd, "inclusive-end", false, "scan the end port too")
	fs.BoolVar(&opts.progress, "progress", false, "show a progress bar on stderr")
	fs.BoolVar(&opts.noClear, "no-clear", false, "do not clear the screen before scanning")
	fs.BoolVar(&opts.verbose, "verbose", false, "log every connection attempt to stderr")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// run scans with the given arguments and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	log := newLogger(stderr, opts.verbose)
	printer := report.NewPrinter(stdout, isTerminal(stdout) && !color.NoColor)

	req := portscan.ScanRequest{
		Host:         opts.host,
		StartPort:    opts.startPort,
		EndPort:      opts.endPort,
		Timeout:      portscan.DefaultTimeout,
		InclusiveEnd: opts.inclusiveEnd,
	}
	if err := req.Validate(); err != nil {
		printer.Failure(err)
		return exitUsage
	}

	if !opts.noClear && isTerminal(stdout) {
		report.ClearScreen(stdout)
	}

	scanner := portscan.NewScanner(log)
	scanner.OnResolved = func(ip net.IP) {
		printer.Banner(ip, req.StartPort, req.EndPort)
	}
	scanner.OnOpen = func(p portscan.PortResult) {
		printer.Open(p.Port)
	}

	finishProgress := func() {}
	if opts.progress && req.Ports() > 0 {
		bar := report.NewProgress(stderr, req.Ports())
		scanner.OnAttempt = func(int) { _ = bar.Add(1) }
		scanner.OnOpen = func(p portscan.PortResult) {
			_ = bar.Clear()
			printer.Open(p.Port)
		}
		finishProgress = func() {
			_ = bar.Finish()
			fmt.Fprintln(stderr)
		}
	}

	result, err := scanner.Scan(ctx, req)
	finishProgress()
	if err != nil {
		printer.Failure(err)
		return exitCode(err)
	}

	log.WithFields(logrus.Fields{
		"host":    result.Host,
		"open":    result.OpenPorts(),
		"elapsed": result.Elapsed,
	}).Debug("scan complete")
	printer.Summary(result.Elapsed)
	return exitOK
}

func exitCode(err error) int {
	var reqErr *portscan.RequestError
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, portscan.ErrInterrupted):
		return exitInterrupted
	case errors.As(err, &reqErr):
		return exitUsage
	default:
		return exitFailure
	}
}
