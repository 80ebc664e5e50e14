// Command dotgrid renders layout files to ESC/P and sends them to a
// dot-matrix printer.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/ryanlewis/dotgrid"
	"github.com/ryanlewis/dotgrid/internal/debug"
	"github.com/ryanlewis/dotgrid/internal/fixtures"
	"github.com/ryanlewis/dotgrid/internal/layoutfile"
	"github.com/ryanlewis/dotgrid/printer"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Exit codes.
const (
	exitOK       = 0
	exitError    = 1
	exitNotReady = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	layout      string
	sample      string
	output      string
	force       bool
	device      string
	preview     bool
	status      bool
	timeout     time.Duration
	debugMode   bool
	debugFile   string
	debugPretty bool
	showVersion bool
	showHelp    bool
}

func run(args []string, stdout, stderr io.Writer) int {
	var cfg config
	flags := pflag.NewFlagSet("dotgrid", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&cfg.layout, "layout", "l", "", "YAML layout file to render")
	flags.StringVarP(&cfg.sample, "sample", "s", "", "Render a built-in sample document instead of a layout")
	flags.StringVarP(&cfg.output, "output", "o", "", "Write ESC/P bytes to this file (default stdout)")
	flags.BoolVar(&cfg.force, "force", false, "Write ESC/P bytes to stdout even when it is a terminal")
	flags.StringVarP(&cfg.device, "device", "d", "", "Send to the printer device at this path")
	flags.BoolVarP(&cfg.preview, "preview", "p", false, "Print a text preview instead of ESC/P bytes")
	flags.BoolVar(&cfg.status, "status", false, "Query the printer status (requires --device)")
	flags.DurationVar(&cfg.timeout, "timeout", 2*time.Second, "How long to wait for a status reply")
	flags.BoolVar(&cfg.debugMode, "debug", false, "Enable debug mode (outputs to stderr)")
	flags.StringVar(&cfg.debugFile, "debug-file", "", "Write debug output to file instead of stderr")
	flags.BoolVar(&cfg.debugPretty, "debug-pretty", false, "Use pretty format for debug output (default: JSON)")
	flags.BoolVarP(&cfg.showVersion, "version", "v", false, "Show version information")
	flags.BoolVarP(&cfg.showHelp, "help", "h", false, "Show help message")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	if cfg.showHelp {
		printHelp(stdout, flags)
		return exitOK
	}
	if cfg.showVersion {
		fmt.Fprintf(stdout, "dotgrid version %s (commit: %s, built: %s)\n", version, commit, date)
		return exitOK
	}

	session, closeDebug, err := setupDebug(&cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	defer closeDebug()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.status {
		return queryStatus(ctx, &cfg, session, stdout, stderr)
	}

	doc, err := loadDocument(&cfg, session)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	switch {
	case cfg.preview:
		writePreview(stdout, doc, previewWidth(stdout))
		return exitOK
	case cfg.device != "":
		err = send(ctx, &cfg, doc, session)
	default:
		err = writeOutput(&cfg, doc, session, stdout)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}

// setupDebug creates the debug session requested by flags or environment.
// The returned close function is always safe to call.
func setupDebug(cfg *config, stderr io.Writer) (*debug.Session, func(), error) {
	debug.InitFromEnv()
	if !cfg.debugMode && cfg.debugFile == "" && !debug.Enabled() {
		return nil, func() {}, nil
	}
	debug.SetEnabled(true)

	output := stderr
	var file *os.File
	if cfg.debugFile != "" {
		f, err := os.Create(cfg.debugFile)
		if err != nil {
			return nil, func() {}, fmt.Errorf("creating debug file: %w", err)
		}
		file = f
		output = f
	}

	var sink debug.Sink
	if cfg.debugPretty || debug.PrettyFromEnv() {
		sink = debug.NewPrettySink(output)
	} else {
		sink = debug.NewJSONSink(output)
	}

	session := debug.NewSession(sink)
	return session, func() {
		//nolint:errcheck // Debug sink errors are non-critical
		session.Close()
		if file != nil {
			file.Close()
		}
	}, nil
}

func loadDocument(cfg *config, session *debug.Session) (*dotgrid.Document, error) {
	switch {
	case cfg.layout != "" && cfg.sample != "":
		return nil, errors.New("--layout and --sample are mutually exclusive")
	case cfg.sample != "":
		s, ok := fixtures.Lookup(cfg.sample)
		if !ok {
			var names []string
			for _, s := range fixtures.Samples() {
				names = append(names, s.Name)
			}
			return nil, fmt.Errorf("unknown sample %q (available: %s)", cfg.sample, strings.Join(names, ", "))
		}
		return s.Build()
	case cfg.layout != "":
		f, err := layoutfile.Load(cfg.layout)
		if err != nil {
			return nil, err
		}
		return f.Build(layoutfile.WithDebug(session))
	default:
		return nil, errors.New("no layout provided (use --layout FILE)")
	}
}

func writeOutput(cfg *config, doc *dotgrid.Document, session *debug.Session, stdout io.Writer) error {
	if cfg.output != "" && cfg.output != "-" {
		f, err := os.Create(cfg.output)
		if err != nil {
			return err
		}
		if err := doc.RenderTo(f, dotgrid.WithDebug(session)); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}

	if isTerminal(stdout) && !cfg.force {
		return errors.New("refusing to write printer control codes to a terminal (use --output, --preview or --force)")
	}
	return doc.RenderTo(stdout, dotgrid.WithDebug(session))
}

func send(ctx context.Context, cfg *config, doc *dotgrid.Document, session *debug.Session) error {
	p, err := printer.Open(cfg.device, printer.WithDebug(session))
	if err != nil {
		return err
	}
	defer p.Close()
	return p.Send(ctx, doc.Render(dotgrid.WithDebug(session)))
}

func queryStatus(ctx context.Context, cfg *config, session *debug.Session, stdout, stderr io.Writer) int {
	if cfg.device == "" {
		fmt.Fprintln(stderr, "Error: --status requires --device")
		return exitError
	}
	p, err := printer.Open(cfg.device, printer.WithDebug(session))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	defer p.Close()

	status, err := p.QueryStatus(ctx, cfg.timeout)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	fmt.Fprintf(stdout, "%s: %s\n", cfg.device, status)
	if !status.Ready() {
		return exitNotReady
	}
	return exitOK
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// previewWidth returns the terminal width, or the full page width when w is
// not a terminal.
func previewWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return min(width, dotgrid.PageWidth)
		}
	}
	return dotgrid.PageWidth
}

// writePreview prints every page as text, each row cropped to width and
// stripped of trailing spaces.
func writePreview(w io.Writer, doc *dotgrid.Document, width int) {
	for i, p := range doc.Pages() {
		if i > 0 {
			fmt.Fprintf(w, "-- page %d --\n", i+1)
		}
		for y := 0; y < dotgrid.PageHeight; y++ {
			row := p.Row(y)
			if len(row) > width {
				row = row[:width]
			}
			fmt.Fprintln(w, strings.TrimRight(row, " "))
		}
	}
}

func printHelp(w io.Writer, flags *pflag.FlagSet) {
	fmt.Fprintln(w, "dotgrid - render layouts for 160-column dot-matrix printers")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  dotgrid --layout FILE [--output FILE | --device PATH | --preview]")
	fmt.Fprintln(w, "  dotgrid --status --device PATH [--timeout 2s]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, flags.FlagUsages())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit status:")
	fmt.Fprintln(w, "  0 success, 1 error, 2 printer not ready (--status)")
}
