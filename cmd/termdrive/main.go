// Package main is a demo client for the termdrive output layer. It
// drives the local terminal through the driver stack: styled text,
// region scrolling, erase, and mode controls, then restores the
// terminal on exit.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/dshills/termdrive/internal/config"
	termpkg "github.com/dshills/termdrive/internal/term"
	"github.com/dshills/termdrive/internal/term/core"
	"github.com/dshills/termdrive/internal/term/driver"
	"github.com/dshills/termdrive/internal/term/termcap"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	ConfigPath string
	Term       string
	LogLevel   string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "Error: stdout is not a terminal")
		return 1
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.Term != "" {
		cfg.Term = opts.Term
	}

	logger := newLogger(opts.LogLevel)

	lines, cols := 0, 0
	if l, c, err := termcap.WindowSize(int(os.Stdout.Fd())); err == nil {
		lines, cols = l, c
	}

	session, err := termpkg.New(termpkg.Options{
		Output:   os.Stdout,
		TermType: cfg.Term,
		Lines:    lines,
		Cols:     cols,
		Logger:   logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	defer session.Destroy()

	// Raw mode so a single keypress ends the demo.
	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to enter raw mode: %v\n", err)
		return 1
	}
	defer term.Restore(int(os.Stdin.Fd()), state)

	session.Start()
	if cfg.AltScreen {
		session.SetCtlInt(driver.CtlAltScreen, 1)
	}
	if cfg.Mouse {
		session.SetCtlInt(driver.CtlMouse, 1)
	}
	if cfg.Title != "" {
		session.SetCtlStr(driver.StrCtlTitleText, cfg.Title)
	}

	drawDemo(session)
	if err := session.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	waitForExit(session, logger)

	session.Stop()
	if err := session.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// drawDemo paints a small scene exercising the output operations.
func drawDemo(t *termpkg.Terminal) {
	lines, cols := t.Size()

	t.Clear()

	title := core.NewPen()
	title.SetBold(true)
	title.SetForeground(core.ColorRGB(0x5f, 0xd7, 0xff))
	t.SetPen(title)
	t.GotoAbs(0, 0)
	t.Print(fmt.Sprintf("termdrive %s on %s (%dx%d)", version, t.DriverName(), lines, cols))

	body := core.NewPen()
	t.SetPen(body)
	t.GotoAbs(2, 0)
	t.Print("attributes: ")
	samples := []struct {
		label string
		apply func(*core.Pen)
	}{
		{"bold", func(p *core.Pen) { p.SetBold(true) }},
		{"underline", func(p *core.Pen) { p.SetUnderline(true) }},
		{"italic", func(p *core.Pen) { p.SetItalic(true) }},
		{"reverse", func(p *core.Pen) { p.SetReverse(true) }},
		{"strike", func(p *core.Pen) { p.SetStrike(true) }},
	}
	for _, s := range samples {
		p := core.NewPen()
		s.apply(&p)
		t.SetPen(p)
		t.Print(s.label)
		t.SetPen(body)
		t.Print(" ")
	}

	t.GotoAbs(4, 0)
	t.Print("256-color ramp: ")
	for i := 0; i < 24; i++ {
		p := core.NewPen()
		p.SetBackground(core.Color(232 + i))
		t.SetPen(p)
		t.Print(" ")
	}
	t.SetPen(body)

	// Shift the banner region down a line; the driver picks a
	// strategy or the host repaints.
	t.ScrollRect(core.NewRect(0, 0, 2, cols), -1, 0)

	t.GotoAbs(6, 0)
	t.EraseCh(cols, false)
	t.Print("press any key to exit")
	t.GotoAbs(lines-1, 0)
}

// waitForExit blocks until a key arrives or a termination signal
// fires, feeding window-size changes back into the session.
func waitForExit(t *termpkg.Terminal, logger *slog.Logger) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGWINCH)
	defer signal.Stop(signals)

	keys := make(chan struct{})
	go func() {
		buf := make([]byte, 1)
		os.Stdin.Read(buf)
		close(keys)
	}()

	for {
		select {
		case <-keys:
			return
		case sig := <-signals:
			if sig != syscall.SIGWINCH {
				return
			}
			lines, cols, err := termcap.WindowSize(int(os.Stdout.Fd()))
			if err != nil {
				logger.Warn("window size query failed", "error", err)
				continue
			}
			t.Feed(core.Event{Type: core.EventResize, Lines: lines, Cols: cols})
			drawDemo(t)
			if err := t.Flush(); err != nil {
				logger.Warn("flush failed", "error", err)
			}
		case <-time.After(30 * time.Second):
			return
		}
	}
}

func newLogger(level string) *slog.Logger {
	var lv slog.Level
	switch level {
	case "debug":
		lv = slog.LevelDebug
	case "warn":
		lv = slog.LevelWarn
	case "error":
		lv = slog.LevelError
	default:
		lv = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lv}))
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.Term, "term", "", "Override the terminal type ($TERM)")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "termdrive - terminal output driver demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: termdrive [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("termdrive %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	switch opts.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q\n", opts.LogLevel)
		os.Exit(1)
	}

	return opts
}
