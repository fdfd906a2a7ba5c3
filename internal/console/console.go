// Package console is the interactive text menu. It reads one answer per
// line, calls the registry and the credential store, and prints the
// results. It holds no hospital state of its own.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/ehr/hospital/internal/platform/auth"
	"github.com/ehr/hospital/internal/registry"
)

// maxLineSize bounds a single answer. Longer lines end the session with
// bufio.ErrTooLong.
const maxLineSize = 1 << 20

// Options controls presentation only.
type Options struct {
	HospitalName   string
	Locale         language.Tag
	CurrencySymbol string
}

type Console struct {
	reg    *registry.Registry
	users  *auth.Store
	in     *bufio.Scanner
	out    io.Writer
	render *Renderer
	opts   Options
	logger zerolog.Logger

	// ctx and lines are set by Run. lines is fed by a single reader
	// goroutine, which sets scanErr before closing it; scanErr is only read
	// after the close is observed.
	ctx     context.Context
	lines   chan string
	scanErr error
	readErr error
	closed  bool
}

func New(reg *registry.Registry, users *auth.Store, in io.Reader, out io.Writer, opts Options, logger zerolog.Logger) *Console {
	if opts.HospitalName == "" {
		opts.HospitalName = "Hospital Management System"
	}
	if opts.Locale == language.Und {
		opts.Locale = language.AmericanEnglish
	}
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Console{
		reg:    reg,
		users:  users,
		in:     sc,
		out:    out,
		render: NewRenderer(out, opts.Locale, opts.CurrencySymbol),
		opts:   opts,
		logger: logger.With().Str("component", "console").Logger(),
		ctx:    context.Background(),
	}
}

// Run shows the main menu until the user exits, input ends, or ctx is done.
// A pending read is abandoned when ctx is done, so Run returns ctx.Err()
// without waiting for another line. A failed read is returned as an error.
func (c *Console) Run(ctx context.Context) error {
	c.ctx = ctx
	stop := make(chan struct{})
	defer close(stop)
	c.lines = make(chan string)
	go c.readLines(stop)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.header(c.opts.HospitalName)
		c.println("1. Login")
		c.println("2. Reset Password")
		c.println("3. Quick Access (No Login)")
		c.println("0. Exit")
		choice, ok := c.ask("Enter your choice: ")
		if !ok {
			if c.readErr != nil {
				return fmt.Errorf("read input: %w", c.readErr)
			}
			return ctx.Err()
		}
		switch choice {
		case "1":
			c.login(ctx)
		case "2":
			c.resetPassword()
		case "3":
			c.quickAccess(ctx)
		case "0":
			c.println("\nExiting system. Goodbye!")
			return nil
		default:
			c.println("\nInvalid choice!")
		}
	}
}

// -- input/output helpers --

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) header(title string) {
	c.println("\n=========================================================")
	c.printf("  %s\n", title)
	c.println("=========================================================")
}

func (c *Console) readLines(stop <-chan struct{}) {
	defer close(c.lines)
	for c.in.Scan() {
		select {
		case c.lines <- c.in.Text():
		case <-stop:
			return
		}
	}
	c.scanErr = c.in.Err()
}

// ask prints prompt and reads one trimmed line. It returns false once input
// is exhausted, unreadable, or the context is done.
func (c *Console) ask(prompt string) (string, bool) {
	if c.closed {
		return "", false
	}
	c.printf("%s", prompt)
	select {
	case <-c.ctx.Done():
		c.closed = true
		c.println("")
		return "", false
	case line, ok := <-c.lines:
		if !ok {
			c.closed = true
			c.readErr = c.scanErr
			if c.readErr != nil {
				c.logger.Warn().Err(c.readErr).Msg("input stopped")
			}
			c.println("")
			return "", false
		}
		return strings.TrimSpace(line), true
	}
}

func (c *Console) askInt(prompt string) (int, bool) {
	s, ok := c.ask(prompt)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		c.println("\nInvalid number!")
		return 0, false
	}
	return n, true
}

func (c *Console) askFloat(prompt string) (float64, bool) {
	s, ok := c.ask(prompt)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		c.println("\nInvalid amount!")
		return 0, false
	}
	return f, true
}

// fail reports a refused operation.
func (c *Console) fail(err error) {
	c.printf("\nError: %v\n", err)
}

func (c *Console) done(msg string) {
	c.printf("\n%s\n", msg)
}

// menu runs a numbered submenu until "0" or end of input. Unknown choices
// print a notice and repeat.
func (c *Console) menu(ctx context.Context, title, back string, items []menuItem) {
	for {
		if ctx.Err() != nil || c.closed {
			return
		}
		c.header(title)
		for i, it := range items {
			c.printf("%d. %s\n", i+1, it.label)
		}
		c.printf("0. %s\n", back)
		choice, ok := c.ask("Enter your choice: ")
		if !ok || choice == "0" {
			return
		}
		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(items) {
			c.println("\nInvalid choice!")
			continue
		}
		items[n-1].run()
	}
}

type menuItem struct {
	label string
	run   func()
}
