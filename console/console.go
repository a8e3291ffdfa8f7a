// Package console is the interactive menu loop of dbconsole.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kndndrj/dbconsole/core"
	"github.com/kndndrj/dbconsole/core/format"
)

// Console reads menu selections from an input, runs the fixed query of
// every selection and prints its result.
type Console struct {
	conn      *core.Connection
	menu      *Menu
	formatter core.Formatter
	log       core.Logger

	in  *bufio.Reader
	out io.Writer
}

type Option func(*Console)

func WithLogger(log core.Logger) Option {
	return func(c *Console) {
		c.log = log
	}
}

func New(conn *core.Connection, menu *Menu, formatter core.Formatter, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		conn:      conn,
		menu:      menu,
		formatter: formatter,
		log:       core.NopLogger(),
		in:        bufio.NewReader(in),
		out:       out,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Prompt prints the question and reads one line of the answer, of any
// length. io.EOF is returned once the input is exhausted.
func (c *Console) Prompt(question string) (string, error) {
	fmt.Fprint(c.out, question)

	line, err := c.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Run loops until the Exit choice, the end of input or a cancelled
// context. Query failures are reported and the loop carries on, so only
// a failure to read input is returned.
func (c *Console) Run(ctx context.Context) error {
	if c.menu.Greeting != "" {
		fmt.Fprintln(c.out, c.menu.Greeting)
	}

	for {
		if err := ctx.Err(); err != nil {
			c.log.Infof("console stopped: %s", err)
			return nil
		}

		c.menu.Print(c.out)
		line, err := c.Prompt("")
		if err != nil {
			return c.stop(err)
		}

		choice, err := c.menu.Choose(line, c)
		if err != nil {
			return c.stop(err)
		}

		if exit := c.Dispatch(ctx, choice); exit {
			return nil
		}
	}
}

func (c *Console) stop(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(c.out)
		c.log.Infof("end of input, exiting")
		return nil
	}
	return fmt.Errorf("reading input: %w", err)
}

// Dispatch handles a single choice and reports whether the loop should end.
func (c *Console) Dispatch(ctx context.Context, choice MenuChoice) bool {
	switch ch := choice.(type) {
	case Exit:
		fmt.Fprintln(c.out, "Exiting...")
		return true
	case Invalid:
		c.log.Debugf("invalid selection: %q", ch.Input)
		fmt.Fprintln(c.out, "Invalid selection. Try again.")
	case InputError:
		fmt.Fprintln(c.out, ch.Message)
	case QueryChoice:
		c.execute(ctx, ch.Query())
	default:
		c.log.Errorf("unhandled menu choice: %T", choice)
		fmt.Fprintln(c.out, "Invalid selection. Try again.")
	}

	return false
}

// execute runs the query and prints its result. Rows read before a
// failure are still printed, followed by the error.
func (c *Console) execute(ctx context.Context, q FixedQuery) {
	call := c.conn.Execute(ctx, q.SQL, q.Args...)

	result, err := call.GetResult()
	if err != nil && result.IsEmpty() {
		fmt.Fprintf(c.out, "Query failed: %s\n", err)
		return
	}

	// the notice is printed the same way for every format
	if result.IsEmpty() {
		notice := q.EmptyNotice
		if notice == "" {
			notice = format.DefaultEmptyNotice
		}
		fmt.Fprintln(c.out, notice)
		return
	}

	out, ferr := result.Format(c.formatter, &core.FormatterOptions{
		Title:       q.Title,
		EmptyNotice: q.EmptyNotice,
	})
	if ferr != nil {
		c.log.Errorf("formatting call %s: %s", call.GetID(), ferr)
		fmt.Fprintf(c.out, "Could not print the result: %s\n", ferr)
		return
	}
	_, _ = c.out.Write(out)

	if err != nil {
		fmt.Fprintf(c.out, "Query failed: %s\n", err)
	}
}
