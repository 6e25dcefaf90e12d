package flow

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Console is a line-oriented terminal Prompter.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole returns a Console reading answers from in and writing
// questions and notices to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Ask prints question and reads one line. Only the line terminator is
// stripped. A final line without a newline is still returned; io.EOF is
// reported once no input is left.
func (c *Console) Ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprint(c.out, question+" "); err != nil {
		return "", err
	}
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || line == "" {
			return "", err
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Notify prints message on its own line.
func (c *Console) Notify(_ context.Context, message string) error {
	_, err := fmt.Fprintln(c.out, message)
	return err
}
