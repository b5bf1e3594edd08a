// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dialogue

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrTooManyAttempts is returned when a validated answer is rejected more
// often than Terminal.MaxAttempts allows.
var ErrTooManyAttempts = errors.New("too many invalid answers")

// invalidNumberHint is printed after every rejected numeric answer.
const invalidNumberHint = "Enter a number"

// Terminal reads answers line by line and writes prompts to an output stream.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer

	// MaxAttempts bounds how many answers AskNumeric reads before giving up.
	// Zero means unbounded.
	MaxAttempts int
}

// NewTerminal returns a Terminal reading from r and prompting on w.
func NewTerminal(r io.Reader, w io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(r), out: w}
}

// Println writes a line of text to the terminal output.
func (t *Terminal) Println(a ...any) {
	fmt.Fprintln(t.out, a...)
}

// Printf writes formatted text to the terminal output.
func (t *Terminal) Printf(format string, a ...any) {
	fmt.Fprintf(t.out, format, a...)
}

// Ask prints "label: " and blocks for one line of input. The answer is
// returned with surrounding whitespace removed. A final line without a
// trailing newline is accepted; end of input before any text is
// io.ErrUnexpectedEOF.
func (t *Terminal) Ask(label string) (string, error) {
	fmt.Fprintf(t.out, "%s: ", label)
	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading %q: %w", label, io.ErrUnexpectedEOF)
		}
		return "", fmt.Errorf("reading %q: %w", label, err)
	}
	return strings.TrimSpace(line), nil
}

// AskRequired asks until a non-blank answer is given.
func (t *Terminal) AskRequired(label string) (string, error) {
	return t.askUntil(label, func(s string) bool { return s != "" }, "")
}

// AskNumeric asks until the answer is fully numeric and, when accept is
// non-nil, accept returns true for it. Each rejected answer prints a hint
// and asks again.
func (t *Terminal) AskNumeric(label string, accept func(string) bool) (string, error) {
	return t.askUntil(label, func(s string) bool {
		if !IsNumeric(s) {
			return false
		}
		return accept == nil || accept(s)
	}, invalidNumberHint)
}

func (t *Terminal) askUntil(label string, valid func(string) bool, hint string) (string, error) {
	for attempt := 1; ; attempt++ {
		answer, err := t.Ask(label)
		if err != nil {
			return "", err
		}
		if valid(answer) {
			return answer, nil
		}
		if t.MaxAttempts > 0 && attempt >= t.MaxAttempts {
			return "", fmt.Errorf("%s: %w (%d)", label, ErrTooManyAttempts, attempt)
		}
		if hint != "" {
			fmt.Fprintln(t.out, hint)
		}
	}
}

// IsNumeric reports whether s is non-empty and made only of ASCII digits.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
