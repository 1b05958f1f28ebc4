// Package cli implements the console side of both programs: prompting for
// and parsing lines of input, printing results, and the progress spinner.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	apperrors "github.com/agbru/chapter3/internal/errors"
	"github.com/agbru/chapter3/internal/ui"
)

// Prompter asks one question at a time on a line-oriented console.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
	theme  ui.Theme
}

// NewPrompter creates a Prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer, theme ui.Theme) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
		theme:  theme,
	}
}

// Ask prints question on its own line and blocks until a line is read.
// The returned text is trimmed of surrounding whitespace. A last line
// without a trailing newline is accepted; end of input before any
// character is a ReadError.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprintln(p.out, p.theme.Prompt(question))

	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", apperrors.ReadError{Cause: err}
	}
	return strings.TrimSpace(line), nil
}

// AskParsed asks question and parses the answer. With retry set, input
// errors are passed to onInvalid and the question is asked again; read
// errors always end the loop.
func AskParsed[T any](p *Prompter, question string, parse func(string) (T, error), retry bool, onInvalid func(error)) (T, error) {
	for {
		var zero T
		raw, err := p.Ask(question)
		if err != nil {
			return zero, err
		}
		value, err := parse(raw)
		if err == nil {
			return value, nil
		}
		if !retry || !apperrors.IsInputError(err) {
			return zero, err
		}
		if onInvalid != nil {
			onInvalid(err)
		}
	}
}

// ParsePosition parses a sequence position. A single leading '+' is
// accepted. Values beyond uint64 are an OverflowError; anything else that
// is not a non-negative integer is a ValidationError.
func ParsePosition(s string) (uint64, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 64)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, apperrors.OverflowError{Value: fmt.Sprintf("input %q", s), Bits: 64}
	}
	return 0, apperrors.ValidationError{
		Field:   "n",
		Message: fmt.Sprintf("%q is not a non-negative integer", s),
	}
}

// ParseTemperature parses a temperature reading. Magnitudes beyond float64
// become infinities rather than errors.
func ParseTemperature(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return f, nil
	}
	return 0, apperrors.ValidationError{
		Field:   "temperature",
		Message: fmt.Sprintf("%q is not a number", s),
	}
}
