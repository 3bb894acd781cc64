// Package prompt reads line-oriented answers from an input stream.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter writes labels to out and reads one trimmed line per answer from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter reading from in and writing labels to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints label and returns the next input line with surrounding
// whitespace removed. It returns io.EOF once input is exhausted.
func (p *Prompter) Ask(label string) (string, error) {
	fmt.Fprint(p.out, label)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		// Terminate the dangling label so later output starts on a new line.
		fmt.Fprintln(p.out)
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Rejection is returned by a parse function to refuse an answer. Message
// is shown to the user verbatim before asking again.
type Rejection struct {
	Message string
}

func (r *Rejection) Error() string { return r.Message }

// Reject builds a Rejection from a format string.
func Reject(format string, args ...any) error {
	return &Rejection{Message: fmt.Sprintf(format, args...)}
}

// Until asks with label until parse accepts the answer. Each rejected
// answer prints the error text as the corrective message. There is no
// retry limit; the only other exit is a read error such as io.EOF.
func Until[T any](p *Prompter, label string, parse func(string) (T, error)) (T, error) {
	for {
		answer, err := p.Ask(label)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(answer)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(p.out, err.Error())
	}
}
