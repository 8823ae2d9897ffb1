package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// prompter reads user input for one command. Prompts go to out, which is
// stderr, so stdout only carries command output.
type prompter struct {
	in       *bufio.Reader
	out      io.Writer
	fd       int
	terminal bool
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	p := &prompter{in: bufio.NewReader(in), out: out, fd: -1}

	if f, ok := in.(*os.File); ok && isTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
		p.terminal = true
	}

	return p
}

// secret reads a value without echo on a terminal, or one line otherwise.
func (p *prompter) secret(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	if !p.terminal {
		return p.line()
	}

	b, err := readPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return string(b), nil
}

func (p *prompter) line() (string, error) {
	s, err := p.in.ReadString('\n')
	switch {
	case errors.Is(err, io.EOF) && s == "":
		return "", errNoInput
	case err != nil && !errors.Is(err, io.EOF):
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(s, "\r\n"), nil
}

// rest reads everything left on the input. A single trailing newline is
// dropped.
func (p *prompter) rest(hint string) (string, error) {
	if p.terminal {
		fmt.Fprintln(p.out, hint)
	}

	b, err := io.ReadAll(p.in)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	s := strings.TrimSuffix(string(b), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}
