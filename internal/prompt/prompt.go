// Package prompt implements the line-based console dialogue librarian uses to
// ask the operator for paths and confirmations.
//
// Every question is one line out and one line in. Path prompts only ever
// return an existing, canonical path that the operator confirmed; the only
// other outcome is ErrCancelled.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/danieljhkim/librarian/internal/fsops"
)

// ErrCancelled indicates the operator quit, or could not give a usable answer.
var ErrCancelled = errors.New("cancelled")

// DefaultConfirmAttempts is how many unrecognized answers a path confirmation tolerates.
const DefaultConfirmAttempts = 3

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	fs          fsops.FS
	maxAttempts int
}

// New creates a Prompter. fs is used to check and canonicalize entered paths.
func New(in io.Reader, out io.Writer, fs fsops.FS) *Prompter {
	return &Prompter{
		in:          bufio.NewReader(in),
		out:         out,
		fs:          fs,
		maxAttempts: DefaultConfirmAttempts,
	}
}

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

type confirmation int

const (
	accepted confirmation = iota
	restart
)

// GetPath asks for the path to role until the operator confirms an existing one.
// Empty input stands for the current working directory.
func (p *Prompter) GetPath(role string) (string, error) {
	for {
		fmt.Fprintf(p.out, "Enter path to %s (enter to assign current directory): ", role)
		entered, err := p.readLine()
		if err != nil {
			return "", err
		}
		if entered == "" {
			entered = "."
		}

		exists, err := p.fs.Exists(entered)
		if err != nil {
			return "", fmt.Errorf("failed to check path %s: %w", entered, err)
		}
		if !exists {
			fmt.Fprintf(p.out, "Invalid path to %s: %s. Please try again.\n", role, entered)
			continue
		}

		canonical, err := p.fs.Canonicalize(entered)
		if err != nil {
			return "", err
		}

		answer, err := p.confirmPath(role, canonical)
		if err != nil {
			return "", err
		}
		if answer == accepted {
			return canonical, nil
		}
	}
}

func (p *Prompter) confirmPath(role, path string) (confirmation, error) {
	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		fmt.Fprintf(p.out, "Confirm path to %s: %s (y/n/q): ", role, path)
		answer, err := p.readLine()
		if err != nil {
			return restart, err
		}

		switch answer {
		case "y":
			return accepted, nil
		case "n":
			return restart, nil
		case "q":
			return restart, fmt.Errorf("%w: quitting process", ErrCancelled)
		}
		fmt.Fprintf(p.out, "Invalid input option: %s\n", answer)
	}
	return restart, fmt.Errorf("%w: quitting process due to multiple invalid arguments", ErrCancelled)
}

// Confirm asks a yes/no question. Only "y" counts as yes; end of input is no.
func (p *Prompter) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s (y/n): ", question)
	answer, err := p.readLine()
	if err != nil {
		if errors.Is(err, ErrCancelled) {
			return false, nil
		}
		return false, err
	}
	return answer == "y", nil
}

// readLine returns one line without its line ending. A closed input can never
// answer, so EOF before any text is reported as ErrCancelled.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				fmt.Fprintln(p.out)
				return "", fmt.Errorf("%w: no more input", ErrCancelled)
			}
		} else {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}
