package interaction

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	oerrors "github.com/reactfaststart/cli/internal/errors"
)

// LinePrompter implements Prompter over plain line-oriented streams. It is
// used when no terminal is attached, e.g. when answers are piped in.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a LinePrompter.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// readLine returns the next line without its terminator. End of input
// before any text is a cancellation: there is nobody left to answer.
func (p *LinePrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("no more input: %w", oerrors.ErrCancelled)
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *LinePrompter) Input(title string, validate func(string) error) (string, error) {
	fmt.Fprintf(p.out, "%s ", title)
	return p.readLine()
}

func (p *LinePrompter) Confirm(title string, defaultYes bool) (bool, error) {
	suffix := "[y/N]"
	if defaultYes {
		suffix = "[Y/n]"
	}
	fmt.Fprintf(p.out, "%s %s: ", title, suffix)

	line, err := p.readLine()
	if err != nil {
		if errors.Is(err, oerrors.ErrCancelled) {
			return defaultYes, nil
		}
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return defaultYes, nil
	}
}

// Select prints numbered options and accepts either a number or an option
// name. Empty input picks def. Unrecognized input asks again.
func (p *LinePrompter) Select(title string, options []string, def string) (string, error) {
	for {
		fmt.Fprintln(p.out, title)
		for i, opt := range options {
			marker := " "
			if opt == def {
				marker = "*"
			}
			fmt.Fprintf(p.out, " %s %d) %s\n", marker, i+1, opt)
		}
		fmt.Fprint(p.out, "> ")

		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		answer := strings.TrimSpace(line)

		if answer == "" && def != "" {
			return def, nil
		}
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
			return options[n-1], nil
		}
		for _, opt := range options {
			if strings.EqualFold(opt, answer) {
				return opt, nil
			}
		}
		fmt.Fprintf(p.out, "Please choose 1-%d.\n", len(options))
	}
}
