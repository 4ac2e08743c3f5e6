// Package terminal implements line-based prompts on a text terminal.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/0x0zAgency/create-infinitymint/pkg/domain/model"
	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
)

const clearScreen = "\033[H\033[2J"

var (
	titleColor   = color.New(color.FgHiCyan)
	indexColor   = color.New(color.FgHiBlack, color.Underline)
	infoColor    = color.New(color.FgHiBlack)
	accentColor  = color.New(color.FgMagenta)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgHiRed)
)

// Terminal reads answers from one input stream and writes prompts to one output.
// It is not safe for concurrent use.
type Terminal struct {
	in     *bufio.Reader
	out    io.Writer
	pause  time.Duration
	clear  bool
	marker string
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithPause sets how long a notice stays visible before the screen is cleared.
func WithPause(d time.Duration) Option {
	return func(t *Terminal) {
		t.pause = d
	}
}

// WithClear toggles clearing the screen after a notice.
func WithClear(clear bool) Option {
	return func(t *Terminal) {
		t.clear = clear
	}
}

// New creates a Terminal. Defaults match an interactive session.
func New(in io.Reader, out io.Writer, opts ...Option) *Terminal {
	t := &Terminal{
		in:     bufio.NewReader(in),
		out:    out,
		pause:  500 * time.Millisecond,
		clear:  true,
		marker: "👌 ",
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Choice implements interfaces.Prompter.
func (t *Terminal) Choice(query string, choices []string, help string) (int, error) {
	for {
		fmt.Fprintln(t.out)
		titleColor.Fprintln(t.out, query)
		for i, choice := range choices {
			fmt.Fprintf(t.out, "%s %s\n", indexColor.Sprintf("%d)", i+1), choice)
		}
		if help != "" {
			infoColor.Fprintln(t.out, help)
		}

		answer, err := t.readLine(t.marker)
		if err != nil {
			return -1, err
		}

		index, ok := ResolveChoice(answer, choices)
		if !ok {
			t.Notice("Invalid Choice")
			continue
		}
		return index, nil
	}
}

// Question implements interfaces.Prompter.
func (t *Terminal) Question(query string) (string, error) {
	fmt.Fprintln(t.out)
	titleColor.Fprintln(t.out, query)

	answer, err := t.readLine(t.marker)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// Confirm implements interfaces.Prompter.
func (t *Terminal) Confirm(query string) (bool, error) {
	for {
		titleColor.Fprintln(t.out, query)

		answer, err := t.readLine("(y/n): ")
		if err != nil {
			return false, err
		}

		answer = strings.ToLower(strings.TrimSpace(answer))
		switch {
		case answer == "y" || answer == "yes" || strings.HasPrefix(answer, "y"):
			return true, nil
		case answer == "n" || answer == "no" || strings.HasPrefix(answer, "n"):
			return false, nil
		}
		errorColor.Fprintln(t.out, "Please enter either y/n")
	}
}

// Notice implements interfaces.Prompter.
func (t *Terminal) Notice(msg string) {
	if msg != "" {
		errorColor.Fprintln(t.out, msg)
	}
	if t.pause > 0 {
		time.Sleep(t.pause)
	}
	if t.clear {
		fmt.Fprint(t.out, clearScreen)
	}
}

// Print implements interfaces.Prompter.
func (t *Terminal) Print(tone model.Tone, msg string) {
	switch tone {
	case model.ToneTitle:
		titleColor.Fprintln(t.out, msg)
	case model.ToneInfo:
		infoColor.Fprintln(t.out, msg)
	case model.ToneHighlight:
		accentColor.Fprintln(t.out, msg)
	case model.ToneSuccess:
		successColor.Fprintln(t.out, msg)
	case model.ToneWarn:
		warnColor.Fprintln(t.out, msg)
	case model.ToneError:
		errorColor.Fprintln(t.out, msg)
	default:
		fmt.Fprintln(t.out, msg)
	}
}

// Clear wipes the screen when clearing is enabled.
func (t *Terminal) Clear() {
	if t.clear {
		fmt.Fprint(t.out, clearScreen)
	}
}

func (t *Terminal) readLine(marker string) (string, error) {
	fmt.Fprint(t.out, marker)

	line, err := t.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", goerr.Wrap(err, "failed to read answer")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
