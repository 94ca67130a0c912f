package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
)

// Prompter asks a single question and returns the raw answer.
type Prompter interface {
	Ask(question string) (string, error)
}

// LinePrompter reads one line from In. EOF counts as an empty answer.
type LinePrompter struct {
	In  io.Reader
	Out io.Writer
}

func (p LinePrompter) Ask(question string) (string, error) {
	fmt.Fprint(p.Out, question)
	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// FormPrompter asks through a huh input. It needs a terminal.
type FormPrompter struct{}

func (FormPrompter) Ask(question string) (string, error) {
	var answer string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(strings.TrimSpace(question)).
				Placeholder("yes / no").
				Value(&answer),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", nil
		}
		return "", err
	}
	return answer, nil
}

// IsYes reports whether answer is exactly "yes" or "y", ignoring case.
func IsYes(answer string) bool {
	switch strings.ToLower(answer) {
	case "yes", "y":
		return true
	default:
		return false
	}
}

func showCommitLog(w io.Writer, commitLog string) {
	fmt.Fprintln(w, dividerStyle.Render(divider))
	fmt.Fprintln(w, commitLog)
	fmt.Fprintln(w, dividerStyle.Render(divider))
}
