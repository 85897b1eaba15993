package main

import (
	"errors"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"golang.org/x/term"

	"github.com/cybergodev/tagcloud"
)

// prompter asks the operator for a missing value.
type prompter interface {
	Prompt(label string, validate func(string) error) (string, error)
}

type terminalPrompter struct{}

func (terminalPrompter) Prompt(label string, validate func(string) error) (string, error) {
	p := promptui.Prompt{
		Label:    label,
		Validate: promptui.ValidateFunc(validate),
	}
	answer, err := p.Run()
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return "", errPromptAborted
	}
	return strings.TrimSpace(answer), err
}

var errPromptAborted = errors.New("prompt aborted")

// isTerminal reports whether both stdin and stdout are attached to a TTY.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func validateCount(s string) error {
	_, err := tagcloud.ParseCount(s)
	return err
}

func validateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("value required")
	}
	return nil
}
