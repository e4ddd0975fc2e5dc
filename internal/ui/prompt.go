package ui

import (
	"errors"
	"strings"

	"github.com/manifoldco/promptui"
)

// Confirm asks a yes/no question. Declining (including ctrl-c) returns
// false without an error.
func Confirm(question string, defaultYes bool) (bool, error) {
	label := question + " [y/N]"
	if defaultYes {
		label = question + " [Y/n]"
	}

	p := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if defaultYes {
		p.Default = "y"
	}

	answer, err := p.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrInterrupt) {
			return false, nil
		}
		return false, err
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer == "" {
		return defaultYes, nil
	}
	return answer == "y" || answer == "yes", nil
}
