package utils

import (
	"errors"

	"github.com/manifoldco/promptui"
)

// ErrAborted is returned by prompts when the user pressed ctrl+c
var ErrAborted = errors.New("aborted")

// StringPrompt runs the prompt and returns the trimmed input
func StringPrompt(prompt *promptui.Prompt) (string, error) {
	res, err := prompt.Run()
	switch {
	case errors.Is(err, promptui.ErrInterrupt), errors.Is(err, promptui.ErrEOF):
		return "", ErrAborted
	case err != nil:
		return "", err
	}
	return res, nil
}

// BoolPrompt runs a confirm prompt. Answering "no" returns false
func BoolPrompt(prompt *promptui.Prompt) (bool, error) {
	prompt.IsConfirm = true
	_, err := prompt.Run()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort):
		return false, nil
	case errors.Is(err, promptui.ErrInterrupt), errors.Is(err, promptui.ErrEOF):
		return false, ErrAborted
	}
	return false, err
}
