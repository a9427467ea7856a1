package commands

import (
	"errors"

	"github.com/charmbracelet/lipgloss"
	"github.com/minepkg/mcassets/pkg/assets"
)

// CliError is an error that might get displayed to the user
type CliError struct {
	Text        string
	Code        string
	Suggestions []string
	Help        string
	// ExitCode defaults to 1
	ExitCode int
	Err      error
}

func (e *CliError) Error() string {
	return e.Text
}

func (e *CliError) Unwrap() error {
	return e.Err
}

// RichError renders the error box with help and suggestions
func (e *CliError) RichError() string {
	rendered := errorBox(e.Code, e.Text, e.Help)
	if len(e.Suggestions) != 0 {
		rendered = lipgloss.JoinVertical(lipgloss.Left, rendered, suggestionBox(e.Suggestions))
	}
	return rendered
}

// FromAssetError converts errors of the assets package into a CliError with
// suggestions. Returns nil for other errors.
func FromAssetError(err error) *CliError {
	var assetErr *assets.Error
	if !errors.As(err, &assetErr) {
		return nil
	}
	cliErr := &CliError{Text: err.Error(), Err: err}

	switch {
	case errors.Is(err, assets.ErrNotFound):
		cliErr.Code = "not_found"
		cliErr.Suggestions = []string{
			"Check that --root points to the directory that contains assets/",
			"Add the namespace for modded resources: create:cogwheel",
			"Use `mcassets list blockstates` to see what exists",
		}
	case errors.Is(err, assets.ErrParse):
		cliErr.Code = "parse"
		cliErr.Help = "The file is not valid json or does not match the Minecraft asset format."
	case errors.Is(err, assets.ErrWrongVariant):
		cliErr.Code = "wrong_variant"
		cliErr.Suggestions = []string{"Use --state to pick the models of a multipart block"}
	case errors.Is(err, assets.ErrCyclicInheritance), errors.Is(err, assets.ErrInheritanceTooDeep):
		cliErr.Code = "inheritance"
		cliErr.Help = "The parent references of this model never reach a model without parent."
	case errors.Is(err, assets.ErrUnresolvedTextureVariable):
		cliErr.Code = "texture_variable"
		cliErr.Help = "Template models often leave texture variables to their children. Try a model that uses the template."
	case errors.Is(err, assets.ErrIO):
		cliErr.Code = "io"
	}
	return cliErr
}
