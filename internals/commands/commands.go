package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Command is a cobra command whose errors are rendered as error boxes
type Command struct {
	*cobra.Command
	runner Runner
}

// Runner runs a command
type Runner interface {
	RunE(cmd *cobra.Command, args []string) error
}

// New wraps cmd. Errors returned by run are printed and exit the process with
// ExitCode (1 unless the error says otherwise).
func New(cmd *cobra.Command, run Runner) *Command {
	build := &Command{
		cmd,
		run,
	}
	build.Command.Run = func(cmd *cobra.Command, args []string) {
		err := run.RunE(cmd, args)
		if err != nil {
			fmt.Fprintln(os.Stderr, Render(err))
			os.Exit(ExitCode(err))
		}
	}

	return build
}

// Render returns the error as a rich error box
func Render(err error) string {
	var asCliErr *CliError
	if errors.As(err, &asCliErr) {
		return asCliErr.RichError() + "\n"
	}
	if cliErr := FromAssetError(err); cliErr != nil {
		return cliErr.RichError() + "\n"
	}
	return ErrorBox(err.Error(), "")
}

// ExitCode returns the exit code for err
func ExitCode(err error) int {
	var asCliErr *CliError
	if errors.As(err, &asCliErr) && asCliErr.ExitCode != 0 {
		return asCliErr.ExitCode
	}
	return 1
}
