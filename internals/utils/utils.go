package utils

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
)

// lineMatch matches the git output
var lineMatch = regexp.MustCompile("(.*)\r?\n?$")

// GitExec runs git with args in dir (the current directory if empty).
// The returned output is trimmed, stderr is part of the error.
func GitExec(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	cmd.Env = os.Environ()
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	cleanOut := lineMatch.FindStringSubmatch(string(out))
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return cleanOut[1], fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
		}
		return cleanOut[1], fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, msg)
	}
	return cleanOut[1], nil
}
