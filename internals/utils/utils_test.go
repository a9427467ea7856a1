package utils

import (
	"strings"
	"testing"

	"github.com/jwalton/gchalk"
)

func TestPrettyVersion(t *testing.T) {
	level := gchalk.GetLevel()
	defer gchalk.SetLevel(level)
	gchalk.SetLevel(gchalk.LevelNone)

	tests := []string{"1.14.4", "1.13-pre7", "19w02a"}
	for _, version := range tests {
		if got := PrettyVersion(version); got != version {
			t.Errorf("PrettyVersion(%q) = %q without colors", version, got)
		}
	}

	gchalk.SetLevel(gchalk.LevelBasic)
	if got := PrettyVersion("1.13-pre7"); !strings.Contains(got, "\x1b[") {
		t.Errorf("expected colors, got %q", got)
	}
}
