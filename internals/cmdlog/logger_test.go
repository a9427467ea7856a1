package cmdlog

import (
	"bytes"
	"testing"
)

func TestTask_Step(t *testing.T) {
	var buf bytes.Buffer
	logger := New()
	logger.DisableColor()
	logger.SetOutput(&buf)

	task := logger.NewTask(2)
	task.Step("📦", "first")
	task.Step("📦", "second")
	logger.Indent(2).Info("indented")

	want := "[1 / 2]  first\n[2 / 2]  second\n  indented\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}
