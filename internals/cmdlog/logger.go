package cmdlog

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/jwalton/gchalk"
)

// Logger prints human readable progress to the console. Diagnostics go to
// logrus instead (see globals.Diag).
type Logger struct {
	out       io.Writer
	emojis    bool
	indention int
}

// helper for indention
func (l *Logger) println(a string) {
	fmt.Fprintln(l.out, strings.Repeat(" ", l.indention)+a)
}

// printEmoji prints string e only when emojis are enabled
func (l *Logger) printEmoji(e string) {
	if l.emojis {
		fmt.Fprint(l.out, e+" ")
	}
}

func (l *Logger) sprintEmoji(e string) string {
	if l.emojis {
		return e
	}
	return ""
}

// Headline prints a cyan line
func (l *Logger) Headline(s string) {
	fmt.Fprintln(l.out, gchalk.WithCyan().Bold(s))
}

// Info prints a "normal" line
func (l *Logger) Info(s string) {
	l.println(s)
}

// Log prints a gray line
func (l *Logger) Log(s string) {
	l.println(gchalk.Gray(s))
}

// Success prints a green line
func (l *Logger) Success(s string) {
	l.printEmoji("✅")
	fmt.Fprintln(l.out, gchalk.Green(s))
}

// Warn will print a warning
func (l *Logger) Warn(s string) {
	l.printEmoji("⚠️ ")
	fmt.Fprintln(l.out, gchalk.WithYellow().Bold(s))
}

// DisableColor turns off colors and emojis
func (l *Logger) DisableColor() {
	l.emojis = false
	gchalk.SetLevel(gchalk.LevelNone)
}

// SetOutput changes where the logger writes to (stdout by default)
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
}

// Indent returns a copy of the logger that indents every Info line
func (l *Logger) Indent(n int) *Logger {
	logger := *l
	logger.indention += n
	return &logger
}

// NewTask returns a new Task logger
func (l *Logger) NewTask(end int) *Task {
	logger := *l
	task := Task{&logger, 0, end}
	return &task
}

// New returns a new Logger
func New() *Logger {
	emojis := runtime.GOOS != "windows"
	logger := &Logger{out: os.Stdout, emojis: emojis}

	// disable color for CI
	if os.Getenv("CI") != "" {
		logger.DisableColor()
	}
	return logger
}

// Task logs but with progress
type Task struct {
	*Logger
	current int
	end     int
}

// Step prints progress
func (l *Task) Step(e string, s string) {
	l.current++
	text := gchalk.Cyan(fmt.Sprintf(
		"[%d / %d] %s %s",
		l.current,
		l.end,
		l.sprintEmoji(e),
		s,
	))

	// we don't use l.println here, because step headlines should have no indentation
	fmt.Fprintln(l.out, text)
}
