package commands

import (
	"os"
	"runtime"
)

// EmojiEnabled is switched off by --no-color
var EmojiEnabled = true

var emojiSupport = terminalSupportsEmoji()

func terminalSupportsEmoji() bool {
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	// cmd.exe and powershell set SESSIONNAME, windows terminal does not
	return runtime.GOOS != "windows" || os.Getenv("SESSIONNAME") == ""
}

// Emoji returns e if the terminal (probably) renders emojis, "" otherwise
func Emoji(e string) string {
	if emojiSupport && EmojiEnabled {
		return e
	}
	return ""
}
