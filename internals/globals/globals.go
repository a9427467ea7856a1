package globals

import (
	"os"

	"github.com/minepkg/mcassets/internals/cmdlog"
	log "github.com/sirupsen/logrus"
)

var (
	// Logger prints user facing output
	Logger = cmdlog.New()
	// Diag prints diagnostics to stderr, only shown with --verbose
	Diag = newDiag()
)

func newDiag() *log.Logger {
	l := log.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(log.WarnLevel)
	l.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	return l
}
