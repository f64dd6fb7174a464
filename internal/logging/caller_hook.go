package logging

import (
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
)

// callerDepth is how many frames Fire has to step over to get past the
// logrus internals and land on the line that issued the log call.
const callerDepth = 9

// CallerHook annotates every log entry with the source file, line and
// function it was issued from. It is only wired in when the
// --log-report-caller option is set.
type CallerHook struct{}

// Levels fires the hook for every level.
func (hook CallerHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire resolves the call site and attaches it to the entry. If the stack
// is shallower than expected the entry is left as it is.
func (hook CallerHook) Fire(entry *logrus.Entry) error {
	if pc, file, line, ok := runtime.Caller(callerDepth); ok {
		funcName := runtime.FuncForPC(pc).Name()

		entry.Data["file"] = path.Base(file)
		entry.Data["line"] = line
		entry.Data["func"] = path.Base(funcName)
	}

	return nil
}
