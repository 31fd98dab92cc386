// Package logging provides a small leveled key-value logger shared by the
// server, the ICS fetcher, and the scheduler. Lines are written to stderr as
// "TIMESTAMP [LEVEL] msg key=value ...".
package logging

import (
	"fmt"
	stdlog "log"
	"os"
	"sync"
	"time"
)

type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

var levelRank = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

var (
	mu       sync.Mutex
	logger   *stdlog.Logger
	minLevel = LevelInfo
)

func init() {
	logger = stdlog.New(os.Stderr, "", 0)
}

// SetLevel sets the minimum level emitted. Unknown levels are ignored.
func SetLevel(l Level) {
	if _, ok := levelRank[l]; !ok {
		return
	}
	mu.Lock()
	minLevel = l
	mu.Unlock()
}

// SetOutput redirects log output, used by tests to capture lines.
func SetOutput(l *stdlog.Logger) {
	mu.Lock()
	logger = l
	mu.Unlock()
}

func Debug(msg string, kv ...any) { emit(LevelDebug, msg, kv...) }
func Info(msg string, kv ...any)  { emit(LevelInfo, msg, kv...) }
func Warn(msg string, kv ...any)  { emit(LevelWarn, msg, kv...) }

// Error logs a message with the error prepended as err=... to the pairs.
func Error(msg string, err error, kv ...any) {
	emit(LevelError, msg, append([]any{"err", err}, kv...)...)
}

func emit(level Level, msg string, kv ...any) {
	mu.Lock()
	defer mu.Unlock()
	if levelRank[level] < levelRank[minLevel] {
		return
	}
	line := time.Now().UTC().Format(time.RFC3339) + " [" + string(level) + "] " + msg + formatPairs(kv)
	logger.Println(line)
}

// formatPairs renders kv as " key=value" pairs. A trailing unpaired value is
// dropped rather than guessed at.
func formatPairs(kv []any) string {
	out := ""
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		out += " " + key + "=" + fmt.Sprint(kv[i+1])
	}
	return out
}
