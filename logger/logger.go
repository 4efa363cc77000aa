package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultTimestampFormat renders day-month-year hour:minute:second.millisecond,
// e.g. 05-03-2024 14:22:01.123.
const DefaultTimestampFormat = "02-01-2006 15:04:05.000"

// ErrNoFileName is returned by New when Config.FileName is empty.
var ErrNoFileName = errors.New("logger: no log file name")

// Config defines options for New and Init.
type Config struct {
	// FileName is the log file name. The tokens %dd%, %MM%, %yyyy%, %hh%, %m%
	// and %ss% are replaced once, at construction, with the local time.
	// Required.
	FileName string
	// FilePath is the log directory. It is made absolute and created if missing.
	// Default: "" (current directory)
	FilePath string
	// Profile selects the admitted canonical types. Case-insensitive, short
	// names allowed. Empty falls back to LOGGER_PROFILE, then DEFAULT.
	// Default: "" (DEFAULT)
	Profile string
	// DisableConsole turns off the console echo.
	// Default: false (entries are echoed)
	DisableConsole bool
	// TimestampFormat is a time layout for the entry timestamp.
	// Default: DefaultTimestampFormat
	TimestampFormat string
	// NoColor disables console colors even on a terminal.
	// Default: false
	NoColor bool
	// IncludeCaller adds the [package.Function:line] tag in front of messages.
	// Default: false
	IncludeCaller bool
	// Console receives the echo of every written entry.
	// Default: nil (standard output)
	Console io.Writer
}

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
)

// Logger writes typed, timestamped entries to a log file and echoes them to
// the console. It is safe for concurrent use.
//
// The active type set, the file and the console are guarded by separate
// locks. The type set stays read-locked from the admission check until the
// entry is written, so a profile change never races an admitted entry.
type Logger struct {
	typesMu sync.RWMutex
	profile Profile
	allowed TypeSet

	file    *fileSink
	console *consoleSink

	echo     atomic.Bool
	tsFormat atomic.Pointer[string]

	includeCaller bool
	now           func() time.Time
}

// New creates a Logger, resolving the file name tokens and creating the log
// directory. Directory errors are returned; nothing after construction is.
func New(cfg Config) (*Logger, error) {
	if cfg.FileName == "" {
		return nil, ErrNoFileName
	}

	dir, err := prepareDir(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	console := cfg.Console
	if console == nil {
		console = outStdout
	}

	l := &Logger{
		file:          &fileSink{dir: dir, name: ResolveFileName(cfg.FileName, time.Now())},
		console:       newConsoleSink(console, cfg.NoColor),
		includeCaller: cfg.IncludeCaller,
		now:           time.Now,
	}
	l.echo.Store(!cfg.DisableConsole)
	l.SetTimestampFormat(cfg.TimestampFormat)
	l.SetProfile(resolveProfile(cfg.Profile))

	return l, nil
}

func resolveProfile(p string) string {
	if p != "" {
		return p
	}
	if env := os.Getenv("LOGGER_PROFILE"); env != "" {
		return env
	}
	return string(ProfileDefault)
}

// Profile returns the active profile.
func (l *Logger) Profile() Profile {
	l.typesMu.RLock()
	defer l.typesMu.RUnlock()
	return l.profile
}

// SetProfile normalizes name and replaces the admitted type set. Unknown
// names fall back to DEFAULT.
func (l *Logger) SetProfile(name string) {
	p := NormalizeProfile(name)
	set, ok := profiles[p]
	if !ok {
		fmt.Fprintf(outStderr, "logger: unknown profile %q, falling back to %s\n", name, ProfileDefault)
		p, set = ProfileDefault, profiles[ProfileDefault]
	}

	l.typesMu.Lock()
	l.profile = p
	l.allowed = set
	l.typesMu.Unlock()
}

// AllowedTypes returns a copy of the canonical types the active profile admits.
func (l *Logger) AllowedTypes() TypeSet {
	l.typesMu.RLock()
	defer l.typesMu.RUnlock()
	return append(TypeSet{}, l.allowed...)
}

// FileName returns the resolved log file name.
func (l *Logger) FileName() string {
	_, name := l.file.location()
	return name
}

// SetFileName changes the log file name. Tokens are not resolved again.
func (l *Logger) SetFileName(name string) {
	l.file.setName(name)
}

// FilePath returns the absolute log directory.
func (l *Logger) FilePath() string {
	dir, _ := l.file.location()
	return dir
}

// SetFilePath makes dir absolute, creates it and uses it for later entries.
// On error the previous directory stays in use.
func (l *Logger) SetFilePath(dir string) error {
	abs, err := prepareDir(dir)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	l.file.setDir(abs)
	return nil
}

// FileFullPath returns the path entries are appended to.
func (l *Logger) FileFullPath() string {
	return filepath.Join(l.file.location())
}

// PrintToConsole reports whether entries are echoed to the console.
func (l *Logger) PrintToConsole() bool {
	return l.echo.Load()
}

// SetPrintToConsole turns the console echo on or off.
func (l *Logger) SetPrintToConsole(on bool) {
	l.echo.Store(on)
}

// TimestampFormat returns the time layout used for entry timestamps.
func (l *Logger) TimestampFormat() string {
	return *l.tsFormat.Load()
}

// SetTimestampFormat changes the time layout. Empty restores the default.
func (l *Logger) SetTimestampFormat(layout string) {
	if layout == "" {
		layout = DefaultTimestampFormat
	}
	l.tsFormat.Store(&layout)
}

// entry normalizes t and dispatches the entry under the type-set read lock.
func (l *Logger) entry(caller string, t EntryType, msg string) {
	typ := NormalizeEntryType(string(t))
	if caller != "" {
		msg = "[" + caller + "] " + msg
	}

	l.typesMu.RLock()
	defer l.typesMu.RUnlock()

	l.dispatch(l.allowed, typ, msg, false)
}

// dispatch writes an admitted entry to the file and the console. A failed
// append is reported as an ERROR entry through dispatch itself, which is
// subject to the same admission; a failed report is dropped. The caller holds
// the type-set read lock, so the report reuses allowed instead of locking again.
func (l *Logger) dispatch(allowed TypeSet, typ EntryType, msg string, reporting bool) {
	if !admits(allowed, typ) {
		return
	}

	ts := l.now().Format(l.TimestampFormat())
	name, err := l.file.append(formatLine(ts, typ, msg))

	if l.PrintToConsole() {
		l.console.write(ts, typ, msg)
	}

	if err != nil && !reporting {
		l.dispatch(allowed, TypeError, fmt.Sprintf("failed to write log file %s: %v", name, err), true)
	}
}

func formatLine(ts string, t EntryType, msg string) string {
	return "[" + ts + "] [" + string(t) + "] " + msg
}

// caller returns the [package.Function:line] tag of the function skip frames
// above the caller of caller, or "" when caller tagging is off.
func (l *Logger) caller(skip int) string {
	if !l.includeCaller {
		return ""
	}
	return getCallerInfo(skip + 2)
}

// getCallerInfo returns formatted caller information at the specified stack depth.
// Returns "package.Function:line" format for better log clarity.
func getCallerInfo(depth int) string {
	pc, _, line, ok := runtime.Caller(depth)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	full := fn.Name()
	// Strip package path, keep package.Function
	lastSlash := strings.LastIndex(full, "/")
	if lastSlash >= 0 && lastSlash+1 < len(full) {
		full = full[lastSlash+1:]
	}
	return fmt.Sprintf("%s:%d", full, line)
}

// encodeFields formats key-value pairs as "key=value" strings.
func encodeFields(keyvals ...any) string {
	if len(keyvals) == 0 {
		return ""
	}
	parts := make([]string, 0, len(keyvals)/2)
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%v", key, keyvals[i+1]))
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}

// statusCodeToType maps HTTP status codes to entry types.
// 1xx, 2xx, 3xx -> INFO, 4xx -> WARNING, 5xx -> ERROR
func statusCodeToType(code int) EntryType {
	switch {
	case code >= 500:
		return TypeError
	case code >= 400:
		return TypeWarning
	default:
		return TypeInfo
	}
}
