package argio

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelSuccess
	LevelWarning
	LevelError
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelSuccess:
		return "SUCCESS"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LogFormat selects the per-line prefix set.
type LogFormat int

const (
	LogFormatTagged  LogFormat = iota // [INFO] [SUCCESS] [WARN] [ERROR] [DEBUG]
	LogFormatSymbols                  // ◆ ✓ ▲ ✗ ●
	LogFormatPlain                    // no prefix
)

var logPrefixes = map[LogFormat]map[LogLevel]string{
	LogFormatTagged: {
		LevelDebug:   "[DEBUG]",
		LevelInfo:    "[INFO]",
		LevelSuccess: "[SUCCESS]",
		LevelWarning: "[WARN]",
		LevelError:   "[ERROR]",
	},
	LogFormatSymbols: {
		LevelDebug:   "●",
		LevelInfo:    "◆",
		LevelSuccess: "✓",
		LevelWarning: "▲",
		LevelError:   "✗",
	},
	LogFormatPlain: {},
}

// Logger writes leveled, optionally colored and timestamped lines through an IOManager.
type Logger struct {
	io           *IOManager
	minLevel     LogLevel
	prefixes     map[LogLevel]string
	withTime     bool
	timeFormat   string
	errorsStderr bool
	theme        Theme
	now          func() time.Time
}

// NewLogger creates a logger bound to the given IOManager. Debug output is
// dropped until WithLevel(LevelDebug) is called.
func NewLogger(m *IOManager) *Logger {
	l := &Logger{
		io:           m,
		minLevel:     LevelInfo,
		timeFormat:   "15:04:05",
		errorsStderr: true,
		theme:        DefaultTheme(),
		now:          time.Now,
	}
	return l.WithFormat(LogFormatTagged)
}

// WithLevel sets the lowest level that is written.
func (l *Logger) WithLevel(level LogLevel) *Logger {
	l.minLevel = level
	return l
}

// Enabled reports whether messages at level are written.
func (l *Logger) Enabled(level LogLevel) bool {
	return level >= l.minLevel
}

// WithFormat resets the prefixes to one of the presets.
func (l *Logger) WithFormat(format LogFormat) *Logger {
	l.prefixes = make(map[LogLevel]string)
	for level, prefix := range logPrefixes[format] {
		l.prefixes[level] = prefix
	}
	return l
}

// SetPrefix overrides the prefix of one level.
func (l *Logger) SetPrefix(level LogLevel, prefix string) *Logger {
	l.prefixes[level] = prefix
	return l
}

// WithTimestamp enables or disables timestamp in log output
func (l *Logger) WithTimestamp(enabled bool) *Logger {
	l.withTime = enabled
	return l
}

// WithTimeFormat sets the time format (Go time format string)
func (l *Logger) WithTimeFormat(format string) *Logger {
	l.timeFormat = format
	return l
}

// ErrorsToStderr controls whether errors and warnings go to stderr
func (l *Logger) ErrorsToStderr(enabled bool) *Logger {
	l.errorsStderr = enabled
	return l
}

// WithTheme sets a custom theme for semantic colors
func (l *Logger) WithTheme(theme Theme) *Logger {
	l.theme = theme
	return l
}

// Log outputs a log message at the specified level
func (l *Logger) Log(level LogLevel, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	line := l.format(level, fmt.Sprintf(format, args...))
	fmt.Fprintln(l.writer(level), line)
}

func (l *Logger) format(level LogLevel, msg string) string {
	// blank lines pass through untouched
	if strings.TrimSpace(msg) == "" {
		return msg
	}

	parts := make([]string, 0, 3)
	if prefix := l.prefixes[level]; prefix != "" {
		parts = append(parts, prefix)
	}
	if l.withTime {
		parts = append(parts, "["+l.now().Format(l.timeFormat)+"]")
	}
	parts = append(parts, msg)
	return l.colorize(level, strings.Join(parts, " "))
}

func (l *Logger) colorize(level LogLevel, text string) string {
	var style *Style
	switch level {
	case LevelDebug:
		style = l.theme.Debug
	case LevelInfo:
		style = l.theme.Info
	case LevelSuccess:
		style = l.theme.Success
	case LevelWarning:
		style = l.theme.Warning
	case LevelError:
		style = l.theme.Error
	}
	if style == nil {
		return text
	}
	return style.Sprint(l.io, text)
}

func (l *Logger) writer(level LogLevel) io.Writer {
	if l.errorsStderr && (level == LevelError || level == LevelWarning) {
		return l.io.Err()
	}
	return l.io.Out()
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...any) { l.Log(LevelDebug, format, args...) }

// Info logs an informational message
func (l *Logger) Info(format string, args ...any) { l.Log(LevelInfo, format, args...) }

// Success logs a success message
func (l *Logger) Success(format string, args ...any) { l.Log(LevelSuccess, format, args...) }

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...any) { l.Log(LevelWarning, format, args...) }

// Error logs an error message
func (l *Logger) Error(format string, args ...any) { l.Log(LevelError, format, args...) }
