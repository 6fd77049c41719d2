package argparse

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Convert parses a raw command-line token into a Value of the given kind.
// KindNone keeps the token as a string.
func Convert(kind Kind, token string) (Value, error) {
	switch kind {
	case KindNone, KindString:
		return String(token), nil
	case KindBool:
		b, err := parseBool(token)
		if err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	case KindInt:
		i, err := parseInt(token)
		if err != nil {
			return Value{}, err
		}
		return Int(i), nil
	case KindFloat:
		f, err := parseFloat(token)
		if err != nil {
			return Value{}, err
		}
		return Float(f), nil
	case KindDuration:
		d, err := parseDuration(token)
		if err != nil {
			return Value{}, err
		}
		return Duration(d), nil
	}
	return Value{}, valueError("unsupported kind " + kind.String())
}

func valueError(msg string) *ParseError {
	return &ParseError{Type: ErrorTypeInvalidValue, Message: msg}
}

// parseBool accepts the usual spellings, case-insensitively.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "1", "t", "true", "y", "yes", "on":
		return true, nil
	case "0", "f", "false", "n", "no", "off":
		return false, nil
	}
	return false, valueError("invalid boolean value")
}

// parseInt parses decimal and hex integers: 123, -456, +7, 0xFF.
func parseInt(s string) (int, error) {
	if s == "" {
		return 0, valueError("empty integer")
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if s == "" {
		return 0, valueError("invalid integer")
	}

	// the magnitude of a negative number may be one past MaxInt
	limit := uint64(math.MaxInt)
	if negative {
		limit++
	}
	base := 10
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, s = 16, s[2:]
	}
	u, err := parseMagnitude(s, base, limit)
	if err != nil {
		return 0, err
	}
	if negative {
		return int(-u), nil
	}
	return int(u), nil
}

func parseDigits(s string, base int) (int, error) {
	u, err := parseMagnitude(s, base, math.MaxInt)
	return int(u), err
}

func parseMagnitude(s string, base int, limit uint64) (uint64, error) {
	if s == "" {
		return 0, valueError("empty integer")
	}
	var result uint64
	for i := 0; i < len(s); i++ {
		digit := digitValue(s[i])
		if digit < 0 || digit >= base {
			return 0, valueError("invalid integer character")
		}
		if result > (limit-uint64(digit))/uint64(base) {
			return 0, valueError("integer overflow")
		}
		result = result*uint64(base) + uint64(digit)
	}
	return result, nil
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, valueError("invalid float value")
	}
	return f, nil
}

// parseDuration supports "00:30", "01:30:15", "1d", "2w", "1M", "1Y",
// "1h30m", "3 sec" and plain Go durations such as "150ms".
func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, valueError("empty duration")
	}
	if n := strings.Count(s, ":"); n > 0 {
		return parseColonDuration(s, n)
	}
	if d, ok, err := parseExtendedDuration(s); ok {
		return d, err
	}
	return parseUnitDuration(s)
}

// parseColonDuration handles "MM:SS" and "HH:MM:SS".
func parseColonDuration(s string, colons int) (time.Duration, error) {
	if colons > 2 {
		return 0, valueError("too many colons in duration")
	}
	parts := strings.Split(s, ":")
	units := []time.Duration{time.Minute, time.Second}
	if colons == 2 {
		units = []time.Duration{time.Hour, time.Minute, time.Second}
	}

	var total time.Duration
	for i, part := range parts {
		n, err := parseDigits(part, 10)
		if err != nil {
			return 0, valueError("invalid duration component")
		}
		if total, err = addDuration(total, n, units[i]); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// parseExtendedDuration handles the day/week/month/year suffixes that
// time.ParseDuration does not know. Lowercase m stays minutes. ok is false
// when s is not of that form.
func parseExtendedDuration(s string) (d time.Duration, ok bool, err error) {
	if len(s) < 2 {
		return 0, false, nil
	}

	var unit time.Duration
	switch last := s[len(s)-1]; last {
	case 'd', 'D':
		unit = 24 * time.Hour
	case 'w', 'W':
		unit = 7 * 24 * time.Hour
	case 'M':
		unit = 30 * 24 * time.Hour
	case 'y', 'Y':
		unit = 365 * 24 * time.Hour
	default:
		return 0, false, nil
	}

	n, err := parseDigits(s[:len(s)-1], 10)
	if err != nil {
		return 0, false, nil
	}
	d, err = addDuration(0, n, unit)
	return d, true, err
}

// parseUnitDuration parses sequences of <number><unit>, allowing spaces and
// long unit names ("3 sec", "1 hour 5 minutes").
func parseUnitDuration(s string) (time.Duration, error) {
	var total time.Duration
	i := 0
	for i < len(s) {
		for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
			i++
		}
		if i == len(s) {
			break
		}

		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if start == i {
			return 0, valueError("number expected before duration unit")
		}
		n, err := parseDigits(s[start:i], 10)
		if err != nil {
			return 0, err
		}

		for i < len(s) && s[i] == ' ' {
			i++
		}
		unit, consumed := timeUnit(s[i:])
		if consumed == 0 {
			return 0, valueError("invalid duration unit")
		}
		if total, err = addDuration(total, n, unit); err != nil {
			return 0, err
		}
		i += consumed
	}
	return total, nil
}

var unitNames = []struct {
	name string
	unit time.Duration
}{
	// longest names first so prefixes do not shadow them
	{"nanoseconds", time.Nanosecond},
	{"microseconds", time.Microsecond},
	{"milliseconds", time.Millisecond},
	{"minutes", time.Minute},
	{"minute", time.Minute},
	{"min", time.Minute},
	{"seconds", time.Second},
	{"second", time.Second},
	{"sec", time.Second},
	{"hours", time.Hour},
	{"hour", time.Hour},
	{"ns", time.Nanosecond},
	{"us", time.Microsecond},
	{"µs", time.Microsecond},
	{"μs", time.Microsecond},
	{"ms", time.Millisecond},
	{"h", time.Hour},
	{"m", time.Minute},
	{"s", time.Second},
}

// addDuration returns total + n*unit, failing instead of wrapping around.
func addDuration(total time.Duration, n int, unit time.Duration) (time.Duration, error) {
	if n > 0 && int64(n) > math.MaxInt64/int64(unit) {
		return 0, valueError("duration overflow")
	}
	d := time.Duration(n) * unit
	if total > math.MaxInt64-d {
		return 0, valueError("duration overflow")
	}
	return total + d, nil
}

func timeUnit(s string) (time.Duration, int) {
	lower := strings.ToLower(s)
	for _, u := range unitNames {
		if strings.HasPrefix(lower, u.name) {
			return u.unit, len(u.name)
		}
	}
	return 0, 0
}
