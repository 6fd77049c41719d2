package argparse

import (
	"fmt"
	"strings"
)

// ErrorType represents the category of a parse-time failure.
// Each category has its own phrase and hook and maps to an exit code through ExitCodeManager.
type ErrorType string

const (
	ErrorTypeNoArgs            ErrorType = "no_args"
	ErrorTypeInvalidArg        ErrorType = "invalid_arg"
	ErrorTypeDuplicateArg      ErrorType = "duplicate_arg"
	ErrorTypeIndexOutOfBound   ErrorType = "index_out_of_bound"
	ErrorTypeRequirementNotMet ErrorType = "requirement_not_met"
	ErrorTypeInvalidValue      ErrorType = "invalid_value"
)

// ParseError is returned by Parser.Parse. Exactly one is reported per parse.
type ParseError struct {
	Type       ErrorType
	Message    string
	Flag       string   // offending flag, when one applies
	Token      string   // offending raw token (unknown flag or unconvertible value)
	Position   int      // index of Token in the argument slice, -1 when not applicable
	Missing    []string // RequirementNotMet: required flags never matched
	Unknown    []string // InvalidArg: every unrecognized token
	Suggestion string   // InvalidArg: closest declared flag to the first unknown token
	Cause      error    // InvalidValue: why the token could not be converted
}

func (e *ParseError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Type)
	}
	switch {
	case len(e.Missing) > 0:
		return msg + ": " + strings.Join(e.Missing, ", ")
	case len(e.Unknown) > 0:
		return msg + ": " + strings.Join(e.Unknown, ", ")
	case e.Flag != "" && e.Token != "":
		return fmt.Sprintf("%s: %s %q", msg, e.Flag, e.Token)
	case e.Flag != "":
		return msg + ": " + e.Flag
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Cause }

// Is matches any *ParseError of the same Type, so errors.Is(err, ErrDuplicateArg) works.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Type == e.Type
}

// Sentinels for errors.Is comparisons.
var (
	ErrNoArgs            = &ParseError{Type: ErrorTypeNoArgs, Message: "no arguments"}
	ErrInvalidArg        = &ParseError{Type: ErrorTypeInvalidArg, Message: "invalid argument"}
	ErrDuplicateArg      = &ParseError{Type: ErrorTypeDuplicateArg, Message: "duplicate argument"}
	ErrIndexOutOfBound   = &ParseError{Type: ErrorTypeIndexOutOfBound, Message: "missing value"}
	ErrRequirementNotMet = &ParseError{Type: ErrorTypeRequirementNotMet, Message: "missing required argument"}
	ErrInvalidValue      = &ParseError{Type: ErrorTypeInvalidValue, Message: "invalid value"}
)

// RetrievalErrorType represents the category of a failed value lookup.
type RetrievalErrorType string

const (
	RetrievalInvalidFlag RetrievalErrorType = "invalid_flag"
	RetrievalInvalidType RetrievalErrorType = "invalid_type"
	RetrievalNoValue     RetrievalErrorType = "no_value"
)

// RetrievalError is returned by Get, Values and friends.
type RetrievalError struct {
	Type     RetrievalErrorType
	Flag     string
	Expected Kind // kind the flag holds, for InvalidType
	Got      Kind // kind that was asked for, for InvalidType
}

func (e *RetrievalError) Error() string {
	switch e.Type {
	case RetrievalInvalidFlag:
		return "flag does not exist: " + e.Flag
	case RetrievalInvalidType:
		if e.Expected != KindNone {
			return fmt.Sprintf("flag %s holds %s values, not %s", e.Flag, e.Expected, e.Got)
		}
		return "flag " + e.Flag + " does not hold " + e.Got.String() + " values"
	case RetrievalNoValue:
		return "flag has no value: " + e.Flag
	}
	return string(e.Type) + ": " + e.Flag
}

// Is matches any *RetrievalError of the same Type.
func (e *RetrievalError) Is(target error) bool {
	t, ok := target.(*RetrievalError)
	return ok && t.Type == e.Type
}

var (
	ErrInvalidFlag = &RetrievalError{Type: RetrievalInvalidFlag}
	ErrInvalidType = &RetrievalError{Type: RetrievalInvalidType}
	ErrNoValue     = &RetrievalError{Type: RetrievalNoValue}
)

// ConfigErrorType categorizes declaration mistakes.
type ConfigErrorType string

const (
	ConfigDuplicateFlag ConfigErrorType = "duplicate_flag"
	ConfigEmptyBatch    ConfigErrorType = "empty_batch"
	ConfigInvalidFlag   ConfigErrorType = "invalid_flag"
	ConfigNoBatch       ConfigErrorType = "no_batch"
	ConfigTypeConflict  ConfigErrorType = "type_conflict"
	ConfigInvalidValue  ConfigErrorType = "invalid_value"
)

// ConfigError is the panic value raised for broken declarations. These are
// bugs in the calling program, not bad user input, so they are never returned.
type ConfigError struct {
	Type    ConfigErrorType
	Flag    string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Flag != "" {
		return "argparse: " + e.Message + ": " + e.Flag
	}
	return "argparse: " + e.Message
}

func configPanic(typ ConfigErrorType, flag, message string) {
	panic(&ConfigError{Type: typ, Flag: flag, Message: message})
}
