package argparse

import (
	"errors"
	"reflect"
)

// ExitError requests a specific exit code from program code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCodeDefaults holds the fallback codes.
type ExitCodeDefaults struct {
	Success      int // 0
	GeneralError int // 1
	Misusage     int // 2
}

// DefaultExitCodes returns the conventional codes.
func DefaultExitCodes() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, Misusage: 2}
}

// ExitCodeManager maps errors to process exit codes. Parse errors map to
// Misusage unless overridden per category; everything else is a general error.
// The parser never exits the process; callers pass the result to os.Exit.
type ExitCodeManager struct {
	byParse map[ErrorType]int
	byType  map[reflect.Type]int
	// registration order, so the first matching DefineError wins
	types    []reflect.Type
	defaults ExitCodeDefaults
}

// NewExitCodeManager returns a manager with the default codes.
func NewExitCodeManager() *ExitCodeManager {
	return &ExitCodeManager{
		byParse:  make(map[ErrorType]int),
		byType:   make(map[reflect.Type]int),
		defaults: DefaultExitCodes(),
	}
}

// DefineParse overrides the code for one parse error category.
func (e *ExitCodeManager) DefineParse(typ ErrorType, code int) *ExitCodeManager {
	e.byParse[typ] = code
	return e
}

// DefineError maps errors with the dynamic type of err to code.
func (e *ExitCodeManager) DefineError(err error, code int) *ExitCodeManager {
	if err == nil {
		return e
	}
	t := reflect.TypeOf(err)
	if _, ok := e.byType[t]; !ok {
		e.types = append(e.types, t)
	}
	e.byType[t] = code
	return e
}

// Default replaces the fallback codes.
func (e *ExitCodeManager) Default(d ExitCodeDefaults) *ExitCodeManager {
	e.defaults = d
	return e
}

// Resolve returns the exit code for err. Precedence: ExitError, parse error
// category, registered error types, then the defaults.
func (e *ExitCodeManager) Resolve(err error) int {
	if err == nil {
		return e.defaults.Success
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var pe *ParseError
	if errors.As(err, &pe) {
		if code, ok := e.byParse[pe.Type]; ok {
			return code
		}
		return e.defaults.Misusage
	}

	for _, t := range e.types {
		if errors.As(err, reflect.New(t).Interface()) {
			return e.byType[t]
		}
	}
	return e.defaults.GeneralError
}
