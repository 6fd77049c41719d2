package argparse

import (
	argio "github.com/dzonerzy/go-argparse/io"
)

// Phrases holds the human-readable text used for each parse error.
type Phrases struct {
	NoArgs            string
	InvalidArg        string
	DuplicateArg      string
	IndexOutOfBound   string
	RequirementNotMet string
	InvalidValue      string
}

// DefaultPhrases returns the built-in message text.
func DefaultPhrases() Phrases {
	return Phrases{
		NoArgs:            "Provide at least one argument",
		InvalidArg:        "Invalid argument",
		DuplicateArg:      "This argument can only be provided once",
		IndexOutOfBound:   "Provide an argument for this option",
		RequirementNotMet: "Not all required arguments were used",
		InvalidValue:      "Invalid value for this option",
	}
}

func (p Phrases) lookup(typ ErrorType) string {
	switch typ {
	case ErrorTypeNoArgs:
		return p.NoArgs
	case ErrorTypeInvalidArg:
		return p.InvalidArg
	case ErrorTypeDuplicateArg:
		return p.DuplicateArg
	case ErrorTypeIndexOutOfBound:
		return p.IndexOutOfBound
	case ErrorTypeRequirementNotMet:
		return p.RequirementNotMet
	case ErrorTypeInvalidValue:
		return p.InvalidValue
	}
	return string(typ)
}

// Hook observes a parse error right before Parse returns it.
type Hook func(*ParseError)

// Settings configures a Parser. Mutate it before Parse; Parse only reads it.
type Settings struct {
	// AllowInvalidArgs collects unknown tokens in Other without failing.
	AllowInvalidArgs bool
	// AllowNoArgs makes an empty argument list a success.
	AllowNoArgs bool
	// GenerateDefaultFlags declares -h/--help and -v/--version before parsing.
	GenerateDefaultFlags bool
	// GenerateHelp builds the help menu before parsing.
	GenerateHelp bool
	// Suggest attaches the closest declared flag to InvalidArg errors.
	Suggest bool
	// MaxSuggestDistance bounds the edit distance used for suggestions.
	MaxSuggestDistance int

	Phrases Phrases

	// Logger receives debug traces of declarations and matches. Nil disables tracing.
	Logger *argio.Logger

	hooks map[ErrorType]Hook
}

// DefaultSettings returns the settings a new Parser starts with.
func DefaultSettings() *Settings {
	return &Settings{
		GenerateDefaultFlags: true,
		GenerateHelp:         true,
		Suggest:              true,
		MaxSuggestDistance:   2,
		Phrases:              DefaultPhrases(),
		hooks:                make(map[ErrorType]Hook),
	}
}

// On registers a hook for one error category, replacing any previous one.
func (s *Settings) On(typ ErrorType, hook Hook) *Settings {
	if s.hooks == nil {
		s.hooks = make(map[ErrorType]Hook)
	}
	s.hooks[typ] = hook
	return s
}

// WithLogger enables debug tracing through l.
func (s *Settings) WithLogger(l *argio.Logger) *Settings {
	s.Logger = l
	return s
}

func (s *Settings) debug(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Debug(format, args...)
	}
}

func (s *Settings) fire(err *ParseError) {
	if hook, ok := s.hooks[err.Type]; ok && hook != nil {
		hook(err)
	}
}
