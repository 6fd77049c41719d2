package argparse

import (
	"sort"

	"github.com/dzonerzy/go-argparse/internal/fuzzy"
)

var (
	helpFlags    = []string{"-h", "--help"}
	versionFlags = []string{"-v", "--version"}
)

// Parse matches args (program name already stripped) against the declared
// flags in a single left-to-right pass.
//
// Duplicate non-repeatable flags, a value-taking flag with nothing after it and
// values that fail conversion abort the scan immediately. Unknown tokens are
// collected in Other and reported only after the scan, and only when every
// required flag was seen. The returned error, if any, is a *ParseError.
//
// Parse appends to the recorded values; call Reset before parsing again.
//
//nolint:gocognit // the state machine reads best as one loop
func (p *Parser) Parse(args []string) error {
	s := p.settings

	if s.GenerateDefaultFlags {
		p.addDefaultFlags(versionFlags, Multiple, "Show the version")
		p.addDefaultFlags(helpFlags, Default, "Show this help menu")
	}
	if s.GenerateHelp {
		p.help = p.buildHelp()
	}

	if len(args) == 0 {
		if s.AllowNoArgs {
			return nil
		}
		return p.fail(&ParseError{Type: ErrorTypeNoArgs, Position: -1})
	}

	var (
		checked  = make(map[string]struct{}, len(args))
		unknown  []string
		firstBad = -1
		skip     bool
	)

	for k, token := range args {
		if skip {
			skip = false
			continue
		}

		a, ok := p.args[token]
		if !ok {
			p.other = append(p.other, token)
			if !s.AllowInvalidArgs {
				if firstBad < 0 {
					firstBad = k
				}
				unknown = append(unknown, token)
			}
			s.debug("unrecognized token %q at %d", token, k)
			continue
		}

		if _, seen := checked[token]; seen {
			if !a.options.Has(Multiple) {
				return p.fail(&ParseError{Type: ErrorTypeDuplicateArg, Flag: token, Position: k})
			}
		} else {
			checked[token] = struct{}{}
		}
		delete(p.required, token)

		if !a.options.Has(RequiresNext) {
			a.record(Bool(true))
			s.debug("matched %s at %d", token, k)
			continue
		}

		if k+1 >= len(args) {
			return p.fail(&ParseError{Type: ErrorTypeIndexOutOfBound, Flag: token, Position: k})
		}
		raw := args[k+1]
		v, err := Convert(a.expected, raw)
		if err != nil {
			return p.fail(&ParseError{
				Type:     ErrorTypeInvalidValue,
				Flag:     token,
				Token:    raw,
				Position: k + 1,
				Cause:    err,
			})
		}
		a.record(v)
		skip = true
		s.debug("matched %s=%q at %d", token, raw, k)
	}

	if len(p.required) > 0 {
		missing := make([]string, 0, len(p.required))
		for flag := range p.required {
			missing = append(missing, flag)
		}
		sort.Strings(missing)
		return p.fail(&ParseError{Type: ErrorTypeRequirementNotMet, Position: -1, Missing: missing})
	}

	if len(unknown) > 0 {
		err := &ParseError{
			Type:     ErrorTypeInvalidArg,
			Token:    unknown[0],
			Position: firstBad,
			Unknown:  unknown,
		}
		if s.Suggest {
			err.Suggestion = fuzzy.FindBestFlag(unknown[0], p.declaredFlags(), s.MaxSuggestDistance)
		}
		return p.fail(err)
	}

	return nil
}

// fail fills in the configured phrase, runs the registered hook and hands the error back.
func (p *Parser) fail(err *ParseError) error {
	if err.Message == "" {
		err.Message = p.settings.Phrases.lookup(err.Type)
	}
	p.settings.debug("parse failed: %v", err)
	p.settings.fire(err)
	return err
}

// Reset discards every recorded value and unrecognized token and re-arms the
// required flags, so the parser can run again on new input.
func (p *Parser) Reset() {
	p.other = nil
	p.required = make(map[string]struct{})
	for flag, a := range p.args {
		a.values = nil
		if a.options.Has(Required) {
			p.required[flag] = struct{}{}
		}
	}
}

// HelpRequested reports whether a generated -h or --help occurred. It is
// meaningful even when Parse returned an error. Flags the caller declared
// under those names are never reported.
func (p *Parser) HelpRequested() bool {
	return p.generatedSeen(helpFlags)
}

// VersionRequested reports whether a generated -v or --version occurred.
func (p *Parser) VersionRequested() bool {
	return p.generatedSeen(versionFlags)
}

func (p *Parser) generatedSeen(flags []string) bool {
	for _, flag := range flags {
		if _, ok := p.generated[flag]; ok && p.Has(flag) {
			return true
		}
	}
	return false
}

func (p *Parser) declaredFlags() []string {
	flags := make([]string, 0, len(p.args))
	for _, b := range p.batches {
		flags = append(flags, b.rows()...)
	}
	return flags
}
