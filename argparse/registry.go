package argparse

// Parser holds flag declarations, their parsed values and the parse settings.
// It is not safe for concurrent use.
type Parser struct {
	name    string
	version string

	args     map[string]*argument
	batches  []*Batch
	required map[string]struct{}
	other    []string
	help     string

	// flags declared by the default-flag pass rather than the caller
	generated map[string]struct{}

	settings *Settings
}

// New creates a Parser for the named program with default settings.
func New(name, version string) *Parser {
	return &Parser{
		name:      name,
		version:   version,
		args:      make(map[string]*argument),
		required:  make(map[string]struct{}),
		generated: make(map[string]struct{}),
		settings:  DefaultSettings(),
	}
}

// Name returns the program name given to New.
func (p *Parser) Name() string { return p.name }

// Version returns the program version given to New.
func (p *Parser) Version() string { return p.version }

// Settings returns the parser settings for configuration before Parse.
func (p *Parser) Settings() *Settings { return p.settings }

// Batch identifies the flags declared together by one Add call. Metadata set
// through a Batch applies to every flag in it.
type Batch struct {
	parser *Parser
	flags  []string
	// generated flags shown with this batch in the help menu
	listed []string
}

// Add declares flags that share opts and returns their batch. Declaring a flag
// twice panics with a *ConfigError, and nothing from the call is kept.
func (p *Parser) Add(opts Option, flags ...string) *Batch {
	if len(flags) == 0 {
		configPanic(ConfigEmptyBatch, "", "no flags given")
	}
	seen := make(map[string]struct{}, len(flags))
	for _, flag := range flags {
		if flag == "" {
			configPanic(ConfigInvalidFlag, flag, "empty flag name")
		}
		_, exists := p.args[flag]
		if _, again := seen[flag]; exists || again {
			configPanic(ConfigDuplicateFlag, flag, "argument was already added")
		}
		seen[flag] = struct{}{}
	}

	b := &Batch{parser: p, flags: make([]string, 0, len(flags))}
	for _, flag := range flags {
		p.args[flag] = newArgument(flag, opts, b)
		b.flags = append(b.flags, flag)
		if opts.Has(Required) {
			p.required[flag] = struct{}{}
		}
	}
	p.batches = append(p.batches, b)
	p.settings.debug("declared %v (%s)", b.flags, opts)
	return b
}

// Flags returns the flags of the batch in declaration order.
func (b *Batch) Flags() []string {
	b.check()
	out := make([]string, len(b.flags))
	copy(out, b.flags)
	return out
}

// Help sets the description shown in the help menu.
func (b *Batch) Help(text string) *Batch {
	b.check()
	for _, a := range b.arguments() {
		a.description = text
	}
	return b
}

// Default sets the value retrieved when the flag never occurs. It also binds
// the expected type, panicking if another type was already bound.
func (b *Batch) Default(v Value) *Batch {
	b.check()
	if v.IsZero() {
		configPanic(ConfigInvalidValue, b.flags[0], "default value has no type")
	}
	for _, a := range b.arguments() {
		a.bind(v.Kind())
		def := v
		a.def = &def
	}
	return b
}

// Expect binds the expected type of every flag in the batch.
func (b *Batch) Expect(k Kind) *Batch {
	b.check()
	if k == KindNone {
		configPanic(ConfigInvalidValue, b.flags[0], "expected type must not be none")
	}
	for _, a := range b.arguments() {
		a.bind(k)
	}
	return b
}

// SetDefault is the generic form of Batch.Default.
func SetDefault[T Scalar](b *Batch, v T) *Batch {
	return b.Default(ValueOf(v))
}

// Expect is the generic form of Batch.Expect.
func Expect[T Scalar](b *Batch) *Batch {
	return b.Expect(KindOf[T]())
}

func (b *Batch) check() {
	if b == nil || b.parser == nil || len(b.flags) == 0 {
		configPanic(ConfigNoBatch, "", "no arguments to modify")
	}
	for _, flag := range b.flags {
		if a := b.parser.args[flag]; a == nil || a.batch != b {
			configPanic(ConfigNoBatch, flag, "batch does not belong to this parser")
		}
	}
}

func (b *Batch) arguments() []*argument {
	out := make([]*argument, 0, len(b.flags))
	for _, flag := range b.flags {
		out = append(out, b.parser.args[flag])
	}
	return out
}

// addDefaultFlags declares the built-in flags that are still missing. Each
// generated flag is a definition of its own with opts and description. When
// the caller already declared one alias, the generated ones are only listed
// next to it in the help menu; they share none of its metadata.
func (p *Parser) addDefaultFlags(flags []string, opts Option, description string) {
	var home *Batch
	missing := make([]string, 0, len(flags))
	for _, flag := range flags {
		if a, ok := p.args[flag]; ok {
			home = a.batch
			continue
		}
		missing = append(missing, flag)
	}
	if len(missing) == 0 {
		return
	}

	var b *Batch
	if home == nil {
		b = p.Add(opts, missing...).Help(description)
	} else {
		b = &Batch{parser: p, flags: missing}
		for _, flag := range missing {
			a := newArgument(flag, opts, b)
			a.description = description
			p.args[flag] = a
		}
		home.listed = append(home.listed, missing...)
		p.settings.debug("listed %v next to %v", missing, home.flags)
	}
	for _, flag := range b.flags {
		p.generated[flag] = struct{}{}
	}
}
