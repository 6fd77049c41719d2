package argparse

import "strings"

// Option is a bitset of per-flag parsing options. Options combine with bitwise OR.
type Option uint8

const (
	// Default declares a plain presence flag that may appear once.
	Default Option = 0
	// Required makes the parse fail unless the flag occurs at least once.
	Required Option = 1 << 0
	// Multiple allows the flag to occur more than once.
	Multiple Option = 1 << 1
	// RequiresNext makes the flag consume the following token as its value.
	RequiresNext Option = 1 << 2
)

// Has reports whether every bit of o2 is set in o.
func (o Option) Has(o2 Option) bool {
	return o&o2 == o2
}

func (o Option) String() string {
	if o == Default {
		return "default"
	}
	parts := make([]string, 0, 3)
	if o.Has(Required) {
		parts = append(parts, "required")
	}
	if o.Has(Multiple) {
		parts = append(parts, "multiple")
	}
	if o.Has(RequiresNext) {
		parts = append(parts, "requires-next")
	}
	return strings.Join(parts, "|")
}
