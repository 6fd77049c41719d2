package argparse

// argument is the definition and accumulated state of one declared flag.
type argument struct {
	flag        string
	options     Option
	description string
	values      []Value
	def         *Value
	expected    Kind
	batch       *Batch
}

func newArgument(flag string, options Option, batch *Batch) *argument {
	return &argument{
		flag:        flag,
		options:     options,
		description: "-",
		batch:       batch,
	}
}

// bind sets the expected kind once. A later, different kind is a declaration
// bug, and so is any kind but bool on a flag that takes no value.
func (a *argument) bind(k Kind) {
	if k != KindBool && !a.options.Has(RequiresNext) {
		configPanic(ConfigTypeConflict, a.flag,
			"flag takes no value and only holds bool, not "+k.String())
	}
	switch a.expected {
	case KindNone:
		a.expected = k
	case k:
	default:
		configPanic(ConfigTypeConflict, a.flag,
			"cannot change expected type from "+a.expected.String()+" to "+k.String())
	}
}

func (a *argument) record(v Value) {
	a.values = append(a.values, v)
}
