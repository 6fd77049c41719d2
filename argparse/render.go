package argparse

import (
	"errors"
	"fmt"

	argio "github.com/dzonerzy/go-argparse/io"
)

// PrintHelp writes the help menu to m's output, colored when m supports it.
func (p *Parser) PrintHelp(m *argio.IOManager) {
	st := helpStyle{
		title: argio.NewStyle(argio.Magenta).Bold().Func(m),
		usage: argio.NewStyle(argio.Blue).Func(m),
		flag:  argio.NewStyle(argio.Cyan).Func(m),
	}
	fmt.Fprint(m.Out(), p.renderHelp(st))
}

// PrintError writes err to m's error stream in a two-line layout:
//
//	Error: invalid_arg
//	   --> Invalid argument: --nme
//
// followed by a suggestion line when one is known.
func PrintError(m *argio.IOManager, err error) {
	if err == nil {
		return
	}
	head := argio.NewStyle(argio.Red).Bold().Func(m)
	arrow := argio.NewStyle(argio.Yellow).Bold().Func(m)
	w := m.Err()

	var (
		pe *ParseError
		re *RetrievalError
	)
	switch {
	case errors.As(err, &pe):
		fmt.Fprintf(w, "%s %s\n", head("Error:"), pe.Type)
		fmt.Fprintf(w, "%s %s\n", arrow("   -->"), pe.Error())
		if pe.Cause != nil {
			fmt.Fprintf(w, "%s %s\n", arrow("   -->"), pe.Cause.Error())
		}
		if pe.Suggestion != "" {
			fmt.Fprintf(w, "Did you mean '%s'?\n", pe.Suggestion)
		}
	case errors.As(err, &re):
		fmt.Fprintf(w, "%s %s\n", head("Error:"), re.Type)
		fmt.Fprintf(w, "%s %s\n", arrow("   -->"), re.Error())
	default:
		fmt.Fprintf(w, "%s %v\n", head("Error:"), err)
	}
}
