package argparse

import (
	"bytes"
	"strings"

	"github.com/dzonerzy/go-argparse/internal/pool"
)

var buffers = pool.New(func() *bytes.Buffer { return new(bytes.Buffer) }, (*bytes.Buffer).Reset)

// helpStyle decorates the parts of the help menu. The zero value renders plain text.
type helpStyle struct {
	title func(string) string
	usage func(string) string
	flag  func(string) string
}

func (s helpStyle) apply(fn func(string) string, text string) string {
	if fn == nil {
		return text
	}
	return fn(text)
}

// Help returns the help menu. It is built during Parse when GenerateHelp is
// set, and on demand otherwise.
func (p *Parser) Help() string {
	if p.help == "" {
		return p.buildHelp()
	}
	return p.help
}

func (p *Parser) buildHelp() string {
	return p.renderHelp(helpStyle{})
}

func (p *Parser) renderHelp(st helpStyle) string {
	buf := buffers.Get()
	defer buffers.Put(buf)
	p.writeHelp(buf, st)
	return buf.String()
}

// writeHelp lays out the menu: a title underlined to its own width, a usage
// line, then one two-column row per flag grouped by batch. The flag column is
// as wide as the longest declared flag plus four.
func (p *Parser) writeHelp(sb *bytes.Buffer, st helpStyle) {
	title := p.name + " on version " + p.version
	sb.WriteString(st.apply(st.title, title))
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat("=", len(title)))
	sb.WriteString("\nUsage\n")
	sb.WriteString("    ")
	sb.WriteString(st.apply(st.usage, p.name))
	sb.WriteString(" <flags>\n")

	width := 0
	for flag := range p.args {
		width = max(width, len(flag))
	}
	width += 4
	indent := strings.Repeat(" ", len(p.name)+5)

	for i, b := range p.batches {
		for _, flag := range b.rows() {
			a := p.args[flag]
			sb.WriteString(indent)
			sb.WriteString(st.apply(st.flag, flag))
			sb.WriteString(strings.Repeat(" ", width-len(flag)))
			sb.WriteString(a.description)
			sb.WriteByte('\n')
		}
		if i != len(p.batches)-1 {
			sb.WriteByte('\n')
		}
	}
}

func (b *Batch) rows() []string {
	if len(b.listed) == 0 {
		return b.flags
	}
	return append(append(make([]string, 0, len(b.flags)+len(b.listed)), b.flags...), b.listed...)
}
