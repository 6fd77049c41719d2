package argparse

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	argio "github.com/dzonerzy/go-argparse/io"
	"github.com/google/go-cmp/cmp"
)

func TestHelpLayout(t *testing.T) {
	p := New("app", "1.0")
	p.Add(RequiresNext|Required, "-n", "--name").Help("Your name")
	p.Add(Multiple, "--verbose").Help("Be loud")
	p.Add(Default, "--dry")
	if err := p.Parse([]string{"--name", "x", "--name", "y"}); err == nil {
		t.Fatal("expected a duplicate error")
	}

	// "--version" is the longest flag, so the description column starts at 9+4
	row := func(flag, desc string) string {
		return fmt.Sprintf("%s%-13s%s\n", strings.Repeat(" ", len("app")+5), flag, desc)
	}
	want := "app on version 1.0\n" +
		"==================\n" +
		"Usage\n" +
		"    app <flags>\n" +
		row("-n", "Your name") +
		row("--name", "Your name") +
		"\n" +
		row("--verbose", "Be loud") +
		"\n" +
		row("--dry", "-") +
		"\n" +
		row("-v", "Show the version") +
		row("--version", "Show the version") +
		"\n" +
		row("-h", "Show this help menu") +
		row("--help", "Show this help menu")

	if diff := cmp.Diff(want, p.Help()); diff != "" {
		t.Fatalf("help mismatch (-want +got):\n%s", diff)
	}
}

func TestHelpWithoutParse(t *testing.T) {
	p := New("tool", "0.1")
	p.Add(Default, "-q").Help("Quiet")
	got := p.Help()
	if !strings.HasPrefix(got, "tool on version 0.1\n===================\n") {
		t.Fatalf("unexpected header:\n%s", got)
	}
	if strings.Contains(got, "--help") {
		t.Fatal("default flags are only added by Parse")
	}
}

func TestPrintHelpPlainMatchesHelp(t *testing.T) {
	p := newRegistry()
	p.Settings().AllowNoArgs = true
	_ = p.Parse(nil)

	var out bytes.Buffer
	p.PrintHelp(argio.New().WithOut(&out).NoColor())
	if diff := cmp.Diff(p.Help(), out.String()); diff != "" {
		t.Fatalf("plain rendering differs (-want +got):\n%s", diff)
	}

	out.Reset()
	p.PrintHelp(argio.New().WithOut(&out).ForceColor())
	if !strings.Contains(out.String(), "\x1b[") {
		t.Fatal("forced color should emit ANSI sequences")
	}
}

func TestPrintError(t *testing.T) {
	p := newRegistry()
	err := p.Parse([]string{"--name", "a", "--verbos"})

	var out bytes.Buffer
	m := argio.New().WithErr(&out).NoColor()
	PrintError(m, err)
	want := "Error: invalid_arg\n" +
		"   --> Invalid argument: --verbos\n" +
		"Did you mean '--verbose'?\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("error rendering mismatch (-want +got):\n%s", diff)
	}

	out.Reset()
	_, err = Get[int](p, "--missing")
	PrintError(m, err)
	want = "Error: invalid_flag\n" +
		"   --> flag does not exist: --missing\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("retrieval rendering mismatch (-want +got):\n%s", diff)
	}

	out.Reset()
	PrintError(m, nil)
	if out.Len() != 0 {
		t.Fatalf("nil error should print nothing, got %q", out.String())
	}
}
