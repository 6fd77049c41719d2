package argparse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func expectConfigPanic(t *testing.T, want ConfigErrorType, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected a %s panic", want)
		}
		ce, ok := r.(*ConfigError)
		if !ok {
			t.Fatalf("expected *ConfigError, got %T (%v)", r, r)
		}
		if ce.Type != want {
			t.Fatalf("want %s, got %s (%v)", want, ce.Type, ce)
		}
	}()
	fn()
}

func TestDuplicateDeclarationPanics(t *testing.T) {
	tests := []struct {
		name  string
		first []string
		again []string
	}{
		{"same call", []string{"-a", "-a"}, nil},
		{"later call", []string{"-a", "--all"}, []string{"--all"}},
		{"reversed order", []string{"--all"}, []string{"-a", "--all"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New("app", "1")
			expectConfigPanic(t, ConfigDuplicateFlag, func() {
				p.Add(Default, tt.first...)
				if tt.again != nil {
					p.Add(Multiple, tt.again...)
				}
			})
		})
	}
}

func TestInvalidDeclarationsPanic(t *testing.T) {
	p := New("app", "1")
	expectConfigPanic(t, ConfigEmptyBatch, func() { p.Add(Default) })
	expectConfigPanic(t, ConfigInvalidFlag, func() { p.Add(Default, "") })

	var nilBatch *Batch
	expectConfigPanic(t, ConfigNoBatch, func() { nilBatch.Help("x") })
	expectConfigPanic(t, ConfigNoBatch, func() { (&Batch{}).Expect(KindInt) })

	b := p.Add(RequiresNext, "--count")
	expectConfigPanic(t, ConfigInvalidValue, func() { b.Default(Value{}) })
	expectConfigPanic(t, ConfigInvalidValue, func() { b.Expect(KindNone) })
	Expect[int](b)
	expectConfigPanic(t, ConfigTypeConflict, func() { SetDefault(b, "ten") })
	// rebinding the same kind is fine
	SetDefault(b, 10)

	presence := p.Add(Default, "--dry")
	expectConfigPanic(t, ConfigTypeConflict, func() { Expect[int](presence) })
	expectConfigPanic(t, ConfigTypeConflict, func() { SetDefault(presence, "yes") })
	SetDefault(presence, false)
}

func TestFailedAddLeavesNoTrace(t *testing.T) {
	p := New("app", "1")
	p.Add(Default, "--old")
	expectConfigPanic(t, ConfigDuplicateFlag, func() { p.Add(Required, "--new", "--old") })
	expectConfigPanic(t, ConfigDuplicateFlag, func() { p.Add(Required, "--twice", "--twice") })
	expectConfigPanic(t, ConfigInvalidFlag, func() { p.Add(Required, "--other", "") })

	for _, flag := range []string{"--new", "--twice", "--other"} {
		if p.Declared(flag) {
			t.Fatalf("%s should not be declared", flag)
		}
	}
	if len(p.required) != 0 || len(p.batches) != 1 {
		t.Fatalf("partial declaration left behind: required=%v batches=%d", p.required, len(p.batches))
	}
	if err := p.Parse([]string{"--old"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Type: ConfigDuplicateFlag, Flag: "-a", Message: "argument was already added"}
	if err.Error() != "argparse: argument was already added: -a" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestDefaultRoundTrip(t *testing.T) {
	p := New("app", "1")
	SetDefault(p.Add(RequiresNext, "--port"), 8080)
	SetDefault(p.Add(RequiresNext, "--host"), "localhost")
	SetDefault(p.Add(RequiresNext|Multiple, "--tag"), "none")
	p.Add(Default, "-x")

	if err := p.Parse([]string{"-x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ports, err := Get[int](p, "--port")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if diff := cmp.Diff([]int{8080}, ports); diff != "" {
		t.Fatalf("default mismatch (-want +got):\n%s", diff)
	}
	if got := MustLookup(p, "--host", ""); got != "localhost" {
		t.Fatalf("want localhost, got %q", got)
	}
	if p.Has("--port") {
		t.Fatal("a default is not an occurrence")
	}

	p.Reset()
	if err := p.Parse([]string{"--port", "9000", "--tag", "a", "--tag", "b"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ports, _ = Get[int](p, "--port")
	if diff := cmp.Diff([]int{9000}, ports); diff != "" {
		t.Fatalf("explicit value should replace the default (-want +got):\n%s", diff)
	}
	tags, _ := Get[string](p, "--tag")
	if diff := cmp.Diff([]string{"a", "b"}, tags); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
}

func TestBatchMetadataAppliesToAllAliases(t *testing.T) {
	p := New("app", "1")
	b := SetDefault(p.Add(RequiresNext, "-o", "--output"), "out.txt").Help("Output file")
	if diff := cmp.Diff([]string{"-o", "--output"}, b.Flags()); diff != "" {
		t.Fatalf("flags mismatch (-want +got):\n%s", diff)
	}
	for _, flag := range b.Flags() {
		if got := MustLookup(p, flag, ""); got != "out.txt" {
			t.Fatalf("%s: want default out.txt, got %q", flag, got)
		}
		if p.args[flag].description != "Output file" {
			t.Fatalf("%s: description not applied", flag)
		}
	}
}

func TestRetrievalErrors(t *testing.T) {
	p := New("app", "1")
	Expect[int](p.Add(RequiresNext, "--n"))
	p.Add(Default, "--flag")
	p.Add(RequiresNext, "--raw")
	if err := p.Parse([]string{"--flag", "--raw", "text"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		get      func() error
		sentinel error
	}{
		{"unknown flag", func() error { _, err := Get[int](p, "--missing"); return err }, ErrInvalidFlag},
		{"bound type", func() error { _, err := Get[string](p, "--n"); return err }, ErrInvalidType},
		{"recorded type", func() error { _, err := Get[int](p, "--flag"); return err }, ErrInvalidType},
		{"no value", func() error { _, err := Get[int](p, "--n"); return err }, ErrNoValue},
		{"raw values", func() error { _, err := p.Values("--n"); return err }, ErrNoValue},
		{"raw unknown", func() error { _, err := p.Values("--nope"); return err }, ErrInvalidFlag},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.get()
			if !errors.Is(err, tt.sentinel) {
				t.Fatalf("want %v, got %v", tt.sentinel, err)
			}
		})
	}

	raw, err := Get[string](p, "--raw")
	if err != nil || len(raw) != 1 || raw[0] != "text" {
		t.Fatalf("untyped values are kept as strings, got %v (%v)", raw, err)
	}
	if _, ok := Lookup[int](p, "--n"); ok {
		t.Fatal("lookup without value should report false")
	}
	values, _ := p.Values("--flag")
	if diff := cmp.Diff([]string{"true"}, []string{values[0].String()}); diff != "" {
		t.Fatalf("presence value mismatch (-want +got):\n%s", diff)
	}
}

func TestOptionString(t *testing.T) {
	tests := map[Option]string{
		Default:                            "default",
		Required:                           "required",
		Multiple | RequiresNext:            "multiple|requires-next",
		Required | Multiple | RequiresNext: "required|multiple|requires-next",
	}
	for opt, want := range tests {
		if got := opt.String(); got != want {
			t.Fatalf("Option(%d).String() = %q, want %q", opt, got, want)
		}
	}
	if !(Required | RequiresNext).Has(RequiresNext) || Multiple.Has(Required) {
		t.Fatal("Has is wrong")
	}
}
