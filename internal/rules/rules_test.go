package rules

import (
	"errors"
	"testing"
)

func TestParseClassicLife(t *testing.T) {
	rs, err := Parse("23/3")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for n := 0; n <= MaxNeighbors; n++ {
		wantBirth := uint8(0)
		if n == 3 {
			wantBirth = 1
		}
		if got := rs.Next(false, n); got != wantBirth {
			t.Fatalf("dead cell with %d neighbors -> %d, want %d", n, got, wantBirth)
		}
		wantSurvive := uint8(0)
		if n == 2 || n == 3 {
			wantSurvive = 1
		}
		if got := rs.Next(true, n); got != wantSurvive {
			t.Fatalf("live cell with %d neighbors -> %d, want %d", n, got, wantSurvive)
		}
	}
	if rs != Classic() {
		t.Fatal("23/3 should equal the classic rule set")
	}
}

func TestParseOrderAndDuplicatesIrrelevant(t *testing.T) {
	a, err := Parse("3223/33")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	b, err := Parse(" 32/3 ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if a != b {
		t.Fatalf("%v != %v", a, b)
	}
	if a.String() != "23/3" {
		t.Fatalf("canonical form = %q", a.String())
	}
}

func TestParseEmptyGroups(t *testing.T) {
	rs, err := Parse("/2")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if rs.Next(true, 2) != 0 || rs.Next(false, 2) != 1 {
		t.Fatalf("seeds rule misparsed: %v", rs)
	}
	if rs.String() != "/2" {
		t.Fatalf("canonical form = %q", rs.String())
	}
}

func TestParseFailures(t *testing.T) {
	cases := map[string]error{
		"9/0":    ErrDigit,
		"23":     ErrSyntax,
		"":       ErrSyntax,
		"2a/3":   ErrSyntax,
		"23/3/4": ErrSyntax,
		"23/-3":  ErrSyntax,
	}
	for in, want := range cases {
		_, err := Parse(in)
		if !errors.Is(err, want) {
			t.Fatalf("Parse(%q) error = %v, want %v", in, err, want)
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("Parse(%q) did not return a *ParseError", in)
		}
	}
}

func TestResolvePreset(t *testing.T) {
	rs, err := Resolve("HighLife")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if rs.String() != "23/36" {
		t.Fatalf("highlife = %q", rs.String())
	}
	if _, err := Resolve("no-such-rule"); err == nil {
		t.Fatal("unknown preset name should fail to parse")
	}
	for _, name := range Presets() {
		if _, err := Resolve(name); err != nil {
			t.Fatalf("preset %q does not parse: %v", name, err)
		}
	}
}
