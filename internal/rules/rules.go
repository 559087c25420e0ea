// Package rules parses Life-family birth/survival rules.
//
// A rule string holds two digit groups separated by '/': the neighbor counts
// that keep a live cell alive, then the counts that bring a dead cell to life
// ("23/3" is Conway's Life). Digits range over 0-8, may repeat and may appear
// in any order. Either group may be empty.
package rules

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MaxNeighbors is the largest neighbor count in a Moore neighborhood.
const MaxNeighbors = 8

// Default is the classic Conway rule.
const Default = "23/3"

var (
	// ErrSyntax reports a missing or repeated delimiter or a non-digit character.
	ErrSyntax = errors.New("malformed rule")
	// ErrDigit reports a neighbor count outside 0-8.
	ErrDigit = errors.New("neighbor count out of range")
)

// ParseError describes why a rule string was rejected.
type ParseError struct {
	Rule string
	Pos  int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("rule %q: %v", e.Rule, e.Err)
	}
	return fmt.Sprintf("rule %q: %v at offset %d", e.Rule, e.Err, e.Pos)
}

func (e *ParseError) Unwrap() error { return e.Err }

// RuleSet maps a neighbor count to the next state of a cell.
type RuleSet struct {
	Survive [MaxNeighbors + 1]bool
	Birth   [MaxNeighbors + 1]bool
}

// Classic returns Conway's Life.
func Classic() RuleSet {
	rs, _ := Parse(Default)
	return rs
}

// Parse decodes a "survive/birth" rule string.
func Parse(s string) (RuleSet, error) {
	var rs RuleSet
	s = strings.TrimSpace(s)
	slash := strings.IndexByte(s, '/')
	if slash < 0 {
		return RuleSet{}, &ParseError{Rule: s, Pos: -1, Err: ErrSyntax}
	}
	if err := parseGroup(s, s[:slash], 0, &rs.Survive); err != nil {
		return RuleSet{}, err
	}
	if err := parseGroup(s, s[slash+1:], slash+1, &rs.Birth); err != nil {
		return RuleSet{}, err
	}
	return rs, nil
}

func parseGroup(raw, group string, offset int, table *[MaxNeighbors + 1]bool) error {
	for i := 0; i < len(group); i++ {
		c := group[i]
		switch {
		case c >= '0' && c <= '0'+MaxNeighbors:
			table[c-'0'] = true
		case c == '9':
			return &ParseError{Rule: raw, Pos: offset + i, Err: ErrDigit}
		default:
			return &ParseError{Rule: raw, Pos: offset + i, Err: ErrSyntax}
		}
	}
	return nil
}

// Next returns the state of a cell with the given liveness and neighbor count.
func (rs *RuleSet) Next(alive bool, neighbors int) uint8 {
	if neighbors < 0 || neighbors > MaxNeighbors {
		return 0
	}
	if alive {
		if rs.Survive[neighbors] {
			return 1
		}
		return 0
	}
	if rs.Birth[neighbors] {
		return 1
	}
	return 0
}

// String renders the rule in canonical form with digits in ascending order.
func (rs RuleSet) String() string {
	var b strings.Builder
	for n, ok := range rs.Survive {
		if ok {
			b.WriteByte(byte('0' + n))
		}
	}
	b.WriteByte('/')
	for n, ok := range rs.Birth {
		if ok {
			b.WriteByte(byte('0' + n))
		}
	}
	return b.String()
}

var presets = map[string]string{
	"life":       "23/3",
	"highlife":   "23/36",
	"seeds":      "/2",
	"daynight":   "34678/3678",
	"maze":       "12345/3",
	"replicator": "1357/1357",
}

// Preset returns the rule string registered under name.
func Preset(name string) (string, bool) {
	r, ok := presets[strings.ToLower(name)]
	return r, ok
}

// Presets lists preset names in alphabetical order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Resolve accepts either a preset name or a literal rule string.
func Resolve(s string) (RuleSet, error) {
	if r, ok := Preset(strings.TrimSpace(s)); ok {
		s = r
	}
	return Parse(s)
}
