package stamp

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrEmptyCatalogue reports a catalogue without stamps.
var ErrEmptyCatalogue = errors.New("stamp catalogue is empty")

// Catalogue is an ordered set of stamps with a rotating selection.
type Catalogue struct {
	stamps  []Stamp
	current int
}

// NewCatalogue wraps the provided stamps. At least one stamp is required.
func NewCatalogue(stamps ...Stamp) (*Catalogue, error) {
	if len(stamps) == 0 {
		return nil, ErrEmptyCatalogue
	}
	return &Catalogue{stamps: append([]Stamp(nil), stamps...)}, nil
}

// Default returns the built-in catalogue.
func Default() *Catalogue {
	c, _ := NewCatalogue(builtins()...)
	return c
}

// Len returns the number of stamps.
func (c *Catalogue) Len() int { return len(c.stamps) }

// Index returns the selected stamp index.
func (c *Catalogue) Index() int { return c.current }

// Current returns the selected stamp.
func (c *Catalogue) Current() Stamp { return c.stamps[c.current] }

// Select chooses a stamp by index, wrapping modulo the catalogue size.
func (c *Catalogue) Select(i int) Stamp {
	n := len(c.stamps)
	c.current = ((i % n) + n) % n
	return c.stamps[c.current]
}

// Next advances the selection and returns the new current stamp.
func (c *Catalogue) Next() Stamp { return c.Select(c.current + 1) }

// Names lists stamp names in catalogue order.
func (c *Catalogue) Names() []string {
	names := make([]string, len(c.stamps))
	for i, s := range c.stamps {
		names[i] = s.Name()
	}
	return names
}

type catalogueFile struct {
	Stamps []struct {
		Name    string `yaml:"name"`
		Pattern string `yaml:"pattern"`
	} `yaml:"stamps"`
}

// ParseCatalogue decodes a YAML document of the form
//
//	stamps:
//	  - name: glider
//	    pattern: |
//	      .*.
//	      ..*
//	      ***
func ParseCatalogue(data []byte) (*Catalogue, error) {
	var f catalogueFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode stamp catalogue: %w", err)
	}
	stamps := make([]Stamp, 0, len(f.Stamps))
	for i, entry := range f.Stamps {
		name := entry.Name
		if name == "" {
			name = fmt.Sprintf("stamp-%d", i)
		}
		s, err := Parse(name, entry.Pattern)
		if err != nil {
			return nil, err
		}
		stamps = append(stamps, s)
	}
	return NewCatalogue(stamps...)
}

// LoadCatalogue reads a YAML catalogue from path.
func LoadCatalogue(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	c, err := ParseCatalogue(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func builtins() []Stamp {
	return []Stamp{
		MustParse("glider", `
.*.
..*
***`),
		MustParse("block", `
**
**`),
		MustParse("blinker", `
***`),
		MustParse("r-pentomino", `
.**
**.
.*.`),
		MustParse("lwss", `
.*..*
*....
*...*
****.`),
		MustParse("acorn", `
.*.....
...*...
**..***`),
		MustParse("pulsar", `
..***...***..
.............
*....*.*....*
*....*.*....*
*....*.*....*
..***...***..
.............
..***...***..
*....*.*....*
*....*.*....*
*....*.*....*
.............
..***...***..`),
	}
}
