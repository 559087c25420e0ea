package life

import (
	"lifeloop/internal/core"
	"lifeloop/internal/rules"
	pcore "lifeloop/pkg/core"
)

// BitSource yields single random bits for border seeding.
type BitSource interface {
	Value() uint8
}

// Life runs a Life-family automaton on a double-buffered grid. Interior cells
// follow the rule set; border cells are either re-seeded from a BitSource
// every tick or held dead when no source is attached.
type Life struct {
	*core.DoubleBuffer
	rules  rules.RuleSet
	seeder BitSource
}

// NewWithRules returns a simulation using the provided rule set.
func NewWithRules(w, h int, rs rules.RuleSet) *Life {
	return &Life{DoubleBuffer: core.NewDoubleBuffer(w, h), rules: rs}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Rules returns the active rule set.
func (l *Life) Rules() rules.RuleSet { return l.rules }

// SetRules replaces the rule set used by subsequent steps.
func (l *Life) SetRules(rs rules.RuleSet) { l.rules = rs }

// SetSeeder attaches the border noise source. nil keeps borders dead.
func (l *Life) SetSeeder(src BitSource) { l.seeder = src }

// Reset fills the current buffer with a random soup.
func (l *Life) Reset(seed int64) {
	l.DoubleBuffer.Reset()
	pcore.FillBinary(pcore.NewRNG(seed).Source(), l.Cells())
}

// Clear kills every cell.
func (l *Life) Clear() { l.DoubleBuffer.Reset() }

// Step advances the simulation by one generation.
func (l *Life) Step() {
	if l.seeder != nil {
		l.seedBorders()
	}
	l.tick()
	l.Swap()
}

// Population counts living cells in the current buffer.
func (l *Life) Population() int {
	n := 0
	for _, c := range l.Cells() {
		n += int(c)
	}
	return n
}

func (l *Life) seedBorders() {
	w, h := l.W, l.H
	cur := l.Cells()
	for x := 0; x < w; x++ {
		cur[x] = l.seeder.Value()
		cur[(h-1)*w+x] = l.seeder.Value()
	}
	for y := 1; y < h-1; y++ {
		cur[y*w] = l.seeder.Value()
		cur[y*w+w-1] = l.seeder.Value()
	}
}

// tick computes the next generation into the scratch buffer. Border cells
// carry the seeded noise over when seeding is on and stay dead otherwise.
func (l *Life) tick() {
	w, h := l.W, l.H
	cur, nxt := l.Cells(), l.Next()
	keep := l.seeder != nil
	for y := 0; y < h; y++ {
		border := y == 0 || y == h-1
		for x := 0; x < w; x++ {
			idx := y*w + x
			if border || x == 0 || x == w-1 {
				if keep {
					nxt[idx] = cur[idx]
				} else {
					nxt[idx] = 0
				}
				continue
			}
			up, down := idx-w, idx+w
			neighbors := int(cur[up-1]) + int(cur[up]) + int(cur[up+1]) +
				int(cur[idx-1]) + int(cur[idx+1]) +
				int(cur[down-1]) + int(cur[down]) + int(cur[down+1])
			nxt[idx] = l.rules.Next(cur[idx] != 0, neighbors)
		}
	}
}
