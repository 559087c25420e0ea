// Package sweep runs rule presets over random soups in parallel and
// summarizes how each population evolves.
package sweep

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"lifeloop/internal/core"
	"lifeloop/internal/rules"
	_ "lifeloop/internal/sims/life"

	"golang.org/x/sync/errgroup"
)

// Scenario is one rule and seed to simulate.
type Scenario struct {
	Rule string
	Seed int64
}

// Result summarizes a finished scenario.
type Result struct {
	Scenario
	Canonical string
	Initial   int
	Final     int
	Peak      int
	PeakStep  int
	// ExtinctAt is the first generation with no living cells, or -1.
	ExtinctAt int
}

func (r Result) String() string {
	ext := "-"
	if r.ExtinctAt >= 0 {
		ext = fmt.Sprint(r.ExtinctAt)
	}
	return fmt.Sprintf("%-10s %-8s seed=%-4d initial=%-6d final=%-6d peak=%d@%d extinct=%s",
		r.Rule, r.Canonical, r.Seed, r.Initial, r.Final, r.Peak, r.PeakStep, ext)
}

// Options controls which simulation runs, its grid size and run length.
type Options struct {
	// Sim names a registered simulation; empty means "life".
	Sim     string
	Width   int
	Height  int
	Steps   int
	Workers int
}

// Scenarios crosses every rule with seeds 1..seeds.
func Scenarios(ruleNames []string, seeds int) []Scenario {
	out := make([]Scenario, 0, len(ruleNames)*seeds)
	for _, r := range ruleNames {
		for s := 1; s <= seeds; s++ {
			out = append(out, Scenario{Rule: r, Seed: int64(s)})
		}
	}
	return out
}

// Run simulates every scenario and returns results sorted by final
// population, largest first. It stops early when ctx is cancelled or a
// simulation cannot be built, for instance because its rule does not parse.
func Run(ctx context.Context, scenarios []Scenario, opt Options) ([]Result, error) {
	if opt.Width <= 2 || opt.Height <= 2 {
		return nil, fmt.Errorf("grid %dx%d too small", opt.Width, opt.Height)
	}
	g, ctx := errgroup.WithContext(ctx)
	if opt.Workers > 0 {
		g.SetLimit(opt.Workers)
	}

	results := make([]Result, len(scenarios))
	for i, sc := range scenarios {
		g.Go(func() error {
			res, err := simulate(ctx, sc, opt)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Final > results[j].Final })
	return results, nil
}

// ruled is implemented by simulations driven by a birth/survival table.
type ruled interface {
	Rules() rules.RuleSet
}

func simulate(ctx context.Context, sc Scenario, opt Options) (Result, error) {
	name := opt.Sim
	if name == "" {
		name = "life"
	}
	sim, err := core.NewSim(name, map[string]string{
		"w":    strconv.Itoa(opt.Width),
		"h":    strconv.Itoa(opt.Height),
		"rule": sc.Rule,
	})
	if err != nil {
		return Result{}, err
	}
	sim.Reset(sc.Seed)
	pop := population(sim)
	res := Result{
		Scenario:  sc,
		Canonical: "-",
		Initial:   pop,
		Peak:      pop,
		ExtinctAt: -1,
	}
	if r, ok := sim.(ruled); ok {
		res.Canonical = r.Rules().String()
	}
	for step := 1; step <= opt.Steps; step++ {
		if step%64 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		sim.Step()
		pop = population(sim)
		if pop > res.Peak {
			res.Peak, res.PeakStep = pop, step
		}
		if pop == 0 && res.ExtinctAt < 0 {
			res.ExtinctAt = step
		}
	}
	res.Final = pop
	return res, nil
}

func population(sim core.Sim) int {
	n := 0
	for _, c := range sim.Cells() {
		n += int(c)
	}
	return n
}
