// Command rule-sweep runs every combination of a birth/survival rule grid
// over the Moore neighborhood and reports which rules keep a random soup
// alive. Scenarios are independent, so they run concurrently; each one owns
// its simulator.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"simca/pkg/automaton"
	"simca/pkg/core"
)

type paramSet struct {
	birth   []int
	survive []int
}

func (p paramSet) String() string {
	return fmt.Sprintf("B%s/S%s", digits(p.birth), digits(p.survive))
}

func digits(counts []int) string {
	s := ""
	for _, n := range counts {
		s += fmt.Sprint(n)
	}
	return s
}

type scenarioResult struct {
	params    paramSet
	finalPop  int
	peakPop   int
	settledAt int // step the soup went static, -1 if it never did
}

func main() {
	steps := flag.Int("steps", 200, "steps to simulate per scenario")
	size := flag.Int("size", 64, "square grid edge length")
	seed := flag.Int64("seed", 42, "seed for the initial random soup")
	workers := flag.Int("workers", runtime.NumCPU(), "max concurrent scenarios")
	flag.Parse()

	birthOptions := [][]int{
		{2},
		{3},
		{3, 6},
		{3, 6, 7, 8},
		{4, 5, 6, 7},
	}
	surviveOptions := [][]int{
		nil,
		{2, 3},
		{3, 4, 6, 7, 8},
		{1, 2, 3, 4},
		{4, 5, 6, 7, 8},
	}

	var sets []paramSet
	for _, b := range birthOptions {
		for _, s := range surviveOptions {
			sets = append(sets, paramSet{birth: b, survive: s})
		}
	}

	fmt.Printf("Sweeping %d rule sets (%d workers, %d steps, %dx%d grid)\n",
		len(sets), *workers, *steps, *size, *size)

	var (
		mu      sync.Mutex
		results []scenarioResult
		eg      errgroup.Group
	)
	eg.SetLimit(*workers)

	for _, params := range sets {
		params := params
		eg.Go(func() error {
			res, err := runScenario(params, *size, *steps, *seed)
			if err != nil {
				return err
			}
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		fmt.Println("sweep failed:", err)
		return
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].finalPop != results[j].finalPop {
			return results[i].finalPop > results[j].finalPop
		}
		return results[i].params.String() < results[j].params.String()
	})

	fmt.Println("\nrule        final   peak  settled")
	for _, res := range results {
		settled := "never"
		if res.settledAt >= 0 {
			settled = fmt.Sprint(res.settledAt)
		}
		fmt.Printf("%-10s %6d %6d  %s\n", res.params, res.finalPop, res.peakPop, settled)
	}
}

func runScenario(p paramSet, size, steps int, seed int64) (scenarioResult, error) {
	mask := automaton.Moore()
	rules := automaton.RuleTable{
		make([]int, mask.MaxCount()+1),
		make([]int, mask.MaxCount()+1),
	}
	for _, n := range p.birth {
		rules[0][n] = 1
	}
	for _, n := range p.survive {
		rules[1][n] = 1
	}

	soup := core.NewBoolGrid(size, size)
	core.FillBinary(core.NewRNG(seed).Source(), soup.Cells())

	sim, err := automaton.NewFromGrid(soup, automaton.NewSpec(mask, rules))
	if err != nil {
		return scenarioResult{}, err
	}

	res := scenarioResult{params: p, settledAt: -1}
	prev := sim.Grid()
	for step := 1; step <= steps; step++ {
		sim.Step()
		cur := sim.Grid()
		if pop := cur.Popcount(); pop > res.peakPop {
			res.peakPop = pop
		}
		if res.settledAt < 0 && cur.Equal(prev) {
			res.settledAt = step
			break
		}
		prev = cur
	}
	res.finalPop = sim.LiveCells()
	return res, nil
}
