package presets

import "simca/pkg/automaton"

// lifelike builds a Spec over the Moore neighborhood from birth/survival
// neighbor counts, the common B/S notation for Life-like automata.
func lifelike(birth, survive []int) *automaton.Spec {
	mask := automaton.Moore()
	rules := automaton.RuleTable{
		make([]int, mask.MaxCount()+1),
		make([]int, mask.MaxCount()+1),
	}
	for _, n := range birth {
		rules[0][n] = 1
	}
	for _, n := range survive {
		rules[1][n] = 1
	}
	return automaton.NewSpec(mask, rules)
}

func init() {
	Register("life", func() *automaton.Spec {
		return lifelike([]int{3}, []int{2, 3})
	})
	Register("highlife", func() *automaton.Spec {
		return lifelike([]int{3, 6}, []int{2, 3})
	})
	Register("seeds", func() *automaton.Spec {
		return lifelike([]int{2}, nil)
	})
	Register("daynight", func() *automaton.Spec {
		return lifelike([]int{3, 6, 7, 8}, []int{3, 4, 6, 7, 8})
	})
	// Horizontal neighbors count double, so the reachable counts run to 10.
	// Birth needs an exact weighted count of 4, survival 4 or 5.
	Register("weightedlife", func() *automaton.Spec {
		mask := automaton.Mask{
			{1, 1, 1},
			{2, 0, 2},
			{1, 1, 1},
		}
		rules := automaton.RuleTable{
			{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0},
		}
		return automaton.NewSpec(mask, rules)
	})
}
