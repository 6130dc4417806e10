package solver

import "sort"

// rank orders solutions for presentation: total completed-sequence value
// descending, then path length ascending (shorter paths waste less
// buffer), then discovery order. The stable sort is what makes repeated
// runs return identical orderings.
func rank(sols []Solution) {
	sort.SliceStable(sols, func(i, j int) bool {
		if sols[i].Value != sols[j].Value {
			return sols[i].Value > sols[j].Value
		}

		return len(sols[i].Steps) < len(sols[j].Steps)
	})
}
