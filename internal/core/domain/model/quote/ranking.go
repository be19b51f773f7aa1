package quote

import (
	"sort"
	"strings"
)

// Ranking strategy names accepted by the gateway. Custom is advertised but
// behaves as cheapest until per-outlet rules ship.
const (
	StrategyCheapest = "cheapest"
	StrategyFastest  = "fastest"
	StrategyBalanced = "balanced"
	StrategyCustom   = "custom"
)

// Strategies returns the advertised ranking strategies, in display order.
func Strategies() []string {
	return []string{StrategyCheapest, StrategyFastest, StrategyBalanced, StrategyCustom}
}

// ETARank maps a human ETA label onto a small ordinal: sooner is smaller.
// Anything unrecognized sorts last.
func ETARank(eta string) int {
	e := strings.ToLower(eta)
	switch {
	case strings.Contains(e, "tomorrow"):
		return 0
	case strings.Contains(e, "+1 day"):
		return 1
	case strings.Contains(e, "sat"):
		return 2
	default:
		return 9
	}
}

// Rank sorts quotes in place by the named strategy:
//
//   - cheapest: ascending total
//   - fastest:  ascending ETA rank, ties by total
//   - balanced: ascending 0.7·total + 0.3·ETA rank
//
// Unknown strategies (including custom) fall back to cheapest. The sort is
// stable, so ties keep their input order, and the result is always a
// permutation of the input.
func Rank(strategy string, quotes []RateQuote) {
	sort.SliceStable(quotes, func(i, j int) bool {
		a, b := quotes[i], quotes[j]
		switch strategy {
		case StrategyFastest:
			ra, rb := ETARank(a.ETA), ETARank(b.ETA)
			if ra != rb {
				return ra < rb
			}
			return a.Total < b.Total
		case StrategyBalanced:
			return a.Total*0.7+float64(ETARank(a.ETA))*0.3 <
				b.Total*0.7+float64(ETARank(b.ETA))*0.3
		default:
			return a.Total < b.Total
		}
	})
}
