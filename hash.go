package chainx

import "fmt"

// Strategy names a bucket routing function.
type Strategy int

const (
	// Additive sums the key's bytes.
	Additive Strategy = iota
	// WeightedFold sums the key's bytes, weighting each by 1 when it is
	// divisible by 4 and by 255 otherwise.
	WeightedFold
)

// WeightedFoldThreshold is the largest bucket count still routed with
// Additive.
const WeightedFoldThreshold = 30

// StrategyFor returns the strategy a table with the given bucket count uses.
func StrategyFor(rows int) Strategy {
	if rows > WeightedFoldThreshold {
		return WeightedFold
	}
	return Additive
}

// Index maps key to a bucket in [0, rows). Sums wrap at 32 bits. Index
// panics when rows is not positive or s is not a known strategy.
func (s Strategy) Index(key string, rows int) int {
	if rows <= 0 {
		panic(fmt.Sprintf("chainx: %v index with %d rows", s, rows))
	}
	var sum uint32
	switch s {
	case Additive:
		sum = additiveSum(key)
	case WeightedFold:
		sum = weightedFoldSum(key)
	default:
		panic(fmt.Sprintf("chainx: unknown %v", s))
	}
	return int(uint64(sum) % uint64(rows))
}

func (s Strategy) String() string {
	switch s {
	case Additive:
		return "additive"
	case WeightedFold:
		return "weighted-fold"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy is the inverse of Strategy.String.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "additive":
		return Additive, nil
	case "weighted-fold":
		return WeightedFold, nil
	}
	return 0, fmt.Errorf("unknown hash strategy %q", name)
}

func additiveSum(key string) uint32 {
	var sum uint32
	for i := 0; i < len(key); i++ {
		sum += uint32(key[i])
	}
	return sum
}

func weightedFoldSum(key string) uint32 {
	var sum uint32
	for i := 0; i < len(key); i++ {
		b := uint32(key[i])
		if b%4 == 0 {
			sum += b
		} else {
			sum += b * 255
		}
	}
	return sum
}
