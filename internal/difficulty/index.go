package difficulty

// Index is the ordered list of available level numbers, derived once from
// the level source's length. It is never mutated after construction.
type Index struct {
	all []int
}

// NewIndex builds an index of level numbers [0, levelCount).
// A negative count is treated as zero.
func NewIndex(levelCount int) Index {
	if levelCount < 0 {
		levelCount = 0
	}
	all := make([]int, levelCount)
	for i := range all {
		all[i] = i
	}
	return Index{all: all}
}

// Len returns the number of indexed levels.
func (ix Index) Len() int {
	return len(ix.all)
}

// All returns a copy of every level number in order.
func (ix Index) All() []int {
	return append([]int(nil), ix.all...)
}

// LevelNumbersIn returns the level numbers belonging to the tier.
// Ranges past the end of the index come back shorter or empty, and an
// unknown tier yields an empty slice.
func (ix Index) LevelNumbersIn(t Tier) []int {
	r, ok := tierRanges[t]
	if !ok {
		return []int{}
	}
	return ix.slice(r[0], r[1])
}

func (ix Index) slice(start, end int) []int {
	if start > len(ix.all) {
		start = len(ix.all)
	}
	if end > len(ix.all) {
		end = len(ix.all)
	}
	out := make([]int, end-start)
	copy(out, ix.all[start:end])
	return out
}
