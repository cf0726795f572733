// Package difficulty classifies level numbers into difficulty tiers and
// groups level numbers by tier.
package difficulty

// Tier represents a named difficulty bucket.
type Tier string

const (
	Easy   Tier = "easy"
	Medium Tier = "medium"
	Hard   Tier = "hard"
)

// LevelsPerTier is the width of each tier's level-number range.
const LevelsPerTier = 10

// tierRanges holds the half-open [start, end) level range of each tier.
var tierRanges = map[Tier][2]int{
	Easy:   {0, LevelsPerTier},
	Medium: {LevelsPerTier, 2 * LevelsPerTier},
	Hard:   {2 * LevelsPerTier, 3 * LevelsPerTier},
}

// Tiers returns all tiers from easiest to hardest.
func Tiers() []Tier {
	return []Tier{Easy, Medium, Hard}
}

// FromLevelNumber returns the tier that owns the given level number.
// Negative numbers are Easy; anything from 20 up is Hard.
func FromLevelNumber(levelNumber int) Tier {
	switch {
	case levelNumber < LevelsPerTier:
		return Easy
	case levelNumber < 2*LevelsPerTier:
		return Medium
	default:
		return Hard
	}
}

// ParseTier converts a string to a Tier.
func ParseTier(s string) (Tier, bool) {
	switch Tier(s) {
	case Easy, Medium, Hard:
		return Tier(s), true
	default:
		return "", false
	}
}

// Title returns a display name for the tier.
func (t Tier) Title() string {
	switch t {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return "Unknown"
	}
}
