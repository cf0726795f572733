package difficulty

import (
	"reflect"
	"testing"
)

func TestFromLevelNumber(t *testing.T) {
	tests := []struct {
		level    int
		expected Tier
	}{
		{-100, Easy},
		{-1, Easy},
		{0, Easy},
		{9, Easy},
		{10, Medium},
		{15, Medium},
		{19, Medium},
		{20, Hard},
		{29, Hard},
		{30, Hard},
		{1 << 30, Hard},
	}

	for _, tc := range tests {
		result := FromLevelNumber(tc.level)
		if result != tc.expected {
			t.Errorf("FromLevelNumber(%d) = %q, expected %q", tc.level, result, tc.expected)
		}
	}
}

func seq(start, end int) []int {
	out := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, i)
	}
	return out
}

func TestLevelNumbersIn(t *testing.T) {
	ix := NewIndex(30)

	tests := []struct {
		tier     Tier
		expected []int
	}{
		{Easy, seq(0, 10)},
		{Medium, seq(10, 20)},
		{Hard, seq(20, 30)},
		{Tier("impossible"), []int{}},
		{Tier(""), []int{}},
	}

	for _, tc := range tests {
		t.Run(string(tc.tier), func(t *testing.T) {
			result := ix.LevelNumbersIn(tc.tier)
			if !reflect.DeepEqual(result, tc.expected) {
				t.Errorf("LevelNumbersIn(%q) = %v, expected %v", tc.tier, result, tc.expected)
			}
		})
	}
}

func TestLevelNumbersInShortSource(t *testing.T) {
	ix := NewIndex(14)

	if got := ix.LevelNumbersIn(Easy); !reflect.DeepEqual(got, seq(0, 10)) {
		t.Errorf("LevelNumbersIn(easy) = %v, expected %v", got, seq(0, 10))
	}
	if got := ix.LevelNumbersIn(Medium); !reflect.DeepEqual(got, seq(10, 14)) {
		t.Errorf("LevelNumbersIn(medium) = %v, expected %v", got, seq(10, 14))
	}
	if got := ix.LevelNumbersIn(Hard); len(got) != 0 {
		t.Errorf("LevelNumbersIn(hard) = %v, expected empty", got)
	}

	empty := NewIndex(0)
	for _, tier := range Tiers() {
		if got := empty.LevelNumbersIn(tier); got == nil || len(got) != 0 {
			t.Errorf("empty index LevelNumbersIn(%q) = %#v, expected empty non-nil slice", tier, got)
		}
	}
}

func TestLevelNumbersInIgnoresExtraLevels(t *testing.T) {
	ix := NewIndex(45)

	if got := ix.LevelNumbersIn(Hard); !reflect.DeepEqual(got, seq(20, 30)) {
		t.Errorf("LevelNumbersIn(hard) = %v, expected %v", got, seq(20, 30))
	}
	if ix.Len() != 45 {
		t.Errorf("Len() = %d, expected 45", ix.Len())
	}
}

func TestClassifierAndPartitionerAgree(t *testing.T) {
	ix := NewIndex(30)

	for n := 0; n < 30; n++ {
		tier := FromLevelNumber(n)
		found := false
		for _, m := range ix.LevelNumbersIn(tier) {
			if m == n {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("level %d not in LevelNumbersIn(%q)", n, tier)
		}
	}
}

func TestIndexReturnsCopies(t *testing.T) {
	ix := NewIndex(30)

	easy := ix.LevelNumbersIn(Easy)
	easy[0] = 99
	all := ix.All()
	all[1] = 99

	if got := ix.LevelNumbersIn(Easy); got[0] != 0 || got[1] != 1 {
		t.Errorf("index was mutated through a returned slice: %v", got)
	}
}

func TestParseTier(t *testing.T) {
	for _, tier := range Tiers() {
		parsed, ok := ParseTier(string(tier))
		if !ok || parsed != tier {
			t.Errorf("ParseTier(%q) = %q, %v; expected %q, true", tier, parsed, ok, tier)
		}
	}
	if _, ok := ParseTier("extreme"); ok {
		t.Error("ParseTier(extreme) should fail")
	}
}
