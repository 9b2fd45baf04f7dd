package asset

import (
	"sort"
	"strconv"
	"strings"
)

// splitNumericSuffix breaks "Amplifier 10" into ("Amplifier", 10, true).
// Names without a trailing number return ok=false.
func splitNumericSuffix(name string) (base string, n int, ok bool) {
	trimmed := strings.TrimSpace(name)

	i := len(trimmed)
	for i > 0 && trimmed[i-1] >= '0' && trimmed[i-1] <= '9' {
		i--
	}
	if i == len(trimmed) {
		return trimmed, 0, false
	}

	n, err := strconv.Atoi(trimmed[i:])
	if err != nil {
		return trimmed, 0, false
	}
	return strings.TrimSpace(trimmed[:i]), n, true
}

// SortNaturally orders assets so numbered instances sort numerically:
// "Amplifier 2" before "Amplifier 10". Base names compare lexicographically;
// when bases match, a non-suffixed entry sorts before suffixed ones.
// The input slice is not modified.
func SortNaturally(list []*Asset) []*Asset {
	out := make([]*Asset, len(list))
	copy(out, list)

	sort.SliceStable(out, func(i, j int) bool {
		return naturalLess(out[i].AssetName, out[j].AssetName)
	})

	return out
}

func naturalLess(a, b string) bool {
	aBase, aNum, aOK := splitNumericSuffix(a)
	bBase, bNum, bOK := splitNumericSuffix(b)

	if aBase != bBase {
		return aBase < bBase
	}
	if aOK && bOK {
		return aNum < bNum
	}
	if !aOK && bOK {
		return true
	}
	if aOK && !bOK {
		return false
	}
	return a < b
}
