package board

import (
	"sort"
	"strconv"
	"strings"

	"stockboard/internal/quote"
)

// SortKey names a sortable column of the board.
type SortKey string

const (
	SortSymbol        SortKey = "symbol"
	SortName          SortKey = "name"
	SortPrice         SortKey = "price"
	SortHigh          SortKey = "high"
	SortLow           SortKey = "low"
	SortChange        SortKey = "change"
	SortChangePercent SortKey = "percent"
	SortVolume        SortKey = "volume"
)

// ParseSortKey resolves a user-typed column name.
func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortSymbol:
		return SortSymbol, true
	case SortName:
		return SortName, true
	case SortPrice:
		return SortPrice, true
	case SortHigh:
		return SortHigh, true
	case SortLow:
		return SortLow, true
	case SortChange:
		return SortChange, true
	case SortChangePercent, "changepercent", "pct":
		return SortChangePercent, true
	case SortVolume:
		return SortVolume, true
	}
	return "", false
}

// Filter keeps quotes whose symbol or name contains term, case-insensitively.
// An empty term keeps everything. The input slice is never mutated.
func Filter(qs []quote.Quote, term string) []quote.Quote {
	out := make([]quote.Quote, 0, len(qs))
	t := strings.ToLower(strings.TrimSpace(term))
	if t == "" {
		return append(out, qs...)
	}
	for _, q := range qs {
		if strings.Contains(strings.ToLower(q.Symbol), t) || strings.Contains(strings.ToLower(q.Name), t) {
			out = append(out, q)
		}
	}
	return out
}

// Sort orders quotes in place by key. Values that both parse as numbers
// compare numerically, so "9" sorts before "10" by price; anything else falls
// back to a string comparison. The sort is stable: ties keep their previous
// relative order.
func Sort(qs []quote.Quote, key SortKey, asc bool) {
	sort.SliceStable(qs, func(i, j int) bool {
		a, b := field(qs[i], key), field(qs[j], key)
		if asc {
			return compare(a, b) < 0
		}
		return compare(b, a) < 0
	})
}

func field(q quote.Quote, key SortKey) string {
	switch key {
	case SortName:
		return q.Name
	case SortPrice:
		return q.Price
	case SortHigh:
		return q.High
	case SortLow:
		return q.Low
	case SortChange:
		return q.Change
	case SortChangePercent:
		return q.ChangePercent
	case SortVolume:
		return q.Volume
	}
	return q.Symbol
}

// compare is numeric when both sides parse as numbers (grouping commas
// stripped, so formatted volumes count), string otherwise.
func compare(a, b string) int {
	fa, errA := strconv.ParseFloat(strings.ReplaceAll(a, ",", ""), 64)
	fb, errB := strconv.ParseFloat(strings.ReplaceAll(b, ",", ""), 64)
	if errA == nil && errB == nil {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	}
	return strings.Compare(a, b)
}
