package board

import (
	"testing"

	"stockboard/internal/quote"
)

func sampleQuotes() []quote.Quote {
	return []quote.Quote{
		{Symbol: "AAPL", Name: "Apple Inc.", Price: "101.00", Change: "1.00", ChangePercent: "1.00", Volume: "1,000,000"},
		{Symbol: "MSFT", Name: "Microsoft Corporation", Price: "9.00", Change: "-0.50", ChangePercent: "-5.26", Volume: "500"},
		{Symbol: "GOOGL", Name: "Alphabet Inc.", Price: "10.00", Change: "0.00", ChangePercent: "0.00", Volume: "2,000,000"},
	}
}

func TestFilter_CaseInsensitive_SymbolMatch(t *testing.T) {
	out := Filter(sampleQuotes(), "appl")
	if len(out) != 1 || out[0].Symbol != "AAPL" {
		t.Fatalf("want AAPL only, got %+v", out)
	}
	// upper-case term matches the same way
	out = Filter(sampleQuotes(), "APPL")
	if len(out) != 1 || out[0].Symbol != "AAPL" {
		t.Fatalf("want AAPL only, got %+v", out)
	}
}

func TestFilter_MatchesOnName(t *testing.T) {
	out := Filter(sampleQuotes(), "alphabet")
	if len(out) != 1 || out[0].Symbol != "GOOGL" {
		t.Fatalf("want GOOGL only, got %+v", out)
	}
}

func TestFilter_EmptyTermKeepsAll(t *testing.T) {
	in := sampleQuotes()
	out := Filter(in, "")
	if len(out) != len(in) {
		t.Fatalf("want %d quotes, got %d", len(in), len(out))
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	in := sampleQuotes()
	_ = Filter(in, "zzz")
	if in[0].Symbol != "AAPL" || len(in) != 3 {
		t.Fatalf("input mutated: %+v", in)
	}
}

func TestSort_NumericNotLexicographic(t *testing.T) {
	qs := sampleQuotes()
	Sort(qs, SortPrice, true)
	// "9.00" must sort before "10.00" and "101.00"
	if qs[0].Symbol != "MSFT" || qs[1].Symbol != "GOOGL" || qs[2].Symbol != "AAPL" {
		t.Fatalf("numeric price order wrong: %s %s %s", qs[0].Symbol, qs[1].Symbol, qs[2].Symbol)
	}
}

func TestSort_Descending(t *testing.T) {
	qs := sampleQuotes()
	Sort(qs, SortPrice, false)
	if qs[0].Symbol != "AAPL" || qs[2].Symbol != "MSFT" {
		t.Fatalf("descending price order wrong: %s %s %s", qs[0].Symbol, qs[1].Symbol, qs[2].Symbol)
	}
}

func TestSort_VolumeIgnoresGroupingCommas(t *testing.T) {
	qs := sampleQuotes()
	Sort(qs, SortVolume, true)
	if qs[0].Symbol != "MSFT" || qs[2].Symbol != "GOOGL" {
		t.Fatalf("volume order wrong: %s %s %s", qs[0].Symbol, qs[1].Symbol, qs[2].Symbol)
	}
}

func TestSort_StringFallback(t *testing.T) {
	qs := sampleQuotes()
	Sort(qs, SortName, true)
	if qs[0].Symbol != "GOOGL" || qs[1].Symbol != "AAPL" || qs[2].Symbol != "MSFT" {
		t.Fatalf("name order wrong: %s %s %s", qs[0].Symbol, qs[1].Symbol, qs[2].Symbol)
	}
}

func TestSort_StableOnTies(t *testing.T) {
	qs := []quote.Quote{
		{Symbol: "B", Price: "10.00"},
		{Symbol: "A", Price: "10.00"},
		{Symbol: "C", Price: "10.00"},
	}
	Sort(qs, SortPrice, true)
	if qs[0].Symbol != "B" || qs[1].Symbol != "A" || qs[2].Symbol != "C" {
		t.Fatalf("ties reordered: %s %s %s", qs[0].Symbol, qs[1].Symbol, qs[2].Symbol)
	}
}

func TestParseSortKey(t *testing.T) {
	cases := map[string]SortKey{
		"symbol":  SortSymbol,
		"Price":   SortPrice,
		"PCT":     SortChangePercent,
		"percent": SortChangePercent,
		"volume":  SortVolume,
	}
	for in, want := range cases {
		got, ok := ParseSortKey(in)
		if !ok || got != want {
			t.Fatalf("ParseSortKey(%q) = %v, %v", in, got, ok)
		}
	}
	if _, ok := ParseSortKey("bogus"); ok {
		t.Fatal("bogus key accepted")
	}
}
