package horizontal

import (
	"testing"

	"github.com/katalvlaran/covarray/core"
	"github.com/katalvlaran/covarray/pi"
)

func TestExtend_GrowsEachRowByOne(t *testing.T) {
	ps, err := core.Prepare([]string{"p0", "p1", "p2"}, map[string][]any{
		"p0": {0, 1},
		"p1": {0, 1},
		"p2": {0, 1},
	})
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	rows := [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	p := pi.Construct(2, 2, ps)

	newPi := Extend(2, rows, p, ps)

	for _, row := range rows {
		if len(row) != 3 {
			t.Fatalf("row %v has length %d; want 3", row, len(row))
		}
	}
	if newPi == nil {
		t.Fatal("Extend returned nil π")
	}
}

func TestExtend_TieBreakKeepsLastMaximalCandidate(t *testing.T) {
	// Single row, single parameter with an empty π (every candidate value
	// gains 0): the tie-break rule must retain the LAST value scanned.
	ps, err := core.Prepare([]string{"p0"}, map[string][]any{
		"p0": {0, 1, 2},
	})
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	rows := [][]int{{}}
	p := &pi.Pi{Combinations: nil, Bitmaps: nil}

	Extend(0, rows, p, ps)

	if rows[0][0] != 2 {
		t.Errorf("tie-break chose value %d; want 2 (last candidate scanned)", rows[0][0])
	}
}

func TestExtend_PicksMaximalGainValue(t *testing.T) {
	ps, err := core.Prepare([]string{"p0", "p1"}, map[string][]any{
		"p0": {0, 1},
		"p1": {0, 1, 2},
	})
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	// π over combination {0,1}: seed one row (p0=0) so that extending it
	// with p1=0 gains the most (covers a fresh tuple), same as any other
	// value — but starting from a partially-covered π lets us pin a winner.
	p := pi.Construct(1, 2, ps)
	// Manually clear the bit for (p0=0, p1=0) so it is already covered;
	// extending with p1=0 then gains less than p1=1 or p1=2.
	sizes := ps.DomainSizes(p.Combinations[0])
	idx := core.BitIndex(sizes, []int{0, 0})
	p.Bitmaps[0].Clear(idx)

	rows := [][]int{{0}}
	Extend(1, rows, p, ps)

	if rows[0][1] == 0 {
		t.Errorf("extension chose the already-covered value 0")
	}
}
