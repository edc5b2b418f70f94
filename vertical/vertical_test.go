package vertical

import (
	"testing"

	"github.com/katalvlaran/covarray/core"
	"github.com/katalvlaran/covarray/pi"
)

func mustPrepare(t *testing.T, names []string, params map[string][]any) *core.ParameterSet {
	t.Helper()
	ps, err := core.Prepare(names, params)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	return ps
}

func TestExtend_AddsRowsForAllUncoveredTuples(t *testing.T) {
	ps := mustPrepare(t, []string{"p0", "p1"}, map[string][]any{
		"p0": {0, 1},
		"p1": {0, 1},
	})
	p := pi.Construct(1, 2, ps)

	// no existing rows: every one of the 4 tuples needs its own row.
	rows := Extend(1, nil, p, ps)

	if len(rows) != 4 {
		t.Fatalf("got %d rows; want 4", len(rows))
	}
	seen := map[[2]int]bool{}
	for _, row := range rows {
		seen[[2]int{row[0], row[1]}] = true
		for _, v := range row {
			if v == core.DontCare {
				t.Fatalf("row %v still has a don't-care cell", row)
			}
		}
	}
	if len(seen) != 4 {
		t.Fatalf("only %d distinct (p0,p1) pairs covered; want 4", len(seen))
	}
}

func TestExtend_AbsorbsIntoDontCareRow(t *testing.T) {
	ps := mustPrepare(t, []string{"p0", "p1"}, map[string][]any{
		"p0": {0, 1},
		"p1": {0, 1},
	})
	p := pi.Construct(1, 2, ps)

	rows := [][]int{{core.DontCare, core.DontCare}}
	rows = Extend(1, rows, p, ps)

	// one don't-care row can absorb exactly one tuple before the remaining
	// three must spawn new rows.
	if len(rows) != 4 {
		t.Fatalf("got %d rows; want 4 (1 absorbed + 3 new)", len(rows))
	}
}

func TestExtend_ResolvesAllDontCares(t *testing.T) {
	ps := mustPrepare(t, []string{"p0", "p1", "p2"}, map[string][]any{
		"p0": {0, 1},
		"p1": {0, 1},
		"p2": {0, 1},
	})
	p := pi.Construct(2, 2, ps)
	rows := [][]int{{0, 0, core.DontCare}, {1, 1, core.DontCare}}
	rows = Extend(2, rows, p, ps)

	for _, row := range rows {
		for _, v := range row {
			if v == core.DontCare {
				t.Fatalf("row %v has unresolved don't-care after Extend", row)
			}
		}
	}
}

func TestMatchesCanAbsorbApply(t *testing.T) {
	row := []int{0, core.DontCare, 1}
	combination := []int{0, 1}
	values := []int{0, 5}

	if matches(row, combination, values) {
		t.Errorf("matches should be false: position 1 is don't-care, not 5")
	}
	if !canAbsorb(row, combination, values) {
		t.Errorf("canAbsorb should be true: position 1 is don't-care")
	}
	apply(row, combination, values)
	if row[0] != 0 || row[1] != 5 {
		t.Errorf("apply result = %v; want [0 5 1]", row)
	}
}
