package analysis

import (
	"math"
	"testing"
)

func pairs(a, b []any) Dataset {
	ds := make(Dataset, len(a))
	for i := range a {
		ds[i] = RowOf("a", a[i], "b", b[i])
	}
	return ds
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestCorrelate(t *testing.T) {
	cases := []struct {
		name string
		a, b []any
		want float64
	}{
		{"perfect positive", []any{1, 2, 3, 4}, []any{2, 4, 6, 8}, 1},
		{"perfect negative", []any{1, 2, 3, 4}, []any{8, 6, 4, 2}, -1},
		{"zero variance", []any{1, 2, 3}, []any{5, 5, 5}, 0},
		{"no valid pairs", []any{"x", "y"}, []any{1, 2}, 0},
		{"drops unparseable rows", []any{1, 2, "n/a", 3}, []any{1, 2, 100, 3}, 1},
	}
	for _, tc := range cases {
		got := Correlate(pairs(tc.a, tc.b), "a", "b")
		if !approx(got, tc.want) {
			t.Errorf("%s: r = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCorrelateSymmetricAndBounded(t *testing.T) {
	ds := pairs([]any{1, 5, 2, 8, 3, 9}, []any{3, 1, 4, 1, 5, 9})
	ab := Correlate(ds, "a", "b")
	ba := Correlate(ds, "b", "a")
	if ab != ba {
		t.Fatalf("asymmetric: %v vs %v", ab, ba)
	}
	if ab < -1 || ab > 1 {
		t.Fatalf("r out of range: %v", ab)
	}
}

func TestCorrelateSelf(t *testing.T) {
	ds := pairs([]any{1, 5, 2, 8}, []any{7, 7, 7, 7})
	if r := Correlate(ds, "a", "a"); !approx(r, 1) {
		t.Fatalf("self correlation = %v", r)
	}
	if r := Correlate(ds, "b", "b"); r != 0 {
		t.Fatalf("zero-variance self correlation = %v, want 0", r)
	}
}

func TestCorrelateAbsentColumn(t *testing.T) {
	ds := pairs([]any{1, 2}, []any{3, 4})
	if r := Correlate(ds, "a", "missing"); r != 0 {
		t.Fatalf("r = %v", r)
	}
	if r := Correlate(nil, "a", "b"); r != 0 {
		t.Fatalf("empty r = %v", r)
	}
}

func TestCorrelationMatrixSequentialMatchesParallel(t *testing.T) {
	var ds Dataset
	for i := 0; i < 30; i++ {
		ds = append(ds, RowOf("a", i, "b", i*i%7, "c", 30-i, "d", 4))
	}
	cols := []string{"a", "b", "c", "d"}
	seq := New(Options{Workers: 1}).CorrelationMatrix(ds, cols)
	par := New(Options{Workers: 4}).CorrelationMatrix(ds, cols)
	for i := range cols {
		for j := range cols {
			if seq.Values[i][j] != par.Values[i][j] {
				t.Fatalf("cell %d,%d: %v vs %v", i, j, seq.Values[i][j], par.Values[i][j])
			}
		}
	}
	if !approx(seq.Values[0][0], 1) {
		t.Fatalf("diagonal a = %v", seq.Values[0][0])
	}
	if seq.Values[3][3] != 0 {
		t.Fatalf("constant column diagonal = %v, want 0", seq.Values[3][3])
	}
	if !approx(seq.Values[0][2], -1) {
		t.Fatalf("a~c = %v", seq.Values[0][2])
	}
}

func TestTopPairsAndStrength(t *testing.T) {
	m := &CorrMatrix{
		Columns: []string{"a", "b", "c"},
		Values: [][]float64{
			{1, 0.2, -0.9},
			{0.2, 1, 0.5},
			{-0.9, 0.5, 1},
		},
	}
	top := m.TopPairs(2)
	if len(top) != 2 || top[0].A != "a" || top[0].B != "c" || top[1].R != 0.5 {
		t.Fatalf("top = %+v", top)
	}
	cases := map[float64]Strength{
		0.7: StrongPositive, 0.5: ModeratePositive, 0: WeakOrNone,
		-0.3: WeakOrNone, -0.5: ModerateNegative, -0.71: StrongNegative,
	}
	for r, want := range cases {
		if got := StrengthOf(r); got != want {
			t.Errorf("StrengthOf(%v) = %s, want %s", r, got, want)
		}
	}
}

func TestCorrelateStaysFiniteNearFloatLimits(t *testing.T) {
	big := []any{1e200, -1e200, 0}
	if got := Correlate(pairs(big, big), "a", "b"); !approx(got, 1) {
		t.Fatalf("self correlation of large values = %v, want 1", got)
	}
	neg := []any{-1e200, 1e200, 0}
	if got := Correlate(pairs(big, neg), "a", "b"); !approx(got, -1) {
		t.Fatalf("r = %v, want -1", got)
	}
	huge := []any{1.7e308, 1.7e308, -1.7e308, 1}
	other := []any{1, 2, 3, 4}
	got := Correlate(pairs(huge, other), "a", "b")
	if math.IsNaN(got) || got < -1 || got > 1 {
		t.Fatalf("r = %v outside [-1, 1]", got)
	}
	tiny := []any{1e-200, 2e-200, 3e-200}
	if got := Correlate(pairs(tiny, []any{1, 2, 3}), "a", "b"); !approx(got, 1) {
		t.Fatalf("r of tiny values = %v, want 1", got)
	}
}
