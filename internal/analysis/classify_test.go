package analysis

import (
	"encoding/json"
	"math"
	"testing"
)

func xs(vals ...any) Dataset {
	ds := make(Dataset, len(vals))
	for i, v := range vals {
		ds[i] = RowOf("x", v)
	}
	return ds
}

func TestClassifyNumericalColumn(t *testing.T) {
	cols := Classify(xs(1, 2, 3, 4, 100))
	if len(cols) != 1 {
		t.Fatalf("expected 1 column, got %d", len(cols))
	}
	c := cols[0]
	if c.Name != "x" || c.Type != Numerical {
		t.Fatalf("unexpected column: %+v", c)
	}
	if c.Stats == nil {
		t.Fatalf("numerical column without stats")
	}
	if c.Stats.Min != 1 || c.Stats.Max != 100 {
		t.Fatalf("min/max = %v/%v", c.Stats.Min, c.Stats.Max)
	}
	if c.Stats.Mean != 22 {
		t.Fatalf("mean = %v, want 22", c.Stats.Mean)
	}
	if c.Stats.Median != 3 {
		t.Fatalf("median = %v, want 3", c.Stats.Median)
	}
	if c.UniqueValues != 5 || c.MissingValues != 0 {
		t.Fatalf("unique/missing = %d/%d", c.UniqueValues, c.MissingValues)
	}
}

func TestClassifyMedianTakesUpperMiddle(t *testing.T) {
	c := Classify(xs(4, 1, 3, 2))[0]
	if c.Stats.Median != 3 {
		t.Fatalf("median = %v, want upper-middle 3", c.Stats.Median)
	}
}

func TestClassifyThreshold(t *testing.T) {
	cases := []struct {
		name string
		ds   Dataset
		want ColumnType
	}{
		{"all text", xs("a", "b", "c"), Categorical},
		{"exactly 80 percent numeric", xs("1", "2", "3", "4", "abc"), Categorical},
		{"90 percent numeric strings", xs("1", "2", "3", "4", "5", "6", "7", "8", "9", "n/a"), Numerical},
		{"mixed numbers and numeric strings", xs(1, "2.5", " 3 ", 4), Numerical},
		{"all missing", xs(nil, "", nil), Categorical},
		{"non-finite text is not numeric", xs("NaN", "Inf", "1"), Categorical},
	}
	for _, tc := range cases {
		cols := Classify(tc.ds)
		if got := cols[0].Type; got != tc.want {
			t.Errorf("%s: type = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestClassifyMissingAndUnique(t *testing.T) {
	ds := xs("red", "", nil, "blue", "red")
	c := Classify(ds)[0]
	if c.Type != Categorical {
		t.Fatalf("type = %s", c.Type)
	}
	if c.MissingValues != 2 {
		t.Fatalf("missing = %d, want 2", c.MissingValues)
	}
	if c.UniqueValues != 2 {
		t.Fatalf("unique = %d, want 2", c.UniqueValues)
	}
	if c.Stats != nil {
		t.Fatalf("categorical column has stats: %+v", c.Stats)
	}

	allMissing := Classify(xs(nil, ""))[0]
	if allMissing.UniqueValues != 0 || allMissing.MissingValues != 2 {
		t.Fatalf("all-missing column = %+v", allMissing)
	}
}

func TestClassifyUsesFirstRowSchema(t *testing.T) {
	ds := Dataset{
		RowOf("a", 1, "b", "x"),
		RowOf("a", 2, "z", 9),
	}
	cols := Classify(ds)
	if len(cols) != 2 || cols[0].Name != "a" || cols[1].Name != "b" {
		t.Fatalf("columns = %+v", cols)
	}
	if cols[1].MissingValues != 1 {
		t.Fatalf("absent key should count as missing, got %d", cols[1].MissingValues)
	}
}

func TestClassifyEmptyDataset(t *testing.T) {
	if cols := Classify(nil); len(cols) != 0 {
		t.Fatalf("expected no columns, got %+v", cols)
	}
}

func TestAnalyzerThresholdOption(t *testing.T) {
	a := New(Options{NumericThreshold: 0.5})
	if got := a.Classify(xs("1", "2", "3", "x"))[0].Type; got != Numerical {
		t.Fatalf("type = %s, want numerical with 0.5 threshold", got)
	}
}

func TestDroppedValues(t *testing.T) {
	if n := DroppedValues(xs(1, "two", "", nil, "3"), "x"); n != 1 {
		t.Fatalf("dropped = %d, want 1", n)
	}
}

func TestRowJSONKeepsKeyOrder(t *testing.T) {
	var ds Dataset
	in := `[{"zeta": 1, "alpha": "x", "mid": null, "flag": true}]`
	if err := json.Unmarshal([]byte(in), &ds); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	keys := ds.Columns()
	want := []string{"zeta", "alpha", "mid", "flag"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys = %v, want %v", keys, want)
		}
	}
	if f, ok := ds[0].Get("zeta").Float(); !ok || f != 1 {
		t.Fatalf("zeta = %v %v", f, ok)
	}
	if ds[0].Get("mid").Kind() != KindNull {
		t.Fatalf("mid should be null")
	}
	if ds[0].Get("flag").String() != "true" {
		t.Fatalf("flag = %q", ds[0].Get("flag").String())
	}
	out, err := json.Marshal(ds[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"zeta":1,"alpha":"x","mid":null,"flag":"true"}` {
		t.Fatalf("marshal = %s", out)
	}
}

func TestRowJSONRejectsNested(t *testing.T) {
	var ds Dataset
	if err := json.Unmarshal([]byte(`[{"a": {"b": 1}}]`), &ds); err == nil {
		t.Fatalf("expected error for nested cell")
	}
}

func TestClassifyDurationStrings(t *testing.T) {
	ds := xs("90 min", "120 min", "45 min", "3 Seasons", "100 min")
	cols := Classify(ds)
	if len(cols) != 1 || cols[0].Type != Numerical {
		t.Fatalf("cols = %+v, want numerical", cols)
	}
	if s := cols[0].Stats; s.Min != 3 || s.Max != 120 || s.Median != 90 {
		t.Fatalf("stats = %+v", s)
	}
}

func TestClassifyMeanNearFloatLimit(t *testing.T) {
	cols := Classify(xs(1e308, 1e308, 1e308))
	if got := cols[0].Stats.Mean; math.IsInf(got, 0) || math.Abs(got-1e308) > 1e294 {
		t.Fatalf("mean = %v, want 1e308", got)
	}
}

func TestValueParsing(t *testing.T) {
	prefixes := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12abc", 12, true},
		{"90 min", 90, true},
		{"\t3 Seasons", 3, true},
		{"-.5", -0.5, true},
		{"+7.", 7, true},
		{"1e", 1, true},
		{"2.5e-1x", 0.25, true},
		{"0x1p4", 0, true},
		{"1e999", 0, false},
		{"inf", 0, false},
		{"Infinity", 0, false},
		{".", 0, false},
		{"-", 0, false},
		{"abc 12", 0, false},
	}
	for _, c := range prefixes {
		f, ok := TextValue(c.in).Float()
		if ok != c.ok || f != c.want {
			t.Errorf("TextValue(%q).Float() = %v %v, want %v %v", c.in, f, ok, c.want, c.ok)
		}
	}
	if f, ok := TextValue(" -3.5e2 ").Float(); !ok || f != -350 {
		t.Errorf("-3.5e2 = %v %v", f, ok)
	}
	if _, ok := NumberValue(math.NaN()).Float(); ok {
		t.Errorf("NaN number should not parse")
	}
	if NumberValue(5).String() != "5" {
		t.Errorf("NumberValue(5).String() = %q", NumberValue(5).String())
	}
	if !TextValue("").Missing() || !Null.Missing() || TextValue(" ").Missing() {
		t.Errorf("missing rule mismatch")
	}
}
