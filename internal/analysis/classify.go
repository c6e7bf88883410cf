package analysis

import (
	"math"
	"sort"
)

// ColumnType is the inferred type of a column.
type ColumnType string

const (
	Numerical   ColumnType = "numerical"
	Categorical ColumnType = "categorical"
)

// NumericStats holds summary statistics of a numerical column.
type NumericStats struct {
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Median float64 `json:"median" yaml:"median"`
}

// ColumnInfo is an immutable profile of one column.
type ColumnInfo struct {
	Name          string     `json:"name" yaml:"name"`
	Type          ColumnType `json:"type" yaml:"type"`
	UniqueValues  int        `json:"unique_values" yaml:"unique_values"`
	MissingValues int        `json:"missing_values" yaml:"missing_values"`
	// Stats is nil for categorical columns.
	Stats *NumericStats `json:"stats,omitempty" yaml:"stats,omitempty"`
}

// IsNumerical reports whether the column was classified numerical.
func (c ColumnInfo) IsNumerical() bool { return c.Type == Numerical }

// SpreadEstimate is the range/4 rule-of-thumb standard deviation shown in
// overview tables. It is 0 for categorical columns.
func (c ColumnInfo) SpreadEstimate() float64 {
	if c.Stats == nil {
		return 0
	}
	return c.Stats.Max/4 - c.Stats.Min/4
}

// Classify profiles every column of the first row using the default options.
func Classify(ds Dataset) []ColumnInfo { return std.Classify(ds) }

// Classify profiles every column named by the first row of ds, in that
// row's key order. An empty dataset yields no columns.
func (a *Analyzer) Classify(ds Dataset) []ColumnInfo {
	names := ds.Columns()
	out := make([]ColumnInfo, 0, len(names))
	for _, name := range names {
		out = append(out, a.classifyColumn(ds, name))
	}
	return out
}

func (a *Analyzer) classifyColumn(ds Dataset, name string) ColumnInfo {
	var (
		present int
		nums    []float64
		raw     = map[string]struct{}{}
	)
	for _, row := range ds {
		v := row.Get(name)
		if v.Missing() {
			continue
		}
		present++
		raw[v.String()] = struct{}{}
		if f, ok := v.Float(); ok {
			nums = append(nums, f)
		}
	}
	info := ColumnInfo{Name: name, MissingValues: len(ds) - present}
	if len(nums) > 0 && float64(len(nums)) > a.opt.NumericThreshold*float64(present) {
		info.Type = Numerical
		info.UniqueValues = countDistinct(nums)
		info.Stats = summarize(nums)
		return info
	}
	info.Type = Categorical
	info.UniqueValues = len(raw)
	return info
}

func countDistinct(nums []float64) int {
	seen := make(map[float64]struct{}, len(nums))
	for _, f := range nums {
		seen[f] = struct{}{}
	}
	return len(seen)
}

// summarize computes min, max, mean and the floor-index median of a
// non-empty slice. The median of an even-length slice is the upper-middle
// element; it is never averaged.
func summarize(nums []float64) *NumericStats {
	s := &NumericStats{Min: math.Inf(1), Max: math.Inf(-1)}
	var sum float64
	for _, f := range nums {
		if f < s.Min {
			s.Min = f
		}
		if f > s.Max {
			s.Max = f
		}
		sum += f
	}
	n := float64(len(nums))
	s.Mean = sum / n
	if !isFinite(s.Mean) {
		// the running sum overflowed; average the scaled terms instead
		s.Mean = 0
		for _, f := range nums {
			s.Mean += f / n
		}
	}
	sorted := sortedCopy(nums)
	s.Median = floorIndex(sorted, 0.5)
	return s
}

func sortedCopy(nums []float64) []float64 {
	cp := make([]float64, len(nums))
	copy(cp, nums)
	sort.Float64s(cp)
	return cp
}

// floorIndex returns sorted[floor(q*n)], clamped to the last element.
func floorIndex(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	i := int(math.Floor(q * float64(len(sorted))))
	if i >= len(sorted) {
		i = len(sorted) - 1
	}
	return sorted[i]
}

// DroppedValues counts present cells of column that do not parse as numbers.
func DroppedValues(ds Dataset, column string) int {
	var n int
	for _, row := range ds {
		v := row.Get(column)
		if v.Missing() {
			continue
		}
		if _, ok := v.Float(); !ok {
			n++
		}
	}
	return n
}

// numericColumn extracts the parseable values of column with their row index.
func numericColumn(ds Dataset, column string) (idx []int, vals []float64) {
	for i, row := range ds {
		if f, ok := row.Get(column).Float(); ok {
			idx = append(idx, i)
			vals = append(vals, f)
		}
	}
	return idx, vals
}
