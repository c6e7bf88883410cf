package analysis

import "math"

// Outlier is a value outside the IQR fence together with its original row index.
type Outlier struct {
	Index int     `json:"index" yaml:"index"`
	Value float64 `json:"value" yaml:"value"`
}

// Fence describes the quartiles and bounds used for outlier detection.
type Fence struct {
	Q1    float64 `json:"q1" yaml:"q1"`
	Q3    float64 `json:"q3" yaml:"q3"`
	IQR   float64 `json:"iqr" yaml:"iqr"`
	Lower float64 `json:"lower" yaml:"lower"`
	Upper float64 `json:"upper" yaml:"upper"`
}

// Contains reports whether v lies inside the closed fence.
func (f Fence) Contains(v float64) bool { return v >= f.Lower && v <= f.Upper }

// DetectOutliers flags values of column outside the 1.5*IQR fence.
func DetectOutliers(ds Dataset, column string) []Outlier {
	return std.DetectOutliers(ds, column)
}

// DetectOutliers returns, in row order, every parseable value of column that
// lies strictly outside [Q1-k*IQR, Q3+k*IQR]. Q1 and Q3 are taken at the
// floor indices 0.25n and 0.75n of the sorted values, without interpolation.
// Unparseable cells are skipped; indices refer to the original rows.
func (a *Analyzer) DetectOutliers(ds Dataset, column string) []Outlier {
	idx, vals := numericColumn(ds, column)
	out := []Outlier{}
	if len(vals) == 0 {
		return out
	}
	f := a.fence(vals)
	for i, v := range vals {
		if !f.Contains(v) {
			out = append(out, Outlier{Index: idx[i], Value: v})
		}
	}
	return out
}

// OutlierFence returns the fence for column and false when it has no
// parseable values.
func (a *Analyzer) OutlierFence(ds Dataset, column string) (Fence, bool) {
	_, vals := numericColumn(ds, column)
	if len(vals) == 0 {
		return Fence{}, false
	}
	return a.fence(vals), true
}

func (a *Analyzer) fence(vals []float64) Fence {
	sorted := sortedCopy(vals)
	q1 := floorIndex(sorted, 0.25)
	q3 := floorIndex(sorted, 0.75)
	iqr := q3 - q1
	k := a.opt.OutlierFence
	return Fence{Q1: q1, Q3: q3, IQR: clampFinite(iqr), Lower: clampFinite(q1 - k*iqr), Upper: clampFinite(q3 + k*iqr)}
}

// clampFinite maps ±Inf onto the largest finite float64 of the same sign.
func clampFinite(f float64) float64 {
	switch {
	case math.IsInf(f, 1):
		return math.MaxFloat64
	case math.IsInf(f, -1):
		return -math.MaxFloat64
	}
	return f
}
