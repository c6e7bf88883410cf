package analysis

import (
	"math"
	"sort"
	"strconv"
)

// ChartData is a label/count series. Colors is optional and only filled by
// presentation code.
type ChartData struct {
	Labels []string `json:"labels" yaml:"labels"`
	Values []int    `json:"values" yaml:"values"`
	Colors []string `json:"colors,omitempty" yaml:"colors,omitempty"`
}

// Len is the number of entries in the series.
func (c ChartData) Len() int { return len(c.Labels) }

// Total sums the counts.
func (c ChartData) Total() int {
	var n int
	for _, v := range c.Values {
		n += v
	}
	return n
}

func emptyChart() ChartData {
	return ChartData{Labels: []string{}, Values: []int{}}
}

// Distribution buckets column into the default number of bins.
func Distribution(ds Dataset, column string) ChartData {
	return std.Distribution(ds, column, 0)
}

// Distribution buckets the parseable values of column into bins equal-width
// half-open bins between the column min and max. bins <= 0 selects the
// configured bin count and larger counts are capped at MaxBins. Values equal
// to max land in the last bin; when every value is equal all of them land in
// bin 0.
func (a *Analyzer) Distribution(ds Dataset, column string, bins int) ChartData {
	if bins <= 0 {
		bins = a.opt.Bins
	}
	if bins > MaxBins {
		bins = MaxBins
	}
	_, vals := numericColumn(ds, column)
	if len(vals) == 0 {
		return emptyChart()
	}
	lo, hi := vals[0], vals[0]
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	n := float64(bins)
	width := (hi - lo) / n
	if !isFinite(width) {
		// hi-lo overflowed near the float64 limits
		width = hi/n - lo/n
	}

	out := ChartData{Labels: make([]string, bins), Values: make([]int, bins)}
	edge := func(i int) float64 {
		if i == bins {
			return hi
		}
		e := lo + float64(i)*width
		if !isFinite(e) {
			e = hi - float64(bins-i)*width
		}
		return e
	}
	for i := 0; i < bins; i++ {
		out.Labels[i] = fixed(edge(i), 1) + "-" + fixed(edge(i+1), 1)
	}
	for _, v := range vals {
		idx := 0
		switch {
		case width <= 0:
		case v == hi:
			idx = bins - 1
		default:
			pos := (v - lo) / width
			if !isFinite(pos) {
				pos = v/width - lo/width
			}
			idx = int(math.Floor(pos))
		}
		if idx >= bins {
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		out.Values[idx]++
	}
	return out
}

// fixed formats x with the given number of decimals. Exact ties round away
// from zero, so fixed(0.25, 1) reads 0.3 rather than 0.2. A tie is only
// representable when x*2^(digits+1) is an odd integer.
func fixed(x float64, digits int) string {
	if q := math.Ldexp(x, digits+1); isFinite(q) && q == math.Trunc(q) && math.Mod(q, 2) != 0 {
		p := math.Pow10(digits)
		x = math.Round(x*p) / p
	}
	return strconv.FormatFloat(x, 'f', digits, 64)
}

// CountCategories tallies column values using the default top-N cut.
func CountCategories(ds Dataset, column string) ChartData {
	return std.CountCategories(ds, column)
}

// CountCategories tallies each distinct stringified value of column, most
// frequent first. Ties keep first-seen order. Null cells count as "Unknown";
// empty strings are kept as their own category.
func (a *Analyzer) CountCategories(ds Dataset, column string) ChartData {
	type entry struct {
		label string
		count int
	}
	var order []*entry
	byLabel := map[string]*entry{}
	for _, row := range ds {
		v := row.Get(column)
		label := "Unknown"
		if v.Kind() != KindNull {
			label = v.String()
		}
		e, ok := byLabel[label]
		if !ok {
			e = &entry{label: label}
			byLabel[label] = e
			order = append(order, e)
		}
		e.count++
	}
	sort.SliceStable(order, func(i, j int) bool { return order[i].count > order[j].count })
	if len(order) > a.opt.TopCategories {
		order = order[:a.opt.TopCategories]
	}
	out := ChartData{Labels: make([]string, len(order)), Values: make([]int, len(order))}
	for i, e := range order {
		out.Labels[i] = e.label
		out.Values[i] = e.count
	}
	return out
}
