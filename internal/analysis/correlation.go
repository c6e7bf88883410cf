package analysis

import (
	"math"
	"sort"

	"github.com/sourcegraph/conc/pool"
)

// Correlate returns the Pearson correlation of two columns.
func Correlate(ds Dataset, colA, colB string) float64 {
	var xs, ys []float64
	for _, row := range ds {
		x, okx := row.Get(colA).Float()
		y, oky := row.Get(colB).Float()
		if !okx || !oky {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return pearson(xs, ys)
}

// pearson is 0 for empty input or when either series has zero variance.
// The result is always finite and within [-1, 1].
func pearson(xs, ys []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	r, ok := pearsonRaw(xs, ys)
	if !ok {
		// sums overflowed or squares underflowed; correlation is scale
		// invariant, so retry on series divided by their largest magnitude
		r, ok = pearsonRaw(scaled(xs), scaled(ys))
		if !ok {
			return 0
		}
	}
	// rounding can push |r| a hair past 1
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r
}

func pearsonRaw(xs, ys []float64) (float64, bool) {
	n := float64(len(xs))
	var sx, sy float64
	for i := range xs {
		sx += xs[i]
		sy += ys[i]
	}
	mx, my := sx/n, sy/n
	var num, dxx, dyy float64
	for i := range xs {
		dx := xs[i] - mx
		dy := ys[i] - my
		num += dx * dy
		dxx += dx * dx
		dyy += dy * dy
	}
	if !isFinite(num) || !isFinite(dxx) || !isFinite(dyy) {
		return 0, false
	}
	if dxx == 0 || dyy == 0 {
		// a true zero variance, or squares that underflowed
		return 0, constant(xs) || constant(ys)
	}
	den := math.Sqrt(dxx * dyy)
	if den == 0 || !isFinite(den) {
		den = math.Sqrt(dxx) * math.Sqrt(dyy)
	}
	r := num / den
	return r, isFinite(r)
}

func constant(vals []float64) bool {
	for _, v := range vals {
		if v != vals[0] {
			return false
		}
	}
	return true
}

// scaled divides vals by their largest magnitude.
func scaled(vals []float64) []float64 {
	var m float64
	for _, v := range vals {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	out := make([]float64, len(vals))
	if m == 0 {
		return out
	}
	for i, v := range vals {
		out[i] = v / m
	}
	return out
}

// CorrMatrix holds the Pearson correlation of every ordered column pair,
// diagonal included.
type CorrMatrix struct {
	Columns []string    `json:"columns" yaml:"columns"`
	Values  [][]float64 `json:"values" yaml:"values"` // row-major, Values[i][j]
}

// CorrelationMatrix computes the matrix for columns sequentially.
func CorrelationMatrix(ds Dataset, columns []string) *CorrMatrix {
	return std.CorrelationMatrix(ds, columns)
}

// CorrelationMatrix computes every cell with Correlate. Cells are
// independent, so with Workers > 1 they are filled by a bounded pool.
// A zero-variance column gets 0 on its diagonal.
func (a *Analyzer) CorrelationMatrix(ds Dataset, columns []string) *CorrMatrix {
	n := len(columns)
	m := &CorrMatrix{Columns: append([]string(nil), columns...), Values: make([][]float64, n)}
	for i := range m.Values {
		m.Values[i] = make([]float64, n)
	}
	if a.opt.Workers <= 1 || n*n < 2 {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				m.Values[i][j] = Correlate(ds, columns[i], columns[j])
			}
		}
		return m
	}
	p := pool.New().WithMaxGoroutines(a.opt.Workers)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			i, j := i, j
			p.Go(func() {
				m.Values[i][j] = Correlate(ds, columns[i], columns[j])
			})
		}
	}
	p.Wait()
	return m
}

// NumericalColumns returns the names of numerical columns in order.
func NumericalColumns(cols []ColumnInfo) []string {
	var out []string
	for _, c := range cols {
		if c.IsNumerical() {
			out = append(out, c.Name)
		}
	}
	return out
}

// PairCorr is one off-diagonal cell of a matrix.
type PairCorr struct {
	A string  `json:"a" yaml:"a"`
	B string  `json:"b" yaml:"b"`
	R float64 `json:"r" yaml:"r"`
}

// TopPairs lists upper-triangle pairs by descending |r|, at most k (k <= 0 means all).
func (m *CorrMatrix) TopPairs(k int) []PairCorr {
	if m == nil {
		return nil
	}
	var pairs []PairCorr
	n := len(m.Columns)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, PairCorr{A: m.Columns[i], B: m.Columns[j], R: m.Values[i][j]})
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		ai, aj := math.Abs(pairs[i].R), math.Abs(pairs[j].R)
		if ai == aj {
			return pairs[i].A+pairs[i].B < pairs[j].A+pairs[j].B
		}
		return ai > aj
	})
	if k > 0 && len(pairs) > k {
		pairs = pairs[:k]
	}
	return pairs
}

// Strength buckets a coefficient for legends.
type Strength string

const (
	StrongPositive   Strength = "strong positive"
	ModeratePositive Strength = "moderate positive"
	WeakOrNone       Strength = "weak/none"
	ModerateNegative Strength = "moderate negative"
	StrongNegative   Strength = "strong negative"
)

// StrengthOf maps r onto the legend bands 0.7 / 0.3 / -0.3 / -0.7.
func StrengthOf(r float64) Strength {
	switch {
	case r >= 0.7:
		return StrongPositive
	case r >= 0.3:
		return ModeratePositive
	case r >= -0.3:
		return WeakOrNone
	case r >= -0.7:
		return ModerateNegative
	default:
		return StrongNegative
	}
}
