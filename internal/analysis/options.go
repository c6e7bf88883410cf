package analysis

// Options controls the tunable constants of the engine. The zero value of any
// field selects its default.
type Options struct {
	// Bins is the histogram bin count.
	Bins int
	// TopCategories truncates category counts.
	TopCategories int
	// NumericThreshold is the share of present values that must parse as
	// numbers for a column to be numerical. The comparison is strict.
	NumericThreshold float64
	// OutlierFence is the IQR multiplier of the outlier fence.
	OutlierFence float64
	// Workers bounds the goroutines used for correlation matrix cells.
	// 1 computes cells sequentially.
	Workers int
}

// MaxBins caps the histogram bin count.
const MaxBins = 1000

const (
	defaultBins             = 10
	defaultTopCategories    = 15
	defaultNumericThreshold = 0.8
	defaultOutlierFence     = 1.5
)

// DefaultOptions returns the reference constants.
func DefaultOptions() Options {
	return Options{
		Bins:             defaultBins,
		TopCategories:    defaultTopCategories,
		NumericThreshold: defaultNumericThreshold,
		OutlierFence:     defaultOutlierFence,
		Workers:          1,
	}
}

func (o Options) withDefaults() Options {
	if o.Bins <= 0 {
		o.Bins = defaultBins
	}
	if o.Bins > MaxBins {
		o.Bins = MaxBins
	}
	if o.TopCategories <= 0 {
		o.TopCategories = defaultTopCategories
	}
	if o.NumericThreshold <= 0 || o.NumericThreshold > 1 {
		o.NumericThreshold = defaultNumericThreshold
	}
	if o.OutlierFence <= 0 {
		o.OutlierFence = defaultOutlierFence
	}
	if o.Workers <= 0 {
		o.Workers = 1
	}
	return o
}

// Analyzer runs the engine with a fixed set of options. It holds no mutable
// state and is safe for concurrent use.
type Analyzer struct {
	opt Options
}

// New returns an Analyzer; unset option fields take their defaults.
func New(opt Options) *Analyzer {
	return &Analyzer{opt: opt.withDefaults()}
}

// Options returns the effective options.
func (a *Analyzer) Options() Options { return a.opt }

var std = New(DefaultOptions())
