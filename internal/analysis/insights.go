package analysis

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// AnalysisKind selects the family of insight sentences.
type AnalysisKind string

const (
	KindDistribution AnalysisKind = "distribution"
	KindCategorical  AnalysisKind = "categorical"
	KindOutliers     AnalysisKind = "outliers"
)

// InsightKinds lists the kinds in display order.
var InsightKinds = []AnalysisKind{KindDistribution, KindCategorical, KindOutliers}

// ErrUnknownKind is returned by ParseKind for unrecognized input.
var ErrUnknownKind = errors.New("unknown analysis kind")

// ParseKind normalizes user input into an AnalysisKind.
func ParseKind(s string) (AnalysisKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "distribution", "distributions", "dist":
		return KindDistribution, nil
	case "categorical", "categories", "cat":
		return KindCategorical, nil
	case "outliers", "outlier":
		return KindOutliers, nil
	}
	return "", fmt.Errorf("%w: %q (use distribution|categorical|outliers)", ErrUnknownKind, s)
}

const missingWarning = "Some columns contain missing values that may need handling."

// GenerateInsights renders the insight sentences of one kind using default options.
func GenerateInsights(ds Dataset, cols []ColumnInfo, kind AnalysisKind) string {
	return std.GenerateInsights(ds, cols, kind)
}

// GenerateInsights renders sentences for kind joined by single spaces. Every
// sentence ends with a period. The missing-value warning is appended for any
// kind when a column has missing values.
func (a *Analyzer) GenerateInsights(ds Dataset, cols []ColumnInfo, kind AnalysisKind) string {
	var out []string
	switch kind {
	case KindDistribution:
		out = a.distributionInsights(cols)
	case KindCategorical:
		out = categoricalInsights(cols)
	case KindOutliers:
		out = a.outlierInsights(ds, cols)
	}
	for _, c := range cols {
		if c.MissingValues > 0 {
			out = append(out, missingWarning)
			break
		}
	}
	return strings.Join(out, " ")
}

func (a *Analyzer) distributionInsights(cols []ColumnInfo) []string {
	var num []ColumnInfo
	for _, c := range cols {
		if c.IsNumerical() {
			num = append(num, c)
		}
	}
	if len(num) == 0 {
		return nil
	}
	out := []string{fmt.Sprintf("Dataset contains %d numerical features.", len(num))}
	for _, c := range num {
		if c.Stats == nil {
			continue
		}
		// halved so extreme columns cannot overflow the comparison
		skew := c.Stats.Mean/2 - c.Stats.Median/2
		if math.Abs(skew) > (c.Stats.Max/2-c.Stats.Min/2)*0.1 {
			dir := "left"
			if skew > 0 {
				dir = "right"
			}
			out = append(out, fmt.Sprintf("%s shows %s skewness (mean: %s, median: %s).",
				c.Name, dir, fixed(c.Stats.Mean, 2), fixed(c.Stats.Median, 2)))
		}
	}
	return out
}

func categoricalInsights(cols []ColumnInfo) []string {
	var cat []ColumnInfo
	for _, c := range cols {
		if c.Type == Categorical {
			cat = append(cat, c)
		}
	}
	out := []string{fmt.Sprintf("Dataset contains %d categorical features.", len(cat))}
	for _, c := range cat {
		if c.UniqueValues > 0 {
			out = append(out, fmt.Sprintf("%s has %d unique categories.", c.Name, c.UniqueValues))
		}
	}
	return out
}

func (a *Analyzer) outlierInsights(ds Dataset, cols []ColumnInfo) []string {
	var out []string
	for _, c := range cols {
		if !c.IsNumerical() {
			continue
		}
		found := a.DetectOutliers(ds, c.Name)
		if len(found) == 0 {
			continue
		}
		pct := float64(len(found)) / float64(len(ds)) * 100
		out = append(out, fmt.Sprintf("%s has %d outliers (%s%% of data).", c.Name, len(found), fixed(pct, 1)))
	}
	return out
}

// AllInsights composes the three insight kinds into a flat sentence list.
func (a *Analyzer) AllInsights(ds Dataset, cols []ColumnInfo) []string {
	texts := make([]string, 0, len(InsightKinds))
	for _, k := range InsightKinds {
		texts = append(texts, a.GenerateInsights(ds, cols, k))
	}
	return SplitInsights(texts...)
}

// SplitInsights joins non-empty texts and splits them back into sentences on
// ". " boundaries. Empty fragments are dropped and every sentence keeps its
// trailing period.
func SplitInsights(texts ...string) []string {
	var parts []string
	for _, t := range texts {
		if t = strings.TrimSpace(t); t != "" {
			parts = append(parts, t)
		}
	}
	var out []string
	for _, frag := range strings.Split(strings.Join(parts, " "), ". ") {
		frag = strings.TrimSpace(frag)
		if frag == "" {
			continue
		}
		if !strings.HasSuffix(frag, ".") {
			frag += "."
		}
		out = append(out, frag)
	}
	return out
}

var tips = []string{
	"Use histograms to understand the distribution of numerical features",
	"Check for outliers using box plots and statistical methods",
	"Analyze correlation to identify relationships between features",
	"Look for imbalanced categories that might affect model performance",
	"Handle missing values before building predictive models",
}

// Tips returns the fixed list of EDA hints shown next to insights.
func Tips() []string {
	return append([]string(nil), tips...)
}
