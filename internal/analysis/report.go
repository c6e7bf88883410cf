package analysis

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Overview is the headline shape of a dataset.
type Overview struct {
	Rows        int `json:"rows" yaml:"rows"`
	Columns     int `json:"columns" yaml:"columns"`
	Numerical   int `json:"numerical" yaml:"numerical"`
	Categorical int `json:"categorical" yaml:"categorical"`
}

// Summarize counts rows and column types.
func Summarize(ds Dataset, cols []ColumnInfo) Overview {
	o := Overview{Rows: len(ds), Columns: len(cols)}
	for _, c := range cols {
		if c.IsNumerical() {
			o.Numerical++
		} else {
			o.Categorical++
		}
	}
	return o
}

// ColumnOutliers groups the outliers found in one numerical column.
type ColumnOutliers struct {
	Column   string    `json:"column" yaml:"column"`
	Fence    Fence     `json:"fence" yaml:"fence"`
	Outliers []Outlier `json:"outliers" yaml:"outliers"`
}

// Report is a full exploratory pass over one dataset.
type Report struct {
	ID            string               `json:"id" yaml:"id"`
	Name          string               `json:"name" yaml:"name"`
	GeneratedAt   time.Time            `json:"generated_at" yaml:"generated_at"`
	Overview      Overview             `json:"overview" yaml:"overview"`
	Columns       []ColumnInfo         `json:"columns" yaml:"columns"`
	Distributions map[string]ChartData `json:"distributions" yaml:"distributions"`
	Categories    map[string]ChartData `json:"categories" yaml:"categories"`
	Corr          *CorrMatrix          `json:"correlation,omitempty" yaml:"correlation,omitempty"`
	Outliers      []ColumnOutliers     `json:"outliers" yaml:"outliers"`
	Insights      []string             `json:"insights" yaml:"insights"`
	Tips          []string             `json:"tips" yaml:"tips"`
	// Dropped counts present cells of numerical columns that failed numeric parse.
	Dropped map[string]int `json:"dropped_values,omitempty" yaml:"dropped_values,omitempty"`
}

// Analyze runs every engine component over ds with default options.
func Analyze(name string, ds Dataset) *Report { return std.Analyze(name, ds) }

// Analyze classifies ds and then computes histograms for numerical columns,
// category counts for categorical ones, the correlation matrix when there
// are at least two numerical columns, outliers and insights.
func (a *Analyzer) Analyze(name string, ds Dataset) *Report {
	cols := a.Classify(ds)
	rep := &Report{
		ID:            uuid.NewString(),
		Name:          name,
		GeneratedAt:   time.Now().UTC(),
		Overview:      Summarize(ds, cols),
		Columns:       cols,
		Distributions: map[string]ChartData{},
		Categories:    map[string]ChartData{},
		Outliers:      []ColumnOutliers{},
		Tips:          Tips(),
	}
	for _, c := range cols {
		if !c.IsNumerical() {
			rep.Categories[c.Name] = a.CountCategories(ds, c.Name)
			continue
		}
		rep.Distributions[c.Name] = a.Distribution(ds, c.Name, 0)
		if f, ok := a.OutlierFence(ds, c.Name); ok {
			rep.Outliers = append(rep.Outliers, ColumnOutliers{
				Column:   c.Name,
				Fence:    f,
				Outliers: a.DetectOutliers(ds, c.Name),
			})
		}
		if n := DroppedValues(ds, c.Name); n > 0 {
			if rep.Dropped == nil {
				rep.Dropped = map[string]int{}
			}
			rep.Dropped[c.Name] = n
		}
	}
	if num := NumericalColumns(cols); len(num) >= 2 {
		rep.Corr = a.CorrelationMatrix(ds, num)
	}
	rep.Insights = a.AllInsights(ds, cols)
	if rep.Insights == nil {
		rep.Insights = []string{}
	}
	return rep
}

// Markdown renders a compact, prompt-friendly summary of the report.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if r.Name != "" {
		b.WriteString(fmt.Sprintf("Dataset: %s\n", r.Name))
	}
	b.WriteString(fmt.Sprintf("Rows: %d\n", r.Overview.Rows))
	b.WriteString(fmt.Sprintf("Columns: %d (numerical %d, categorical %d)\n\n",
		r.Overview.Columns, r.Overview.Numerical, r.Overview.Categorical))

	b.WriteString("[SCHEMA]\n")
	for _, c := range r.Columns {
		b.WriteString(fmt.Sprintf("- %s: %s (unique %d, missing %d)", safeName(c.Name), c.Type, c.UniqueValues, c.MissingValues))
		if s := c.Stats; s != nil {
			b.WriteString(fmt.Sprintf(" — min %.4g, max %.4g, mean %.4g, median %.4g", s.Min, s.Max, s.Mean, s.Median))
		}
		b.WriteString("\n")
	}

	if len(r.Distributions) > 0 {
		b.WriteString("\n[DISTRIBUTIONS]\n")
		for _, c := range r.Columns {
			d, ok := r.Distributions[c.Name]
			if !ok {
				continue
			}
			b.WriteString(fmt.Sprintf("- %s: %s\n", safeName(c.Name), seriesLine(d)))
		}
	}
	if len(r.Categories) > 0 {
		b.WriteString("\n[CATEGORIES]\n")
		for _, c := range r.Columns {
			d, ok := r.Categories[c.Name]
			if !ok {
				continue
			}
			b.WriteString(fmt.Sprintf("- %s: %s\n", safeName(c.Name), seriesLine(d)))
		}
	}
	if r.Corr != nil && len(r.Corr.Columns) >= 2 {
		b.WriteString("\n[CORRELATIONS]\n")
		for _, p := range r.Corr.TopPairs(10) {
			b.WriteString(fmt.Sprintf("- %s ~ %s: r=%.3f (%s)\n", p.A, p.B, p.R, StrengthOf(p.R)))
		}
	}
	if len(r.Outliers) > 0 {
		b.WriteString("\n[OUTLIERS]\n")
		for _, o := range r.Outliers {
			b.WriteString(fmt.Sprintf("- %s: %d outside [%.4g, %.4g]", safeName(o.Column), len(o.Outliers), o.Fence.Lower, o.Fence.Upper))
			for i, x := range o.Outliers {
				if i == 0 {
					b.WriteString(" — ")
				} else {
					b.WriteString(", ")
				}
				b.WriteString(fmt.Sprintf("row %d=%s", x.Index, formatNumber(x.Value)))
			}
			b.WriteString("\n")
		}
	}
	if len(r.Insights) > 0 {
		b.WriteString("\n[INSIGHTS]\n")
		for _, s := range r.Insights {
			b.WriteString("- ")
			b.WriteString(s)
			b.WriteString("\n")
		}
	}
	if len(r.Dropped) > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, c := range r.Columns {
			if n := r.Dropped[c.Name]; n > 0 {
				b.WriteString(fmt.Sprintf("- %s: %d non-numeric values ignored\n", safeName(c.Name), n))
			}
		}
	}
	return b.String()
}

func seriesLine(d ChartData) string {
	if d.Len() == 0 {
		return "(no values)"
	}
	parts := make([]string, d.Len())
	for i := range d.Labels {
		parts[i] = fmt.Sprintf("%s(%d)", safeVal(d.Labels[i]), d.Values[i])
	}
	return strings.Join(parts, ", ")
}

func safeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "(unnamed)"
	}
	return s
}

func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }
