// Package render turns engine results into terminal tables and encoded reports.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/KaramelBytes/dataexplorer-cli/internal/analysis"
	"github.com/KaramelBytes/dataexplorer-cli/internal/datasets"
	"github.com/KaramelBytes/dataexplorer-cli/internal/utils"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Palette is the cycle of bar colors used for chart series.
var Palette = []string{
	"#3b82f6", "#10b981", "#f59e0b", "#ef4444",
	"#8b5cf6", "#ec4899", "#14b8a6", "#f97316",
}

// Colorize returns a copy of d with one palette color per entry.
func Colorize(d analysis.ChartData) analysis.ChartData {
	out := analysis.ChartData{
		Labels: append([]string{}, d.Labels...),
		Values: append([]int{}, d.Values...),
		Colors: make([]string, len(d.Labels)),
	}
	for i := range out.Colors {
		out.Colors[i] = Palette[i%len(Palette)]
	}
	return out
}

const barWidth = 30

func newTable(title string) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	if title != "" {
		t.SetTitle(title)
	}
	return t
}

// OverviewTable renders the dataset headline counts.
func OverviewTable(o analysis.Overview) string {
	t := newTable("Dataset Overview")
	t.AppendHeader(table.Row{"Rows", "Columns", "Numerical", "Categorical"})
	t.AppendRow(table.Row{o.Rows, o.Columns, o.Numerical, o.Categorical})
	return t.Render()
}

// ColumnsTable renders one line per column profile.
func ColumnsTable(cols []analysis.ColumnInfo) string {
	t := newTable("Column Details")
	t.AppendHeader(table.Row{"Column", "Type", "Unique", "Missing", "Min", "Max", "Mean", "Median", "Stats"})
	for _, c := range cols {
		if s := c.Stats; s != nil {
			t.AppendRow(table.Row{
				c.Name, c.Type, c.UniqueValues, c.MissingValues,
				num(s.Min), num(s.Max), num(s.Mean), num(s.Median),
				fmt.Sprintf("μ=%.2f, σ=%.2f", s.Mean, c.SpreadEstimate()),
			})
			continue
		}
		t.AppendRow(table.Row{c.Name, c.Type, c.UniqueValues, c.MissingValues, "", "", "", "", "-"})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	return t.Render()
}

// ChartTable renders a label/count series with proportional bars.
func ChartTable(title string, d analysis.ChartData) string {
	t := newTable(title)
	t.AppendHeader(table.Row{"Label", "Count", ""})
	if d.Len() == 0 {
		t.AppendRow(table.Row{"(no values)", 0, ""})
		return t.Render()
	}
	maxVal := 0
	for _, v := range d.Values {
		if v > maxVal {
			maxVal = v
		}
	}
	for i, label := range d.Labels {
		t.AppendRow(table.Row{label, d.Values[i], bar(d.Values[i], maxVal)})
	}
	t.AppendFooter(table.Row{"Total", d.Total(), ""})
	return t.Render()
}

func bar(v, maxVal int) string {
	if maxVal <= 0 || v <= 0 {
		return ""
	}
	n := v * barWidth / maxVal
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

// MatrixTable renders a correlation matrix with two-decimal cells.
func MatrixTable(m *analysis.CorrMatrix) string {
	t := newTable("Correlation Matrix")
	header := table.Row{""}
	for _, c := range m.Columns {
		header = append(header, c)
	}
	t.AppendHeader(header)
	for i, c := range m.Columns {
		row := table.Row{c}
		for j := range m.Columns {
			row = append(row, fmt.Sprintf("%.2f", m.Values[i][j]))
		}
		t.AppendRow(row)
	}
	return t.Render()
}

// LegendTable renders the correlation strength bands.
func LegendTable() string {
	t := newTable("")
	t.AppendHeader(table.Row{"Range", "Meaning"})
	t.AppendRow(table.Row{"0.7 to 1.0", "Strong Positive"})
	t.AppendRow(table.Row{"-0.3 to 0.3", "Weak/None"})
	t.AppendRow(table.Row{"-1.0 to -0.7", "Strong Negative"})
	return t.Render()
}

// OutliersTable renders the fence and every flagged row of a column.
func OutliersTable(column string, f analysis.Fence, found []analysis.Outlier) string {
	t := newTable("Outliers: " + column)
	t.AppendHeader(table.Row{"Row", "Value"})
	for _, o := range found {
		t.AppendRow(table.Row{o.Index, num(o.Value)})
	}
	t.AppendFooter(table.Row{"Q1/Q3", fmt.Sprintf("%s / %s (IQR %s)", num(f.Q1), num(f.Q3), num(f.IQR))})
	t.AppendFooter(table.Row{"Fence", num(f.Lower) + " to " + num(f.Upper)})
	return t.Render()
}

func num(f float64) string { return fmt.Sprintf("%.4g", f) }

// Output formats accepted by WriteReport.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// ErrUnsupportedFormat is returned for an unknown report format.
var ErrUnsupportedFormat = errors.New("unsupported format")

// EncodeReport serializes a report in the requested format.
func EncodeReport(rep *analysis.Report, format string) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatMarkdown, "md":
		return []byte(rep.Markdown()), nil
	case FormatJSON:
		return utils.PrettyJSON(rep)
	case FormatYAML, "yml":
		return utils.YAML(rep)
	}
	return nil, fmt.Errorf("%w: %s (use markdown|json|yaml)", ErrUnsupportedFormat, format)
}

// WriteReport encodes rep to w.
func WriteReport(w io.Writer, rep *analysis.Report, format string) error {
	b, err := EncodeReport(rep, format)
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// SamplesTable lists the bundled datasets with their shape.
func SamplesTable(samples []datasets.Sample) string {
	t := newTable("Sample Datasets")
	t.AppendHeader(table.Row{"Name", "Rows", "Columns", "Description"})
	for _, s := range samples {
		t.AppendRow(table.Row{s.Name, len(s.Rows), len(s.Rows.Columns()), s.Description})
	}
	return t.Render()
}
