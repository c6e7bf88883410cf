package analysis

import (
	"strings"
	"testing"
)

var metricsRows = Dataset{
	RowOf("group", "A", "score", 10.0, "temp", 70, "note", "first"),
	RowOf("group", "A", "score", 11.0, "temp", 71, "note", "second"),
	RowOf("group", "B", "score", 9.5, "temp", 69, "note", ""),
	RowOf("group", "B", "score", 10.5, "temp", 75, "note", "fourth"),
	RowOf("group", "A", "score", 9.8, "temp", 74, "note", "fifth"),
	RowOf("group", "B", "score", "n/a", "temp", 73, "note", "sixth"),
	RowOf("group", "A", "score", 8.8, "temp", 68, "note", "seventh"),
	RowOf("group", "B", "score", 9.7, "temp", 76, "note", "eighth"),
	RowOf("group", "A", "score", 10.1, "temp", 72, "note", "ninth"),
	RowOf("group", "B", "score", 50.0, "temp", 95, "note", "tenth"),
}

func TestAnalyzeAndMarkdown(t *testing.T) {
	rep := New(Options{Workers: 2}).Analyze("metrics", metricsRows)
	if rep.ID == "" {
		t.Fatalf("report id not set")
	}
	if rep.Overview.Rows != 10 || rep.Overview.Columns != 4 {
		t.Fatalf("overview = %+v", rep.Overview)
	}
	if rep.Overview.Numerical != 2 || rep.Overview.Categorical != 2 {
		t.Fatalf("overview = %+v", rep.Overview)
	}
	if _, ok := rep.Distributions["score"]; !ok {
		t.Fatalf("missing score distribution")
	}
	if _, ok := rep.Categories["group"]; !ok {
		t.Fatalf("missing group categories")
	}
	if rep.Corr == nil || len(rep.Corr.Columns) != 2 {
		t.Fatalf("expected 2x2 correlation matrix, got %+v", rep.Corr)
	}
	if rep.Dropped["score"] != 1 {
		t.Fatalf("dropped = %v", rep.Dropped)
	}
	var scoreOutliers []Outlier
	for _, o := range rep.Outliers {
		if o.Column == "score" {
			scoreOutliers = o.Outliers
		}
	}
	if len(scoreOutliers) != 1 || scoreOutliers[0].Index != 9 || scoreOutliers[0].Value != 50 {
		t.Fatalf("score outliers = %+v", scoreOutliers)
	}

	md := rep.Markdown()
	for _, want := range []string{
		"[DATASET SUMMARY]",
		"Dataset: metrics",
		"Rows: 10",
		"- score: numerical",
		"- group: categorical (unique 2, missing 0)",
		"[DISTRIBUTIONS]",
		"[CATEGORIES]",
		"- group: A(5), B(5)",
		"[CORRELATIONS]",
		"score ~ temp",
		"[OUTLIERS]",
		"row 9=50",
		"[INSIGHTS]",
		"score has 1 outliers (10.0% of data).",
		"[NOTES]",
		"score: 1 non-numeric values ignored",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestAnalyzeEmptyDataset(t *testing.T) {
	rep := Analyze("empty", nil)
	if rep.Overview.Rows != 0 || len(rep.Columns) != 0 || rep.Corr != nil {
		t.Fatalf("unexpected report: %+v", rep)
	}
	if rep.Insights == nil || len(rep.Insights) != 1 {
		t.Fatalf("insights = %q", rep.Insights)
	}
	md := rep.Markdown()
	if !strings.Contains(md, "Columns: 0") {
		t.Fatalf("markdown = %s", md)
	}
}
