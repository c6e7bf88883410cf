package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execCmd runs the root command with args and returns its stdout.
func execCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Reset bound variables; cobra keeps them across invocations
	datasetName, distBins, corrTop, outAll = "", 0, 5, false
	insKind, insNoTips = "", false
	repFormat, repOutput = "markdown", ""
	if f := reportCmd.Flags().Lookup("format"); f != nil {
		f.Changed = false
	}
	loadConfig()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// runCmd is a helper to execute the root command with args.
func runCmd(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execCmd(t, args...)
	if err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
	return out
}

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestCLI_DatasetsAndProfile(t *testing.T) {
	isolateHome(t)

	out := runCmd(t, "datasets")
	if !strings.Contains(out, "iris") || !strings.Contains(out, "netflix") {
		t.Fatalf("datasets output missing samples:\n%s", out)
	}

	out = runCmd(t, "profile", "-d", "netflix")
	for _, want := range []string{"release_year", "numerical", "categorical", "18"} {
		if !strings.Contains(out, want) {
			t.Fatalf("profile output missing %q:\n%s", want, out)
		}
	}
}

func TestCLI_Charts(t *testing.T) {
	isolateHome(t)

	out := runCmd(t, "distribution", "sepal_length", "--bins", "4")
	if !strings.Contains(strings.ToLower(out), "total") || !strings.Contains(out, "20") {
		t.Fatalf("distribution output:\n%s", out)
	}

	out = runCmd(t, "categories", "type", "-d", "netflix")
	if !strings.Contains(out, "Movie") || !strings.Contains(out, "TV Show") {
		t.Fatalf("categories output:\n%s", out)
	}

	if _, err := execCmd(t, "distribution", "no_such_column"); err == nil {
		t.Fatalf("expected error for unknown column")
	}
	if _, err := execCmd(t, "distribution", "sepal_length", "--bins", "5000"); err == nil {
		t.Fatalf("expected error for a bin count above the limit")
	}
	out = runCmd(t, "distribution", "sepal_length", "--bins", "1000")
	if !strings.Contains(out, "20") {
		t.Fatalf("distribution at the bin limit:\n%s", out)
	}
}

func TestCLI_CorrelateAndOutliers(t *testing.T) {
	isolateHome(t)

	out := runCmd(t, "correlate", "petal_length", "petal_length")
	if !strings.Contains(out, "r=1.0000") {
		t.Fatalf("self correlation output:\n%s", out)
	}

	out = runCmd(t, "correlate", "--top", "3")
	if !strings.Contains(strings.ToLower(out), "correlation matrix") || !strings.Contains(out, "Strong Positive") {
		t.Fatalf("matrix output:\n%s", out)
	}

	if _, err := execCmd(t, "correlate", "petal_length"); err == nil {
		t.Fatalf("expected error for a single column")
	}

	out = runCmd(t, "outliers", "--all")
	if !strings.Contains(strings.ToLower(out), "outliers: sepal_length") {
		t.Fatalf("outliers output:\n%s", out)
	}
}

func TestCLI_Insights(t *testing.T) {
	isolateHome(t)

	out := runCmd(t, "insights", "-d", "netflix", "--kind", "categorical")
	if !strings.Contains(out, "Dataset contains 5 categorical features.") {
		t.Fatalf("insights output:\n%s", out)
	}
	if !strings.Contains(out, "Tips:") {
		t.Fatalf("tips missing:\n%s", out)
	}

	out = runCmd(t, "insights", "--no-tips")
	if strings.Contains(out, "Tips:") {
		t.Fatalf("tips should be omitted:\n%s", out)
	}

	if _, err := execCmd(t, "insights", "--kind", "bogus"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestCLI_ReportToFile(t *testing.T) {
	home := isolateHome(t)
	path := filepath.Join(home, "reports", "netflix.json")

	out := runCmd(t, "report", "-d", "netflix", "-f", "json", "-o", path)
	if !strings.Contains(out, "✓ Wrote report to") {
		t.Fatalf("report output:\n%s", out)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var rep struct {
		Name     string   `json:"name"`
		Insights []string `json:"insights"`
	}
	if err := json.Unmarshal(b, &rep); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if rep.Name != "netflix" || len(rep.Insights) == 0 {
		t.Fatalf("unexpected report: %+v", rep)
	}

	out = runCmd(t, "report")
	if !strings.HasPrefix(out, "[DATASET SUMMARY]") {
		t.Fatalf("markdown report:\n%s", out)
	}

	if _, err := execCmd(t, "report", "-f", "pdf"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
	if _, err := execCmd(t, "profile", "-d", "titanic"); err == nil {
		t.Fatalf("expected error for unknown dataset")
	}
}

func TestCLI_ConfigSetAndShow(t *testing.T) {
	home := isolateHome(t)

	runCmd(t, "config", "set", "bin_count", "7")
	runCmd(t, "config", "set", "default_dataset", "NETFLIX")
	if _, err := os.Stat(filepath.Join(home, ".dataexplorer", "config.yaml")); err != nil {
		t.Fatalf("config not saved: %v", err)
	}

	out := runCmd(t, "config", "show")
	if !strings.Contains(out, "bin_count: 7") || !strings.Contains(out, "default_dataset: netflix") {
		t.Fatalf("config show:\n%s", out)
	}

	out = runCmd(t, "profile")
	if !strings.Contains(out, "release_year") {
		t.Fatalf("default dataset from config not used:\n%s", out)
	}

	if _, err := execCmd(t, "config", "set", "bin_count", "0"); err == nil {
		t.Fatalf("expected error for invalid bin_count")
	}
	if _, err := execCmd(t, "config", "set", "bin_count", "5000"); err == nil {
		t.Fatalf("expected error for bin_count above the limit")
	}

	runCmd(t, "config", "set", "numeric_threshold", "1")
	out = runCmd(t, "config", "show")
	if !strings.Contains(out, "numeric_threshold: 1.000") {
		t.Fatalf("numeric_threshold 1 not kept:\n%s", out)
	}
	for _, bad := range []string{"0", "1.5", "x"} {
		if _, err := execCmd(t, "config", "set", "numeric_threshold", bad); err == nil {
			t.Fatalf("expected error for numeric_threshold %s", bad)
		}
	}
	if _, err := execCmd(t, "config", "set", "no_such_key", "x"); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}
