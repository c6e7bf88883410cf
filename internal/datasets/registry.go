package datasets

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/KaramelBytes/dataexplorer-cli/internal/analysis"
)

// Sample is a named, in-memory dataset bundled with the binary.
type Sample struct {
	Name        string
	Description string
	Rows        analysis.Dataset
}

var registry = map[string]Sample{}

// ErrUnknownDataset indicates no sample is registered under the requested name.
var ErrUnknownDataset = errors.New("unknown dataset")

// Register adds a sample; a later registration with the same name replaces it.
func Register(s Sample) {
	registry[strings.ToLower(s.Name)] = s
}

// Get looks up a sample by case-insensitive name.
func Get(name string) (Sample, error) {
	s, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Sample{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownDataset, name, strings.Join(Names(), ", "))
	}
	return s, nil
}

// Names lists registered samples in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for _, s := range registry {
		out = append(out, s.Name)
	}
	sort.Strings(out)
	return out
}

// All returns every registered sample sorted by name.
func All() []Sample {
	out := make([]Sample, 0, len(registry))
	for _, n := range Names() {
		out = append(out, registry[strings.ToLower(n)])
	}
	return out
}

func init() {
	Register(Sample{Name: "iris", Description: irisDescription, Rows: irisRows()})
	Register(Sample{Name: "netflix", Description: netflixDescription, Rows: netflixRows()})
}
