// SPDX-License-Identifier: MIT

package sampler

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Report holds every mixing rate of a run, ordered as configured.
type Report struct {
	RunID   uuid.UUID    `json:"run_id"`
	Created time.Time    `json:"created"`
	Seed    int64        `json:"seed,omitempty"`
	Sizes   []SizeResult `json:"sizes"`
}

// SizeResult groups the rates of one network size.
type SizeResult struct {
	Size      int              `json:"size"`
	Producers []ProducerResult `json:"producers"`
}

// ProducerResult holds one rate per sample, in sample order.
type ProducerResult struct {
	Name        string `json:"name"`
	MixingRates []Rate `json:"mixing_rates"`
}

// Stats summarizes a ProducerResult over its feasible samples.
type Stats struct {
	Feasible   int
	Infeasible int
	Mean       float64 // NaN when nothing was feasible
	Min, Max   float64
}

// Stats computes the summary.
func (p ProducerResult) Stats() Stats {
	s := Stats{Mean: math.NaN(), Min: math.Inf(1), Max: math.Inf(-1)}
	var sum float64
	for _, r := range p.MixingRates {
		x := float64(r)
		if math.IsInf(x, 0) || math.IsNaN(x) {
			s.Infeasible++
			continue
		}
		s.Feasible++
		sum += x
		s.Min = math.Min(s.Min, x)
		s.Max = math.Max(s.Max, x)
	}
	if s.Feasible > 0 {
		s.Mean = sum / float64(s.Feasible)
	}

	return s
}

// Rate is a mixing rate whose JSON form also covers +Inf, -Inf and NaN
// ("Infinity", "-Infinity", "NaN").
type Rate float64

// MarshalJSON implements json.Marshaler.
func (r Rate) MarshalJSON() ([]byte, error) {
	x := float64(r)
	switch {
	case math.IsNaN(x):
		return []byte(`"NaN"`), nil
	case math.IsInf(x, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(x, -1):
		return []byte(`"-Infinity"`), nil
	}

	return strconv.AppendFloat(nil, x, 'g', -1, 64), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Rate) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case `"NaN"`:
		*r = Rate(math.NaN())
		return nil
	case `"Infinity"`:
		*r = Rate(math.Inf(1))
		return nil
	case `"-Infinity"`:
		*r = Rate(math.Inf(-1))
		return nil
	}
	x, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("sampler: rate %s: %w", b, err)
	}
	*r = Rate(x)

	return nil
}

// WriteReport writes r to dir/sample_<k+1>.json, where k counts the entries
// of dir whose names contain "sample". dir is created if missing. An
// existing file is never overwritten. Returns the written path.
func WriteReport(dir string, r *Report) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("WriteReport: %w", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("WriteReport: %w", err)
	}
	k := 0
	for _, e := range entries {
		if strings.Contains(e.Name(), "sample") {
			k++
		}
	}

	data, err := json.MarshalIndent(r, "", "    ")
	if err != nil {
		return "", fmt.Errorf("WriteReport: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("sample_%d.json", k+1))
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("WriteReport: %w", err)
	}
	if _, err = f.Write(append(data, '\n')); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("WriteReport: %w", err)
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("WriteReport: %w", err)
	}

	return path, nil
}

// ReadReport loads a report written by WriteReport.
func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ReadReport: %w", err)
	}
	var r Report
	if err = json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("ReadReport: %s: %w", path, err)
	}

	return &r, nil
}
