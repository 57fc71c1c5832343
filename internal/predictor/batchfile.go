// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package predictor

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pace-engine/pkg/types"
)

// BatchFile is the on-disk representation of a batch prediction run: the
// runner inputs, the computed results, and a summary. A coach can keep one
// file per squad and re-run it whenever the roster changes.
type BatchFile struct {
	Runners []BatchEntry  `yaml:"runners"`
	Summary *BatchSummary `yaml:"summary,omitempty"`
}

// BatchEntry pairs one runner's input with its prediction outcome. Name is
// optional and only used for display.
type BatchEntry struct {
	Name   string  `yaml:"name,omitempty"`
	VO2Max float64 `yaml:"vo2_max"`
	Gender string  `yaml:"gender"`
	Age    int     `yaml:"age"`

	Result *types.PredictionResult `yaml:"result,omitempty"`
	Error  string                  `yaml:"error,omitempty"`
}

// BatchSummary stores run statistics and a timestamp.
type BatchSummary struct {
	Total     int       `yaml:"total"`
	Failed    int       `yaml:"failed"`
	Timestamp time.Time `yaml:"timestamp"`
}

// ReadBatchFile loads a batch file from disk.
func ReadBatchFile(path string) (*BatchFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}
	var bf BatchFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("parsing batch file: %w", err)
	}
	return &bf, nil
}

// WriteBatchFile saves a batch file, typically after RunBatch has filled in
// results and summary.
func WriteBatchFile(path string, bf *BatchFile) error {
	data, err := yaml.Marshal(bf)
	if err != nil {
		return fmt.Errorf("marshaling batch file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// RunBatch predicts every entry in place and attaches a summary. Entries
// with a degenerate VO2 max record their error and count as failed; the
// rest of the batch still runs.
func RunBatch(bf *BatchFile) {
	failed := 0
	for i := range bf.Runners {
		entry := &bf.Runners[i]
		in := types.PredictionInput{
			VO2Max: entry.VO2Max,
			Gender: types.ParseGender(entry.Gender),
			Age:    entry.Age,
		}
		result, err := Predict(in)
		if err != nil {
			entry.Result = nil
			entry.Error = err.Error()
			failed++
			continue
		}
		entry.Result = &result
		entry.Error = ""
	}
	bf.Summary = &BatchSummary{
		Total:     len(bf.Runners),
		Failed:    failed,
		Timestamp: time.Now(),
	}
}
