// Package mlmodel loads the offline-trained prediction artifacts and
// evaluates the gradient-boosted win classifier. Training happens in a
// separate pipeline; this package only consumes its JSON exports:
//
//	columns.json - ordered feature column list fixed at training time
//	imputer.json - per-column training means for missing-value substitution
//	scaler.json  - per-column standardization parameters
//	model.json   - boosted tree ensemble and base score
package mlmodel

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Artifact file names within the model directory.
const (
	ColumnsFile = "columns.json"
	ImputerFile = "imputer.json"
	ScalerFile  = "scaler.json"
	ModelFile   = "model.json"
)

// teamIndicatorPrefix marks one-hot team-abbreviation columns. Indicator
// columns are excluded from imputation; they are always 0 or 1.
const teamIndicatorPrefix = "TEAM_ABBR_"

// Imputer holds the training-set means substituted for missing numeric values.
type Imputer struct {
	Means map[string]float64 `json:"means"`
}

// Scaler holds standardization parameters aligned with the trained column
// order: subtract Mean, divide by Std.
type Scaler struct {
	Mean []float64 `json:"mean"`
	Std  []float64 `json:"std"`
}

// Artifacts bundles everything the inference path needs. Immutable after Load.
type Artifacts struct {
	Columns    []string
	Imputer    Imputer
	Scaler     Scaler
	Classifier *Classifier

	colIndex map[string]int
}

// Load reads and validates all four artifacts from dir. Any failure leaves
// the prediction subsystem disabled; callers decide how to degrade.
func Load(dir string) (*Artifacts, error) {
	a := &Artifacts{}

	if err := readJSON(filepath.Join(dir, ColumnsFile), &a.Columns); err != nil {
		return nil, fmt.Errorf("load columns: %w", err)
	}
	if len(a.Columns) == 0 {
		return nil, fmt.Errorf("load columns: empty column list")
	}

	if err := readJSON(filepath.Join(dir, ImputerFile), &a.Imputer); err != nil {
		return nil, fmt.Errorf("load imputer: %w", err)
	}

	if err := readJSON(filepath.Join(dir, ScalerFile), &a.Scaler); err != nil {
		return nil, fmt.Errorf("load scaler: %w", err)
	}
	if len(a.Scaler.Mean) != len(a.Columns) || len(a.Scaler.Std) != len(a.Columns) {
		return nil, fmt.Errorf("load scaler: parameter length %d/%d does not match %d columns",
			len(a.Scaler.Mean), len(a.Scaler.Std), len(a.Columns))
	}

	var clf Classifier
	if err := readJSON(filepath.Join(dir, ModelFile), &clf); err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	if err := clf.validate(len(a.Columns)); err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	a.Classifier = &clf

	a.colIndex = make(map[string]int, len(a.Columns))
	for i, c := range a.Columns {
		a.colIndex[c] = i
	}

	return a, nil
}

// ColumnIndex returns the position of a trained column, or -1.
func (a *Artifacts) ColumnIndex(name string) int {
	if i, ok := a.colIndex[name]; ok {
		return i
	}
	return -1
}

// IsIndicator reports whether the column is a one-hot team indicator.
func IsIndicator(column string) bool {
	return len(column) > len(teamIndicatorPrefix) && column[:len(teamIndicatorPrefix)] == teamIndicatorPrefix
}

// IndicatorColumn returns the one-hot column name for a team abbreviation.
func IndicatorColumn(abbr string) string {
	return teamIndicatorPrefix + abbr
}

func readJSON(path string, dest interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return nil
}
