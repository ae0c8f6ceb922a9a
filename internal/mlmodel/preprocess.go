package mlmodel

import (
	"errors"
	"fmt"
	"math"

	"github.com/gamechanger/nba-stats-api/internal/models"
)

// ErrMalformedRecord is returned when a stat record carries no usable
// numeric fields at all. Missing individual fields are not an error; they
// are filled by the imputer.
var ErrMalformedRecord = errors.New("stat record has no numeric fields")

// Preprocess maps a raw team stat record onto the trained feature space:
// the team abbreviation expands into its one-hot indicator column, columns
// are reindexed to the trained list, missing numeric values take the
// training-set mean, extra fields are dropped, and the full row is
// standardized. Pure function of the record and the fitted artifacts;
// calling it twice on the same record yields the same vector.
func (a *Artifacts) Preprocess(rec *models.TeamStatRecord) ([]float64, error) {
	if rec == nil || len(rec.Stats) == 0 {
		return nil, fmt.Errorf("preprocess: %w", ErrMalformedRecord)
	}

	indicator := IndicatorColumn(rec.TeamAbbr)
	vector := make([]float64, len(a.Columns))

	for i, col := range a.Columns {
		if IsIndicator(col) {
			if col == indicator {
				vector[i] = 1
			}
			continue
		}

		v, ok := rec.Get(col)
		if !ok || math.IsNaN(v) {
			v = a.Imputer.Means[col] // zero when the imputer has no mean either
		}
		vector[i] = v
	}

	for i := range vector {
		std := a.Scaler.Std[i]
		if std == 0 {
			std = 1
		}
		vector[i] = (vector[i] - a.Scaler.Mean[i]) / std
	}

	return vector, nil
}
