package logic

import "errors"

// Prediction pipeline error taxonomy. Handlers map these to HTTP statuses;
// ErrModelUnavailable and ErrDegeneratePrediction never surface as errors to
// clients; they degrade to the flagged 50/50 fallback instead.
var (
	ErrInvalidParam         = errors.New("invalid request parameter")
	ErrDataUnavailable      = errors.New("no data available in any tier")
	ErrPreprocessing        = errors.New("malformed stat record")
	ErrDegeneratePrediction = errors.New("classifier produced a degenerate probability pair")
	ErrModelUnavailable     = errors.New("prediction model unavailable")
)
