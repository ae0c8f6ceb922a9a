package mlmodel

import (
	"math"
	"testing"
)

// stump builds a depth-1 tree splitting on feature f at threshold t.
func stump(f int, t, left, right float64) Tree {
	return Tree{Nodes: []Node{
		{Feature: f, Threshold: t, Left: 1, Right: 2, DefaultLeft: true},
		{Feature: -1, Left: -1, Right: -1, Value: left},
		{Feature: -1, Left: -1, Right: -1, Value: right},
	}}
}

func TestPredictProbability(t *testing.T) {
	tests := []struct {
		name   string
		clf    Classifier
		vector []float64
		want   float64
	}{
		{
			name:   "base score only",
			clf:    Classifier{BaseScore: 0, Trees: []Tree{stump(0, 0, 0, 0)}},
			vector: []float64{1},
			want:   0.5,
		},
		{
			name:   "positive margin",
			clf:    Classifier{BaseScore: 0, Trees: []Tree{stump(0, 0, -1, 1)}},
			vector: []float64{5},
			want:   1.0 / (1.0 + math.Exp(-1)),
		},
		{
			name:   "negative margin",
			clf:    Classifier{BaseScore: 0, Trees: []Tree{stump(0, 0, -1, 1)}},
			vector: []float64{-5},
			want:   1.0 / (1.0 + math.Exp(1)),
		},
		{
			name: "margins accumulate across trees",
			clf: Classifier{BaseScore: 0.5, Trees: []Tree{
				stump(0, 0, -1, 1),
				stump(1, 0, -0.25, 0.25),
			}},
			vector: []float64{1, 1},
			want:   1.0 / (1.0 + math.Exp(-1.75)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.clf.PredictProbability(tt.vector)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("PredictProbability() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTreeEvaluateRouting(t *testing.T) {
	tree := stump(0, 10, -1, 1)

	if got := tree.evaluate([]float64{9.99}); got != -1 {
		t.Errorf("below threshold should go left, got leaf %v", got)
	}
	if got := tree.evaluate([]float64{10}); got != 1 {
		t.Errorf("at threshold should go right, got leaf %v", got)
	}
}

func TestTreeEvaluateNaNFollowsDefault(t *testing.T) {
	left := stump(0, 10, -1, 1)
	if got := left.evaluate([]float64{math.NaN()}); got != -1 {
		t.Errorf("NaN with default_left should go left, got leaf %v", got)
	}

	right := stump(0, 10, -1, 1)
	right.Nodes[0].DefaultLeft = false
	if got := right.evaluate([]float64{math.NaN()}); got != 1 {
		t.Errorf("NaN with default_left=false should go right, got leaf %v", got)
	}
}

func TestClassifierValidate(t *testing.T) {
	tests := []struct {
		name         string
		clf          Classifier
		featureCount int
		wantErr      bool
	}{
		{
			name:         "valid",
			clf:          Classifier{Trees: []Tree{stump(0, 0, -1, 1)}},
			featureCount: 1,
		},
		{
			name:         "no trees",
			clf:          Classifier{},
			featureCount: 1,
			wantErr:      true,
		},
		{
			name:         "feature out of range",
			clf:          Classifier{Trees: []Tree{stump(3, 0, -1, 1)}},
			featureCount: 2,
			wantErr:      true,
		},
		{
			name: "child index out of range",
			clf: Classifier{Trees: []Tree{{Nodes: []Node{
				{Feature: 0, Threshold: 0, Left: 5, Right: 6},
			}}}},
			featureCount: 1,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.clf.validate(tt.featureCount)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
