package mlmodel

import (
	"fmt"
	"math"
)

// Node is one split or leaf in a boosted tree. Leaf nodes have Left == -1.
// DefaultLeft controls the branch taken when the feature value is NaN.
type Node struct {
	Feature     int     `json:"feature"`
	Threshold   float64 `json:"threshold"`
	Left        int     `json:"left"`
	Right       int     `json:"right"`
	DefaultLeft bool    `json:"default_left"`
	Value       float64 `json:"value"`
}

// Tree is a single regressor in the ensemble, nodes indexed from the root.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Classifier is a binary gradient-boosted tree ensemble with a logistic
// output. It is immutable and safe for concurrent use.
type Classifier struct {
	BaseScore float64 `json:"base_score"`
	Trees     []Tree  `json:"trees"`
}

// PredictProbability returns the positive-class probability for a
// preprocessed feature vector. The margin is the base score plus the sum of
// leaf values across trees, squashed through the logistic function.
func (c *Classifier) PredictProbability(vector []float64) float64 {
	margin := c.BaseScore
	for i := range c.Trees {
		margin += c.Trees[i].evaluate(vector)
	}
	return 1.0 / (1.0 + math.Exp(-margin))
}

func (t *Tree) evaluate(vector []float64) float64 {
	idx := 0
	for {
		n := &t.Nodes[idx]
		if n.Left < 0 {
			return n.Value
		}
		v := vector[n.Feature]
		switch {
		case math.IsNaN(v):
			if n.DefaultLeft {
				idx = n.Left
			} else {
				idx = n.Right
			}
		case v < n.Threshold:
			idx = n.Left
		default:
			idx = n.Right
		}
	}
}

// validate checks structural soundness: feature indices in range, child
// indices in range, and at least one tree.
func (c *Classifier) validate(featureCount int) error {
	if len(c.Trees) == 0 {
		return fmt.Errorf("ensemble has no trees")
	}
	for ti, tree := range c.Trees {
		if len(tree.Nodes) == 0 {
			return fmt.Errorf("tree %d has no nodes", ti)
		}
		for ni, n := range tree.Nodes {
			if n.Left < 0 {
				continue // leaf
			}
			if n.Feature < 0 || n.Feature >= featureCount {
				return fmt.Errorf("tree %d node %d: feature index %d out of range", ti, ni, n.Feature)
			}
			if n.Left >= len(tree.Nodes) || n.Right < 0 || n.Right >= len(tree.Nodes) {
				return fmt.Errorf("tree %d node %d: child index out of range", ti, ni)
			}
		}
	}
	return nil
}
