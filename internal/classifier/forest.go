package classifier

import (
	"encoding/json"
	"fmt"

	randomforest "github.com/malaschitz/randomForest"
)

const binaryClasses = 2

// RandomForest wraps a trained random forest with two classes.
type RandomForest struct {
	forest *randomforest.Forest
	info   Info
}

func decodeForest(raw json.RawMessage, dim int) (*randomforest.Forest, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: missing forest", ErrInvalidForest)
	}
	forest := &randomforest.Forest{}
	if err := json.Unmarshal(raw, forest); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidForest, err)
	}
	if err := checkForest(forest, dim); err != nil {
		return nil, err
	}
	// training data is not needed for inference
	forest.Data = randomforest.ForestData{}
	return forest, nil
}

func checkForest(forest *randomforest.Forest, dim int) error {
	if len(forest.Trees) == 0 {
		return fmt.Errorf("%w: no trees", ErrInvalidForest)
	}
	if forest.NTrees == 0 {
		forest.NTrees = len(forest.Trees)
	}
	if forest.NTrees > len(forest.Trees) {
		return fmt.Errorf("%w: NTrees %d exceeds %d trees", ErrInvalidForest, forest.NTrees, len(forest.Trees))
	}
	if forest.Classes != binaryClasses {
		return fmt.Errorf("%w: %d classes, want %d", ErrInvalidForest, forest.Classes, binaryClasses)
	}
	if forest.Features != dim {
		return fmt.Errorf("%w: forest has %d features, want %d", ErrDimension, forest.Features, dim)
	}
	for i := 0; i < forest.NTrees; i++ {
		if err := checkBranch(&forest.Trees[i].Root, forest.Classes, dim); err != nil {
			return fmt.Errorf("%w: tree %d: %v", ErrInvalidForest, i, err)
		}
	}
	return nil
}

// checkBranch rejects nodes that would index outside the input or the vote
// vector when the tree is evaluated.
func checkBranch(b *randomforest.Branch, classes, dim int) error {
	if b.IsLeaf {
		if len(b.LeafValue) != classes {
			return fmt.Errorf("leaf has %d values, want %d", len(b.LeafValue), classes)
		}
		for _, v := range b.LeafValue {
			if v < 0 {
				return fmt.Errorf("leaf value %v", v)
			}
		}
		return nil
	}
	if b.Attribute < 0 || b.Attribute >= dim {
		return fmt.Errorf("split on attribute %d, have %d", b.Attribute, dim)
	}
	if b.Branch0 == nil || b.Branch1 == nil {
		return fmt.Errorf("split on attribute %d is missing a branch", b.Attribute)
	}
	if err := checkBranch(b.Branch0, classes, dim); err != nil {
		return err
	}
	return checkBranch(b.Branch1, classes, dim)
}

// PredictProba returns the share of tree votes for each class.
func (m *RandomForest) PredictProba(x []float64) ([]float64, error) {
	if len(x) != m.forest.Features {
		return nil, fmt.Errorf("%w: got %d features, want %d", ErrDimension, len(x), m.forest.Features)
	}

	votes := m.forest.Vote(x)
	total := 0.0
	for _, v := range votes {
		total += v
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: forest cast no votes", ErrInvalidForest)
	}

	proba := make([]float64, len(votes))
	for i, v := range votes {
		proba[i] = v / total
	}
	return proba, nil
}

func (m *RandomForest) Describe() Info {
	return m.info
}
