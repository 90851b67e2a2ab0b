package classifier

import (
	"encoding/json"
	"testing"

	randomforest "github.com/malaschitz/randomForest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "fraudscore/internal/errors"
	"fraudscore/internal/services/scoring"
)

func uniformRow(v float64) []float64 {
	x := make([]float64, scoring.FeatureCount)
	for i := range x {
		x[i] = v
	}
	return x
}

// trainSeparable fits a forest where every column separates the classes at 0.5.
func trainSeparable(t *testing.T) *randomforest.Forest {
	t.Helper()

	var xs [][]float64
	var ys []int
	for i := 0; i < 200; i++ {
		v := float64(i) / 200
		xs = append(xs, uniformRow(v))
		if v >= 0.5 {
			ys = append(ys, 1)
		} else {
			ys = append(ys, 0)
		}
	}

	forest := &randomforest.Forest{}
	forest.Data = randomforest.ForestData{X: xs, Class: ys}
	forest.Train(25)
	return forest
}

func TestRandomForest_LoadAndPredict(t *testing.T) {
	trained := trainSeparable(t)
	raw, err := json.Marshal(trained)
	require.NoError(t, err)

	m, err := loadArtifact(t, map[string]interface{}{
		"format":   FormatRandomForest,
		"features": featureNames,
		"forest":   json.RawMessage(raw),
	})
	require.NoError(t, err)

	rf, ok := m.(*RandomForest)
	require.True(t, ok, "got %T", m)
	assert.True(t, rf.Describe().Probabilistic)
	assert.Equal(t, FormatRandomForest, rf.Describe().Format)

	fraud, err := rf.PredictProba(uniformRow(0.95))
	require.NoError(t, err)
	require.Len(t, fraud, 2)
	assert.Greater(t, fraud[1], 0.5)
	assert.InDelta(t, 1.0, fraud[0]+fraud[1], 1e-9)

	legit, err := rf.PredictProba(uniformRow(0.05))
	require.NoError(t, err)
	assert.Less(t, legit[1], 0.5)

	again, err := rf.PredictProba(uniformRow(0.95))
	require.NoError(t, err)
	assert.Equal(t, fraud, again)
}

func TestRandomForest_RejectsMulticlass(t *testing.T) {
	trained := trainSeparable(t)
	trained.Classes = 3
	raw, err := json.Marshal(trained)
	require.NoError(t, err)

	_, err = loadArtifact(t, map[string]interface{}{
		"format": FormatRandomForest,
		"forest": json.RawMessage(raw),
	})
	assert.ErrorIs(t, err, ErrInvalidForest)
}

func TestRandomForest_DimensionMismatch(t *testing.T) {
	trained := trainSeparable(t)
	raw, err := json.Marshal(trained)
	require.NoError(t, err)

	m, err := loadArtifact(t, map[string]interface{}{
		"format": FormatRandomForest,
		"forest": json.RawMessage(raw),
	})
	require.NoError(t, err)

	_, err = m.(*RandomForest).PredictProba(uniformRow(0.5)[:5])
	assert.ErrorIs(t, err, ErrDimension)
}

func TestRandomForest_RejectsCorruptTrees(t *testing.T) {
	leaf := `{"IsLeaf": true, "LeafValue": [0.25, 0.75]}`
	tests := []struct {
		name string
		root string
	}{
		{"attribute out of range", `{"IsLeaf": false, "Attribute": 40}`},
		{"negative attribute", `{"IsLeaf": false, "Attribute": -1, "Branch0": ` + leaf + `, "Branch1": ` + leaf + `}`},
		{"missing branch", `{"IsLeaf": false, "Attribute": 3, "Branch0": ` + leaf + `}`},
		{"short leaf", `{"IsLeaf": false, "Attribute": 3, "Branch0": ` + leaf + `, "Branch1": {"IsLeaf": true, "LeafValue": [1]}}`},
		{"empty leaf", `{"IsLeaf": true}`},
		{"negative vote", `{"IsLeaf": true, "LeafValue": [1.5, -0.5]}`},
		{"deep corruption", `{"IsLeaf": false, "Attribute": 3, "Branch0": ` + leaf +
			`, "Branch1": {"IsLeaf": false, "Attribute": 12, "Branch0": ` + leaf + `, "Branch1": ` + leaf + `}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forest := `{"Classes": 2, "Features": 12, "NTrees": 1, "Trees": [{"Root": ` + tt.root + `}]}`

			m, err := loadArtifact(t, map[string]interface{}{
				"format": FormatRandomForest,
				"forest": json.RawMessage(forest),
			})

			assert.Nil(t, m)
			assert.ErrorIs(t, err, ErrInvalidForest)
			assert.ErrorIs(t, err, apperrors.ErrModelLoad)
		})
	}
}

func TestRandomForest_HandBuiltTree(t *testing.T) {
	forest := `{"Classes": 2, "Features": 12, "Trees": [{"Root": {"IsLeaf": false, "Attribute": 6, "Value": 0,
		"Branch0": {"IsLeaf": true, "LeafValue": [0.9, 0.1]},
		"Branch1": {"IsLeaf": true, "LeafValue": [0.2, 0.8]}}}]}`

	m, err := loadArtifact(t, map[string]interface{}{
		"format": FormatRandomForest,
		"forest": json.RawMessage(forest),
	})
	require.NoError(t, err)

	row := make([]float64, 12)
	proba, err := m.(*RandomForest).PredictProba(row)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, proba[1], 1e-12)

	row[6] = 500
	proba, err = m.(*RandomForest).PredictProba(row)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, proba[1], 1e-12)
}
