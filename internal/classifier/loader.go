package classifier

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	apperrors "fraudscore/internal/errors"
)

// LoadFile reads a model artifact from path. features is the column order the
// caller will feed the model; an artifact declaring a different order is
// rejected.
func LoadFile(path string, features []string) (Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrModelLoad, err)
	}
	defer f.Close()

	return Load(f, path, features)
}

// Load decodes a model artifact from r. source is recorded in the model Info.
func Load(r io.Reader, source string, features []string) (Model, error) {
	var art Artifact
	if err := json.NewDecoder(r).Decode(&art); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrModelLoad, fmt.Errorf("decode %s: %w", source, err))
	}

	m, err := build(art, source, features)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrModelLoad, fmt.Errorf("%s: %w", source, err))
	}
	return m, nil
}

func build(art Artifact, source string, features []string) (Model, error) {
	if err := checkFeatures(art.Features, features); err != nil {
		return nil, err
	}

	info := Info{Format: art.Format, Features: len(features), Source: source}
	switch art.Format {
	case FormatLogisticRegression:
		lin, err := newLinear(art, len(features))
		if err != nil {
			return nil, err
		}
		info.Probabilistic = true
		return &LogisticRegression{linear: lin, info: info}, nil
	case FormatLinearLabel:
		lin, err := newLinear(art, len(features))
		if err != nil {
			return nil, err
		}
		return &LinearLabel{linear: lin, info: info}, nil
	case FormatRandomForest:
		forest, err := decodeForest(art.Forest, len(features))
		if err != nil {
			return nil, err
		}
		info.Probabilistic = true
		return &RandomForest{forest: forest, info: info}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, art.Format)
	}
}

func checkFeatures(declared, expected []string) error {
	if len(declared) == 0 {
		return nil
	}
	if len(declared) != len(expected) {
		return fmt.Errorf("%w: model has %d features, want %d", ErrFeatureMismatch, len(declared), len(expected))
	}
	for i := range declared {
		if declared[i] != expected[i] {
			return fmt.Errorf("%w: column %d is %q, want %q", ErrFeatureMismatch, i, declared[i], expected[i])
		}
	}
	return nil
}
