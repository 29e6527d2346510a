// Package predict scores feature records and assigns a raw label.
//
// The pipeline treats predictors as black boxes behind the Predictor
// interface; the bundled random forest is one implementation, and tests
// substitute deterministic fakes.
package predict

import "github.com/sgl-umons/rabbit/internal/model"

// Raw labels the bundled model emits. The orchestrator owns the mapping
// from this vocabulary onto the closed UserType set.
const (
	LabelBot   = "bot"
	LabelHuman = "human"
)

// Predictor classifies a contributor from their feature record.
// Confidence is the model's probability for the returned label, in [0,1].
type Predictor interface {
	Predict(features model.FeatureRecord) (label string, confidence float64, err error)
}
