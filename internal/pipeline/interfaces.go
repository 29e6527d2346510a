package pipeline

import "github.com/sgl-umons/rabbit/internal/model"

// Normalizer turns raw events into the activity sequence. An empty
// result is a valid outcome, not an error.
type Normalizer interface {
	Normalize(events []model.Event) ([]model.Activity, error)
}

// Extractor computes the feature record for a contributor's activities.
// It is never called with an empty activity sequence.
type Extractor interface {
	Extract(contributor string, activities []model.Activity) model.FeatureRecord
}
