package pipeline

import (
	"github.com/sgl-umons/rabbit/internal/model"
	"github.com/sgl-umons/rabbit/internal/predict"
)

// LabelMapping maps a predictor's raw label vocabulary onto the closed
// UserType set. The mapping must be exhaustive for the predictor in use:
// raw labels without an entry collapse to Invalid rather than passing
// through unrecognized.
type LabelMapping map[string]model.UserType

// DefaultLabelMapping covers the bundled forest model's vocabulary.
func DefaultLabelMapping() LabelMapping {
	return LabelMapping{
		predict.LabelBot:   model.UserTypeBot,
		predict.LabelHuman: model.UserTypeHuman,
	}
}

// UserType resolves a raw label. Unmapped labels and entries pointing
// outside the closed set both resolve to Invalid.
func (m LabelMapping) UserType(raw string) model.UserType {
	if t, ok := m[raw]; ok && t.Valid() {
		return t
	}
	return model.UserTypeInvalid
}
