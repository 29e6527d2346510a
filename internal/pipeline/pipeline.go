// Package pipeline orchestrates contributor classification: normalize
// raw events into activities, derive features, and run a predictor.
package pipeline

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/sgl-umons/rabbit/internal/features"
	"github.com/sgl-umons/rabbit/internal/log"
	"github.com/sgl-umons/rabbit/internal/model"
	"github.com/sgl-umons/rabbit/internal/normalize"
	"github.com/sgl-umons/rabbit/internal/predict"
)

var (
	// ErrNoContributor is returned when the contributor identifier is empty.
	ErrNoContributor = errors.New("contributor must not be empty")

	// ErrMultipleContributors is returned when the supplied events belong
	// to more than one actor. Classification is strictly per contributor.
	ErrMultipleContributors = errors.New("events span multiple contributors")
)

// Pipeline classifies one contributor per call. It holds no per-call
// state: a single Pipeline is safe for concurrent Classify calls.
type Pipeline struct {
	normalizer Normalizer
	extractor  Extractor
	labels     LabelMapping
}

// Option is a functional option for configuring a Pipeline.
type Option func(*Pipeline)

// WithNormalizer replaces the default ghmap-backed normalizer.
func WithNormalizer(n Normalizer) Option {
	return func(p *Pipeline) {
		p.normalizer = n
	}
}

// WithExtractor replaces the default feature extractor.
func WithExtractor(x Extractor) Option {
	return func(p *Pipeline) {
		p.extractor = x
	}
}

// WithLabelMapping replaces the raw-label → UserType mapping.
func WithLabelMapping(m LabelMapping) Option {
	return func(p *Pipeline) {
		p.labels = m
	}
}

// New creates a Pipeline. Without options it uses the packaged mapping
// tables, the standard extractor, and the bundled model's label mapping;
// failure to load the mapping tables is a configuration error.
func New(opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		extractor: features.New(),
		labels:    DefaultLabelMapping(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.normalizer == nil {
		n, err := normalize.New()
		if err != nil {
			return nil, err
		}
		p.normalizer = n
	}
	return p, nil
}

// Classify runs the full pipeline for one contributor.
//
// Zero derived activities is not an error: the contributor comes back as
// Unknown with no confidence and no features. Everything else that goes
// wrong — mapping tables, payload decoding, the predictor — propagates
// unmodified; there are no retries and no fallbacks.
func (p *Pipeline) Classify(contributor string, events []model.Event, predictor predict.Predictor) (model.ContributorResult, error) {
	if contributor == "" {
		return model.ContributorResult{}, ErrNoContributor
	}
	if err := validateSingleActor(events); err != nil {
		return model.ContributorResult{}, err
	}

	activities, err := p.normalizer.Normalize(events)
	if err != nil {
		return model.ContributorResult{}, err
	}
	if len(activities) == 0 {
		log.Debug("no activities derived", "contributor", contributor, "events", len(events))
		return model.ContributorResult{
			Contributor: contributor,
			UserType:    model.UserTypeUnknown,
			Features:    model.FeatureRecord{},
		}, nil
	}

	record := p.extractor.Extract(contributor, activities)

	label, confidence, err := predictor.Predict(record)
	if err != nil {
		return model.ContributorResult{}, err
	}
	if confidence < 0 || confidence > 1 {
		return model.ContributorResult{}, fmt.Errorf("predictor returned confidence %v outside [0,1]", confidence)
	}

	return model.ContributorResult{
		Contributor: contributor,
		UserType:    p.labels.UserType(label),
		Confidence:  model.NewConfidence(confidence),
		Features:    maps.Clone(record),
	}, nil
}

// validateSingleActor fails fast when the event set mixes actors, before
// any mapping or feature work happens.
func validateSingleActor(events []model.Event) error {
	var seen string
	for _, ev := range events {
		login := ev.Actor.Login
		if login == "" {
			continue
		}
		if seen == "" {
			seen = login
			continue
		}
		if !strings.EqualFold(seen, login) {
			return fmt.Errorf("%w: %q and %q", ErrMultipleContributors, seen, login)
		}
	}
	return nil
}
