// Package features derives the fixed-width behavioral feature vector a
// predictor consumes from one contributor's activity sequence.
package features

import "github.com/sgl-umons/rabbit/internal/model"

// Aggregate feature names. Timing gaps are measured in hours between
// consecutive activities; the Gini coefficients capture how evenly the
// contributor spreads work across repositories and over time. Highly
// regular timing (low gap dispersion) is a strong bot signal.
const (
	FeatureActivityCount   = "activity_count"
	FeatureActivityKinds   = "activity_kinds"
	FeatureRepositoryCount = "repository_count"
	FeatureRepositoryGini  = "repository_gini"
	FeatureGapMeanHours    = "gap_mean_hours"
	FeatureGapMedianHours  = "gap_median_hours"
	FeatureGapStdHours     = "gap_std_hours"
	FeatureGapGini         = "gap_gini"
)

var aggregateNames = []string{
	FeatureActivityCount,
	FeatureActivityKinds,
	FeatureRepositoryCount,
	FeatureRepositoryGini,
	FeatureGapMeanHours,
	FeatureGapMedianHours,
	FeatureGapStdHours,
	FeatureGapGini,
}

// Names returns the full feature schema in fixed order: the aggregate
// metrics followed by a count and share feature per activity kind.
// Every FeatureRecord the extractor produces is keyed by exactly this set.
func Names() []string {
	names := make([]string, 0, len(aggregateNames)+2*len(model.AllActivityKinds))
	names = append(names, aggregateNames...)
	for _, kind := range model.AllActivityKinds {
		names = append(names, countName(kind), shareName(kind))
	}
	return names
}

func countName(kind model.ActivityKind) string {
	return string(kind) + "_count"
}

func shareName(kind model.ActivityKind) string {
	return string(kind) + "_share"
}
