package features

import (
	"math"
	"sort"

	"github.com/sgl-umons/rabbit/internal/log"
	"github.com/sgl-umons/rabbit/internal/model"
)

// Extractor computes the behavioral feature vector for one contributor.
type Extractor struct{}

// New creates an Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract computes the feature record for the contributor's activities.
// The record is always keyed by exactly the full schema; features with no
// signal hold zero. Input order does not matter — activities are sorted
// by timestamp before timing features are derived.
func (x *Extractor) Extract(contributor string, activities []model.Activity) model.FeatureRecord {
	record := make(model.FeatureRecord, len(aggregateNames)+2*len(model.AllActivityKinds))
	for _, name := range Names() {
		record[name] = 0
	}

	n := len(activities)
	record[FeatureActivityCount] = float64(n)
	if n == 0 {
		return record
	}

	sorted := make([]model.Activity, n)
	copy(sorted, activities)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	kindCounts := make(map[model.ActivityKind]int)
	repoCounts := make(map[string]int)
	for _, a := range sorted {
		kindCounts[a.Kind]++
		repoCounts[a.Repo]++
	}
	record[FeatureActivityKinds] = float64(len(kindCounts))
	record[FeatureRepositoryCount] = float64(len(repoCounts))
	record[FeatureRepositoryGini] = gini(counts(repoCounts))

	for _, kind := range model.AllActivityKinds {
		count := float64(kindCounts[kind])
		record[countName(kind)] = count
		record[shareName(kind)] = count / float64(n)
	}

	gaps := make([]float64, 0, n-1)
	for i := 1; i < n; i++ {
		gaps = append(gaps, sorted[i].Timestamp.Sub(sorted[i-1].Timestamp).Hours())
	}
	if len(gaps) > 0 {
		record[FeatureGapMeanHours] = mean(gaps)
		record[FeatureGapMedianHours] = median(gaps)
		record[FeatureGapStdHours] = stddev(gaps)
		record[FeatureGapGini] = gini(gaps)
	}

	log.Trace("extracted features", "contributor", contributor, "activities", n)
	return record
}

func counts(m map[string]int) []float64 {
	out := make([]float64, 0, len(m))
	for _, c := range m {
		out = append(out, float64(c))
	}
	return out
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func stddev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		sum += (v - m) * (v - m)
	}
	return math.Sqrt(sum / float64(len(values)))
}

// gini computes the Gini coefficient of the given non-negative values:
// 0 means perfectly even, values near 1 mean concentrated.
func gini(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var total, weighted float64
	for i, v := range sorted {
		total += v
		weighted += float64(2*(i+1)-len(sorted)-1) * v
	}
	if total == 0 {
		return 0
	}
	return weighted / (float64(len(sorted)) * total)
}
