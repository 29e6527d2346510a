package predict

import (
	"strings"
	"testing"

	"github.com/sgl-umons/rabbit/internal/features"
	"github.com/sgl-umons/rabbit/internal/model"
)

// fullRecord builds a record keyed by the complete schema with the given
// overrides applied.
func fullRecord(overrides map[string]float64) model.FeatureRecord {
	record := make(model.FeatureRecord)
	for _, name := range features.Names() {
		record[name] = 0
	}
	for name, v := range overrides {
		record[name] = v
	}
	return record
}

func TestLoadDefaultForest(t *testing.T) {
	forest, err := LoadDefaultForest()
	if err != nil {
		t.Fatalf("LoadDefaultForest: %v", err)
	}
	if len(forest.Trees) == 0 {
		t.Fatal("bundled model has no trees")
	}
	if len(forest.Labels) != 2 {
		t.Fatalf("bundled model has %d labels, want 2", len(forest.Labels))
	}
}

func TestLoadForestInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed json", `{`},
		{"no trees", `{"labels": ["bot", "human"], "trees": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadForest([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestForestPredict(t *testing.T) {
	forest, err := LoadDefaultForest()
	if err != nil {
		t.Fatalf("LoadDefaultForest: %v", err)
	}

	tests := []struct {
		name      string
		overrides map[string]float64
		want      string
	}{
		{
			// Metronomic timing, one activity kind, one repo: a bot.
			name: "regular single-purpose account",
			overrides: map[string]float64{
				"activity_count":             1000,
				"activity_kinds":             1,
				"gap_mean_hours":             0.02,
				"gap_median_hours":           0.02,
				"gap_std_hours":              0.01,
				"gap_gini":                   0.05,
				"opening_pull_request_share": 1,
				"repository_gini":            0.9,
			},
			want: LabelBot,
		},
		{
			// Irregular timing, varied kinds, stars things: a person.
			name: "varied interactive account",
			overrides: map[string]float64{
				"activity_count":            120,
				"activity_kinds":            7,
				"gap_mean_hours":            9.5,
				"gap_median_hours":          4.2,
				"gap_std_hours":             14.0,
				"gap_gini":                  0.6,
				"starring_repository_share": 0.1,
				"pushing_commits_share":     0.4,
				"repository_gini":           0.3,
			},
			want: LabelHuman,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, confidence, err := forest.Predict(fullRecord(tt.overrides))
			if err != nil {
				t.Fatalf("Predict: %v", err)
			}
			if label != tt.want {
				t.Errorf("label = %q, want %q", label, tt.want)
			}
			if confidence < 0.5 || confidence > 1 {
				t.Errorf("majority-vote confidence = %v, want within (0.5, 1]", confidence)
			}
		})
	}
}

func TestForestPredictDeterministic(t *testing.T) {
	forest, err := LoadDefaultForest()
	if err != nil {
		t.Fatalf("LoadDefaultForest: %v", err)
	}

	record := fullRecord(map[string]float64{"activity_kinds": 3, "gap_std_hours": 2})
	label1, conf1, err := forest.Predict(record)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	label2, conf2, err := forest.Predict(record)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if label1 != label2 || conf1 != conf2 {
		t.Errorf("predictions differ: (%q, %v) vs (%q, %v)", label1, conf1, label2, conf2)
	}
}

func TestForestPredictMissingFeature(t *testing.T) {
	forest, err := LoadDefaultForest()
	if err != nil {
		t.Fatalf("LoadDefaultForest: %v", err)
	}

	_, _, err = forest.Predict(model.FeatureRecord{"activity_count": 1})
	if err == nil {
		t.Fatal("expected error for record missing schema features")
	}
	if !strings.Contains(err.Error(), "missing from record") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestTreeCycleDetection(t *testing.T) {
	forest, err := LoadForest([]byte(`{
		"labels": ["bot", "human"],
		"trees": [{"nodes": [
			{"feature": "activity_count", "threshold": 1, "left": 0, "right": 0}
		]}]
	}`))
	if err != nil {
		t.Fatalf("LoadForest: %v", err)
	}

	if _, _, err := forest.Predict(model.FeatureRecord{"activity_count": 5}); err == nil {
		t.Error("expected cycle error")
	}
}
