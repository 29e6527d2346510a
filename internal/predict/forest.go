package predict

import (
	"embed"
	"encoding/json"
	"fmt"
	"slices"
	"sort"

	"github.com/sgl-umons/rabbit/internal/model"
)

//go:embed model/bot_classifier.json
var modelFS embed.FS

// node is one decision node in a tree. Leaf nodes carry a label; split
// nodes test feature <= threshold and descend left on success.
type node struct {
	Leaf      string  `json:"leaf,omitempty"`
	Feature   string  `json:"feature,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
	Left      int     `json:"left,omitempty"`
	Right     int     `json:"right,omitempty"`
}

type tree struct {
	Nodes []node `json:"nodes"`
}

// Forest is a majority-vote ensemble of decision trees over the feature
// schema. Confidence is the winning label's vote share.
type Forest struct {
	Labels []string `json:"labels"`
	Trees  []tree   `json:"trees"`
}

// LoadDefaultForest loads the model packaged with the binary.
func LoadDefaultForest() (*Forest, error) {
	data, err := modelFS.ReadFile("model/bot_classifier.json")
	if err != nil {
		return nil, fmt.Errorf("reading bundled model: %w", err)
	}
	return LoadForest(data)
}

// LoadForest parses a serialized forest model.
func LoadForest(data []byte) (*Forest, error) {
	var f Forest
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing forest model: %w", err)
	}
	if len(f.Trees) == 0 {
		return nil, fmt.Errorf("forest model has no trees")
	}
	return &f, nil
}

// Predict walks every tree and returns the majority label with its vote
// share as confidence. A feature referenced by the model but absent from
// the record is a contract violation and returns an error.
func (f *Forest) Predict(features model.FeatureRecord) (string, float64, error) {
	votes := make(map[string]int, len(f.Labels))
	for i := range f.Trees {
		label, err := f.Trees[i].evaluate(features)
		if err != nil {
			return "", 0, fmt.Errorf("tree %d: %w", i, err)
		}
		votes[label]++
	}

	// Deterministic winner selection: declared label order first, then
	// lexicographic for anything a tree emitted outside the vocabulary.
	candidates := make([]string, 0, len(votes))
	candidates = append(candidates, f.Labels...)
	extra := make([]string, 0)
	for label := range votes {
		if !slices.Contains(f.Labels, label) {
			extra = append(extra, label)
		}
	}
	sort.Strings(extra)
	candidates = append(candidates, extra...)

	var winner string
	var best int
	for _, label := range candidates {
		if votes[label] > best {
			winner, best = label, votes[label]
		}
	}
	return winner, float64(best) / float64(len(f.Trees)), nil
}

func (t *tree) evaluate(features model.FeatureRecord) (string, error) {
	idx := 0
	for steps := 0; steps <= len(t.Nodes); steps++ {
		if idx < 0 || idx >= len(t.Nodes) {
			return "", fmt.Errorf("node index %d out of range", idx)
		}
		n := t.Nodes[idx]
		if n.Leaf != "" {
			return n.Leaf, nil
		}
		value, ok := features[n.Feature]
		if !ok {
			return "", fmt.Errorf("feature %q missing from record", n.Feature)
		}
		if value <= n.Threshold {
			idx = n.Left
		} else {
			idx = n.Right
		}
	}
	return "", fmt.Errorf("cycle detected in tree")
}
