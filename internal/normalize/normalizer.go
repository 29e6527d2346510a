// Package normalize turns raw GitHub events into the activity sequence
// the feature extractor consumes.
package normalize

import (
	"bytes"
	"strings"

	"github.com/sgl-umons/rabbit/internal/ghmap"
	"github.com/sgl-umons/rabbit/internal/log"
	"github.com/sgl-umons/rabbit/internal/model"
)

// Normalizer runs the two-stage ghmap mapping over one contributor's
// events. The mappers' chatty diagnostics are captured into a per-call
// buffer instead of reaching stdout; only the unused-actions warning is
// kept and re-emitted as a single debug line.
type Normalizer struct {
	actions    ghmap.ActionTable
	activities ghmap.ActivityTable
}

// New creates a Normalizer over the packaged mapping tables. Failure to
// load the tables is a configuration error, not a per-call condition.
func New() (*Normalizer, error) {
	actions, err := ghmap.DefaultActionTable()
	if err != nil {
		return nil, err
	}
	activities, err := ghmap.DefaultActivityTable()
	if err != nil {
		return nil, err
	}
	return &Normalizer{actions: actions, activities: activities}, nil
}

// Normalize maps events → actions → activities. An empty result is a
// valid outcome: none of the events mapped to a known activity.
func (n *Normalizer) Normalize(events []model.Event) ([]model.Activity, error) {
	var diag bytes.Buffer

	actions, err := ghmap.NewActionMapper(n.actions, &diag).Map(events)
	if err != nil {
		logFiltered(diag.String())
		return nil, err
	}
	log.Debug("mapped events to actions", "events", len(events), "actions", len(actions))

	activities, err := ghmap.NewActivityMapper(n.activities, &diag).Map(actions)
	if err != nil {
		logFiltered(diag.String())
		return nil, err
	}
	log.Debug("mapped actions to activities", "actions", len(actions), "activities", len(activities))

	logFiltered(diag.String())
	return activities, nil
}

// logFiltered collapses captured mapper diagnostics to the operationally
// relevant part and logs it. Everything else is discarded.
func logFiltered(captured string) {
	if text := FilterDiagnostics(captured); text != "" {
		log.Debug("ghmap output", "text", text)
	}
}

// FilterDiagnostics keeps only the lines containing the unused-actions
// marker, truncated to start at the marker, joined into one block.
func FilterDiagnostics(captured string) string {
	var kept []string
	for _, line := range strings.Split(captured, "\n") {
		if idx := strings.Index(line, ghmap.UnusedActionsMarker); idx >= 0 {
			kept = append(kept, line[idx:])
		}
	}
	return strings.Join(kept, "\n")
}
