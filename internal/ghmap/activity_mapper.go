package ghmap

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sgl-umons/rabbit/internal/model"
)

// UnusedActionsMarker prefixes the diagnostic line listing actions that no
// activity rule covers. A stale action→activity table is the usual cause.
const UnusedActionsMarker = "Warning: Unused actions"

// ActivityMapper applies the action→activity table to mapped actions.
type ActivityMapper struct {
	byAction map[string]model.ActivityKind
	diag     io.Writer
}

// NewActivityMapper creates a mapper over the given table. A nil diag
// writer discards diagnostics.
func NewActivityMapper(table ActivityTable, diag io.Writer) *ActivityMapper {
	if diag == nil {
		diag = io.Discard
	}
	byAction := make(map[string]model.ActivityKind)
	for _, rule := range table.Activities {
		for _, action := range rule.Actions {
			byAction[action] = rule.Activity
		}
	}
	return &ActivityMapper{byAction: byAction, diag: diag}
}

// Map converts actions to activities. Actions without an activity rule are
// dropped and reported once on the diagnostic writer.
func (m *ActivityMapper) Map(actions []model.Action) ([]model.Activity, error) {
	fmt.Fprintf(m.diag, "Processing %d actions...\n", len(actions))

	activities := make([]model.Activity, 0, len(actions))
	unused := make(map[string]struct{})
	for _, action := range actions {
		kind, ok := m.byAction[action.Name]
		if !ok {
			unused[action.Name] = struct{}{}
			continue
		}
		activities = append(activities, model.Activity{
			Kind:      kind,
			Actor:     action.Actor,
			Repo:      action.Repo,
			Timestamp: action.Timestamp,
		})
	}

	if len(unused) > 0 {
		names := make([]string, 0, len(unused))
		for name := range unused {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintf(m.diag, "%s: [%s]\n", UnusedActionsMarker, strings.Join(names, ", "))
	}
	fmt.Fprintf(m.diag, "Mapped %d actions to %d activities.\n", len(actions), len(activities))
	return activities, nil
}
