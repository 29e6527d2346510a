// Package ghmap maps raw GitHub events to semantic activities in two
// configured stages: events → actions, then actions → activities.
//
// The mapping tables are packaged with the binary and loaded once; they
// are read-only after load and safe for concurrent use.
package ghmap

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sgl-umons/rabbit/internal/model"
)

//go:embed config/event_to_action.json config/action_to_activity.json
var configFS embed.FS

// ActionRule maps one event shape to an action name. When conditions are
// dotted paths into the event payload that must all match.
type ActionRule struct {
	Event  string         `json:"event"`
	When   map[string]any `json:"when,omitempty"`
	Action string         `json:"action"`
}

// ActionTable is the ordered event→action rule set. The first matching
// rule wins, so more specific rules come first in the table.
type ActionTable struct {
	Rules []ActionRule `json:"rules"`
}

// ActivityRule groups action names under one semantic activity kind.
type ActivityRule struct {
	Activity model.ActivityKind `json:"activity"`
	Actions  []string           `json:"actions"`
}

// ActivityTable is the action→activity grouping.
type ActivityTable struct {
	Activities []ActivityRule `json:"activities"`
}

var (
	loadOnce      sync.Once
	loadErr       error
	actionTable   ActionTable
	activityTable ActivityTable
)

func loadTables() {
	actionData, err := configFS.ReadFile("config/event_to_action.json")
	if err != nil {
		loadErr = fmt.Errorf("reading event_to_action table: %w", err)
		return
	}
	if err := json.Unmarshal(actionData, &actionTable); err != nil {
		loadErr = fmt.Errorf("parsing event_to_action table: %w", err)
		return
	}
	activityData, err := configFS.ReadFile("config/action_to_activity.json")
	if err != nil {
		loadErr = fmt.Errorf("reading action_to_activity table: %w", err)
		return
	}
	if err := json.Unmarshal(activityData, &activityTable); err != nil {
		loadErr = fmt.Errorf("parsing action_to_activity table: %w", err)
	}
}

// DefaultActionTable returns the packaged event→action table.
// A load failure is a configuration error and affects every caller.
func DefaultActionTable() (ActionTable, error) {
	loadOnce.Do(loadTables)
	return actionTable, loadErr
}

// DefaultActivityTable returns the packaged action→activity table.
func DefaultActivityTable() (ActivityTable, error) {
	loadOnce.Do(loadTables)
	return activityTable, loadErr
}
