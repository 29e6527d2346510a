package ghmap

import (
	"fmt"
	"io"
	"strings"

	"github.com/sgl-umons/rabbit/internal/model"
)

// ActionMapper applies the event→action table to raw events.
//
// The mapper reports progress on its diagnostic writer, mirroring how the
// mapping tables were originally authored for interactive use. Callers
// that don't want the chatter pass io.Discard or capture and filter it.
type ActionMapper struct {
	table ActionTable
	diag  io.Writer
}

// NewActionMapper creates a mapper over the given table. A nil diag
// writer discards diagnostics.
func NewActionMapper(table ActionTable, diag io.Writer) *ActionMapper {
	if diag == nil {
		diag = io.Discard
	}
	return &ActionMapper{table: table, diag: diag}
}

// Map converts events to actions. Events matching no rule are skipped;
// that is expected for event types outside the table's coverage.
func (m *ActionMapper) Map(events []model.Event) ([]model.Action, error) {
	fmt.Fprintf(m.diag, "Processing %d events...\n", len(events))

	actions := make([]model.Action, 0, len(events))
	for _, ev := range events {
		name, err := m.match(ev)
		if err != nil {
			return nil, err
		}
		if name == "" {
			continue
		}
		actions = append(actions, model.Action{
			Name:      name,
			Actor:     ev.Actor.Login,
			Repo:      ev.Repo.Name,
			Timestamp: ev.CreatedAt,
		})
	}

	fmt.Fprintf(m.diag, "Mapped %d events to %d actions.\n", len(events), len(actions))
	return actions, nil
}

// match returns the action name for the first rule the event satisfies,
// or "" when no rule applies.
func (m *ActionMapper) match(ev model.Event) (string, error) {
	var fields map[string]any
	for _, rule := range m.table.Rules {
		if rule.Event != ev.Type {
			continue
		}
		if len(rule.When) == 0 {
			return rule.Action, nil
		}
		if fields == nil {
			var err error
			fields, err = ev.PayloadFields()
			if err != nil {
				return "", err
			}
		}
		if matchesConditions(fields, rule.When) {
			return rule.Action, nil
		}
	}
	return "", nil
}

func matchesConditions(fields map[string]any, when map[string]any) bool {
	for path, want := range when {
		got, ok := lookupPath(fields, path)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// lookupPath resolves a dotted path like "pull_request.merged" inside a
// decoded JSON payload.
func lookupPath(fields map[string]any, path string) (any, bool) {
	parts := strings.Split(path, ".")
	var current any = fields
	for _, part := range parts {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
