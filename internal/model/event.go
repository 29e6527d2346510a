// Package model contains domain types for the rabbit pipeline.
// These types are independent of any external GitHub library.
package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/go-github/v57/github"
)

// Event represents one raw GitHub event in the public Events API shape.
// See: https://docs.github.com/en/rest/activity/events
//
// The pipeline treats events as opaque beyond the identity fields below;
// type-specific payload content is the mapping engine's concern.
type Event struct {
	ID        string          `json:"id,omitempty"`
	Type      string          `json:"type"`
	Actor     Actor           `json:"actor"`
	Repo      Repo            `json:"repo"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Public    bool            `json:"public,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Actor identifies the account that performed an event.
type Actor struct {
	ID    int64  `json:"id,omitempty"`
	Login string `json:"login"`
}

// Repo identifies the repository an event happened in.
type Repo struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"` // owner/repo
}

// PayloadFields decodes the event payload into a generic map.
// Returns an empty map when the event carries no payload.
func (e Event) PayloadFields() (map[string]any, error) {
	if len(e.Payload) == 0 {
		return map[string]any{}, nil
	}
	var fields map[string]any
	if err := json.Unmarshal(e.Payload, &fields); err != nil {
		return nil, fmt.Errorf("decoding %s payload: %w", e.Type, err)
	}
	return fields, nil
}

// ParseEvents decodes a JSON array of raw events, as returned by the
// GitHub Events API or stored by tools that archive it.
func ParseEvents(data []byte) ([]Event, error) {
	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("decoding events: %w", err)
	}
	return events, nil
}

// FromGitHubEvents converts typed go-github event responses into the raw
// shape the pipeline consumes. Callers that fetch events with a go-github
// client can hand them over without a JSON round trip.
func FromGitHubEvents(events []*github.Event) []Event {
	out := make([]Event, 0, len(events))
	for _, ev := range events {
		if ev == nil {
			continue
		}
		e := Event{
			ID:   ev.GetID(),
			Type: ev.GetType(),
		}
		if actor := ev.GetActor(); actor != nil {
			e.Actor = Actor{ID: actor.GetID(), Login: actor.GetLogin()}
		}
		if repo := ev.GetRepo(); repo != nil {
			e.Repo = Repo{ID: repo.GetID(), Name: repo.GetName()}
		}
		if ev.RawPayload != nil {
			e.Payload = *ev.RawPayload
		}
		e.Public = ev.GetPublic()
		e.CreatedAt = ev.GetCreatedAt().Time
		out = append(out, e)
	}
	return out
}
