package ghmap

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/sgl-umons/rabbit/internal/model"
)

// makeEvent builds a test event with an optional JSON payload.
func makeEvent(eventType, actor, repo, payload string) model.Event {
	ev := model.Event{
		Type:      eventType,
		Actor:     model.Actor{Login: actor},
		Repo:      model.Repo{Name: repo},
		CreatedAt: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}
	if payload != "" {
		ev.Payload = json.RawMessage(payload)
	}
	return ev
}

func TestActionMapperMap(t *testing.T) {
	table, err := DefaultActionTable()
	if err != nil {
		t.Fatalf("DefaultActionTable: %v", err)
	}
	mapper := NewActionMapper(table, nil)

	tests := []struct {
		name  string
		event model.Event
		want  string // "" means the event maps to no action
	}{
		{
			name:  "push event needs no payload",
			event: makeEvent("PushEvent", "alice", "owner/repo", ""),
			want:  "push_commits",
		},
		{
			name:  "opened issue",
			event: makeEvent("IssuesEvent", "alice", "owner/repo", `{"action": "opened"}`),
			want:  "open_issue",
		},
		{
			name:  "merged pull request wins over plain close",
			event: makeEvent("PullRequestEvent", "alice", "owner/repo", `{"action": "closed", "pull_request": {"merged": true}}`),
			want:  "merge_pull_request",
		},
		{
			name:  "closed unmerged pull request",
			event: makeEvent("PullRequestEvent", "alice", "owner/repo", `{"action": "closed", "pull_request": {"merged": false}}`),
			want:  "close_pull_request",
		},
		{
			name:  "branch creation",
			event: makeEvent("CreateEvent", "alice", "owner/repo", `{"ref_type": "branch", "ref": "main"}`),
			want:  "create_branch",
		},
		{
			name:  "star",
			event: makeEvent("WatchEvent", "alice", "owner/repo", `{"action": "started"}`),
			want:  "star_repository",
		},
		{
			name:  "unknown event type is skipped",
			event: makeEvent("SponsorshipEvent", "alice", "owner/repo", ""),
			want:  "",
		},
		{
			name:  "known type with unmatched discriminator is skipped",
			event: makeEvent("IssuesEvent", "alice", "owner/repo", `{"action": "labeled"}`),
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actions, err := mapper.Map([]model.Event{tt.event})
			if err != nil {
				t.Fatalf("Map: %v", err)
			}
			if tt.want == "" {
				if len(actions) != 0 {
					t.Fatalf("got %d actions, want none", len(actions))
				}
				return
			}
			if len(actions) != 1 {
				t.Fatalf("got %d actions, want 1", len(actions))
			}
			if actions[0].Name != tt.want {
				t.Errorf("action = %q, want %q", actions[0].Name, tt.want)
			}
			if actions[0].Actor != "alice" || actions[0].Repo != "owner/repo" {
				t.Errorf("identity not carried over: %+v", actions[0])
			}
		})
	}
}

func TestActionMapperInvalidPayload(t *testing.T) {
	table, err := DefaultActionTable()
	if err != nil {
		t.Fatalf("DefaultActionTable: %v", err)
	}
	mapper := NewActionMapper(table, nil)

	ev := makeEvent("IssuesEvent", "alice", "owner/repo", `{broken`)
	if _, err := mapper.Map([]model.Event{ev}); err == nil {
		t.Error("expected error for malformed payload on a discriminated rule")
	}
}

func TestActionMapperDiagnostics(t *testing.T) {
	table, err := DefaultActionTable()
	if err != nil {
		t.Fatalf("DefaultActionTable: %v", err)
	}

	var diag bytes.Buffer
	mapper := NewActionMapper(table, &diag)
	if _, err := mapper.Map([]model.Event{makeEvent("PushEvent", "alice", "owner/repo", "")}); err != nil {
		t.Fatalf("Map: %v", err)
	}

	if !strings.Contains(diag.String(), "Mapped 1 events to 1 actions.") {
		t.Errorf("diagnostics missing progress line: %q", diag.String())
	}
}
