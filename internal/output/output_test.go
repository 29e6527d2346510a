package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sgl-umons/rabbit/internal/model"
)

func sampleResults() []model.ContributorResult {
	return []model.ContributorResult{
		{
			Contributor: "dependabot[bot]",
			UserType:    model.UserTypeBot,
			Confidence:  model.NewConfidence(0.97),
			Features:    model.FeatureRecord{"activity_count": 120},
		},
		{
			Contributor: "alice",
			UserType:    model.UserTypeHuman,
			Confidence:  model.NewConfidence(0.81),
			Features:    model.FeatureRecord{"activity_count": 40},
		},
		{
			Contributor: "ghost",
			UserType:    model.UserTypeUnknown,
		},
	}
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format  Format
		wantErr bool
	}{
		{FormatCSV, false},
		{FormatJSON, false},
		{FormatTable, false},
		{Format(""), false}, // defaults to CSV
		{Format("xml"), true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			_, err := NewFormatter(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewFormatter(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestCSVFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&CSVFormatter{}).Format(sampleResults(), &buf); err != nil {
		t.Fatalf("Format: %v", err)
	}

	want := "dependabot[bot],Bot,0.970\nalice,Human,0.810\nghost,Unknown,-\n"
	if buf.String() != want {
		t.Errorf("got:\n%q\nwant:\n%q", buf.String(), want)
	}
	if strings.Contains(buf.String(), "activity_count") {
		t.Error("CSV output must never include feature values")
	}
}

func TestCSVFormatterHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := (&CSVFormatter{Header: true}).Format(nil, &buf); err != nil {
		t.Fatalf("Format: %v", err)
	}
	if buf.String() != "contributor,user_type,confidence\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Format(sampleResults(), &buf); err != nil {
		t.Fatalf("Format: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 3 {
		t.Fatalf("got %d entries, want 3", len(decoded))
	}
	if decoded[0]["user_type"] != "Bot" {
		t.Errorf("user_type = %v", decoded[0]["user_type"])
	}
	if decoded[2]["confidence"] != "-" {
		t.Errorf("absent confidence = %v, want \"-\"", decoded[2]["confidence"])
	}
	if _, ok := decoded[0]["features"]; !ok {
		t.Error("JSON output should carry features when present")
	}
	if _, ok := decoded[2]["features"]; ok {
		t.Error("JSON output should omit empty features")
	}
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(sampleResults(), &buf); err != nil {
		t.Fatalf("Format: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Contributor", "alice", "dependabot[bot]", "-"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestTableFormatterEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(nil, &buf); err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(buf.String(), "No contributors classified.") {
		t.Errorf("got %q", buf.String())
	}
}
