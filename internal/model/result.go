package model

import (
	"encoding/json"
	"fmt"
	"maps"
	"strconv"
)

// UserType is the classification assigned to a contributor.
type UserType string

const (
	// UserTypeBot marks an account predicted to be automated.
	UserTypeBot UserType = "Bot"
	// UserTypeHuman marks an account predicted to be a person.
	UserTypeHuman UserType = "Human"
	// UserTypeUnknown means there was insufficient signal to predict.
	UserTypeUnknown UserType = "Unknown"
	// UserTypeInvalid means the input could not be processed meaningfully.
	UserTypeInvalid UserType = "Invalid"
)

// AllUserTypes contains every valid classification value.
var AllUserTypes = []UserType{UserTypeBot, UserTypeHuman, UserTypeUnknown, UserTypeInvalid}

// Valid reports whether t is one of the closed classification set.
func (t UserType) Valid() bool {
	switch t {
	case UserTypeBot, UserTypeHuman, UserTypeUnknown, UserTypeInvalid:
		return true
	}
	return false
}

// Confidence is a prediction confidence score in [0,1]. The zero value
// is "not available", rendered as "-" — the case where no prediction ran.
type Confidence struct {
	Value float64
	Valid bool
}

// NewConfidence wraps a classifier-reported score.
func NewConfidence(v float64) Confidence {
	return Confidence{Value: v, Valid: true}
}

// String renders the score with three decimals, or "-" when absent.
func (c Confidence) String() string {
	if !c.Valid {
		return "-"
	}
	return strconv.FormatFloat(c.Value, 'f', 3, 64)
}

// MarshalJSON encodes the score as a number, or as "-" when absent,
// matching the textual form.
func (c Confidence) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return json.Marshal("-")
	}
	return json.Marshal(c.Value)
}

// UnmarshalJSON accepts either a number or the "-" marker.
func (c *Confidence) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "-" {
			*c = Confidence{}
			return nil
		}
		return fmt.Errorf("invalid confidence %q", s)
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = NewConfidence(v)
	return nil
}

// FeatureRecord maps feature names to computed values for one contributor.
type FeatureRecord map[string]float64

// ContributorResult is the outcome of classifying one contributor.
// Construct it once and treat it as immutable.
type ContributorResult struct {
	Contributor string        `json:"contributor"`
	UserType    UserType      `json:"user_type"`
	Confidence  Confidence    `json:"confidence"`
	Features    FeatureRecord `json:"features,omitempty"`
}

// String returns the compact CSV form without features:
// "contributor,user_type,confidence".
func (r ContributorResult) String() string {
	return fmt.Sprintf("%s,%s,%s", r.Contributor, r.UserType, r.Confidence)
}

// Equal reports value equality, including feature contents.
func (r ContributorResult) Equal(other ContributorResult) bool {
	return r.Contributor == other.Contributor &&
		r.UserType == other.UserType &&
		r.Confidence == other.Confidence &&
		maps.Equal(r.Features, other.Features)
}
