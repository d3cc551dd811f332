package espn

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// RawSplitsResponse is the subset of the ESPN splits payload the transformer
// reads. Stats in every split line up positionally with DisplayNames.
type RawSplitsResponse struct {
	DisplayNames    []string        `json:"displayNames"`
	Labels          []string        `json:"labels,omitempty"`
	Names           []string        `json:"names,omitempty"`
	SplitCategories []SplitCategory `json:"splitCategories"`
}

// SplitCategory groups related splits ("split", "month", "opponent", ...).
type SplitCategory struct {
	Name         string  `json:"name"`
	DisplayName  string  `json:"displayName"`
	Abbreviation string  `json:"abbreviation,omitempty"`
	Splits       []Split `json:"splits"`
}

// Split is one filtered stat line, e.g. "Home", "January" or "Boston".
type Split struct {
	DisplayName  string      `json:"displayName"`
	Abbreviation string      `json:"abbreviation,omitempty"`
	Stats        []StatValue `json:"stats"`
}

// StatValue is a single stat cell. ESPN sends strings ("5.2", "3.1-7.4") but a
// bare number is accepted too.
type StatValue string

// UnmarshalJSON implements json.Unmarshaler.
func (v *StatValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StatValue(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("stat value %s is neither string nor number", data)
	}
	*v = StatValue(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

// DecodeSplits parses a splits payload.
func DecodeSplits(body []byte) (*RawSplitsResponse, error) {
	var raw RawSplitsResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode splits: %w", err)
	}
	return &raw, nil
}
