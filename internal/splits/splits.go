// Package splits turns ESPN's positional splits payload into labeled stat
// groups.
//
// A StatGroup is a flat map of stat label to value for one split. The
// normalized shape is fixed: Overall, RoadVsHome (Road and Home), and ordered
// Month and Opponent sets keyed by ESPN's display names.
package splits

import (
	"bytes"
	"encoding/json"
	"errors"
)

// GamesPlayed is the stat used as the weight when combining groups.
const GamesPlayed = "Games Played"

// ErrMalformedResponse marks a payload that violates the expected shape.
var ErrMalformedResponse = errors.New("malformed splits response")

// StatGroup maps stat label to value.
type StatGroup map[string]float64

// GamesPlayed returns the group's games-played count, 0 when absent.
func (g StatGroup) GamesPlayed() float64 {
	return g[GamesPlayed]
}

// Venue names the two RoadVsHome groups.
const (
	VenueHome = "Home"
	VenueRoad = "Road"
)

// Venues lists the accepted venue selectors.
var Venues = []string{VenueHome, VenueRoad}

// RoadVsHome holds the two venue groups.
type RoadVsHome struct {
	Road StatGroup `json:"Road"`
	Home StatGroup `json:"Home"`
}

// Get returns the group for "Home" or "Road".
func (r RoadVsHome) Get(venue string) (StatGroup, bool) {
	switch venue {
	case VenueHome:
		return r.Home, true
	case VenueRoad:
		return r.Road, true
	}
	return nil, false
}

// GroupSet is an insertion-ordered set of labeled stat groups. The zero value
// is ready to use.
type GroupSet struct {
	labels []string
	groups map[string]StatGroup
}

// Add stores g under label. Re-adding a label replaces the group but keeps its
// original position.
func (s *GroupSet) Add(label string, g StatGroup) {
	if s.groups == nil {
		s.groups = make(map[string]StatGroup)
	}
	if _, exists := s.groups[label]; !exists {
		s.labels = append(s.labels, label)
	}
	s.groups[label] = g
}

// Get returns the group stored under label.
func (s *GroupSet) Get(label string) (StatGroup, bool) {
	g, ok := s.groups[label]
	return g, ok
}

// Labels returns the labels in insertion order.
func (s *GroupSet) Labels() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}

// Len returns the number of groups.
func (s *GroupSet) Len() int {
	return len(s.labels)
}

// MarshalJSON writes the groups as an object with keys in insertion order.
func (s GroupSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, label := range s.labels {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(label)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s.groups[label])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// NormalizedSplits is the transformer output.
type NormalizedSplits struct {
	Overall    StatGroup  `json:"Overall"`
	RoadVsHome RoadVsHome `json:"RoadVsHome"`
	Month      GroupSet   `json:"Month"`
	Opponent   GroupSet   `json:"Opponent"`
}
