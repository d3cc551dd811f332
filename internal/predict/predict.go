// Package predict projects a player's per-game stats for an upcoming game by
// weighting the relevant splits by games played.
package predict

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/albapepper/scoracle-splits/internal/splits"
)

// ErrInvalidArgument marks a selector that does not name an available split.
var ErrInvalidArgument = errors.New("invalid argument")

// WeightedAverage maps stat label to its games-played-weighted mean.
type WeightedAverage map[string]float64

// Selection picks the splits that describe the upcoming game.
type Selection struct {
	Venue    string `json:"venue"`
	Opponent string `json:"opponent"`
	Month    string `json:"month"`
}

// Prediction is a weighted average plus the groups that produced it.
type Prediction struct {
	Selection        Selection       `json:"selection"`
	Stats            WeightedAverage `json:"stats"`
	Groups           []string        `json:"groups"`
	TotalGamesPlayed float64         `json:"total_games_played"`
	OpponentIncluded bool            `json:"opponent_included"`
}

// Predictor validates selections and computes predictions.
type Predictor struct {
	logger *slog.Logger
}

// New creates a Predictor.
func New(logger *slog.Logger) *Predictor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Predictor{logger: logger}
}

// WeightedPrediction returns only the weighted stats for the selection.
func WeightedPrediction(ns *splits.NormalizedSplits, venue, opponent, month string, logger *slog.Logger) (WeightedAverage, error) {
	p, err := New(logger).Predict(ns, Selection{Venue: venue, Opponent: opponent, Month: month})
	if err != nil {
		return nil, err
	}
	return p.Stats, nil
}

// Predict combines Overall, the venue group, the month group and, when known,
// the opponent group. An unknown opponent is logged and left out.
func (p *Predictor) Predict(ns *splits.NormalizedSplits, sel Selection) (*Prediction, error) {
	if ns == nil {
		return nil, fmt.Errorf("%w: no splits", ErrInvalidArgument)
	}

	venueGroup, ok := ns.RoadVsHome.Get(sel.Venue)
	if !ok {
		return nil, fmt.Errorf("%w: venue must be either %s, got %q",
			ErrInvalidArgument, quoteJoin(splits.Venues, " or "), sel.Venue)
	}

	monthGroup, ok := ns.Month.Get(sel.Month)
	if !ok {
		return nil, fmt.Errorf("%w: month must be one of the following: [%s], got %q",
			ErrInvalidArgument, quoteJoin(ns.Month.Labels(), ", "), sel.Month)
	}

	groups := []splits.StatGroup{ns.Overall, venueGroup, monthGroup}
	names := []string{"Overall", sel.Venue, sel.Month}

	opponentGroup, opponentFound := ns.Opponent.Get(sel.Opponent)
	if opponentFound {
		groups = append(groups, opponentGroup)
		names = append(names, sel.Opponent)
	} else {
		p.logger.Warn("Opponent not found, ignoring", "opponent", sel.Opponent)
	}

	var total float64
	for _, g := range groups {
		total += g.GamesPlayed()
	}

	return &Prediction{
		Selection:        sel,
		Stats:            Weighted(groups...),
		Groups:           names,
		TotalGamesPlayed: total,
		OpponentIncluded: opponentFound,
	}, nil
}

// Weighted returns, for every stat except Games Played in any group,
// Σ(value·GP) / Σ(GP). A group missing a stat still counts toward the
// denominator. When Σ(GP) is zero every stat is zero.
func Weighted(groups ...splits.StatGroup) WeightedAverage {
	sums := make(map[string]float64)
	var totalGames float64

	for _, g := range groups {
		gp := g.GamesPlayed()
		totalGames += gp
		for label, v := range g {
			if label == splits.GamesPlayed {
				continue
			}
			sums[label] += v * gp
		}
	}

	out := make(WeightedAverage, len(sums))
	for label, sum := range sums {
		if totalGames > 0 {
			out[label] = sum / totalGames
		} else {
			out[label] = 0
		}
	}
	return out
}

// Labels returns the stat labels sorted alphabetically.
func (w WeightedAverage) Labels() []string {
	labels := make([]string, 0, len(w))
	for l := range w {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

func quoteJoin(items []string, sep string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = fmt.Sprintf("'%s'", s)
	}
	return strings.Join(quoted, sep)
}
