package splits

import (
	"fmt"

	"github.com/albapepper/scoracle-splits/internal/provider"
	"github.com/albapepper/scoracle-splits/internal/provider/espn"
)

// ESPN reports these as a single "made-attempted" string, e.g. "7.5-15.0".
var madeAttemptedCategories = []string{
	"3-Point Field Goals",
	"Field Goals",
	"Free Throws",
}

const (
	madeAttemptedSuffix = " Made-Attempted Per Game"
	madeSuffix          = " Made Per Game"
	attemptedSuffix     = " Attempted Per Game"
)

// Transformer normalizes raw splits payloads using a Layout.
type Transformer struct {
	layout Layout
}

// NewTransformer creates a transformer for the given layout.
func NewTransformer(layout Layout) *Transformer {
	return &Transformer{layout: layout}
}

// Transform normalizes raw with DefaultLayout.
func Transform(raw *espn.RawSplitsResponse) (*NormalizedSplits, error) {
	return NewTransformer(DefaultLayout).Transform(raw)
}

// Transform builds NormalizedSplits from raw. Any shape violation fails the
// whole transform.
func (t *Transformer) Transform(raw *espn.RawSplitsResponse) (*NormalizedSplits, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: empty response", ErrMalformedResponse)
	}
	if len(raw.DisplayNames) == 0 {
		return nil, fmt.Errorf("%w: missing displayNames", ErrMalformedResponse)
	}
	if len(raw.SplitCategories) == 0 {
		return nil, fmt.Errorf("%w: missing splitCategories", ErrMalformedResponse)
	}

	group := func(what string, ref GroupRef) (StatGroup, error) {
		split, err := findGroup(raw.SplitCategories, ref)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", what, err)
		}
		g, err := BuildStatGroup(raw.DisplayNames, split.Stats)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", what, err)
		}
		return g, nil
	}

	out := &NormalizedSplits{}
	var err error
	if out.Overall, err = group("overall", t.layout.Overall); err != nil {
		return nil, err
	}
	if out.RoadVsHome.Home, err = group("home", t.layout.Home); err != nil {
		return nil, err
	}
	if out.RoadVsHome.Road, err = group("road", t.layout.Road); err != nil {
		return nil, err
	}
	if err := buildSet(&out.Month, "month", raw, t.layout.Month); err != nil {
		return nil, err
	}
	if err := buildSet(&out.Opponent, "opponent", raw, t.layout.Opponent); err != nil {
		return nil, err
	}
	return out, nil
}

func buildSet(set *GroupSet, what string, raw *espn.RawSplitsResponse, ref CategoryRef) error {
	cat, err := findCategory(raw.SplitCategories, ref)
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	for _, split := range cat.Splits {
		g, err := BuildStatGroup(raw.DisplayNames, split.Stats)
		if err != nil {
			return fmt.Errorf("%s %q: %w", what, split.DisplayName, err)
		}
		set.Add(split.DisplayName, g)
	}
	return nil
}

// BuildStatGroup zips stats with displayNames, splits the made-attempted
// cells and parses every value.
func BuildStatGroup(displayNames []string, stats []espn.StatValue) (StatGroup, error) {
	if len(stats) != len(displayNames) {
		return nil, fmt.Errorf("%w: %d stats for %d display names", ErrMalformedResponse, len(stats), len(displayNames))
	}

	cells := make(map[string]string, len(displayNames)+len(madeAttemptedCategories))
	for i, name := range displayNames {
		cells[name] = string(stats[i])
	}
	if err := splitMadeAttempted(cells); err != nil {
		return nil, err
	}

	g := make(StatGroup, len(cells))
	for label, cell := range cells {
		v, err := provider.ParseStatValue(cell)
		if err != nil {
			return nil, fmt.Errorf("%w: stat %q: %w", ErrMalformedResponse, label, err)
		}
		g[label] = v
	}
	return g, nil
}

// splitMadeAttempted replaces each "<X> Made-Attempted Per Game" cell with
// "<X> Made Per Game" and "<X> Attempted Per Game".
func splitMadeAttempted(cells map[string]string) error {
	for _, cat := range madeAttemptedCategories {
		combined := cat + madeAttemptedSuffix
		cell, ok := cells[combined]
		if !ok {
			return fmt.Errorf("%w: missing stat %q", ErrMalformedResponse, combined)
		}
		made, attempted, err := provider.SplitPair(cell, "-")
		if err != nil {
			return fmt.Errorf("%w: stat %q: %w", ErrMalformedResponse, combined, err)
		}
		delete(cells, combined)
		cells[cat+madeSuffix] = made
		cells[cat+attemptedSuffix] = attempted
	}
	return nil
}
