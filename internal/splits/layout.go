package splits

import (
	"fmt"
	"strings"

	"github.com/albapepper/scoracle-splits/internal/provider/espn"
)

// --------------------------------------------------------------------------
// Response layout
//
// ESPN does not promise category order. Categories are matched by name and
// splits by display name; the indices are only used when no label matches.
// --------------------------------------------------------------------------

// CategoryRef locates a split category by name, falling back to Index.
type CategoryRef struct {
	Name  string
	Index int
}

// SplitRef locates a split within a category by label, falling back to Index.
type SplitRef struct {
	Label string
	Index int
}

// GroupRef locates a single split.
type GroupRef struct {
	Category CategoryRef
	Split    SplitRef
}

// Layout maps the normalized groups onto the response.
type Layout struct {
	Overall  GroupRef
	Home     GroupRef
	Road     GroupRef
	Month    CategoryRef
	Opponent CategoryRef
}

// DefaultLayout is the NBA splits layout: category 0 holds All Splits, Home
// and Road at 0/1/2, months are category 1, opponents category 5.
var DefaultLayout = Layout{
	Overall:  GroupRef{Category: CategoryRef{Name: "split", Index: 0}, Split: SplitRef{Label: "All Splits", Index: 0}},
	Home:     GroupRef{Category: CategoryRef{Name: "split", Index: 0}, Split: SplitRef{Label: "Home", Index: 1}},
	Road:     GroupRef{Category: CategoryRef{Name: "split", Index: 0}, Split: SplitRef{Label: "Road", Index: 2}},
	Month:    CategoryRef{Name: "month", Index: 1},
	Opponent: CategoryRef{Name: "opponent", Index: 5},
}

// PositionalLayout ignores labels entirely. Name and Label are left empty so
// only indices match.
var PositionalLayout = Layout{
	Overall:  GroupRef{Category: CategoryRef{Index: 0}, Split: SplitRef{Index: 0}},
	Home:     GroupRef{Category: CategoryRef{Index: 0}, Split: SplitRef{Index: 1}},
	Road:     GroupRef{Category: CategoryRef{Index: 0}, Split: SplitRef{Index: 2}},
	Month:    CategoryRef{Index: 1},
	Opponent: CategoryRef{Index: 5},
}

func findCategory(cats []espn.SplitCategory, ref CategoryRef) (*espn.SplitCategory, error) {
	if ref.Name != "" {
		for i := range cats {
			if strings.EqualFold(cats[i].Name, ref.Name) || strings.EqualFold(cats[i].DisplayName, ref.Name) {
				return &cats[i], nil
			}
		}
	}
	if ref.Index < 0 || ref.Index >= len(cats) {
		return nil, fmt.Errorf("%w: category %q not found and index %d out of range (%d categories)",
			ErrMalformedResponse, ref.Name, ref.Index, len(cats))
	}
	return &cats[ref.Index], nil
}

func findSplit(cat *espn.SplitCategory, ref SplitRef) (*espn.Split, error) {
	if ref.Label != "" {
		for i := range cat.Splits {
			s := &cat.Splits[i]
			if strings.EqualFold(s.DisplayName, ref.Label) || strings.EqualFold(s.Abbreviation, ref.Label) {
				return s, nil
			}
		}
	}
	if ref.Index < 0 || ref.Index >= len(cat.Splits) {
		return nil, fmt.Errorf("%w: split %q not found in category %q and index %d out of range (%d splits)",
			ErrMalformedResponse, ref.Label, cat.Name, ref.Index, len(cat.Splits))
	}
	return &cat.Splits[ref.Index], nil
}

func findGroup(cats []espn.SplitCategory, ref GroupRef) (*espn.Split, error) {
	cat, err := findCategory(cats, ref.Category)
	if err != nil {
		return nil, err
	}
	return findSplit(cat, ref.Split)
}
