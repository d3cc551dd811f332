package splits

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/albapepper/scoracle-splits/internal/provider/espn"
)

// loadFixture decodes testdata/splits.json, a trimmed NBA splits payload with
// six categories (split, month, result, daysRest, position, opponent).
func loadFixture(t *testing.T) *espn.RawSplitsResponse {
	t.Helper()
	body, err := os.ReadFile("testdata/splits.json")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	raw, err := espn.DecodeSplits(body)
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return raw
}

func allGroups(ns *NormalizedSplits) map[string]StatGroup {
	out := map[string]StatGroup{
		"Overall": ns.Overall,
		"Home":    ns.RoadVsHome.Home,
		"Road":    ns.RoadVsHome.Road,
	}
	for _, l := range ns.Month.Labels() {
		g, _ := ns.Month.Get(l)
		out["Month/"+l] = g
	}
	for _, l := range ns.Opponent.Labels() {
		g, _ := ns.Opponent.Get(l)
		out["Opponent/"+l] = g
	}
	return out
}

func TestTransformFixture(t *testing.T) {
	ns, err := Transform(loadFixture(t))
	if err != nil {
		t.Fatalf("Transform() error: %v", err)
	}

	checks := []struct {
		name  string
		group StatGroup
		stat  string
		want  float64
	}{
		{"Overall GP", ns.Overall, GamesPlayed, 10},
		{"Overall PPG", ns.Overall, "Points Per Game", 20},
		{"Overall FGM", ns.Overall, "Field Goals Made Per Game", 7.5},
		{"Overall FGA", ns.Overall, "Field Goals Attempted Per Game", 15},
		{"Overall 3PM", ns.Overall, "3-Point Field Goals Made Per Game", 2},
		{"Overall 3PA", ns.Overall, "3-Point Field Goals Attempted Per Game", 5},
		{"Overall FTM", ns.Overall, "Free Throws Made Per Game", 3},
		{"Overall FTA", ns.Overall, "Free Throws Attempted Per Game", 4},
		{"Home GP", ns.RoadVsHome.Home, GamesPlayed, 4},
		{"Home PPG", ns.RoadVsHome.Home, "Points Per Game", 25},
		{"Road GP", ns.RoadVsHome.Road, GamesPlayed, 6},
		{"Road PPG", ns.RoadVsHome.Road, "Points Per Game", 16.7},
	}
	for _, c := range checks {
		t.Run(c.name, func(t *testing.T) {
			got, ok := c.group[c.stat]
			if !ok {
				t.Fatalf("stat %q missing", c.stat)
			}
			if got != c.want {
				t.Errorf("%s = %v, want %v", c.stat, got, c.want)
			}
		})
	}

	if got := ns.Month.Labels(); strings.Join(got, ",") != "October,November" {
		t.Errorf("Month labels = %v, want [October November]", got)
	}
	if got := ns.Opponent.Labels(); strings.Join(got, ",") != "Boston Celtics,Miami Heat" {
		t.Errorf("Opponent labels = %v, want [Boston Celtics Miami Heat]", got)
	}
	oct, _ := ns.Month.Get("October")
	if oct.GamesPlayed() != 3 || oct["Points Per Game"] != 15 {
		t.Errorf("October = GP %v PPG %v, want GP 3 PPG 15", oct.GamesPlayed(), oct["Points Per Game"])
	}
}

func TestTransformRemovesCombinedLabels(t *testing.T) {
	raw := loadFixture(t)
	ns, err := Transform(raw)
	if err != nil {
		t.Fatalf("Transform() error: %v", err)
	}

	// 18 display names, 3 combined labels each become 2.
	wantLen := len(raw.DisplayNames) + len(madeAttemptedCategories)
	for name, g := range allGroups(ns) {
		if len(g) != wantLen {
			t.Errorf("%s has %d stats, want %d", name, len(g), wantLen)
		}
		for label := range g {
			if strings.Contains(label, "Made-Attempted") {
				t.Errorf("%s still has combined label %q", name, label)
			}
		}
	}
}

func TestBuildStatGroupMadeAttempted(t *testing.T) {
	names := []string{
		GamesPlayed,
		"Field Goals Made-Attempted Per Game",
		"3-Point Field Goals Made-Attempted Per Game",
		"Free Throws Made-Attempted Per Game",
	}
	g, err := BuildStatGroup(names, []espn.StatValue{"12", "5-10", "1.5-4.0", "0-0"})
	if err != nil {
		t.Fatalf("BuildStatGroup() error: %v", err)
	}

	want := StatGroup{
		GamesPlayed:                              12,
		"Field Goals Made Per Game":              5,
		"Field Goals Attempted Per Game":         10,
		"3-Point Field Goals Made Per Game":      1.5,
		"3-Point Field Goals Attempted Per Game": 4,
		"Free Throws Made Per Game":              0,
		"Free Throws Attempted Per Game":         0,
	}
	if len(g) != len(want) {
		t.Fatalf("got %d stats, want %d: %v", len(g), len(want), g)
	}
	for k, v := range want {
		if g[k] != v {
			t.Errorf("%s = %v, want %v", k, g[k], v)
		}
	}
}

func TestBuildStatGroupErrors(t *testing.T) {
	names := []string{
		GamesPlayed,
		"Field Goals Made-Attempted Per Game",
		"3-Point Field Goals Made-Attempted Per Game",
		"Free Throws Made-Attempted Per Game",
	}
	tests := []struct {
		name  string
		names []string
		stats []espn.StatValue
	}{
		{"Fewer stats than names", names, []espn.StatValue{"1", "5-10", "1-2"}},
		{"More stats than names", names, []espn.StatValue{"1", "5-10", "1-2", "3-4", "9"}},
		{"Non-numeric value", names, []espn.StatValue{"abc", "5-10", "1-2", "3-4"}},
		{"Non-numeric made", names, []espn.StatValue{"1", "x-10", "1-2", "3-4"}},
		{"Three-part combined value", names, []espn.StatValue{"1", "5-10-2", "1-2", "3-4"}},
		{"Combined value without dash", names, []espn.StatValue{"1", "5", "1-2", "3-4"}},
		{"NaN value", names, []espn.StatValue{"NaN", "5-10", "1-2", "3-4"}},
		{"Missing combined label", names[:3], []espn.StatValue{"1", "5-10", "1-2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildStatGroup(tt.names, tt.stats)
			if !errors.Is(err, ErrMalformedResponse) {
				t.Errorf("error = %v, want ErrMalformedResponse", err)
			}
		})
	}
}

func TestTransformLooksUpCategoriesByName(t *testing.T) {
	raw := loadFixture(t)
	// Swap month (1) and result (2): label lookup must still find months.
	raw.SplitCategories[1], raw.SplitCategories[2] = raw.SplitCategories[2], raw.SplitCategories[1]

	ns, err := Transform(raw)
	if err != nil {
		t.Fatalf("Transform() error: %v", err)
	}
	if got := ns.Month.Labels(); strings.Join(got, ",") != "October,November" {
		t.Errorf("Month labels = %v, want [October November]", got)
	}

	// The positional layout mismaps the same payload.
	ns, err = NewTransformer(PositionalLayout).Transform(raw)
	if err != nil {
		t.Fatalf("positional Transform() error: %v", err)
	}
	if got := ns.Month.Labels(); strings.Join(got, ",") != "Wins,Losses" {
		t.Errorf("positional Month labels = %v, want [Wins Losses]", got)
	}
}

func TestTransformFallsBackToIndices(t *testing.T) {
	raw := loadFixture(t)
	for i := range raw.SplitCategories {
		raw.SplitCategories[i].Name = ""
		raw.SplitCategories[i].DisplayName = ""
	}
	raw.SplitCategories[0].Splits[1].DisplayName = "At Home"
	raw.SplitCategories[0].Splits[1].Abbreviation = ""

	ns, err := Transform(raw)
	if err != nil {
		t.Fatalf("Transform() error: %v", err)
	}
	if ns.RoadVsHome.Home.GamesPlayed() != 4 {
		t.Errorf("Home GP = %v, want 4 (index 1)", ns.RoadVsHome.Home.GamesPlayed())
	}
	if ns.Opponent.Len() != 2 {
		t.Errorf("Opponent len = %d, want 2 (index 5)", ns.Opponent.Len())
	}
}

func TestTransformMalformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*espn.RawSplitsResponse)
	}{
		{"No display names", func(r *espn.RawSplitsResponse) { r.DisplayNames = nil }},
		{"No categories", func(r *espn.RawSplitsResponse) { r.SplitCategories = nil }},
		{"Opponent category missing", func(r *espn.RawSplitsResponse) {
			r.SplitCategories = r.SplitCategories[:5]
			r.SplitCategories[4].Name = "position"
		}},
		{"Road split missing", func(r *espn.RawSplitsResponse) {
			r.SplitCategories[0].Splits = r.SplitCategories[0].Splits[:2]
		}},
		{"Bad month value", func(r *espn.RawSplitsResponse) {
			r.SplitCategories[1].Splits[1].Stats[17] = "--"
		}},
		{"Short opponent row", func(r *espn.RawSplitsResponse) {
			s := &r.SplitCategories[5].Splits[0]
			s.Stats = s.Stats[:10]
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := loadFixture(t)
			tt.mutate(raw)
			ns, err := Transform(raw)
			if !errors.Is(err, ErrMalformedResponse) {
				t.Errorf("error = %v, want ErrMalformedResponse", err)
			}
			if ns != nil {
				t.Errorf("expected no partial output, got %+v", ns)
			}
		})
	}

	if _, err := Transform(nil); !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("Transform(nil) error = %v, want ErrMalformedResponse", err)
	}
}

func TestNormalizedSplitsJSONKeepsOrder(t *testing.T) {
	ns, err := Transform(loadFixture(t))
	if err != nil {
		t.Fatalf("Transform() error: %v", err)
	}
	b, err := json.Marshal(ns)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	s := string(b)
	for _, key := range []string{`"Overall"`, `"RoadVsHome"`, `"Month"`, `"Opponent"`, `"Road"`, `"Home"`} {
		if !strings.Contains(s, key) {
			t.Errorf("JSON missing key %s", key)
		}
	}
	if strings.Index(s, `"October"`) > strings.Index(s, `"November"`) {
		t.Errorf("months out of API order: %s", s)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
}

func TestGroupSetReAddKeepsPosition(t *testing.T) {
	var s GroupSet
	s.Add("a", StatGroup{"x": 1})
	s.Add("b", StatGroup{"x": 2})
	s.Add("a", StatGroup{"x": 3})

	if got := strings.Join(s.Labels(), ","); got != "a,b" {
		t.Errorf("Labels() = %s, want a,b", got)
	}
	if g, _ := s.Get("a"); g["x"] != 3 {
		t.Errorf("a.x = %v, want 3", g["x"])
	}
	if b, _ := json.Marshal(s); string(b) != `{"a":{"x":3},"b":{"x":2}}` {
		t.Errorf("Marshal() = %s", b)
	}
}
