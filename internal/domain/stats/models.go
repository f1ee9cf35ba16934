package stats

import "strings"

// PlayerRef identifies a player within an aggregation request.
type PlayerRef struct {
	ID     string
	Name   string
	Number string
}

// TeamRef identifies a team and carries its display metadata.
type TeamRef struct {
	ID     string
	Name   string
	Avatar string
}

// OffenseCounters holds a player's raw offensive box-score counts for a season.
type OffenseCounters struct {
	GamesPlayed    int
	AtBats         int
	Hits           int
	Walks          int
	HitByPitch     int
	SacFlies       int
	Singles        int
	Doubles        int
	Triples        int
	HomeRuns       int
	RBI            int
	Strikeouts     int
	ReachedOnError int
	FieldersChoice int
}

// PlateAppearances derives PA from the raw counts (AB + BB + HBP + SF).
func (c OffenseCounters) PlateAppearances() int {
	return c.AtBats + c.Walks + c.HitByPitch + c.SacFlies
}

// DefenseCounters holds a player's raw pitching and fielding counts for a season.
// InningsPitched is thirds-encoded: the fractional digit counts outs (.1 = one out).
type DefenseCounters struct {
	InningsPitched float64
	EarnedRuns     int
	HitsAllowed    int
	RunsAllowed    int
	Walks          int
	Strikeouts     int
	StrikePct      float64
	Putouts        int
	Assists        int
	Errors         int
	DoublePlays    int
	PitchingGames  int
	FieldingGames  int
}

// Chances derives total fielding chances (PO + A + E).
func (c DefenseCounters) Chances() int {
	return c.Putouts + c.Assists + c.Errors
}

// BattingLine is a player's derived offensive line. Rates are raw floats;
// display formatting happens at row construction.
type BattingLine struct {
	Player           PlayerRef
	Team             TeamRef
	Counters         OffenseCounters
	PlateAppearances int
	Avg              float64
	OnBase           float64
	Slugging         float64
}

// PitchingLine is a player's derived pitching line.
type PitchingLine struct {
	Player   PlayerRef
	Team     TeamRef
	Counters DefenseCounters
	ERA      float64
	WHIP     float64
}

// FieldingLine is a player's derived fielding line.
type FieldingLine struct {
	Player        PlayerRef
	Team          TeamRef
	Counters      DefenseCounters
	Chances       int
	Opportunities int
	FieldingPct   float64
}

// TeamRecord is a team's win/loss record joined from the league provider.
type TeamRecord struct {
	TeamID      string
	Wins        int
	Losses      int
	Ties        int
	RunsScored  int
	RunsAllowed int
}

// GamesPlayed is the total of decided and tied games.
func (r TeamRecord) GamesPlayed() int {
	return r.Wins + r.Losses + r.Ties
}

// IsUnknownPlayer reports whether a resolved player name is empty or a
// placeholder; such players are excluded from every stat collection.
func IsUnknownPlayer(name string) bool {
	name = strings.TrimSpace(name)
	return name == "" || strings.Contains(strings.ToLower(name), "unknown")
}
