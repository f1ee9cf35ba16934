package stats

// Display precision per stat family.
const (
	averagePlaces   = 3
	ratioPlaces     = 2
	strikePctPlaces = 1
)

// BattingRow is the wire shape of one batting line, rates pre-formatted.
type BattingRow struct {
	PlayerName       string  `json:"player_name"`
	PlayerNumber     string  `json:"player_number"`
	PlayerID         string  `json:"player_id"`
	TeamName         string  `json:"team_name"`
	TeamID           string  `json:"team_id"`
	TeamAvatar       string  `json:"team_avatar,omitempty"`
	Games            int     `json:"games"`
	AtBats           int     `json:"at_bats"`
	PlateAppearances int     `json:"plate_appearances"`
	Hits             int     `json:"hits"`
	Doubles          int     `json:"doubles"`
	Triples          int     `json:"triples"`
	HomeRuns         int     `json:"home_runs"`
	RBI              int     `json:"rbi"`
	Walks            int     `json:"walks"`
	Strikeouts       int     `json:"strikeouts"`
	BattingAvg       string  `json:"batting_avg"`
	OnBasePct        string  `json:"on_base_pct"`
	SluggingPct      string  `json:"slugging_pct"`
	AdjBattingAvg    string  `json:"adj_batting_avg"`
	AdjSluggingPct   string  `json:"adj_slugging_pct"`
	ScorerStrictness float64 `json:"scorer_strictness"`
}

// PitchingRow is the wire shape of one pitching line. It carries the team's
// defensive strictness score but, unlike batting and fielding, no normalized
// stat fields.
type PitchingRow struct {
	PlayerName       string  `json:"player_name"`
	PlayerNumber     string  `json:"player_number"`
	PlayerID         string  `json:"player_id"`
	TeamName         string  `json:"team_name"`
	TeamID           string  `json:"team_id"`
	TeamAvatar       string  `json:"team_avatar,omitempty"`
	Games            int     `json:"games"`
	InningsPitched   string  `json:"innings_pitched"`
	HitsAllowed      int     `json:"hits_allowed"`
	RunsAllowed      int     `json:"runs_allowed"`
	EarnedRuns       int     `json:"earned_runs"`
	Walks            int     `json:"walks"`
	Strikeouts       int     `json:"strikeouts"`
	ERA              string  `json:"era"`
	WHIP             string  `json:"whip"`
	StrikePct        string  `json:"strike_pct"`
	Wins             int     `json:"wins"`
	Losses           int     `json:"losses"`
	ScorerStrictness float64 `json:"scorer_strictness"`
}

// FieldingRow is the wire shape of one fielding line.
type FieldingRow struct {
	PlayerName            string  `json:"player_name"`
	PlayerNumber          string  `json:"player_number"`
	PlayerID              string  `json:"player_id"`
	TeamName              string  `json:"team_name"`
	TeamID                string  `json:"team_id"`
	TeamAvatar            string  `json:"team_avatar,omitempty"`
	Games                 int     `json:"games"`
	FieldingOpportunities int     `json:"fielding_opportunities"`
	Putouts               int     `json:"putouts"`
	Assists               int     `json:"assists"`
	Errors                int     `json:"errors"`
	DoublePlays           int     `json:"double_plays"`
	FieldingPct           string  `json:"fielding_pct"`
	AdjFieldingPct        string  `json:"adj_fielding_pct"`
	ScorerStrictness      float64 `json:"scorer_strictness"`
}

// TeamRow is the wire shape of one team's season record.
type TeamRow struct {
	TeamName           string `json:"team_name"`
	TeamID             string `json:"team_id"`
	TeamAvatar         string `json:"team_avatar,omitempty"`
	GamesPlayed        int    `json:"games_played"`
	Wins               int    `json:"wins"`
	Losses             int    `json:"losses"`
	Ties               int    `json:"ties"`
	RunsScored         int    `json:"runs_scored"`
	RunsAllowed        int    `json:"runs_allowed"`
	RunsPerGame        string `json:"runs_per_game"`
	RunsAllowedPerGame string `json:"runs_allowed_per_game"`
}

// Response is the aggregated payload for one organization.
type Response struct {
	Batting  []BattingRow  `json:"batting"`
	Pitching []PitchingRow `json:"pitching"`
	Fielding []FieldingRow `json:"fielding"`
	Teams    []TeamRow     `json:"teams"`
}

// BattingRowFrom renders a batting line with its team's offensive strictness
// score and pre-normalized average and slugging values.
func BattingRowFrom(l BattingLine, strictness, adjAvg, adjSlg float64) BattingRow {
	hasAB := l.Counters.AtBats > 0
	return BattingRow{
		PlayerName:       l.Player.Name,
		PlayerNumber:     l.Player.Number,
		PlayerID:         l.Player.ID,
		TeamName:         l.Team.Name,
		TeamID:           l.Team.ID,
		TeamAvatar:       l.Team.Avatar,
		Games:            l.Counters.GamesPlayed,
		AtBats:           l.Counters.AtBats,
		PlateAppearances: l.PlateAppearances,
		Hits:             l.Counters.Hits,
		Doubles:          l.Counters.Doubles,
		Triples:          l.Counters.Triples,
		HomeRuns:         l.Counters.HomeRuns,
		RBI:              l.Counters.RBI,
		Walks:            l.Counters.Walks,
		Strikeouts:       l.Counters.Strikeouts,
		BattingAvg:       formatDefined(l.Avg, hasAB, averagePlaces),
		OnBasePct:        formatDefined(l.OnBase, l.PlateAppearances > 0, averagePlaces),
		SluggingPct:      formatDefined(l.Slugging, hasAB, averagePlaces),
		AdjBattingAvg:    formatDefined(adjAvg, hasAB, averagePlaces),
		AdjSluggingPct:   formatDefined(adjSlg, hasAB, averagePlaces),
		ScorerStrictness: strictness,
	}
}

// PitchingRowFrom renders a pitching line with its team's defensive strictness
// score attached. Wins and losses are not tracked per pitcher upstream.
func PitchingRowFrom(l PitchingLine, strictness float64) PitchingRow {
	hasIP := l.Counters.InningsPitched > 0
	return PitchingRow{
		PlayerName:       l.Player.Name,
		PlayerNumber:     l.Player.Number,
		PlayerID:         l.Player.ID,
		TeamName:         l.Team.Name,
		TeamID:           l.Team.ID,
		TeamAvatar:       l.Team.Avatar,
		Games:            l.Counters.PitchingGames,
		InningsPitched:   FormatInningsPitched(l.Counters.InningsPitched),
		HitsAllowed:      l.Counters.HitsAllowed,
		RunsAllowed:      l.Counters.RunsAllowed,
		EarnedRuns:       l.Counters.EarnedRuns,
		Walks:            l.Counters.Walks,
		Strikeouts:       l.Counters.Strikeouts,
		ERA:              formatDefined(l.ERA, hasIP, ratioPlaces),
		WHIP:             formatDefined(l.WHIP, hasIP, ratioPlaces),
		StrikePct:        formatDefined(l.Counters.StrikePct*100, l.Counters.StrikePct > 0, strikePctPlaces),
		ScorerStrictness: strictness,
	}
}

// FieldingRowFrom renders a fielding line with its team's defensive strictness
// score and pre-normalized fielding percentage.
func FieldingRowFrom(l FieldingLine, strictness, adjPct float64) FieldingRow {
	hasChances := l.Chances > 0
	return FieldingRow{
		PlayerName:            l.Player.Name,
		PlayerNumber:          l.Player.Number,
		PlayerID:              l.Player.ID,
		TeamName:              l.Team.Name,
		TeamID:                l.Team.ID,
		TeamAvatar:            l.Team.Avatar,
		Games:                 l.Counters.FieldingGames,
		FieldingOpportunities: l.Opportunities,
		Putouts:               l.Counters.Putouts,
		Assists:               l.Counters.Assists,
		Errors:                l.Counters.Errors,
		DoublePlays:           l.Counters.DoublePlays,
		FieldingPct:           formatDefined(l.FieldingPct, hasChances, averagePlaces),
		AdjFieldingPct:        formatDefined(adjPct, hasChances, averagePlaces),
		ScorerStrictness:      strictness,
	}
}

// TeamRowFrom renders a team record joined with its display info.
func TeamRowFrom(r TeamRecord, team TeamRef) TeamRow {
	games := r.GamesPlayed()
	var perGame, allowedPerGame float64
	if games > 0 {
		perGame = float64(r.RunsScored) / float64(games)
		allowedPerGame = float64(r.RunsAllowed) / float64(games)
	}
	return TeamRow{
		TeamName:           team.Name,
		TeamID:             r.TeamID,
		TeamAvatar:         team.Avatar,
		GamesPlayed:        games,
		Wins:               r.Wins,
		Losses:             r.Losses,
		Ties:               r.Ties,
		RunsScored:         r.RunsScored,
		RunsAllowed:        r.RunsAllowed,
		RunsPerGame:        formatDefined(perGame, games > 0, ratioPlaces),
		RunsAllowedPerGame: formatDefined(allowedPerGame, games > 0, ratioPlaces),
	}
}
