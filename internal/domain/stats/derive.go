// Package stats converts raw box-score counters into derived rate statistics
// and display rows. All derivation is pure; zero denominators yield zero rates.
package stats

// regulationInnings is the league's regulation game length. ERA scales earned
// runs to a 7-inning game, not the conventional 9.
const regulationInnings = 7

// DeriveBatting computes a player's offensive rate line from raw counters.
func DeriveBatting(player PlayerRef, team TeamRef, c OffenseCounters) BattingLine {
	line := BattingLine{
		Player:           player,
		Team:             team,
		Counters:         c,
		PlateAppearances: c.PlateAppearances(),
	}

	if c.AtBats > 0 {
		totalBases := c.Singles + 2*c.Doubles + 3*c.Triples + 4*c.HomeRuns
		line.Avg = float64(c.Hits) / float64(c.AtBats)
		line.Slugging = float64(totalBases) / float64(c.AtBats)
	}
	if line.PlateAppearances > 0 {
		line.OnBase = float64(c.Hits+c.Walks+c.HitByPitch) / float64(line.PlateAppearances)
	}
	return line
}

// DerivePitching computes a player's pitching rate line from raw counters.
func DerivePitching(player PlayerRef, team TeamRef, c DefenseCounters) PitchingLine {
	line := PitchingLine{
		Player:   player,
		Team:     team,
		Counters: c,
	}

	if c.InningsPitched > 0 {
		line.ERA = float64(c.EarnedRuns*regulationInnings) / c.InningsPitched
		line.WHIP = float64(c.HitsAllowed+c.Walks) / c.InningsPitched
	}
	return line
}

// DeriveFielding computes a player's fielding rate line from raw counters.
func DeriveFielding(player PlayerRef, team TeamRef, c DefenseCounters) FieldingLine {
	line := FieldingLine{
		Player:        player,
		Team:          team,
		Counters:      c,
		Chances:       c.Chances(),
		Opportunities: c.Putouts + c.Assists,
	}

	if line.Chances > 0 {
		line.FieldingPct = float64(line.Opportunities) / float64(line.Chances)
	}
	return line
}
