package gamechanger

// Wire shapes for the GameChanger team-manager API. Counter payloads decode
// into explicit fields so absent keys default to zero exactly once, here at
// the boundary.

type teamResponse struct {
	RootTeamID    string           `json:"root_team_id"`
	Name          string           `json:"name"`
	TeamPublicID  string           `json:"team_public_id"`
	Organizations []orgRefResponse `json:"organizations"`
}

type orgRefResponse struct {
	OrganizationID string `json:"organization_id"`
	Status         string `json:"status"`
}

type organizationResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Sport      string `json:"sport"`
	SeasonName string `json:"season_name"`
	SeasonYear int    `json:"season_year"`
	City       string `json:"city"`
	State      string `json:"state"`
	Type       string `json:"type"`
}

type avatarResponse struct {
	FullMediaURL string `json:"full_media_url"`
}

type playerResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Number    string `json:"number"`
}

type seasonStatsResponse struct {
	StatsData struct {
		Players map[string]playerStatsResponse `json:"players"`
	} `json:"stats_data"`
}

type playerStatsResponse struct {
	Stats struct {
		Offense *offenseResponse `json:"offense"`
		Defense *defenseResponse `json:"defense"`
	} `json:"stats"`
}

// Counters arrive as JSON numbers; integral counts are carried as float64 and
// truncated during mapping.
type offenseResponse struct {
	GP  float64 `json:"GP"`
	AB  float64 `json:"AB"`
	H   float64 `json:"H"`
	BB  float64 `json:"BB"`
	HBP float64 `json:"HBP"`
	SF  float64 `json:"SF"`
	B1  float64 `json:"1B"`
	B2  float64 `json:"2B"`
	B3  float64 `json:"3B"`
	HR  float64 `json:"HR"`
	RBI float64 `json:"RBI"`
	SO  float64 `json:"SO"`
	ROE float64 `json:"ROE"`
	FC  float64 `json:"FC"`
}

type defenseResponse struct {
	IP   float64 `json:"IP"`
	ER   float64 `json:"ER"`
	H    float64 `json:"H"`
	BB   float64 `json:"BB"`
	SO   float64 `json:"SO"`
	R    float64 `json:"R"`
	SPct float64 `json:"S%"`
	PO   float64 `json:"PO"`
	A    float64 `json:"A"`
	E    float64 `json:"E"`
	DP   float64 `json:"DP"`
	GPP  float64 `json:"GP:P"`
	GPF  float64 `json:"GP:F"`
}

type teamRecordResponse struct {
	TeamID  string `json:"team_id"`
	Overall struct {
		Wins   int `json:"wins"`
		Losses int `json:"losses"`
		Ties   int `json:"ties"`
	} `json:"overall"`
	Runs struct {
		Scored  int `json:"scored"`
		Allowed int `json:"allowed"`
	} `json:"runs"`
}

// authMarker is the in-payload authentication failure shape some endpoints
// return with a 200 status.
type authMarker struct {
	MissingAuthentication bool   `json:"missing_authentication"`
	Message               string `json:"message"`
}
