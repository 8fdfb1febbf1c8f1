package httpapi

import (
	"time"

	"github.com/riskibarqy/flashgoal/internal/domain/fixture"
	"github.com/riskibarqy/flashgoal/internal/domain/league"
	"github.com/riskibarqy/flashgoal/internal/domain/leaguestanding"
	"github.com/riskibarqy/flashgoal/internal/domain/lineup"
	"github.com/riskibarqy/flashgoal/internal/domain/player"
	"github.com/riskibarqy/flashgoal/internal/domain/team"
)

type seasonDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type leagueDTO struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	ShortCode     string     `json:"shortCode,omitempty"`
	ImagePath     string     `json:"imagePath,omitempty"`
	CurrentSeason *seasonDTO `json:"currentSeason,omitempty"`
}

func leagueToDTO(item league.League) leagueDTO {
	out := leagueDTO{
		ID:        item.ID,
		Name:      item.Name,
		ShortCode: item.ShortCode,
		ImagePath: item.ImagePath,
	}
	if item.CurrentSeason != nil {
		out.CurrentSeason = &seasonDTO{ID: item.CurrentSeason.ID, Name: item.CurrentSeason.Name}
	}
	return out
}

type teamDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortCode string `json:"shortCode,omitempty"`
	ImagePath string `json:"imagePath,omitempty"`
}

func participantToDTO(item team.Participant, ok bool, fallback string) teamDTO {
	if !ok {
		return teamDTO{Name: fallback}
	}
	return teamDTO{ID: item.ID, Name: item.Name, ShortCode: item.ShortCode, ImagePath: item.ImagePath}
}

type scoreDTO struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type venueDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	City      string `json:"city,omitempty"`
	ImagePath string `json:"imagePath,omitempty"`
}

type fixtureSummaryDTO struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	LeagueID   int64     `json:"leagueId"`
	StartingAt string    `json:"startingAt,omitempty"`
	ResultInfo string    `json:"resultInfo,omitempty"`
	Home       teamDTO   `json:"home"`
	Away       teamDTO   `json:"away"`
	Score      scoreDTO  `json:"score"`
	Venue      *venueDTO `json:"venue,omitempty"`
}

func fixtureToSummaryDTO(item fixture.Fixture, loc *time.Location) fixtureSummaryDTO {
	home, homeOK := item.Home()
	away, awayOK := item.Away()
	score := item.CurrentScore()

	out := fixtureSummaryDTO{
		ID:       item.ID,
		Name:     item.Name,
		LeagueID: item.LeagueID,
		Home:     participantToDTO(home, homeOK, item.HomeTeamName()),
		Away:     participantToDTO(away, awayOK, item.AwayTeamName()),
		Score:    scoreDTO{Home: score.Home, Away: score.Away},
	}
	if start, ok := item.StartTime(loc); ok {
		out.StartingAt = start.Format(time.RFC3339)
	}
	if item.ResultInfo != nil {
		out.ResultInfo = *item.ResultInfo
	}
	if item.Venue != nil {
		out.Venue = &venueDTO{ID: item.Venue.ID, Name: item.Venue.Name, City: item.Venue.CityName, ImagePath: item.Venue.ImagePath}
	}
	return out
}

type leagueFixturesDTO struct {
	League   leagueDTO           `json:"league"`
	Fixtures []fixtureSummaryDTO `json:"fixtures"`
}

type statPairDTO struct {
	Name string  `json:"name"`
	Home float64 `json:"home"`
	Away float64 `json:"away"`
}

type eventDTO struct {
	ID         int64  `json:"id"`
	Time       string `json:"time"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	CardColour string `json:"cardColour,omitempty"`
	Side       string `json:"side,omitempty"`
	PlayerID   *int64 `json:"playerId,omitempty"`
	PlayerName string `json:"playerName,omitempty"`
}

func eventToDTO(item fixture.Event, homeID, awayID int64) eventDTO {
	out := eventDTO{
		ID:         item.ID,
		Time:       item.DisplayTime(),
		Name:       item.Name(),
		Category:   string(item.Category()),
		CardColour: string(item.CardColour()),
		PlayerID:   item.PlayerID,
		PlayerName: item.PlayerName,
	}
	if item.Player != nil && item.Player.Name != "" {
		out.PlayerName = item.Player.Name
	}
	if item.ParticipantID != nil {
		switch *item.ParticipantID {
		case homeID:
			out.Side = team.LocationHome
		case awayID:
			out.Side = team.LocationAway
		}
	}
	return out
}

type lineupPlayerDTO struct {
	ID         int64  `json:"id"`
	PlayerID   int64  `json:"playerId"`
	Name       string `json:"name"`
	ImagePath  string `json:"imagePath,omitempty"`
	PositionID *int64 `json:"positionId,omitempty"`
	Category   string `json:"category"`
	Starter    bool   `json:"starter"`
}

func lineupEntryToDTO(item lineup.Entry) lineupPlayerDTO {
	out := lineupPlayerDTO{
		ID:         item.ID,
		PlayerID:   item.PlayerID,
		Name:       item.DisplayName(),
		PositionID: item.PositionID,
		Category:   string(item.Category()),
		Starter:    item.IsStarter(),
	}
	if item.Player != nil {
		out.ImagePath = item.Player.ImagePath
		if out.PlayerID == 0 {
			out.PlayerID = item.Player.ID
		}
	}
	return out
}

func lineupEntriesToDTO(items []lineup.Entry) []lineupPlayerDTO {
	out := make([]lineupPlayerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, lineupEntryToDTO(item))
	}
	return out
}

type positionGroupDTO struct {
	Category string            `json:"category"`
	Players  []lineupPlayerDTO `json:"players"`
}

type teamSheetDTO struct {
	TeamID    int64               `json:"teamId"`
	Starters  []positionGroupDTO  `json:"starters"`
	Bench     []lineupPlayerDTO   `json:"bench"`
	Formation [][]lineupPlayerDTO `json:"formation"`
}

func teamSheetToDTO(entries []lineup.Entry, teamID int64) teamSheetDTO {
	starters, bench := lineup.SplitStarters(lineup.ForTeam(entries, teamID))

	groups := lineup.GroupByPosition(starters)
	groupDTOs := make([]positionGroupDTO, 0, len(groups))
	for _, group := range groups {
		groupDTOs = append(groupDTOs, positionGroupDTO{Category: string(group.Category), Players: lineupEntriesToDTO(group.Entries)})
	}

	rows := lineup.Formation(starters)
	formation := make([][]lineupPlayerDTO, 0, len(rows))
	for _, row := range rows {
		formation = append(formation, lineupEntriesToDTO(row))
	}

	return teamSheetDTO{
		TeamID:    teamID,
		Starters:  groupDTOs,
		Bench:     lineupEntriesToDTO(bench),
		Formation: formation,
	}
}

type matchupDTO struct {
	Category string           `json:"category"`
	Home     *lineupPlayerDTO `json:"home,omitempty"`
	Away     *lineupPlayerDTO `json:"away,omitempty"`
}

func matchupToDTO(item lineup.Matchup) matchupDTO {
	out := matchupDTO{Category: string(item.Category)}
	if item.Home != nil {
		home := lineupEntryToDTO(*item.Home)
		out.Home = &home
	}
	if item.Away != nil {
		away := lineupEntryToDTO(*item.Away)
		out.Away = &away
	}
	return out
}

type fixtureDetailDTO struct {
	fixtureSummaryDTO
	Statistics  []statPairDTO `json:"statistics"`
	Events      []eventDTO    `json:"events"`
	HomeLineup  teamSheetDTO  `json:"homeLineup"`
	AwayLineup  teamSheetDTO  `json:"awayLineup"`
	KeyMatchups []matchupDTO  `json:"keyMatchups"`
}

func fixtureToDetailDTO(item fixture.Fixture, loc *time.Location) fixtureDetailDTO {
	homeID, _ := item.HomeTeamID()
	awayID, _ := item.AwayTeamID()

	pairs := item.PairStatistics()
	stats := make([]statPairDTO, 0, len(pairs))
	for _, pair := range pairs {
		stats = append(stats, statPairDTO{Name: pair.Name, Home: pair.Home, Away: pair.Away})
	}

	important := item.ImportantEvents()
	events := make([]eventDTO, 0, len(important))
	for _, event := range important {
		events = append(events, eventToDTO(event, homeID, awayID))
	}

	matchups := lineup.KeyMatchups(item.Lineups, homeID, awayID)
	matchupDTOs := make([]matchupDTO, 0, len(matchups))
	for _, matchup := range matchups {
		matchupDTOs = append(matchupDTOs, matchupToDTO(matchup))
	}

	return fixtureDetailDTO{
		fixtureSummaryDTO: fixtureToSummaryDTO(item, loc),
		Statistics:        stats,
		Events:            events,
		HomeLineup:        teamSheetToDTO(item.Lineups, homeID),
		AwayLineup:        teamSheetToDTO(item.Lineups, awayID),
		KeyMatchups:       matchupDTOs,
	}
}

type standingRowDTO struct {
	Position       int     `json:"position"`
	Team           teamDTO `json:"team"`
	Played         int     `json:"played"`
	Won            int     `json:"won"`
	Drawn          int     `json:"drawn"`
	Lost           int     `json:"lost"`
	GoalsFor       int     `json:"goalsFor"`
	GoalsAgainst   int     `json:"goalsAgainst"`
	GoalDifference int     `json:"goalDifference"`
	Points         int     `json:"points"`
}

func standingToDTO(item leaguestanding.Standing) standingRowDTO {
	columns := item.Columns()
	teamOut := teamDTO{ID: item.ParticipantID, Name: item.TeamName()}
	if item.Participant != nil {
		teamOut.ShortCode = item.Participant.ShortCode
		teamOut.ImagePath = item.Participant.ImagePath
	}
	return standingRowDTO{
		Position:       item.Position,
		Team:           teamOut,
		Played:         columns.Played,
		Won:            columns.Won,
		Drawn:          columns.Drawn,
		Lost:           columns.Lost,
		GoalsFor:       columns.GoalsFor,
		GoalsAgainst:   columns.GoalsAgainst,
		GoalDifference: columns.GoalDifference,
		Points:         item.Points,
	}
}

type standingsDTO struct {
	SeasonID int64            `json:"seasonId"`
	LeagueID int64            `json:"leagueId,omitempty"`
	Rows     []standingRowDTO `json:"rows"`
}

type playerDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ImagePath string `json:"imagePath,omitempty"`
}

func playerToDTO(item player.Player) playerDTO {
	return playerDTO{ID: item.ID, Name: item.Name, ImagePath: item.ImagePath}
}

type headlineDTO struct {
	SeasonID    int64 `json:"seasonId"`
	Goals       *int  `json:"goals"`
	Assists     *int  `json:"assists"`
	Appearances *int  `json:"appearances"`
}

type careerDTO struct {
	TeamID    int64  `json:"teamId"`
	TeamName  string `json:"teamName,omitempty"`
	ImagePath string `json:"imagePath,omitempty"`
	Period    string `json:"period"`
	Current   bool   `json:"current"`
}

type playerDetailDTO struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	ImagePath   string       `json:"imagePath,omitempty"`
	DateOfBirth string       `json:"dateOfBirth,omitempty"`
	Nationality string       `json:"nationality,omitempty"`
	Position    string       `json:"position,omitempty"`
	Season      *headlineDTO `json:"season,omitempty"`
	Career      []careerDTO  `json:"career"`
}

func playerDetailToDTO(item player.Detail) playerDetailDTO {
	out := playerDetailDTO{
		ID:          item.ID,
		Name:        item.Name,
		ImagePath:   item.ImagePath,
		DateOfBirth: item.DateOfBirth,
	}
	if item.Nationality != nil {
		out.Nationality = item.Nationality.Name
	}
	if item.Position != nil {
		out.Position = item.Position.Name
	}
	if headline, ok := item.Headline(); ok {
		out.Season = &headlineDTO{
			SeasonID:    headline.SeasonID,
			Goals:       headline.Goals,
			Assists:     headline.Assists,
			Appearances: headline.Appearances,
		}
	}

	history := item.CareerHistory()
	out.Career = make([]careerDTO, 0, len(history))
	for _, tenure := range history {
		row := careerDTO{TeamID: tenure.TeamID, Period: tenure.FormattedPeriod(), Current: tenure.IsCurrent()}
		if tenure.Team != nil {
			row.TeamName = tenure.Team.Name
			row.ImagePath = tenure.Team.ImagePath
		}
		out.Career = append(out.Career, row)
	}
	return out
}
