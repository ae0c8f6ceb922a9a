package provider

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gamechanger/nba-stats-api/internal/models"
)

// Snapshot is the on-disk fallback data source: per-team game logs and
// per-player season averages exported by the data-gathering pipeline.
// Loaded once at startup and immutable afterwards.
type Snapshot struct {
	teams    map[string]*teamLog // keyed by abbreviation
	players  map[string]*playerRow
	loadedAt time.Time
}

type gameRow struct {
	date  time.Time
	won   bool
	home  bool
	stats map[string]float64
}

// teamLog holds one team's rows sorted most recent first.
type teamLog struct {
	abbr  string
	games []gameRow
}

type playerRow struct {
	record   models.PlayerStatRecord
	standing models.PlayerStanding
}

// LoadSnapshot reads the team and player CSV exports. Either path may be
// empty; a snapshot with no data still works, it just answers nothing.
func LoadSnapshot(teamCSV, playerCSV string) (*Snapshot, error) {
	s := &Snapshot{
		teams:    make(map[string]*teamLog),
		players:  make(map[string]*playerRow),
		loadedAt: time.Now(),
	}

	if teamCSV != "" {
		if err := s.loadTeamGameLogs(teamCSV); err != nil {
			return nil, fmt.Errorf("team snapshot %s: %w", teamCSV, err)
		}
	}
	if playerCSV != "" {
		if err := s.loadPlayerAverages(playerCSV); err != nil {
			return nil, fmt.Errorf("player snapshot %s: %w", playerCSV, err)
		}
	}

	for _, log := range s.teams {
		sort.Slice(log.games, func(i, j int) bool {
			return log.games[i].date.After(log.games[j].date)
		})
	}

	return s, nil
}

// TeamStats returns the most recent stat row for a team abbreviation.
func (s *Snapshot) TeamStats(abbr string) (*models.TeamStatRecord, bool) {
	log, ok := s.teams[strings.ToUpper(abbr)]
	if !ok || len(log.games) == 0 {
		return nil, false
	}
	latest := log.games[0]
	rec := &models.TeamStatRecord{
		TeamAbbr: log.abbr,
		Stats:    make(map[string]float64, len(latest.stats)),
	}
	for k, v := range latest.stats {
		rec.Stats[k] = v
	}
	return rec, true
}

// TeamSituation derives rest days, home/away, and last-10 form from the
// game log, relative to now.
func (s *Snapshot) TeamSituation(abbr string, now time.Time) (*models.TeamSituation, bool) {
	log, ok := s.teams[strings.ToUpper(abbr)]
	if !ok || len(log.games) == 0 {
		return nil, false
	}

	latest := log.games[0]
	rest := int(now.Sub(latest.date).Hours() / 24)
	if rest < 1 {
		rest = 1
	}

	sit := &models.TeamSituation{RestDays: rest, IsHome: latest.home}
	for i, g := range log.games {
		if i >= 10 {
			break
		}
		if g.won {
			sit.RecentWins++
		} else {
			sit.RecentLosses++
		}
	}
	return sit, true
}

// Standings builds a standings table from the game logs: record from the
// latest row's running W/L columns, streak and last-ten from the result
// sequence, home/road splits from the full log.
func (s *Snapshot) Standings() []models.TeamStanding {
	out := make([]models.TeamStanding, 0, len(s.teams))
	for _, log := range s.teams {
		if len(log.games) == 0 {
			continue
		}
		info, ok := ResolveTeam(log.abbr)
		if !ok {
			continue
		}

		latest := log.games[0]
		st := models.TeamStanding{
			TeamID:           info.ID,
			TeamName:         info.Name,
			TeamAbbreviation: info.Abbreviation,
			Conference:       info.Conference,
			Division:         info.Division,
			Wins:             int(latest.stats["W"]),
			Losses:           int(latest.stats["L"]),
			WinPct:           latest.stats["W_PCT"],
			LogoURL:          info.LogoURL,
		}

		var lastTenW, lastTenL, homeW, homeL, roadW, roadL int
		for i, g := range log.games {
			if i < 10 {
				if g.won {
					lastTenW++
				} else {
					lastTenL++
				}
			}
			switch {
			case g.home && g.won:
				homeW++
			case g.home:
				homeL++
			case g.won:
				roadW++
			default:
				roadL++
			}
		}
		st.LastTen = fmt.Sprintf("%d-%d", lastTenW, lastTenL)
		st.HomeRecord = fmt.Sprintf("%d-%d", homeW, homeL)
		st.RoadRecord = fmt.Sprintf("%d-%d", roadW, roadL)

		streak := 0
		for _, g := range log.games {
			if g.won != latest.won {
				break
			}
			streak++
		}
		st.Streak = streak
		st.StreakType = "W"
		if !latest.won {
			st.StreakType = "L"
			st.Streak = -streak
		}

		out = append(out, st)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].WinPct > out[j].WinPct })
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// PlayerStats returns a player's season averages by name, case-insensitive.
func (s *Snapshot) PlayerStats(name string) (*models.PlayerStatRecord, bool) {
	row, ok := s.players[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, false
	}
	rec := row.record
	return &rec, true
}

// PlayerStandings returns all player rows; sorting is the caller's concern.
func (s *Snapshot) PlayerStandings() []models.PlayerStanding {
	out := make([]models.PlayerStanding, 0, len(s.players))
	for _, row := range s.players {
		out = append(out, row.standing)
	}
	return out
}

// LoadedAt reports when the snapshot was read, for the standings_date field.
func (s *Snapshot) LoadedAt() time.Time { return s.loadedAt }

func (s *Snapshot) loadTeamGameLogs(path string) error {
	rows, header, err := readCSV(path)
	if err != nil {
		return err
	}

	abbrCol := pickColumn(header, "TEAM_ABBR", "TEAM_ABBREVIATION")
	dateCol := pickColumn(header, "GAME_DATE")
	matchupCol := pickColumn(header, "MATCHUP")
	wlCol := pickColumn(header, "WL")
	if abbrCol < 0 || dateCol < 0 {
		return fmt.Errorf("missing TEAM_ABBR or GAME_DATE column")
	}

	for _, row := range rows {
		abbr := strings.ToUpper(strings.TrimSpace(row[abbrCol]))
		if abbr == "" {
			continue
		}
		date, err := parseGameDate(row[dateCol])
		if err != nil {
			continue
		}

		g := gameRow{date: date, stats: make(map[string]float64)}
		if matchupCol >= 0 {
			g.home = strings.Contains(row[matchupCol], "vs")
		}
		if wlCol >= 0 {
			g.won = strings.TrimSpace(row[wlCol]) == "W"
		}
		for i, name := range header {
			if i == abbrCol || i == dateCol || i == matchupCol || i == wlCol {
				continue
			}
			if v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64); err == nil {
				g.stats[name] = v
			}
		}

		log, ok := s.teams[abbr]
		if !ok {
			log = &teamLog{abbr: abbr}
			s.teams[abbr] = log
		}
		log.games = append(log.games, g)
	}

	return nil
}

func (s *Snapshot) loadPlayerAverages(path string) error {
	rows, header, err := readCSV(path)
	if err != nil {
		return err
	}

	idCol := pickColumn(header, "PLAYER_ID")
	nameCol := pickColumn(header, "PLAYER_NAME", "PLAYER")
	teamCol := pickColumn(header, "TEAM_ABBREVIATION", "TEAM_ABBR", "TEAM")
	if nameCol < 0 {
		return fmt.Errorf("missing PLAYER_NAME column")
	}

	num := func(row []string, names ...string) float64 {
		col := pickColumn(header, names...)
		if col < 0 {
			return 0
		}
		v, _ := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
		return v
	}

	for _, row := range rows {
		name := strings.TrimSpace(row[nameCol])
		if name == "" {
			continue
		}

		var id, team string
		if idCol >= 0 {
			id = strings.TrimSpace(row[idCol])
		}
		if teamCol >= 0 {
			team = strings.ToUpper(strings.TrimSpace(row[teamCol]))
		}

		rec := models.PlayerStatRecord{
			PlayerID:   id,
			PlayerName: name,
			TeamAbbr:   team,
			Points:     num(row, "PTS"),
			Rebounds:   num(row, "REB"),
			Assists:    num(row, "AST"),
			Steals:     num(row, "STL"),
			Blocks:     num(row, "BLK"),
		}

		standing := models.PlayerStanding{
			PlayerID:         id,
			PlayerName:       name,
			TeamAbbreviation: team,
			Conference:       ConferenceOf(team),
			GamesPlayed:      int(num(row, "GP")),
			MinutesPerGame:   num(row, "MIN"),
			PointsPerGame:    rec.Points,
			ReboundsPerGame:  rec.Rebounds,
			AssistsPerGame:   rec.Assists,
			StealsPerGame:    rec.Steals,
			BlocksPerGame:    rec.Blocks,
			FieldGoalPct:     num(row, "FG_PCT"),
			ThreePointPct:    num(row, "FG3_PCT"),
			FreeThrowPct:     num(row, "FT_PCT"),
		}
		if id != "" {
			standing.PlayerImageURL = fmt.Sprintf("https://cdn.nba.com/headshots/nba/latest/1040x760/%s.png", id)
		}
		if info, ok := ResolveTeam(team); ok {
			standing.TeamID = info.ID
		}

		s.players[strings.ToLower(name)] = &playerRow{record: rec, standing: standing}
	}

	return nil
}

func readCSV(path string) ([][]string, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read row: %w", err)
		}
		if len(row) == len(header) {
			rows = append(rows, row)
		}
	}
	return rows, header, nil
}

func pickColumn(header []string, names ...string) int {
	for _, name := range names {
		for i, h := range header {
			if strings.EqualFold(h, name) {
				return i
			}
		}
	}
	return -1
}

// parseGameDate accepts the formats the gathering pipeline has exported:
// "APR 11, 2025" (stats API) and ISO "2025-04-11".
func parseGameDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"Jan 02, 2006", "2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	// Month names arrive upper-cased from the stats API ("APR 11, 2025")
	if len(s) > 3 {
		fixed := s[:1] + strings.ToLower(s[1:3]) + s[3:]
		if t, err := time.Parse("Jan 02, 2006", fixed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
