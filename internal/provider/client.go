package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/gamechanger/nba-stats-api/internal/models"
)

// StatsClientConfig configures the live stats API client.
type StatsClientConfig struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	// RateLimit is requests per second against the upstream API, which
	// throttles aggressively.
	RateLimit float64
	Logger    *zap.Logger
}

// StatsClient talks to the live stats provider. All calls carry the
// configured timeout; the upstream being slow must never hang a request
// indefinitely; callers fall back to the snapshot on error.
type StatsClient struct {
	base    string
	client  *retryablehttp.Client
	limiter *rate.Limiter
	timeout time.Duration
	logger  *zap.SugaredLogger
}

// NewStatsClient builds a rate-limited, retrying client for the stats API.
func NewStatsClient(cfg StatsClientConfig) *StatsClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 5
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient.Timeout = cfg.Timeout
	rc.RetryMax = cfg.MaxRetries
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.Logger = nil

	return &StatsClient{
		base:    cfg.BaseURL,
		client:  rc,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
		timeout: cfg.Timeout,
		logger:  cfg.Logger.Sugar(),
	}
}

// TeamStats fetches a team's current season aggregates.
func (c *StatsClient) TeamStats(ctx context.Context, abbr string) (*models.TeamStatRecord, error) {
	var rec models.TeamStatRecord
	if err := c.getJSON(ctx, "/teams/"+url.PathEscape(abbr)+"/stats", &rec); err != nil {
		return nil, err
	}
	if rec.TeamAbbr == "" {
		rec.TeamAbbr = abbr
	}
	return &rec, nil
}

// TeamSituation fetches schedule context (rest, recent form, home flag).
func (c *StatsClient) TeamSituation(ctx context.Context, abbr string) (*models.TeamSituation, error) {
	var sit models.TeamSituation
	if err := c.getJSON(ctx, "/teams/"+url.PathEscape(abbr)+"/situation", &sit); err != nil {
		return nil, err
	}
	return &sit, nil
}

// PlayerStats fetches a player's season averages by name.
func (c *StatsClient) PlayerStats(ctx context.Context, name string) (*models.PlayerStatRecord, error) {
	var rec models.PlayerStatRecord
	if err := c.getJSON(ctx, "/players/"+url.PathEscape(name)+"/stats", &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Standings fetches the league standings table.
func (c *StatsClient) Standings(ctx context.Context) ([]models.TeamStanding, error) {
	var out struct {
		Standings []models.TeamStanding `json:"standings"`
	}
	if err := c.getJSON(ctx, "/standings", &out); err != nil {
		return nil, err
	}
	return out.Standings, nil
}

// PlayerStandings fetches the player leaderboard for a stat category.
func (c *StatsClient) PlayerStandings(ctx context.Context, statCategory string) ([]models.PlayerStanding, error) {
	var out struct {
		Standings []models.PlayerStanding `json:"standings"`
	}
	path := "/players/leaders?stat=" + url.QueryEscape(statCategory)
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out.Standings, nil
}

// Games fetches the current scoreboard: today's, live, and upcoming games.
func (c *StatsClient) Games(ctx context.Context) ([]models.Game, error) {
	var out struct {
		Games []models.Game `json:"games"`
	}
	if err := c.getJSON(ctx, "/scoreboard", &out); err != nil {
		return nil, err
	}
	return out.Games, nil
}

func (c *StatsClient) getJSON(ctx context.Context, path string, dest interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("stats api rate limit: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return fmt.Errorf("stats api request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("stats api %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("stats api %s: status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("stats api %s: decode: %w", path, err)
	}
	return nil
}
