// Package provider is the single gateway to team, player, game, and
// standings data. It layers a live stats API over an on-disk CSV snapshot
// over a static franchise table, with a read-through cache in front, so the
// prediction pipeline never knows or cares which tier answered.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/gamechanger/nba-stats-api/internal/models"
)

var (
	providerFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nba_provider_fetches_total",
		Help: "Data provider lookups by serving tier",
	}, []string{"kind", "tier"})

	providerFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nba_provider_default_records_total",
		Help: "Lookups answered with the last-resort default record",
	})
)

// Config wires the provider tiers. Client and Redis are optional; a nil
// Client means snapshot-only operation.
type Config struct {
	Client   *StatsClient
	Snapshot *Snapshot
	Redis    *redis.Client
	CacheTTL time.Duration
	Logger   *zap.Logger
}

// Provider implements the data access the services need. Safe for
// concurrent use: the in-process cache tolerates racing idempotent writes,
// and singleflight collapses concurrent fetches for the same team.
type Provider struct {
	client   *StatsClient
	snapshot *Snapshot
	redis    *redis.Client
	cache    *gocache.Cache
	sf       singleflight.Group
	logger   *zap.SugaredLogger
	now      func() time.Time
}

// New builds a Provider from the configured tiers.
func New(cfg Config) *Provider {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	snap := cfg.Snapshot
	if snap == nil {
		snap = &Snapshot{
			teams:   map[string]*teamLog{},
			players: map[string]*playerRow{},
		}
	}
	return &Provider{
		client:   cfg.Client,
		snapshot: snap,
		redis:    cfg.Redis,
		cache:    gocache.New(ttl, 2*ttl),
		logger:   cfg.Logger.Sugar(),
		now:      time.Now,
	}
}

// Teams returns the static franchise table.
func (p *Provider) Teams() []models.TeamInfo {
	return Teams()
}

// TeamStats resolves a team by name and returns its season stat record.
// Tier order: in-process cache, live API, Redis, CSV snapshot, and finally
// the league-average default record, which is logged loudly, never silent.
func (p *Provider) TeamStats(ctx context.Context, name string) (*models.TeamStatRecord, error) {
	info, ok := ResolveTeam(name)
	abbr := info.Abbreviation
	if !ok {
		// Unresolvable names still get a record so predictions degrade
		// instead of crashing game listings.
		abbr = name
	}

	key := "team_stats:" + abbr
	if v, found := p.cache.Get(key); found {
		providerFetches.WithLabelValues("team_stats", "cache").Inc()
		return v.(*models.TeamStatRecord), nil
	}

	v, err, _ := p.sf.Do(key, func() (interface{}, error) {
		rec := p.fetchTeamStats(ctx, abbr)
		p.cache.Set(key, rec, gocache.DefaultExpiration)
		return rec, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.TeamStatRecord), nil
}

func (p *Provider) fetchTeamStats(ctx context.Context, abbr string) *models.TeamStatRecord {
	if p.client != nil {
		rec, err := p.client.TeamStats(ctx, abbr)
		if err == nil {
			providerFetches.WithLabelValues("team_stats", "live").Inc()
			p.redisSet(ctx, "team_stats:"+abbr, rec)
			return rec
		}
		p.logger.Warnw("Live team stats fetch failed, falling back", "team", abbr, "error", err)
	}

	var cached models.TeamStatRecord
	if p.redisGet(ctx, "team_stats:"+abbr, &cached) {
		providerFetches.WithLabelValues("team_stats", "redis").Inc()
		return &cached
	}

	if rec, ok := p.snapshot.TeamStats(abbr); ok {
		providerFetches.WithLabelValues("team_stats", "snapshot").Inc()
		return rec
	}

	providerFetches.WithLabelValues("team_stats", "default").Inc()
	providerFallbacks.Inc()
	p.logger.Errorw("No data for team in any tier, serving default record", "team", abbr)
	return defaultStatRecord(abbr)
}

// TeamSituation returns rest-day and recent-form context for a team.
func (p *Provider) TeamSituation(ctx context.Context, name string) *models.TeamSituation {
	info, ok := ResolveTeam(name)
	abbr := info.Abbreviation
	if !ok {
		abbr = name
	}

	key := "team_situation:" + abbr
	if v, found := p.cache.Get(key); found {
		return v.(*models.TeamSituation)
	}

	sit := p.fetchTeamSituation(ctx, abbr)
	p.cache.Set(key, sit, gocache.DefaultExpiration)
	return sit
}

func (p *Provider) fetchTeamSituation(ctx context.Context, abbr string) *models.TeamSituation {
	if p.client != nil {
		sit, err := p.client.TeamSituation(ctx, abbr)
		if err == nil {
			providerFetches.WithLabelValues("team_situation", "live").Inc()
			return sit
		}
		p.logger.Warnw("Live situation fetch failed, falling back", "team", abbr, "error", err)
	}

	if sit, ok := p.snapshot.TeamSituation(abbr, p.now()); ok {
		providerFetches.WithLabelValues("team_situation", "snapshot").Inc()
		return sit
	}

	providerFetches.WithLabelValues("team_situation", "default").Inc()
	return defaultSituation()
}

// PlayerStats returns a player's season averages. An unknown player yields
// a zeroed record so downstream impact math bottoms out at its floor.
func (p *Provider) PlayerStats(ctx context.Context, name string) *models.PlayerStatRecord {
	key := "player_stats:" + name
	if v, found := p.cache.Get(key); found {
		return v.(*models.PlayerStatRecord)
	}

	rec := p.fetchPlayerStats(ctx, name)
	p.cache.Set(key, rec, gocache.DefaultExpiration)
	return rec
}

func (p *Provider) fetchPlayerStats(ctx context.Context, name string) *models.PlayerStatRecord {
	if p.client != nil {
		rec, err := p.client.PlayerStats(ctx, name)
		if err == nil {
			providerFetches.WithLabelValues("player_stats", "live").Inc()
			return rec
		}
		p.logger.Warnw("Live player stats fetch failed, falling back", "player", name, "error", err)
	}

	if rec, ok := p.snapshot.PlayerStats(name); ok {
		providerFetches.WithLabelValues("player_stats", "snapshot").Inc()
		return rec
	}

	providerFetches.WithLabelValues("player_stats", "default").Inc()
	providerFallbacks.Inc()
	p.logger.Errorw("No data for player in any tier, serving zero record", "player", name)
	return &models.PlayerStatRecord{PlayerName: name}
}

// TeamStandings returns the league standings table, unfiltered and ranked
// by win percentage.
func (p *Provider) TeamStandings(ctx context.Context) ([]models.TeamStanding, error) {
	const key = "team_standings"
	if v, found := p.cache.Get(key); found {
		return v.([]models.TeamStanding), nil
	}

	if p.client != nil {
		standings, err := p.client.Standings(ctx)
		if err == nil && len(standings) > 0 {
			providerFetches.WithLabelValues("standings", "live").Inc()
			p.cache.Set(key, standings, gocache.DefaultExpiration)
			return standings, nil
		}
		if err != nil {
			p.logger.Warnw("Live standings fetch failed, falling back", "error", err)
		}
	}

	standings := p.snapshot.Standings()
	if len(standings) == 0 {
		return nil, fmt.Errorf("standings: no data in any tier")
	}
	providerFetches.WithLabelValues("standings", "snapshot").Inc()
	p.cache.Set(key, standings, gocache.DefaultExpiration)
	return standings, nil
}

// PlayerStandings returns the player leaderboard rows for a stat category.
func (p *Provider) PlayerStandings(ctx context.Context, statCategory string) ([]models.PlayerStanding, error) {
	key := "player_standings:" + statCategory
	if v, found := p.cache.Get(key); found {
		return v.([]models.PlayerStanding), nil
	}

	if p.client != nil {
		standings, err := p.client.PlayerStandings(ctx, statCategory)
		if err == nil && len(standings) > 0 {
			providerFetches.WithLabelValues("player_standings", "live").Inc()
			p.cache.Set(key, standings, gocache.DefaultExpiration)
			return standings, nil
		}
		if err != nil {
			p.logger.Warnw("Live player standings fetch failed, falling back", "error", err)
		}
	}

	standings := p.snapshot.PlayerStandings()
	if len(standings) == 0 {
		return nil, fmt.Errorf("player standings: no data in any tier")
	}
	providerFetches.WithLabelValues("player_standings", "snapshot").Inc()
	return standings, nil
}

// Games returns the current scoreboard. When the live provider is down the
// deterministic fixture slate stands in, so game listings keep rendering.
func (p *Provider) Games(ctx context.Context) []models.Game {
	const key = "games"
	if v, found := p.cache.Get(key); found {
		return v.([]models.Game)
	}

	if p.client != nil {
		games, err := p.client.Games(ctx)
		if err == nil && len(games) > 0 {
			providerFetches.WithLabelValues("games", "live").Inc()
			p.cache.Set(key, games, gocache.DefaultExpiration)
			return games
		}
		if err != nil {
			p.logger.Warnw("Live scoreboard fetch failed, serving fixtures", "error", err)
		}
	}

	providerFetches.WithLabelValues("games", "fixture").Inc()
	return fixtureGames(p.now())
}

// Snapshot date for response metadata.
func (p *Provider) SnapshotDate() string {
	return p.snapshot.LoadedAt().Format("2006-01-02")
}

func (p *Provider) redisSet(ctx context.Context, key string, value interface{}) {
	if p.redis == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := p.redis.Set(ctx, "nba:"+key, data, 24*time.Hour).Err(); err != nil {
		p.logger.Warnw("Redis cache write failed", "key", key, "error", err)
	}
}

func (p *Provider) redisGet(ctx context.Context, key string, dest interface{}) bool {
	if p.redis == nil {
		return false
	}
	data, err := p.redis.Get(ctx, "nba:"+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			p.logger.Warnw("Redis cache read failed", "key", key, "error", err)
		}
		return false
	}
	return json.Unmarshal(data, dest) == nil
}
