// Package config loads the dashboard configuration from a section-delimited
// key/value file, with environment variable overrides for credentials.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/xNickChildx/mult-ff-viewer-pub/model"
	"gopkg.in/ini.v1"
)

// Config is immutable for the process lifetime.
type Config struct {
	Users     []model.User
	LeagueIDs []string
	Year      int
	ESPNS2    string
	SWID      string
}

// Load reads the config file at path. The espn_s2 and swid credentials can
// be overridden with the ESPN_S2 and SWID environment variables; both may be
// empty for public leagues.
func Load(path string) (*Config, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	teamInfo := f.Section("team_info")

	users, err := model.ParseUsers(teamInfo.Key("user_name").String())
	if err != nil {
		return nil, fmt.Errorf("error parsing team_info.user_name: %w", err)
	}

	leagueIDs := strings.Fields(teamInfo.Key("league_ids").String())
	if len(leagueIDs) == 0 {
		return nil, fmt.Errorf("team_info.league_ids must list at least one league")
	}

	year, err := teamInfo.Key("year").Int()
	if err != nil {
		return nil, fmt.Errorf("error parsing team_info.year: %w", err)
	}
	if year <= 0 {
		return nil, fmt.Errorf("team_info.year must be a positive year, got %d", year)
	}

	secrets := f.Section("secrets")
	espnS2 := secrets.Key("espn_s2").String()
	swid := secrets.Key("swid").String()
	if v := os.Getenv("ESPN_S2"); v != "" {
		espnS2 = v
	}
	if v := os.Getenv("SWID"); v != "" {
		swid = v
	}

	return &Config{
		Users:     users,
		LeagueIDs: leagueIDs,
		Year:      year,
		ESPNS2:    espnS2,
		SWID:      swid,
	}, nil
}
