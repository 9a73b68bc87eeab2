// Package config turns the process environment into a typed Config.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
	"liyu1981.xyz/aquarium-service/pkg/aqua"
	"liyu1981.xyz/aquarium-service/pkg/common"
)

const (
	DefaultPort                 = 3001
	DefaultDBPath               = "aquarium.db"
	DefaultDemoUser             = "admin"
	DefaultDemoPassword         = "admin"
	DefaultSessionPurgeInterval = time.Minute
)

type DBType string

const (
	DBTypeMemory DBType = "memory"
	DBTypeFile   DBType = "file"
)

type Config struct {
	Port         int
	GrpcHostPort string

	DBType DBType
	DBPath string

	// RateLimited is false when AQUA_DEFAULT_RATE is unset, which disables limiting.
	RateLimited  bool
	DefaultRate  rate.Limit
	DefaultBurst int

	SessionTTL           time.Duration
	SessionPurgeInterval time.Duration
	RequireAuth          bool
	OrphanPolicy         aqua.OrphanPolicy

	DemoUser     string
	DemoPassword string
}

func (c *Config) HttpHostPort() string {
	return fmt.Sprintf(":%d", c.Port)
}

// LoadDotEnv reads .env into the environment when the file exists. Values already set win.
func LoadDotEnv(files ...string) (bool, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return false, nil
	}

	if err := godotenv.Load(existing...); err != nil {
		return false, fmt.Errorf("load %s: %w", strings.Join(existing, ","), err)
	}
	return true, nil
}

func lookup(key string) (string, bool) {
	v, found := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, found && v != ""
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:                 DefaultPort,
		DBType:               DBTypeMemory,
		DBPath:               DefaultDBPath,
		SessionPurgeInterval: DefaultSessionPurgeInterval,
		OrphanPolicy:         aqua.OrphanPolicyKeep,
		DemoUser:             DefaultDemoUser,
		DemoPassword:         DefaultDemoPassword,
	}

	if v, ok := lookup(common.EnvKeyPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return nil, fmt.Errorf("invalid %s %q, should be a port number", common.EnvKeyPort, v)
		}
		cfg.Port = port
	}

	if v, ok := lookup(common.EnvKeyAquaGrpcHostPort); ok {
		cfg.GrpcHostPort = v
	}

	if v, ok := lookup(common.EnvKeyAquaDBType); ok {
		switch DBType(v) {
		case DBTypeMemory, DBTypeFile:
			cfg.DBType = DBType(v)
		default:
			return nil, fmt.Errorf("unknown %s %q, want memory or file", common.EnvKeyAquaDBType, v)
		}
	}

	if v, ok := lookup(common.EnvKeyAquaDbPath); ok {
		cfg.DBPath = v
	}

	if v, ok := lookup(common.EnvKeyAquaDefaultRate); ok {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r < 0 {
			return nil, fmt.Errorf("invalid %s %q, should be a non-negative float64 value", common.EnvKeyAquaDefaultRate, v)
		}
		cfg.RateLimited = true
		cfg.DefaultRate = rate.Limit(r)
		cfg.DefaultBurst = 1

		if v, ok := lookup(common.EnvKeyAquaDefaultBurst); ok {
			burst, err := strconv.ParseInt(v, 10, 64)
			if err != nil || burst < 0 {
				return nil, fmt.Errorf("invalid %s %q, should be a non-negative int value", common.EnvKeyAquaDefaultBurst, v)
			}
			cfg.DefaultBurst = int(burst)
		}
	}

	if v, ok := lookup(common.EnvKeyAquaSessionTTL); ok {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl < 0 {
			return nil, fmt.Errorf("invalid %s %q, should be a duration like 24h", common.EnvKeyAquaSessionTTL, v)
		}
		cfg.SessionTTL = ttl
	}

	if v, ok := lookup(common.EnvKeyAquaSessionPurgeInterval); ok {
		interval, err := time.ParseDuration(v)
		if err != nil || interval <= 0 {
			return nil, fmt.Errorf("invalid %s %q, should be a positive duration", common.EnvKeyAquaSessionPurgeInterval, v)
		}
		cfg.SessionPurgeInterval = interval
	}

	if v, ok := lookup(common.EnvKeyAquaRequireAuth); ok {
		requireAuth, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q, should be true or false", common.EnvKeyAquaRequireAuth, v)
		}
		cfg.RequireAuth = requireAuth
	}

	if v, ok := lookup(common.EnvKeyAquaOrphanFish); ok {
		policy, err := aqua.ParseOrphanPolicy(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", common.EnvKeyAquaOrphanFish, err)
		}
		cfg.OrphanPolicy = policy
	}

	if v, found := os.LookupEnv(common.EnvKeyAquaDemoUser); found {
		cfg.DemoUser = strings.TrimSpace(v)
	}
	if v, found := os.LookupEnv(common.EnvKeyAquaDemoPassword); found {
		cfg.DemoPassword = v
	}

	return cfg, nil
}
