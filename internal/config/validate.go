package config

import (
	"errors"
	"fmt"
	"strings"
)

const minJWTSecretLen = 32

// Validate checks configuration values that cleanenv tags cannot express.
func (c *Config) Validate() error {
	var errs []string

	if len(c.Auth.JWTSecret) < minJWTSecretLen {
		errs = append(errs, fmt.Sprintf("auth.jwt_secret must be at least %d characters", minJWTSecretLen))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		errs = append(errs, "auth.access_token_ttl must be positive")
	}
	if c.Auth.RefreshTokenTTL <= c.Auth.AccessTokenTTL {
		errs = append(errs, "auth.refresh_token_ttl must exceed auth.access_token_ttl")
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		errs = append(errs, "auth.password_hash_cost must be between 4 and 31")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, "server.port must be between 1 and 65535")
	}

	if c.Database.DSN == "" {
		errs = append(errs, "database.dsn is required")
	}
	if c.Database.MinConns > c.Database.MaxConns {
		errs = append(errs, "database.min_conns must not exceed database.max_conns")
	}

	if c.Submissions.BulkMaxIDs < 1 {
		errs = append(errs, "submissions.bulk_max_ids must be positive")
	}
	if c.Submissions.ExportMaxRows < 1 {
		errs = append(errs, "submissions.export_max_rows must be positive")
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, "log.level must be one of debug, info, warn, error")
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, "log.format must be json or text")
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute < 1 {
		errs = append(errs, "rate_limit.requests_per_minute must be positive when enabled")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
