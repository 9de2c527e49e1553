package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if err := c.Tenancy.validate(); err != nil {
		return fmt.Errorf("tenancy: %w", err)
	}

	if c.RateLimit.AuthPerMinute <= 0 || c.RateLimit.JoinPerMinute <= 0 {
		return fmt.Errorf("rate_limit: budgets must be > 0 (auth=%d, join=%d)",
			c.RateLimit.AuthPerMinute, c.RateLimit.JoinPerMinute)
	}

	if c.CORS.MaxAge < 0 {
		return fmt.Errorf("cors.max_age must be >= 0 (got %d)", c.CORS.MaxAge)
	}
	if c.CORS.AllowCredentials && strings.Contains(c.CORS.AllowedOrigins, "*") {
		return fmt.Errorf("cors.allowed_origins must list origins explicitly when credentials are allowed")
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (t TenancyConfig) validate() error {
	if t.JoinCodeMaxAttempts < 1 {
		return fmt.Errorf("join_code_max_attempts must be >= 1 (got %d)", t.JoinCodeMaxAttempts)
	}
	if t.MaxAncestorDepth < 1 {
		return fmt.Errorf("max_ancestor_depth must be >= 1 (got %d)", t.MaxAncestorDepth)
	}
	if t.MaxTreeDepth < 1 {
		return fmt.Errorf("max_tree_depth must be >= 1 (got %d)", t.MaxTreeDepth)
	}
	return nil
}
