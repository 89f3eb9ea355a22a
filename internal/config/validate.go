package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
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

	if err := c.Knowledge.validate(); err != nil {
		return fmt.Errorf("knowledge: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.RateLimit.LoginPerMinute < 0 {
		return fmt.Errorf("rate_limit.login_per_minute must be >= 0 (got %d)", c.RateLimit.LoginPerMinute)
	}

	return nil
}

func (k *KnowledgeConfig) validate() error {
	if k.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", k.DefaultPageSize)
	}
	if k.MaxPageSize < k.DefaultPageSize {
		return fmt.Errorf("max_page_size must be >= default_page_size (got %d < %d)", k.MaxPageSize, k.DefaultPageSize)
	}
	if k.UserPageSize <= 0 {
		return fmt.Errorf("user_page_size must be > 0 (got %d)", k.UserPageSize)
	}
	if k.NotificationLimit <= 0 {
		return fmt.Errorf("notification_limit must be > 0 (got %d)", k.NotificationLimit)
	}
	if k.NotificationRetentDays <= 0 {
		return fmt.Errorf("notification_retent_days must be > 0 (got %d)", k.NotificationRetentDays)
	}
	return nil
}
