package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fproduction/studio-backend/config"
)

func validAdmin() *config.Config {
	return &config.Config{
		AdminUsername: "admin",
		AdminPassword: "s3cret",
		SessionSecret: "0123456789abcdef",
	}
}

func TestValidateAdminAcceptsCompleteConfig(t *testing.T) {
	assert.NoError(t, validAdmin().ValidateAdmin())
}

func TestValidateAdminAcceptsHashInsteadOfPassword(t *testing.T) {
	cfg := validAdmin()
	cfg.AdminPassword = ""
	cfg.AdminPasswordHash = "$2a$10$abcdefghijklmnopqrstuv"
	assert.NoError(t, cfg.ValidateAdmin())
}

func TestValidateAdminRejectsMissingPieces(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"no username", func(c *config.Config) { c.AdminUsername = "" }, "ADMIN_USERNAME"},
		{"no password or hash", func(c *config.Config) { c.AdminPassword = "" }, "ADMIN_PASSWORD"},
		{"no session secret", func(c *config.Config) { c.SessionSecret = "" }, "ADMIN_SESSION_SECRET"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validAdmin()
			tc.mutate(cfg)
			err := cfg.ValidateAdmin()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestValidateAdminRejectsEmptyConfig(t *testing.T) {
	err := (&config.Config{}).ValidateAdmin()
	assert.Error(t, err)
}
