package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags_OverridesDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin",
		"-a", ":9999",
		"-d", "postgres://other/db",
		"-s", "flag_secret",
		"-t", "90",
		"-w", "14",
		"-b", "flagbucket",
	}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, ":9999", cfg.EndpointAddrHTTP)
	assert.Equal(t, "postgres://other/db", cfg.DatabaseDSN)
	assert.Equal(t, "flag_secret", cfg.SecretKey)
	assert.Equal(t, 90*time.Minute, cfg.TokenValidityDuration)
	assert.Equal(t, 14, cfg.BcryptCost)
	assert.Equal(t, "flagbucket", cfg.S3Bucket)
}

func Test_parseFlags_NoFlagsKeepsDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, ":8080", cfg.EndpointAddrHTTP)
	assert.Equal(t, 1*time.Hour, cfg.TokenValidityDuration)
}
