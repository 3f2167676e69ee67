package db

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classfinder/internal/config"
	"classfinder/internal/pkg/apperrors"
)

func TestNewPostgresDBUnreachable(t *testing.T) {
	// Port 1 is never a Postgres listener, so the dial fails immediately.
	cfg := &config.Config{}
	cfg.Database.Host = "127.0.0.1"
	cfg.Database.Port = "1"
	cfg.Database.User = "postgres"
	cfg.Database.Password = "postgres"
	cfg.Database.DBName = "cfdb"
	cfg.Database.SSLMode = "disable"
	cfg.Database.MaxIdleConns = 1
	cfg.Database.MaxOpenConns = 1
	cfg.Database.ConnMaxLifetime = "1h"

	_, err := NewPostgresDB(cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConnectionFailed))
}
