package repository

import (
	"testing"

	"golang-stock-alert/internal/alerter/config"
	"golang-stock-alert/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quoteConfig(mutate func(*config.Quote)) *config.Config {
	cfg := &config.Config{
		Quote: config.Quote{
			BaseURL:             "https://polling.finance.naver.com",
			MaxRequestPerMinute: 60,
			Timeout:             "10s",
			CacheTTL:            "30s",
		},
	}
	if mutate != nil {
		mutate(&cfg.Quote)
	}
	return cfg
}

func TestNewNaverQuoteRepositoryValidation(t *testing.T) {
	log, err := logger.New("error", "json")
	require.NoError(t, err)

	t.Run("valid config", func(t *testing.T) {
		repo, err := NewNaverQuoteRepository(quoteConfig(nil), log)
		require.NoError(t, err)
		assert.NotNil(t, repo)
	})

	t.Run("bad timeout", func(t *testing.T) {
		_, err := NewNaverQuoteRepository(quoteConfig(func(q *config.Quote) { q.Timeout = "soon" }), log)
		assert.Error(t, err)
	})

	t.Run("bad cache ttl", func(t *testing.T) {
		_, err := NewNaverQuoteRepository(quoteConfig(func(q *config.Quote) { q.CacheTTL = "" }), log)
		assert.Error(t, err)
	})

	t.Run("zero request limit", func(t *testing.T) {
		_, err := NewNaverQuoteRepository(quoteConfig(func(q *config.Quote) { q.MaxRequestPerMinute = 0 }), log)
		assert.Error(t, err)
	})

	t.Run("negative request limit", func(t *testing.T) {
		_, err := NewNaverQuoteRepository(quoteConfig(func(q *config.Quote) { q.MaxRequestPerMinute = -5 }), log)
		assert.Error(t, err)
	})
}
