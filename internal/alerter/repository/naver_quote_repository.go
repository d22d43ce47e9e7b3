package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang-stock-alert/internal/alerter/config"
	"golang-stock-alert/internal/alerter/dto"
	"golang-stock-alert/internal/entity"
	"golang-stock-alert/pkg/logger"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// QuoteRepository defines the contract for the upstream price source.
// A nil price with a nil error means the source had no quote for the
// code; callers skip that stock for the cycle.
type QuoteRepository interface {
	GetCurrentPrice(ctx context.Context, code string) (*entity.Price, error)
	GetCurrentPrices(ctx context.Context, codes []string) (map[string]entity.Price, error)
}

type naverQuoteRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
	quoteCache     *cache.Cache
}

// NewNaverQuoteRepository creates a quote repository backed by the Naver
// realtime polling API.
func NewNaverQuoteRepository(cfg *config.Config, log *logger.Logger) (QuoteRepository, error) {
	timeout, err := time.ParseDuration(cfg.Quote.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid quote timeout: %w", err)
	}
	cacheTTL, err := time.ParseDuration(cfg.Quote.CacheTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid quote cache_ttl: %w", err)
	}
	if cfg.Quote.MaxRequestPerMinute <= 0 {
		return nil, fmt.Errorf("invalid quote max_request_per_minute: must be positive, got %d", cfg.Quote.MaxRequestPerMinute)
	}

	secondsPerRequest := time.Minute / time.Duration(cfg.Quote.MaxRequestPerMinute)
	return &naverQuoteRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
		quoteCache:     cache.New(cacheTTL, 2*cacheTTL),
	}, nil
}

// GetCurrentPrice returns the current price for one code, or nil if the
// source has no quote for it.
func (r *naverQuoteRepository) GetCurrentPrice(ctx context.Context, code string) (*entity.Price, error) {
	if cached, ok := r.quoteCache.Get(code); ok {
		price := cached.(entity.Price)
		return &price, nil
	}

	prices, err := r.GetCurrentPrices(ctx, []string{code})
	if err != nil {
		return nil, err
	}
	price, ok := prices[code]
	if !ok {
		return nil, nil
	}
	return &price, nil
}

// GetCurrentPrices fetches quotes for all codes in one batched call.
// Codes the upstream does not return are simply absent from the map.
func (r *naverQuoteRepository) GetCurrentPrices(ctx context.Context, codes []string) (map[string]entity.Price, error) {
	if len(codes) == 0 {
		return map[string]entity.Price{}, nil
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	url := fmt.Sprintf("%s/api/realtime/domestic/stock/%s", r.cfg.Quote.BaseURL, strings.Join(codes, ","))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("quote request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote request returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var response dto.NaverQuoteResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to decode quote response: %w", err)
	}

	prices := make(map[string]entity.Price, len(response.Datas))
	for _, data := range response.Datas {
		if data.ItemCode == "" || data.ClosePrice == "" {
			continue
		}
		price, err := entity.NewPriceFromString(strings.ReplaceAll(data.ClosePrice, ",", ""))
		if err != nil {
			r.log.ErrorContext(ctx, "Skipping unparseable quote",
				logger.ErrorField(err), logger.StringField("stock_code", data.ItemCode))
			continue
		}
		prices[data.ItemCode] = price
		r.quoteCache.Set(data.ItemCode, price, cache.DefaultExpiration)
	}

	r.log.DebugContext(ctx, "Fetched quotes",
		logger.IntField("requested", len(codes)), logger.IntField("returned", len(prices)))

	return prices, nil
}
