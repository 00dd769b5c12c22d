package price

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"solana-money-mover/config"
	"solana-money-mover/pkg/apperror"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// JupiterClient implements ports.PriceOracle against the Jupiter price API.
type JupiterClient struct {
	baseURL    string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewJupiterClient creates a new JupiterClient.
func NewJupiterClient(cfg config.PriceConfig, httpClient HTTPClient, log zerolog.Logger) *JupiterClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &JupiterClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		log:        log,
	}
}

// priceResponse mirrors the Jupiter /price payload:
// {"data":{"SOL":{"id":"SOL","price":100.0},...}}
type priceResponse struct {
	Data map[string]struct {
		Price float64 `json:"price"`
	} `json:"data"`
}

// GetPrices fetches USD unit prices for a batch of asset identifiers.
// Assets the API does not know stay absent from the returned map.
func (c *JupiterClient) GetPrices(ctx context.Context, assetIDs []string) (map[string]float64, error) {
	if len(assetIDs) == 0 {
		return map[string]float64{}, nil
	}

	endpoint := fmt.Sprintf("%s/price?ids=%s", c.baseURL, url.QueryEscape(strings.Join(assetIDs, ",")))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperror.ErrPriceQuery(fmt.Errorf("build price request: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperror.ErrPriceQuery(fmt.Errorf("price request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, apperror.ErrPriceQuery(fmt.Errorf("price api status %d: %s", resp.StatusCode, raw))
	}

	var payload priceResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperror.ErrPriceQuery(fmt.Errorf("decode price response: %w", err))
	}

	prices := make(map[string]float64, len(payload.Data))
	for id, entry := range payload.Data {
		if entry.Price > 0 {
			prices[id] = entry.Price
		}
	}

	c.log.Debug().
		Int("requested", len(assetIDs)).
		Int("priced", len(prices)).
		Msg("price batch resolved")

	return prices, nil
}

// GetPrice fetches the USD unit price of a single asset, failing when the
// API has no quote for it.
func (c *JupiterClient) GetPrice(ctx context.Context, assetID string) (float64, error) {
	prices, err := c.GetPrices(ctx, []string{assetID})
	if err != nil {
		return 0, err
	}
	price, ok := prices[assetID]
	if !ok {
		return 0, apperror.ErrPriceUnavailable(assetID)
	}
	return price, nil
}
