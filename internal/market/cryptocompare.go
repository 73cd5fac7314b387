package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/coinfolio/portfolio-tracker/internal/domain"
)

const (
	defaultBaseURL       = "https://min-api.cryptocompare.com"
	defaultQuoteCurrency = "USD"
	defaultTimeout       = 10 * time.Second
)

// Client queries the CryptoCompare pricemulti endpoint, which returns
// current prices for many symbols in one call:
//
//	GET /data/pricemulti?fsyms=BTC,ETH&tsyms=USD
//	{"BTC":{"USD":43250.12},"ETH":{"USD":2310.55}}
type Client struct {
	baseURL       string
	quoteCurrency string
	httpClient    *http.Client
	log           *zap.SugaredLogger
}

var _ Provider = (*Client)(nil)

// NewClient builds a client from the API section of the configuration.
// Zero-valued fields fall back to the public CryptoCompare endpoint, USD
// and a 10 second timeout. A nil logger is replaced with a no-op one.
func NewClient(cfg domain.APIConfig, log *zap.SugaredLogger) *Client {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	currency := strings.ToUpper(cfg.QuoteCurrency)
	if currency == "" {
		currency = defaultQuoteCurrency
	}
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return &Client{
		baseURL:       baseURL,
		quoteCurrency: currency,
		httpClient:    &http.Client{Timeout: timeout},
		log:           log,
	}
}

func (c *Client) Name() string { return "cryptocompare" }

// Fetch returns one quote per priced symbol, sorted by symbol. Prices are
// decoded straight into decimals so no value ever passes through float64.
func (c *Client) Fetch(ctx context.Context, symbols []string) ([]domain.Quote, error) {
	if len(symbols) == 0 {
		return nil, nil
	}

	query := url.Values{}
	query.Set("fsyms", strings.Join(symbols, ","))
	query.Set("tsyms", c.quoteCurrency)
	addr := c.baseURL + "/data/pricemulti?" + query.Encode()

	payload := make(map[string]map[string]decimal.Decimal)
	if err := c.getJSON(ctx, addr, &payload); err != nil {
		return nil, err
	}

	quotes := make([]domain.Quote, 0, len(payload))
	for symbol, prices := range payload {
		price, ok := prices[c.quoteCurrency]
		if !ok {
			c.log.Debugw("symbol not priced in quote currency", "symbol", symbol, "currency", c.quoteCurrency)
			continue
		}
		quotes = append(quotes, domain.Quote{Symbol: symbol, Price: price})
	}
	sort.Slice(quotes, func(i, j int) bool { return quotes[i].Symbol < quotes[j].Symbol })

	c.log.Debugw("fetched quotes", "requested", len(symbols), "received", len(quotes))
	return quotes, nil
}

// getJSON performs an HTTP GET and unmarshals the JSON response into data.
func (c *Client) getJSON(ctx context.Context, addr string, data interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(data); err != nil {
		return fmt.Errorf("malformed price feed response: %w", err)
	}
	return nil
}
