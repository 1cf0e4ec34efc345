package exchange

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"github.com/tradelab/trading-support/internal/config"
)

const requestTimeout = 15 * time.Second

// APIError is a non-2xx reply from the exchange. Authentication
// failures from a bad signature arrive this way too, so the status and
// body are kept for the caller.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("exchange returned status %d: %s", e.StatusCode, e.Body)
}

// Client performs REST calls against the exchange: unauthenticated
// reads and signed order placement. One blocking request at a time, no
// automatic retries.
type Client struct {
	cfg  *config.Config
	http *resty.Client
	now  func() time.Time
}

func NewClient(cfg *config.Config) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(requestTimeout).
		SetHeader("Accept", "application/json")

	return &Client{
		cfg:  cfg,
		http: httpClient,
		now:  time.Now,
	}
}

// authHeaders builds the three signing headers for a request. Header
// names come from the config; defaults match the exchange's
// X-ACCESS-* scheme.
func (c *Client) authHeaders(method, path string, body []byte) map[string]string {
	timestamp := strconv.FormatInt(c.now().Unix(), 10)
	signature := sign(c.cfg.APISecret, timestamp, method, path, body)
	return map[string]string{
		c.cfg.AuthHeaders.Key:       c.cfg.APIKey,
		c.cfg.AuthHeaders.Signature: signature,
		c.cfg.AuthHeaders.Timestamp: timestamp,
	}
}

// Ticker fetches the public market snapshot for a symbol. The exchange
// answers with a one-element array per requested symbol; the first
// element is returned. A plain object comes back as-is.
func (c *Client) Ticker(symbol string) (map[string]interface{}, error) {
	resp, err := c.http.R().
		SetQueryParam("symbols", symbol).
		Get("/tickers")
	if err != nil {
		return nil, fmt.Errorf("fetch ticker for %s: %w", symbol, err)
	}
	if resp.IsError() {
		return nil, &APIError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}

	var parsed interface{}
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil, fmt.Errorf("decode ticker response: %w", err)
	}
	switch v := parsed.(type) {
	case []interface{}:
		if len(v) == 0 {
			return nil, fmt.Errorf("no ticker data for %s", symbol)
		}
		snapshot, ok := v[0].(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("unexpected ticker payload for %s", symbol)
		}
		return snapshot, nil
	case map[string]interface{}:
		return v, nil
	default:
		return nil, fmt.Errorf("unexpected ticker payload for %s", symbol)
	}
}

// OrderResponse is the exchange's reply to an order placement, parsed
// leniently since id and price arrive as strings or numbers depending
// on the endpoint version. Price is 0 when the exchange omitted it.
type OrderResponse struct {
	OrderID string
	Price   float64
	Raw     map[string]interface{}
}

// PlaceOrder submits a signed order. Amount and price travel as
// decimal strings, never binary floats: the signature covers this
// exact string form, so the serialized body and the signed bytes are
// one and the same buffer.
func (c *Client) PlaceOrder(symbol, side string, amount float64, price *float64, orderType string) (*OrderResponse, error) {
	if orderType == "" {
		orderType = "limit"
	}

	body := map[string]string{
		"symbol": symbol,
		"side":   side,
		"type":   orderType,
		"amount": formatDecimal(amount),
	}
	if price != nil {
		body["price"] = formatDecimal(*price)
	}

	payload, err := canonicalBody(body)
	if err != nil {
		return nil, fmt.Errorf("encode order body: %w", err)
	}

	const path = "/orders"
	req := c.http.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	for name, value := range c.authHeaders("POST", path, payload) {
		req.SetHeader(name, value)
	}

	log.Debug().
		Str("symbol", symbol).
		Str("side", side).
		Str("type", orderType).
		Str("amount", body["amount"]).
		Msg("placing order")

	resp, err := req.Post(path)
	if err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}
	if resp.IsError() {
		return nil, &APIError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		return nil, fmt.Errorf("decode order response: %w", err)
	}

	return &OrderResponse{
		OrderID: stringValue(raw["id"]),
		Price:   floatValue(raw["price"]),
		Raw:     raw,
	}, nil
}

// formatDecimal renders a float the way it reads: shortest exact
// decimal form, no exponent drift across the wire.
func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringValue(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}

func floatValue(v interface{}) float64 {
	switch f := v.(type) {
	case float64:
		return f
	case string:
		parsed, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}
