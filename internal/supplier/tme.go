package supplier

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"

	apperrors "parts-inventory-backend/internal/errors"
	"parts-inventory-backend/internal/logger"

	"github.com/shopspring/decimal"
)

const (
	tmeSearchEndpoint = "Products/Search.json"
	tmePricesEndpoint = "Products/GetPricesAndStocks.json"
)

// TMEConfig holds the TME API credentials
type TMEConfig struct {
	BaseURL string
	Token   string
	Secret  string
	Country string
}

// TMEConnector queries the TME product API
type TMEConnector struct {
	cfg        TMEConfig
	httpClient *http.Client
}

// NewTMEConnector creates a TME connector. Token and secret are required.
func NewTMEConnector(cfg TMEConfig) (*TMEConnector, error) {
	if cfg.BaseURL == "" || cfg.Token == "" || cfg.Secret == "" {
		return nil, fmt.Errorf("tme: %w", apperrors.ErrConnectorDisabled)
	}
	if cfg.Country == "" {
		cfg.Country = "CZ"
	}
	return &TMEConnector{cfg: cfg, httpClient: newHTTPClient()}, nil
}

func (c *TMEConnector) Name() string       { return "TME" }
func (c *TMEConnector) WebsiteURL() string { return "https://www.tme.eu" }
func (c *TMEConnector) HasAPI() bool       { return true }

type tmePrice struct {
	Amount     int             `json:"Amount"`
	PriceValue decimal.Decimal `json:"PriceValue"`
}

type tmeProduct struct {
	Symbol      string     `json:"Symbol"`
	Producer    string     `json:"Producer"`
	Description string     `json:"Description"`
	Amount      int        `json:"Amount"`
	PriceList   []tmePrice `json:"PriceList"`
}

type tmeResponse struct {
	Status string `json:"Status"`
	Data   struct {
		Currency    string       `json:"Currency"`
		ProductList []tmeProduct `json:"ProductList"`
	} `json:"Data"`
}

// Search resolves the TME symbol for the requested part and returns its price and stock
func (c *TMEConnector) Search(ctx context.Context, req SearchRequest) ([]Offer, error) {
	query := req.Query()
	if query == "" {
		return nil, nil
	}

	symbol, description, err := c.resolveSymbol(ctx, query, req.Manufacturer)
	if err != nil || symbol == "" {
		return nil, err
	}

	var resp tmeResponse
	if err := c.post(ctx, tmePricesEndpoint, map[string]string{
		"Language":      "EN",
		"Country":       c.cfg.Country,
		"SymbolList[0]": symbol,
	}, &resp); err != nil {
		return nil, err
	}

	var offers []Offer
	for _, product := range resp.Data.ProductList {
		offer := Offer{
			PartNumber:   product.Symbol,
			Description:  description,
			Currency:     resp.Data.Currency,
			InStock:      product.Amount > 0,
			AvailableQty: intPtr(product.Amount),
			MinOrderQty:  1,
			ProductURL:   "https://www.tme.eu/cz/details/" + url.PathEscape(product.Symbol),
		}
		if offer.Description == "" {
			offer.Description = product.Symbol
		}
		if len(product.PriceList) > 0 {
			offer.UnitPrice = product.PriceList[0].PriceValue
			if product.PriceList[0].Amount > 0 {
				offer.MinOrderQty = product.PriceList[0].Amount
			}
		}
		offers = append(offers, offer)
	}
	return offers, nil
}

// resolveSymbol finds the TME symbol for query, preferring a product from the given manufacturer
func (c *TMEConnector) resolveSymbol(ctx context.Context, query, manufacturer string) (string, string, error) {
	var resp tmeResponse
	if err := c.post(ctx, tmeSearchEndpoint, map[string]string{
		"Language":    "EN",
		"Country":     c.cfg.Country,
		"SearchPlain": query,
	}, &resp); err != nil {
		return "", "", err
	}
	if len(resp.Data.ProductList) == 0 {
		return "", "", nil
	}

	best := resp.Data.ProductList[0]
	if manufacturer != "" {
		for _, p := range resp.Data.ProductList {
			if strings.EqualFold(p.Producer, manufacturer) {
				best = p
				break
			}
		}
	}

	logger.WithContext(ctx).Debugf("TME: symbol %q resolved for %q", best.Symbol, query)
	return best.Symbol, best.Description, nil
}

// post sends a signed form request and decodes the JSON answer into out
func (c *TMEConnector) post(ctx context.Context, endpoint string, params map[string]string, out interface{}) error {
	params["Token"] = c.cfg.Token
	params["ApiSignature"] = tmeSignature(c.cfg.BaseURL, endpoint, params, c.cfg.Secret)

	form := url.Values{}
	for k, v := range params {
		form.Set(k, v)
	}

	fullURL := strings.TrimRight(c.cfg.BaseURL, "/") + "/" + strings.TrimLeft(endpoint, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tme request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read tme response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("tme %s returned status %d: %s", endpoint, resp.StatusCode, truncate(string(body), 200))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode tme response: %w", err)
	}
	return nil
}

// tmeSignature computes the request signature: HMAC-SHA1 over
// "POST&<encoded url>&<encoded sorted params>", base64 encoded.
// ApiSignature itself is never part of the signed parameters.
func tmeSignature(baseURL, endpoint string, params map[string]string, secret string) string {
	fullURL := strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(endpoint, "/")

	keys := make([]string, 0, len(params))
	for k := range params {
		if k == "ApiSignature" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, escapeDataString(k)+"="+escapeDataString(params[k]))
	}

	base := "POST&" + escapeDataString(fullURL) + "&" + escapeDataString(strings.Join(pairs, "&"))

	mac := hmac.New(sha1.New, []byte(secret))
	mac.Write([]byte(base))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// escapeDataString percent-encodes everything except RFC 3986 unreserved characters
func escapeDataString(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
