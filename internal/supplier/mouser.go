package supplier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	apperrors "parts-inventory-backend/internal/errors"

	"github.com/shopspring/decimal"
)

// MouserConfig holds the Mouser search API settings
type MouserConfig struct {
	BaseURL  string
	APIKey   string
	Currency string
}

// MouserConnector queries the Mouser part number search API
type MouserConnector struct {
	cfg        MouserConfig
	httpClient *http.Client
}

// NewMouserConnector creates a Mouser connector. An API key is required.
func NewMouserConnector(cfg MouserConfig) (*MouserConnector, error) {
	if cfg.BaseURL == "" || cfg.APIKey == "" {
		return nil, fmt.Errorf("mouser: %w", apperrors.ErrConnectorDisabled)
	}
	if cfg.Currency == "" {
		cfg.Currency = "CZK"
	}
	return &MouserConnector{cfg: cfg, httpClient: newHTTPClient()}, nil
}

func (c *MouserConnector) Name() string       { return "Mouser" }
func (c *MouserConnector) WebsiteURL() string { return "https://www.mouser.com" }
func (c *MouserConnector) HasAPI() bool       { return true }

type mouserSearchRequest struct {
	SearchByPartRequest struct {
		MouserPartNumber  string `json:"MouserPartNumber"`
		PartSearchOptions string `json:"PartSearchOptions"`
	} `json:"SearchByPartRequest"`
}

type mouserPriceBreak struct {
	Quantity int    `json:"Quantity"`
	Price    string `json:"Price"`
	Currency string `json:"Currency"`
}

type mouserPart struct {
	Availability        string             `json:"Availability"`
	AvailabilityInStock string             `json:"AvailabilityInStock"`
	Description         string             `json:"Description"`
	Manufacturer        string             `json:"Manufacturer"`
	MouserPartNumber    string             `json:"MouserPartNumber"`
	ProductDetailURL    string             `json:"ProductDetailUrl"`
	Min                 string             `json:"Min"`
	PriceBreaks         []mouserPriceBreak `json:"PriceBreaks"`
}

type mouserSearchResponse struct {
	Errors []struct {
		Message string `json:"Message"`
	} `json:"Errors"`
	SearchResults struct {
		NumberOfResults int          `json:"NumberOfResults"`
		Parts           []mouserPart `json:"Parts"`
	} `json:"SearchResults"`
}

var leadingDigits = regexp.MustCompile(`^\d[\d\s,.]*`)

// Search returns the first part Mouser reports for the requested part number
func (c *MouserConnector) Search(ctx context.Context, req SearchRequest) ([]Offer, error) {
	query := req.Query()
	if query == "" {
		return nil, nil
	}

	var payload mouserSearchRequest
	payload.SearchByPartRequest.MouserPartNumber = query
	payload.SearchByPartRequest.PartSearchOptions = "string"
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode mouser request: %w", err)
	}

	q := url.Values{}
	q.Set("apiKey", c.cfg.APIKey)
	fullURL := strings.TrimRight(c.cfg.BaseURL, "/") + "/search/partnumber?" + q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("mouser request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read mouser response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("mouser returned status %d: %s", resp.StatusCode, truncate(string(respBody), 200))
	}

	var data mouserSearchResponse
	if err := json.Unmarshal(respBody, &data); err != nil {
		return nil, fmt.Errorf("failed to decode mouser response: %w", err)
	}
	if len(data.Errors) > 0 {
		return nil, fmt.Errorf("mouser error: %s", data.Errors[0].Message)
	}
	if len(data.SearchResults.Parts) == 0 {
		return nil, nil
	}

	part := data.SearchResults.Parts[0]
	offer := Offer{
		PartNumber:  part.MouserPartNumber,
		Description: part.Description,
		Currency:    c.cfg.Currency,
		MinOrderQty: 1,
		ProductURL:  "https://www.mouser.com/ProductDetail/" + url.PathEscape(part.MouserPartNumber),
	}

	if available, ok := parseMouserQuantity(part.AvailabilityInStock); ok {
		offer.AvailableQty = intPtr(available)
		offer.InStock = available > 0
	} else {
		offer.InStock = strings.Contains(part.Availability, "Stock")
	}

	if len(part.PriceBreaks) > 0 {
		first := part.PriceBreaks[0]
		price, err := parseMouserPrice(first.Price)
		if err != nil {
			return nil, err
		}
		offer.UnitPrice = price
		if first.Currency != "" {
			offer.Currency = first.Currency
		}
		if first.Quantity > 0 {
			offer.MinOrderQty = first.Quantity
		}
	}
	if minQty, ok := parseMouserQuantity(part.Min); ok && minQty > offer.MinOrderQty {
		offer.MinOrderQty = minQty
	}

	return []Offer{offer}, nil
}

// parseMouserPrice parses strings such as "$1.23", "1,23 €" or "12,50 Kč"
func parseMouserPrice(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	for _, symbol := range []string{"$", "€", "£", "Kč"} {
		s = strings.ReplaceAll(s, symbol, "")
	}
	s = strings.NewReplacer(" ", "", "\u00a0", "").Replace(s)
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}
	price, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid mouser price %q: %w", raw, err)
	}
	return price, nil
}

// parseMouserQuantity reads the leading number of strings such as "1,234" or "5000 In Stock"
func parseMouserQuantity(raw string) (int, bool) {
	match := leadingDigits.FindString(strings.TrimSpace(raw))
	if match == "" {
		return 0, false
	}
	digits := strings.NewReplacer(",", "", ".", "", " ", "").Replace(match)
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}
