package supplier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"parts-inventory-backend/internal/config"
	apperrors "parts-inventory-backend/internal/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func jsonResponse(status int, body string) *http.Response {
	resp := &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func TestMockConnector_DeterministicPrice(t *testing.T) {
	c := NewMockConnector()
	req := SearchRequest{PartNumber: "NE555P", Name: "NE555 Timer", Quantity: 4}

	first, err := c.Search(context.Background(), req)
	require.NoError(t, err)
	second, err := c.Search(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, first, 1)
	assert.Equal(t, "5.96", first[0].UnitPrice.StringFixed(2))
	assert.True(t, first[0].UnitPrice.Equal(second[0].UnitPrice))
	assert.Equal(t, "CZK", first[0].Currency)
	assert.True(t, first[0].InStock)
	assert.Equal(t, 3, *first[0].LeadTimeDays)
	assert.Equal(t, "NE555 Timer", first[0].Description)
	assert.False(t, c.HasAPI())
}

func TestCheapMockConnector_Price(t *testing.T) {
	offers, err := NewCheapMockConnector().Search(context.Background(), SearchRequest{PartNumber: "NE555P"})
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "0.60", offers[0].UnitPrice.StringFixed(2))
	assert.Equal(t, 5, *offers[0].LeadTimeDays)
}

func TestDeterministicPrice_Range(t *testing.T) {
	for _, key := range []string{"", "a", "R1", "cheap-R1", "LM358", "very long part number 123456789"} {
		p := deterministicPrice(key)
		assert.False(t, p.LessThan(decimal.RequireFromString("0.10")), key)
		assert.False(t, p.GreaterThan(decimal.RequireFromString("9.99")), key)
	}
}

func TestMockConnector_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMockConnector().Search(ctx, SearchRequest{PartNumber: "X"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTMESignature(t *testing.T) {
	sig := tmeSignature("https://api.tme.eu/", "/Products/Search.json", map[string]string{
		"Language":     "EN",
		"Country":      "CZ",
		"SearchPlain":  "NE555 P",
		"Token":        "tok",
		"ApiSignature": "ignored",
	}, "s3cret")
	assert.Equal(t, "FpusUdgAvkfBiaUjkuQxGYiEsb0=", sig)
}

func TestEscapeDataString(t *testing.T) {
	assert.Equal(t, "a%20b%26c~d", escapeDataString("a b&c~d"))
	assert.Equal(t, "SymbolList%5B0%5D", escapeDataString("SymbolList[0]"))
}

func newTMEWithTransport(t *testing.T, rt roundTripFunc) *TMEConnector {
	t.Helper()
	c, err := NewTMEConnector(TMEConfig{BaseURL: "https://api.tme.eu", Token: "tok", Secret: "s3cret"})
	require.NoError(t, err)
	c.httpClient = &http.Client{Transport: rt}
	return c
}

func TestTMEConnector_Search(t *testing.T) {
	var calls []string
	c := newTMEWithTransport(t, func(req *http.Request) (*http.Response, error) {
		calls = append(calls, req.URL.Path)
		require.NoError(t, req.ParseForm())
		assert.Equal(t, "application/x-www-form-urlencoded", req.Header.Get("Content-Type"))
		assert.Equal(t, "tok", req.PostForm.Get("Token"))
		assert.Equal(t, "CZ", req.PostForm.Get("Country"))
		assert.NotEmpty(t, req.PostForm.Get("ApiSignature"))

		switch req.URL.Path {
		case "/Products/Search.json":
			assert.Equal(t, "NE555P", req.PostForm.Get("SearchPlain"))
			return jsonResponse(200, `{"Status":"OK","Data":{"ProductList":[
				{"Symbol":"NE555-ST","Producer":"ST","Description":"Timer ST"},
				{"Symbol":"NE555P","Producer":"TEXAS INSTRUMENTS","Description":"Timer TI"}
			]}}`), nil
		case "/Products/GetPricesAndStocks.json":
			assert.Equal(t, "NE555P", req.PostForm.Get("SymbolList[0]"))
			return jsonResponse(200, `{"Status":"OK","Data":{"Currency":"EUR","ProductList":[
				{"Symbol":"NE555P","Amount":1500,"PriceList":[{"Amount":5,"PriceValue":0.2312},{"Amount":100,"PriceValue":0.15}]}
			]}}`), nil
		}
		return jsonResponse(404, `{}`), nil
	})

	offers, err := c.Search(context.Background(), SearchRequest{PartNumber: "NE555P", Manufacturer: "Texas Instruments", Quantity: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"/Products/Search.json", "/Products/GetPricesAndStocks.json"}, calls)

	require.Len(t, offers, 1)
	offer := offers[0]
	assert.Equal(t, "NE555P", offer.PartNumber)
	assert.Equal(t, "Timer TI", offer.Description)
	assert.Equal(t, "0.2312", offer.UnitPrice.String())
	assert.Equal(t, "EUR", offer.Currency)
	assert.True(t, offer.InStock)
	assert.Equal(t, 1500, *offer.AvailableQty)
	assert.Equal(t, 5, offer.MinOrderQty)
	assert.Equal(t, "https://www.tme.eu/cz/details/NE555P", offer.ProductURL)
}

func TestTMEConnector_NoProducts(t *testing.T) {
	c := newTMEWithTransport(t, func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "/Products/Search.json", req.URL.Path)
		return jsonResponse(200, `{"Status":"OK","Data":{"ProductList":[]}}`), nil
	})
	offers, err := c.Search(context.Background(), SearchRequest{PartNumber: "UNKNOWN"})
	assert.NoError(t, err)
	assert.Empty(t, offers)
}

func TestTMEConnector_HTTPError(t *testing.T) {
	c := newTMEWithTransport(t, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(403, `{"Status":"E_AUTH"}`), nil
	})
	_, err := c.Search(context.Background(), SearchRequest{PartNumber: "NE555P"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestNewTMEConnector_RequiresCredentials(t *testing.T) {
	_, err := NewTMEConnector(TMEConfig{BaseURL: "https://api.tme.eu"})
	assert.True(t, apperrors.IsConfiguration(err))
}

func newMouserWithTransport(t *testing.T, rt roundTripFunc) *MouserConnector {
	t.Helper()
	c, err := NewMouserConnector(MouserConfig{BaseURL: "https://api.mouser.com/api/v1", APIKey: "key-1"})
	require.NoError(t, err)
	c.httpClient = &http.Client{Transport: rt}
	return c
}

func TestMouserConnector_Search(t *testing.T) {
	c := newMouserWithTransport(t, func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/api/v1/search/partnumber", req.URL.Path)
		assert.Equal(t, "key-1", req.URL.Query().Get("apiKey"))

		var body mouserSearchRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "LM358N", body.SearchByPartRequest.MouserPartNumber)

		return jsonResponse(200, `{"Errors":[],"SearchResults":{"NumberOfResults":1,"Parts":[{
			"Availability":"2,345 In Stock","AvailabilityInStock":"2345","Description":"Op Amp",
			"MouserPartNumber":"595-LM358N","Min":"1",
			"PriceBreaks":[{"Quantity":1,"Price":"12,50 Kč","Currency":"CZK"},{"Quantity":10,"Price":"10,00 Kč","Currency":"CZK"}]
		}]}}`), nil
	})

	offers, err := c.Search(context.Background(), SearchRequest{PartNumber: "LM358N"})
	require.NoError(t, err)
	require.Len(t, offers, 1)
	offer := offers[0]
	assert.Equal(t, "595-LM358N", offer.PartNumber)
	assert.Equal(t, "12.50", offer.UnitPrice.StringFixed(2))
	assert.Equal(t, "CZK", offer.Currency)
	assert.True(t, offer.InStock)
	assert.Equal(t, 2345, *offer.AvailableQty)
	assert.Equal(t, 1, offer.MinOrderQty)
	assert.Equal(t, "https://www.mouser.com/ProductDetail/595-LM358N", offer.ProductURL)
}

func TestMouserConnector_ErrorsInBody(t *testing.T) {
	c := newMouserWithTransport(t, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(200, `{"Errors":[{"Message":"Invalid unique identifier."}],"SearchResults":null}`), nil
	})
	_, err := c.Search(context.Background(), SearchRequest{PartNumber: "LM358N"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid unique identifier")
}

func TestMouserConnector_TransportError(t *testing.T) {
	boom := errors.New("dial tcp: timeout")
	c := newMouserWithTransport(t, func(req *http.Request) (*http.Response, error) {
		return nil, boom
	})
	_, err := c.Search(context.Background(), SearchRequest{PartNumber: "LM358N"})
	assert.ErrorIs(t, err, boom)
}

func TestParseMouserPrice(t *testing.T) {
	testCases := []struct {
		raw      string
		expected string
	}{
		{"$1.23", "1.23"},
		{"1,23 €", "1.23"},
		{"£0.045", "0.045"},
		{"1,234.50", "1234.5"},
		{" 12,50 Kč ", "12.5"},
	}
	for _, tc := range testCases {
		tc := tc // per-iteration copy (Go 1.22 loop semantics)
		t.Run(tc.raw, func(t *testing.T) {
			price, err := parseMouserPrice(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, price.String())
		})
	}

	_, err := parseMouserPrice("call for price")
	assert.Error(t, err)
}

func TestParseMouserQuantity(t *testing.T) {
	n, ok := parseMouserQuantity("5,000 In Stock")
	assert.True(t, ok)
	assert.Equal(t, 5000, n)

	_, ok = parseMouserQuantity("None")
	assert.False(t, ok)
}

const samplePriceList = `supplier: GM Electronic
website_url: https://www.gme.cz
currency: CZK
items:
  - part_number: NE555P
    description: Timer DIP8
    unit_price: 6.90
    stock: 120
    min_order_qty: 1
    lead_time_days: 2
  - part_number: BC547
    unit_price: "1.20"
`

func writePriceList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pricelist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestPriceListConnector(t *testing.T) {
	list, err := LoadPriceList(writePriceList(t, samplePriceList))
	require.NoError(t, err)

	c, err := NewPriceListConnector("", list)
	require.NoError(t, err)
	assert.Equal(t, "GM Electronic", c.Name())
	assert.Equal(t, "https://www.gme.cz", c.WebsiteURL())

	offers, err := c.Search(context.Background(), SearchRequest{PartNumber: "ne555p"})
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "6.90", offers[0].UnitPrice.StringFixed(2))
	assert.Equal(t, 120, *offers[0].AvailableQty)
	assert.Equal(t, 2, *offers[0].LeadTimeDays)

	offers, err = c.Search(context.Background(), SearchRequest{Name: "BC547"})
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Nil(t, offers[0].AvailableQty)
	assert.True(t, offers[0].InStock)
	assert.Equal(t, "BC547", offers[0].Description)

	offers, err = c.Search(context.Background(), SearchRequest{PartNumber: "missing"})
	require.NoError(t, err)
	assert.Empty(t, offers)
}

func TestNewPriceListConnector_NameOverride(t *testing.T) {
	c, err := NewPriceListConnector("Local", &PriceList{Supplier: "GM Electronic"})
	require.NoError(t, err)
	assert.Equal(t, "Local", c.Name())
}

func TestLoadPriceList_Invalid(t *testing.T) {
	_, err := LoadPriceList(writePriceList(t, "items: [unclosed"))
	assert.Error(t, err)

	_, err = LoadPriceList(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	t.Run("Default mocks in order", func(t *testing.T) {
		connectors, err := Build(&config.Config{SupplierConnectors: []string{"mock", "cheap-mock", "MOCK"}})
		require.NoError(t, err)
		require.Len(t, connectors, 2)
		assert.Equal(t, "MockSupplier", connectors[0].Name())
		assert.Equal(t, "CheapMockSupplier", connectors[1].Name())
	})

	t.Run("Unknown connector", func(t *testing.T) {
		_, err := Build(&config.Config{SupplierConnectors: []string{"digikey"}})
		assert.ErrorIs(t, err, apperrors.ErrUnknownConnector)
	})

	t.Run("TME without credentials", func(t *testing.T) {
		_, err := Build(&config.Config{SupplierConnectors: []string{"tme"}, TMEBaseURL: "https://api.tme.eu"})
		assert.True(t, apperrors.IsConfiguration(err))
	})

	t.Run("Real connectors configured", func(t *testing.T) {
		connectors, err := Build(&config.Config{
			SupplierConnectors:    []string{"tme", "mouser", "pricelist"},
			TMEBaseURL:            "https://api.tme.eu",
			TMEToken:              "tok",
			TMESecret:             "secret",
			MouserBaseURL:         "https://api.mouser.com/api/v1",
			MouserAPIKey:          "key",
			PriceListPath:         writePriceList(t, samplePriceList),
			PriceListSupplierName: "PriceList",
		})
		require.NoError(t, err)
		require.Len(t, connectors, 3)
		assert.True(t, connectors[0].HasAPI())
		assert.True(t, connectors[1].HasAPI())
		assert.Equal(t, "PriceList", connectors[2].Name())
	})
}
