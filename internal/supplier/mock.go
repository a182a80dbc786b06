package supplier

import (
	"context"
	"crypto/sha256"
	"encoding/binary"

	"github.com/shopspring/decimal"
)

const mockCurrency = "CZK"

// deterministicPrice maps key to a stable price between 0.10 and 9.99
func deterministicPrice(key string) decimal.Decimal {
	sum := sha256.Sum256([]byte(key))
	value := int32(binary.LittleEndian.Uint32(sum[:4]))
	cents := value % 990
	if cents < 0 {
		cents = -cents
	}
	return decimal.New(int64(cents)+10, -2)
}

func describe(req SearchRequest) string {
	if req.Name != "" {
		return req.Name
	}
	if req.PartNumber != "" {
		return req.PartNumber
	}
	return "Unknown item"
}

// MockConnector quotes deterministic prices derived from the part number. It is always in stock.
type MockConnector struct{}

// NewMockConnector creates a new mock connector
func NewMockConnector() *MockConnector {
	return &MockConnector{}
}

func (c *MockConnector) Name() string       { return "MockSupplier" }
func (c *MockConnector) WebsiteURL() string { return "" }
func (c *MockConnector) HasAPI() bool       { return false }

// Search returns a single offer for the requested line
func (c *MockConnector) Search(ctx context.Context, req SearchRequest) ([]Offer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []Offer{{
		PartNumber:   req.Query(),
		Description:  describe(req),
		UnitPrice:    deterministicPrice(req.Query()),
		Currency:     mockCurrency,
		InStock:      true,
		MinOrderQty:  1,
		LeadTimeDays: intPtr(3),
	}}, nil
}

// CheapMockConnector is a mock supplier whose prices are 15 % below its own base price
type CheapMockConnector struct{}

// NewCheapMockConnector creates a new cheap mock connector
func NewCheapMockConnector() *CheapMockConnector {
	return &CheapMockConnector{}
}

func (c *CheapMockConnector) Name() string       { return "CheapMockSupplier" }
func (c *CheapMockConnector) WebsiteURL() string { return "" }
func (c *CheapMockConnector) HasAPI() bool       { return false }

// Search returns a single offer for the requested line
func (c *CheapMockConnector) Search(ctx context.Context, req SearchRequest) ([]Offer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	price := deterministicPrice("cheap-" + req.Query()).Mul(decimal.RequireFromString("0.85")).Round(2)
	return []Offer{{
		PartNumber:   req.Query(),
		Description:  describe(req),
		UnitPrice:    price,
		Currency:     mockCurrency,
		InStock:      true,
		MinOrderQty:  1,
		LeadTimeDays: intPtr(5),
	}}, nil
}
