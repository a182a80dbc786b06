// Package supplier contains the connectors that quote prices for project requirement lines.
package supplier

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// SearchRequest describes one requirement line that needs purchasing
type SearchRequest struct {
	// PartNumber is the manufacturer part number of a stocked component or the custom name of a free-text line
	PartNumber   string
	Name         string
	Manufacturer string
	Quantity     int
}

// Query returns the term connectors search for
func (r SearchRequest) Query() string {
	if r.PartNumber != "" {
		return r.PartNumber
	}
	return r.Name
}

// Offer is a normalised quote returned by a connector
type Offer struct {
	PartNumber   string
	Description  string
	UnitPrice    decimal.Decimal
	Currency     string
	InStock      bool
	AvailableQty *int
	MinOrderQty  int
	LeadTimeDays *int
	ProductURL   string
}

// Connector is an external source of offers. Implementations must be safe for concurrent use.
type Connector interface {
	Name() string
	WebsiteURL() string
	HasAPI() bool
	Search(ctx context.Context, req SearchRequest) ([]Offer, error)
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}

func intPtr(v int) *int {
	return &v
}
