package supplier

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// PriceListEntry is one row of a local YAML price list
type PriceListEntry struct {
	PartNumber   string          `yaml:"part_number"`
	Description  string          `yaml:"description"`
	UnitPrice    decimal.Decimal `yaml:"unit_price"`
	Stock        *int            `yaml:"stock"`
	MinOrderQty  int             `yaml:"min_order_qty"`
	LeadTimeDays *int            `yaml:"lead_time_days"`
	URL          string          `yaml:"url"`
}

// PriceList is the document loaded from PRICELIST_PATH
type PriceList struct {
	Supplier   string           `yaml:"supplier"`
	WebsiteURL string           `yaml:"website_url"`
	Currency   string           `yaml:"currency"`
	Items      []PriceListEntry `yaml:"items"`
}

// PriceListConnector answers searches from a price list kept on disk, e.g. a distributor
// without an API whose catalogue is maintained by hand
type PriceListConnector struct {
	name string
	list PriceList
	byPN map[string]PriceListEntry
}

// LoadPriceList reads and parses a YAML price list
func LoadPriceList(path string) (*PriceList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read price list: %w", err)
	}
	var list PriceList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse price list %s: %w", path, err)
	}
	return &list, nil
}

// NewPriceListConnector creates a connector over list. name overrides the supplier name of the document.
func NewPriceListConnector(name string, list *PriceList) (*PriceListConnector, error) {
	if list == nil {
		return nil, fmt.Errorf("price list is required")
	}
	if name == "" {
		name = list.Supplier
	}
	if name == "" {
		return nil, fmt.Errorf("price list supplier name is required")
	}
	if list.Currency == "" {
		list.Currency = "CZK"
	}

	byPN := make(map[string]PriceListEntry, len(list.Items))
	for _, entry := range list.Items {
		key := strings.ToLower(strings.TrimSpace(entry.PartNumber))
		if key == "" {
			return nil, fmt.Errorf("price list entry without part_number")
		}
		if entry.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("price list entry %s has a negative price", entry.PartNumber)
		}
		byPN[key] = entry
	}

	return &PriceListConnector{name: name, list: *list, byPN: byPN}, nil
}

func (c *PriceListConnector) Name() string       { return c.name }
func (c *PriceListConnector) WebsiteURL() string { return c.list.WebsiteURL }
func (c *PriceListConnector) HasAPI() bool       { return false }

// Search looks the part number up in the price list, falling back to the line name
func (c *PriceListConnector) Search(ctx context.Context, req SearchRequest) ([]Offer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entry, ok := c.byPN[strings.ToLower(strings.TrimSpace(req.PartNumber))]
	if !ok {
		entry, ok = c.byPN[strings.ToLower(strings.TrimSpace(req.Name))]
	}
	if !ok {
		return nil, nil
	}

	offer := Offer{
		PartNumber:   entry.PartNumber,
		Description:  entry.Description,
		UnitPrice:    entry.UnitPrice,
		Currency:     c.list.Currency,
		InStock:      entry.Stock == nil || *entry.Stock > 0,
		AvailableQty: entry.Stock,
		MinOrderQty:  entry.MinOrderQty,
		LeadTimeDays: entry.LeadTimeDays,
		ProductURL:   entry.URL,
	}
	if offer.Description == "" {
		offer.Description = describe(req)
	}
	return []Offer{offer}, nil
}
