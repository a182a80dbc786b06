package supplier

import (
	"fmt"
	"strings"

	"parts-inventory-backend/internal/config"
	apperrors "parts-inventory-backend/internal/errors"
)

const (
	ConnectorMock      = "mock"
	ConnectorCheapMock = "cheap-mock"
	ConnectorTME       = "tme"
	ConnectorMouser    = "mouser"
	ConnectorPriceList = "pricelist"
)

// Build assembles the connectors named in cfg.SupplierConnectors, in that order.
// Unknown names and enabled connectors without credentials are configuration errors.
func Build(cfg *config.Config) ([]Connector, error) {
	var connectors []Connector
	seen := make(map[string]bool)

	for _, raw := range cfg.SupplierConnectors {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		switch name {
		case ConnectorMock:
			connectors = append(connectors, NewMockConnector())
		case ConnectorCheapMock:
			connectors = append(connectors, NewCheapMockConnector())
		case ConnectorTME:
			c, err := NewTMEConnector(TMEConfig{
				BaseURL: cfg.TMEBaseURL,
				Token:   cfg.TMEToken,
				Secret:  cfg.TMESecret,
				Country: cfg.TMECountry,
			})
			if err != nil {
				return nil, err
			}
			connectors = append(connectors, c)
		case ConnectorMouser:
			c, err := NewMouserConnector(MouserConfig{
				BaseURL:  cfg.MouserBaseURL,
				APIKey:   cfg.MouserAPIKey,
				Currency: cfg.MouserCurrency,
			})
			if err != nil {
				return nil, err
			}
			connectors = append(connectors, c)
		case ConnectorPriceList:
			list, err := LoadPriceList(cfg.PriceListPath)
			if err != nil {
				return nil, err
			}
			c, err := NewPriceListConnector(cfg.PriceListSupplierName, list)
			if err != nil {
				return nil, err
			}
			connectors = append(connectors, c)
		default:
			return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownConnector, raw)
		}
	}

	return connectors, nil
}
