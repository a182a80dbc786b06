package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	apperrors "parts-inventory-backend/internal/errors"
	"parts-inventory-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const utf8BOM = "\ufeff"

var orderHeader = []string{"Supplier", "Part", "Qty", "UnitPrice", "Currency", "Total"}

// ExportService renders purchase orders from the selected offers of a project
type ExportService struct {
	store   *repository.Store
	planner *PlanningService
}

// NewExportService creates a new export service
func NewExportService(store *repository.Store, planner *PlanningService) *ExportService {
	return &ExportService{store: store, planner: planner}
}

// OrderLine is one row of a purchase order
type OrderLine struct {
	Supplier  string          `json:"supplier"`
	Part      string          `json:"part"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Currency  string          `json:"currency"`
	Total     decimal.Decimal `json:"total"`
}

// OrderLines returns one line per item with a selected offer, in item order. The allocation
// is recomputed first, so the quantity is the item's quantity to buy against current stock.
func (s *ExportService) OrderLines(ctx context.Context, projectID uuid.UUID) ([]OrderLine, error) {
	unlock := s.planner.locks.Lock(projectID)
	defer unlock()

	items, err := s.planner.recalculate(ctx, projectID)
	if err != nil {
		return nil, err
	}

	store := s.store.WithContext(ctx)
	offers, err := store.SupplierOffers().GetSelectedByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get selected offers: %w", err)
	}
	if len(offers) == 0 {
		return nil, apperrors.ErrNothingToExport
	}

	names, err := componentNames(store, items)
	if err != nil {
		return nil, err
	}
	suppliers, err := supplierNames(store, offers)
	if err != nil {
		return nil, err
	}

	byItem := make(map[uuid.UUID]int, len(offers))
	for i := range offers {
		byItem[offers[i].ProjectItemID] = i
	}

	var lines []OrderLine
	for i := range items {
		idx, ok := byItem[items[i].ID]
		if !ok {
			continue
		}
		offer := &offers[idx]
		qty := items[i].QuantityToBuy
		lines = append(lines, OrderLine{
			Supplier:  suppliers[offer.SupplierID],
			Part:      itemDisplayName(&items[i], names),
			Quantity:  qty,
			UnitPrice: offer.UnitPrice,
			Currency:  offer.Currency,
			Total:     offer.UnitPrice.Mul(decimal.NewFromInt(int64(qty))),
		})
	}
	if len(lines) == 0 {
		return nil, apperrors.ErrNothingToExport
	}
	return lines, nil
}

// ExportOrderCSV renders the order as semicolon separated CSV, optionally prefixed with a
// UTF-8 byte order mark for spreadsheet applications
func (s *ExportService) ExportOrderCSV(ctx context.Context, projectID uuid.UUID, withBOM bool) ([]byte, error) {
	lines, err := s.OrderLines(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return renderOrderCSV(lines, withBOM)
}

func renderOrderCSV(lines []OrderLine, withBOM bool) ([]byte, error) {
	var buf bytes.Buffer
	if withBOM {
		buf.WriteString(utf8BOM)
	}

	w := csv.NewWriter(&buf)
	w.Comma = ';'
	if err := w.Write(orderHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	for _, l := range lines {
		record := []string{
			l.Supplier,
			l.Part,
			strconv.Itoa(l.Quantity),
			l.UnitPrice.StringFixed(2),
			l.Currency,
			l.Total.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportOrderXLSX renders the order as a single sheet workbook
func (s *ExportService) ExportOrderXLSX(ctx context.Context, projectID uuid.UUID) ([]byte, error) {
	lines, err := s.OrderLines(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return renderOrderXLSX(lines)
}

func renderOrderXLSX(lines []OrderLine) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Order"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	header := make([]interface{}, len(orderHeader))
	for i, h := range orderHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, l := range lines {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			l.Supplier,
			l.Part,
			l.Quantity,
			l.UnitPrice.Round(2).InexactFloat64(),
			l.Currency,
			l.Total.Round(2).InexactFloat64(),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}
