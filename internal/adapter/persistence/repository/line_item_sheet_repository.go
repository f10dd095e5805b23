package repository

import (
	"context"
	"strconv"

	"malharia_pdv/internal/domain/entities"
	"malharia_pdv/internal/infrastructure/sheetstore"
	"malharia_pdv/internal/usecase/interfaces"
)

const sheetItems = "Itens"

// Itens column contract, 0-indexed from column A.
const (
	colItemOrderID = iota
	colItemGarmentType
	colItemFabric
	colItemColor
	colItemSize
	colItemQuantity
	colItemPrint
	colItemUnitCost
	colItemUnitPrice
	colItemNote

	itemColumns
)

// LineItemSheetRepository maps Itens rows into LineItem entities and back.
// An item row referencing an id no order carries is never surfaced; nothing
// validates the back-reference at write time.

type LineItemSheetRepository struct {
	store sheetstore.RowStore
}

var _ interfaces.ILineItemRepository = (*LineItemSheetRepository)(nil)

func NewLineItemSheetRepository(store sheetstore.RowStore) *LineItemSheetRepository {
	return &LineItemSheetRepository{store: store}
}

func (r *LineItemSheetRepository) ListByOrderID(ctx context.Context, orderID int) ([]entities.LineItem, error) {
	rows, err := r.store.GetRows(ctx, sheetItems)
	if err != nil {
		return nil, err
	}

	var items []entities.LineItem
	for _, row := range rows {
		if !matchesID(cell(row.Cells, colItemOrderID), orderID) {
			continue
		}
		items = append(items, itemFromRow(row.Cells))
	}
	return items, nil
}

func (r *LineItemSheetRepository) Append(ctx context.Context, items []entities.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, itemToRow(it))
	}
	return r.store.AppendRows(ctx, sheetItems, rows)
}

func itemFromRow(cells []string) entities.LineItem {
	orderID, _ := parseLooseInt(cell(cells, colItemOrderID))
	quantity, _ := parseLooseInt(cell(cells, colItemQuantity))
	return entities.LineItem{
		OrderID:     orderID,
		GarmentType: cell(cells, colItemGarmentType),
		Fabric:      cell(cells, colItemFabric),
		Color:       cell(cells, colItemColor),
		Size:        cell(cells, colItemSize),
		Quantity:    quantity,
		Print:       cell(cells, colItemPrint),
		UnitCost:    parseNumeric(cell(cells, colItemUnitCost)),
		UnitPrice:   parseNumeric(cell(cells, colItemUnitPrice)),
		Note:        cell(cells, colItemNote),
	}
}

func itemToRow(it entities.LineItem) []string {
	row := make([]string, itemColumns)
	row[colItemOrderID] = strconv.Itoa(it.OrderID)
	row[colItemGarmentType] = it.GarmentType
	row[colItemFabric] = it.Fabric
	row[colItemColor] = it.Color
	row[colItemSize] = it.Size
	row[colItemQuantity] = strconv.Itoa(it.Quantity)
	row[colItemPrint] = it.Print
	row[colItemUnitCost] = floatToString(it.UnitCost)
	row[colItemUnitPrice] = floatToString(it.UnitPrice)
	row[colItemNote] = it.Note
	return row
}
