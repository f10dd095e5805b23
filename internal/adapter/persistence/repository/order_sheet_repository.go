package repository

import (
	"context"
	"strconv"

	"malharia_pdv/internal/domain/entities"
	"malharia_pdv/internal/infrastructure/sheetstore"
	"malharia_pdv/internal/usecase/interfaces"
)

const sheetOrders = "Pedidos"

// Pedidos column contract, 0-indexed from column A. The layout is shared
// with the legacy spreadsheet and must not change while old data exists.
const (
	colOrderCreatedAt = iota
	colOrderID
	colOrderName
	colOrderPhone
	colOrderCostTotal
	colOrderGrossTotal
	colOrderDiscount
	colOrderAmountPaid
	colOrderRemaining
	colOrderProfit
	colOrderDeliveryDate
	colOrderDeliveryLocation
	colOrderStatus
	colOrderNote

	orderColumns
)

// OrderSheetRepository maps Pedidos rows into Order entities and back.
//
// The sheet has no keys and no types: ids are located by scanning the id
// column and every monetary cell goes through the lenient numeric parser.
// Archived rows are filtered out of List at read time; they stay physically
// present and remain reachable through GetByID and ListAll.

type OrderSheetRepository struct {
	store sheetstore.RowStore
}

var _ interfaces.IOrderRepository = (*OrderSheetRepository)(nil)

func NewOrderSheetRepository(store sheetstore.RowStore) *OrderSheetRepository {
	return &OrderSheetRepository{store: store}
}

func (r *OrderSheetRepository) List(ctx context.Context) ([]entities.Order, error) {
	rows, err := r.store.GetRows(ctx, sheetOrders)
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		o := orderFromRow(row.Cells)
		if o.Status == entities.StatusArquivado {
			continue
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *OrderSheetRepository) ListAll(ctx context.Context) ([]entities.Order, error) {
	rows, err := r.store.GetRows(ctx, sheetOrders)
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, orderFromRow(row.Cells))
	}
	return orders, nil
}

func (r *OrderSheetRepository) GetByID(ctx context.Context, id int) (entities.Order, error) {
	rows, err := r.store.GetRows(ctx, sheetOrders)
	if err != nil {
		return entities.Order{}, err
	}

	for _, row := range rows {
		if matchesID(cell(row.Cells, colOrderID), id) {
			return orderFromRow(row.Cells), nil
		}
	}
	return entities.Order{}, nil
}

func (r *OrderSheetRepository) NextID(ctx context.Context) (int, error) {
	rows, err := r.store.GetRows(ctx, sheetOrders)
	if err != nil {
		return 0, err
	}

	max := 0
	for _, row := range rows {
		if n, ok := parseLooseInt(cell(row.Cells, colOrderID)); ok && n > max {
			max = n
		}
	}
	return max + 1, nil
}

func (r *OrderSheetRepository) Append(ctx context.Context, o entities.Order) error {
	return r.store.AppendRows(ctx, sheetOrders, [][]string{orderToRow(o)})
}

func (r *OrderSheetRepository) UpdateStatus(ctx context.Context, id int, status entities.OrderStatus) (bool, error) {
	rowIndex, err := r.findRow(ctx, id)
	if err != nil || rowIndex == 0 {
		return false, err
	}

	if err := r.store.UpdateRange(ctx, sheetOrders, rowIndex, colOrderStatus, []string{string(status)}); err != nil {
		return false, err
	}
	return true, nil
}

func (r *OrderSheetRepository) UpdateSettlement(ctx context.Context, id int, s interfaces.OrderSettlement) (bool, error) {
	rowIndex, err := r.findRow(ctx, id)
	if err != nil || rowIndex == 0 {
		return false, err
	}

	// One ranged write covering columns H..N; status and delivery location
	// carry the caller-provided (unchanged) values.
	cells := []string{
		floatToString(s.AmountPaid),
		floatToString(s.Remaining),
		floatToString(s.Profit),
		s.DeliveryDate,
		s.DeliveryLocation,
		string(s.Status),
		s.Note,
	}
	if err := r.store.UpdateRange(ctx, sheetOrders, rowIndex, colOrderAmountPaid, cells); err != nil {
		return false, err
	}
	return true, nil
}

// findRow scans the id column and returns the physical row index of the
// order, 0 when no row matches.
func (r *OrderSheetRepository) findRow(ctx context.Context, id int) (int, error) {
	rows, err := r.store.GetRows(ctx, sheetOrders)
	if err != nil {
		return 0, err
	}
	for _, row := range rows {
		if matchesID(cell(row.Cells, colOrderID), id) {
			return row.Index, nil
		}
	}
	return 0, nil
}

func orderFromRow(cells []string) entities.Order {
	id, _ := parseLooseInt(cell(cells, colOrderID))
	return entities.Order{
		CreatedAt:        cell(cells, colOrderCreatedAt),
		ID:               id,
		CustomerName:     cell(cells, colOrderName),
		Phone:            cell(cells, colOrderPhone),
		CostTotal:        parseNumeric(cell(cells, colOrderCostTotal)),
		GrossTotal:       parseNumeric(cell(cells, colOrderGrossTotal)),
		Discount:         parseNumeric(cell(cells, colOrderDiscount)),
		AmountPaid:       parseNumeric(cell(cells, colOrderAmountPaid)),
		Remaining:        parseNumeric(cell(cells, colOrderRemaining)),
		Profit:           parseNumeric(cell(cells, colOrderProfit)),
		DeliveryDate:     cell(cells, colOrderDeliveryDate),
		DeliveryLocation: cell(cells, colOrderDeliveryLocation),
		Status:           entities.OrderStatus(cell(cells, colOrderStatus)),
		Note:             cell(cells, colOrderNote),
	}
}

func orderToRow(o entities.Order) []string {
	row := make([]string, orderColumns)
	row[colOrderCreatedAt] = o.CreatedAt
	row[colOrderID] = strconv.Itoa(o.ID)
	row[colOrderName] = o.CustomerName
	row[colOrderPhone] = o.Phone
	row[colOrderCostTotal] = floatToString(o.CostTotal)
	row[colOrderGrossTotal] = floatToString(o.GrossTotal)
	row[colOrderDiscount] = floatToString(o.Discount)
	row[colOrderAmountPaid] = floatToString(o.AmountPaid)
	row[colOrderRemaining] = floatToString(o.Remaining)
	row[colOrderProfit] = floatToString(o.Profit)
	row[colOrderDeliveryDate] = o.DeliveryDate
	row[colOrderDeliveryLocation] = o.DeliveryLocation
	row[colOrderStatus] = string(o.Status)
	row[colOrderNote] = o.Note
	return row
}
