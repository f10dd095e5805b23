package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"malharia_pdv/internal/domain/entities"
	"malharia_pdv/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidOrderInput = errors.New("invalid order input")
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrOrderNotFound     = errors.New("order not found")
	ErrNoItemsFound      = errors.New("no items found for order")
)

// createdAtLayout is the timestamp format the Pedidos sheet has always used.
const createdAtLayout = "02-01-2006 15:04:05"

// RegisterOrderCommand carries a validated registration request. Numeric
// fields arrive already zero-defaulted by the transport layer.

type RegisterOrderCommand struct {
	Name             string
	Phone            string
	Email            string
	DeliveryDate     string
	DeliveryLocation string
	AmountPaid       float64
	Discount         float64
	PaymentMethod    string
	Note             string
	Items            []RegisterItemCommand
}

type RegisterItemCommand struct {
	GarmentType string
	Fabric      string
	Color       string
	Size        string
	Quantity    int
	Print       string
	UnitCost    float64
	UnitPrice   float64
	Note        string
}

// Receipt is the public receipt view for one order. Once the order is
// delivered the customer's name and phone are masked so the shared link
// stops exposing them.

type Receipt struct {
	Order       entities.Order      `json:"order"`
	Items       []entities.LineItem `json:"items"`
	Masked      bool                `json:"masked"`
	PaymentLink string              `json:"payment_link,omitempty"`
}

// IOrderUseCase exposes the order lifecycle operations.
//
// List and Dashboard run the archive sweep inline before reading, keeping the
// legacy contract that every dashboard fetch pays for its own housekeeping.

type IOrderUseCase interface {
	Register(ctx context.Context, cmd RegisterOrderCommand) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	Dashboard(ctx context.Context) (map[string][]entities.Order, error)
	UpdateStatus(ctx context.Context, id int, status string) error
	Items(ctx context.Context, id int) ([]entities.LineItem, error)
	Edit(ctx context.Context, id int, amountPaid float64, deliveryDate, note string) error
	Receipt(ctx context.Context, id int) (Receipt, error)
}

type OrderUseCase struct {
	orders       interfaces.IOrderRepository
	items        interfaces.ILineItemRepository
	archive      IArchiveUseCase
	paymentLinks interfaces.IPaymentLinkGateway
	loc          *time.Location
	log          *zap.Logger
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	orders interfaces.IOrderRepository,
	items interfaces.ILineItemRepository,
	archive IArchiveUseCase,
	paymentLinks interfaces.IPaymentLinkGateway,
	loc *time.Location,
	log *zap.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orders:       orders,
		items:        items,
		archive:      archive,
		paymentLinks: paymentLinks,
		loc:          loc,
		log:          log,
	}
}

func (u *OrderUseCase) Register(ctx context.Context, cmd RegisterOrderCommand) (entities.Order, error) {
	if strings.TrimSpace(cmd.Name) == "" || strings.TrimSpace(cmd.Phone) == "" || len(cmd.Items) == 0 {
		return entities.Order{}, ErrInvalidOrderInput
	}

	id, err := u.orders.NextID(ctx)
	if err != nil {
		return entities.Order{}, err
	}

	// Gross is the pre-discount sum of price*qty; cost mirrors it with the
	// unit cost. Accumulated as decimals so cent values survive the sums.
	gross := decimal.Zero
	cost := decimal.Zero
	items := make([]entities.LineItem, 0, len(cmd.Items))
	for _, it := range cmd.Items {
		qty := decimal.NewFromInt(int64(it.Quantity))
		gross = gross.Add(decimal.NewFromFloat(it.UnitPrice).Mul(qty))
		cost = cost.Add(decimal.NewFromFloat(it.UnitCost).Mul(qty))

		items = append(items, entities.LineItem{
			OrderID:     id,
			GarmentType: it.GarmentType,
			Fabric:      it.Fabric,
			Color:       it.Color,
			Size:        it.Size,
			Quantity:    it.Quantity,
			Print:       it.Print,
			UnitCost:    it.UnitCost,
			UnitPrice:   it.UnitPrice,
			Note:        it.Note,
		})
	}

	grossTotal, _ := gross.Float64()
	costTotal, _ := cost.Float64()
	remaining, _ := decimal.NewFromFloat(cmd.AmountPaid).
		Sub(gross.Sub(decimal.NewFromFloat(cmd.Discount))).Float64()
	profit, _ := gross.Sub(cost).Float64()

	order := entities.Order{
		CreatedAt:        time.Now().In(u.loc).Format(createdAtLayout),
		ID:               id,
		CustomerName:     cmd.Name,
		Phone:            cmd.Phone,
		CostTotal:        costTotal,
		GrossTotal:       grossTotal,
		Discount:         cmd.Discount,
		AmountPaid:       cmd.AmountPaid,
		Remaining:        remaining,
		Profit:           profit,
		DeliveryDate:     cmd.DeliveryDate,
		DeliveryLocation: cmd.DeliveryLocation,
		Status:           entities.StatusPedidos,
		Note:             cmd.Note,
	}

	// Items first, then the summary row. There is no transaction: a failure
	// in between leaves orphan item rows no order-scoped query will surface.
	if err := u.items.Append(ctx, items); err != nil {
		return entities.Order{}, err
	}
	if err := u.orders.Append(ctx, order); err != nil {
		return entities.Order{}, err
	}

	u.log.Info("order registered",
		zap.Int("order_id", id),
		zap.Int("items", len(items)),
		zap.Float64("gross_total", grossTotal),
	)
	return order, nil
}

func (u *OrderUseCase) List(ctx context.Context) ([]entities.Order, error) {
	if _, err := u.archive.Sweep(ctx); err != nil {
		return nil, err
	}
	return u.orders.List(ctx)
}

func (u *OrderUseCase) Dashboard(ctx context.Context) (map[string][]entities.Order, error) {
	orders, err := u.List(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]entities.Order)
	for _, o := range orders {
		status := string(o.Status)
		if status == "" {
			status = string(entities.StatusOrcamentos)
		}
		grouped[status] = append(grouped[status], o)
	}
	return grouped, nil
}

func (u *OrderUseCase) UpdateStatus(ctx context.Context, id int, status string) error {
	if id <= 0 {
		return ErrInvalidOrderID
	}

	// No transition guard: the dashboard may move an order into any column.
	found, err := u.orders.UpdateStatus(ctx, id, entities.OrderStatus(status))
	if err != nil {
		return err
	}
	if !found {
		return ErrOrderNotFound
	}

	u.log.Info("order status updated", zap.Int("order_id", id), zap.String("status", status))
	return nil
}

func (u *OrderUseCase) Items(ctx context.Context, id int) ([]entities.LineItem, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}
	return u.items.ListByOrderID(ctx, id)
}

func (u *OrderUseCase) Edit(ctx context.Context, id int, amountPaid float64, deliveryDate, note string) error {
	if id <= 0 {
		return ErrInvalidOrderID
	}

	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order.ID == 0 {
		return ErrOrderNotFound
	}

	items, err := u.items.ListByOrderID(ctx, id)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return ErrNoItemsFound
	}

	// Edits never touch status; remaining is recomputed from the stored
	// totals with the new paid amount.
	remaining, _ := decimal.NewFromFloat(amountPaid).
		Sub(decimal.NewFromFloat(order.GrossTotal).Sub(decimal.NewFromFloat(order.Discount))).Float64()
	profit, _ := decimal.NewFromFloat(order.GrossTotal).
		Sub(decimal.NewFromFloat(order.CostTotal)).Float64()

	found, err := u.orders.UpdateSettlement(ctx, id, interfaces.OrderSettlement{
		AmountPaid:       amountPaid,
		Remaining:        remaining,
		Profit:           profit,
		DeliveryDate:     deliveryDate,
		DeliveryLocation: order.DeliveryLocation,
		Status:           order.Status,
		Note:             note,
	})
	if err != nil {
		return err
	}
	if !found {
		return ErrOrderNotFound
	}

	u.log.Info("order edited", zap.Int("order_id", id), zap.Float64("amount_paid", amountPaid))
	return nil
}

func (u *OrderUseCase) Receipt(ctx context.Context, id int) (Receipt, error) {
	if id <= 0 {
		return Receipt{}, ErrInvalidOrderID
	}

	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return Receipt{}, err
	}
	if order.ID == 0 {
		return Receipt{}, ErrOrderNotFound
	}

	items, err := u.items.ListByOrderID(ctx, id)
	if err != nil {
		return Receipt{}, err
	}

	masked := order.Status == entities.StatusEntregue
	if masked {
		order.CustomerName = "Cliente"
		order.Phone = "***"
	}

	rec := Receipt{Order: order, Items: items, Masked: masked}

	// Negative remaining means the customer still owes money. The link is
	// best effort: a gateway failure only costs the receipt its link.
	if u.paymentLinks != nil && order.Remaining < 0 {
		due, _ := decimal.NewFromFloat(order.Remaining).Neg().Float64()
		link, err := u.paymentLinks.CreatePaymentLink(ctx, order.ID, fmt.Sprintf("Pedido #%d", order.ID), due)
		if err != nil {
			u.log.Warn("payment link creation failed", zap.Int("order_id", order.ID), zap.Error(err))
		} else {
			rec.PaymentLink = link
		}
	}

	return rec, nil
}
