package interfaces

import (
	"context"

	"malharia_pdv/internal/domain/entities"
)

// OrderSettlement is the ranged write performed by the edit operation: the
// payment columns plus everything to their right, written in one shot. The
// caller fills Status and DeliveryLocation with the stored values so the
// write leaves them unchanged.

type OrderSettlement struct {
	AmountPaid       float64
	Remaining        float64
	Profit           float64
	DeliveryDate     string
	DeliveryLocation string
	Status           entities.OrderStatus
	Note             string
}

// IOrderRepository abstracts the Pedidos sheet.
//
// Misses are reported as zero values, not errors: GetByID returns an Order
// with ID 0 and the update methods return found=false when no row carries
// the requested id.

type IOrderRepository interface {
	// List returns the active orders, excluding Arquivado rows. Archived
	// rows stay physically present and are filtered at read time.
	List(ctx context.Context) ([]entities.Order, error)

	// ListAll returns every order row, archived included. Used by the
	// archive sweep and the statistics query.
	ListAll(ctx context.Context) ([]entities.Order, error)

	GetByID(ctx context.Context, id int) (entities.Order, error)

	// NextID scans the id column and returns max+1, ignoring unparsable
	// cells and defaulting to 1 on an empty sheet.
	NextID(ctx context.Context) (int, error)

	Append(ctx context.Context, o entities.Order) error

	UpdateStatus(ctx context.Context, id int, status entities.OrderStatus) (found bool, err error)
	UpdateSettlement(ctx context.Context, id int, s OrderSettlement) (found bool, err error)
}
