package interfaces

import (
	"context"

	"malharia_pdv/internal/domain/entities"
)

// ILineItemRepository abstracts the Itens sheet. Items are append-only and
// queried by the order id embedded in each row.

type ILineItemRepository interface {
	ListByOrderID(ctx context.Context, orderID int) ([]entities.LineItem, error)
	Append(ctx context.Context, items []entities.LineItem) error
}
