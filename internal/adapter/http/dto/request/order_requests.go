package request

// UpdateStatusRequest moves one order into another dashboard column. Any
// status label is accepted; the workflow has no transition guard.
type UpdateStatusRequest struct {
	OrderID looseInt `json:"order_id" binding:"required"`
	Status  string   `json:"status" binding:"required"`
}

// EditOrderRequest rewrites the payment and delivery columns of an order.
// Status is deliberately absent: edits never change it.
type EditOrderRequest struct {
	OrderID      looseInt   `json:"order_id" binding:"required"`
	AmountPaid   looseFloat `json:"amount_paid"`
	DeliveryDate string     `json:"delivery_date"`
	Note         string     `json:"note"`
}
