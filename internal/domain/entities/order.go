package entities

// OrderStatus represents the kanban column an order currently sits in.
//
// Domain notes:
//   - The set is open: the dashboard lets the operator type free-form status
//     labels, so the constants below only name the states the lifecycle code
//     itself reads or writes.
//   - Registration always writes StatusPedidos. The dashboard falls back to
//     StatusOrcamentos when the status cell is blank; this asymmetry exists in
//     the production sheet and is kept as-is.

type OrderStatus string

const (
	StatusOrcamentos OrderStatus = "Orçamentos"
	StatusPedidos    OrderStatus = "Pedidos"
	StatusEntregue   OrderStatus = "Entregue"
	StatusArquivado  OrderStatus = "Arquivado"
)

// Order is the summary record kept in the Pedidos sheet, one row per sale.
//
// Storage model (row store):
//   - sheet: Pedidos
//   - 14 positional columns, see repository.orderFromRow
//
// Monetary representation:
//   - Remaining = AmountPaid - (GrossTotal - Discount)
//   - Profit    = GrossTotal - CostTotal
//     Both are computed at write time and stored as plain values.
//
// CreatedAt and DeliveryDate stay as the free-text strings the sheet holds;
// the archive sweep parses DeliveryDate leniently when it needs a date.

type Order struct {
	CreatedAt        string      `json:"created_at"`
	ID               int         `json:"id"`
	CustomerName     string      `json:"customer_name"`
	Phone            string      `json:"phone"`
	CostTotal        float64     `json:"cost_total"`
	GrossTotal       float64     `json:"gross_total"`
	Discount         float64     `json:"discount"`
	AmountPaid       float64     `json:"amount_paid"`
	Remaining        float64     `json:"remaining"`
	Profit           float64     `json:"profit"`
	DeliveryDate     string      `json:"delivery_date"`
	DeliveryLocation string      `json:"delivery_location"`
	Status           OrderStatus `json:"status"`
	Note             string      `json:"note"`
}

// LineItem is one product line of an order, kept in the Itens sheet.
//
// Items are written in a batch at registration and never edited afterwards.
// The OrderID back-reference is the only link; nothing enforces it.

type LineItem struct {
	OrderID     int     `json:"order_id"`
	GarmentType string  `json:"garment_type"`
	Fabric      string  `json:"fabric"`
	Color       string  `json:"color"`
	Size        string  `json:"size"`
	Quantity    int     `json:"quantity"`
	Print       string  `json:"print"`
	UnitCost    float64 `json:"unit_cost"`
	UnitPrice   float64 `json:"unit_price"`
	Note        string  `json:"note"`
}
