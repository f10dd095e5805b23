package response

import "malharia_pdv/internal/domain/entities"

type OrderResponse struct {
	CreatedAt        string  `json:"created_at"`
	ID               int     `json:"id"`
	CustomerName     string  `json:"customer_name"`
	Phone            string  `json:"phone"`
	CostTotal        float64 `json:"cost_total"`
	GrossTotal       float64 `json:"gross_total"`
	Discount         float64 `json:"discount"`
	AmountPaid       float64 `json:"amount_paid"`
	Remaining        float64 `json:"remaining"`
	Profit           float64 `json:"profit"`
	DeliveryDate     string  `json:"delivery_date"`
	DeliveryLocation string  `json:"delivery_location"`
	Status           string  `json:"status"`
	Note             string  `json:"note"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		CreatedAt:        o.CreatedAt,
		ID:               o.ID,
		CustomerName:     o.CustomerName,
		Phone:            o.Phone,
		CostTotal:        o.CostTotal,
		GrossTotal:       o.GrossTotal,
		Discount:         o.Discount,
		AmountPaid:       o.AmountPaid,
		Remaining:        o.Remaining,
		Profit:           o.Profit,
		DeliveryDate:     o.DeliveryDate,
		DeliveryLocation: o.DeliveryLocation,
		Status:           string(o.Status),
		Note:             o.Note,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

// FromDashboard keeps the kanban grouping keyed by status label.
func FromDashboard(grouped map[string][]entities.Order) map[string][]OrderResponse {
	out := make(map[string][]OrderResponse, len(grouped))
	for status, orders := range grouped {
		out[status] = FromOrders(orders)
	}
	return out
}

type LineItemResponse struct {
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

func FromLineItem(it entities.LineItem) LineItemResponse {
	return LineItemResponse{
		OrderID:     it.OrderID,
		GarmentType: it.GarmentType,
		Fabric:      it.Fabric,
		Color:       it.Color,
		Size:        it.Size,
		Quantity:    it.Quantity,
		Print:       it.Print,
		UnitCost:    it.UnitCost,
		UnitPrice:   it.UnitPrice,
		Note:        it.Note,
	}
}

func FromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromLineItem(it))
	}
	return out
}
