package request

import "malharia_pdv/internal/usecase"

type RegisterItemRequest struct {
	GarmentType string     `json:"garment_type"`
	Fabric      string     `json:"fabric"`
	Color       string     `json:"color"`
	Size        string     `json:"size"`
	Quantity    looseInt   `json:"quantity"`
	Print       string     `json:"print"`
	UnitCost    looseFloat `json:"unit_cost"`
	UnitPrice   looseFloat `json:"unit_price"`
	Note        string     `json:"note"`
}

// RegisterOrderRequest is the registration payload posted by the PDV screen.
type RegisterOrderRequest struct {
	Name             string                `json:"name" binding:"required"`
	Phone            string                `json:"phone" binding:"required"`
	Email            string                `json:"email"`
	DeliveryDate     string                `json:"delivery_date"`
	DeliveryLocation string                `json:"delivery_location"`
	AmountPaid       looseFloat            `json:"amount_paid"`
	Discount         looseFloat            `json:"discount"`
	PaymentMethod    string                `json:"payment_method"`
	Items            []RegisterItemRequest `json:"items" binding:"required"`
	Note             string                `json:"note"`
}

func (r RegisterOrderRequest) ToCommand() usecase.RegisterOrderCommand {
	items := make([]usecase.RegisterItemCommand, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, usecase.RegisterItemCommand{
			GarmentType: it.GarmentType,
			Fabric:      it.Fabric,
			Color:       it.Color,
			Size:        it.Size,
			Quantity:    int(it.Quantity),
			Print:       it.Print,
			UnitCost:    float64(it.UnitCost),
			UnitPrice:   float64(it.UnitPrice),
			Note:        it.Note,
		})
	}

	return usecase.RegisterOrderCommand{
		Name:             r.Name,
		Phone:            r.Phone,
		Email:            r.Email,
		DeliveryDate:     r.DeliveryDate,
		DeliveryLocation: r.DeliveryLocation,
		AmountPaid:       float64(r.AmountPaid),
		Discount:         float64(r.Discount),
		PaymentMethod:    r.PaymentMethod,
		Note:             r.Note,
		Items:            items,
	}
}
