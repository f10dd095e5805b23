package response

import (
	"testing"

	"malharia_pdv/internal/domain/entities"
	"malharia_pdv/internal/usecase"
)

func TestFromOrder(t *testing.T) {
	o := entities.Order{
		CreatedAt:    "15-08-2025 14:30:00",
		ID:           7,
		CustomerName: "Maria",
		GrossTotal:   156.5,
		Remaining:    -100,
		Status:       entities.StatusPedidos,
	}

	got := FromOrder(o)
	if got.ID != 7 || got.CustomerName != "Maria" || got.Status != "Pedidos" {
		t.Fatalf("unexpected response: %+v", got)
	}
	if got.GrossTotal != 156.5 || got.Remaining != -100 {
		t.Fatalf("unexpected amounts: %+v", got)
	}
}

func TestFromDashboard(t *testing.T) {
	grouped := map[string][]entities.Order{
		"Pedidos":    {{ID: 1}, {ID: 2}},
		"Orçamentos": {{ID: 3}},
	}

	got := FromDashboard(grouped)
	if len(got["Pedidos"]) != 2 || len(got["Orçamentos"]) != 1 {
		t.Fatalf("unexpected grouping: %+v", got)
	}
	if got["Orçamentos"][0].ID != 3 {
		t.Fatalf("unexpected order: %+v", got["Orçamentos"][0])
	}
}

func TestFromReceipt(t *testing.T) {
	rec := usecase.Receipt{
		Order:       entities.Order{ID: 3, CustomerName: "Cliente", Phone: "***", Status: entities.StatusEntregue},
		Items:       []entities.LineItem{{OrderID: 3, GarmentType: "Camisa"}},
		Masked:      true,
		PaymentLink: "https://pay.example/abc",
	}

	got := FromReceipt(rec)
	if !got.Masked || got.PaymentLink != "https://pay.example/abc" {
		t.Fatalf("unexpected response: %+v", got)
	}
	if got.Order.CustomerName != "Cliente" || got.Order.Phone != "***" {
		t.Fatalf("expected masked order: %+v", got.Order)
	}
	if len(got.Items) != 1 || got.Items[0].GarmentType != "Camisa" {
		t.Fatalf("unexpected items: %+v", got.Items)
	}
}
