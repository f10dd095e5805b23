package payments

import (
	"context"
	"errors"
	"log"
	"strconv"

	"malharia_pdv/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// MercadoPagoLinkGateway creates Checkout Pro preference links for the
// outstanding balance shown on a receipt. The service boots fine without it;
// receipts simply carry no payment link then.

type MercadoPagoLinkGateway struct {
	client preference.Client
}

var _ interfaces.IPaymentLinkGateway = (*MercadoPagoLinkGateway)(nil)

func NewMercadoPagoLinkGateway(accessToken string) (*MercadoPagoLinkGateway, error) {
	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payments] failed creating sdk config err=%v", err)
		return nil, err
	}

	return &MercadoPagoLinkGateway{client: preference.NewClient(cfg)}, nil
}

func (g *MercadoPagoLinkGateway) CreatePaymentLink(ctx context.Context, orderID int, description string, amount float64) (string, error) {
	resource, err := g.client.Create(ctx, buildPreferenceRequest(orderID, description, amount))
	if err != nil {
		return "", err
	}
	return resource.InitPoint, nil
}

// buildPreferenceRequest maps one outstanding balance onto a single-item
// Checkout Pro preference, keyed back to the order by external reference.
func buildPreferenceRequest(orderID int, description string, amount float64) preference.Request {
	return preference.Request{
		ExternalReference: strconv.Itoa(orderID),
		Items: []preference.ItemRequest{
			{
				ID:        strconv.Itoa(orderID),
				Title:     description,
				Quantity:  1,
				UnitPrice: amount,
			},
		},
	}
}
