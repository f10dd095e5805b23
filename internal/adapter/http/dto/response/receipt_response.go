package response

import "malharia_pdv/internal/usecase"

// ReceiptResponse is the public receipt payload. When Masked is true the
// embedded order already carries the anonymized name and phone.
type ReceiptResponse struct {
	Order       OrderResponse      `json:"order"`
	Items       []LineItemResponse `json:"items"`
	Masked      bool               `json:"masked"`
	PaymentLink string             `json:"payment_link,omitempty"`
}

func FromReceipt(r usecase.Receipt) ReceiptResponse {
	return ReceiptResponse{
		Order:       FromOrder(r.Order),
		Items:       FromLineItems(r.Items),
		Masked:      r.Masked,
		PaymentLink: r.PaymentLink,
	}
}
