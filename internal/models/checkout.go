package models

type PaymentMethod string

const (
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodBoleto     PaymentMethod = "boleto"
)

func (m PaymentMethod) Label() string {
	switch m {
	case PaymentMethodPix:
		return "Pix"
	case PaymentMethodCreditCard:
		return "Cartão de Crédito"
	case PaymentMethodBoleto:
		return "Boleto Bancário"
	default:
		return string(m)
	}
}

type CheckoutRequest struct {
	Name          string        `json:"name" validate:"required"`
	Email         string        `json:"email" validate:"required,email"`
	Phone         string        `json:"phone" validate:"required"`
	Address       string        `json:"address" validate:"required"`
	City          string        `json:"city" validate:"required"`
	State         string        `json:"state" validate:"required"`
	ZipCode       string        `json:"zipCode" validate:"required"`
	PaymentMethod PaymentMethod `json:"paymentMethod" validate:"required,oneof=pix credit_card boleto"`
	Note          string        `json:"note,omitempty"`
}

// Quote is the computed financial summary for a cart. All amounts are
// rounded to cents.
type Quote struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

type CheckoutResponse struct {
	Quote       Quote  `json:"quote"`
	WhatsAppURL string `json:"whatsappUrl"`
}
