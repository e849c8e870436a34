package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/lojatricolor/storefront/internal/errors"
	"github.com/lojatricolor/storefront/internal/models"
	repository "github.com/lojatricolor/storefront/internal/repositories"
)

// CheckoutService turns a cart into a WhatsApp deep link carrying the
// order summary. Opening that link is the entire checkout; no order
// record is created anywhere.
type CheckoutService struct {
	cart            repository.CartRepository
	settings        repository.SettingsRepository
	messagingDomain string
}

func NewCheckoutService(cart repository.CartRepository, settings repository.SettingsRepository, messagingDomain string) *CheckoutService {
	return &CheckoutService{
		cart:            cart,
		settings:        settings,
		messagingDomain: messagingDomain,
	}
}

func (s *CheckoutService) Checkout(ctx context.Context, cartID string, req *models.CheckoutRequest) (*models.CheckoutResponse, error) {

	items, err := s.cart.Get(ctx, cartID)
	if err != nil {
		return nil, errors.StoreUnavailableError("Failed to load cart").WithError(err)
	}

	if len(items) == 0 {
		return nil, errors.BadRequestError("Cart is empty")
	}

	quote := ComputeQuote(items, req.PaymentMethod)
	summary := renderOrderSummary(req, items, quote)
	number := s.settings.WhatsAppNumber(ctx)

	link := url.URL{
		Scheme:   "https",
		Host:     s.messagingDomain,
		Path:     "/" + number,
		RawQuery: url.Values{"text": {summary}}.Encode(),
	}

	// The handoff succeeded as far as this service can tell; a cart left
	// behind here would resurface bought items on the next visit.
	if err := s.cart.Clear(ctx, cartID); err != nil {
		slog.Warn("Cart clear after checkout failed",
			slog.String("cartId", cartID),
			slog.String("error", err.Error()),
		)
	}

	return &models.CheckoutResponse{
		Quote:       quote,
		WhatsAppURL: link.String(),
	}, nil
}

func formatPrice(v float64) string {
	return "R$ " + strings.ReplaceAll(fmt.Sprintf("%.2f", v), ".", ",")
}

func renderOrderSummary(req *models.CheckoutRequest, items []models.CartItem, quote models.Quote) string {

	var b strings.Builder

	b.WriteString("*Novo Pedido*\n\n")
	b.WriteString("*Cliente:* " + req.Name + "\n")
	b.WriteString("*E-mail:* " + req.Email + "\n")
	b.WriteString("*Telefone:* " + req.Phone + "\n")
	fmt.Fprintf(&b, "*Endereço:* %s, %s - %s, CEP %s\n\n", req.Address, req.City, req.State, req.ZipCode)

	b.WriteString("*Itens:*\n")

	for _, item := range items {
		lineTotal := roundCents(item.Price * float64(item.Quantity))
		fmt.Fprintf(&b, "- %s x%d (%s) = %s\n", item.Name, item.Quantity, formatPrice(item.Price), formatPrice(lineTotal))
	}

	b.WriteString("\n*Subtotal:* " + formatPrice(quote.Subtotal) + "\n")

	if quote.Shipping == 0 {
		b.WriteString("*Frete:* Grátis\n")
	} else {
		b.WriteString("*Frete:* " + formatPrice(quote.Shipping) + "\n")
	}

	if quote.Discount > 0 {
		b.WriteString("*Desconto:* -" + formatPrice(quote.Discount) + "\n")
	}

	b.WriteString("*Total:* " + formatPrice(quote.Total) + "\n\n")
	b.WriteString("*Pagamento:* " + req.PaymentMethod.Label() + "\n")

	if req.Note != "" {
		b.WriteString("*Observação:* " + req.Note + "\n")
	}

	return b.String()
}
