package services

import (
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// PaymentGateway creates a card charge intent and hands back the
// client secret the frontend needs to confirm it.
type PaymentGateway interface {
	CreateIntent(amountCents int64) (clientSecret string, err error)
}

// StripeGateway is the production gateway.
type StripeGateway struct{}

func NewStripeGateway(secretKey string) *StripeGateway {
	stripe.Key = secretKey
	return &StripeGateway{}
}

func (g *StripeGateway) CreateIntent(amountCents int64) (string, error) {
	intent, err := paymentintent.New(&stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}

// PaymentService converts a product price in dollars into a gateway
// intent. Prices are charged in whole cents.
type PaymentService struct {
	gateway PaymentGateway
}

func NewPaymentService(gateway PaymentGateway) *PaymentService {
	return &PaymentService{gateway: gateway}
}

func (s *PaymentService) CreateIntent(price float64) (string, error) {
	if price <= 0 {
		return "", fmt.Errorf("price must be positive")
	}
	return s.gateway.CreateIntent(int64(math.Round(price * 100)))
}
