package gateway

import (
	"context"
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// requestTimeout bounds every call to Stripe so a hung gateway cannot hold
// a request open past this.
const requestTimeout = 15 * time.Second

// PaymentGateway creates payment intents with an external processor. The
// amount is in minor currency units (cents).
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount int64) (clientSecret string, err error)
}

// StripeGateway implements PaymentGateway against the Stripe API.
type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}
}

// CreateIntent requests a card PaymentIntent in USD and returns the client
// secret the frontend uses to confirm the payment.
func (g *StripeGateway) CreateIntent(ctx context.Context, amount int64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
