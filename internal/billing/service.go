// Package billing creates Stripe Checkout sessions for subscription plans.
package billing

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v78"
)

// Plan prices in whole RON.
var planPrices = map[string]int64{
	"basic":      100,
	"pro":        200,
	"enterprise": 500,
}

const defaultPlan = "basic"

// SessionCreator creates a checkout session with the payment provider.
// *session.Client from stripe-go satisfies it.
type SessionCreator interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// Service builds checkout sessions for subscription plans.
type Service struct {
	sessions  SessionCreator
	appDomain string
}

// NewService constructs a new Service. appDomain hosts the post-payment
// redirect pages.
func NewService(sessions SessionCreator, appDomain string) *Service {
	return &Service{sessions: sessions, appDomain: appDomain}
}

// Checkout creates a one-off card payment session for the plan and returns
// the session ID. Unknown plans fall back to the basic price.
func (s *Service) Checkout(ctx context.Context, userID, plan string) (string, error) {
	price, ok := planPrices[plan]
	if !ok {
		price = planPrices[defaultPlan]
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(string(stripe.CurrencyRON)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(plan),
				},
				// Stripe wants the amount in bani.
				UnitAmount: stripe.Int64(price * 100),
			},
			Quantity: stripe.Int64(1),
		}},
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(fmt.Sprintf("https://%s/success", s.appDomain)),
		CancelURL:         stripe.String(fmt.Sprintf("https://%s/cancel", s.appDomain)),
		ClientReferenceID: stripe.String(userID),
	}
	params.Context = ctx

	sess, err := s.sessions.New(params)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	return sess.ID, nil
}
