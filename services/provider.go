package services

import (
	"context"

	"github.com/pkg/errors"
	razorpay "github.com/razorpay/razorpay-go"
)

// ProviderOrder is an order-creation request in the provider's minor currency unit.
type ProviderOrder struct {
	AmountMinor int64
	Currency    string
	Receipt     string
}

// OrderProvider mints provider-side order handles.
type OrderProvider interface {
	CreateOrder(ctx context.Context, order ProviderOrder) (string, error)
}

// RazorpayProvider creates orders through the Razorpay Orders API.
type RazorpayProvider struct {
	client *razorpay.Client
}

func NewRazorpayProvider(keyID, keySecret string) *RazorpayProvider {
	return &RazorpayProvider{client: razorpay.NewClient(keyID, keySecret)}
}

func (p *RazorpayProvider) CreateOrder(ctx context.Context, order ProviderOrder) (string, error) {
	// The SDK call takes no context, so honour cancellation before dialing out.
	if err := ctx.Err(); err != nil {
		return "", err
	}

	body, err := p.client.Order.Create(map[string]interface{}{
		"amount":          order.AmountMinor,
		"currency":        order.Currency,
		"receipt":         order.Receipt,
		"payment_capture": 1,
	}, nil)
	if err != nil {
		return "", errors.Wrap(err, "razorpay order create")
	}

	id, _ := body["id"].(string)
	if id == "" {
		return "", errors.Errorf("razorpay order response has no id: %v", body)
	}
	return id, nil
}
