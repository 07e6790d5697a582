package payment

import (
	"context"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"
)

type CheckoutItem struct {
	Reference   string
	Title       string
	Description string
	Price       decimal.Decimal
	PayerEmail  string
}

type Preference struct {
	ID        string
	InitPoint string
}

// MercadoPago creates hosted checkout preferences.
type MercadoPago struct {
	client preference.Client
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, err
	}
	return &MercadoPago{client: preference.NewClient(cfg)}, nil
}

func (m *MercadoPago) CreatePreference(ctx context.Context, item CheckoutItem) (*Preference, error) {
	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:          item.Reference,
				Title:       item.Title,
				Description: item.Description,
				Quantity:    1,
				UnitPrice:   item.Price.InexactFloat64(),
				CurrencyID:  "BRL",
			},
		},
		ExternalReference: item.Reference,
	}
	if item.PayerEmail != "" {
		req.Payer = &preference.PayerRequest{Email: item.PayerEmail}
	}

	res, err := m.client.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	return &Preference{ID: res.ID, InitPoint: res.InitPoint}, nil
}
