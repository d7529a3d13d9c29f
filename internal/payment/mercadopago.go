package payment

import (
	"context"
	"fmt"
	"strconv"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/BruksfildServices01/barbercraft/internal/models"
	orderuc "github.com/BruksfildServices01/barbercraft/internal/usecase/order"
)

// MercadoPago creates checkout preferences; the buyer pays on init_point.
type MercadoPago struct {
	client          preference.Client
	notificationURL string
}

// NewMercadoPago returns nil, nil without a token so callers can keep the
// gateway unset.
func NewMercadoPago(accessToken, notificationURL string) (*MercadoPago, error) {
	if accessToken == "" {
		return nil, nil
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &MercadoPago{
		client:          preference.NewClient(cfg),
		notificationURL: notificationURL,
	}, nil
}

func (m *MercadoPago) CreateCheckout(
	ctx context.Context,
	o *models.Order,
	titles map[uint]string,
) (orderuc.Checkout, error) {

	items := make([]preference.ItemRequest, 0, len(o.Items))
	for _, it := range o.Items {
		title := titles[it.ProductID]
		if title == "" {
			title = "Product #" + strconv.FormatUint(uint64(it.ProductID), 10)
		}
		items = append(items, preference.ItemRequest{
			ID:        strconv.FormatUint(uint64(it.ProductID), 10),
			Title:     title,
			Quantity:  it.Quantity,
			UnitPrice: it.Price,
		})
	}

	req := preference.Request{
		Items:             items,
		ExternalReference: strconv.FormatUint(uint64(o.ID), 10),
		NotificationURL:   m.notificationURL,
	}

	res, err := m.client.Create(ctx, req)
	if err != nil {
		return orderuc.Checkout{}, fmt.Errorf("create preference: %w", err)
	}

	return orderuc.Checkout{Reference: res.ID, URL: res.InitPoint}, nil
}

var _ orderuc.PaymentGateway = (*MercadoPago)(nil)
