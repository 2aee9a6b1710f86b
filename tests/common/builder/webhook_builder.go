//go:build unit || e2e

package builder

import (
	reqdto "promo-bonus-service/internal/handler/dto/request"
	"promo-bonus-service/internal/usecase/commands"
)

type WebhookBuilder struct {
	Event          string
	OrderID        string
	Phone          string
	Promocode      string
	DiscountAmount float64
	ProductsTotal  float64
	GrandTotal     float64
	StatusGroup    string
}

// starts from an order.create event that reserves 100 bonus points
func NewWebhookBuilder() *WebhookBuilder {
	return &WebhookBuilder{
		Event:          commands.EventOrderCreate,
		OrderID:        "1001",
		Phone:          "+380501234567",
		Promocode:      "BONUS",
		DiscountAmount: 100,
		ProductsTotal:  1000,
		GrandTotal:     900,
	}
}

func (b *WebhookBuilder) With(mutate func(*WebhookBuilder)) *WebhookBuilder {
	mutate(b)
	return b
}

func (b *WebhookBuilder) WithOrderID(id string) *WebhookBuilder {
	b.OrderID = id
	return b
}

func (b *WebhookBuilder) WithPhone(phone string) *WebhookBuilder {
	b.Phone = phone
	return b
}

func (b *WebhookBuilder) WithDiscount(discount, productsTotal float64) *WebhookBuilder {
	b.DiscountAmount = discount
	b.ProductsTotal = productsTotal
	return b
}

func (b *WebhookBuilder) WithoutPromocode() *WebhookBuilder {
	b.Promocode = ""
	return b
}

func (b *WebhookBuilder) AsCompleted(grandTotal float64) *WebhookBuilder {
	b.Event = commands.EventOrderStatusChange
	b.StatusGroup = commands.StatusGroupCompleted
	b.GrandTotal = grandTotal
	return b
}

func (b *WebhookBuilder) AsCanceled() *WebhookBuilder {
	b.Event = commands.EventOrderStatusChange
	b.StatusGroup = commands.StatusGroupCanceled
	return b
}

func (b *WebhookBuilder) BuildRequestDTO() reqdto.WebhookRequest {
	return reqdto.WebhookRequest{
		Event: b.Event,
		Context: reqdto.WebhookContext{
			ID:             reqdto.FlexibleID(b.OrderID),
			Buyer:          reqdto.WebhookBuyer{Phone: b.Phone},
			Promocode:      b.Promocode,
			DiscountAmount: b.DiscountAmount,
			ProductsTotal:  b.ProductsTotal,
			GrandTotal:     b.GrandTotal,
			StatusGroup:    b.StatusGroup,
		},
	}
}

func (b *WebhookBuilder) BuildEvent() commands.WebhookEvent {
	return b.BuildRequestDTO().ToEvent()
}
