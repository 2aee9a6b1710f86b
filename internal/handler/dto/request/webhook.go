package request

import "promo-bonus-service/internal/usecase/commands"

type WebhookRequest struct {
	Event   string         `json:"event" binding:"required"`
	Context WebhookContext `json:"context"`
}

type WebhookContext struct {
	ID             FlexibleID   `json:"id"`
	Buyer          WebhookBuyer `json:"buyer"`
	Promocode      string       `json:"promocode"`
	DiscountAmount float64      `json:"discount_amount"`
	ProductsTotal  float64      `json:"products_total"`
	GrandTotal     float64      `json:"grand_total"`
	StatusGroup    string       `json:"status_group"`
}

type WebhookBuyer struct {
	Phone string `json:"phone"`
}

func (r WebhookRequest) ToEvent() commands.WebhookEvent {
	return commands.WebhookEvent{
		Event:          r.Event,
		OrderID:        r.Context.ID.String(),
		Phone:          r.Context.Buyer.Phone,
		Promocode:      r.Context.Promocode,
		DiscountAmount: r.Context.DiscountAmount,
		ProductsTotal:  r.Context.ProductsTotal,
		GrandTotal:     r.Context.GrandTotal,
		StatusGroup:    r.Context.StatusGroup,
	}
}

// LeadReserveRequest carries a manual top-up from a CRM lead together with the
// order figures the discount limit is checked against.
type LeadReserveRequest struct {
	OrderID         FlexibleID `json:"order_id" binding:"required"`
	Phone           string     `json:"phone" binding:"required"`
	Amount          float64    `json:"amount" binding:"required,gt=0"`
	OrderTotal      float64    `json:"order_total" binding:"required,gt=0"`
	CurrentDiscount float64    `json:"current_discount" binding:"gte=0"`
}

func (r LeadReserveRequest) ToInput() commands.LeadReserveInput {
	return commands.LeadReserveInput{
		OrderID:         r.OrderID.String(),
		Phone:           r.Phone,
		Amount:          r.Amount,
		OrderTotal:      r.OrderTotal,
		CurrentDiscount: r.CurrentDiscount,
	}
}
