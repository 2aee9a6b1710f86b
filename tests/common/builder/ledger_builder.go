//go:build unit || e2e

package builder

import reqdto "promo-bonus-service/internal/handler/dto/request"

type LedgerRequestBuilder struct {
	OrderID string
	Phone   string
	Amount  int
}

func NewLedgerRequestBuilder() *LedgerRequestBuilder {
	return &LedgerRequestBuilder{
		OrderID: "1001",
		Phone:   "+380501234567",
		Amount:  100,
	}
}

func (b *LedgerRequestBuilder) WithOrderID(id string) *LedgerRequestBuilder {
	b.OrderID = id
	return b
}

func (b *LedgerRequestBuilder) WithPhone(phone string) *LedgerRequestBuilder {
	b.Phone = phone
	return b
}

func (b *LedgerRequestBuilder) WithAmount(amount int) *LedgerRequestBuilder {
	b.Amount = amount
	return b
}

func (b *LedgerRequestBuilder) orderID() reqdto.FlexibleID {
	return reqdto.FlexibleID(b.OrderID)
}

func (b *LedgerRequestBuilder) BuildReserve() reqdto.ReserveRequest {
	return reqdto.ReserveRequest{OrderID: b.orderID(), Phone: b.Phone, Amount: b.Amount}
}

func (b *LedgerRequestBuilder) BuildComplete() reqdto.CompleteRequest {
	return reqdto.CompleteRequest{OrderID: b.orderID(), Phone: b.Phone, Accrual: b.Amount}
}

func (b *LedgerRequestBuilder) BuildCancel() reqdto.CancelRequest {
	return reqdto.CancelRequest{OrderID: b.orderID(), Phone: b.Phone}
}

func (b *LedgerRequestBuilder) BuildAccrue() reqdto.AccrueRequest {
	return reqdto.AccrueRequest{OrderID: b.orderID(), Phone: b.Phone, Amount: b.Amount}
}
