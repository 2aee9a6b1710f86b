package request

type ReserveRequest struct {
	OrderID FlexibleID `json:"order_id" binding:"required"`
	Phone   string     `json:"phone" binding:"required"`
	Amount  int        `json:"amount" binding:"required,gt=0"`
}

type CompleteRequest struct {
	OrderID FlexibleID `json:"order_id" binding:"required"`
	Phone   string     `json:"phone" binding:"required"`
	Accrual int        `json:"accrual" binding:"gte=0"`
}

type CancelRequest struct {
	OrderID FlexibleID `json:"order_id" binding:"required"`
	Phone   string     `json:"phone" binding:"required"`
}

type AccrueRequest struct {
	OrderID FlexibleID `json:"order_id" binding:"required"`
	Phone   string     `json:"phone" binding:"required"`
	Amount  int        `json:"amount" binding:"required,gt=0"`
}

type BalanceQuery struct {
	Phone string `form:"phone" binding:"required"`
}
