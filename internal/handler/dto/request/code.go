package request

type AllocateCodeQuery struct {
	Amount int `form:"amount" binding:"required,gt=0"`
}

type ReplenishRequest struct {
	Amount int `json:"amount" binding:"required,gt=0"`
	Count  int `json:"count" binding:"gte=0"`
}
