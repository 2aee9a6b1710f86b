package response

import (
	"promo-bonus-service/internal/usecase/commands"
	"promo-bonus-service/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CodeResponse struct {
	Success   bool   `json:"success"`
	PromoCode string `json:"promo_code"`
	Amount    int    `json:"amount"`
}

func FromAllocateResult(r *commands.AllocateResult) *CodeResponse {
	return &CodeResponse{
		Success:   true,
		PromoCode: r.Code.String(),
		Amount:    r.Denomination.Int(),
	}
}

type PoolResponse struct {
	Success                bool `json:"success"`
	Denomination           int  `json:"denomination"`
	Remaining              int  `json:"remaining"`
	ConsumedSinceReplenish int  `json:"consumed_since_replenish"`
	NeedsReplenish         bool `json:"needs_replenish"`
}

func FromPoolView(v *queries.PoolView) (*PoolResponse, error) {
	res := &PoolResponse{Success: true}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	return res, nil
}

type ReplenishItemResponse struct {
	Denomination int    `json:"denomination"`
	Requested    int    `json:"requested"`
	Produced     int    `json:"produced"`
	Added        int    `json:"added"`
	Remaining    int    `json:"remaining"`
	Error        string `json:"error,omitempty"`
}

type ReplenishResponse struct {
	Success bool `json:"success"`
	ReplenishItemResponse
}

type ReplenishAllResponse struct {
	Success bool                    `json:"success"`
	Results []ReplenishItemResponse `json:"results"`
}

func FromReplenishResult(r commands.ReplenishResult) ReplenishItemResponse {
	item := ReplenishItemResponse{
		Denomination: r.Denomination.Int(),
		Requested:    r.Requested,
		Produced:     r.Produced,
		Added:        r.Added,
		Remaining:    r.Remaining,
	}
	if r.Err != nil {
		item.Error = r.Err.Error()
	}
	return item
}
