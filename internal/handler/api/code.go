package api

import (
	"net/http"

	"promo-bonus-service/internal/domain/pool"
	reqdto "promo-bonus-service/internal/handler/dto/request"
	resdto "promo-bonus-service/internal/handler/dto/response"
	"promo-bonus-service/internal/handler/httperr"
	"promo-bonus-service/internal/usecase/commands"
	"promo-bonus-service/internal/usecase/queries"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
)

type CodeHandler struct {
	codes     commands.CodeCommands
	replenish commands.ReplenishCommands
	pools     queries.PoolQueries
}

func NewCodeHandler(codes commands.CodeCommands, replenish commands.ReplenishCommands, pools queries.PoolQueries) *CodeHandler {
	return &CodeHandler{codes: codes, replenish: replenish, pools: pools}
}

// @Summary Get promo code
// @Description Hand out one unused promo code of the requested denomination
// @Tags codes
// @Produce json
// @Param amount query int true "Denomination"
// @Success 200 {object} resdto.CodeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /code [get]
func (h *CodeHandler) Allocate(c *gin.Context) {
	var q reqdto.AllocateCodeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid amount", nil)
		return
	}
	d, err := pool.NewDenomination(q.Amount)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid amount", nil)
		return
	}

	result, err := h.codes.Allocate(c.Request.Context(), d)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAllocateResult(result))
}

// @Summary Get pool stock
// @Tags pools
// @Produce json
// @Param denomination path int true "Denomination"
// @Success 200 {object} resdto.PoolResponse
// @Failure 400 {object} httperr.Response
// @Router /pools/{denomination} [get]
func (h *CodeHandler) GetPool(c *gin.Context) {
	d, err := pool.ParseDenomination(c.Param("denomination"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid denomination", nil)
		return
	}
	view, err := h.pools.GetPool(c.Request.Context(), d)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromPoolView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Replenish pool
// @Description Request new codes from the producer and merge them into the pool
// @Tags pools
// @Accept json
// @Produce json
// @Param request body reqdto.ReplenishRequest true "Replenish request"
// @Success 200 {object} resdto.ReplenishResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /replenish [post]
func (h *CodeHandler) Replenish(c *gin.Context) {
	var req reqdto.ReplenishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	d, err := pool.NewDenomination(req.Amount)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid amount", nil)
		return
	}

	result, err := h.replenish.Replenish(c.Request.Context(), d, req.Count)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ReplenishResponse{
		Success:               true,
		ReplenishItemResponse: resdto.FromReplenishResult(*result),
	})
}

// @Summary Replenish every pool
// @Tags pools
// @Produce json
// @Success 200 {object} resdto.ReplenishAllResponse
// @Failure 502 {object} resdto.ReplenishAllResponse
// @Router /replenish-all [post]
func (h *CodeHandler) ReplenishAll(c *gin.Context) {
	results, err := h.replenish.ReplenishAll(c.Request.Context())
	res := resdto.ReplenishAllResponse{
		Success: err == nil,
		Results: slice.Map(results, func(_ int, r commands.ReplenishResult) resdto.ReplenishItemResponse {
			return resdto.FromReplenishResult(r)
		}),
	}
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, res)
		return
	}
	c.JSON(http.StatusOK, res)
}
