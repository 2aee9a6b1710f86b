package api

import (
	"net/http"

	reqdto "promo-bonus-service/internal/handler/dto/request"
	resdto "promo-bonus-service/internal/handler/dto/response"
	"promo-bonus-service/internal/handler/httperr"
	"promo-bonus-service/internal/usecase/commands"
	"promo-bonus-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LedgerHandler struct {
	cmds commands.LedgerCommands
	q    queries.BalanceQueries
}

func NewLedgerHandler(cmds commands.LedgerCommands, q queries.BalanceQueries) *LedgerHandler {
	return &LedgerHandler{cmds: cmds, q: q}
}

// @Summary Reserve bonus for an order
// @Description Move bonus from active to reserved. Repeating the call for the same order changes nothing.
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body reqdto.ReserveRequest true "Reserve request"
// @Success 200 {object} resdto.LedgerResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /order-reserve [post]
func (h *LedgerHandler) Reserve(c *gin.Context) {
	var req reqdto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Reserve(c.Request.Context(), commands.ReserveInput{
		OrderID: req.OrderID.String(),
		Phone:   req.Phone,
		Amount:  req.Amount,
	})
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLedgerResult(result))
}

// @Summary Complete an order
// @Description Consume the reservation and credit the accrual
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body reqdto.CompleteRequest true "Complete request"
// @Success 200 {object} resdto.LedgerResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /order-complete [post]
func (h *LedgerHandler) Complete(c *gin.Context) {
	var req reqdto.CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Complete(c.Request.Context(), commands.CompleteInput{
		OrderID: req.OrderID.String(),
		Phone:   req.Phone,
		Accrual: req.Accrual,
	})
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLedgerResult(result))
}

// @Summary Cancel an order
// @Description Return the reservation to the active balance
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body reqdto.CancelRequest true "Cancel request"
// @Success 200 {object} resdto.LedgerResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /order-cancel [post]
func (h *LedgerHandler) Cancel(c *gin.Context) {
	var req reqdto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Cancel(c.Request.Context(), commands.CancelInput{
		OrderID: req.OrderID.String(),
		Phone:   req.Phone,
	})
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLedgerResult(result))
}

// @Summary Accrue bonus manually
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body reqdto.AccrueRequest true "Accrue request"
// @Success 200 {object} resdto.LedgerResponse
// @Failure 400 {object} httperr.Response
// @Router /bonus-accrue [post]
func (h *LedgerHandler) Accrue(c *gin.Context) {
	var req reqdto.AccrueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Accrue(c.Request.Context(), commands.AccrueInput{
		OrderID: req.OrderID.String(),
		Phone:   req.Phone,
		Amount:  req.Amount,
	})
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLedgerResult(result))
}

// @Summary Get bonus balance
// @Tags ledger
// @Produce json
// @Param phone query string true "Customer phone"
// @Success 200 {object} resdto.BalanceResponse
// @Failure 400 {object} httperr.Response
// @Router /balance [get]
func (h *LedgerHandler) Balance(c *gin.Context) {
	var q reqdto.BalanceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid phone", nil)
		return
	}
	view, err := h.q.GetBalance(c.Request.Context(), q.Phone)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBalanceView(view))
}
