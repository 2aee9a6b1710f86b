package api

import (
	"net/http"

	reqdto "promo-bonus-service/internal/handler/dto/request"
	resdto "promo-bonus-service/internal/handler/dto/response"
	"promo-bonus-service/internal/handler/httperr"
	"promo-bonus-service/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	cmds commands.WebhookCommands
}

func NewWebhookHandler(cmds commands.WebhookCommands) *WebhookHandler {
	return &WebhookHandler{cmds: cmds}
}

// @Summary CRM order webhook
// @Description order.create reserves the bonus discount, order.change_order_status completes or cancels
// @Tags webhook
// @Accept json
// @Produce json
// @Param request body reqdto.WebhookRequest true "CRM event"
// @Success 200 {object} resdto.WebhookResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /webhook [post]
func (h *WebhookHandler) Handle(c *gin.Context) {
	var req reqdto.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payload", nil)
		return
	}
	result, err := h.cmds.Handle(c.Request.Context(), req.ToEvent())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWebhookResult(result))
}

// @Summary Manual bonus reservation from a CRM lead
// @Description Top up an order's bonus reservation once. The amount is capped so the order discount stays within the max usage share of order_total.
// @Tags webhook
// @Accept json
// @Produce json
// @Param request body reqdto.LeadReserveRequest true "Lead reserve request"
// @Success 200 {object} resdto.LeadReserveResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /lead-reserve [post]
func (h *WebhookHandler) LeadReserve(c *gin.Context) {
	var req reqdto.LeadReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payload", nil)
		return
	}
	result, err := h.cmds.LeadReserve(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLeadReserveResult(result))
}
